package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"carfleet/internal/api"
	"carfleet/internal/exercise"
	"carfleet/internal/fleet"
)

var errBoom = errors.New("boom")

// fakeClient is an in-memory FleetClient. Fields ending in Err make the
// matching call fail.
type fakeClient struct {
	mu sync.Mutex

	vehicles []fleet.Vehicle
	brands   []fleet.Brand
	report   fleet.Report

	listErr, getErr, saveErr, patchErr, deleteErr error

	brandsErr, exerciseErr error

	statsErr, decadeErr, brandStatsErr, weekErr error

	listCalls int
	created   []fleet.VehicleInput
	updated   map[string]fleet.VehicleInput
	patched   map[string]fleet.VehiclePatch
	deleted   []string
	voting    []exercise.VotingInput
	sorted    []exercise.BubbleSortInput
}

var _ FleetClient = (*fakeClient)(nil)

func newFakeClient(vehicles ...fleet.Vehicle) *fakeClient {
	return &fakeClient{
		vehicles: vehicles,
		updated:  map[string]fleet.VehicleInput{},
		patched:  map[string]fleet.VehiclePatch{},
	}
}

func (f *fakeClient) ListVehicles(ctx context.Context) ([]fleet.Vehicle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]fleet.Vehicle(nil), f.vehicles...), nil
}

func (f *fakeClient) GetVehicle(ctx context.Context, id string) (fleet.Vehicle, error) {
	if f.getErr != nil {
		return fleet.Vehicle{}, f.getErr
	}
	for _, v := range f.vehicles {
		if v.ID == id {
			return v, nil
		}
	}
	return fleet.Vehicle{}, &api.Error{StatusCode: 404, Message: "Vehicle not found", Err: api.ErrUnexpectedStatus}
}

func (f *fakeClient) CreateVehicle(ctx context.Context, in fleet.VehicleInput) (fleet.Vehicle, error) {
	if f.saveErr != nil {
		return fleet.Vehicle{}, f.saveErr
	}
	f.created = append(f.created, in)
	return fleet.Vehicle{ID: "new", Name: in.Name}, nil
}

func (f *fakeClient) UpdateVehicle(ctx context.Context, id string, in fleet.VehicleInput) (fleet.Vehicle, error) {
	if f.saveErr != nil {
		return fleet.Vehicle{}, f.saveErr
	}
	f.updated[id] = in
	return fleet.Vehicle{ID: id, Name: in.Name}, nil
}

func (f *fakeClient) PatchVehicle(ctx context.Context, id string, patch fleet.VehiclePatch) (fleet.Vehicle, error) {
	if f.patchErr != nil {
		return fleet.Vehicle{}, f.patchErr
	}
	f.patched[id] = patch
	return fleet.Vehicle{ID: id}, nil
}

func (f *fakeClient) DeleteVehicle(ctx context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	kept := f.vehicles[:0:0]
	for _, v := range f.vehicles {
		if v.ID != id {
			kept = append(kept, v)
		}
	}
	f.vehicles = kept
	return nil
}

func (f *fakeClient) Statistics(ctx context.Context) (fleet.Statistics, error) {
	return f.report.Summary, f.statsErr
}

func (f *fakeClient) VehiclesByDecade(ctx context.Context) (fleet.DecadeBreakdown, error) {
	return fleet.DecadeBreakdown{VehiclesByDecade: f.report.ByDecade}, f.decadeErr
}

func (f *fakeClient) VehiclesByBrand(ctx context.Context) (fleet.BrandBreakdown, error) {
	return fleet.BrandBreakdown{VehiclesByBrand: f.report.ByBrand}, f.brandStatsErr
}

func (f *fakeClient) RegisteredLastWeek(ctx context.Context) (fleet.RecentRegistrations, error) {
	return f.report.LastWeek, f.weekErr
}

func (f *fakeClient) ListBrands(ctx context.Context) ([]fleet.Brand, error) {
	return f.brands, f.brandsErr
}

func (f *fakeClient) Voting(ctx context.Context, in exercise.VotingInput) (exercise.VotingResult, error) {
	f.voting = append(f.voting, in)
	if f.exerciseErr != nil {
		return exercise.VotingResult{}, f.exerciseErr
	}
	total := float64(in.TotalVoters)
	return exercise.VotingResult{
		ValidPercent: float64(in.ValidVotes) / total * 100,
		BlankPercent: float64(in.BlankVotes) / total * 100,
		NullPercent:  float64(in.NullVotes) / total * 100,
	}, nil
}

func (f *fakeClient) Multiples(ctx context.Context, in exercise.MultiplesInput) (exercise.MultiplesResult, error) {
	if f.exerciseErr != nil {
		return exercise.MultiplesResult{}, f.exerciseErr
	}
	var sum int64
	for i := 1; i < in.Number; i++ {
		if i%3 == 0 || i%5 == 0 {
			sum += int64(i)
		}
	}
	return exercise.MultiplesResult{Limit: in.Number, Sum: sum}, nil
}

func (f *fakeClient) Factorial(ctx context.Context, in exercise.FactorialInput) (exercise.FactorialResult, error) {
	if f.exerciseErr != nil {
		return exercise.FactorialResult{}, f.exerciseErr
	}
	return exercise.FactorialResult{Number: in.Number, Factorial: "120"}, nil
}

func (f *fakeClient) BubbleSort(ctx context.Context, in exercise.BubbleSortInput) (exercise.BubbleSortResult, error) {
	f.sorted = append(f.sorted, in)
	if f.exerciseErr != nil {
		return exercise.BubbleSortResult{}, f.exerciseErr
	}
	sorted := append([]int(nil), in.Vector...)
	for i := range sorted {
		for j := 0; j < len(sorted)-1-i; j++ {
			if sorted[j] > sorted[j+1] {
				sorted[j], sorted[j+1] = sorted[j+1], sorted[j]
			}
		}
	}
	return exercise.BubbleSortResult{Original: in.Vector, Sorted: sorted}, nil
}

// runCmd executes cmd and returns its messages, flattening batches.
// Spinner and blink ticks are dropped.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	switch m := msg.(type) {
	case nil:
		return nil
	case tea.BatchMsg:
		var out []tea.Msg
		for _, c := range m {
			out = append(out, runCmd(c)...)
		}
		return out
	case spinner.TickMsg:
		return nil
	}
	if isBlink(msg) {
		return nil
	}
	return []tea.Msg{msg}
}

// drive feeds the messages produced by cmd back into v until none remain.
func drive(v View, cmd tea.Cmd) View {
	pending := runCmd(cmd)
	for len(pending) > 0 {
		msg := pending[0]
		pending = pending[1:]
		var next tea.Cmd
		v, next = v.Update(msg)
		pending = append(pending, runCmd(next)...)
	}
	return v
}

// collect runs cmd and returns the first message of type T.
func collect[T any](cmd tea.Cmd) (T, bool) {
	for _, m := range runCmd(cmd) {
		if t, ok := m.(T); ok {
			return t, true
		}
	}
	var zero T
	return zero, false
}

// isBlink reports cursor blink messages; running their follow-ups would
// sleep for the blink interval.
func isBlink(msg tea.Msg) bool {
	return strings.HasPrefix(fmt.Sprintf("%T", msg), "cursor.")
}
