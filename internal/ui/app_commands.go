package ui

import (
	"context"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"carfleet/internal/exercise"
	"carfleet/internal/fleet"
)

// FleetClient is the subset of the API client the screens use.
type FleetClient interface {
	ListVehicles(ctx context.Context) ([]fleet.Vehicle, error)
	GetVehicle(ctx context.Context, id string) (fleet.Vehicle, error)
	CreateVehicle(ctx context.Context, in fleet.VehicleInput) (fleet.Vehicle, error)
	UpdateVehicle(ctx context.Context, id string, in fleet.VehicleInput) (fleet.Vehicle, error)
	PatchVehicle(ctx context.Context, id string, patch fleet.VehiclePatch) (fleet.Vehicle, error)
	DeleteVehicle(ctx context.Context, id string) error
	Statistics(ctx context.Context) (fleet.Statistics, error)
	VehiclesByDecade(ctx context.Context) (fleet.DecadeBreakdown, error)
	VehiclesByBrand(ctx context.Context) (fleet.BrandBreakdown, error)
	RegisteredLastWeek(ctx context.Context) (fleet.RecentRegistrations, error)
	ListBrands(ctx context.Context) ([]fleet.Brand, error)
	Voting(ctx context.Context, in exercise.VotingInput) (exercise.VotingResult, error)
	Multiples(ctx context.Context, in exercise.MultiplesInput) (exercise.MultiplesResult, error)
	Factorial(ctx context.Context, in exercise.FactorialInput) (exercise.FactorialResult, error)
	BubbleSort(ctx context.Context, in exercise.BubbleSortInput) (exercise.BubbleSortResult, error)
}

// screenTokens numbers screen instances. A reply tagged with the token of a
// screen that has since been replaced is dropped by its successor.
var screenTokens atomic.Uint64

func nextScreenToken() uint64 {
	return screenTokens.Add(1)
}

func navigateCmd(path string) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Path: path} }
}

func noticeCmd(text string, isError bool) tea.Cmd {
	return func() tea.Msg { return NoticeMsg{Text: text, IsError: isError} }
}

func loadVehiclesCmd(c FleetClient) tea.Cmd {
	return func() tea.Msg {
		vehicles, err := c.ListVehicles(context.Background())
		return VehiclesLoadedMsg{Vehicles: vehicles, Err: err}
	}
}

func deleteVehicleCmd(c FleetClient, id string) tea.Cmd {
	return func() tea.Msg {
		err := c.DeleteVehicle(context.Background(), id)
		return VehicleDeletedMsg{ID: id, Err: err}
	}
}

// toggleSoldCmd flips the sold flag with a partial update.
func toggleSoldCmd(c FleetClient, v fleet.Vehicle) tea.Cmd {
	sold := !v.Sold
	id := v.ID
	return func() tea.Msg {
		updated, err := c.PatchVehicle(context.Background(), id, fleet.VehiclePatch{Sold: &sold})
		return VehiclePatchedMsg{Vehicle: updated, Err: err}
	}
}

func loadBrandsCmd(c FleetClient) tea.Cmd {
	return func() tea.Msg {
		brands, err := c.ListBrands(context.Background())
		return BrandsLoadedMsg{Brands: brands, Err: err}
	}
}

func loadVehicleCmd(c FleetClient, token uint64, id string) tea.Cmd {
	return func() tea.Msg {
		v, err := c.GetVehicle(context.Background(), id)
		return VehicleLoadedMsg{Token: token, ID: id, Vehicle: v, Err: err}
	}
}

// saveVehicleCmd creates when id is empty and replaces the full record otherwise.
func saveVehicleCmd(c FleetClient, token uint64, id string, in fleet.VehicleInput) tea.Cmd {
	return func() tea.Msg {
		var (
			v   fleet.Vehicle
			err error
		)
		if id == "" {
			v, err = c.CreateVehicle(context.Background(), in)
		} else {
			v, err = c.UpdateVehicle(context.Background(), id, in)
		}
		return VehicleSavedMsg{Token: token, Vehicle: v, Err: err}
	}
}

// loadStatisticsCmd issues the four statistics reads concurrently and waits
// for all of them. Any failure discards every partial result.
func loadStatisticsCmd(c FleetClient, logger *zap.Logger) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		var (
			g        errgroup.Group
			summary  fleet.Statistics
			decades  fleet.DecadeBreakdown
			brands   fleet.BrandBreakdown
			lastWeek fleet.RecentRegistrations
		)
		g.Go(func() error {
			var err error
			summary, err = c.Statistics(ctx)
			return err
		})
		g.Go(func() error {
			var err error
			decades, err = c.VehiclesByDecade(ctx)
			return err
		})
		g.Go(func() error {
			var err error
			brands, err = c.VehiclesByBrand(ctx)
			return err
		})
		g.Go(func() error {
			var err error
			lastWeek, err = c.RegisteredLastWeek(ctx)
			return err
		})
		if err := g.Wait(); err != nil {
			logger.Error("failed to load statistics", zap.Error(err))
			return StatisticsLoadedMsg{Err: err}
		}
		return StatisticsLoadedMsg{Report: fleet.Report{
			Summary:  summary,
			ByDecade: decades.VehiclesByDecade,
			ByBrand:  brands.VehiclesByBrand,
			LastWeek: lastWeek,
		}}
	}
}

func votingCmd(c FleetClient, token uint64, in exercise.VotingInput) tea.Cmd {
	return func() tea.Msg {
		r, err := c.Voting(context.Background(), in)
		return VotingResultMsg{Token: token, Result: r, Err: err}
	}
}

func bubbleSortCmd(c FleetClient, token uint64, in exercise.BubbleSortInput) tea.Cmd {
	return func() tea.Msg {
		r, err := c.BubbleSort(context.Background(), in)
		return BubbleSortResultMsg{Token: token, Result: r, Err: err}
	}
}

func factorialCmd(c FleetClient, token uint64, in exercise.FactorialInput) tea.Cmd {
	return func() tea.Msg {
		r, err := c.Factorial(context.Background(), in)
		return FactorialResultMsg{Token: token, Result: r, Err: err}
	}
}

func multiplesCmd(c FleetClient, token uint64, in exercise.MultiplesInput) tea.Cmd {
	return func() tea.Msg {
		r, err := c.Multiples(context.Background(), in)
		return MultiplesResultMsg{Token: token, Result: r, Err: err}
	}
}
