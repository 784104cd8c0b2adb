package ui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"carfleet/internal/api"
	"carfleet/internal/fleet"
	"carfleet/internal/validation"
)

func newForm(t *testing.T, f *fakeClient, id string) *VehicleFormView {
	t.Helper()
	v := NewVehicleFormView(f, zap.NewNop(), id)
	drive(v, v.Init())
	return v
}

func press(v View, keys ...string) (View, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		v, cmd = v.Update(keyMsg(k))
	}
	return v, cmd
}

func TestVehicleForm_ValidationMarksOnlyOffendingFields(t *testing.T) {
	f := newFakeClient()
	v := newForm(t, f, "")

	_, cmd := press(v, "ctrl+s")
	if cmd != nil {
		t.Error("invalid form must not submit")
	}
	errs := v.Errors()
	for _, field := range []fleet.Field{fleet.FieldName, fleet.FieldBrand, fleet.FieldDescription} {
		if _, ok := errs[field]; !ok {
			t.Errorf("expected error on %s", field)
		}
	}
	for _, field := range []fleet.Field{fleet.FieldYear, fleet.FieldColor} {
		if msg, ok := errs[field]; ok {
			t.Errorf("unexpected error on %s: %q", field, msg)
		}
	}
	if !strings.Contains(v.View(), "Nome do veículo é obrigatório") {
		t.Error("view should show the name error")
	}
	if len(f.created) != 0 {
		t.Error("nothing should reach the client")
	}

	typeText(v, "C")
	if _, ok := v.Errors()[fleet.FieldName]; ok {
		t.Error("typing in the name field should clear its error")
	}
	if _, ok := v.Errors()[fleet.FieldDescription]; !ok {
		t.Error("other errors should stay until their field changes")
	}
}

func TestVehicleForm_YearBounds(t *testing.T) {
	restore := validation.Now
	validation.Now = func() time.Time { return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { validation.Now = restore })

	v := newForm(t, newFakeClient(), "")
	press(v, "tab", "tab")
	if v.Focused() != string(fleet.FieldYear) {
		t.Fatalf("focused = %q", v.Focused())
	}
	for _, tt := range []struct {
		year  string
		valid bool
	}{
		{"1899", false},
		{"1900", true},
		{"2026", true},
		{"2027", false},
		{"", false},
	} {
		press(v, "end", "backspace", "backspace", "backspace", "backspace")
		typeText(v, tt.year)
		press(v, "ctrl+s")
		_, bad := v.Errors()[fleet.FieldYear]
		if bad == tt.valid {
			t.Errorf("year %q: error=%v, want valid=%v", tt.year, bad, tt.valid)
		}
	}
}

func TestVehicleForm_Create(t *testing.T) {
	f := newFakeClient()
	f.brands = []fleet.Brand{{Name: "Toyota"}, {Name: "Honda"}}
	v := newForm(t, f, "")

	typeText(v, "Corolla")
	press(v, "tab", "right")
	press(v, "tab", "tab")
	typeText(v, "Prata")
	press(v, "tab")
	typeText(v, "Sedan")
	press(v, "tab", " ")

	_, cmd := press(v, "ctrl+s")
	if !v.Saving() {
		t.Fatal("expected saving state")
	}
	msgs := runCmd(cmd)
	if len(msgs) != 1 {
		t.Fatalf("msgs = %#v", msgs)
	}
	_, cmd = v.Update(msgs[0])

	want := fleet.VehicleInput{
		Name:        "Corolla",
		Brand:       "Toyota",
		Year:        validation.Now().Year(),
		Description: "Sedan",
		Color:       "Prata",
		Sold:        true,
	}
	if len(f.created) != 1 || f.created[0] != want {
		t.Fatalf("created = %+v, want %+v", f.created, want)
	}
	nav, ok := collect[NavigateMsg](cmd)
	if !ok || nav.Path != PathVehicles || nav.Notice != "Veículo salvo" || nav.NoticeIsError {
		t.Errorf("nav = %+v", nav)
	}
}

func TestVehicleForm_EditLoadsAndUpdates(t *testing.T) {
	veh := fleet.Vehicle{ID: "7", Name: "Uno", Brand: "Fiat", Year: 2010, Description: "Hatch", Color: "Branco", Sold: true}
	f := newFakeClient(veh)
	f.brands = []fleet.Brand{{Name: "Toyota"}}
	v := newForm(t, f, "7")

	if !v.IsEdit() {
		t.Fatal("expected edit mode")
	}
	if got := v.Input(); got != veh.Input() {
		t.Fatalf("input = %+v, want %+v", got, veh.Input())
	}
	if !strings.Contains(v.View(), "Editar Veículo") || !strings.Contains(v.View(), "< Fiat >") {
		t.Error("view should show the loaded vehicle")
	}

	_, cmd := press(v, "ctrl+s")
	drive(v, cmd)
	if got, ok := f.updated["7"]; !ok || got != veh.Input() {
		t.Errorf("updated = %+v", f.updated)
	}
	if len(f.created) != 0 {
		t.Error("edit must not create")
	}
}

func TestVehicleForm_LoadFailureReturnsToList(t *testing.T) {
	v := NewVehicleFormView(newFakeClient(), zap.NewNop(), "missing")
	var nav NavigateMsg
	var found bool
	for _, msg := range runCmd(v.Init()) {
		_, cmd := v.Update(msg)
		if n, ok := collect[NavigateMsg](cmd); ok {
			nav, found = n, true
		}
	}
	if !found {
		t.Fatal("expected navigation back to the list")
	}
	if nav.Path != PathVehicles || nav.Notice != "Erro ao carregar veículo" || !nav.NoticeIsError {
		t.Errorf("nav = %+v", nav)
	}
}

func TestVehicleForm_SaveFailure(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"server message", &api.Error{StatusCode: 400, Message: "Marca inexistente", Err: api.ErrUnexpectedStatus}, "Marca inexistente"},
		{"transport", errors.New("connection refused"), "Erro ao salvar veículo"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			veh := fleet.Vehicle{ID: "1", Name: "Gol", Brand: "VW", Year: 2000, Description: "Hatch"}
			f := newFakeClient(veh)
			f.saveErr = tt.err
			v := newForm(t, f, "1")

			_, cmd := press(v, "ctrl+s")
			msgs := runCmd(cmd)
			if len(msgs) != 1 {
				t.Fatalf("msgs = %#v", msgs)
			}
			_, cmd = v.Update(msgs[0])
			notice, ok := collect[NoticeMsg](cmd)
			if !ok || notice.Text != tt.want || !notice.IsError {
				t.Errorf("notice = %+v", notice)
			}
			if v.Saving() {
				t.Error("saving should reset after a failure")
			}
			if got := v.Input(); got != veh.Input() {
				t.Error("entered values should be kept")
			}
		})
	}
}

func TestVehicleForm_BrandCycling(t *testing.T) {
	f := newFakeClient()
	f.brands = []fleet.Brand{{Name: "Audi"}, {Name: "BMW"}, {Name: "Citroën"}}
	v := newForm(t, f, "")
	press(v, "tab")

	steps := []struct {
		key  string
		want string
	}{
		{"right", "Audi"},
		{"right", "BMW"},
		{"left", "Audi"},
		{"left", "Citroën"},
		{"l", "Audi"},
	}
	for _, s := range steps {
		press(v, s.key)
		if got := v.Input().Brand; got != s.want {
			t.Errorf("after %s: brand = %q, want %q", s.key, got, s.want)
		}
	}
}

func TestVehicleForm_FocusWrapsAndEscCancels(t *testing.T) {
	v := newForm(t, newFakeClient(), "")
	if v.Focused() != string(fleet.FieldName) {
		t.Fatalf("initial focus = %q", v.Focused())
	}
	press(v, "shift+tab")
	if v.Focused() != "vendido" {
		t.Errorf("shift+tab from first field = %q", v.Focused())
	}
	press(v, "x")
	if !v.Input().Sold {
		t.Error("x should toggle sold")
	}

	_, cmd := press(v, "esc")
	if nav, ok := collect[NavigateMsg](cmd); !ok || nav.Path != PathVehicles {
		t.Errorf("esc nav = %+v", nav)
	}
	if !v.CapturesInput() {
		t.Error("form should capture input")
	}
}

func TestVehicleForm_IgnoresLoadFromReplacedForm(t *testing.T) {
	a := fleet.Vehicle{ID: "A", Name: "Gol", Brand: "VW", Year: 2000, Description: "Hatch", Color: "Preto"}
	b := fleet.Vehicle{ID: "B", Name: "Uno", Brand: "Fiat", Year: 2010, Description: "Sedan", Color: "Branco"}
	f := newFakeClient(a, b)

	// The user left form A before its vehicle arrived.
	first := NewVehicleFormView(f, zap.NewNop(), "A")
	var late []tea.Msg
	for _, msg := range runCmd(first.Init()) {
		if _, ok := msg.(VehicleLoadedMsg); ok {
			late = append(late, msg)
		}
	}
	if len(late) != 1 {
		t.Fatalf("late = %#v", late)
	}

	v := newForm(t, f, "B")
	v.Update(late[0])
	v.Update(VehicleLoadedMsg{Token: v.token, ID: "A", Vehicle: a})
	if got := v.Input(); got != b.Input() {
		t.Fatalf("input = %+v, want %+v", got, b.Input())
	}

	_, cmd := press(v, "ctrl+s")
	drive(v, cmd)
	if got := f.updated["B"]; got != b.Input() {
		t.Errorf("updated B = %+v, want %+v", got, b.Input())
	}
}

func TestVehicleForm_IgnoresSaveFromReplacedForm(t *testing.T) {
	f := newFakeClient()
	first := newForm(t, f, "")
	v := newForm(t, f, "")
	typeText(v, "Onix")

	_, cmd := v.Update(VehicleSavedMsg{Token: first.token, Vehicle: fleet.Vehicle{ID: "9", Name: "Ka"}})
	if cmd != nil {
		if nav, ok := collect[NavigateMsg](cmd); ok {
			t.Fatalf("unexpected navigation %+v", nav)
		}
	}
	if got := v.Input().Name; got != "Onix" {
		t.Errorf("name = %q", got)
	}
}
