package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"carfleet/internal/api"
	"carfleet/internal/fleet"
	"carfleet/internal/validation"
)

const (
	msgLoadVehicleFailed = "Erro ao carregar veículo"
	msgSaveVehicleFailed = "Erro ao salvar veículo"
)

const focusSold = "vendido"

// VehicleFormView creates a vehicle, or edits one when vehicleID is set.
type VehicleFormView struct {
	client    FleetClient
	logger    *zap.Logger
	vehicleID string
	token     uint64 // tags this form's requests

	name        textinput.Model
	year        textinput.Model
	color       textinput.Model
	description textarea.Model
	brands      []string
	brand       string
	sold        bool

	focus   FocusManager
	errors  fleet.FieldErrors
	loading bool // edit mode: waiting for the vehicle
	saving  bool
	spinner spinner.Model
}

// Ensure VehicleFormView implements View.
var _ View = (*VehicleFormView)(nil)

func NewVehicleFormView(client FleetClient, logger *zap.Logger, vehicleID string) *VehicleFormView {
	v := &VehicleFormView{
		client:    client,
		logger:    logger,
		vehicleID: vehicleID,
		token:     nextScreenToken(),
		errors:    fleet.FieldErrors{},
		loading:   vehicleID != "",
	}

	v.name = newFormInput("Ex: Corolla", 100)
	v.year = newFormInput("Ex: 2024", 4)
	v.year.SetValue(strconv.Itoa(validation.Now().Year()))
	v.color = newFormInput("Ex: Prata", 50)

	ta := textarea.New()
	ta.Placeholder = "Descreva o veículo"
	ta.ShowLineNumbers = false
	ta.CharLimit = 1000
	ta.SetWidth(60)
	ta.SetHeight(4)
	v.description = ta

	v.focus = FocusManager{
		Order: []string{
			string(fleet.FieldName),
			string(fleet.FieldBrand),
			string(fleet.FieldYear),
			string(fleet.FieldColor),
			string(fleet.FieldDescription),
			focusSold,
		},
		OnChange: v.moveFocus,
	}
	v.focus.SetFocus(string(fleet.FieldName))

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccent))
	v.spinner = s
	return v
}

func newFormInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Width = 40
	ti.Prompt = ""
	return ti
}

// Init implements View.
func (v *VehicleFormView) Init() tea.Cmd {
	cmds := []tea.Cmd{loadBrandsCmd(v.client), textinput.Blink}
	if v.vehicleID != "" {
		cmds = append(cmds, v.spinner.Tick, loadVehicleCmd(v.client, v.token, v.vehicleID))
	}
	return tea.Batch(cmds...)
}

// CapturesInput implements InputCapturer. The form owns the keyboard; esc
// leaves it.
func (v *VehicleFormView) CapturesInput() bool {
	return true
}

// IsEdit reports whether the form updates an existing vehicle.
func (v *VehicleFormView) IsEdit() bool { return v.vehicleID != "" }

// Errors returns the current field errors.
func (v *VehicleFormView) Errors() fleet.FieldErrors { return v.errors }

// Saving reports whether a submit is outstanding.
func (v *VehicleFormView) Saving() bool { return v.saving }

// Focused returns the id of the focused field.
func (v *VehicleFormView) Focused() string { return v.focus.Current }

// Input returns the payload built from the current field values.
func (v *VehicleFormView) Input() fleet.VehicleInput {
	year, _ := validation.ParseInt(v.year.Value())
	return fleet.VehicleInput{
		Name:        v.name.Value(),
		Brand:       v.brand,
		Year:        year,
		Description: v.description.Value(),
		Color:       strings.TrimSpace(v.color.Value()),
		Sold:        v.sold,
	}
}

// Update implements View.
func (v *VehicleFormView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w := msg.Width - 8
		if w > 80 {
			w = 80
		}
		if w > 20 {
			v.description.SetWidth(w)
		}
		return v, nil
	case spinner.TickMsg:
		if v.loading || v.saving {
			var cmd tea.Cmd
			v.spinner, cmd = v.spinner.Update(msg)
			return v, cmd
		}
		return v, nil
	case BrandsLoadedMsg:
		if msg.Err != nil {
			v.logger.Warn("failed to load brands", zap.Error(msg.Err))
			return v, nil
		}
		v.brands = v.brands[:0]
		for _, b := range msg.Brands {
			v.brands = append(v.brands, b.Name)
		}
		return v, nil
	case VehicleLoadedMsg:
		if msg.Token != v.token || msg.ID != v.vehicleID {
			return v, nil
		}
		v.loading = false
		if msg.Err != nil {
			v.logger.Warn("failed to load vehicle", zap.String("id", v.vehicleID), zap.Error(msg.Err))
			return v, func() tea.Msg {
				return NavigateMsg{Path: PathVehicles, Notice: msgLoadVehicleFailed, NoticeIsError: true}
			}
		}
		v.fill(msg.Vehicle)
		return v, nil
	case VehicleSavedMsg:
		if msg.Token != v.token {
			return v, nil
		}
		v.saving = false
		if msg.Err != nil {
			v.logger.Warn("failed to save vehicle", zap.String("id", v.vehicleID), zap.Error(msg.Err))
			return v, noticeCmd(api.MessageOr(msg.Err, msgSaveVehicleFailed), true)
		}
		return v, func() tea.Msg {
			return NavigateMsg{Path: PathVehicles, Notice: "Veículo salvo"}
		}
	case tea.KeyMsg:
		return v, v.handleKey(msg)
	}
	return v, nil
}

func (v *VehicleFormView) fill(veh fleet.Vehicle) {
	v.name.SetValue(veh.Name)
	v.brand = veh.Brand
	v.year.SetValue(strconv.Itoa(veh.Year))
	v.color.SetValue(veh.Color)
	v.description.SetValue(veh.Description)
	v.sold = veh.Sold
}

func (v *VehicleFormView) handleKey(msg tea.KeyMsg) tea.Cmd {
	if v.loading {
		if msg.String() == "esc" {
			return navigateCmd(PathVehicles)
		}
		return nil
	}
	switch msg.String() {
	case "esc":
		return navigateCmd(PathVehicles)
	case "ctrl+s":
		return v.submit()
	case "tab":
		v.focus.Next()
		return nil
	case "shift+tab":
		v.focus.Prev()
		return nil
	}

	switch v.focus.Current {
	case string(fleet.FieldBrand):
		switch msg.String() {
		case "left", "h":
			v.cycleBrand(-1)
		case "right", "l", " ":
			v.cycleBrand(1)
		case "enter":
			v.focus.Next()
		}
		return nil
	case focusSold:
		switch msg.String() {
		case " ", "x":
			v.sold = !v.sold
		case "enter":
			return v.submit()
		}
		return nil
	case string(fleet.FieldDescription):
		return v.updateText(fleet.FieldDescription, msg)
	}

	if msg.String() == "enter" {
		v.focus.Next()
		return nil
	}
	return v.updateText(fleet.Field(v.focus.Current), msg)
}

// updateText forwards msg to the focused input and clears that field's
// error when the value changes.
func (v *VehicleFormView) updateText(field fleet.Field, msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	var before, after string
	switch field {
	case fleet.FieldName:
		before = v.name.Value()
		v.name, cmd = v.name.Update(msg)
		after = v.name.Value()
	case fleet.FieldYear:
		before = v.year.Value()
		v.year, cmd = v.year.Update(msg)
		after = v.year.Value()
	case fleet.FieldColor:
		before = v.color.Value()
		v.color, cmd = v.color.Update(msg)
		after = v.color.Value()
	case fleet.FieldDescription:
		before = v.description.Value()
		v.description, cmd = v.description.Update(msg)
		after = v.description.Value()
	}
	if before != after {
		delete(v.errors, field)
	}
	return cmd
}

// brandOptions lists the selectable brands; a loaded vehicle's brand is
// kept even when the reference list lacks it.
func (v *VehicleFormView) brandOptions() []string {
	if v.brand == "" {
		return v.brands
	}
	for _, b := range v.brands {
		if b == v.brand {
			return v.brands
		}
	}
	return append([]string{v.brand}, v.brands...)
}

func (v *VehicleFormView) cycleBrand(step int) {
	opts := v.brandOptions()
	if len(opts) == 0 {
		return
	}
	idx := -1
	for i, b := range opts {
		if b == v.brand {
			idx = i
			break
		}
	}
	switch {
	case idx == -1 && step > 0:
		idx = 0
	case idx == -1:
		idx = len(opts) - 1
	default:
		idx = (idx + step + len(opts)) % len(opts)
	}
	v.brand = opts[idx]
	delete(v.errors, fleet.FieldBrand)
}

func (v *VehicleFormView) submit() tea.Cmd {
	if v.saving {
		return nil
	}
	in := v.Input()
	if errs := in.Validate(); len(errs) > 0 {
		v.errors = errs
		return nil
	}
	v.errors = fleet.FieldErrors{}
	v.saving = true
	return tea.Batch(v.spinner.Tick, saveVehicleCmd(v.client, v.token, v.vehicleID, in))
}

func (v *VehicleFormView) moveFocus(from, to string) {
	v.blurField(from)
	v.focusField(to)
}

func (v *VehicleFormView) blurField(id string) {
	switch fleet.Field(id) {
	case fleet.FieldName:
		v.name.Blur()
	case fleet.FieldYear:
		v.year.Blur()
	case fleet.FieldColor:
		v.color.Blur()
	case fleet.FieldDescription:
		v.description.Blur()
	}
}

func (v *VehicleFormView) focusField(id string) {
	switch fleet.Field(id) {
	case fleet.FieldName:
		v.name.Focus()
	case fleet.FieldYear:
		v.year.Focus()
	case fleet.FieldColor:
		v.color.Focus()
	case fleet.FieldDescription:
		v.description.Focus()
	}
}

// View implements View.
func (v *VehicleFormView) View() string {
	var b strings.Builder
	title := "Novo Veículo"
	if v.IsEdit() {
		title = "Editar Veículo"
	}
	b.WriteString(Styles.Title.Render(title))
	if v.loading || v.saving {
		b.WriteString(" " + v.spinner.View())
	}
	b.WriteString("\n\n")

	if v.loading {
		b.WriteString(Styles.Muted.Render("Carregando...") + "\n")
		return b.String()
	}

	b.WriteString(v.row(fleet.FieldName, "Nome do Veículo *", v.name.View()))
	b.WriteString(v.row(fleet.FieldBrand, "Marca *", v.brandView()))
	b.WriteString(v.row(fleet.FieldYear, "Ano *", v.year.View()))
	b.WriteString(v.row(fleet.FieldColor, "Cor", v.color.View()))
	b.WriteString(v.row(fleet.FieldDescription, "Descrição *", "\n"+v.description.View()))

	check := "[ ]"
	if v.sold {
		check = "[x]"
	}
	b.WriteString(v.label(focusSold, check+" Veículo vendido") + "\n\n")

	action := "ctrl+s: Salvar"
	if v.saving {
		action = "Salvando..."
	}
	b.WriteString(Styles.Hint.Render(action + "  esc: Cancelar  tab: próximo campo  ←/→: marca  espaço: vendido"))
	return b.String()
}

func (v *VehicleFormView) row(field fleet.Field, label, input string) string {
	line := v.label(string(field), label) + " " + input + "\n"
	if msg, ok := v.errors[field]; ok {
		line += "  " + Styles.Error.Render(msg) + "\n"
	}
	return line
}

func (v *VehicleFormView) label(id, text string) string {
	if v.focus.Current == id {
		return Styles.Selected.Render("> " + text)
	}
	return Styles.Normal.Render("  " + text)
}

func (v *VehicleFormView) brandView() string {
	if v.brand == "" {
		if len(v.brandOptions()) == 0 {
			return Styles.Empty.Render("nenhuma marca disponível")
		}
		return Styles.Muted.Render("< Selecione uma marca >")
	}
	return "< " + v.brand + " >"
}

