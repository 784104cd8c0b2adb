package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"carfleet/internal/fleet"
)

const (
	msgLoadVehiclesFailed  = "Erro ao carregar veículos"
	msgDeleteVehicleFailed = "Erro ao excluir veículo"
	msgPatchVehicleFailed  = "Erro ao atualizar veículo"
)

// filter input order; ids double as the api query names.
var filterFields = []struct {
	id          string
	placeholder string
}{
	{"veiculo", "Nome do veículo"},
	{"marca", "Marca"},
	{"ano", "Ano"},
	{"cor", "Cor"},
}

// VehicleListView shows the fleet in a table with local filters.
type VehicleListView struct {
	client FleetClient
	logger *zap.Logger

	vehicles []fleet.Vehicle // last successful fetch
	filtered []fleet.Vehicle // rows currently shown
	criteria fleet.Criteria  // last applied criteria

	filters   []textinput.Model
	focus     FocusManager
	filtering bool

	table   table.Model
	spinner spinner.Model
	loading bool
	busy    bool // delete or toggle in flight
	loadErr string
	width   int
	height  int
}

// Ensure VehicleListView implements View.
var _ View = (*VehicleListView)(nil)

func NewVehicleListView(client FleetClient, logger *zap.Logger) *VehicleListView {
	v := &VehicleListView{
		client:  client,
		logger:  logger,
		loading: true,
		width:   100,
		height:  20,
	}

	order := make([]string, len(filterFields))
	for i, f := range filterFields {
		ti := textinput.New()
		ti.Placeholder = f.placeholder
		ti.Prompt = ""
		ti.CharLimit = 100
		ti.Width = 18
		v.filters = append(v.filters, ti)
		order[i] = f.id
	}
	v.focus = FocusManager{
		Current:  order[0],
		Order:    order,
		OnChange: v.focusFilter,
	}

	t := table.New(
		table.WithColumns(vehicleColumns(v.width)),
		table.WithFocused(true),
		table.WithHeight(v.tableHeight()),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color(ColorHighlight)).
		Background(lipgloss.NoColor{}).
		Bold(true)
	t.SetStyles(styles)
	v.table = t

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccent))
	v.spinner = s
	return v
}

// vehicleColumns splits the available width; the description takes the rest.
func vehicleColumns(width int) []table.Column {
	fixed := []table.Column{
		{Title: "Veículo", Width: 18},
		{Title: "Marca", Width: 12},
		{Title: "Ano", Width: 5},
		{Title: "Descrição", Width: 0},
		{Title: "Cor", Width: 10},
		{Title: "Status", Width: 10},
	}
	used := 0
	for _, c := range fixed {
		used += c.Width + 2 // cell padding
	}
	desc := width - used - 2
	if desc < 12 {
		desc = 12
	}
	fixed[3].Width = desc
	return fixed
}

func (v *VehicleListView) tableHeight() int {
	h := v.height - 6 // title, filters, hint
	if h < 3 {
		h = 3
	}
	return h
}

// Init implements View.
func (v *VehicleListView) Init() tea.Cmd {
	return tea.Batch(v.spinner.Tick, loadVehiclesCmd(v.client))
}

// CapturesInput implements InputCapturer.
func (v *VehicleListView) CapturesInput() bool {
	return v.filtering
}

// Vehicles returns the last fetched collection.
func (v *VehicleListView) Vehicles() []fleet.Vehicle { return v.vehicles }

// Filtered returns the rows currently displayed.
func (v *VehicleListView) Filtered() []fleet.Vehicle { return v.filtered }

// Criteria returns the applied filter criteria.
func (v *VehicleListView) Criteria() fleet.Criteria { return v.criteria }

// Loading reports whether the collection is being fetched.
func (v *VehicleListView) Loading() bool { return v.loading }

// Selected returns the highlighted vehicle.
func (v *VehicleListView) Selected() (fleet.Vehicle, bool) {
	i := v.table.Cursor()
	if i < 0 || i >= len(v.filtered) {
		return fleet.Vehicle{}, false
	}
	return v.filtered[i], true
}

// Update implements View.
func (v *VehicleListView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width, v.height = msg.Width, msg.Height
		v.table.SetColumns(vehicleColumns(v.width))
		v.table.SetHeight(v.tableHeight())
		return v, nil
	case spinner.TickMsg:
		if v.loading || v.busy {
			var cmd tea.Cmd
			v.spinner, cmd = v.spinner.Update(msg)
			return v, cmd
		}
		return v, nil
	case VehiclesLoadedMsg:
		return v, v.handleLoaded(msg)
	case DeleteVehicleMsg:
		if v.busy {
			return v, nil
		}
		v.busy = true
		return v, tea.Batch(v.spinner.Tick, deleteVehicleCmd(v.client, msg.ID))
	case VehicleDeletedMsg:
		v.busy = false
		if msg.Err != nil {
			v.logger.Warn("failed to delete vehicle", zap.String("id", msg.ID), zap.Error(msg.Err))
			return v, noticeCmd(msgDeleteVehicleFailed, true)
		}
		return v, tea.Batch(noticeCmd("Veículo excluído", false), v.reload())
	case VehiclePatchedMsg:
		v.busy = false
		if msg.Err != nil {
			v.logger.Warn("failed to update vehicle", zap.Error(msg.Err))
			return v, noticeCmd(msgPatchVehicleFailed, true)
		}
		return v, v.reload()
	case tea.KeyMsg:
		if v.filtering {
			return v, v.updateFilters(msg)
		}
		return v, v.handleKey(msg)
	}
	return v, nil
}

func (v *VehicleListView) handleLoaded(msg VehiclesLoadedMsg) tea.Cmd {
	v.loading = false
	if msg.Err != nil {
		v.logger.Error("failed to load vehicles", zap.Error(msg.Err))
		v.loadErr = msgLoadVehiclesFailed
		return nil
	}
	v.loadErr = ""
	v.vehicles = msg.Vehicles
	v.applyCriteria(v.criteria)
	return nil
}

func (v *VehicleListView) reload() tea.Cmd {
	v.loading = true
	return tea.Batch(v.spinner.Tick, loadVehiclesCmd(v.client))
}

func (v *VehicleListView) handleKey(msg tea.KeyMsg) tea.Cmd {
	if v.loading || v.loadErr != "" {
		if msg.String() == "r" && !v.loading {
			return v.reload()
		}
		return nil
	}
	switch msg.String() {
	case "/":
		v.filtering = true
		v.focus.SetFocus(v.focus.Order[0])
		return v.filters[0].Focus()
	case "c":
		v.clearFilters()
		return nil
	case "n":
		return navigateCmd(PathNewVehicle)
	case "e", "enter":
		if sel, ok := v.Selected(); ok {
			return navigateCmd(EditVehiclePath(sel.ID))
		}
		return nil
	case "d":
		if sel, ok := v.Selected(); ok && !v.busy {
			return func() tea.Msg { return ShowDeleteVehicleMsg{Vehicle: sel} }
		}
		return nil
	case "s":
		if sel, ok := v.Selected(); ok && !v.busy {
			v.busy = true
			return tea.Batch(v.spinner.Tick, toggleSoldCmd(v.client, sel))
		}
		return nil
	case "r":
		return v.reload()
	}
	var cmd tea.Cmd
	v.table, cmd = v.table.Update(msg)
	return cmd
}

func (v *VehicleListView) updateFilters(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		v.stopFiltering()
		return nil
	case "tab", "down":
		v.focus.Next()
		return nil
	case "shift+tab", "up":
		v.focus.Prev()
		return nil
	case "enter":
		v.applyCriteria(v.inputCriteria())
		v.stopFiltering()
		return nil
	}
	i := v.focusIndex()
	var cmd tea.Cmd
	v.filters[i], cmd = v.filters[i].Update(msg)
	return cmd
}

func (v *VehicleListView) stopFiltering() {
	v.filtering = false
	for i := range v.filters {
		v.filters[i].Blur()
	}
}

func (v *VehicleListView) focusFilter(from, to string) {
	for i, f := range filterFields {
		switch f.id {
		case from:
			v.filters[i].Blur()
		case to:
			v.filters[i].Focus()
		}
	}
}

func (v *VehicleListView) focusIndex() int {
	return max(v.focus.Index(), 0)
}

func (v *VehicleListView) inputCriteria() fleet.Criteria {
	return fleet.Criteria{
		Name:  strings.TrimSpace(v.filters[0].Value()),
		Brand: strings.TrimSpace(v.filters[1].Value()),
		Year:  strings.TrimSpace(v.filters[2].Value()),
		Color: strings.TrimSpace(v.filters[3].Value()),
	}
}

// SetFilterInputs fills the filter inputs without applying them.
func (v *VehicleListView) SetFilterInputs(c fleet.Criteria) {
	for i, val := range []string{c.Name, c.Brand, c.Year, c.Color} {
		v.filters[i].SetValue(val)
	}
}

func (v *VehicleListView) applyCriteria(c fleet.Criteria) {
	v.criteria = c
	v.filtered = fleet.Filter(v.vehicles, c)
	v.refreshRows()
}

func (v *VehicleListView) clearFilters() {
	for i := range v.filters {
		v.filters[i].Reset()
	}
	v.applyCriteria(fleet.Criteria{})
}

func (v *VehicleListView) refreshRows() {
	rows := make([]table.Row, len(v.filtered))
	for i, veh := range v.filtered {
		rows[i] = table.Row{
			veh.Name,
			veh.Brand,
			strconv.Itoa(veh.Year),
			strings.ReplaceAll(veh.Description, "\n", " "),
			veh.ColorLabel(),
			veh.StatusLabel(),
		}
	}
	v.table.SetRows(rows)
	if c := v.table.Cursor(); c >= len(rows) {
		v.table.SetCursor(max(len(rows)-1, 0))
	}
}

// View implements View.
func (v *VehicleListView) View() string {
	var b strings.Builder
	title := "Veículos Cadastrados"
	if !v.loading && v.loadErr == "" {
		title = fmt.Sprintf("%s (%d/%d)", title, len(v.filtered), len(v.vehicles))
	}
	b.WriteString(Styles.Title.Render(title))
	if v.loading || v.busy {
		b.WriteString(" " + v.spinner.View())
	}
	b.WriteString("\n")

	switch {
	case v.loading && v.vehicles == nil:
		b.WriteString(Styles.Muted.Render("Carregando...") + "\n")
		return b.String()
	case v.loadErr != "":
		b.WriteString(Styles.Error.Render(v.loadErr) + "\n")
		b.WriteString(Styles.Hint.Render("r: tentar novamente") + "\n")
		return b.String()
	}

	b.WriteString(v.renderFilters() + "\n")
	if len(v.filtered) == 0 {
		b.WriteString(Styles.Empty.Render("Nenhum veículo encontrado") + "\n")
	} else {
		b.WriteString(v.table.View() + "\n")
	}

	hint := "/: filtrar  c: limpar  n: novo  e: editar  d: excluir  s: vendido  r: recarregar  SPC: menu"
	if v.filtering {
		hint = "tab: próximo campo  enter: filtrar  esc: sair dos filtros"
	}
	b.WriteString(Styles.Hint.Render(hint))
	return b.String()
}

func (v *VehicleListView) renderFilters() string {
	parts := make([]string, len(v.filters))
	for i, f := range filterFields {
		label := Styles.Muted.Render(f.placeholder + ":")
		if v.filtering && v.focus.Current == f.id {
			label = Styles.Selected.Render(f.placeholder + ":")
		}
		parts[i] = label + " " + v.filters[i].View()
	}
	return Styles.BoxCompact.Render("Filtros  " + strings.Join(parts, "  "))
}
