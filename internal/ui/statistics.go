package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"carfleet/internal/fleet"
	"carfleet/internal/ui/textutil"
)

const msgNoData = "Nenhum dado disponível"

// StatisticsView renders counters, two bar charts and the vehicles
// registered in the last week. It is refetched on every visit.
type StatisticsView struct {
	client  FleetClient
	logger  *zap.Logger
	report  fleet.Report
	loading bool
	failed  bool
	spinner spinner.Model
	width   int
}

// Ensure StatisticsView implements View.
var _ View = (*StatisticsView)(nil)

func NewStatisticsView(client FleetClient, logger *zap.Logger) *StatisticsView {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccent))
	return &StatisticsView{
		client:  client,
		logger:  logger,
		loading: true,
		spinner: s,
		width:   100,
	}
}

// Init implements View.
func (v *StatisticsView) Init() tea.Cmd {
	return tea.Batch(v.spinner.Tick, loadStatisticsCmd(v.client, v.logger))
}

// Report returns the snapshot being displayed.
func (v *StatisticsView) Report() fleet.Report { return v.report }

// Loading reports whether the reads are outstanding.
func (v *StatisticsView) Loading() bool { return v.loading }

// Update implements View.
func (v *StatisticsView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
	case spinner.TickMsg:
		if v.loading {
			var cmd tea.Cmd
			v.spinner, cmd = v.spinner.Update(msg)
			return v, cmd
		}
	case StatisticsLoadedMsg:
		v.loading = false
		v.failed = msg.Err != nil
		v.report = msg.Report
		if v.failed {
			v.report = fleet.Report{}
		}
	case tea.KeyMsg:
		if msg.String() == "r" && !v.loading {
			v.loading = true
			return v, v.Init()
		}
	}
	return v, nil
}

// View implements View.
func (v *StatisticsView) View() string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render("Estatísticas"))
	if v.loading {
		b.WriteString(" " + v.spinner.View() + "\n\n")
		b.WriteString(Styles.Muted.Render("Carregando estatísticas..."))
		return b.String()
	}
	b.WriteString("\n")

	r := v.report
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		counterCard("Total de Veículos", r.Summary.TotalVehicles),
		counterCard("Veículos Vendidos", r.Summary.SoldVehicles),
		counterCard("Veículos Disponíveis", r.Summary.UnsoldVehicles),
		counterCard("Cadastrados esta Semana", r.LastWeek.Total),
	) + "\n")

	chartWidth := (v.width - 4) / 2
	if chartWidth < 30 {
		chartWidth = 30
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		renderChart("Distribuição por Década", fleet.DecadeBars(r.ByDecade), chartWidth),
		renderChart("Distribuição por Fabricante", fleet.BrandBars(r.ByBrand), chartWidth),
	) + "\n")

	if len(r.LastWeek.Vehicles) > 0 {
		b.WriteString(Styles.Section.Render("Veículos Cadastrados esta Semana") + "\n")
		b.WriteString(v.renderRecent(r.LastWeek.Vehicles) + "\n")
	}
	b.WriteString(Styles.Hint.Render("r: recarregar  SPC: menu"))
	return b.String()
}

func counterCard(title string, n int) string {
	return Styles.Card.Render(Styles.Muted.Render(title) + "\n" + Styles.Number.Render(strconv.Itoa(n)))
}

// renderChart draws one labelled bar per entry. Bars are scaled to the
// largest count of the same dataset.
func renderChart(title string, bars []fleet.Bar, width int) string {
	var b strings.Builder
	b.WriteString(Styles.Section.Render(title) + "\n")
	if len(bars) == 0 {
		b.WriteString(Styles.Empty.Render(msgNoData))
		return Styles.BoxCompact.Width(width).Render(b.String())
	}

	labelWidth := 6
	countWidth := 1
	for _, bar := range bars {
		labelWidth = max(labelWidth, textutil.VisualWidth(bar.Label))
		countWidth = max(countWidth, len(strconv.Itoa(bar.Count)))
	}
	labelWidth = min(labelWidth, 14)
	barWidth := width - labelWidth - countWidth - 6
	if barWidth < 5 {
		barWidth = 5
	}

	lines := make([]string, len(bars))
	for i, bar := range bars {
		lines[i] = fmt.Sprintf("%s %s %s",
			textutil.PadRightVisual(bar.Label, labelWidth),
			Styles.Bar.Render(textutil.PadRightVisual(textutil.Bar(bar.Ratio, barWidth), barWidth)),
			textutil.PadLeftVisual(strconv.Itoa(bar.Count), countWidth),
		)
	}
	b.WriteString(strings.Join(lines, "\n"))
	return Styles.BoxCompact.Width(width).Render(b.String())
}

func (v *StatisticsView) renderRecent(vehicles []fleet.Vehicle) string {
	const cardWidth = 24
	perRow := max(v.width/(cardWidth+3), 1)

	var rows []string
	var row []string
	for _, veh := range vehicles {
		body := Styles.Title.Render(textutil.Truncate(veh.Name, cardWidth)) + "\n" +
			"Marca: " + textutil.Truncate(veh.Brand, cardWidth-7) + "\n" +
			"Ano: " + strconv.Itoa(veh.Year) + "\n" +
			"Cor: " + textutil.Truncate(veh.ColorLabel(), cardWidth-5) + "\n" +
			statusBadge(veh.Sold, veh.StatusLabel())
		row = append(row, Styles.Card.Width(cardWidth).Render(body))
		if len(row) == perRow {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return strings.Join(rows, "\n")
}
