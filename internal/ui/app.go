package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// footerText is the closing line under every screen.
const footerText = "© 2025 Car Fleet API - Desenvolvido com Go"

// chromeHeight is the rows taken by the nav bar, status line and footer.
const chromeHeight = 5

// AppModel is the root model. It owns routing, overlays, global keys and
// the status line; per-screen state lives in Screen.
type AppModel struct {
	Route         Route
	Screen        View
	Overlays      OverlayStack
	KeyHandler    *KeyHandler
	Client        FleetClient
	Logger        *zap.Logger
	Status        string
	StatusIsError bool

	width  int
	height int
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root model showing startPath.
func NewAppModel(client FleetClient, logger *zap.Logger, startPath string) *AppModel {
	if logger == nil {
		logger = zap.NewNop()
	}
	reg := NewKeybindRegistry()
	reg.BindWithDesc("q", tea.Quit, "Sair")
	reg.BindWithDesc("ctrl+c", tea.Quit, "Sair")
	reg.BindWithDesc("SPC q", tea.Quit, "Sair")
	reg.BindWithDesc("SPC v", navigateCmd(PathVehicles), "Veículos")
	reg.BindWithDesc("SPC s", navigateCmd(PathStatistics), "Estatísticas")
	reg.BindWithDesc("SPC e", navigateCmd(PathExercises), "Exercícios")
	reg.BindWithDescForScreens("SPC n", navigateCmd(PathNewVehicle), "Novo veículo",
		[]Screen{ScreenVehicles})

	m := &AppModel{
		KeyHandler: NewKeyHandler(reg),
		Client:     client,
		Logger:     logger,
	}
	m.Route = ParseRoute(startPath)
	m.Screen = m.newScreen(m.Route)
	return m
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

func (m *AppModel) newScreen(r Route) View {
	switch r.Screen {
	case ScreenVehicleForm:
		return NewVehicleFormView(m.Client, m.Logger, r.VehicleID)
	case ScreenStatistics:
		return NewStatisticsView(m.Client, m.Logger)
	case ScreenExercises:
		return NewExercisesView(m.Client, m.Logger)
	default:
		return NewVehicleListView(m.Client, m.Logger)
	}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.Screen.Init()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		return a, a.updateScreen(a.screenSize())
	case NavigateMsg:
		return a, a.navigate(msg)
	case NoticeMsg:
		a.Status = msg.Text
		a.StatusIsError = msg.IsError
		return a, nil
	case ShowDeleteVehicleMsg:
		a.Overlays.Push(Overlay{View: NewDeleteVehicleConfirmModal(msg.Vehicle)})
		return a, nil
	case DismissModalMsg:
		a.Overlays.Pop()
		return a, nil
	case DeleteVehicleMsg:
		a.Overlays.Pop()
		return a, a.updateScreen(msg)
	case tea.KeyMsg:
		return a, a.handleKey(msg)
	}
	return a, a.updateScreen(msg)
}

func (a *appModelAdapter) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}
	if a.Overlays.Len() > 0 {
		cmd, _ := a.Overlays.UpdateTop(msg)
		return cmd
	}
	if a.KeyHandler != nil && (a.KeyHandler.LeaderWaiting || !capturesInput(a.Screen)) {
		if consumed, cmd := a.KeyHandler.Handle(msg); consumed {
			return cmd
		}
	}
	return a.updateScreen(msg)
}

func (a *appModelAdapter) updateScreen(msg tea.Msg) tea.Cmd {
	v, cmd := a.Screen.Update(msg)
	a.Screen = v
	return cmd
}

// navigate replaces the screen with a fresh one for msg.Path. State of the
// previous screen, including its overlays, is discarded.
func (a *appModelAdapter) navigate(msg NavigateMsg) tea.Cmd {
	a.Overlays.Clear()
	if a.KeyHandler != nil {
		a.KeyHandler.Reset()
	}
	a.Route = ParseRoute(msg.Path)
	a.Screen = a.newScreen(a.Route)
	a.Status = msg.Notice
	a.StatusIsError = msg.NoticeIsError
	a.Logger.Debug("navigate", zap.String("path", a.Route.Path()))

	var cmds []tea.Cmd
	if a.width > 0 {
		cmds = append(cmds, a.updateScreen(a.screenSize()))
	}
	cmds = append(cmds, a.Screen.Init())
	return tea.Batch(cmds...)
}

func (a *appModelAdapter) screenSize() tea.WindowSizeMsg {
	return tea.WindowSizeMsg{Width: a.width, Height: max(a.height-chromeHeight, 1)}
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	var b strings.Builder
	b.WriteString(a.renderNav() + "\n\n")

	body := a.Screen.View()
	if top, ok := a.Overlays.Peek(); ok {
		body = top.View.View()
		if a.width > 0 {
			body = lipgloss.Place(a.width, max(a.height-chromeHeight, lipgloss.Height(body)),
				lipgloss.Center, lipgloss.Center, body)
		}
	}
	b.WriteString(body + "\n")

	if a.Status != "" {
		style := Styles.StatusOK
		if a.StatusIsError {
			style = Styles.StatusError
		}
		b.WriteString(style.Render(a.Status))
	}
	b.WriteString("\n" + Styles.Footer.Render(footerText))

	if a.KeyHandler != nil && a.KeyHandler.LeaderWaiting {
		b.WriteString("\n" + RenderKeybindHelp(a.KeyHandler, a.Route.Screen))
	}
	return b.String()
}

var navSections = []struct {
	screen Screen
	label  string
}{
	{ScreenVehicles, "Veículos"},
	{ScreenStatistics, "Estatísticas"},
	{ScreenExercises, "Exercícios"},
}

func (a *appModelAdapter) renderNav() string {
	items := []string{Styles.NavLogo.Render("🚗 Car Fleet Manager")}
	section := a.Route.Section()
	for _, s := range navSections {
		if s.screen == section {
			items = append(items, Styles.NavActive.Render(s.label))
		} else {
			items = append(items, Styles.NavItem.Render(s.label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, items...)
}
