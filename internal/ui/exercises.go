package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"carfleet/internal/api"
	"carfleet/internal/exercise"
)

// Exercise tabs, in display order.
const (
	TabVoting = iota
	TabBubbleSort
	TabFactorial
	TabMultiples
	tabCount
)

const msgEmptyVector = "Informe os números separados por vírgula"

// exercisePanel is one tab: its inputs, last result and last error.
// Result and Err are never both set.
type exercisePanel struct {
	tab         string
	title       string
	description string
	fallback    string
	labels      []string
	inputs      []textinput.Model
	Result      []string
	Err         string
}

func newExercisePanel(tab, title, description, fallback string, labels []string, placeholder string) *exercisePanel {
	p := &exercisePanel{
		tab:         tab,
		title:       title,
		description: description,
		fallback:    fallback,
		labels:      labels,
	}
	for range labels {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = placeholder
		ti.CharLimit = 200
		ti.Width = 30
		p.inputs = append(p.inputs, ti)
	}
	return p
}

func (p *exercisePanel) values() []string {
	out := make([]string, len(p.inputs))
	for i, in := range p.inputs {
		out[i] = in.Value()
	}
	return out
}

func (p *exercisePanel) succeed(lines ...string) {
	p.Result = lines
	p.Err = ""
}

func (p *exercisePanel) fail(msg string) {
	p.Result = nil
	p.Err = msg
}

// ExercisesView hosts the four exercise tabs. Switching tabs keeps each
// panel's inputs and results. One request may be outstanding at a time.
type ExercisesView struct {
	client  FleetClient
	logger  *zap.Logger
	token   uint64
	panels  [tabCount]*exercisePanel
	active  int
	focus   FocusManager
	editing bool
	pending bool
	spinner spinner.Model
}

// Ensure ExercisesView implements View.
var _ View = (*ExercisesView)(nil)

func NewExercisesView(client FleetClient, logger *zap.Logger) *ExercisesView {
	v := &ExercisesView{client: client, logger: logger, token: nextScreenToken(), editing: true}
	v.panels[TabVoting] = newExercisePanel("1. Votos", "Cálculo de Percentuais de Votos",
		"Calcula o percentual de votos válidos, brancos e nulos em relação ao total de eleitores.",
		"Erro ao calcular percentuais",
		[]string{"Total de Eleitores", "Votos Válidos", "Votos Brancos", "Votos Nulos"}, "0")
	v.panels[TabBubbleSort] = newExercisePanel("2. Bubble Sort", "Ordenação com Bubble Sort",
		"Ordena um vetor de números inteiros utilizando o algoritmo Bubble Sort.",
		"Erro ao ordenar vetor",
		[]string{"Digite os números separados por vírgula"}, "Ex: 5, 3, 8, 1, 2")
	v.panels[TabFactorial] = newExercisePanel("3. Fatorial", "Cálculo de Fatorial",
		"Calcula o fatorial de um número natural usando recursão.",
		"Erro ao calcular fatorial",
		[]string{"Digite um número"}, "0")
	v.panels[TabMultiples] = newExercisePanel("4. Múltiplos", "Soma de Múltiplos de 3 ou 5",
		"Calcula a soma de todos os números múltiplos de 3 ou 5 abaixo de um número X.",
		"Erro ao calcular múltiplos",
		[]string{"Digite um número"}, "1")

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccent))
	v.spinner = s

	v.selectTab(TabVoting)
	return v
}

// Init implements View.
func (v *ExercisesView) Init() tea.Cmd {
	return textinput.Blink
}

// CapturesInput implements InputCapturer.
func (v *ExercisesView) CapturesInput() bool {
	return v.editing
}

// Active returns the selected tab.
func (v *ExercisesView) Active() int { return v.active }

// Pending reports whether a request is outstanding.
func (v *ExercisesView) Pending() bool { return v.pending }

// Panel returns the result and error of a tab.
func (v *ExercisesView) Panel(tab int) (result []string, err string) {
	p := v.panels[tab]
	return p.Result, p.Err
}

// SetInputs fills the inputs of a tab, in label order.
func (v *ExercisesView) SetInputs(tab int, values ...string) {
	p := v.panels[tab]
	for i := range p.inputs {
		if i < len(values) {
			p.inputs[i].SetValue(values[i])
		}
	}
}

func (v *ExercisesView) selectTab(tab int) {
	v.blurAll()
	v.active = (tab + tabCount) % tabCount
	p := v.panels[v.active]
	order := make([]string, len(p.inputs))
	for i := range p.inputs {
		order[i] = fmt.Sprint(i)
	}
	v.focus = FocusManager{Order: order, OnChange: v.moveFocus}
	v.focus.SetFocus(order[0])
	if !v.editing {
		v.blurAll()
	}
}

func (v *ExercisesView) focusedInput() int {
	return max(v.focus.Index(), 0)
}

func (v *ExercisesView) moveFocus(from, to string) {
	p := v.panels[v.active]
	for i := range p.inputs {
		switch fmt.Sprint(i) {
		case from:
			p.inputs[i].Blur()
		case to:
			p.inputs[i].Focus()
		}
	}
}

func (v *ExercisesView) blurAll() {
	for _, p := range v.panels {
		if p == nil {
			continue
		}
		for i := range p.inputs {
			p.inputs[i].Blur()
		}
	}
}

// Update implements View.
func (v *ExercisesView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if v.pending {
			var cmd tea.Cmd
			v.spinner, cmd = v.spinner.Update(msg)
			return v, cmd
		}
	case VotingResultMsg:
		if msg.Token != v.token {
			return v, nil
		}
		v.finish(TabVoting, msg.Err, func(p *exercisePanel) {
			p.succeed(
				"Percentual de Votos Válidos: "+exercise.FormatPercent(msg.Result.ValidPercent),
				"Percentual de Votos Brancos: "+exercise.FormatPercent(msg.Result.BlankPercent),
				"Percentual de Votos Nulos: "+exercise.FormatPercent(msg.Result.NullPercent),
			)
		})
	case BubbleSortResultMsg:
		if msg.Token != v.token {
			return v, nil
		}
		v.finish(TabBubbleSort, msg.Err, func(p *exercisePanel) {
			p.succeed(
				"Vetor Original: "+exercise.FormatVector(msg.Result.Original),
				"Vetor Ordenado: "+exercise.FormatVector(msg.Result.Sorted),
			)
		})
	case FactorialResultMsg:
		if msg.Token != v.token {
			return v, nil
		}
		v.finish(TabFactorial, msg.Err, func(p *exercisePanel) {
			p.succeed(fmt.Sprintf("Fatorial de %d: %s", msg.Result.Number, msg.Result.Factorial))
		})
	case MultiplesResultMsg:
		if msg.Token != v.token {
			return v, nil
		}
		v.finish(TabMultiples, msg.Err, func(p *exercisePanel) {
			p.succeed(fmt.Sprintf("Soma dos múltiplos de 3 ou 5 abaixo de %d: %d", msg.Result.Limit, msg.Result.Sum))
		})
	case tea.KeyMsg:
		return v, v.handleKey(msg)
	}
	return v, nil
}

func (v *ExercisesView) finish(tab int, err error, onSuccess func(*exercisePanel)) {
	v.pending = false
	p := v.panels[tab]
	if err != nil {
		v.logger.Warn("exercise request failed", zap.String("exercise", p.title), zap.Error(err))
		p.fail(api.MessageOr(err, p.fallback))
		return
	}
	onSuccess(p)
}

func (v *ExercisesView) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+n":
		v.selectTab(v.active + 1)
		return nil
	case "ctrl+p":
		v.selectTab(v.active - 1)
		return nil
	case "f1", "f2", "f3", "f4":
		v.selectTab(int(msg.String()[1] - '1'))
		return nil
	case "enter":
		return v.submit()
	}

	if !v.editing {
		switch msg.String() {
		case "tab", "i":
			v.editing = true
			v.panels[v.active].inputs[v.focusedInput()].Focus()
			return textinput.Blink
		case "1", "2", "3", "4":
			v.selectTab(int(msg.String()[0] - '1'))
		}
		return nil
	}

	switch msg.String() {
	case "esc":
		v.editing = false
		v.blurAll()
		return nil
	case "tab", "down":
		v.focus.Next()
		return nil
	case "shift+tab", "up":
		v.focus.Prev()
		return nil
	}
	p := v.panels[v.active]
	i := v.focusedInput()
	var cmd tea.Cmd
	p.inputs[i], cmd = p.inputs[i].Update(msg)
	return cmd
}

// submit parses and checks the active panel, then posts it.
func (v *ExercisesView) submit() tea.Cmd {
	if v.pending {
		return nil
	}
	p := v.panels[v.active]
	var cmd tea.Cmd
	switch v.active {
	case TabVoting:
		n, ok := exercise.ParseNumbers(p.values()...)
		if !ok {
			p.fail(exercise.ErrInvalidNumber)
			return nil
		}
		in := exercise.VotingInput{TotalVoters: n[0], ValidVotes: n[1], BlankVotes: n[2], NullVotes: n[3]}
		if msg := exercise.Check(in); msg != "" {
			p.fail(msg)
			return nil
		}
		cmd = votingCmd(v.client, v.token, in)
	case TabBubbleSort:
		raw := p.inputs[0].Value()
		if strings.TrimSpace(raw) == "" {
			p.fail(msgEmptyVector)
			return nil
		}
		cmd = bubbleSortCmd(v.client, v.token, exercise.BubbleSortInput{Vector: exercise.ParseVector(raw)})
	case TabFactorial:
		n, ok := exercise.ParseNumbers(p.values()...)
		if !ok {
			p.fail(exercise.ErrInvalidNumber)
			return nil
		}
		in := exercise.FactorialInput{Number: n[0]}
		if msg := exercise.Check(in); msg != "" {
			p.fail(msg)
			return nil
		}
		cmd = factorialCmd(v.client, v.token, in)
	case TabMultiples:
		n, ok := exercise.ParseNumbers(p.values()...)
		if !ok {
			p.fail(exercise.ErrInvalidNumber)
			return nil
		}
		in := exercise.MultiplesInput{Number: n[0]}
		if msg := exercise.Check(in); msg != "" {
			p.fail(msg)
			return nil
		}
		cmd = multiplesCmd(v.client, v.token, in)
	}
	v.pending = true
	return tea.Batch(v.spinner.Tick, cmd)
}

// View implements View.
func (v *ExercisesView) View() string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render("Exercícios de Lógica") + "\n")

	tabs := make([]string, tabCount)
	for i, p := range v.panels {
		if i == v.active {
			tabs[i] = Styles.NavActive.Render(p.tab)
		} else {
			tabs[i] = Styles.NavItem.Render(p.tab)
		}
	}
	b.WriteString(strings.Join(tabs, " ") + "\n\n")

	p := v.panels[v.active]
	b.WriteString(Styles.Section.Render(p.title) + "\n")
	b.WriteString(Styles.Muted.Render(p.description) + "\n\n")
	for i, label := range p.labels {
		marker := "  "
		style := Styles.Normal
		if v.editing && fmt.Sprint(i) == v.focus.Current {
			marker = "> "
			style = Styles.Selected
		}
		b.WriteString(style.Render(marker+label+":") + " " + p.inputs[i].View() + "\n")
	}

	action := "enter: Calcular"
	if v.active == TabBubbleSort {
		action = "enter: Ordenar"
	}
	if v.pending {
		action = v.spinner.View() + " Processando..."
	}
	b.WriteString("\n" + Styles.Hint.Render(action) + "\n")

	switch {
	case p.Err != "":
		b.WriteString("\n" + Styles.Error.Render("Erro: "+p.Err) + "\n")
	case len(p.Result) > 0:
		b.WriteString("\n" + Styles.Section.Render("Resultado:") + "\n")
		for _, line := range p.Result {
			b.WriteString(line + "\n")
		}
	}

	hint := "ctrl+n/ctrl+p ou F1-F4: abas  tab: próximo campo  esc: sair dos campos"
	if !v.editing {
		hint = "ctrl+n/ctrl+p ou 1-4: abas  tab: editar  enter: enviar  SPC: menu"
	}
	b.WriteString("\n" + Styles.Hint.Render(hint))
	return b.String()
}
