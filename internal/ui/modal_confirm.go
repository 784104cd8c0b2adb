package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"carfleet/internal/fleet"
)

// ConfirmModal is a generic confirmation modal.
// Enter or y confirms; Esc or n cancels.
type ConfirmModal struct {
	Title     string
	Label     string
	Details   string // optional warning line
	OnConfirm func() tea.Msg
}

// Ensure ConfirmModal implements View.
var _ View = (*ConfirmModal)(nil)

func NewConfirmModal(title, label string, onConfirm func() tea.Msg) *ConfirmModal {
	return &ConfirmModal{
		Title:     title,
		Label:     label,
		OnConfirm: onConfirm,
	}
}

// WithDetails adds a warning line to the modal.
func (m *ConfirmModal) WithDetails(details string) *ConfirmModal {
	m.Details = details
	return m
}

// NewDeleteVehicleConfirmModal asks before deleting v.
func NewDeleteVehicleConfirmModal(v fleet.Vehicle) *ConfirmModal {
	id := v.ID
	return NewConfirmModal(
		"Excluir veículo?",
		fmt.Sprintf("%s (%s, %d)", v.Name, v.Brand, v.Year),
		func() tea.Msg { return DeleteVehicleMsg{ID: id} },
	).WithDetails("Tem certeza que deseja excluir este veículo?")
}

// Init implements View.
func (m *ConfirmModal) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *ConfirmModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc", "n":
			return m, func() tea.Msg { return DismissModalMsg{} }
		case "enter", "y":
			if m.OnConfirm != nil {
				return m, m.OnConfirm
			}
		}
	}
	return m, nil
}

// View implements View.
func (m *ConfirmModal) View() string {
	content := Styles.TitleWarning.Render(m.Title) + "\n\n"
	content += Styles.Label.Render(m.Label)
	if m.Details != "" {
		content += "\n" + Styles.Details.Render(m.Details)
	}
	content += "\n\n" + Styles.Hint.Render("y/Enter: confirmar  Esc: cancelar")
	return Styles.BoxDanger.Render(content)
}
