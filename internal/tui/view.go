package tui

import (
	"github.com/charmbracelet/lipgloss"
)

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateForm:
		content = m.viewForm()
	case StateConfirmDelete:
		content = m.viewConfirmDelete()
	default:
		content = docStyle.Render(m.list.View())
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render("Habits"),
		content,
		m.viewStatus(),
		m.help.View(m.keys),
	)
}

func (m *Model) viewForm() string {
	heading := "New habit"
	if target, ok := m.editor.Target(); ok {
		heading = "Edit " + target.Title
	}
	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, heading, "", m.form.View()))
}

func (m *Model) viewConfirmDelete() string {
	title := ""
	if target, ok := m.editor.Target(); ok {
		title = target.Title
	}
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render("Delete \""+title+"\" and its reminders?"),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}

func (m *Model) viewStatus() string {
	if m.err != nil {
		return warningStyle.Render("⚠ " + errorText(m.err))
	}
	if m.status != "" {
		return statusStyle.Render(m.status)
	}
	return ""
}
