package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/habitual/internal/notifier"
)

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v-4)
		return m, nil

	case changeMsg:
		return m, tea.Batch(m.refresh(), m.waitForChange())
	}

	switch m.state {
	case StateForm:
		return m, m.updateForm(msg)
	case StateConfirmDelete:
		return m, m.updateConfirmDelete(msg)
	default:
		return m, m.updateList(msg)
	}
}

func (m *Model) updateList(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return cmd
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.quitting = true
		return tea.Quit
	case key.Matches(keyMsg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return nil
	case key.Matches(keyMsg, m.keys.Add):
		m.clearStatus()
		m.editor.Reset()
		return m.openForm()
	case key.Matches(keyMsg, m.keys.Edit):
		h, ok := m.selected()
		if !ok {
			return nil
		}
		m.clearStatus()
		m.editor.Edit(h)
		return m.openForm()
	case key.Matches(keyMsg, m.keys.Delete):
		h, ok := m.selected()
		if !ok {
			return nil
		}
		m.clearStatus()
		m.editor.Edit(h)
		m.state = StateConfirmDelete
		return nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return cmd
}

func (m *Model) updateForm(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.closeForm()
		return nil
	}

	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		if err := m.submit(); err != nil {
			m.err = err
			// Reopen with the entered values so the user can fix them
			m.form = NewHabitForm(m.formData, m.editor.NotificationPermissionGranted)
			cmds = append(cmds, m.form.Init())
			break
		}
		m.err = nil
		m.state = StateList
	case huh.StateAborted:
		m.closeForm()
	}
	return tea.Batch(cmds...)
}

func (m *Model) updateConfirmDelete(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Confirm):
		target, _ := m.editor.Target()
		if err := m.editor.Discard(m.ctx, m.store); err != nil {
			m.err = err
			m.editor.Reset()
		} else {
			m.status = "Deleted " + target.Title
		}
		m.state = StateList
	case key.Matches(keyMsg, m.keys.Cancel):
		m.editor.Reset()
		m.state = StateList
	}
	return nil
}

func (m *Model) closeForm() {
	m.editor.Reset()
	m.form = nil
	m.formData = nil
	m.err = nil
	m.state = StateList
}

func (m *Model) clearStatus() {
	m.status = ""
	m.err = nil
}

// errorText adds a hint for errors the user can act on
func errorText(err error) string {
	if errors.Is(err, notifier.ErrPermissionDenied) {
		return err.Error() + " (enable notifications in settings or turn the reminder off)"
	}
	return err.Error()
}
