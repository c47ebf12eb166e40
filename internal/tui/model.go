package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/habitual/internal/editor"
	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/notifier"
	"github.com/julianstephens/habitual/internal/storage"
)

type SessionState int

const (
	StateList SessionState = iota
	StateForm
	StateConfirmDelete
)

// changeMsg is sent when the store reports a habit write
type changeMsg storage.Change

type Model struct {
	ctx      context.Context
	store    storage.Provider
	editor   *editor.State
	state    SessionState
	keys     KeyMap
	help     help.Model
	list     list.Model
	form     *huh.Form
	formData *habitFormModel
	status   string
	err      error
	quitting bool
	width    int
	height   int

	changes     chan storage.Change
	done        chan struct{}
	unsubscribe func()
}

func NewModel(ctx context.Context, store storage.Provider, svc notifier.Service) *Model {
	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	m := &Model{
		ctx:     ctx,
		store:   store,
		editor:  editor.New(ctx, svc),
		state:   StateList,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		list:    l,
		changes: make(chan storage.Change, 16),
		done:    make(chan struct{}),
	}
	m.unsubscribe = store.Subscribe(func(c storage.Change) {
		select {
		case m.changes <- c:
		default:
			// a refresh is already queued
		}
	})
	m.refresh()
	return m
}

// Close stops listening for store changes
func (m *Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
		close(m.done)
	}
}

func (m *Model) Init() tea.Cmd {
	return m.waitForChange()
}

func (m *Model) waitForChange() tea.Cmd {
	return func() tea.Msg {
		select {
		case c := <-m.changes:
			return changeMsg(c)
		case <-m.done:
			return nil
		}
	}
}

// refresh reloads the list, newest habit first
func (m *Model) refresh() tea.Cmd {
	habits, err := m.store.GetAllHabits()
	if err != nil {
		m.err = err
		return nil
	}

	items := make([]list.Item, len(habits))
	for i, h := range habits {
		items[i] = habitItem{habit: h}
	}
	return m.list.SetItems(items)
}

func (m *Model) selected() (models.Habit, bool) {
	item, ok := m.list.SelectedItem().(habitItem)
	if !ok {
		return models.Habit{}, false
	}
	return item.habit, true
}

// openForm shows the habit form for the current editor draft
func (m *Model) openForm() tea.Cmd {
	m.formData = newHabitFormModel(m.editor.Draft)
	m.form = NewHabitForm(m.formData, m.editor.NotificationPermissionGranted)
	m.state = StateForm
	return m.form.Init()
}

// submit copies the form into the draft and commits it
func (m *Model) submit() error {
	if err := m.formData.applyTo(m.editor); err != nil {
		return err
	}
	if !m.editor.IsReadyToCommit() {
		return editor.ErrNotReady
	}
	saved, err := m.editor.Commit(m.ctx, m.store)
	if err != nil {
		return err
	}
	m.status = "Saved " + saved.Title
	return nil
}
