package editor

import "github.com/julianstephens/habitual/internal/models"

// Mode tells whether a session creates a new habit or edits an existing one.
// It is either Creating or Editing.
type Mode interface {
	isMode()
}

// Creating is the mode of a session that adds a new habit.
type Creating struct{}

// Editing holds a snapshot of the habit being edited. Commit re-reads the
// stored record by ID.
type Editing struct {
	Target models.Habit
}

func (Creating) isMode() {}
func (Editing) isMode()  {}
