package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"sooth/internal/catalog"
	"sooth/internal/models"
	"sooth/internal/session"
)

// RunTimerTUI runs the countdown TUI for an already-started session.
func RunTimerTUI(activity models.Activity, sess *session.Session) error {
	model := NewTimerModel(activity, sess)

	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return err
	}

	// Report the outcome after the TUI closes
	switch sess.State() {
	case session.StateCompleted:
		fmt.Printf("✨ Completed %s (%d min)\n", activity.Title, activity.DurationMinutes)
	case session.StateIdle:
		fmt.Println("Session reset. Come back when you're ready.")
	default:
		fmt.Printf("Left %s with %s remaining.\n", activity.Title, sess.FormatTimeLeft())
	}

	return nil
}

// RunBrowseTUI runs the catalog browser and returns the activity the user
// chose to start, or nil if they just quit.
func RunBrowseTUI(cat *catalog.Catalog) (*models.Activity, error) {
	model := NewBrowseModel(cat)

	p := tea.NewProgram(model, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	if m, ok := finalModel.(BrowseModel); ok {
		return m.Chosen(), nil
	}
	return nil, nil
}
