package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sooth/internal/models"
	"sooth/internal/session"
)

func startedTimerModel(t *testing.T) (TimerModel, *session.Session) {
	t.Helper()
	activity := models.Activity{
		ID:              "1",
		Title:           "4-7-8 Breathing Exercise",
		DurationMinutes: 5,
		Category:        models.ActivityBreathing,
		Level:           models.LevelBeginner,
	}
	sess := session.New()
	sess.Start(activity)
	return NewTimerModel(activity, sess), sess
}

func pressSpace(t *testing.T, m TimerModel) (TimerModel, tea.Cmd) {
	t.Helper()
	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeySpace})
	return model.(TimerModel), cmd
}

func deliverTick(t *testing.T, m TimerModel, gen int) (TimerModel, tea.Cmd) {
	t.Helper()
	model, cmd := m.Update(timerTickMsg{gen: gen})
	return model.(TimerModel), cmd
}

func TestTickDecrementsAndReschedules(t *testing.T) {
	m, sess := startedTimerModel(t)

	m, cmd := deliverTick(t, m, m.tickGen)
	assert.Equal(t, 299, sess.TimeLeft())
	assert.NotNil(t, cmd)
}

func TestPauseDropsInFlightTick(t *testing.T) {
	m, sess := startedTimerModel(t)

	// Pausing leaves the previously scheduled tick in flight
	staleGen := m.tickGen
	m, cmd := pressSpace(t, m)
	require.False(t, sess.Active())
	require.Nil(t, cmd)

	// When it lands it must neither decrement nor reschedule
	m, cmd = deliverTick(t, m, staleGen)
	assert.Equal(t, 300, sess.TimeLeft())
	assert.Nil(t, cmd)
}

func TestStaleTickAfterResumeIsDropped(t *testing.T) {
	m, sess := startedTimerModel(t)

	m, cmd := deliverTick(t, m, m.tickGen)
	require.Equal(t, 299, sess.TimeLeft())
	require.NotNil(t, cmd)

	// Quick pause then resume, before the pending tick arrives
	staleGen := m.tickGen
	m, _ = pressSpace(t, m)
	require.False(t, sess.Active())
	m, cmd = pressSpace(t, m)
	require.True(t, sess.Active())
	require.NotNil(t, cmd, "resume must restart the tick chain")

	// The pre-pause chain's tick lands now. If it were processed it would
	// decrement and reschedule, leaving two chains counting down at twice
	// the one-second cadence.
	m, cmd = deliverTick(t, m, staleGen)
	assert.Equal(t, 299, sess.TimeLeft())
	assert.Nil(t, cmd)

	// The live chain stays intact
	m, cmd = deliverTick(t, m, m.tickGen)
	assert.Equal(t, 298, sess.TimeLeft())
	assert.NotNil(t, cmd)
}

func TestCompletionStopsRescheduling(t *testing.T) {
	m, sess := startedTimerModel(t)

	for sess.TimeLeft() > 1 {
		m, _ = deliverTick(t, m, m.tickGen)
	}

	m, cmd := deliverTick(t, m, m.tickGen)
	assert.Equal(t, session.StateCompleted, sess.State())
	assert.Nil(t, cmd, "a completed countdown must not schedule further ticks")
}
