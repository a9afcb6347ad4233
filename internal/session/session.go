package session

import (
	"fmt"

	"sooth/internal/models"
)

// State describes where the countdown currently is.
type State int

const (
	StateIdle State = iota
	StateRunning
	StatePaused
	StateCompleted
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateCompleted:
		return "completed"
	}
	return "unknown"
}

// Session is the countdown state machine driving one self-care activity at
// a time. It holds no clock of its own: the owner calls Tick once per
// second while the session is active, so tests can drive time directly.
//
// Invariants: timeLeft <= totalTime always, and the activity reference is
// empty exactly when totalTime is zero (never started, or reset).
type Session struct {
	isActive   bool
	timeLeft   int // seconds remaining, >= 0
	totalTime  int // seconds at start, fixed until reset
	activityID string

	// OnCompleted fires exactly once when a running session naturally
	// reaches zero. It is the integration point for progress recording;
	// the session itself makes no assumptions about what completion means.
	OnCompleted func(activityID string)

	completionFired bool
}

// New returns an empty session in the Idle state.
func New() *Session {
	return &Session{}
}

// Start begins a countdown for the given activity. Starting while another
// session is running overwrites it unconditionally.
func (s *Session) Start(a models.Activity) {
	total := a.DurationMinutes * 60
	s.isActive = true
	s.timeLeft = total
	s.totalTime = total
	s.activityID = a.ID
	s.completionFired = false
}

// Toggle flips between running and paused. With no activity set this flips
// an unused flag and has no observable effect, matching the permissive
// behavior of the original page (see DESIGN.md).
func (s *Session) Toggle() {
	s.isActive = !s.isActive
}

// Reset clears the session back to Idle. Calling it repeatedly is safe.
func (s *Session) Reset() {
	s.isActive = false
	s.timeLeft = 0
	s.totalTime = 0
	s.activityID = ""
	s.completionFired = false
}

// Tick advances the countdown by one second. It is a no-op unless the
// session is running. When the countdown reaches zero the session
// deactivates itself and fires OnCompleted once.
func (s *Session) Tick() {
	if !s.isActive || s.totalTime == 0 {
		return
	}
	if s.timeLeft > 0 {
		s.timeLeft--
	}
	if s.timeLeft == 0 {
		s.isActive = false
		if !s.completionFired {
			s.completionFired = true
			if s.OnCompleted != nil {
				s.OnCompleted(s.activityID)
			}
		}
	}
}

// State derives the current state from the session fields.
func (s *Session) State() State {
	switch {
	case s.activityID == "":
		return StateIdle
	case s.timeLeft == 0:
		return StateCompleted
	case s.isActive:
		return StateRunning
	default:
		return StatePaused
	}
}

// Active reports whether the countdown is currently decrementing.
func (s *Session) Active() bool { return s.isActive }

// TimeLeft returns the remaining seconds.
func (s *Session) TimeLeft() int { return s.timeLeft }

// TotalTime returns the seconds the countdown started from.
func (s *Session) TotalTime() int { return s.totalTime }

// ActivityID returns the id of the activity being timed, or "" when idle.
func (s *Session) ActivityID() string { return s.activityID }

// ElapsedPercentage returns how much of the countdown has passed, 0-100.
// In the Idle state (totalTime zero) it returns 0.
func (s *Session) ElapsedPercentage() float64 {
	if s.totalTime == 0 {
		return 0
	}
	return 100 * float64(s.totalTime-s.timeLeft) / float64(s.totalTime)
}

// FormatTimeLeft renders the remaining time as mm:ss.
func (s *Session) FormatTimeLeft() string {
	return FormatSeconds(s.timeLeft)
}

// FormatSeconds renders a second count as mm:ss.
func FormatSeconds(secs int) string {
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
