package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"sooth/internal/models"
	"sooth/internal/session"
)

// TimerModel represents the TUI model for a self-care countdown
type TimerModel struct {
	width  int
	height int

	activity models.Activity
	sess     *session.Session
	bar      progress.Model

	// Animation state
	timerAnimation int // For animated header display

	// Tick chain generation. Pausing leaves one scheduled tick in flight;
	// bumping the generation on every toggle lets Update drop it instead
	// of letting two chains decrement the countdown at once.
	tickGen int

	// UI state
	exiting bool // True when user pressed ESC/Q and we're abandoning the session
}

// timerTickMsg is sent every second to advance the countdown. The gen field
// ties it to the chain that scheduled it, like the id on bubbles/timer.
type timerTickMsg struct {
	gen int
}

// animationTickMsg is sent for faster animations
type animationTickMsg struct{}

// NewTimerModel creates a new countdown TUI model. The session must already
// be started for the given activity.
func NewTimerModel(activity models.Activity, sess *session.Session) TimerModel {
	bar := progress.New(progress.WithScaledGradient(ColorAccentMain, ColorAccentBright))
	return TimerModel{
		activity:       activity,
		sess:           sess,
		bar:            bar,
		timerAnimation: 0,
		exiting:        false,
	}
}

// Init initializes the timer model
func (m TimerModel) Init() tea.Cmd {
	// Start both countdown and animation tickers
	return tea.Batch(
		scheduleTick(m.tickGen),
		scheduleAnimation(),
	)
}

func scheduleTick(gen int) tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg{gen: gen}
	})
}

func scheduleAnimation() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(t time.Time) tea.Msg {
		return animationTickMsg{}
	})
}

// Update handles messages
func (m TimerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		// A tick from a superseded chain is stale; drop it
		if msg.gen != m.tickGen {
			return m, nil
		}
		m.sess.Tick()

		// Only keep ticking while the countdown is running. Pausing and
		// completion both stop the next tick from being scheduled.
		if m.sess.Active() && !m.exiting {
			return m, scheduleTick(m.tickGen)
		}
		return m, nil

	case animationTickMsg:
		m.timerAnimation = (m.timerAnimation + 1) % 4

		if !m.exiting {
			return m, scheduleAnimation()
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.bar.Width = min(msg.Width-20, 48)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case " ", "p":
			if m.sess.State() == session.StateCompleted {
				return m, nil
			}
			wasActive := m.sess.Active()
			m.sess.Toggle()
			// Invalidate whatever tick is still in flight, then restart
			// the chain on resume
			m.tickGen++
			if !wasActive && m.sess.Active() && m.sess.TimeLeft() > 0 {
				return m, scheduleTick(m.tickGen)
			}
			return m, nil
		case "r":
			// Abandon the countdown entirely
			m.sess.Reset()
			m.exiting = true
			return m, tea.Quit
		case "ctrl+c", "esc", "q":
			m.exiting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the timer TUI
func (m TimerModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	helpBar := m.renderHelpBar()
	helpBarHeight := 1

	contentHeight := m.height - helpBarHeight - 1
	panel := m.renderSessionPanel(m.width, contentHeight)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		panel,
		helpBar,
	)
}

// renderSessionPanel renders the centered countdown panel
func (m TimerModel) renderSessionPanel(width, height int) string {
	var components []string

	// Animated header
	animChars := []string{"◐", "◓", "◑", "◒"}
	animChar := animChars[m.timerAnimation]
	headerText := fmt.Sprintf("%s  SELF-CARE SESSION  %s", animChar, animChar)
	if m.sess.State() == session.StateCompleted {
		headerText = "✨  SESSION COMPLETE  ✨"
	}

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true).
		Align(lipgloss.Center).
		Width(width)

	components = append(components, headerStyle.Render(headerText))

	// Activity title
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Bold(true).
		Align(lipgloss.Center).
		Width(width)

	titleText := m.activity.Title
	if len(titleText) > width-4 {
		titleText = titleText[:width-7] + "..."
	}
	components = append(components, titleStyle.Render(titleText))

	// Category and level
	metaStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondaryText)).
		Align(lipgloss.Center).
		Width(width)
	metaText := fmt.Sprintf("%s · %s · %d min", m.activity.Category, m.activity.Level, m.activity.DurationMinutes)
	components = append(components, metaStyle.Render(metaText))

	// Big countdown display
	clockDisplay := m.renderBigClock()
	clockLines := strings.Split(clockDisplay, "\n")
	clockContent := ""
	for _, line := range clockLines {
		centeredLine := lipgloss.NewStyle().
			Align(lipgloss.Center).
			Width(width).
			Render(line)
		clockContent += centeredLine + "\n"
	}
	components = append(components, strings.TrimRight(clockContent, "\n"))

	// Elapsed progress bar
	barView := m.bar.ViewAs(m.sess.ElapsedPercentage() / 100)
	barStyle := lipgloss.NewStyle().
		Align(lipgloss.Center).
		Width(width)
	components = append(components, barStyle.Render(barView))

	// State line
	stateText := ""
	stateColor := ColorSecondaryText
	switch m.sess.State() {
	case session.StateRunning:
		stateText = "breathing in, breathing out..."
	case session.StatePaused:
		stateText = "paused — press space to resume"
		stateColor = ColorWarning
	case session.StateCompleted:
		stateText = "well done, take a moment before moving on"
		stateColor = ColorSuccess
	}
	stateStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(stateColor)).
		Italic(true).
		Align(lipgloss.Center).
		Width(width)
	components = append(components, stateStyle.Render(stateText))

	content := strings.Join(components, "\n\n")

	// Center content vertically and fill the full height
	panelStyle := lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center)

	return panelStyle.Render(content)
}

// renderBigClock renders the remaining time as ASCII art
func (m TimerModel) renderBigClock() string {
	// ASCII art for digits (5x5 characters each)
	digits := map[rune][]string{
		'0': {" ███ ", "█   █", "█   █", "█   █", " ███ "},
		'1': {"  █  ", " ██  ", "  █  ", "  █  ", "█████"},
		'2': {" ███ ", "█   █", "   █ ", "  █  ", "█████"},
		'3': {" ███ ", "█   █", "  ██ ", "█   █", " ███ "},
		'4': {"█   █", "█   █", "█████", "    █", "    █"},
		'5': {"█████", "█    ", "████ ", "    █", "████ "},
		'6': {" ███ ", "█    ", "████ ", "█   █", " ███ "},
		'7': {"█████", "    █", "   █ ", "  █  ", " █   "},
		'8': {" ███ ", "█   █", " ███ ", "█   █", " ███ "},
		'9': {" ███ ", "█   █", " ████", "    █", " ███ "},
		':': {"     ", "  █  ", "     ", "  █  ", "     "},
	}

	timeStr := m.sess.FormatTimeLeft()

	var lines [5]strings.Builder
	for _, char := range timeStr {
		if digitArt, ok := digits[char]; ok {
			for i := 0; i < 5; i++ {
				lines[i].WriteString(digitArt[i])
				lines[i].WriteString(" ") // Space between digits
			}
		}
	}

	clockColor := ColorAccentBright
	if m.sess.State() == session.StatePaused {
		clockColor = ColorDisabledText
	}
	clockStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(clockColor)).
		Bold(true)

	var result strings.Builder
	for i := 0; i < 5; i++ {
		result.WriteString(clockStyle.Render(lines[i].String()))
		if i < 4 {
			result.WriteString("\n")
		}
	}

	return result.String()
}

// renderHelpBar renders the help bar at the bottom
func (m TimerModel) renderHelpBar() string {
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true).
		Align(lipgloss.Center).
		Width(m.width)

	helpText := "space pause/resume · r reset & exit · esc/q quit"
	if m.sess.State() == session.StateCompleted {
		helpText = "esc/q close"
	}

	return helpStyle.Render(helpText)
}
