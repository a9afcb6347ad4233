package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"sooth/internal/catalog"
	"sooth/internal/models"
)

// Tab identifies which catalog the browser is showing
type Tab int

const (
	TabResources Tab = iota
	TabActivities
)

// Focus represents what UI element has focus
type Focus int

const (
	FocusList Focus = iota
	FocusSearch
)

// BrowseModel represents the TUI model for browsing the catalogs
type BrowseModel struct {
	width  int
	height int

	cat *catalog.Catalog

	// UI state
	tab      Tab
	focus    Focus
	selected int

	searchInput  textinput.Model
	searchActive bool

	// Set when the user picks an activity to start
	chosen *models.Activity
}

// NewBrowseModel creates a new catalog browser model
func NewBrowseModel(cat *catalog.Catalog) BrowseModel {
	input := textinput.New()
	input.Placeholder = "search titles and descriptions..."
	input.Width = 40
	input.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
	input.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
	input.Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))

	return BrowseModel{
		cat:         cat,
		tab:         TabResources,
		focus:       FocusList,
		searchInput: input,
	}
}

// Chosen returns the activity the user selected to start, if any.
func (m BrowseModel) Chosen() *models.Activity {
	return m.chosen
}

// filteredResources applies the current search to the resource catalog
func (m BrowseModel) filteredResources() []models.Resource {
	return m.cat.FilterResources(m.searchInput.Value(), "all")
}

// filteredActivities applies the current search to the activity catalog
func (m BrowseModel) filteredActivities() []models.Activity {
	if term := m.searchInput.Value(); term != "" {
		return m.cat.SearchActivities(term)
	}
	return m.cat.FilterActivities("all")
}

func (m BrowseModel) listLen() int {
	if m.tab == TabResources {
		return len(m.filteredResources())
	}
	return len(m.filteredActivities())
}

// Init initializes the model
func (m BrowseModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.focus == FocusSearch {
			return m.handleSearchKeys(msg)
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "esc":
			// Exit search filter first if active, otherwise quit
			if m.searchActive {
				m.searchActive = false
				m.searchInput.SetValue("")
				m.selected = 0
				return m, nil
			}
			return m, tea.Quit
		case "tab":
			if m.tab == TabResources {
				m.tab = TabActivities
			} else {
				m.tab = TabResources
			}
			m.selected = 0
			return m, nil
		case "/":
			m.focus = FocusSearch
			m.searchActive = true
			m.searchInput.Focus()
			return m, textinput.Blink
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < m.listLen()-1 {
				m.selected++
			}
			return m, nil
		case "enter":
			// Enter starts the selected activity
			if m.tab == TabActivities {
				activities := m.filteredActivities()
				if m.selected < len(activities) {
					a := activities[m.selected]
					m.chosen = &a
					return m, tea.Quit
				}
			}
			return m, nil
		}
	}

	return m, nil
}

// handleSearchKeys routes key presses while the search box has focus
func (m BrowseModel) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		m.focus = FocusList
		m.searchInput.Blur()
		if msg.String() == "esc" {
			m.searchActive = false
			m.searchInput.SetValue("")
		}
		m.selected = 0
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.selected = 0
	return m, cmd
}

// View renders the browser TUI
func (m BrowseModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(m.renderTabs())
	b.WriteString("\n")

	if m.searchActive {
		searchStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSecondaryText)).
			Padding(0, 1)
		b.WriteString(searchStyle.Render("🔍 " + m.searchInput.View()))
		b.WriteString("\n")
	}

	b.WriteString("\n")

	if m.tab == TabResources {
		b.WriteString(m.renderResourceList())
	} else {
		b.WriteString(m.renderActivityList())
	}

	b.WriteString("\n")
	b.WriteString(m.renderHelpBar())

	return b.String()
}

// renderTabs renders the Resources / Activities tab header
func (m BrowseModel) renderTabs() string {
	activeStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true).
		Padding(0, 2)
	inactiveStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDisabledText)).
		Padding(0, 2)

	resources := inactiveStyle.Render("Resources")
	activities := inactiveStyle.Render("Activities")
	if m.tab == TabResources {
		resources = activeStyle.Render("Resources")
	} else {
		activities = activeStyle.Render("Activities")
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, resources, activities)
}

// renderResourceList renders the filtered resource rows
func (m BrowseModel) renderResourceList() string {
	resources := m.filteredResources()
	if len(resources) == 0 {
		return m.renderEmpty("No resources match your search.")
	}

	var b strings.Builder
	for i, r := range resources {
		marker := "  "
		rowStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
		if i == m.selected {
			marker = "❯ "
			rowStyle = rowStyle.Foreground(lipgloss.Color(ColorAccentBright)).Bold(true)
		}

		featured := ""
		if r.Featured {
			featured = " ★"
		}
		line := fmt.Sprintf("%s%s%s", marker, r.Title, featured)
		b.WriteString(rowStyle.Render(line))
		b.WriteString("\n")

		detailStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
		detail := fmt.Sprintf("    %s · %s · %.1f", r.Type, r.Category, r.Rating)
		if r.Duration != "" {
			detail += " · " + r.Duration
		}
		b.WriteString(detailStyle.Render(detail))
		b.WriteString("\n")
	}
	return b.String()
}

// renderActivityList renders the filtered activity rows
func (m BrowseModel) renderActivityList() string {
	activities := m.filteredActivities()
	if len(activities) == 0 {
		return m.renderEmpty("No activities match your search.")
	}

	var b strings.Builder
	for i, a := range activities {
		marker := "  "
		rowStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
		if i == m.selected {
			marker = "❯ "
			rowStyle = rowStyle.Foreground(lipgloss.Color(ColorAccentBright)).Bold(true)
		}

		badge := ""
		if a.Completed {
			badge = " ✅"
		}
		if a.Streak > 0 {
			badge += fmt.Sprintf(" 🔥%d", a.Streak)
		}
		line := fmt.Sprintf("%s%s%s", marker, a.Title, badge)
		b.WriteString(rowStyle.Render(line))
		b.WriteString("\n")

		detailStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
		detail := fmt.Sprintf("    %s · %s · %d min", a.Category, a.Level, a.DurationMinutes)
		b.WriteString(detailStyle.Render(detail))
		b.WriteString("\n")
	}
	return b.String()
}

func (m BrowseModel) renderEmpty(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDisabledText)).
		Italic(true).
		Padding(0, 2).
		Render(text)
}

// renderHelpBar renders the help bar at the bottom
func (m BrowseModel) renderHelpBar() string {
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true).
		Width(m.width)

	helpText := "tab switch · / search · ↑/↓ navigate · enter start activity · esc/q quit"
	return helpStyle.Render(helpText)
}
