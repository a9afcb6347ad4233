package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"sooth/internal/config"
	"sooth/internal/db"
	"sooth/internal/progress"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show today's self-care progress",
	Run: func(cmd *cobra.Command, args []string) {
		initDB()

		cfg, err := config.Load()
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			return
		}

		completed, err := db.CompletedToday()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		goal := cfg.DailyGoal
		pct := progress.Percentage(completed, goal)

		fmt.Printf("Today's goal: %d/%d activities (%d%%)\n", completed, goal, pct)
		fmt.Printf("%s\n", renderProgressBar(completed, goal, 30))
		fmt.Println(progress.Message(completed, goal))

		// This week's sessions
		now := time.Now()
		weekAgo := now.AddDate(0, 0, -7)
		completions, err := db.CompletionsInRange(weekAgo, now)
		if err == nil && len(completions) > 0 {
			total := 0
			for _, c := range completions {
				total += c.DurationSeconds
			}
			fmt.Printf("\nLast 7 days: %d sessions, %s of self-care\n",
				len(completions), formatDuration(time.Duration(total)*time.Second))
		}
	},
}

// renderProgressBar draws a fixed-width bar, filled past 100% stays full
func renderProgressBar(completed, goal, width int) string {
	pct := progress.Percentage(completed, goal)
	filled := width * pct / 100
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}

// formatDuration formats a duration in a human-readable way
func formatDuration(d time.Duration) string {
	if d.Hours() >= 1 {
		return fmt.Sprintf("%.1fh", d.Hours())
	} else if d.Minutes() >= 1 {
		return fmt.Sprintf("%.0fm", d.Minutes())
	} else {
		return fmt.Sprintf("%.0fs", d.Seconds())
	}
}
