package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"sooth/internal/db"
	"sooth/internal/models"
	"sooth/internal/session"
	"sooth/internal/tui"
)

var startCmd = &cobra.Command{
	Use:   "start [activity-id]",
	Short: "Start a self-care activity session",
	Long: `Start a countdown session for a self-care activity. Opens the interactive
timer by default, use --no-ui for a plain countdown.

Examples:
  sooth start 1         # Start the activity with interactive UI
  sooth start 1 --no-ui # Plain countdown in the terminal`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		initDB()
		cat := loadCatalog()

		activity, ok := cat.ActivityByID(args[0])
		if !ok {
			fmt.Printf("Error: activity '%s' not found. See 'sooth activities'.\n", args[0])
			return
		}

		noUI, _ := cmd.Flags().GetBool("no-ui")
		if err := runActivitySession(activity, noUI); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	},
}

// runActivitySession starts a session for the activity and drives it to
// completion, with either the TUI or a plain ticker loop.
func runActivitySession(activity models.Activity, noUI bool) error {
	sess := session.New()
	sess.OnCompleted = func(activityID string) {
		if _, err := db.RecordCompletion(activityID, "timer", activity.DurationMinutes*60); err != nil {
			fmt.Printf("Warning: could not record completion: %v\n", err)
		}
	}
	sess.Start(activity)

	if !noUI {
		return tui.RunTimerTUI(activity, sess)
	}

	// Plain countdown: tick once per second until done or interrupted
	fmt.Printf("🧘 Started %s (%d min). Press Ctrl+C to abandon.\n", activity.Title, activity.DurationMinutes)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			fmt.Printf("\nAbandoned with %s remaining.\n", sess.FormatTimeLeft())
			return nil
		case <-ticker.C:
			sess.Tick()
			if !sess.Active() {
				fmt.Printf("✨ Completed %s (%d min)\n", activity.Title, activity.DurationMinutes)
				return nil
			}
			// A progress line every 30 seconds keeps the terminal calm
			if sess.TimeLeft()%30 == 0 {
				fmt.Printf("   %s remaining (%.0f%% done)\n", sess.FormatTimeLeft(), sess.ElapsedPercentage())
			}
		}
	}
}

var doneCmd = &cobra.Command{
	Use:   "done [activity-id]",
	Short: "Mark an activity as completed today",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		initDB()
		cat := loadCatalog()

		activity, ok := cat.ActivityByID(args[0])
		if !ok {
			fmt.Printf("Error: activity '%s' not found. See 'sooth activities'.\n", args[0])
			return
		}

		if _, err := db.RecordCompletion(activity.ID, "manual", activity.DurationMinutes*60); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("✅ Marked %s as done\n", activity.Title)
		if streak, err := db.StreakFor(activity.ID); err == nil && streak > 1 {
			fmt.Printf("🔥 %d day streak, keep it going!\n", streak)
		}
	},
}

func init() {
	startCmd.Flags().Bool("no-ui", false, "Run the countdown without the interactive UI")
}
