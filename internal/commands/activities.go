package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"sooth/internal/db"
)

var activitiesCmd = &cobra.Command{
	Use:     "activities",
	Aliases: []string{"act"},
	Short:   "List self-care activities",
	Long:    "List the self-care activity catalog with live streaks and today's completion badges",
	Run: func(cmd *cobra.Command, args []string) {
		initDB()
		cat := loadCatalog()

		category, _ := cmd.Flags().GetString("category")
		search, _ := cmd.Flags().GetString("search")

		activities := cat.QueryActivities(search, category)

		if len(activities) == 0 {
			fmt.Println("No activities found.")
			return
		}

		// Print table header
		fmt.Printf("%-4s %-35s %-12s %-13s %-5s %-7s %s\n", "ID", "TITLE", "CATEGORY", "LEVEL", "MIN", "STREAK", "TODAY")
		fmt.Println(strings.Repeat("-", 80))

		// Print each activity, overlaying live values from the store
		for _, a := range activities {
			streak := a.Streak
			if live, err := db.StreakFor(a.ID); err == nil && live > 0 {
				streak = live
			}
			doneToday := ""
			if done, err := db.CompletedTodayFor(a.ID); err == nil && done {
				doneToday = "✅"
			}

			title := a.Title
			if len(title) > 33 {
				title = title[:30] + "..."
			}

			streakStr := ""
			if streak > 0 {
				streakStr = fmt.Sprintf("🔥%d", streak)
			}

			fmt.Printf("%-4s %-35s %-12s %-13s %-5d %-7s %s\n",
				a.ID,
				title,
				a.Category,
				a.Level,
				a.DurationMinutes,
				streakStr,
				doneToday)
		}
	},
}

func init() {
	activitiesCmd.Flags().StringP("category", "c", "all", "Filter by category (breathing/meditation/movement/journaling/mindfulness)")
	activitiesCmd.Flags().StringP("search", "s", "", "Search titles and descriptions")
}
