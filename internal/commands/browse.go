package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"sooth/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse resources and activities interactively",
	Run: func(cmd *cobra.Command, args []string) {
		initDB()
		cat := loadCatalog()

		chosen, err := tui.RunBrowseTUI(cat)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		// Picking an activity in the browser rolls straight into a session
		if chosen != nil {
			if err := runActivitySession(*chosen, false); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
		}
	},
}
