package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"sooth/internal/db"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "sooth",
	Short: "A terminal self-care companion",
	Long: `sooth helps you look after yourself from the terminal.
Browse wellness resources, run guided self-care activity sessions with a
countdown timer, and track your daily progress and streaks.`,
}

// initDB initializes the database and panics on error
func initDB() {
	if err := db.Initialize(); err != nil {
		panic(err) // For now, panic on DB init failure
	}
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("sooth %s (commit %s, built %s)\n", version, commit, date)
	},
}

func init() {
	rootCmd.AddCommand(resourcesCmd)
	rootCmd.AddCommand(activitiesCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(checkinCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(signupCmd)
	rootCmd.AddCommand(communityCmd)
	rootCmd.AddCommand(versionCmd)
}
