package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"sooth/internal/api"
)

var checkinCmd = &cobra.Command{
	Use:   "checkin [message]",
	Short: "Send a check-in message for wellbeing analysis",
	Long: `Send a short message about how you're feeling. The backend analyzes it
and responds with a supportive reply and a risk level.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client, cfg, err := apiClient()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if cfg.UserID == "" {
			fmt.Println("Please log in first with 'sooth login'.")
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		resp, err := client.ProcessMessage(ctx, api.ProcessMessageRequest{
			UserID:  cfg.UserID,
			Content: strings.Join(args, " "),
		})
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if resp.Response != "" {
			fmt.Printf("💬 %s\n", resp.Response)
		}
		fmt.Printf("Risk level: %s\n", riskBadge(resp.RiskLevel))
		if resp.CrisisDetected {
			fmt.Println("⚠️  If you're in crisis, please reach out to someone you trust or a local helpline right now.")
		}
	},
}

// riskBadge maps a risk level to a colored badge for terminal output
func riskBadge(level string) string {
	switch level {
	case "low":
		return "🟢 low"
	case "medium":
		return "🟡 medium"
	case "high":
		return "🟠 high"
	case "critical":
		return "🔴 critical"
	default:
		return level
	}
}
