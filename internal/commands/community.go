package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"sooth/internal/api"
)

var communityCmd = &cobra.Command{
	Use:   "community",
	Short: "Read the community feed",
	Run: func(cmd *cobra.Command, args []string) {
		client, _, err := apiClient()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		posts, err := client.CommunityPosts(ctx)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if len(posts) == 0 {
			fmt.Println("The community feed is quiet right now.")
			return
		}

		for _, p := range posts {
			fmt.Printf("%s · %s\n", p.Author, p.CreatedAt.Format("Jan 02 15:04"))
			fmt.Println(p.Content)
			fmt.Printf("❤️  %d\n", p.Likes)
			fmt.Println(strings.Repeat("-", 40))
		}
	},
}

var communityPostCmd = &cobra.Command{
	Use:   "post [message]",
	Short: "Share a post with the community",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client, cfg, err := apiClient()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if cfg.AuthToken == "" {
			fmt.Println("Please log in first with 'sooth login'.")
			return
		}

		anonymous, _ := cmd.Flags().GetBool("anonymous")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		post, err := client.CreateCommunityPost(ctx, api.CreatePostRequest{
			Content:   strings.Join(args, " "),
			Anonymous: anonymous,
		})
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("📝 Posted as %s\n", post.Author)
	},
}

func init() {
	communityPostCmd.Flags().BoolP("anonymous", "a", false, "Post anonymously")
	communityCmd.AddCommand(communityPostCmd)
}
