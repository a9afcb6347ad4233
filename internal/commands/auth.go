package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"sooth/internal/api"
	"sooth/internal/config"
)

var loginCmd = &cobra.Command{
	Use:   "login [email]",
	Short: "Log in to the sooth backend",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		password, _ := cmd.Flags().GetString("password")
		if password == "" {
			fmt.Println("Error: --password is required")
			return
		}

		cfg, err := config.Load()
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		client := api.New(cfg.APIBaseURL)
		resp, err := client.Login(ctx, api.LoginRequest{
			Email:    args[0],
			Password: password,
		})
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		cfg.AuthToken = resp.AccessToken
		cfg.UserID = resp.UserID
		if err := cfg.Save(); err != nil {
			fmt.Printf("Error saving credentials: %v\n", err)
			return
		}

		name := resp.FullName
		if name == "" {
			name = args[0]
		}
		fmt.Printf("👋 Welcome back, %s\n", name)
	},
}

var signupCmd = &cobra.Command{
	Use:   "signup [email]",
	Short: "Create an account on the sooth backend",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		password, _ := cmd.Flags().GetString("password")
		name, _ := cmd.Flags().GetString("name")
		if password == "" {
			fmt.Println("Error: --password is required")
			return
		}

		cfg, err := config.Load()
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		client := api.New(cfg.APIBaseURL)
		resp, err := client.Signup(ctx, api.SignupRequest{
			Email:    args[0],
			Password: password,
			FullName: name,
			Role:     "student",
		})
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		cfg.AuthToken = resp.AccessToken
		cfg.UserID = resp.UserID
		if err := cfg.Save(); err != nil {
			fmt.Printf("Error saving credentials: %v\n", err)
			return
		}

		fmt.Printf("🎉 Account created. Welcome to sooth!\n")
	},
}

// apiClient builds an authenticated client from the saved config
func apiClient() (*api.Client, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	client := api.New(cfg.APIBaseURL)
	if cfg.AuthToken != "" {
		client.SetToken(cfg.AuthToken)
	}
	return client, cfg, nil
}

func init() {
	loginCmd.Flags().StringP("password", "p", "", "Account password")
	signupCmd.Flags().StringP("password", "p", "", "Account password")
	signupCmd.Flags().StringP("name", "n", "", "Full name")
}
