package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Authentication commands",
}

var setTokenCmd = &cobra.Command{
	Use:   "set-token [token]",
	Short: "Store the relay token in the config file",
	Long: `Store a JWT issued for the relay in $HOME/.notes-cli/config.yaml.
When no argument is given the token is read from the terminal without echo.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()

		var token string
		if len(args) > 0 {
			token = args[0]
		} else {
			fmt.Fprint(os.Stderr, "Token: ")
			raw, err := term.ReadPassword(int(os.Stdin.Fd()))
			fmt.Fprintln(os.Stderr)
			if err != nil {
				return fmt.Errorf("failed to read token: %w", err)
			}
			token = string(raw)
		}
		token = strings.TrimSpace(token)
		if token == "" {
			return fmt.Errorf("token must not be empty")
		}

		cfg.Auth.Token = token
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}

		fmt.Println("Token saved to config.")
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show authentication status",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()

		fmt.Printf("Relay: %s\n", cfg.Relay.Endpoint)
		if cfg.Auth.Token == "" {
			fmt.Println("Token: not set")
			return nil
		}
		fmt.Println("Token: set")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(authCmd)
	authCmd.AddCommand(setTokenCmd)
	authCmd.AddCommand(statusCmd)
}
