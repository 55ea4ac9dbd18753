package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in account",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		client, tokens, err := buildClient(cfg, zap.NewNop())
		if err != nil {
			return err
		}
		if err := requireLogin(tokens); err != nil {
			return err
		}

		user, err := client.Me(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("Username:  %s\n", user.Username)
		fmt.Printf("Email:     %s\n", user.Email)
		fmt.Printf("Role:      %s\n", user.Role)
		if user.MainLanguage != nil {
			fmt.Printf("Language:  %s\n", user.MainLanguage.LanguageName)
		}
		return nil
	},
}
