package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aslanbek/kazlearn/internal/auth"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the stored login token",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		tokenPath := cfg.TokenPath
		if tokenPath == "" {
			tokenPath, err = auth.DefaultTokenPath()
			if err != nil {
				return err
			}
		}
		if err := auth.NewStore(tokenPath).Clear(); err != nil {
			return fmt.Errorf("clear token: %w", err)
		}
		fmt.Println("Logged out.")
		return nil
	},
}
