package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
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

		stats, err := client.Stats(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("Words in your list:   %d\n", stats.TotalWords)
		fmt.Printf("Sessions this week:   %d\n", stats.SessionsThisWeek)
		fmt.Printf("Accuracy:             %.0f%%\n", stats.AccuracyRate*100)
		fmt.Printf("Current streak:       %d days\n", stats.CurrentStreak)
		fmt.Printf("Due for review:       %d\n", stats.WordsDueReview)
		if len(stats.WordsByStatus) > 0 {
			fmt.Println("\nBy status:")
			for status, count := range stats.WordsByStatus {
				fmt.Printf("  %-12s %d\n", status, count)
			}
		}
		return nil
	},
}
