package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aslanbek/kazlearn/internal/deck"
)

var importCmd = &cobra.Command{
	Use:   "import <deck.json>",
	Short: "Import a word deck into your learning list",
	Long:  "Import a shared deck file and add its words to your personal learning list.",
	Args:  cobra.ExactArgs(1),
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

		d, err := deck.Load(args[0])
		if err != nil {
			return err
		}

		status, _ := cmd.Flags().GetString("status")
		added, err := client.AddWords(cmd.Context(), d.WordIDs, status)
		if err != nil {
			return fmt.Errorf("add words from %q: %w", d.Name, err)
		}

		fmt.Printf("Imported %q: %d of %d words added to your list.\n",
			d.Name, len(added), len(d.WordIDs))
		return nil
	},
}

func init() {
	importCmd.Flags().String("status", "want_to_learn", "Initial status for imported words")
}
