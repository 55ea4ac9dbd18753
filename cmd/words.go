package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aslanbek/kazlearn/internal/api"
)

var wordsCmd = &cobra.Command{
	Use:   "words [search term]",
	Short: "Browse the word catalog",
	Args:  cobra.MaximumNArgs(1),
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

		categoryID, _ := cmd.Flags().GetInt64("category")
		levelID, _ := cmd.Flags().GetInt64("level")
		limit, _ := cmd.Flags().GetInt("limit")
		filters := api.WordFilters{
			CategoryID:        categoryID,
			DifficultyLevelID: levelID,
			LanguageCode:      cfg.LanguageCode,
			Limit:             limit,
		}

		var words []api.WordSummary
		if len(args) == 1 {
			words, err = client.SearchWords(cmd.Context(), args[0], filters)
		} else {
			words, err = client.Words(cmd.Context(), filters)
		}
		if err != nil {
			return err
		}

		if len(words) == 0 {
			fmt.Println("No words found.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tKAZAKH\tTRANSLATION\tLEVEL\tCATEGORY")
		for _, word := range words {
			translation := ""
			if word.PrimaryTranslation != nil {
				translation = *word.PrimaryTranslation
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\n",
				word.ID, word.KazakhWord, translation,
				word.DifficultyLevel, word.CategoryName)
		}
		return w.Flush()
	},
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List word categories",
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

		categories, err := client.Categories(cmd.Context())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tDESCRIPTION")
		for _, c := range categories {
			desc := c.Description
			if len(desc) > 60 {
				desc = strings.TrimSpace(desc[:57]) + "..."
			}
			fmt.Fprintf(w, "%d\t%s\t%s\n", c.ID, c.CategoryName, desc)
		}
		return w.Flush()
	},
}

func init() {
	wordsCmd.Flags().Int64("category", 0, "Filter by category id")
	wordsCmd.Flags().Int64("level", 0, "Filter by difficulty level id")
	wordsCmd.Flags().Int("limit", 50, "Maximum number of words to list")
	wordsCmd.AddCommand(categoriesCmd)
}
