package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/aslanbek/kazlearn/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List locally recorded practice sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		hist, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open history store: %w", err)
		}
		defer hist.Close()

		limit, _ := cmd.Flags().GetInt("limit")
		sessions, err := hist.RecentSessions(cmd.Context(), limit)
		if err != nil {
			return err
		}

		if len(sessions) == 0 {
			fmt.Println("No sessions recorded yet.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "DATE\tTYPE\tCORRECT\tACCURACY\tDURATION")
		for _, s := range sessions {
			fmt.Fprintf(w, "%s\t%s\t%d/%d\t%d%%\t%d:%02d\n",
				s.FinishedAt.Local().Format("2006-01-02 15:04"),
				s.SessionType,
				s.CorrectCount, s.TotalCount,
				s.AccuracyPct,
				s.DurationSec/60, s.DurationSec%60)
		}
		return w.Flush()
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Maximum number of sessions to list")
}
