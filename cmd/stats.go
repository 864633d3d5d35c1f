package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vishwaszadte/math-expression-generator/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show drill statistics per difficulty",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		events, err := st.EventRepo()
		if err != nil {
			return fmt.Errorf("open event repo: %w", err)
		}
		rows, err := events.AnswerStats(cmd.Context())
		if err != nil {
			return fmt.Errorf("load stats: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(rows) == 0 {
			fmt.Fprintln(out, "No answers recorded yet. Run `mexpr` to start a drill.")
			return nil
		}

		fmt.Fprintf(out, "%-12s %8s %8s %9s %9s\n", "Difficulty", "Answered", "Correct", "Accuracy", "Avg time")
		var totalAnswered, totalCorrect int
		for _, r := range rows {
			accuracy := float64(r.Correct) / float64(r.Answered) * 100
			fmt.Fprintf(out, "%-12d %8d %8d %8.0f%% %8.1fs\n",
				r.Difficulty, r.Answered, r.Correct, accuracy, float64(r.MeanTimeMs)/1000)
			totalAnswered += r.Answered
			totalCorrect += r.Correct
		}
		fmt.Fprintf(out, "\nTotal: %d answered, %d correct (%.0f%%)\n",
			totalAnswered, totalCorrect, float64(totalCorrect)/float64(totalAnswered)*100)
		return nil
	},
}
