package cmd

import (
	"github.com/spf13/cobra"

	"github.com/vishwaszadte/math-expression-generator/exprgen"
	"github.com/vishwaszadte/math-expression-generator/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "mexpr",
	Short: "Random arithmetic expression generator and drill",
	Long:  "mexpr synthesizes random arithmetic expressions under configurable constraints and drills you on them in the terminal.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDrill(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides MEXPR_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to a JSON generator config file")

	rootCmd.Flags().IntP("difficulty", "d", 1, "Difficulty level for the drill")
	rootCmd.Flags().IntP("operands", "n", 0, "Fixed operand count (0 = random per question)")

	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then MEXPR_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveConfig loads the generator config from --config when given,
// falling back to the defaults.
func resolveConfig(cmd *cobra.Command) (exprgen.Config, error) {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		return exprgen.LoadConfigFile(path)
	}
	return exprgen.DefaultConfig(), nil
}
