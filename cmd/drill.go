package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vishwaszadte/math-expression-generator/exprgen"
	"github.com/vishwaszadte/math-expression-generator/internal/app"
	"github.com/vishwaszadte/math-expression-generator/internal/store"
)

// runDrill opens the store, builds the generator, and launches the TUI.
func runDrill(cmd *cobra.Command) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return fmt.Errorf("resolve config: %w", err)
	}

	difficulty, _ := cmd.Flags().GetInt("difficulty")
	numOperands, _ := cmd.Flags().GetInt("operands")
	if difficulty < 1 || difficulty > cfg.MaxDifficulty {
		return &exprgen.InvalidDifficultyError{Difficulty: difficulty, Max: cfg.MaxDifficulty}
	}
	if numOperands != 0 && (numOperands < cfg.MinOperands || numOperands > cfg.MaxOperands) {
		return &exprgen.InvalidOperandCountError{Count: numOperands, Min: cfg.MinOperands, Max: cfg.MaxOperands}
	}

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

	return app.Run(app.Options{
		Generator:   exprgen.New(cfg, nil),
		Events:      events,
		Difficulty:  difficulty,
		NumOperands: numOperands,
	})
}
