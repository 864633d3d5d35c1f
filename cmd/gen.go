package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vishwaszadte/math-expression-generator/exprgen"
)

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Print generated expressions to stdout",
	Long:  "Generate a batch of expressions for worksheets or scripting. Flags override values from --config.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return fmt.Errorf("resolve config: %w", err)
		}

		if cmd.Flags().Changed("decimal") {
			cfg.AllowDecimalResult, _ = cmd.Flags().GetBool("decimal")
		}
		if cmd.Flags().Changed("negative") {
			cfg.AllowNegativeResult, _ = cmd.Flags().GetBool("negative")
		}
		if cmd.Flags().Changed("places") {
			cfg.DecimalPlaces, _ = cmd.Flags().GetInt("places")
		}

		count, _ := cmd.Flags().GetInt("count")
		difficulty, _ := cmd.Flags().GetInt("difficulty")
		numOperands, _ := cmd.Flags().GetInt("operands")
		showAnswers, _ := cmd.Flags().GetBool("answers")

		gen := exprgen.New(cfg, nil)
		set, err := gen.GenerateExpressionSet(count, numOperands, difficulty)
		if err != nil {
			return err
		}

		for _, expr := range set {
			if showAnswers {
				fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", expr.Text, expr.FormatResult())
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s =\n", expr.Text)
			}
		}
		return nil
	},
}

func init() {
	genCmd.Flags().IntP("count", "c", 10, "Number of expressions to generate")
	genCmd.Flags().IntP("difficulty", "d", 1, "Difficulty level")
	genCmd.Flags().IntP("operands", "n", 0, "Fixed operand count (0 = random per expression)")
	genCmd.Flags().Bool("decimal", false, "Allow decimal results")
	genCmd.Flags().Bool("negative", false, "Allow negative results")
	genCmd.Flags().Int("places", 2, "Decimal places for decimal results")
	genCmd.Flags().Bool("answers", true, "Print answers next to each expression")
}
