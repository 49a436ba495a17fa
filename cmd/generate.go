package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/ianleeapple/Online-Math-Dictionary/internal/llm"
	"github.com/ianleeapple/Online-Math-Dictionary/internal/store"
	"github.com/ianleeapple/Online-Math-Dictionary/internal/variantgen"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate variant problems from a template",
	RunE: func(cmd *cobra.Command, args []string) error {
		template, _ := cmd.Flags().GetString("template")
		qType, _ := cmd.Flags().GetString("type")
		difficulty, _ := cmd.Flags().GetString("difficulty")
		count, _ := cmd.Flags().GetInt("count")
		options, _ := cmd.Flags().GetString("options")
		constraints, _ := cmd.Flags().GetString("constraints")
		noLog, _ := cmd.Flags().GetBool("no-log")

		llmCfg := llm.ConfigFromEnv()
		if err := llmCfg.Validate(); err != nil {
			return err
		}

		ctx := context.Background()

		var events store.EventRepo
		if !noLog {
			dbPath, err := resolveDBPath(cmd)
			if err != nil {
				return fmt.Errorf("resolve database path: %w", err)
			}
			s, err := store.Open(dbPath)
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			defer s.Close()
			events = s.EventRepo()
		}

		provider, err := llm.NewProvider(ctx, llmCfg, events)
		if err != nil {
			return err
		}

		svc := variantgen.NewService(provider, variantgen.ConfigFromEnv(), events)

		outcome, err := svc.Generate(ctx, variantgen.GenerationRequest{
			SourceTemplate:  template,
			QuestionType:    variantgen.QuestionType(qType),
			Difficulty:      variantgen.Difficulty(difficulty),
			VariationCount:  count,
			OptionsTemplate: options,
			Constraints:     constraints,
		})
		if err != nil {
			return err
		}

		return reportOutcome(outcome)
	},
}

func init() {
	generateCmd.Flags().String("template", "", "Template problem text (required)")
	generateCmd.Flags().String("type", string(variantgen.TypeSingleChoice), "Question type: single-choice, multi-choice, fill-blank, open")
	generateCmd.Flags().String("difficulty", string(variantgen.DifficultyMedium), "Difficulty: easy, medium, hard")
	generateCmd.Flags().Int("count", 1, "Number of variants to generate")
	generateCmd.Flags().String("options", "", "Choice options template")
	generateCmd.Flags().String("constraints", "", "Special constraints for generation")
	generateCmd.Flags().Bool("no-log", false, "Skip the event database")
}

// reportOutcome prints the outcome and sets the exit status: success
// prints the result JSON to stdout, every failure variant prints a
// distinguishable message to stderr.
func reportOutcome(out variantgen.Outcome) error {
	switch out.Status {
	case variantgen.OutcomeSuccess:
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(out.Result)
	case variantgen.OutcomeBlocked:
		return fmt.Errorf("generation blocked by provider safety filter: %s", out.BlockReason)
	case variantgen.OutcomeMalformed:
		fmt.Fprintf(os.Stderr, "response excerpt: %s\n", out.RawExcerpt)
		return fmt.Errorf("AI response unreadable: %v", out.ParseErr)
	case variantgen.OutcomeExhausted:
		return fmt.Errorf("generation failed after %d attempts: %v", out.Attempts, out.Err)
	default:
		return fmt.Errorf("unknown outcome %q", out.Status)
	}
}
