package cmd

import (
	"fmt"

	"github.com/ianleeapple/Online-Math-Dictionary/internal/costguard"
	"github.com/spf13/cobra"
)

var costCmd = &cobra.Command{
	Use:   "cost",
	Short: "Show usage limits and estimate request cost",
	RunE: func(cmd *cobra.Command, args []string) error {
		speechChars, _ := cmd.Flags().GetInt("speech-chars")
		tokens, _ := cmd.Flags().GetInt("tokens")

		fmt.Println("Daily limits:")
		fmt.Printf("  Requests:          %d\n", costguard.DailyRequests)
		fmt.Printf("  Speech characters: %d\n", costguard.DailySpeechChars)
		fmt.Printf("  Generation tokens: %d\n", costguard.DailyGenerationTokens)
		fmt.Println("Per-request limits:")
		fmt.Printf("  Speech characters: %d\n", costguard.MaxSpeechChars)
		fmt.Printf("  Script tokens:     %d\n", costguard.MaxScriptTokens)

		if speechChars > 0 || tokens > 0 {
			est := costguard.EstimateCost(speechChars, tokens)
			fmt.Println("\nEstimate:")
			fmt.Printf("  Speech:     $%.4f\n", est.Speech)
			fmt.Printf("  Generation: $%.4f\n", est.Generation)
			fmt.Printf("  Total:      $%.4f (NT$%.2f)\n", est.Total, est.TotalTWD)
		}

		return nil
	},
}

func init() {
	costCmd.Flags().Int("speech-chars", 0, "Speech characters to estimate")
	costCmd.Flags().Int("tokens", 0, "Generation tokens to estimate")
}
