package cmd

import (
	"github.com/ianleeapple/Online-Math-Dictionary/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "omd",
	Short: "AI variant-problem generator for the Online Math Dictionary",
	Long: "omd drives the Online Math Dictionary's AI generation core: it turns one\n" +
		"template math problem into validated variant problems using a generative-AI\n" +
		"provider with model fallback and retry.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite event database (overrides OMD_DB env var)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(costCmd)
	rootCmd.AddCommand(eventsCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then OMD_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
