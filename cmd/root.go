package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/edugen/internal/generator"
	"github.com/abhisek/edugen/internal/llm"
	"github.com/abhisek/edugen/internal/pipeline"
	"github.com/abhisek/edugen/internal/reviewer"
	"github.com/abhisek/edugen/internal/store"
	"github.com/abhisek/edugen/internal/tui"
)

var rootCmd = &cobra.Command{
	Use:   "edugen",
	Short: "Generate grade-calibrated educational content",
	Long: "Edugen generates an explanation and quiz questions for any topic,\n" +
		"calibrated to a school grade level and quality-checked by a reviewer pass.",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		provider, err := llm.NewProviderFromEnv(cmd.Context(), s.Events())
		if err != nil {
			return err
		}

		return tui.Run(func(obs pipeline.Observer) *pipeline.Pipeline {
			return buildPipeline(provider, obs)
		})
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides EDUGEN_DB env var)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then EDUGEN_DB env var, then the default path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, nil
	}
	if p := os.Getenv("EDUGEN_DB"); p != "" {
		return p, nil
	}
	return store.DefaultDBPath()
}

func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(context.Background(), dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

func buildPipeline(provider llm.Provider, obs pipeline.Observer) *pipeline.Pipeline {
	gen := generator.New(provider, generator.DefaultConfig())
	rev := reviewer.New(provider, reviewer.DefaultConfig())

	var opts []pipeline.Option
	if obs != nil {
		opts = append(opts, pipeline.WithObserver(obs))
	}
	return pipeline.New(gen, rev, opts...)
}
