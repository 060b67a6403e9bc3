package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/edugen/internal/llm"
	"github.com/abhisek/edugen/internal/pipeline"
	"github.com/abhisek/edugen/internal/ui"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate content for a topic without the interactive UI",
	RunE: func(cmd *cobra.Command, args []string) error {
		grade, _ := cmd.Flags().GetInt("grade")
		topic, _ := cmd.Flags().GetString("topic")
		asJSON, _ := cmd.Flags().GetBool("json")
		outPath, _ := cmd.Flags().GetString("out")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		provider, err := llm.NewProviderFromEnv(cmd.Context(), s.Events())
		if err != nil {
			return err
		}

		p := buildPipeline(provider, func(st pipeline.State) {
			if !asJSON {
				fmt.Fprintf(os.Stderr, "%s...\n", st)
			}
		})

		record, err := p.Run(cmd.Context(), pipeline.Input{Grade: grade, Topic: topic})
		if err != nil {
			return err
		}

		if outPath != "" {
			data, err := json.MarshalIndent(record, "", "  ")
			if err != nil {
				return fmt.Errorf("encode record: %w", err)
			}
			if err := os.WriteFile(outPath, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", outPath, err)
			}
			fmt.Fprintf(os.Stderr, "wrote %s\n", outPath)
		}

		if asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(record)
		}

		fmt.Println(ui.RenderRunRecord(record, 100))
		fmt.Println(ui.RenderRunSummary(record))
		return nil
	},
}

func init() {
	generateCmd.Flags().IntP("grade", "g", 0, "Target grade level (1-12)")
	generateCmd.Flags().StringP("topic", "t", "", "Topic to explain")
	generateCmd.Flags().Bool("json", false, "Print the full run record as JSON")
	generateCmd.Flags().StringP("out", "o", "", "Also write the run record to a JSON file")
	_ = generateCmd.MarkFlagRequired("grade")
	_ = generateCmd.MarkFlagRequired("topic")
}
