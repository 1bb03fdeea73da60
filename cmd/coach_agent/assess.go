package main

import (
	"context"
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-coach/internal/observability"
)

var (
	assessConfig   string
	assessQuestion string
	assessAnswer   string
	assessRole     string
	assessVerbose  bool
)

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Grade an interview answer",
	RunE:  runAssess,
}

func init() {
	assessCmd.Flags().StringVar(&assessConfig, "config", "", "Path to JSON config file")
	assessCmd.Flags().StringVarP(&assessQuestion, "question", "q", "", "Interview question (required)")
	assessCmd.Flags().StringVarP(&assessAnswer, "answer", "a", "", "Candidate answer (required)")
	assessCmd.Flags().StringVarP(&assessRole, "role", "r", "", "Target role for context")
	assessCmd.Flags().BoolVarP(&assessVerbose, "verbose", "v", false, "Print a formatted summary instead of JSON")

	_ = assessCmd.MarkFlagRequired("question")
	_ = assessCmd.MarkFlagRequired("answer")

	rootCmd.AddCommand(assessCmd)
}

func runAssess(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(assessConfig)
	if err != nil {
		return err
	}

	ctx := context.Background()
	c, cleanup, err := buildCoach(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	assessment := c.AssessAnswer(ctx, assessQuestion, assessAnswer, assessRole)

	if assessVerbose {
		observability.NewPrinter(os.Stdout).PrintAssessment(&assessment)
		return nil
	}
	return json.NewEncoder(os.Stdout).Encode(assessment)
}
