package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-coach/internal/observability"
	"github.com/jonathan/career-coach/internal/types"
)

var (
	questionsConfig  string
	questionsRole    string
	questionsLevel   string
	questionsSkills  []string
	questionsVerbose bool
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Generate an interview question set",
	RunE:  runQuestions,
}

func init() {
	questionsCmd.Flags().StringVar(&questionsConfig, "config", "", "Path to JSON config file")
	questionsCmd.Flags().StringVarP(&questionsRole, "role", "r", "", "Target role (required)")
	questionsCmd.Flags().StringVarP(&questionsLevel, "level", "l", "mid", "Experience level: entry, mid, or senior")
	questionsCmd.Flags().StringSliceVarP(&questionsSkills, "skills", "s", nil, "Candidate skills")
	questionsCmd.Flags().BoolVarP(&questionsVerbose, "verbose", "v", false, "Print a formatted summary instead of JSON")

	_ = questionsCmd.MarkFlagRequired("role")

	rootCmd.AddCommand(questionsCmd)
}

func runQuestions(_ *cobra.Command, _ []string) error {
	level, err := parseLevel(questionsLevel)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(questionsConfig)
	if err != nil {
		return err
	}

	ctx := context.Background()
	c, cleanup, err := buildCoach(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	questions := c.GenerateQuestions(ctx, questionsRole, level, questionsSkills)

	if questionsVerbose {
		observability.NewPrinter(os.Stdout).PrintQuestions(questions)
		return nil
	}
	return json.NewEncoder(os.Stdout).Encode(questions)
}

// parseLevel validates an experience level flag value
func parseLevel(value string) (types.ExperienceLevel, error) {
	switch level := types.ExperienceLevel(value); level {
	case types.LevelEntry, types.LevelMid, types.LevelSenior:
		return level, nil
	default:
		return "", fmt.Errorf("invalid level %q: must be entry, mid, or senior", value)
	}
}
