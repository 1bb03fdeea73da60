package main

import (
	"context"
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-coach/internal/observability"
	"github.com/jonathan/career-coach/internal/types"
)

var (
	matchConfig   string
	matchSkills   []string
	matchLevel    string
	matchLocation string
	matchRemote   bool
	matchVerbose  bool
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Match a candidate profile to simulated job postings",
	RunE:  runMatch,
}

func init() {
	matchCmd.Flags().StringVar(&matchConfig, "config", "", "Path to JSON config file")
	matchCmd.Flags().StringSliceVarP(&matchSkills, "skills", "s", nil, "Candidate skills (required)")
	matchCmd.Flags().StringVarP(&matchLevel, "level", "l", "mid", "Experience level: entry, mid, or senior")
	matchCmd.Flags().StringVar(&matchLocation, "location", "", "Preferred location")
	matchCmd.Flags().BoolVar(&matchRemote, "remote", false, "Prefer remote positions")
	matchCmd.Flags().BoolVarP(&matchVerbose, "verbose", "v", false, "Print a formatted summary instead of JSON")

	_ = matchCmd.MarkFlagRequired("skills")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(_ *cobra.Command, _ []string) error {
	level, err := parseLevel(matchLevel)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(matchConfig)
	if err != nil {
		return err
	}

	ctx := context.Background()
	c, cleanup, err := buildCoach(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	matches := c.MatchJobs(matchSkills, level, types.JobPreferences{
		Location: matchLocation,
		Remote:   matchRemote,
	})

	if matchVerbose {
		observability.NewPrinter(os.Stdout).PrintJobMatches(matches)
		return nil
	}
	return json.NewEncoder(os.Stdout).Encode(matches)
}
