package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/career-coach/internal/coach"
	"github.com/jonathan/career-coach/internal/ingestion"
	"github.com/jonathan/career-coach/internal/observability"
	"github.com/jonathan/career-coach/internal/types"
)

var (
	analyzeConfig  string
	analyzeVerbose bool
)

// analyzeWorkers bounds concurrent document analyses
const analyzeWorkers = 4

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>...",
	Short: "Score one or more resume documents",
	Long:  "Score resume documents (.txt, .html, or .pdf) and print a JSON report per file. With --verbose, print formatted summaries instead.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeConfig, "config", "", "Path to JSON config file")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print formatted summaries instead of JSON")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig(analyzeConfig)
	if err != nil {
		return err
	}

	ctx := context.Background()
	c, cleanup, err := buildCoach(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	reports := make([]*types.ScoreReport, len(args))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(analyzeWorkers)
	for i, path := range args {
		g.Go(func() error {
			report, err := analyzeFile(gctx, c, path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			reports[i] = report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	for i, report := range reports {
		if analyzeVerbose {
			fmt.Printf("%s:\n", args[i])
			printer.PrintScoreReport(report)
			printer.PrintTextStats(report.TextStats)
		} else {
			if err := json.NewEncoder(os.Stdout).Encode(report); err != nil {
				return err
			}
		}
	}

	return nil
}

// analyzeFile ingests one document and scores it
func analyzeFile(ctx context.Context, c *coach.Coach, path string) (*types.ScoreReport, error) {
	text, err := ingestion.FromFile(path)
	if err != nil {
		return nil, err
	}
	return c.AnalyzeResume(ctx, text)
}
