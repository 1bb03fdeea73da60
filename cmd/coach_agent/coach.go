package main

import (
	"context"
	"fmt"

	"github.com/jonathan/career-coach/internal/coach"
	"github.com/jonathan/career-coach/internal/config"
	"github.com/jonathan/career-coach/internal/llm"
	"github.com/jonathan/career-coach/internal/store"
)

// buildCoach wires a Coach from the effective configuration: a Gemini client
// when an API key is set, and a database-backed report cache when a database
// URL is set. The returned cleanup releases both.
func buildCoach(ctx context.Context, cfg config.Config) (*coach.Coach, func(), error) {
	var client llm.Client
	if cfg.APIKey != "" {
		llmConfig := llm.DefaultConfig().WithModel(cfg.Model)
		created, err := llm.NewClient(ctx, llmConfig, cfg.APIKey)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create model client: %w", err)
		}
		client = created
	}

	var cache coach.Cache = coach.NewMemoryCache()
	var st *store.Store
	if cfg.DatabaseURL != "" {
		connected, err := store.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			if client != nil {
				_ = client.Close()
			}
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := connected.EnsureSchema(ctx); err != nil {
			connected.Close()
			if client != nil {
				_ = client.Close()
			}
			return nil, nil, err
		}
		st = connected
		cache = store.NewReportCache(st)
	}

	cleanup := func() {
		if client != nil {
			_ = client.Close()
		}
		if st != nil {
			st.Close()
		}
	}
	return coach.New(client, cache), cleanup, nil
}
