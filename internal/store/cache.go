package store

import (
	"context"
	"log"
)

// reportStore is the subset of Store the cache adapter needs
type reportStore interface {
	GetReport(ctx context.Context, key string) ([]byte, error)
	PutReport(ctx context.Context, key string, content []byte) error
}

// ReportCache adapts a Store to the analysis pipeline's cache contract:
// storage errors are logged and treated as misses so an unavailable database
// never blocks analysis.
type ReportCache struct {
	store reportStore
}

// NewReportCache wraps a Store for use as a report cache
func NewReportCache(s *Store) *ReportCache {
	return &ReportCache{store: s}
}

// Get returns the cached report for key, or false on a miss or storage error
func (c *ReportCache) Get(ctx context.Context, key string) (string, bool) {
	content, err := c.store.GetReport(ctx, key)
	if err != nil {
		log.Printf("Report cache read failed, treating as miss: %v", err)
		return "", false
	}
	if content == nil {
		return "", false
	}
	return string(content), true
}

// Set stores a report under key. Storage errors are logged and dropped.
func (c *ReportCache) Set(ctx context.Context, key, value string) {
	if err := c.store.PutReport(ctx, key, []byte(value)); err != nil {
		log.Printf("Report cache write failed: %v", err)
	}
}
