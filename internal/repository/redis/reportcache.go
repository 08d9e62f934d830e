package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

const reportCachePrefix = "report:"

// ReportCache keeps the latest generated report per session, so repeated
// report reads skip the database. Synthesis refreshes the entry.
type ReportCache struct {
	client *Client
	ttl    time.Duration
}

// NewReportCache creates a new report cache
func NewReportCache(client *Client, ttl time.Duration) *ReportCache {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &ReportCache{client: client, ttl: ttl}
}

// Get retrieves the cached report for a session. A miss returns (nil, nil).
func (c *ReportCache) Get(ctx context.Context, sessionID string) (map[string]any, error) {
	key := reportCachePrefix + sessionID

	data, err := c.client.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return nil, nil // Cache miss
	}

	var report map[string]any
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report: %w", err)
	}

	return report, nil
}

// Set caches the report for a session
func (c *ReportCache) Set(ctx context.Context, sessionID string, report map[string]any) error {
	key := reportCachePrefix + sessionID

	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	return c.client.rdb.Set(ctx, key, data, c.ttl).Err()
}

// Invalidate removes the cached report for a session
func (c *ReportCache) Invalidate(ctx context.Context, sessionID string) error {
	return c.client.rdb.Del(ctx, reportCachePrefix+sessionID).Err()
}
