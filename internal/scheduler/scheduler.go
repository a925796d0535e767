// Package scheduler refreshes the content row gauges on a cron schedule.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/crucial707/blog-api/internal/metrics"
	"github.com/robfig/cron/v3"
)

// Counter reports the number of rows in one table.
type Counter interface {
	Count(ctx context.Context) (int, error)
}

// Refresh counts every table and updates its gauge. A failing table keeps its
// previous value; the others are still refreshed.
func Refresh(ctx context.Context, counters map[string]Counter) {
	tables := make([]string, 0, len(counters))
	for table := range counters {
		tables = append(tables, table)
	}
	sort.Strings(tables)

	for _, table := range tables {
		n, err := counters[table].Count(ctx)
		if err != nil {
			slog.Warn("scheduler: count rows", "table", table, "error", err)
			continue
		}
		metrics.SetContentRows(table, n)
	}
}

// Run refreshes the gauges once, then on every tick of spec until ctx is done.
// An invalid spec is returned before anything runs.
func Run(ctx context.Context, spec string, counters map[string]Counter) error {
	c := cron.New()
	refresh := func() { Refresh(ctx, counters) }
	if _, err := c.AddFunc(spec, refresh); err != nil {
		return fmt.Errorf("scheduler: invalid spec %q: %w", spec, err)
	}

	refresh()
	c.Start()
	slog.Info("scheduler: started", "spec", spec)

	<-ctx.Done()
	<-c.Stop().Done()
	slog.Info("scheduler: stopped")
	return nil
}
