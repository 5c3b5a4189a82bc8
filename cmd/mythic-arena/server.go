package main

import (
	"context"
	"time"

	"github.com/ericogr/mythic-arena/internal/logging"
	"github.com/ericogr/mythic-arena/internal/service"
)

// startHistorySweeper periodically deletes battle records older than ttl.
// A non-positive ttl disables the sweeper.
func startHistorySweeper(ctx context.Context, repo service.HistoryRepo, ttl, every time.Duration) {
	if ttl <= 0 {
		logging.Info("battle history retention disabled", nil)
		return
	}
	go func() {
		ticker := time.NewTicker(every)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				if _, err := service.PruneHistory(repo, now, ttl); err != nil {
					logging.Error("history sweeper failed", err, nil)
				}
			}
		}
	}()
}
