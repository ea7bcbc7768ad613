package uploads

import (
	"context"
	"time"

	"github.com/contentforge/content-api/pkg/logger"
	"github.com/contentforge/content-api/pkg/metrics"
)

// CleanupFiles removes the named files from the sink in the background.
// Fire-and-forget: the caller never waits and never sees a failure. Files
// that could not be removed stay orphaned on disk and are logged for manual
// remediation.
func CleanupFiles(sink Sink, names []string) {
	if sink == nil || len(names) == 0 {
		return
	}
	// copy: the caller may reuse its slice after we return
	pending := make([]string, 0, len(names))
	for _, n := range names {
		if n != "" {
			pending = append(pending, n)
		}
	}
	if len(pending) == 0 {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		for _, name := range pending {
			if err := sink.Delete(ctx, name); err != nil {
				metrics.CleanupFailures.Inc()
				logger.Errorf("cleanup: failed to delete upload %s: %v", name, err)
				continue
			}
			metrics.UploadsDeleted.Inc()
		}
	}()
}
