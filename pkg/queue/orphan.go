package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/weftlabs/weft/ent/agentrun"
)

// orphanState tracks orphan-detection stats for the health snapshot.
type orphanState struct {
	mu        sync.Mutex
	lastScan  time.Time
	recovered int64
}

func (o *orphanState) record(scanned time.Time, recovered int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.lastScan = scanned
	o.recovered += int64(recovered)
}

func (o *orphanState) snapshot() (time.Time, int64) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.lastScan, o.recovered
}

// runOrphanDetection periodically recovers runs whose worker died
// without writing a terminal status.
func (p *WorkerPool) runOrphanDetection(ctx context.Context) {
	defer p.wg.Done()
	ticker := time.NewTicker(p.config.OrphanDetectionInterval)
	defer ticker.Stop()
	for {
		select {
		case <-p.stopCh:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.detectAndRecoverOrphans(ctx)
		}
	}
}

// detectAndRecoverOrphans marks stale running rows failed when their
// Redis liveness key is gone. A row with a live key is a long run whose
// heartbeats are flowing; it is left alone.
func (p *WorkerPool) detectAndRecoverOrphans(ctx context.Context) {
	stale, err := p.runs.FindStaleRunning(ctx, p.config.OrphanThreshold)
	if err != nil {
		p.logger.Error("orphan scan failed", "error", err)
		return
	}

	recovered := 0
	for _, run := range stale {
		if run.PodID != nil && *run.PodID != "" {
			alive, err := p.queue.RunAlive(ctx, *run.PodID, run.ID)
			if err != nil {
				p.logger.Warn("failed to check run liveness", "run_id", run.ID, "error", err)
				continue
			}
			if alive {
				continue
			}
		}
		if err := p.runs.CompleteRun(ctx, run.ID, agentrun.StatusFailed, "orphaned run recovered"); err != nil {
			p.logger.Error("failed to recover orphaned run", "run_id", run.ID, "error", err)
			continue
		}
		p.logger.Warn("recovered orphaned run",
			"run_id", run.ID,
			"thread_id", run.ThreadID,
			"started_at", run.StartedAt)
		recovered++
	}

	p.orphans.record(time.Now(), recovered)
	if recovered > 0 {
		p.logger.Info("orphan scan recovered runs", "count", recovered)
	}
}

// CleanupStartupOrphans fails every run still marked running for this
// pod id. Called once before the pool starts: a restarted pod cannot
// still be executing anything, whatever the heartbeat timestamps claim.
func CleanupStartupOrphans(ctx context.Context, runs RunStore, q *Queue, podID string) (int, error) {
	logger := slog.With("component", "worker_pool", "pod_id", podID)
	rows, err := runs.FindRunningForPod(ctx, podID)
	if err != nil {
		return 0, fmt.Errorf("failed to list running rows for pod: %w", err)
	}

	recovered := 0
	for _, run := range rows {
		if err := runs.CompleteRun(ctx, run.ID, agentrun.StatusFailed, "pod restarted while run was active"); err != nil {
			logger.Error("failed to fail orphaned run at startup", "run_id", run.ID, "error", err)
			continue
		}
		if q != nil {
			if err := q.ClearActive(ctx, podID, run.ID); err != nil {
				logger.Warn("failed to clear stale active-run key", "run_id", run.ID, "error", err)
			}
		}
		logger.Warn("failed run left over from previous pod instance",
			"run_id", run.ID,
			"thread_id", run.ThreadID)
		recovered++
	}
	return recovered, nil
}
