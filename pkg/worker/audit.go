package worker

import (
	"context"
	"time"

	"github.com/salonhub/booking-api/internal/service/audit"
	"github.com/salonhub/booking-api/pkg/logger"
)

// AuditCleanupWorker prunes audit log rows past the retention window.
type AuditCleanupWorker struct {
	auditSvc      *audit.Service
	retentionDays int
	interval      time.Duration
	logger        *logger.Logger
}

func NewAuditCleanupWorker(auditSvc *audit.Service, retentionDays int, interval time.Duration, logger *logger.Logger) *AuditCleanupWorker {
	if retentionDays <= 0 {
		retentionDays = 90
	}
	if interval <= 0 {
		interval = 24 * time.Hour
	}
	return &AuditCleanupWorker{
		auditSvc:      auditSvc,
		retentionDays: retentionDays,
		interval:      interval,
		logger:        logger,
	}
}

func (w *AuditCleanupWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cutoff := time.Now().AddDate(0, 0, -w.retentionDays)
			deleted, err := w.auditSvc.Cleanup(ctx, cutoff)
			if err != nil {
				w.logger.Error(err, "Failed to prune audit logs")
				continue
			}
			if deleted > 0 {
				w.logger.Info("Pruned audit logs", "deleted", deleted)
			}
		}
	}
}
