// Package alerts runs the periodic low-stock scan. Each pass compares
// every product's stock to its threshold and raises at most one
// notification per product per condition, keyed so the same condition
// never re-fires on later passes.
package alerts

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"replenishhq/internal/data"
	"replenishhq/internal/models"
)

// DefaultInterval matches the source system's one-minute check.
const DefaultInterval = time.Minute

type Scanner struct {
	mgr *data.Manager
	log *slog.Logger
}

func NewScanner(mgr *data.Manager, log *slog.Logger) *Scanner {
	if log == nil {
		log = slog.Default()
	}
	return &Scanner{mgr: mgr, log: log}
}

// Scan makes one idempotent pass over the products collection and
// returns how many notifications it raised. Running it again over an
// unchanged collection raises none.
func (s *Scanner) Scan() int {
	if !s.mgr.GetSettings().LowStockNotif {
		return 0
	}

	raised := 0
	for _, p := range s.mgr.GetProducts() {
		switch {
		case p.Stock == 0:
			key := fmt.Sprintf("out-of-stock-%d", p.ID)
			if s.mgr.EnsureStockAlert(key, models.Notification{
				Message:   fmt.Sprintf("%s is out of stock", p.Name),
				Type:      models.NotifCritical,
				ActionURL: "/dashboard?page=products",
			}) {
				raised++
			}
		case p.Stock <= p.Threshold:
			key := fmt.Sprintf("low-stock-%d", p.ID)
			if s.mgr.EnsureStockAlert(key, models.Notification{
				Message:   fmt.Sprintf("%s stock is low (%d units)", p.Name, p.Stock),
				Type:      models.NotifWarning,
				ActionURL: "/dashboard?page=products",
			}) {
				raised++
			}
		}
	}
	if raised > 0 {
		s.log.Info("low-stock scan raised notifications", "count", raised)
	}
	return raised
}

// Run scans immediately, then on every tick until ctx is cancelled.
// A missed tick only delays notification; it has no correctness impact.
func (s *Scanner) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultInterval
	}
	s.Scan()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			s.log.Info("low-stock scanner stopped")
			return
		case <-ticker.C:
			s.Scan()
		}
	}
}
