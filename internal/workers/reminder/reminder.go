package reminder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/counterparty_portal/internal/core/domain"
	portssvc "github.com/SscSPs/counterparty_portal/internal/core/ports/services"
)

const defaultInterval = 24 * time.Hour

// Worker runs the reminder sweep on a fixed interval.
type Worker struct {
	sweeper  portssvc.ReminderSvc
	interval time.Duration
	logger   *slog.Logger
}

// Option configures Worker.
type Option func(*Worker)

// WithInterval overrides the sweep interval when greater than zero.
func WithInterval(interval time.Duration) Option {
	return func(w *Worker) {
		if interval > 0 {
			w.interval = interval
		}
	}
}

// WithLogger overrides the logger used for sweep results.
func WithLogger(logger *slog.Logger) Option {
	return func(w *Worker) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// New constructs a Worker around the reminder service.
func New(sweeper portssvc.ReminderSvc, opts ...Option) (*Worker, error) {
	if sweeper == nil {
		return nil, fmt.Errorf("reminder service is required")
	}
	w := &Worker{
		sweeper:  sweeper,
		interval: defaultInterval,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(w)
		}
	}
	return w, nil
}

// Start sweeps once immediately, then on every tick until ctx is cancelled.
func (w *Worker) Start(ctx context.Context) error {
	w.logger.InfoContext(ctx, "Reminder worker started", slog.Duration("interval", w.interval))
	w.runAndLog(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.runAndLog(ctx)
		case <-ctx.Done():
			w.logger.Info("Reminder worker stopped")
			return ctx.Err()
		}
	}
}

// RunOnce performs a single sweep.
func (w *Worker) RunOnce(ctx context.Context) (*domain.ReminderReport, error) {
	report, err := w.sweeper.Sweep(ctx)
	if err != nil {
		return nil, fmt.Errorf("reminder sweep: %w", err)
	}
	return report, nil
}

func (w *Worker) runAndLog(ctx context.Context) {
	report, err := w.RunOnce(ctx)
	if err != nil {
		if ctx.Err() == nil {
			w.logger.ErrorContext(ctx, "Reminder sweep failed", slog.String("error", err.Error()))
		}
		return
	}
	w.logger.InfoContext(ctx, "Reminder sweep finished",
		slog.Int("documents_scanned", report.DocumentsScanned),
		slog.Int("counterparties_scanned", report.CounterpartiesScanned),
		slog.Int("sent", report.Total()),
		slog.Int("skipped", report.Skipped))
}
