package usecases

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"recordbook-server/internal/infra/async"
	"recordbook-server/internal/logger"

	"github.com/robfig/cron/v3"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const _finalSnapshotTimeout = 10 * time.Second

func NewSnapshotWorker(schedule string, service SheetService) (*SnapshotWorker, error) {
	scheduler := cron.New(cron.WithLogger(logger.NewCronLogger()))

	w := &SnapshotWorker{
		scheduler: scheduler,
		service:   service,
	}

	_, err := scheduler.AddFunc(schedule, w.snapshot)
	if err != nil {
		return nil, fmt.Errorf("scheduling snapshots %q: %w", schedule, err)
	}

	return w, nil
}

var _ async.Worker = (*SnapshotWorker)(nil)

// SnapshotWorker periodically persists changed sheets and takes a last
// snapshot when it stops.
type SnapshotWorker struct {
	scheduler *cron.Cron
	service   SheetService
	counter   metric.Int64Counter
	once      sync.Once
}

func (w *SnapshotWorker) Run(ctx context.Context, done func()) {
	slog.Debug("snapshot worker started")
	defer done()

	w.setupOtelCounters()
	w.scheduler.Start()

	<-ctx.Done()
	slog.Info("snapshot worker cancelled")
	w.Shutdown()
}

func (w *SnapshotWorker) Shutdown() {
	w.once.Do(func() {
		<-w.scheduler.Stop().Done()

		ctx, cancel := context.WithTimeout(context.Background(), _finalSnapshotTimeout)
		defer cancel()

		if err := w.service.Snapshot(ctx); err != nil {
			slog.Error("final snapshot", slog.Any("error", err))
			return
		}
		slog.Info("final snapshot saved")
	})
}

func (w *SnapshotWorker) setupOtelCounters() {
	meter := otel.Meter("recordbook_server")
	counter, err := meter.Int64Counter(
		fmt.Sprintf("%s.%s", "recordbook_server", "snapshots"),
		metric.WithDescription("recordbook_server snapshot runs"),
	)
	if err != nil {
		slog.Warn("creating snapshot counter", slog.Any("error", err))
		return
	}
	w.counter = counter
}

func (w *SnapshotWorker) snapshot() {
	ctx := context.Background()
	if err := w.service.Snapshot(ctx); err != nil {
		slog.Error("periodic snapshot", slog.Any("error", err))
		return
	}

	if w.counter != nil {
		w.counter.Add(ctx, 1)
	}
}
