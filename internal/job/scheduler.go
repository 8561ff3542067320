package job

import (
	"context"
	"log/slog"
	"time"

	"petstay-backend/internal/pkg/config"
	"petstay-backend/internal/usecase/commands"

	"github.com/cockroachdb/errors"
	"github.com/robfig/cron/v3"
)

// runTimeout bounds a single run.
const runTimeout = 5 * time.Minute

type Scheduler struct {
	cron       *cron.Cron
	sweeps     commands.SweepCommands
	dispatcher commands.NotificationDispatcher
	cfg        config.SchedulerConfig
	ctx        context.Context
	cancel     context.CancelFunc
}

func NewScheduler(cfg config.SchedulerConfig, sweeps commands.SweepCommands, dispatcher commands.NotificationDispatcher) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		// a run still in progress makes the next tick a no-op
		cron:       cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		sweeps:     sweeps,
		dispatcher: dispatcher,
		cfg:        cfg,
		ctx:        ctx,
		cancel:     cancel,
	}
}

// Register adds every job to the cron table without starting it.
func (s *Scheduler) Register() error {
	jobs := []struct {
		name string
		spec string
		run  func(context.Context) error
	}{
		{"expire_pending_sitter_bookings", s.cfg.ExpirePendingSpec, discardCount(s.sweeps.ExpirePendingSitterBookings)},
		{"mark_late_sitter_bookings", s.cfg.MarkLateSpec, discardCount(s.sweeps.MarkLateSitterBookings)},
		{"cancel_stale_room_bookings", s.cfg.StaleRoomSpec, discardCount(s.sweeps.CancelStalePendingRoomBookings)},
		{"extend_calendar_horizons", s.cfg.CalendarHorizonSpec, discardCount(s.sweeps.ExtendCalendarHorizons)},
		{"purge_idempotency_keys", s.cfg.IdempotencyPurge, discardCount(s.sweeps.PurgeExpiredIdempotencyKeys)},
		{"dispatch_notifications", s.cfg.DispatchSpec, func(ctx context.Context) error {
			_, err := s.dispatcher.DispatchDue(ctx)
			return err
		}},
	}
	for _, j := range jobs {
		if _, err := s.cron.AddFunc(j.spec, s.wrap(j.name, j.run)); err != nil {
			return errors.Wrapf(err, "schedule %s (%q)", j.name, j.spec)
		}
	}
	return nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	slog.Info("scheduler started", slog.Int("jobs", len(s.cron.Entries())))
}

// Stop cancels running jobs and waits for them up to ctx.
func (s *Scheduler) Stop(ctx context.Context) error {
	s.cancel()
	done := s.cron.Stop()
	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Scheduler) wrap(name string, run func(context.Context) error) func() {
	return func() {
		ctx, cancel := context.WithTimeout(s.ctx, runTimeout)
		defer cancel()

		start := time.Now()
		if err := run(ctx); err != nil {
			slog.Error("scheduled job failed", slog.String("job", name), slog.Any("error", err))
			return
		}
		slog.Debug("scheduled job done", slog.String("job", name), slog.Duration("took", time.Since(start)))
	}
}

func discardCount(fn func(context.Context) (int64, error)) func(context.Context) error {
	return func(ctx context.Context) error {
		_, err := fn(ctx)
		return err
	}
}
