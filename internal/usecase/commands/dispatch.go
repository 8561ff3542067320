package commands

import (
	"context"
	"log/slog"
	"time"

	"petstay-backend/internal/pkg/clock"
	"petstay-backend/internal/pkg/config"
	"petstay-backend/internal/pkg/errs"
	"petstay-backend/internal/pkg/tracing"
	"petstay-backend/internal/usecase/shared"

	"go.opentelemetry.io/otel/attribute"
)

const (
	dispatchBaseBackoff = 30 * time.Second
	dispatchMaxBackoff  = time.Hour
	maxLastErrorLength  = 500
)

var ErrPublishFailed = errs.Upstream("notification publish failed")

type DispatchResult struct {
	Sent   int
	Retry  int
	Failed int
}

// NotificationDispatcher drains the outbox to the broker. Delivery is at least
// once: a job is marked sent in the transaction that claimed it.
type NotificationDispatcher interface {
	DispatchDue(ctx context.Context) (DispatchResult, error)
}

type dispatcherImpl struct {
	uow       shared.UnitOfWork
	publisher Publisher
	clock     clock.Clock
	cfg       config.BookingConfig
}

func NewNotificationDispatcher(uow shared.UnitOfWork, publisher Publisher, clk clock.Clock, cfg config.BookingConfig) NotificationDispatcher {
	return &dispatcherImpl{uow: uow, publisher: publisher, clock: clk, cfg: cfg}
}

func (d *dispatcherImpl) DispatchDue(ctx context.Context) (res DispatchResult, err error) {
	ctx, span := tracing.Start(ctx, "Sweep.DispatchNotifications")
	defer func() {
		span.SetAttributes(
			attribute.Int("dispatch.sent", res.Sent),
			attribute.Int("dispatch.retry", res.Retry),
			attribute.Int("dispatch.failed", res.Failed),
		)
		tracing.End(span, err)
	}()

	for i := 0; i < maxBatchesPerRun; i++ {
		var batch DispatchResult
		var claimed int
		err = d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			batch = DispatchResult{}
			now := d.clock.Now()
			jobs, err := tx.Notifications().ClaimDue(ctx, now, d.cfg.SweepBatchSize)
			if err != nil {
				return err
			}
			claimed = len(jobs)
			for _, job := range jobs {
				if err := d.deliver(ctx, tx, job, now, &batch); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return res, err
		}
		res.Sent += batch.Sent
		res.Retry += batch.Retry
		res.Failed += batch.Failed
		if claimed < d.cfg.SweepBatchSize {
			break
		}
	}
	return res, nil
}

func (d *dispatcherImpl) deliver(ctx context.Context, tx shared.Tx, job shared.NotificationJob, now time.Time, res *DispatchResult) error {
	pubErr := d.publisher.Publish(ctx, job.ID, job.Topic, job.Payload)
	if pubErr == nil {
		res.Sent++
		return tx.Notifications().MarkSent(ctx, job.ID)
	}

	attempts := job.Attempts + 1
	status := shared.NotificationQueued
	if attempts >= d.cfg.NotifyMaxAttempts {
		status = shared.NotificationFailed
		res.Failed++
	} else {
		res.Retry++
	}
	slog.WarnContext(ctx, "notification delivery failed",
		slog.String("code", string(errs.CodeOf(ErrPublishFailed))),
		slog.String("job_id", job.ID.String()),
		slog.String("topic", job.Topic),
		slog.Int("attempts", attempts),
		slog.String("status", status),
		slog.Any("error", pubErr))

	return tx.Notifications().MarkFailed(ctx, job.ID, status, truncate(pubErr.Error(), maxLastErrorLength), now.Add(backoff(attempts)))
}

// backoff doubles from the base per attempt, capped.
func backoff(attempts int) time.Duration {
	d := dispatchBaseBackoff
	for i := 1; i < attempts; i++ {
		d *= 2
		if d >= dispatchMaxBackoff {
			return dispatchMaxBackoff
		}
	}
	return d
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
