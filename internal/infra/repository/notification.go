package repository

import (
	"context"
	"time"

	"petstay-backend/internal/infra"
	sqlc "petstay-backend/internal/infra/sqlc/generated"
	"petstay-backend/internal/pkg/pgconv"
	"petstay-backend/internal/usecase/shared"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type NotificationWriteQueries interface {
	CreateNotificationJob(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateNotificationJobParams) error
	ClaimDueNotificationJobs(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimDueNotificationJobsParams) ([]sqlc.NotificationJobs, error)
	MarkNotificationJobSent(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error
	MarkNotificationJobFailed(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkNotificationJobFailedParams) error
}

type NotificationRepository struct {
	queries NotificationWriteQueries
	db      sqlc.DBTX
}

func NewNotificationRepository(queries NotificationWriteQueries, db sqlc.DBTX) *NotificationRepository {
	return &NotificationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *NotificationRepository) Enqueue(ctx context.Context, n shared.Notification) error {
	id, err := uuid.NewV7()
	if err != nil {
		return errors.Wrap(err, "generate notification job id")
	}

	params := sqlc.CreateNotificationJobParams{
		ID:          id,
		Kind:        n.Kind,
		Topic:       n.Topic,
		RecipientID: pgconv.UUIDPtrToPgtype(n.RecipientID),
		Payload:     n.Payload,
		RunAt:       pgconv.TimeToPgtype(n.RunAt),
	}
	if err := r.queries.CreateNotificationJob(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}
	return nil
}

// ClaimDue locks queued jobs whose run_at has passed, skipping rows held by other dispatchers.
func (r *NotificationRepository) ClaimDue(ctx context.Context, now time.Time, limit int) ([]shared.NotificationJob, error) {
	rows, err := r.queries.ClaimDueNotificationJobs(ctx, r.db, sqlc.ClaimDueNotificationJobsParams{
		Now:        pgconv.TimeToPgtype(now),
		BatchLimit: int32(limit),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim notification jobs", err)
	}

	jobs := make([]shared.NotificationJob, 0, len(rows))
	for _, row := range rows {
		jobs = append(jobs, shared.NotificationJob{
			ID:          row.ID,
			Kind:        row.Kind,
			Topic:       row.Topic,
			RecipientID: pgconv.UUIDPtrFromPgtype(row.RecipientID),
			Payload:     row.Payload,
			Attempts:    int(row.Attempts),
			RunAt:       pgconv.TimeFromPgtype(row.RunAt),
		})
	}
	return jobs, nil
}

func (r *NotificationRepository) MarkSent(ctx context.Context, id uuid.UUID) error {
	if err := r.queries.MarkNotificationJobSent(ctx, r.db, id); err != nil {
		return infra.WrapRepoErr("failed to mark notification job sent", err)
	}
	return nil
}

func (r *NotificationRepository) MarkFailed(ctx context.Context, id uuid.UUID, status, lastError string, nextRunAt time.Time) error {
	params := sqlc.MarkNotificationJobFailedParams{
		Status:    status,
		LastError: pgtype.Text{String: lastError, Valid: lastError != ""},
		RunAt:     pgconv.TimeToPgtype(nextRunAt),
		ID:        id,
	}
	if err := r.queries.MarkNotificationJobFailed(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to mark notification job failed", err)
	}
	return nil
}
