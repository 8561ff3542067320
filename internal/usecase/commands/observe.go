package commands

import (
	"context"
	"log/slog"

	"petstay-backend/internal/domain/user"
	"petstay-backend/internal/pkg/errs"
	"petstay-backend/internal/pkg/tracing"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

func startCommand(ctx context.Context, op string, actor user.Actor, bookingID uuid.UUID) (context.Context, trace.Span) {
	attrs := []attribute.KeyValue{
		attribute.String("actor.id", actor.ID.String()),
		attribute.String("actor.role", actor.Role.String()),
	}
	if bookingID != uuid.Nil {
		attrs = append(attrs, attribute.String("booking.id", bookingID.String()))
	}
	return tracing.Start(ctx, op, attrs...)
}

// endCommand logs internal failures; categorized errors are the caller's concern.
func endCommand(ctx context.Context, span trace.Span, op string, actor user.Actor, bookingID uuid.UUID, err error) {
	if err != nil && errs.CodeOf(err) == errs.CodeInternal {
		slog.ErrorContext(ctx, "booking command failed",
			slog.String("operation", op),
			slog.String("booking_id", bookingID.String()),
			slog.String("actor_id", actor.ID.String()),
			slog.String("actor_role", actor.Role.String()),
			slog.Any("error", err))
	}
	tracing.End(span, err)
}
