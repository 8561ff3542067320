package commands

import (
	"context"
	"encoding/json"
	"time"

	"petstay-backend/internal/domain/booking"
	"petstay-backend/internal/pkg/errs"
	"petstay-backend/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	kindUserNotification = "user_notification"
	kindPaymentCharge    = "payment_charge"

	TopicChargeRequested = "payment.charge_requested"
)

// Outbox topics, also used as broker routing keys.
const (
	TopicRoomCreated    = "booking.room.created"
	TopicRoomConfirmed  = "booking.room.confirmed"
	TopicRoomCheckedIn  = "booking.room.checked_in"
	TopicRoomCheckedOut = "booking.room.checked_out"
	TopicRoomCancelled  = "booking.room.cancelled"

	TopicSitterCreated             = "booking.sitter.created"
	TopicSitterConfirmed           = "booking.sitter.confirmed"
	TopicSitterStarted             = "booking.sitter.started"
	TopicSitterCompletionRequested = "booking.sitter.completion_requested"
	TopicSitterCompleted           = "booking.sitter.completed"
	TopicSitterCancelled           = "booking.sitter.cancelled"
	TopicSitterExpired             = "booking.sitter.expired"
	TopicSitterLate                = "booking.sitter.late"
)

type bookingEvent struct {
	BookingID   uuid.UUID     `json:"booking_id"`
	BookingCode string        `json:"booking_code,omitempty"`
	BookingKind booking.Kind  `json:"booking_kind"`
	Status      string        `json:"status"`
	By          booking.Party `json:"by,omitempty"`
	OccurredAt  time.Time     `json:"occurred_at"`
}

type chargeRequest struct {
	BookingID   uuid.UUID    `json:"booking_id"`
	BookingKind booking.Kind `json:"booking_kind"`
	ClientID    uuid.UUID    `json:"client_id"`
	Amount      int64        `json:"amount"`
	RequestedAt time.Time    `json:"requested_at"`
}

// notify enqueues a user notification in the caller's transaction.
func notify(ctx context.Context, tx shared.Tx, topic string, recipient uuid.UUID, ev bookingEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return errs.Wrap(err, "encode notification")
	}
	return tx.Notifications().Enqueue(ctx, shared.Notification{
		Kind:        kindUserNotification,
		Topic:       topic,
		RecipientID: &recipient,
		Payload:     payload,
		RunAt:       ev.OccurredAt,
	})
}

func requestCharge(ctx context.Context, tx shared.Tx, req chargeRequest) error {
	payload, err := json.Marshal(req)
	if err != nil {
		return errs.Wrap(err, "encode charge request")
	}
	return tx.Notifications().Enqueue(ctx, shared.Notification{
		Kind:    kindPaymentCharge,
		Topic:   TopicChargeRequested,
		Payload: payload,
		RunAt:   req.RequestedAt,
	})
}
