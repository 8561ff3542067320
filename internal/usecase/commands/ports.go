package commands

import (
	"context"

	"petstay-backend/internal/domain/pricing"
	"petstay-backend/internal/usecase/queries"

	"github.com/google/uuid"
)

// FeePolicySource returns the fee policies in force right now.
type FeePolicySource interface {
	Current(ctx context.Context) (pricing.FeePolicies, error)
}

// Publisher delivers one outbox message to the broker.
type Publisher interface {
	Publish(ctx context.Context, messageID uuid.UUID, topic string, payload []byte) error
}

// BookingViews reads committed bookings back after a write.
type BookingViews interface {
	FindRoomBooking(ctx context.Context, id uuid.UUID) (*queries.RoomBookingView, error)
	FindSitterBooking(ctx context.Context, id uuid.UUID) (*queries.SitterBookingView, error)
}

type RoomBookingResult struct {
	Booking    *queries.RoomBookingView
	Breakdown  queries.PriceBreakdownView
	IsReplayed bool
}

type SitterBookingResult struct {
	Booking    *queries.SitterBookingView
	Breakdown  queries.PriceBreakdownView
	IsReplayed bool
}
