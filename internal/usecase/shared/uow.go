package shared

import (
	"context"
	"time"

	"petstay-backend/internal/domain/booking"
	"petstay-backend/internal/domain/calendar"
	"petstay-backend/internal/domain/provider"
	"petstay-backend/internal/domain/roombooking"
	"petstay-backend/internal/domain/sitterbooking"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Calendar() CalendarRepository
	RoomBookings() RoomBookingRepository
	SitterBookings() SitterBookingRepository
	Providers() ProviderRepository
	Idempotency() IdempotencyRepository
	Notifications() NotificationRepository
	Reads() CommandReads
}

// CommandReads are the reads a command needs to make a decision, executed on
// the same connection as its writes.
type CommandReads interface {
	RoomForBooking(ctx context.Context, roomID uuid.UUID) (*RoomSnapshot, error)
	SitterOffering(ctx context.Context, sel sitterbooking.Selection) (*sitterbooking.Offering, error)
	AdditionalServices(ctx context.Context, ids []uuid.UUID) ([]sitterbooking.AdditionalService, error)
	// ActiveAddress returns nil without error when the client has no active address.
	ActiveAddress(ctx context.Context, clientID uuid.UUID) (*sitterbooking.Address, error)
	RoomBookingByID(ctx context.Context, id uuid.UUID) (*RoomBookingSnapshot, error)
	SitterBookingByID(ctx context.Context, id uuid.UUID) (*SitterBookingSnapshot, error)
	ActiveRoomIDsAfter(ctx context.Context, after uuid.UUID, limit int) ([]uuid.UUID, error)
}

type CalendarRepository interface {
	Generate(ctx context.Context, roomID uuid.UUID, from time.Time, days int) (int64, error)
	Lock(ctx context.Context, roomID uuid.UUID, dates calendar.DateRange) (int64, error)
	Unlock(ctx context.Context, roomID uuid.UUID, dates calendar.DateRange) (int64, error)
	RowsInRange(ctx context.Context, roomID uuid.UUID, dates calendar.DateRange) ([]calendar.Day, error)
	// RowsInRangeForUpdate locks the rows in date order.
	RowsInRangeForUpdate(ctx context.Context, roomID uuid.UUID, dates calendar.DateRange) ([]calendar.Day, error)
}

type RoomBookingRepository interface {
	// Insert reports false when the booking code is already taken.
	Insert(ctx context.Context, b *roombooking.Booking) (bool, error)
	Confirm(ctx context.Context, id uuid.UUID, now time.Time) (int64, error)
	CheckIn(ctx context.Context, id uuid.UUID, now time.Time) (int64, error)
	CheckOut(ctx context.Context, id uuid.UUID, now time.Time) (int64, error)
	Cancel(ctx context.Context, id uuid.UUID, by booking.Party, now time.Time) (int64, error)
	ClaimStalePending(ctx context.Context, today time.Time, limit int) ([]StaleRoomBooking, error)
}

type SitterBookingRepository interface {
	// Insert reports false when the booking code is already taken; line items are
	// only written for an inserted booking.
	Insert(ctx context.Context, b *sitterbooking.Booking) (bool, error)
	CountOverlapping(ctx context.Context, profileID uuid.UUID, start, end time.Time, excludeID *uuid.UUID) (int64, error)
	Confirm(ctx context.Context, id uuid.UUID, now time.Time) (int64, error)
	Start(ctx context.Context, id uuid.UUID, now, graceDeadline time.Time) (int64, error)
	RequestComplete(ctx context.Context, id uuid.UUID, proof sitterbooking.CompletionProof, now time.Time) (int64, error)
	Complete(ctx context.Context, id uuid.UUID, now time.Time) (int64, error)
	Cancel(ctx context.Context, id uuid.UUID, from []sitterbooking.Status, by booking.Party, now time.Time) (int64, error)
	ClaimExpirable(ctx context.Context, cutoff time.Time, limit int) ([]SitterSweepCandidate, error)
	Expire(ctx context.Context, ids []uuid.UUID, now time.Time) (int64, error)
	ClaimLate(ctx context.Context, now time.Time, limit int) ([]SitterSweepCandidate, error)
	MarkLate(ctx context.Context, ids []uuid.UUID, now time.Time) (int64, error)
}

type ProviderRepository interface {
	// Lock takes a row lock that serializes writers for one provider.
	Lock(ctx context.Context, profileID uuid.UUID) (*provider.Profile, error)
	SetAvailability(ctx context.Context, profileID uuid.UUID, availability provider.Availability) error
}

type IdempotencyRepository interface {
	// TryInsert reports false when the key already exists for the user.
	TryInsert(ctx context.Context, rec IdempotencyClaim) (bool, error)
	GetForUpdate(ctx context.Context, key, userID uuid.UUID) (*IdempotencyRecord, error)
	ClaimExpired(ctx context.Context, rec IdempotencyClaim, now time.Time) (bool, error)
	Complete(ctx context.Context, key, userID uuid.UUID, responseHash string, bookingID uuid.UUID) error
	DeleteExpired(ctx context.Context, now time.Time, limit int) (int64, error)
}

type NotificationRepository interface {
	Enqueue(ctx context.Context, n Notification) error
	ClaimDue(ctx context.Context, now time.Time, limit int) ([]NotificationJob, error)
	MarkSent(ctx context.Context, id uuid.UUID) error
	MarkFailed(ctx context.Context, id uuid.UUID, status, lastError string, nextRunAt time.Time) error
}
