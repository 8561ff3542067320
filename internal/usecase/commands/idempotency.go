package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"petstay-backend/internal/pkg/errs"
	"petstay-backend/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrIdempotencyKeyReused  = errs.Conflict("idempotency key was used with a different request")
	ErrIdempotencyInProgress = errs.Conflict("a request with this idempotency key is still in progress")
)

const (
	endpointCreateRoomBooking   = "POST /api/room-bookings"
	endpointCreateSitterBooking = "POST /api/sitter-bookings"
)

func requestHash(endpoint string, req any) (string, error) {
	data, err := json.Marshal(req)
	if err != nil {
		return "", errs.Wrap(err, "hash request")
	}
	hash := sha256.Sum256(append([]byte(endpoint+"\n"), data...))
	return hex.EncodeToString(hash[:]), nil
}

func idHash(id uuid.UUID) string {
	hash := sha256.Sum256([]byte(id.String()))
	return hex.EncodeToString(hash[:])
}

// claimIdempotencyKey runs inside the create transaction. It returns the booking
// to replay when the key already completed for the same request; a nil id means
// the caller owns the key and must create the booking.
//
// A concurrent insert of the same key blocks on the unique index until the
// other transaction ends, so a committed row is never left in processing.
func claimIdempotencyKey(ctx context.Context, tx shared.Tx, claim shared.IdempotencyClaim, now time.Time) (*uuid.UUID, error) {
	repo := tx.Idempotency()
	inserted, err := repo.TryInsert(ctx, claim)
	if err != nil {
		return nil, err
	}
	if inserted {
		return nil, nil
	}

	rec, err := repo.GetForUpdate(ctx, claim.Key, claim.UserID)
	if err != nil {
		return nil, err
	}
	if rec.ExpiresAt.Before(now) {
		claimed, err := repo.ClaimExpired(ctx, claim, now)
		if err != nil {
			return nil, err
		}
		if !claimed {
			return nil, ErrIdempotencyInProgress
		}
		return nil, nil
	}
	if rec.Endpoint != claim.Endpoint || rec.RequestHash != claim.RequestHash {
		return nil, ErrIdempotencyKeyReused
	}
	if rec.Status != shared.IdempotencyCompleted || rec.ResultBookingID == nil {
		return nil, ErrIdempotencyInProgress
	}
	return rec.ResultBookingID, nil
}

func completeIdempotencyKey(ctx context.Context, tx shared.Tx, claim shared.IdempotencyClaim, bookingID uuid.UUID) error {
	return tx.Idempotency().Complete(ctx, claim.Key, claim.UserID, idHash(bookingID), bookingID)
}
