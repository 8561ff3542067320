package queries

import (
	"context"

	"petstay-backend/internal/domain/roombooking"
	"petstay-backend/internal/domain/sitterbooking"
	"petstay-backend/internal/domain/user"
	"petstay-backend/internal/infra"
	"petstay-backend/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound  = errs.NotFound("booking not found")
	ErrBookingAccess    = errs.Forbidden("booking access denied")
	ErrInvalidListAs    = errs.Validation("as must be client or provider")
	ErrInvalidStatusArg = errs.Validation("unknown booking status")
)

type ListAs string

const (
	ListAsClient   ListAs = "client"
	ListAsProvider ListAs = "provider"
)

type BookingListFilter struct {
	As     ListAs
	Status *string
}

// BookingPage is the keyset window passed to the read store; AfterID nil means the first page.
type BookingPage struct {
	Status  *string
	AfterID *uuid.UUID
	Limit   int32
}

type BookingReadStore interface {
	FindRoomBooking(ctx context.Context, id uuid.UUID) (*RoomBookingView, error)
	FindSitterBooking(ctx context.Context, id uuid.UUID) (*SitterBookingView, error)
	ListRoomBookingsByClient(ctx context.Context, clientID uuid.UUID, page BookingPage) ([]*RoomBookingListItem, error)
	ListRoomBookingsByRooms(ctx context.Context, roomIDs []uuid.UUID, page BookingPage) ([]*RoomBookingListItem, error)
	ListSitterBookingsByClient(ctx context.Context, clientID uuid.UUID, page BookingPage) ([]*SitterBookingListItem, error)
	ListSitterBookingsByProfiles(ctx context.Context, profileIDs []uuid.UUID, page BookingPage) ([]*SitterBookingListItem, error)
}

type OwnershipReadStore interface {
	OwnedRoomIDs(ctx context.Context, ownerID uuid.UUID) ([]uuid.UUID, error)
	OwnedSitterProfileIDs(ctx context.Context, ownerID uuid.UUID) ([]uuid.UUID, error)
}

type BookingQueries interface {
	GetRoomBooking(ctx context.Context, actor user.Actor, id uuid.UUID) (*RoomBookingView, error)
	GetSitterBooking(ctx context.Context, actor user.Actor, id uuid.UUID) (*SitterBookingView, error)
	ListRoomBookings(ctx context.Context, actor user.Actor, filter BookingListFilter, cursor *Cursor, limit int) ([]*RoomBookingListItem, *Cursor, error)
	ListSitterBookings(ctx context.Context, actor user.Actor, filter BookingListFilter, cursor *Cursor, limit int) ([]*SitterBookingListItem, *Cursor, error)
}

type bookingQueriesImpl struct {
	bookings  BookingReadStore
	ownership OwnershipReadStore
}

func NewBookingQueries(bookings BookingReadStore, ownership OwnershipReadStore) BookingQueries {
	return &bookingQueriesImpl{
		bookings:  bookings,
		ownership: ownership,
	}
}

func (q *bookingQueriesImpl) GetRoomBooking(ctx context.Context, actor user.Actor, id uuid.UUID) (*RoomBookingView, error) {
	view, err := q.bookings.FindRoomBooking(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if !canView(actor, view.ClientID, view.OwnerUserID) {
		return nil, ErrBookingAccess
	}
	return view, nil
}

func (q *bookingQueriesImpl) GetSitterBooking(ctx context.Context, actor user.Actor, id uuid.UUID) (*SitterBookingView, error) {
	view, err := q.bookings.FindSitterBooking(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if !canView(actor, view.ClientID, view.SitterUserID) {
		return nil, ErrBookingAccess
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListRoomBookings(ctx context.Context, actor user.Actor, filter BookingListFilter, cursor *Cursor, limit int) ([]*RoomBookingListItem, *Cursor, error) {
	if filter.Status != nil && !roombooking.Status(*filter.Status).IsValid() {
		return nil, nil, ErrInvalidStatusArg
	}
	page, err := newPage(filter, cursor, limit)
	if err != nil {
		return nil, nil, err
	}

	var rows []*RoomBookingListItem
	switch filter.As {
	case ListAsClient:
		rows, err = q.bookings.ListRoomBookingsByClient(ctx, actor.ID, page)
	case ListAsProvider:
		var roomIDs []uuid.UUID
		roomIDs, err = q.ownership.OwnedRoomIDs(ctx, actor.ID)
		if err == nil && len(roomIDs) > 0 {
			rows, err = q.bookings.ListRoomBookingsByRooms(ctx, roomIDs, page)
		}
	default:
		return nil, nil, ErrInvalidListAs
	}
	if err != nil {
		return nil, nil, err
	}

	items, next := paginate(rows, int(page.Limit)-1, func(r *RoomBookingListItem) uuid.UUID { return r.ID })
	return nonNil(items), next, nil
}

func (q *bookingQueriesImpl) ListSitterBookings(ctx context.Context, actor user.Actor, filter BookingListFilter, cursor *Cursor, limit int) ([]*SitterBookingListItem, *Cursor, error) {
	if filter.Status != nil && !sitterbooking.Status(*filter.Status).IsValid() {
		return nil, nil, ErrInvalidStatusArg
	}
	page, err := newPage(filter, cursor, limit)
	if err != nil {
		return nil, nil, err
	}

	var rows []*SitterBookingListItem
	switch filter.As {
	case ListAsClient:
		rows, err = q.bookings.ListSitterBookingsByClient(ctx, actor.ID, page)
	case ListAsProvider:
		var profileIDs []uuid.UUID
		profileIDs, err = q.ownership.OwnedSitterProfileIDs(ctx, actor.ID)
		if err == nil && len(profileIDs) > 0 {
			rows, err = q.bookings.ListSitterBookingsByProfiles(ctx, profileIDs, page)
		}
	default:
		return nil, nil, ErrInvalidListAs
	}
	if err != nil {
		return nil, nil, err
	}

	items, next := paginate(rows, int(page.Limit)-1, func(r *SitterBookingListItem) uuid.UUID { return r.ID })
	return nonNil(items), next, nil
}

func canView(actor user.Actor, clientID, providerUserID uuid.UUID) bool {
	return actor.IsAdmin() || actor.ID == clientID || actor.ID == providerUserID
}

// newPage fetches one extra row to detect whether a next page exists.
func newPage(filter BookingListFilter, cursor *Cursor, limit int) (BookingPage, error) {
	afterID, err := cursor.afterID()
	if err != nil {
		return BookingPage{}, err
	}
	return BookingPage{
		Status:  filter.Status,
		AfterID: afterID,
		Limit:   int32(ValidateLimit(limit) + 1),
	}, nil
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
