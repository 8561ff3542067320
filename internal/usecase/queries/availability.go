package queries

import (
	"context"
	"time"

	"petstay-backend/internal/domain/calendar"
	"petstay-backend/internal/domain/pricing"
	"petstay-backend/internal/domain/provider"
	"petstay-backend/internal/infra"
	"petstay-backend/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrRoomNotFound     = errs.NotFound("room not found")
	ErrProviderNotFound = errs.NotFound("provider not found")
	ErrInvalidWindow    = errs.Validation("finishing time must be after starting time")
)

// RoomSearchFilter is translated once into the SQL layer; nil fields do not filter.
type RoomSearchFilter struct {
	ProviderProfileID *uuid.UUID
	HotelID           *uuid.UUID
	MinPetCapacity    *int
	MinHumanCapacity  *int
	Limit             int
}

type RoomBase struct {
	ID            uuid.UUID
	PricePerNight pricing.Money
}

// RoomDayRow is one available calendar day of a candidate room.
type RoomDayRow struct {
	RoomID            uuid.UUID
	RoomName          string
	HotelID           uuid.UUID
	HotelName         string
	ProviderProfileID uuid.UUID
	PricePerNight     pricing.Money
	PetCapacity       int
	HumanCapacity     int
	Day               calendar.Day
}

type AvailabilityReadStore interface {
	FindRoomBase(ctx context.Context, roomID uuid.UUID) (*RoomBase, error)
	FindCalendarDays(ctx context.Context, roomID uuid.UUID, dates calendar.DateRange) ([]calendar.Day, error)
	SearchRoomDays(ctx context.Context, dates calendar.DateRange, filter RoomSearchFilter) ([]RoomDayRow, error)
	FindProviderProfile(ctx context.Context, profileID uuid.UUID) (*provider.Profile, error)
	CountActiveOverlaps(ctx context.Context, profileID uuid.UUID, start, end time.Time) (int64, error)
}

type AvailabilityQueries interface {
	CheckRoom(ctx context.Context, roomID uuid.UUID, dates calendar.DateRange) (*RoomAvailabilityView, error)
	SearchRooms(ctx context.Context, dates calendar.DateRange, filter RoomSearchFilter) ([]*AvailableRoomView, error)
	CheckSitter(ctx context.Context, profileID uuid.UUID, start, end time.Time) (*SitterAvailabilityView, error)
}

type availabilityQueriesImpl struct {
	store AvailabilityReadStore
}

func NewAvailabilityQueries(store AvailabilityReadStore) AvailabilityQueries {
	return &availabilityQueriesImpl{store: store}
}

func (q *availabilityQueriesImpl) CheckRoom(ctx context.Context, roomID uuid.UUID, dates calendar.DateRange) (*RoomAvailabilityView, error) {
	room, err := q.store.FindRoomBase(ctx, roomID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	days, err := q.store.FindCalendarDays(ctx, roomID, dates)
	if err != nil {
		return nil, err
	}

	availability := calendar.CheckAvailability(dates, days)
	view := &RoomAvailabilityView{
		RoomID:          roomID,
		CheckIn:         dates.CheckIn(),
		CheckOut:        dates.CheckOut(),
		TotalNights:     availability.TotalNights,
		AvailableNights: availability.AvailableNights,
		IsAvailable:     availability.IsAvailable,
	}
	if availability.IsAvailable {
		total := calendar.CalculateTotalPrice(days, room.PricePerNight).Int64()
		view.TotalPrice = &total
	}
	return view, nil
}

// SearchRooms keeps rooms that have every night of the range free and prices them
// the same way a booking would be priced.
func (q *availabilityQueriesImpl) SearchRooms(ctx context.Context, dates calendar.DateRange, filter RoomSearchFilter) ([]*AvailableRoomView, error) {
	limit := ValidateLimit(filter.Limit)

	rows, err := q.store.SearchRoomDays(ctx, dates, filter)
	if err != nil {
		return nil, err
	}

	type group struct {
		first RoomDayRow
		days  []calendar.Day
	}
	order := make([]uuid.UUID, 0)
	groups := make(map[uuid.UUID]*group)
	for _, row := range rows {
		g, ok := groups[row.RoomID]
		if !ok {
			g = &group{first: row}
			groups[row.RoomID] = g
			order = append(order, row.RoomID)
		}
		g.days = append(g.days, row.Day)
	}

	nights := dates.Nights()
	results := make([]*AvailableRoomView, 0, len(order))
	for _, id := range order {
		g := groups[id]
		if !calendar.CheckAvailability(dates, g.days).IsAvailable {
			continue
		}
		results = append(results, &AvailableRoomView{
			RoomID:            g.first.RoomID,
			RoomName:          g.first.RoomName,
			HotelID:           g.first.HotelID,
			HotelName:         g.first.HotelName,
			ProviderProfileID: g.first.ProviderProfileID,
			PricePerNight:     g.first.PricePerNight.Int64(),
			PetCapacity:       g.first.PetCapacity,
			HumanCapacity:     g.first.HumanCapacity,
			Nights:            nights,
			TotalPrice:        calendar.CalculateTotalPrice(g.days, g.first.PricePerNight).Int64(),
		})
		if len(results) == limit {
			break
		}
	}
	return results, nil
}

func (q *availabilityQueriesImpl) CheckSitter(ctx context.Context, profileID uuid.UUID, start, end time.Time) (*SitterAvailabilityView, error) {
	if !end.After(start) {
		return nil, ErrInvalidWindow
	}

	profile, err := q.store.FindProviderProfile(ctx, profileID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProviderNotFound
		}
		return nil, err
	}
	if profile.Kind != provider.KindSitter {
		return nil, ErrProviderNotFound
	}

	count, err := q.store.CountActiveOverlaps(ctx, profileID, start, end)
	if err != nil {
		return nil, err
	}
	return &SitterAvailabilityView{
		ProviderProfileID: profileID,
		StartingTime:      start,
		FinishingTime:     end,
		IsAvailable:       count == 0,
		ConflictingCount:  count,
	}, nil
}
