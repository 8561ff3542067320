package readstore

import (
	"context"

	"petstay-backend/internal/infra"
	sqlc "petstay-backend/internal/infra/sqlc/generated"
	"petstay-backend/internal/pkg/pgconv"
	"petstay-backend/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingReadQueries interface {
	GetRoomBooking(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetRoomBookingRow, error)
	GetSitterBooking(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetSitterBookingRow, error)
	ListSitterBookingAdditionalServices(ctx context.Context, db sqlc.DBTX, bookingID uuid.UUID) ([]sqlc.SitterBookingAdditionalServices, error)
	ListRoomBookingsByClient(ctx context.Context, db sqlc.DBTX, arg sqlc.ListRoomBookingsByClientParams) ([]sqlc.ListRoomBookingsByClientRow, error)
	ListRoomBookingsByRooms(ctx context.Context, db sqlc.DBTX, arg sqlc.ListRoomBookingsByRoomsParams) ([]sqlc.ListRoomBookingsByRoomsRow, error)
	ListSitterBookingsByClient(ctx context.Context, db sqlc.DBTX, arg sqlc.ListSitterBookingsByClientParams) ([]sqlc.ListSitterBookingsByClientRow, error)
	ListSitterBookingsByProfiles(ctx context.Context, db sqlc.DBTX, arg sqlc.ListSitterBookingsByProfilesParams) ([]sqlc.ListSitterBookingsByProfilesRow, error)
}

type BookingReadStore struct {
	queries BookingReadQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingReadQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindRoomBooking(ctx context.Context, id uuid.UUID) (*queries.RoomBookingView, error) {
	row, err := r.queries.GetRoomBooking(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get room booking", err)
	}
	return &queries.RoomBookingView{
		ID:           row.ID,
		Code:         row.BookingCode,
		ClientID:     row.ClientID,
		HotelID:      row.HotelID,
		HotelName:    row.HotelName,
		RoomID:       row.RoomID,
		RoomName:     row.RoomName,
		OwnerUserID:  row.OwnerUserID,
		CheckIn:      pgconv.DateFromPgtype(row.CheckIn),
		CheckOut:     pgconv.DateFromPgtype(row.CheckOut),
		Nights:       int(row.Nights),
		PetCount:     int(row.PetCount),
		HumanCount:   int(row.HumanCount),
		Price:        row.Price,
		PlatformFee:  row.PlatformFee,
		GrandTotal:   row.GrandTotal,
		Status:       row.Status,
		Note:         pgconv.StringPtrFromPgtype(row.Note),
		CancelledBy:  pgconv.StringPtrFromPgtype(row.CancelledBy),
		CancelledAt:  pgconv.TimePtrFromPgtype(row.CancelledAt),
		ConfirmedAt:  pgconv.TimePtrFromPgtype(row.ConfirmedAt),
		CheckedInAt:  pgconv.TimePtrFromPgtype(row.CheckedInAt),
		CheckedOutAt: pgconv.TimePtrFromPgtype(row.CheckedOutAt),
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:    pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func (r *BookingReadStore) FindSitterBooking(ctx context.Context, id uuid.UUID) (*queries.SitterBookingView, error) {
	row, err := r.queries.GetSitterBooking(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("sitter booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get sitter booking", err)
	}

	extras, err := r.queries.ListSitterBookingAdditionalServices(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booking additional services", err)
	}
	items := make([]queries.LineItemView, 0, len(extras))
	for _, e := range extras {
		items = append(items, queries.LineItemView{
			ServiceID:       e.ServiceID,
			Name:            e.Name,
			Price:           e.Price,
			DurationMinutes: int(e.DurationMinutes),
		})
	}

	return &queries.SitterBookingView{
		ID:                  row.ID,
		Code:                row.BookingCode,
		ClientID:            row.ClientID,
		ProviderProfileID:   row.ProviderProfileID,
		SitterUserID:        row.SitterUserID,
		SitterName:          row.SitterName,
		ServiceID:           pgconv.UUIDPtrFromPgtype(row.ServiceID),
		PackageID:           pgconv.UUIDPtrFromPgtype(row.PackageID),
		OfferingName:        row.OfferingName,
		OfferingPrice:       row.OfferingPrice,
		OfferingDuration:    int(row.OfferingDurationMinutes),
		AdditionalServices:  items,
		AddressID:           row.AddressID,
		AddressSnapshot:     row.AddressSnapshot,
		StartingTime:        pgconv.TimeFromPgtype(row.StartingTime),
		FinishingTime:       pgconv.TimeFromPgtype(row.FinishingTime),
		DurationMinutes:     int(row.DurationMinutes),
		Price:               row.Price,
		PlatformFee:         row.PlatformFee,
		GrandTotal:          row.GrandTotal,
		Status:              row.Status,
		Note:                pgconv.StringPtrFromPgtype(row.Note),
		IsLate:              row.IsLate,
		MinutesLate:         pgconv.Int32PtrFromPgtype(row.MinutesLate),
		CancelledBy:         pgconv.StringPtrFromPgtype(row.CancelledBy),
		CancelledAt:         pgconv.TimePtrFromPgtype(row.CancelledAt),
		ConfirmedAt:         pgconv.TimePtrFromPgtype(row.ConfirmedAt),
		StartedAt:           pgconv.TimePtrFromPgtype(row.StartedAt),
		CompletionNote:      pgconv.StringPtrFromPgtype(row.CompletionNote),
		CompletionProofURLs: row.CompletionProofUrls,
		RequestCompletedAt:  pgconv.TimePtrFromPgtype(row.RequestCompletedAt),
		CompletedAt:         pgconv.TimePtrFromPgtype(row.CompletedAt),
		ExpiredAt:           pgconv.TimePtrFromPgtype(row.ExpiredAt),
		CreatedAt:           pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:           pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func (r *BookingReadStore) ListRoomBookingsByClient(ctx context.Context, clientID uuid.UUID, page queries.BookingPage) ([]*queries.RoomBookingListItem, error) {
	rows, err := r.queries.ListRoomBookingsByClient(ctx, r.db, sqlc.ListRoomBookingsByClientParams{
		ClientID:  clientID,
		Status:    pgconv.StringPtrToPgtype(page.Status),
		CursorID:  pgconv.UUIDPtrToPgtype(page.AfterID),
		PageLimit: page.Limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list room bookings by client", err)
	}
	items := make([]*queries.RoomBookingListItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, roomListItem(sqlc.ListRoomBookingsByRoomsRow(row)))
	}
	return items, nil
}

func (r *BookingReadStore) ListRoomBookingsByRooms(ctx context.Context, roomIDs []uuid.UUID, page queries.BookingPage) ([]*queries.RoomBookingListItem, error) {
	rows, err := r.queries.ListRoomBookingsByRooms(ctx, r.db, sqlc.ListRoomBookingsByRoomsParams{
		RoomIds:   roomIDs,
		Status:    pgconv.StringPtrToPgtype(page.Status),
		CursorID:  pgconv.UUIDPtrToPgtype(page.AfterID),
		PageLimit: page.Limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list room bookings by rooms", err)
	}
	items := make([]*queries.RoomBookingListItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, roomListItem(row))
	}
	return items, nil
}

func (r *BookingReadStore) ListSitterBookingsByClient(ctx context.Context, clientID uuid.UUID, page queries.BookingPage) ([]*queries.SitterBookingListItem, error) {
	rows, err := r.queries.ListSitterBookingsByClient(ctx, r.db, sqlc.ListSitterBookingsByClientParams{
		ClientID:  clientID,
		Status:    pgconv.StringPtrToPgtype(page.Status),
		CursorID:  pgconv.UUIDPtrToPgtype(page.AfterID),
		PageLimit: page.Limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list sitter bookings by client", err)
	}
	items := make([]*queries.SitterBookingListItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, sitterListItem(sqlc.ListSitterBookingsByProfilesRow(row)))
	}
	return items, nil
}

func (r *BookingReadStore) ListSitterBookingsByProfiles(ctx context.Context, profileIDs []uuid.UUID, page queries.BookingPage) ([]*queries.SitterBookingListItem, error) {
	rows, err := r.queries.ListSitterBookingsByProfiles(ctx, r.db, sqlc.ListSitterBookingsByProfilesParams{
		ProfileIds: profileIDs,
		Status:     pgconv.StringPtrToPgtype(page.Status),
		CursorID:   pgconv.UUIDPtrToPgtype(page.AfterID),
		PageLimit:  page.Limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list sitter bookings by profiles", err)
	}
	items := make([]*queries.SitterBookingListItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, sitterListItem(row))
	}
	return items, nil
}

func roomListItem(row sqlc.ListRoomBookingsByRoomsRow) *queries.RoomBookingListItem {
	return &queries.RoomBookingListItem{
		ID:          row.ID,
		Code:        row.BookingCode,
		ClientID:    row.ClientID,
		HotelID:     row.HotelID,
		HotelName:   row.HotelName,
		RoomID:      row.RoomID,
		RoomName:    row.RoomName,
		CheckIn:     pgconv.DateFromPgtype(row.CheckIn),
		CheckOut:    pgconv.DateFromPgtype(row.CheckOut),
		Nights:      int(row.Nights),
		Price:       row.Price,
		PlatformFee: row.PlatformFee,
		GrandTotal:  row.GrandTotal,
		Status:      row.Status,
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
	}
}

func sitterListItem(row sqlc.ListSitterBookingsByProfilesRow) *queries.SitterBookingListItem {
	return &queries.SitterBookingListItem{
		ID:                row.ID,
		Code:              row.BookingCode,
		ClientID:          row.ClientID,
		ProviderProfileID: row.ProviderProfileID,
		SitterName:        row.SitterName,
		StartingTime:      pgconv.TimeFromPgtype(row.StartingTime),
		FinishingTime:     pgconv.TimeFromPgtype(row.FinishingTime),
		DurationMinutes:   int(row.DurationMinutes),
		Price:             row.Price,
		PlatformFee:       row.PlatformFee,
		GrandTotal:        row.GrandTotal,
		Status:            row.Status,
		CreatedAt:         pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
