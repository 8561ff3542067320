//go:build unit

package commands_test

import (
	"bytes"
	"context"
	"errors"
	"maps"
	"slices"
	"sort"
	"sync"
	"time"

	"petstay-backend/internal/domain/booking"
	"petstay-backend/internal/domain/calendar"
	"petstay-backend/internal/domain/pricing"
	"petstay-backend/internal/domain/provider"
	"petstay-backend/internal/domain/roombooking"
	"petstay-backend/internal/domain/sitterbooking"
	"petstay-backend/internal/infra"
	"petstay-backend/internal/usecase/queries"
	"petstay-backend/internal/usecase/shared"

	"github.com/google/uuid"
)

// memDB is an in-memory unit of work. Transactions run one at a time and a
// failed transaction restores the state it started from.
type memDB struct {
	mu sync.Mutex
	memState

	failures    map[string]error
	withinCalls int
}

type memState struct {
	rooms          map[uuid.UUID]shared.RoomSnapshot
	days           map[uuid.UUID]map[string]calendar.Day
	roomBookings   map[uuid.UUID]roomRow
	profiles       map[uuid.UUID]provider.Profile
	offerings      map[uuid.UUID]sitterbooking.Offering
	additional     map[uuid.UUID]sitterbooking.AdditionalService
	addresses      map[uuid.UUID]sitterbooking.Address
	sitterBookings map[uuid.UUID]sitterRow
	idem           map[idemKey]shared.IdempotencyRecord
	outbox         []outboxRow
}

type roomRow struct {
	shared.RoomBookingSnapshot
	Price       int64
	PlatformFee int64
	CancelledBy *booking.Party
}

type sitterRow struct {
	shared.SitterBookingSnapshot
	OfferingName    string
	OfferingPrice   int64
	DurationMinutes int
	Price           int64
	PlatformFee     int64
	IsLate          bool
	Proof           *sitterbooking.CompletionProof
	CancelledBy     *booking.Party
}

type idemKey struct {
	key, user uuid.UUID
}

type outboxRow struct {
	shared.NotificationJob
	Status    string
	LastError string
}

func newMemDB() *memDB {
	return &memDB{
		memState: memState{
			rooms:          map[uuid.UUID]shared.RoomSnapshot{},
			days:           map[uuid.UUID]map[string]calendar.Day{},
			roomBookings:   map[uuid.UUID]roomRow{},
			profiles:       map[uuid.UUID]provider.Profile{},
			offerings:      map[uuid.UUID]sitterbooking.Offering{},
			additional:     map[uuid.UUID]sitterbooking.AdditionalService{},
			addresses:      map[uuid.UUID]sitterbooking.Address{},
			sitterBookings: map[uuid.UUID]sitterRow{},
			idem:           map[idemKey]shared.IdempotencyRecord{},
		},
		failures: map[string]error{},
	}
}

func (s memState) clone() memState {
	days := make(map[uuid.UUID]map[string]calendar.Day, len(s.days))
	for id, d := range s.days {
		days[id] = maps.Clone(d)
	}
	return memState{
		rooms:          maps.Clone(s.rooms),
		days:           days,
		roomBookings:   maps.Clone(s.roomBookings),
		profiles:       maps.Clone(s.profiles),
		offerings:      maps.Clone(s.offerings),
		additional:     maps.Clone(s.additional),
		addresses:      maps.Clone(s.addresses),
		sitterBookings: maps.Clone(s.sitterBookings),
		idem:           maps.Clone(s.idem),
		outbox:         slices.Clone(s.outbox),
	}
}

func (db *memDB) failOn(op string, err error) { db.failures[op] = err }

func (db *memDB) injected(op string) error { return db.failures[op] }

func (db *memDB) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.withinCalls++

	saved := db.memState.clone()
	if err := fn(ctx, memTx{db}); err != nil {
		db.memState = saved
		return err
	}
	return nil
}

func (db *memDB) CommandReads() shared.CommandReads { return memReads{db} }

var errCommitRetry = errors.New("commit failed with 40001")

// retryingUoW fails the first failCommits commits after fn has run and
// re-runs fn, like the postgres unit of work does on serialization failures.
type retryingUoW struct {
	*memDB
	failCommits int
	attempts    int
}

func (u *retryingUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	for {
		u.attempts++
		err := u.memDB.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			if err := fn(ctx, tx); err != nil {
				return err
			}
			if u.failCommits > 0 {
				u.failCommits--
				return errCommitRetry
			}
			return nil
		})
		if !errors.Is(err, errCommitRetry) {
			return err
		}
	}
}

// seeding and inspection helpers, used outside transactions

func (db *memDB) addDays(roomID uuid.UUID, from time.Time, n int) {
	if db.days[roomID] == nil {
		db.days[roomID] = map[string]calendar.Day{}
	}
	for i := 0; i < n; i++ {
		d := from.AddDate(0, 0, i)
		db.days[roomID][dateKey(d)] = calendar.Day{Date: d, IsAvailable: true}
	}
}

func (db *memDB) setOverride(roomID uuid.UUID, date time.Time, price int64) {
	d := db.days[roomID][dateKey(date)]
	d.PriceOverride = &price
	db.days[roomID][dateKey(date)] = d
}

func (db *memDB) isAvailable(roomID uuid.UUID, date time.Time) bool {
	return db.days[roomID][dateKey(date)].IsAvailable
}

func (db *memDB) topics() []string {
	out := make([]string, 0, len(db.outbox))
	for _, row := range db.outbox {
		out = append(out, row.Topic)
	}
	return out
}

func (db *memDB) job(id uuid.UUID) outboxRow {
	for _, row := range db.outbox {
		if row.ID == id {
			return row
		}
	}
	return outboxRow{}
}

func dateKey(t time.Time) string { return t.Format(calendar.DateLayout) }

func notFound(msg string) error { return infra.NewRepoErr(infra.KindNotFound, msg) }

type memTx struct{ db *memDB }

func (tx memTx) Calendar() shared.CalendarRepository           { return memCalendar{tx.db} }
func (tx memTx) RoomBookings() shared.RoomBookingRepository     { return memRoomBookings{tx.db} }
func (tx memTx) SitterBookings() shared.SitterBookingRepository { return memSitterBookings{tx.db} }
func (tx memTx) Providers() shared.ProviderRepository           { return memProviders{tx.db} }
func (tx memTx) Idempotency() shared.IdempotencyRepository      { return memIdempotency{tx.db} }
func (tx memTx) Notifications() shared.NotificationRepository   { return memNotifications{tx.db} }
func (tx memTx) Reads() shared.CommandReads                     { return memReads{tx.db} }

type memCalendar struct{ db *memDB }

func (r memCalendar) Generate(_ context.Context, roomID uuid.UUID, from time.Time, days int) (int64, error) {
	if r.db.days[roomID] == nil {
		r.db.days[roomID] = map[string]calendar.Day{}
	}
	var created int64
	for i := 0; i < days; i++ {
		d := from.AddDate(0, 0, i)
		if _, ok := r.db.days[roomID][dateKey(d)]; ok {
			continue
		}
		r.db.days[roomID][dateKey(d)] = calendar.Day{Date: d, IsAvailable: true}
		created++
	}
	return created, nil
}

func (r memCalendar) Lock(_ context.Context, roomID uuid.UUID, dates calendar.DateRange) (int64, error) {
	return r.flip(roomID, dates, false), nil
}

func (r memCalendar) Unlock(_ context.Context, roomID uuid.UUID, dates calendar.DateRange) (int64, error) {
	return r.flip(roomID, dates, true), nil
}

func (r memCalendar) flip(roomID uuid.UUID, dates calendar.DateRange, available bool) int64 {
	var n int64
	for _, date := range dates.Dates() {
		d, ok := r.db.days[roomID][dateKey(date)]
		if !ok || d.IsAvailable == available {
			continue
		}
		d.IsAvailable = available
		r.db.days[roomID][dateKey(date)] = d
		n++
	}
	return n
}

func (r memCalendar) RowsInRange(_ context.Context, roomID uuid.UUID, dates calendar.DateRange) ([]calendar.Day, error) {
	var out []calendar.Day
	for _, date := range dates.Dates() {
		if d, ok := r.db.days[roomID][dateKey(date)]; ok {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r memCalendar) RowsInRangeForUpdate(ctx context.Context, roomID uuid.UUID, dates calendar.DateRange) ([]calendar.Day, error) {
	return r.RowsInRange(ctx, roomID, dates)
}

type memRoomBookings struct{ db *memDB }

func (r memRoomBookings) Insert(_ context.Context, b *roombooking.Booking) (bool, error) {
	if err := r.db.injected("RoomBookings.Insert"); err != nil {
		return false, err
	}
	for _, row := range r.db.roomBookings {
		if row.Code == b.Code() {
			return false, nil
		}
	}
	r.db.roomBookings[b.ID()] = roomRow{
		RoomBookingSnapshot: shared.RoomBookingSnapshot{
			ID:          b.ID(),
			Code:        b.Code(),
			ClientID:    b.ClientID(),
			RoomID:      b.RoomID(),
			OwnerUserID: r.db.rooms[b.RoomID()].OwnerUserID,
			Dates:       b.Dates(),
			Status:      b.Status(),
			GrandTotal:  b.GrandTotal().Int64(),
		},
		Price:       b.Price().Int64(),
		PlatformFee: b.PlatformFee().Int64(),
	}
	return true, nil
}

func (r memRoomBookings) move(id uuid.UUID, from []roombooking.Status, to roombooking.Status) int64 {
	row, ok := r.db.roomBookings[id]
	if !ok || !slices.Contains(from, row.Status) {
		return 0
	}
	row.Status = to
	r.db.roomBookings[id] = row
	return 1
}

func (r memRoomBookings) Confirm(_ context.Context, id uuid.UUID, _ time.Time) (int64, error) {
	return r.move(id, []roombooking.Status{roombooking.StatusPending}, roombooking.StatusConfirmed), nil
}

func (r memRoomBookings) CheckIn(_ context.Context, id uuid.UUID, _ time.Time) (int64, error) {
	return r.move(id, []roombooking.Status{roombooking.StatusConfirmed}, roombooking.StatusCheckedIn), nil
}

func (r memRoomBookings) CheckOut(_ context.Context, id uuid.UUID, _ time.Time) (int64, error) {
	return r.move(id, []roombooking.Status{roombooking.StatusCheckedIn}, roombooking.StatusCheckedOut), nil
}

func (r memRoomBookings) Cancel(_ context.Context, id uuid.UUID, by booking.Party, _ time.Time) (int64, error) {
	n := r.move(id, roombooking.CancelableStatuses(), roombooking.StatusCancelled)
	if n == 1 {
		row := r.db.roomBookings[id]
		row.CancelledBy = &by
		r.db.roomBookings[id] = row
	}
	return n, nil
}

func (r memRoomBookings) ClaimStalePending(_ context.Context, today time.Time, limit int) ([]shared.StaleRoomBooking, error) {
	var out []shared.StaleRoomBooking
	for _, row := range r.db.roomBookings {
		if row.Status == roombooking.StatusPending && row.Dates.CheckIn().Before(today) {
			out = append(out, shared.StaleRoomBooking{ID: row.ID, ClientID: row.ClientID, RoomID: row.RoomID, Dates: row.Dates})
		}
	}
	sort.Slice(out, func(i, j int) bool { return bytes.Compare(out[i].ID[:], out[j].ID[:]) < 0 })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type memSitterBookings struct{ db *memDB }

func (r memSitterBookings) Insert(_ context.Context, b *sitterbooking.Booking) (bool, error) {
	for _, row := range r.db.sitterBookings {
		if row.Code == b.Code() {
			return false, nil
		}
	}
	r.db.sitterBookings[b.ID()] = sitterRow{
		SitterBookingSnapshot: shared.SitterBookingSnapshot{
			ID:                b.ID(),
			Code:              b.Code(),
			ClientID:          b.ClientID(),
			ProviderProfileID: b.ProviderProfileID(),
			SitterUserID:      r.db.profiles[b.ProviderProfileID()].UserID,
			StartingTime:      b.StartingTime(),
			FinishingTime:     b.FinishingTime(),
			Status:            b.Status(),
			GrandTotal:        b.GrandTotal().Int64(),
		},
		OfferingName:    b.Offering().Name,
		OfferingPrice:   b.Offering().Price.Int64(),
		DurationMinutes: b.DurationMinutes(),
		Price:           b.Price().Int64(),
		PlatformFee:     b.PlatformFee().Int64(),
	}
	return true, nil
}

func (r memSitterBookings) overlaps(profileID uuid.UUID, start, end time.Time, exclude uuid.UUID) int64 {
	var n int64
	for _, o := range r.db.sitterBookings {
		if o.ProviderProfileID != profileID || o.ID == exclude || !o.Status.IsActive() {
			continue
		}
		if o.StartingTime.Before(end) && o.FinishingTime.After(start) {
			n++
		}
	}
	return n
}

func (r memSitterBookings) CountOverlapping(_ context.Context, profileID uuid.UUID, start, end time.Time, excludeID *uuid.UUID) (int64, error) {
	exclude := uuid.Nil
	if excludeID != nil {
		exclude = *excludeID
	}
	return r.overlaps(profileID, start, end, exclude), nil
}

func (r memSitterBookings) set(id uuid.UUID, row sitterRow, to sitterbooking.Status) int64 {
	row.Status = to
	r.db.sitterBookings[id] = row
	return 1
}

func (r memSitterBookings) Confirm(_ context.Context, id uuid.UUID, _ time.Time) (int64, error) {
	row, ok := r.db.sitterBookings[id]
	if !ok || row.Status != sitterbooking.StatusPending {
		return 0, nil
	}
	if r.overlaps(row.ProviderProfileID, row.StartingTime, row.FinishingTime, id) > 0 {
		return 0, nil
	}
	return r.set(id, row, sitterbooking.StatusConfirmed), nil
}

func (r memSitterBookings) Start(_ context.Context, id uuid.UUID, _, graceDeadline time.Time) (int64, error) {
	row, ok := r.db.sitterBookings[id]
	if !ok || !slices.Contains(sitterbooking.StartableStatuses(), row.Status) || row.StartingTime.After(graceDeadline) {
		return 0, nil
	}
	for _, o := range r.db.sitterBookings {
		if o.ProviderProfileID == row.ProviderProfileID && o.ID != id && o.Status == sitterbooking.StatusInProgress {
			return 0, nil
		}
	}
	return r.set(id, row, sitterbooking.StatusInProgress), nil
}

func (r memSitterBookings) RequestComplete(_ context.Context, id uuid.UUID, proof sitterbooking.CompletionProof, _ time.Time) (int64, error) {
	row, ok := r.db.sitterBookings[id]
	if !ok || row.Status != sitterbooking.StatusInProgress {
		return 0, nil
	}
	row.Proof = &proof
	return r.set(id, row, sitterbooking.StatusRequestToComplete), nil
}

func (r memSitterBookings) Complete(_ context.Context, id uuid.UUID, _ time.Time) (int64, error) {
	row, ok := r.db.sitterBookings[id]
	if !ok || row.Status != sitterbooking.StatusRequestToComplete {
		return 0, nil
	}
	return r.set(id, row, sitterbooking.StatusCompleted), nil
}

func (r memSitterBookings) Cancel(_ context.Context, id uuid.UUID, from []sitterbooking.Status, by booking.Party, _ time.Time) (int64, error) {
	row, ok := r.db.sitterBookings[id]
	if !ok || !slices.Contains(from, row.Status) {
		return 0, nil
	}
	row.CancelledBy = &by
	return r.set(id, row, sitterbooking.StatusCancelled), nil
}

func (r memSitterBookings) claim(status sitterbooking.Status, before time.Time, limit int) []shared.SitterSweepCandidate {
	var out []shared.SitterSweepCandidate
	for _, row := range r.db.sitterBookings {
		if row.Status == status && row.StartingTime.Before(before) {
			out = append(out, shared.SitterSweepCandidate{
				ID:                row.ID,
				ClientID:          row.ClientID,
				ProviderProfileID: row.ProviderProfileID,
				StartingTime:      row.StartingTime,
			})
		}
	}
	sort.Slice(out, func(i, j int) bool { return bytes.Compare(out[i].ID[:], out[j].ID[:]) < 0 })
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func (r memSitterBookings) moveAll(ids []uuid.UUID, from, to sitterbooking.Status) int64 {
	var n int64
	for _, id := range ids {
		row, ok := r.db.sitterBookings[id]
		if !ok || row.Status != from {
			continue
		}
		if to == sitterbooking.StatusLate {
			row.IsLate = true
		}
		n += r.set(id, row, to)
	}
	return n
}

func (r memSitterBookings) ClaimExpirable(_ context.Context, cutoff time.Time, limit int) ([]shared.SitterSweepCandidate, error) {
	return r.claim(sitterbooking.StatusPending, cutoff, limit), nil
}

func (r memSitterBookings) Expire(_ context.Context, ids []uuid.UUID, _ time.Time) (int64, error) {
	return r.moveAll(ids, sitterbooking.StatusPending, sitterbooking.StatusExpired), nil
}

func (r memSitterBookings) ClaimLate(_ context.Context, now time.Time, limit int) ([]shared.SitterSweepCandidate, error) {
	return r.claim(sitterbooking.StatusConfirmed, now, limit), nil
}

func (r memSitterBookings) MarkLate(_ context.Context, ids []uuid.UUID, _ time.Time) (int64, error) {
	return r.moveAll(ids, sitterbooking.StatusConfirmed, sitterbooking.StatusLate), nil
}

type memProviders struct{ db *memDB }

func (r memProviders) Lock(_ context.Context, profileID uuid.UUID) (*provider.Profile, error) {
	p, ok := r.db.profiles[profileID]
	if !ok {
		return nil, notFound("provider profile")
	}
	return &p, nil
}

func (r memProviders) SetAvailability(_ context.Context, profileID uuid.UUID, availability provider.Availability) error {
	p, ok := r.db.profiles[profileID]
	if !ok {
		return notFound("provider profile")
	}
	p.Availability = availability
	r.db.profiles[profileID] = p
	return nil
}

type memIdempotency struct{ db *memDB }

func (r memIdempotency) TryInsert(_ context.Context, rec shared.IdempotencyClaim) (bool, error) {
	k := idemKey{rec.Key, rec.UserID}
	if _, ok := r.db.idem[k]; ok {
		return false, nil
	}
	r.db.idem[k] = shared.IdempotencyRecord{
		Key:         rec.Key,
		UserID:      rec.UserID,
		Endpoint:    rec.Endpoint,
		Status:      shared.IdempotencyProcessing,
		RequestHash: rec.RequestHash,
		ExpiresAt:   rec.ExpiresAt,
	}
	return true, nil
}

func (r memIdempotency) GetForUpdate(_ context.Context, key, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	rec, ok := r.db.idem[idemKey{key, userID}]
	if !ok {
		return nil, notFound("idempotency key")
	}
	return &rec, nil
}

func (r memIdempotency) ClaimExpired(_ context.Context, claim shared.IdempotencyClaim, now time.Time) (bool, error) {
	k := idemKey{claim.Key, claim.UserID}
	rec, ok := r.db.idem[k]
	if !ok || !rec.ExpiresAt.Before(now) {
		return false, nil
	}
	r.db.idem[k] = shared.IdempotencyRecord{
		Key:         claim.Key,
		UserID:      claim.UserID,
		Endpoint:    claim.Endpoint,
		Status:      shared.IdempotencyProcessing,
		RequestHash: claim.RequestHash,
		ExpiresAt:   claim.ExpiresAt,
	}
	return true, nil
}

func (r memIdempotency) Complete(_ context.Context, key, userID uuid.UUID, _ string, bookingID uuid.UUID) error {
	k := idemKey{key, userID}
	rec, ok := r.db.idem[k]
	if !ok {
		return notFound("idempotency key")
	}
	rec.Status = shared.IdempotencyCompleted
	rec.ResultBookingID = &bookingID
	r.db.idem[k] = rec
	return nil
}

func (r memIdempotency) DeleteExpired(_ context.Context, now time.Time, limit int) (int64, error) {
	var n int64
	for k, rec := range r.db.idem {
		if int(n) == limit {
			break
		}
		if rec.ExpiresAt.Before(now) {
			delete(r.db.idem, k)
			n++
		}
	}
	return n, nil
}

type memNotifications struct{ db *memDB }

func (r memNotifications) Enqueue(_ context.Context, n shared.Notification) error {
	r.db.outbox = append(r.db.outbox, outboxRow{
		NotificationJob: shared.NotificationJob{
			ID:          uuid.New(),
			Kind:        n.Kind,
			Topic:       n.Topic,
			RecipientID: n.RecipientID,
			Payload:     n.Payload,
			RunAt:       n.RunAt,
		},
		Status: shared.NotificationQueued,
	})
	return nil
}

func (r memNotifications) ClaimDue(_ context.Context, now time.Time, limit int) ([]shared.NotificationJob, error) {
	var out []shared.NotificationJob
	for _, row := range r.db.outbox {
		if len(out) == limit {
			break
		}
		if row.Status == shared.NotificationQueued && !row.RunAt.After(now) {
			out = append(out, row.NotificationJob)
		}
	}
	return out, nil
}

func (r memNotifications) update(id uuid.UUID, fn func(*outboxRow)) error {
	for i := range r.db.outbox {
		if r.db.outbox[i].ID == id {
			fn(&r.db.outbox[i])
			return nil
		}
	}
	return notFound("notification job")
}

func (r memNotifications) MarkSent(_ context.Context, id uuid.UUID) error {
	return r.update(id, func(row *outboxRow) {
		row.Status = shared.NotificationSent
		row.Attempts++
		row.LastError = ""
	})
}

func (r memNotifications) MarkFailed(_ context.Context, id uuid.UUID, status, lastError string, nextRunAt time.Time) error {
	return r.update(id, func(row *outboxRow) {
		row.Status = status
		row.Attempts++
		row.LastError = lastError
		row.RunAt = nextRunAt
	})
}

type memReads struct{ db *memDB }

func (r memReads) RoomForBooking(_ context.Context, roomID uuid.UUID) (*shared.RoomSnapshot, error) {
	room, ok := r.db.rooms[roomID]
	if !ok {
		return nil, notFound("room")
	}
	room.Provider = r.db.profiles[room.Room.ProviderProfileID]
	return &room, nil
}

func (r memReads) SitterOffering(_ context.Context, sel sitterbooking.Selection) (*sitterbooking.Offering, error) {
	o, ok := r.db.offerings[sel.ID()]
	if !ok || o.Kind != sel.Kind() {
		return nil, notFound("sitter offering")
	}
	return &o, nil
}

func (r memReads) AdditionalServices(_ context.Context, ids []uuid.UUID) ([]sitterbooking.AdditionalService, error) {
	var out []sitterbooking.AdditionalService
	for _, id := range ids {
		if s, ok := r.db.additional[id]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r memReads) ActiveAddress(_ context.Context, clientID uuid.UUID) (*sitterbooking.Address, error) {
	a, ok := r.db.addresses[clientID]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (r memReads) RoomBookingByID(_ context.Context, id uuid.UUID) (*shared.RoomBookingSnapshot, error) {
	row, ok := r.db.roomBookings[id]
	if !ok {
		return nil, notFound("room booking")
	}
	return &row.RoomBookingSnapshot, nil
}

func (r memReads) SitterBookingByID(_ context.Context, id uuid.UUID) (*shared.SitterBookingSnapshot, error) {
	row, ok := r.db.sitterBookings[id]
	if !ok {
		return nil, notFound("sitter booking")
	}
	return &row.SitterBookingSnapshot, nil
}

func (r memReads) ActiveRoomIDsAfter(_ context.Context, after uuid.UUID, limit int) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	for id, room := range r.db.rooms {
		if room.Room.Active && bytes.Compare(id[:], after[:]) > 0 {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return bytes.Compare(ids[i][:], ids[j][:]) < 0 })
	if len(ids) > limit {
		ids = ids[:limit]
	}
	return ids, nil
}

// BookingViews

func (db *memDB) FindRoomBooking(_ context.Context, id uuid.UUID) (*queries.RoomBookingView, error) {
	if err := db.injected("Views.FindRoomBooking"); err != nil {
		return nil, err
	}
	db.mu.Lock()
	defer db.mu.Unlock()
	row, ok := db.roomBookings[id]
	if !ok {
		return nil, notFound("room booking")
	}
	room := db.rooms[row.RoomID]
	view := &queries.RoomBookingView{
		ID:          row.ID,
		Code:        row.Code,
		ClientID:    row.ClientID,
		HotelID:     room.Room.HotelID,
		HotelName:   room.HotelName,
		RoomID:      row.RoomID,
		RoomName:    room.Name,
		OwnerUserID: row.OwnerUserID,
		CheckIn:     row.Dates.CheckIn(),
		CheckOut:    row.Dates.CheckOut(),
		Nights:      row.Dates.Nights(),
		Price:       row.Price,
		PlatformFee: row.PlatformFee,
		GrandTotal:  row.GrandTotal,
		Status:      row.Status.String(),
	}
	if row.CancelledBy != nil {
		by := row.CancelledBy.String()
		view.CancelledBy = &by
	}
	return view, nil
}

func (db *memDB) FindSitterBooking(_ context.Context, id uuid.UUID) (*queries.SitterBookingView, error) {
	if err := db.injected("Views.FindSitterBooking"); err != nil {
		return nil, err
	}
	db.mu.Lock()
	defer db.mu.Unlock()
	row, ok := db.sitterBookings[id]
	if !ok {
		return nil, notFound("sitter booking")
	}
	view := &queries.SitterBookingView{
		ID:                row.ID,
		Code:              row.Code,
		ClientID:          row.ClientID,
		ProviderProfileID: row.ProviderProfileID,
		SitterUserID:      row.SitterUserID,
		OfferingName:      row.OfferingName,
		OfferingPrice:     row.OfferingPrice,
		StartingTime:      row.StartingTime,
		FinishingTime:     row.FinishingTime,
		DurationMinutes:   row.DurationMinutes,
		Price:             row.Price,
		PlatformFee:       row.PlatformFee,
		GrandTotal:        row.GrandTotal,
		Status:            row.Status.String(),
		IsLate:            row.IsLate,
	}
	if row.CancelledBy != nil {
		by := row.CancelledBy.String()
		view.CancelledBy = &by
	}
	return view, nil
}

// collaborators

type staticFees struct {
	policies pricing.FeePolicies
	err      error
}

func (f staticFees) Current(context.Context) (pricing.FeePolicies, error) {
	return f.policies, f.err
}

// scriptedCodes hands out the given codes in order, then unique ones.
type scriptedCodes struct {
	mu    sync.Mutex
	codes []string
	next  int
}

func (g *scriptedCodes) Generate() (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.next < len(g.codes) {
		code := g.codes[g.next]
		g.next++
		return code, nil
	}
	g.next++
	return "CODE-" + uuid.NewString()[:8], nil
}

type fakePublisher struct {
	mu     sync.Mutex
	err    error
	topics []string
}

func (p *fakePublisher) Publish(_ context.Context, _ uuid.UUID, topic string, _ []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.topics = append(p.topics, topic)
	return nil
}

func int64p(v int64) *int64 { return &v }
