package shared

import (
	"encoding/json"
	"time"

	"petstay-backend/internal/domain/calendar"
	"petstay-backend/internal/domain/provider"
	"petstay-backend/internal/domain/roombooking"
	"petstay-backend/internal/domain/sitterbooking"

	"github.com/google/uuid"
)

type RoomSnapshot struct {
	Room        roombooking.Room
	Name        string
	HotelName   string
	OwnerUserID uuid.UUID
	Provider    provider.Profile
}

// Minimal snapshot for command read operations
type RoomBookingSnapshot struct {
	ID          uuid.UUID
	Code        string
	ClientID    uuid.UUID
	RoomID      uuid.UUID
	OwnerUserID uuid.UUID
	Dates       calendar.DateRange
	Status      roombooking.Status
	GrandTotal  int64
}

type SitterBookingSnapshot struct {
	ID                uuid.UUID
	Code              string
	ClientID          uuid.UUID
	ProviderProfileID uuid.UUID
	SitterUserID      uuid.UUID
	StartingTime      time.Time
	FinishingTime     time.Time
	Status            sitterbooking.Status
	GrandTotal        int64
}

type StaleRoomBooking struct {
	ID       uuid.UUID
	ClientID uuid.UUID
	RoomID   uuid.UUID
	Dates    calendar.DateRange
}

type SitterSweepCandidate struct {
	ID                uuid.UUID
	ClientID          uuid.UUID
	ProviderProfileID uuid.UUID
	StartingTime      time.Time
}

const (
	IdempotencyProcessing = "processing"
	IdempotencyCompleted  = "completed"
)

type IdempotencyClaim struct {
	Key         uuid.UUID
	UserID      uuid.UUID
	Endpoint    string
	RequestHash string
	ExpiresAt   time.Time
}

type IdempotencyRecord struct {
	Key             uuid.UUID
	UserID          uuid.UUID
	Endpoint        string
	Status          string
	RequestHash     string
	ResultBookingID *uuid.UUID
	ExpiresAt       time.Time
}

// Notification is an outbox entry; Topic doubles as the broker routing key.
type Notification struct {
	Kind        string
	Topic       string
	RecipientID *uuid.UUID
	Payload     json.RawMessage
	RunAt       time.Time
}

type NotificationJob struct {
	ID          uuid.UUID
	Kind        string
	Topic       string
	RecipientID *uuid.UUID
	Payload     []byte
	Attempts    int
	RunAt       time.Time
}

const (
	NotificationQueued = "queued"
	NotificationSent   = "sent"
	NotificationFailed = "failed"
)
