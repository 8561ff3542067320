package commands

import (
	"context"
	"time"

	"petstay-backend/internal/domain/calendar"
	"petstay-backend/internal/domain/user"
	"petstay-backend/internal/infra"
	"petstay-backend/internal/pkg/clock"
	"petstay-backend/internal/pkg/config"
	"petstay-backend/internal/pkg/errs"
	"petstay-backend/internal/usecase/shared"

	"github.com/google/uuid"
)

const MaxCalendarDays = 730

var ErrInvalidHorizon = errs.Validation("days must be between 1 and 730")

type GenerateCalendarResult struct {
	RoomID  uuid.UUID
	From    time.Time
	Days    int
	Created int64
}

type CalendarCommands interface {
	// Generate creates missing day rows from today; zero days means the configured horizon.
	Generate(ctx context.Context, actor user.Actor, roomID uuid.UUID, days int) (*GenerateCalendarResult, error)
}

type calendarUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
	cfg   config.BookingConfig
	loc   *time.Location
}

func NewCalendarUseCase(uow shared.UnitOfWork, clk clock.Clock, cfg config.BookingConfig) CalendarCommands {
	return &calendarUseCaseImpl{uow: uow, clock: clk, cfg: cfg, loc: cfg.Location()}
}

func (uc *calendarUseCaseImpl) Generate(ctx context.Context, actor user.Actor, roomID uuid.UUID, days int) (res *GenerateCalendarResult, err error) {
	const op = "Calendar.Generate"
	ctx, span := startCommand(ctx, op, actor, uuid.Nil)
	defer func() { endCommand(ctx, span, op, actor, uuid.Nil, err) }()

	if days == 0 {
		days = uc.cfg.CalendarHorizonDays
	}
	if days < 1 || days > MaxCalendarDays {
		return nil, ErrInvalidHorizon
	}

	from := calendar.Today(uc.clock.Now(), uc.loc)
	var created int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		room, err := tx.Reads().RoomForBooking(ctx, roomID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRoomNotFound
			}
			return err
		}
		if room.OwnerUserID != actor.ID && !actor.IsAdmin() {
			return ErrNotRoomOwner
		}
		created, err = tx.Calendar().Generate(ctx, roomID, from, days)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &GenerateCalendarResult{RoomID: roomID, From: from, Days: days, Created: created}, nil
}
