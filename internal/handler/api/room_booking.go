package api

import (
	"context"
	"net/http"

	"petstay-backend/internal/domain/user"
	reqdto "petstay-backend/internal/handler/dto/request"
	resdto "petstay-backend/internal/handler/dto/response"
	"petstay-backend/internal/handler/httperr"
	"petstay-backend/internal/usecase/commands"
	"petstay-backend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RoomBookingHandler struct {
	cmds commands.RoomBookingCommands
	q    queries.BookingQueries
}

func NewRoomBookingHandler(cmds commands.RoomBookingCommands, q queries.BookingQueries) *RoomBookingHandler {
	return &RoomBookingHandler{cmds: cmds, q: q}
}

// @Summary Create room booking
// @Description Lock the room's nights and create a PENDING booking. Replays with the same key return the original booking.
// @Tags room-bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string true "UUID identifying this create attempt"
// @Param request body reqdto.CreateRoomBookingRequest true "Room booking request"
// @Success 201 {object} resdto.RoomBookingResultResponse
// @Success 200 {object} resdto.RoomBookingResultResponse "Replayed"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /room-bookings [post]
func (h *RoomBookingHandler) Create(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	key, ok := idempotencyKey(c)
	if !ok {
		return
	}
	var req reqdto.CreateRoomBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBind(c, err)
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	result, err := h.cmds.Create(c.Request.Context(), actor, key, cmd)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(createdStatus(c, result.IsReplayed), resdto.FromRoomBookingResult(result.Booking, result.Breakdown))
}

// @Summary List my room bookings
// @Tags room-bookings
// @Produce json
// @Security BearerAuth
// @Param as query string false "client (default) or provider"
// @Param status query string false "Booking status"
// @Param limit query int false "Max items (default 20, max 50)"
// @Param after query string false "Cursor from next_cursor"
// @Success 200 {object} resdto.RoomBookingListResponse
// @Failure 400 {object} httperr.Response
// @Router /room-bookings [get]
func (h *RoomBookingHandler) List(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	var q reqdto.ListBookingsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortBind(c, err)
		return
	}
	items, next, err := h.q.ListRoomBookings(c.Request.Context(), actor, q.Filter(), q.Cursor(), q.Limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomBookingList(items, next))
}

// @Summary Get room booking
// @Tags room-bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.RoomBookingResultResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /room-bookings/{id} [get]
func (h *RoomBookingHandler) Get(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	view, err := h.q.GetRoomBooking(c.Request.Context(), actor, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomBookingResult(view, view.Breakdown()))
}

// @Summary Confirm room booking
// @Description Hotel owner accepts a PENDING booking
// @Tags room-bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.RoomBookingResultResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /room-bookings/{id}/confirm [post]
func (h *RoomBookingHandler) Confirm(c *gin.Context) { h.transition(c, h.cmds.Confirm) }

// @Summary Check in room booking
// @Tags room-bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.RoomBookingResultResponse
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /room-bookings/{id}/check-in [post]
func (h *RoomBookingHandler) CheckIn(c *gin.Context) { h.transition(c, h.cmds.CheckIn) }

// @Summary Check out room booking
// @Tags room-bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.RoomBookingResultResponse
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /room-bookings/{id}/check-out [post]
func (h *RoomBookingHandler) CheckOut(c *gin.Context) { h.transition(c, h.cmds.CheckOut) }

// @Summary Cancel room booking
// @Description Client or hotel owner cancels; the nights are released
// @Tags room-bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.RoomBookingResultResponse
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /room-bookings/{id}/cancel [post]
func (h *RoomBookingHandler) Cancel(c *gin.Context) { h.transition(c, h.cmds.Cancel) }

func (h *RoomBookingHandler) transition(c *gin.Context, fn func(context.Context, user.Actor, uuid.UUID) (*commands.RoomBookingResult, error)) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	result, err := fn(c.Request.Context(), actor, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomBookingResult(result.Booking, result.Breakdown))
}
