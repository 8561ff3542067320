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

type SitterBookingHandler struct {
	cmds commands.SitterBookingCommands
	q    queries.BookingQueries
}

func NewSitterBookingHandler(cmds commands.SitterBookingCommands, q queries.BookingQueries) *SitterBookingHandler {
	return &SitterBookingHandler{cmds: cmds, q: q}
}

// @Summary Create sitter booking
// @Description Book a sitter service or package at the client's active address. Replays with the same key return the original booking.
// @Tags sitter-bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string true "UUID identifying this create attempt"
// @Param request body reqdto.CreateSitterBookingRequest true "Sitter booking request"
// @Success 201 {object} resdto.SitterBookingResultResponse
// @Success 200 {object} resdto.SitterBookingResultResponse "Replayed"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /sitter-bookings [post]
func (h *SitterBookingHandler) Create(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	key, ok := idempotencyKey(c)
	if !ok {
		return
	}
	var req reqdto.CreateSitterBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBind(c, err)
		return
	}
	result, err := h.cmds.Create(c.Request.Context(), actor, key, req.ToCommand())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(createdStatus(c, result.IsReplayed), resdto.FromSitterBookingResult(result.Booking, result.Breakdown))
}

// @Summary List my sitter bookings
// @Tags sitter-bookings
// @Produce json
// @Security BearerAuth
// @Param as query string false "client (default) or provider"
// @Param status query string false "Booking status"
// @Param limit query int false "Max items (default 20, max 50)"
// @Param after query string false "Cursor from next_cursor"
// @Success 200 {object} resdto.SitterBookingListResponse
// @Failure 400 {object} httperr.Response
// @Router /sitter-bookings [get]
func (h *SitterBookingHandler) List(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	var q reqdto.ListBookingsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortBind(c, err)
		return
	}
	items, next, err := h.q.ListSitterBookings(c.Request.Context(), actor, q.Filter(), q.Cursor(), q.Limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSitterBookingList(items, next))
}

// @Summary Get sitter booking
// @Tags sitter-bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.SitterBookingResultResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /sitter-bookings/{id} [get]
func (h *SitterBookingHandler) Get(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	view, err := h.q.GetSitterBooking(c.Request.Context(), actor, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSitterBookingResult(view, view.Breakdown()))
}

// @Summary Confirm sitter booking
// @Tags sitter-bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.SitterBookingResultResponse
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /sitter-bookings/{id}/confirm [post]
func (h *SitterBookingHandler) Confirm(c *gin.Context) { h.transition(c, h.cmds.Confirm) }

// @Summary Start sitter booking
// @Description Sitter marks a CONFIRMED booking IN_PROGRESS within the start window
// @Tags sitter-bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.SitterBookingResultResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /sitter-bookings/{id}/start [post]
func (h *SitterBookingHandler) Start(c *gin.Context) { h.transition(c, h.cmds.Start) }

// @Summary Request completion
// @Description Sitter submits a completion note and proof URLs
// @Tags sitter-bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.RequestCompleteRequest true "Completion proof"
// @Success 200 {object} resdto.SitterBookingResultResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /sitter-bookings/{id}/request-complete [post]
func (h *SitterBookingHandler) RequestComplete(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.RequestCompleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBind(c, err)
		return
	}
	result, err := h.cmds.RequestComplete(c.Request.Context(), actor, id, req.ToCommand())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSitterBookingResult(result.Booking, result.Breakdown))
}

// @Summary Complete sitter booking
// @Description Client accepts the sitter's completion request
// @Tags sitter-bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.SitterBookingResultResponse
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /sitter-bookings/{id}/complete [post]
func (h *SitterBookingHandler) Complete(c *gin.Context) { h.transition(c, h.cmds.Complete) }

// @Summary Cancel sitter booking
// @Tags sitter-bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.SitterBookingResultResponse
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /sitter-bookings/{id}/cancel [post]
func (h *SitterBookingHandler) Cancel(c *gin.Context) { h.transition(c, h.cmds.Cancel) }

func (h *SitterBookingHandler) transition(c *gin.Context, fn func(context.Context, user.Actor, uuid.UUID) (*commands.SitterBookingResult, error)) {
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
	c.JSON(http.StatusOK, resdto.FromSitterBookingResult(result.Booking, result.Breakdown))
}
