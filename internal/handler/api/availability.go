package api

import (
	"net/http"

	reqdto "petstay-backend/internal/handler/dto/request"
	resdto "petstay-backend/internal/handler/dto/response"
	"petstay-backend/internal/handler/httperr"
	"petstay-backend/internal/usecase/commands"
	"petstay-backend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	q        queries.AvailabilityQueries
	calendar commands.CalendarCommands
}

func NewAvailabilityHandler(q queries.AvailabilityQueries, calendar commands.CalendarCommands) *AvailabilityHandler {
	return &AvailabilityHandler{q: q, calendar: calendar}
}

// @Summary Search available rooms
// @Description Rooms with every night of [check_in, check_out) free, priced like a booking would be
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Param check_in query string true "Check-in date (YYYY-MM-DD)"
// @Param check_out query string true "Check-out date (YYYY-MM-DD)"
// @Param provider_profile_id query string false "Hotel provider profile"
// @Param hotel_id query string false "Hotel"
// @Param min_pet_capacity query int false "Minimum pet capacity"
// @Param min_human_capacity query int false "Minimum human capacity"
// @Param limit query int false "Max rooms (default 20, max 50)"
// @Success 200 {array} resdto.AvailableRoomResponse
// @Failure 400 {object} httperr.Response
// @Router /rooms/availability [get]
func (h *AvailabilityHandler) SearchRooms(c *gin.Context) {
	var q reqdto.SearchRoomsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortBind(c, err)
		return
	}
	dates, err := q.ToDomain()
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	rooms, err := h.q.SearchRooms(c.Request.Context(), dates, q.Filter())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailableRooms(rooms))
}

// @Summary Check room availability
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Param check_in query string true "Check-in date (YYYY-MM-DD)"
// @Param check_out query string true "Check-out date (YYYY-MM-DD)"
// @Success 200 {object} resdto.RoomAvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id}/availability [get]
func (h *AvailabilityHandler) CheckRoom(c *gin.Context) {
	roomID, ok := pathID(c)
	if !ok {
		return
	}
	var q reqdto.DateRangeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortBind(c, err)
		return
	}
	dates, err := q.ToDomain()
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.q.CheckRoom(c.Request.Context(), roomID, dates)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomAvailability(view))
}

// @Summary Generate room calendar
// @Description Create missing calendar days from today for the room's owner
// @Tags availability
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Param request body reqdto.GenerateCalendarRequest false "Horizon in days"
// @Success 200 {object} resdto.GenerateCalendarResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id}/calendar [post]
func (h *AvailabilityHandler) GenerateCalendar(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	roomID, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.GenerateCalendarRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortBind(c, err)
			return
		}
	}
	result, err := h.calendar.Generate(c.Request.Context(), actor, roomID, req.Days)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromGenerateCalendar(result))
}

// @Summary Check sitter availability
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Param id path string true "Sitter provider profile ID"
// @Param starting_time query string true "Window start (RFC 3339)"
// @Param finishing_time query string true "Window end (RFC 3339)"
// @Success 200 {object} resdto.SitterAvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /sitters/{id}/availability [get]
func (h *AvailabilityHandler) CheckSitter(c *gin.Context) {
	profileID, ok := pathID(c)
	if !ok {
		return
	}
	var q reqdto.SitterWindowQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortBind(c, err)
		return
	}
	view, err := h.q.CheckSitter(c.Request.Context(), profileID, q.StartingTime, q.FinishingTime)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSitterAvailability(view))
}
