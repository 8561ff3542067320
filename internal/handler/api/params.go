package api

import (
	"net/http"

	"petstay-backend/internal/domain/user"
	"petstay-backend/internal/handler/httperr"
	"petstay-backend/internal/handler/middleware"
	"petstay-backend/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	ErrInvalidID             = errs.Validation("invalid id")
	ErrIdempotencyKeyMissing = errs.Validation("Idempotency-Key header is required")
	ErrIdempotencyKeyFormat  = errs.Validation("Idempotency-Key must be a UUID")
	errActorMissing          = errs.New("actor missing from authenticated request")
)

func actorFrom(c *gin.Context) (user.Actor, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.CodeInternal, errActorMissing, "Internal server error", nil)
		return user.Actor{}, false
	}
	return actor, true
}

func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.Abort(c, ErrInvalidID)
		return uuid.Nil, false
	}
	return id, true
}

func idempotencyKey(c *gin.Context) (uuid.UUID, bool) {
	raw := c.GetHeader(middleware.HeaderIdempotencyKey)
	if raw == "" {
		httperr.Abort(c, ErrIdempotencyKeyMissing)
		return uuid.Nil, false
	}
	key, err := uuid.Parse(raw)
	if err != nil {
		httperr.Abort(c, ErrIdempotencyKeyFormat)
		return uuid.Nil, false
	}
	return key, true
}

// createdStatus is 201 for a new booking and 200 for a replayed one.
func createdStatus(c *gin.Context, replayed bool) int {
	if replayed {
		c.Header(middleware.HeaderIdempotentReplay, "true")
		return http.StatusOK
	}
	return http.StatusCreated
}
