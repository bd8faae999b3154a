package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Omralejandro22/luxury-nails-backend/internal/httperr"
	"github.com/Omralejandro22/luxury-nails-backend/internal/middleware"
)

func currentUserID(c *gin.Context) uint {
	return c.MustGet(middleware.ContextUserID).(uint)
}

// respondError maps business failures to their HTTP shape and hides
// infrastructure detail behind a generic message.
func respondError(c *gin.Context, err error, internalCode, internalMsg string) {
	switch httperr.BusinessCode(err) {
	case httperr.CodeInvalidInput:
		httperr.BadRequest(c, httperr.CodeInvalidInput, err.Error())
	case httperr.CodeNotFound:
		httperr.NotFound(c, httperr.CodeNotFound, err.Error())
	case httperr.CodeNotAuthorized:
		httperr.Forbidden(c, httperr.CodeNotAuthorized, err.Error())
	case httperr.CodeInvalidTransition:
		httperr.Conflict(c, httperr.CodeInvalidTransition, err.Error())
	case httperr.CodeInvalidState:
		httperr.Conflict(c, httperr.CodeInvalidState, err.Error())
	case httperr.CodeConflict:
		httperr.Conflict(c, httperr.CodeConflict, err.Error())
	default:
		httperr.Internal(c, internalCode, internalMsg)
	}
}
