package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fitdesk/memberdesk/pkg/apperr"
	"github.com/fitdesk/memberdesk/pkg/response"
)

// respondError maps service errors onto the response envelope. Validation
// errors carry their field map in data; anything unexpected is logged and
// reported as a generic failure.
func respondError(c *gin.Context, err error) {
	if ve, ok := apperr.AsValidation(err); ok {
		c.JSON(http.StatusOK, response.ErrorT(response.APIResponseCodeBadRequest, ve.Fields))
		return
	}
	if apperr.IsNotFound(err) {
		c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeNotFound, err.Error()))
		return
	}
	if apperr.IsConflict(err) {
		c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeConflict, err.Error()))
		return
	}
	if l, ok := c.Get("logger"); ok {
		if log, ok := l.(*zap.SugaredLogger); ok && log != nil {
			log.Errorw("request failed", "path", c.FullPath(), "err", err)
		}
	}
	c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, "internal error"))
}

func respondBadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, msg))
}
