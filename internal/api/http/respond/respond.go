// Package respond writes JSON error bodies for typed application errors.
package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GoSim-25-26J-441/scaffold-forge-backend/internal/apperr"
	"github.com/GoSim-25-26J-441/scaffold-forge-backend/internal/logging"
)

const codeInternal = "internal_error"

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Success   bool           `json:"success"`
	Message   string         `json:"message"`
	ErrorCode string         `json:"error_code"`
	Details   map[string]any `json:"details"`
}

// Error writes err with the status its kind maps to. Untyped errors become
// a generic 500.
func Error(c *gin.Context, err error) {
	ErrorStatus(c, apperr.HTTPStatus(err), err)
}

// ErrorStatus writes err with an explicit status.
func ErrorStatus(c *gin.Context, status int, err error) {
	body := ErrorBody{
		Message:   "Internal server error",
		ErrorCode: codeInternal,
		Details:   map[string]any{},
	}
	if e, ok := apperr.As(err); ok {
		body.Message = e.Message
		body.ErrorCode = string(e.Kind)
		if e.Details != nil {
			body.Details = e.Details
		}
	}
	if status >= http.StatusInternalServerError {
		logging.FromContext(c.Request.Context()).WithError(err).
			WithField("path", c.Request.URL.Path).Error("request failed")
	}
	c.AbortWithStatusJSON(status, body)
}

// BadRequest writes a validation error built from msg.
func BadRequest(c *gin.Context, msg string) {
	Error(c, apperr.Validation("%s", msg))
}
