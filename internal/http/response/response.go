package response

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/ovenly/bakeshop-backend/internal/domain"
	"github.com/ovenly/bakeshop-backend/internal/pkg/logger"
)

// ErrorBody is the wire shape of every error response.
type ErrorBody struct {
	Detail string `json:"detail"`
}

// Responder translates domain errors to HTTP status + body. In debug mode
// internal failures include a stack trace in the body; otherwise clients
// get a generic message and the detail stays in the server log.
type Responder struct {
	log   *logger.Logger
	debug bool
}

func NewResponder(baseLog *logger.Logger, debug bool) *Responder {
	return &Responder{log: baseLog.With("component", "Responder"), debug: debug}
}

func statusOf(code domain.ErrorCode) int {
	switch code {
	case domain.CodeNotFound:
		return http.StatusNotFound
	case domain.CodeValidation, domain.CodeConflict:
		return http.StatusBadRequest
	case domain.CodeInvalidSession:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// Error renders err as an ErrorBody with the status its domain code maps to.
func (r *Responder) Error(c *gin.Context, err error) {
	status := statusOf(domain.CodeOf(err))
	detail := domain.MessageOf(err)

	if status == http.StatusInternalServerError {
		r.log.Error("Request failed", "method", c.Request.Method, "path", c.Request.URL.Path, "error", err)
		if r.debug {
			detail = err.Error() + "\n" + string(debug.Stack())
		} else {
			detail = "Internal server error"
		}
	} else if detail == "" {
		detail = http.StatusText(status)
	}
	c.AbortWithStatusJSON(status, ErrorBody{Detail: detail})
}

// BadRequest renders binding/parse failures that never reached the domain.
func (r *Responder) BadRequest(c *gin.Context, err error) {
	detail := "Invalid request"
	if err != nil {
		detail = err.Error()
	}
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorBody{Detail: detail})
}
