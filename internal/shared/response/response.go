package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"library-backend/internal/shared/apperr"
)

// ErrorBody is the wire shape for every failure.
// Details is present only for validation errors.
type ErrorBody struct {
	Message string              `json:"message"`
	Details []apperr.FieldError `json:"details,omitempty"`
}

// Error writes the response for a service-level failure. Unexpected errors
// are logged with their cause; the body stays generic.
func Error(c *gin.Context, err error) {
	appErr, ok := apperr.As(err)
	if !ok {
		appErr = apperr.Unexpected(err)
	}

	if appErr.Kind == apperr.KindUnexpected {
		log.Error().
			Str("request_id", c.GetString("request_id")).
			Err(appErr.Unwrap()).
			Msg("Unexpected error")
	}

	c.JSON(appErr.Status(), ErrorBody{
		Message: appErr.Message,
		Details: appErr.Details,
	})
}

// BadRequest writes a 400 with a bare message. Used for request bodies
// that fail to bind before any business rule runs.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorBody{Message: message})
}

// Created writes a 201 with no body.
func Created(c *gin.Context) {
	c.Status(http.StatusCreated)
}

// NoContent writes a 204 with no body.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// JSON writes a 200 with a payload.
func JSON(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}
