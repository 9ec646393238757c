package response

import (
	"errors"
	"net/http"
	"time"

	"github.com/generatik/adspace-booking-backend/internal/pkg/apperror"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the JSON body sent for every failed request.
// The field set mirrors the error contract existing clients depend on.
type ErrorResponse struct {
	Timestamp string `json:"timestamp"`
	Status    int    `json:"status"`
	Error     string `json:"error"`
	Message   string `json:"message"`
	Path      string `json:"path"`
}

// Error sends a JSON error response.
// AppErrors determine the status code and message; anything else is a 500
// with the internals hidden from the client.
func Error(c *gin.Context, err error) {
	code := http.StatusInternalServerError
	message := "internal server error"

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		code = appErr.Code
		message = appErr.Message
	}

	c.JSON(code, ErrorResponse{
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		Status:    code,
		Error:     http.StatusText(code),
		Message:   message,
		Path:      c.Request.URL.Path,
	})
}
