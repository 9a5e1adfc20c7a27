package errcodes

import (
	"net/http"

	"github.com/iancoleman/strcase"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/echo/v4/middleware/logger"
	"github.com/robinjoseph08/golib/errutils"
)

// Body is the error envelope every failed request answers with.
type Body struct {
	Error Detail `json:"error"`
}

type Detail struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"status_code"`
}

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Handle is an echo HTTPErrorHandler. Errors from this package and echo keep
// their status; anything else is logged and reported as a 500.
func (h *Handler) Handle(err error, c echo.Context) {
	log := logger.FromEchoContext(c)

	if errutils.IsIgnorableErr(err) {
		log.Err(err).Warn("broken pipe")
		return
	}

	detail := describe(err)
	if detail.StatusCode == http.StatusInternalServerError {
		log.Err(err).Error("server error")
	}

	if err := c.JSON(detail.StatusCode, Body{Error: detail}); err != nil {
		log.Err(errors.WithStack(err)).Error("error handler json error")
	}
}

func describe(err error) Detail {
	var e *Error
	if errors.As(err, &e) {
		return Detail{Code: e.Code, Message: e.Message, StatusCode: e.HTTPCode}
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		msg, ok := he.Message.(string)
		if !ok || msg == "" {
			msg = http.StatusText(he.Code)
		}
		return Detail{Code: strcase.ToSnake(msg), Message: msg, StatusCode: he.Code}
	}

	return Detail{
		Code:       "internal_server_error",
		Message:    "Internal Server Error",
		StatusCode: http.StatusInternalServerError,
	}
}
