package errcodes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handle(t *testing.T, err error) (int, map[string]interface{}) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHandler().Handle(err, c)

	var body map[string]map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body["error"]
}

func TestHandle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		wantCode int
		wantType string
		wantMsg  string
	}{
		{"not found", NotFound("Venue"), http.StatusNotFound, "not_found", "Venue not found."},
		{"not implemented", NotImplemented("Deleting a venue"), http.StatusNotImplemented, "not_implemented", "Deleting a venue is not implemented."},
		{"wrapped", errors.Wrap(ValidationError("Name is required."), "binding"), http.StatusUnprocessableEntity, "validation_error", "Name is required."},
		{"echo error", echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"), http.StatusMethodNotAllowed, "method_not_allowed", "Method Not Allowed"},
		{"echo error without message", &echo.HTTPError{Code: http.StatusServiceUnavailable, Message: 42}, http.StatusServiceUnavailable, "service_unavailable", "Service Unavailable"},
		{"generic", errors.New("boom"), http.StatusInternalServerError, "internal_server_error", "Internal Server Error"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			code, payload := handle(t, tt.err)
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantType, payload["code"])
			assert.Equal(t, tt.wantMsg, payload["message"])
			assert.InDelta(t, float64(tt.wantCode), payload["status_code"], 0)
		})
	}
}

func TestError_Is(t *testing.T) {
	t.Parallel()

	err := errors.WithStack(NotFound("Artist"))
	assert.ErrorIs(t, err, NotFound("Artist"))
	assert.NotErrorIs(t, err, NotFound("Venue"))

	var target *Error
	require.ErrorAs(t, err, &target)
	assert.Equal(t, http.StatusNotFound, target.HTTPCode)
}
