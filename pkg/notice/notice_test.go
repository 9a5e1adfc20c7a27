package notice

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessages(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Venue The Musical Hop was successfully listed!", Listed("Venue The Musical Hop"))
	assert.Equal(t, "An error occurred. Show could not be listed.", NotListed("Show"))
	assert.Equal(t, "Artist Guns N Petals was successfully updated!", Updated("Artist Guns N Petals"))
	assert.Equal(t, "An error occurred. Artist Guns N Petals could not be updated.", NotUpdated("Artist Guns N Petals"))
}

func TestRender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		notice *Notice
		want   string
	}{
		{"success", Success(Listed("Show"), 7), `{"success":true,"message":"Show was successfully listed!","id":7}`},
		{"failure", Failure(NotListed("Show")), `{"success":false,"message":"An error occurred. Show could not be listed."}`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodPost, "/shows/create", nil), rec)

			require.NoError(t, Render(c, tt.notice))
			assert.Equal(t, http.StatusOK, rec.Code)

			var got, want map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			require.NoError(t, json.Unmarshal([]byte(tt.want), &want))
			assert.Equal(t, want, got)
		})
	}
}
