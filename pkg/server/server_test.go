package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stagebook/stagebook/pkg/config"
	"github.com/stagebook/stagebook/pkg/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 6, 1, 20, 0, 0, 0, time.UTC)

func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()

	e, err := newEcho(config.NewForTest(), testutils.NewDB(t), func() time.Time { return fixedNow })
	require.NoError(t, err)
	return e
}

func request(t *testing.T, e *echo.Echo, method, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func created(t *testing.T, rec *httptest.ResponseRecorder) int {
	t.Helper()
	require.Equal(t, http.StatusOK, rec.Code)

	var n struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		ID      int    `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &n))
	require.True(t, n.Success, n.Message)
	return n.ID
}

func TestScheduleShowEndToEnd(t *testing.T) {
	t.Parallel()
	e := newTestEcho(t)

	artistID := created(t, request(t, e, http.MethodPost, "/artists/create", url.Values{
		"name":  {"Guns N Petals"},
		"city":  {"San Francisco"},
		"state": {"CA"},
	}))
	venueID := created(t, request(t, e, http.MethodPost, "/venues/create", url.Values{
		"name":    {"The Musical Hop"},
		"city":    {"San Francisco"},
		"state":   {"CA"},
		"address": {"1015 Folsom St"},
		"phone":   {"123-123-1234"},
	}))

	start := fixedNow.Add(24 * time.Hour).Format("2006-01-02 15:04:05")
	created(t, request(t, e, http.MethodPost, "/shows/create", url.Values{
		"artist_id":  {strconv.Itoa(artistID)},
		"venue_id":   {strconv.Itoa(venueID)},
		"start_time": {start},
	}))

	rec := request(t, e, http.MethodGet, "/shows", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var listings []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listings))
	require.Len(t, listings, 1)
	assert.Equal(t, "Guns N Petals", listings[0]["artist_name"])
	assert.Equal(t, "The Musical Hop", listings[0]["venue_name"])
	assert.Equal(t, "2026-06-02 20:00:00", listings[0]["start_time"])

	rec = request(t, e, http.MethodGet, fmt.Sprintf("/venues/%d", venueID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var venue map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &venue))
	assert.InDelta(t, 1, venue["upcoming_shows_count"], 0)
	assert.InDelta(t, 0, venue["past_shows_count"], 0)
	upcoming := venue["upcoming_shows"].([]any)
	require.Len(t, upcoming, 1)
	assert.Equal(t, "Guns N Petals", upcoming[0].(map[string]any)["artist_name"])

	rec = request(t, e, http.MethodGet, fmt.Sprintf("/artists/%d", artistID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var artist map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &artist))
	assert.InDelta(t, 1, artist["upcoming_shows_count"], 0)

	rec = request(t, e, http.MethodGet, "/venues", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var groups []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &groups))
	require.Len(t, groups, 1)
	venues := groups[0]["venues"].([]any)
	assert.InDelta(t, 1, venues[0].(map[string]any)["num_upcoming_shows"], 0)
}

func TestShowWithUnknownArtistIsNotListed(t *testing.T) {
	t.Parallel()
	e := newTestEcho(t)

	venueID := created(t, request(t, e, http.MethodPost, "/venues/create", url.Values{"name": {"The Musical Hop"}}))

	rec := request(t, e, http.MethodPost, "/shows/create", url.Values{
		"artist_id":  {"404"},
		"venue_id":   {strconv.Itoa(venueID)},
		"start_time": {"2026-06-02 20:00:00"},
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"An error occurred. Show could not be listed."}`, rec.Body.String())

	rec = request(t, e, http.MethodGet, "/shows", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestRoutes(t *testing.T) {
	t.Parallel()
	e := newTestEcho(t)

	rec := request(t, e, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"stagebook"`)

	rec = request(t, e, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = request(t, e, http.MethodGet, "/nowhere", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":{"code":"not_found","message":"Page not found.","status_code":404}}`, rec.Body.String())

	rec = request(t, e, http.MethodDelete, "/venues/1", nil)
	assert.Equal(t, http.StatusNotImplemented, rec.Code)
	assert.Contains(t, rec.Body.String(), "not_implemented")

	for _, path := range []string{"/venues/create", "/artists/create", "/shows/create"} {
		rec = request(t, e, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestRequestIDHeader(t *testing.T) {
	t.Parallel()
	e := newTestEcho(t)

	rec := request(t, e, http.MethodGet, "/", nil)
	assert.Len(t, rec.Header().Get(echo.HeaderXRequestID), 36)
}

func TestDeleteAllTestData(t *testing.T) {
	t.Parallel()
	e := newTestEcho(t)

	created(t, request(t, e, http.MethodPost, "/venues/create", url.Values{"name": {"The Musical Hop"}}))
	created(t, request(t, e, http.MethodPost, "/artists/create", url.Values{"name": {"Guns N Petals"}}))

	rec := request(t, e, http.MethodDelete, "/test/data", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"shows":0,"artists":1,"venues":1}`, rec.Body.String())

	rec = request(t, e, http.MethodPost, "/venues/search", url.Values{"search_term": {""}})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"count":0,"data":[],"search_term":""}`, rec.Body.String())
}
