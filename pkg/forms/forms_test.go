package forms

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStates(t *testing.T) {
	t.Parallel()

	assert.Len(t, States, 51)
	assert.True(t, IsState("DC"))
	assert.True(t, IsState("CA"))
	assert.False(t, IsState("ca"))
	assert.False(t, IsState("XX"))
}

func TestGenres(t *testing.T) {
	t.Parallel()

	assert.True(t, IsGenre("Rock n Roll"))
	assert.True(t, IsGenre("R&B"))
	assert.False(t, IsGenre("Polka"))
	for _, g := range Genres {
		assert.NotContains(t, g, ",")
	}
}

func TestSeeking(t *testing.T) {
	t.Parallel()

	assert.True(t, SeekingValue("Yes"))
	assert.False(t, SeekingValue("No"))
	assert.False(t, SeekingValue("yes"))
	assert.False(t, SeekingValue(""))
	assert.Equal(t, "Yes", SeekingLabel(true))
	assert.Equal(t, "No", SeekingLabel(false))
}

func TestVenueForm(t *testing.T) {
	t.Parallel()

	f := VenueForm("/venues/create")
	assert.Equal(t, "/venues/create", f.Action)
	assert.Equal(t, "POST", f.Method)

	name := f.Field("name")
	require.NotNil(t, name)
	assert.True(t, name.Required)

	state := f.Field("state")
	require.NotNil(t, state)
	assert.Len(t, state.Choices, len(States))

	seeking := f.Field("seeking_talent")
	require.NotNil(t, seeking)
	assert.Equal(t, SeekingNo, seeking.Default)

	assert.NotNil(t, f.Field("address"))
	assert.Nil(t, f.Field("seeking_venue"))
}

func TestArtistForm(t *testing.T) {
	t.Parallel()

	f := ArtistForm("/artists/3/edit").WithValues(map[string]any{"name": "Guns N Petals"})
	assert.Equal(t, "Guns N Petals", f.Values["name"])
	assert.NotNil(t, f.Field("seeking_venue"))
	assert.Nil(t, f.Field("address"))
	assert.Len(t, f.Field("genres").Choices, len(Genres))
}

func TestShowForm(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 5, 21, 21, 30, 0, 0, time.UTC)
	f := ShowForm("/shows/create", now)

	start := f.Field("start_time")
	require.NotNil(t, start)
	assert.True(t, start.Required)
	assert.Equal(t, "2026-05-21 21:30:00", start.Default)
	assert.True(t, f.Field("artist_id").Required)
	assert.True(t, f.Field("venue_id").Required)
}
