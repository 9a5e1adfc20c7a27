package shows

import (
	"testing"
	"time"

	"github.com/stagebook/stagebook/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartition(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 6, 1, 20, 0, 0, 0, time.UTC)
	list := []*models.Show{
		{ID: 1, StartTime: now.Add(48 * time.Hour)},
		{ID: 2, StartTime: now.Add(-time.Hour)},
		{ID: 3, StartTime: now},
		{ID: 4, StartTime: now.Add(time.Hour)},
		{ID: 5, StartTime: now.Add(-48 * time.Hour)},
		{ID: 6, StartTime: now.Add(time.Hour)},
	}

	past, upcoming := Partition(list, now)

	assert.Equal(t, []int{5, 2}, ids(past))
	assert.Equal(t, []int{4, 6, 1}, ids(upcoming))
	assert.Equal(t, 3, CountUpcoming(list, now))
	// A show at exactly now is neither past nor upcoming.
	assert.Len(t, list, len(past)+len(upcoming)+1)
}

func TestPartition_Empty(t *testing.T) {
	t.Parallel()

	past, upcoming := Partition(nil, time.Now())
	require.NotNil(t, past)
	require.NotNil(t, upcoming)
	assert.Empty(t, past)
	assert.Empty(t, upcoming)
	assert.Equal(t, 0, CountUpcoming(nil, time.Now()))
}

func TestAppearances(t *testing.T) {
	t.Parallel()

	start := time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC)
	list := []*models.Show{{
		ID:        1,
		StartTime: start,
		VenueID:   1,
		Venue:     &models.Venue{ID: 1, Name: "The Musical Hop", ImageLink: "https://example.com/hop.png"},
		ArtistID:  4,
		Artist:    &models.Artist{ID: 4, Name: "Guns N Petals", ImageLink: "https://example.com/gnp.png"},
	}}

	artists := ArtistAppearances(list)
	require.Len(t, artists, 1)
	assert.Equal(t, &ArtistAppearance{
		ArtistID:        4,
		ArtistName:      "Guns N Petals",
		ArtistImageLink: "https://example.com/gnp.png",
		StartTime:       "2019-05-21 21:30:00",
	}, artists[0])

	venues := VenueAppearances(list)
	require.Len(t, venues, 1)
	assert.Equal(t, &VenueAppearance{
		VenueID:        1,
		VenueName:      "The Musical Hop",
		VenueImageLink: "https://example.com/hop.png",
		StartTime:      "2019-05-21 21:30:00",
	}, venues[0])
}

func ids(list []*models.Show) []int {
	out := make([]int, 0, len(list))
	for _, s := range list {
		out = append(out, s.ID)
	}
	return out
}
