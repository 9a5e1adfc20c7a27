package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitGenres(t *testing.T) {
	t.Parallel()

	cases := []struct {
		stored string
		want   []string
	}{
		{"", []string{}},
		{"Jazz", []string{"Jazz"}},
		{"Jazz,Reggae,Swing", []string{"Jazz", "Reggae", "Swing"}},
		{" Rock n Roll , Folk ", []string{"Rock n Roll", "Folk"}},
		{",,Blues,", []string{"Blues"}},
	}

	for _, tt := range cases {
		assert.Equal(t, tt.want, SplitGenres(tt.stored), "stored %q", tt.stored)
	}
}

func TestJoinGenres(t *testing.T) {
	t.Parallel()

	stored, err := JoinGenres([]string{"Jazz", " Classical ", "", "R&B"})
	require.NoError(t, err)
	assert.Equal(t, "Jazz,Classical,R&B", stored)
	assert.Equal(t, []string{"Jazz", "Classical", "R&B"}, SplitGenres(stored))

	stored, err = JoinGenres(nil)
	require.NoError(t, err)
	assert.Empty(t, stored)

	_, err = JoinGenres([]string{"Hip-Hop", "Country, Western"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `genre "Country, Western"`)
}

func TestToMap_GenresAsList(t *testing.T) {
	t.Parallel()

	venue := &Venue{ID: 1, Name: "The Musical Hop", Genres: "Jazz,Folk"}
	assert.Equal(t, []string{"Jazz", "Folk"}, venue.ToMap()["genres"])

	artist := &Artist{ID: 4, Name: "Guns N Petals"}
	m := artist.ToMap()
	assert.Equal(t, []string{}, m["genres"])
	assert.Equal(t, "Guns N Petals", m["name"])
	assert.Equal(t, false, m["seeking_venue"])
}
