// Package seed loads a small sample directory through the same services the
// HTTP handlers use, so seeded rows go through the same transactions and
// reference checks as anything created from a form.
package seed

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/logger"
	"github.com/stagebook/stagebook/pkg/artists"
	"github.com/stagebook/stagebook/pkg/models"
	"github.com/stagebook/stagebook/pkg/shows"
	"github.com/stagebook/stagebook/pkg/venues"
	"github.com/uptrace/bun"
)

// ErrAlreadySeeded is returned when the directory already holds venues.
var ErrAlreadySeeded = errors.New("the directory already has venues; refusing to seed")

// ShowSeed points at a venue and an artist by their position in the
// Directory slices, since IDs aren't known until they're inserted.
type ShowSeed struct {
	Venue  int
	Artist int
	Offset time.Duration
}

type Directory struct {
	Venues  []*models.Venue
	Artists []*models.Artist
	Shows   []ShowSeed
}

type Summary struct {
	Venues  int `json:"venues"`
	Artists int `json:"artists"`
	Shows   int `json:"shows"`
}

// Sample returns three venues, three artists and a handful of shows. Show
// times are offsets from now, so every load has both upcoming and past shows.
func Sample() *Directory {
	return &Directory{
		Venues: []*models.Venue{
			{
				Name:               "The Musical Hop",
				Genres:             "Jazz,Reggae,Swing,Classical,Folk",
				Address:            "1015 Folsom Street",
				City:               "San Francisco",
				State:              "CA",
				Phone:              "123-123-1234",
				Website:            "https://www.themusicalhop.com",
				FacebookLink:       "https://www.facebook.com/TheMusicalHop",
				SeekingTalent:      true,
				SeekingDescription: "We are on the lookout for a local artist to play every two weeks. Please call us.",
				ImageLink:          "https://images.unsplash.com/photo-1543900694-133f37abaaa5?w=400",
			},
			{
				Name:         "The Dueling Pianos Bar",
				Genres:       "Classical,R&B,Hip-Hop",
				Address:      "335 Delancey Street",
				City:         "New York",
				State:        "NY",
				Phone:        "914-003-1132",
				Website:      "https://www.theduelingpianos.com",
				FacebookLink: "https://www.facebook.com/theduelingpianos",
				ImageLink:    "https://images.unsplash.com/photo-1497032205916-ac775f0649ae?w=750",
			},
			{
				Name:         "Park Square Live Music & Coffee",
				Genres:       "Rock n Roll,Jazz,Classical,Folk",
				Address:      "34 Whiskey Moore Ave",
				City:         "San Francisco",
				State:        "CA",
				Phone:        "415-000-1234",
				Website:      "https://www.parksquarelivemusicandcoffee.com",
				FacebookLink: "https://www.facebook.com/ParkSquareLiveMusicAndCoffee",
				ImageLink:    "https://images.unsplash.com/photo-1485686531765-ba63b07845a7?w=747",
			},
		},
		Artists: []*models.Artist{
			{
				Name:               "Guns N Petals",
				Genres:             "Rock n Roll",
				City:               "San Francisco",
				State:              "CA",
				Phone:              "326-123-5000",
				Website:            "https://www.gunsnpetalsband.com",
				FacebookLink:       "https://www.facebook.com/GunsNPetals",
				SeekingVenue:       true,
				SeekingDescription: "Looking for shows to perform at in the San Francisco Bay Area!",
				ImageLink:          "https://images.unsplash.com/photo-1549213783-8284d0336c4f?w=300",
			},
			{
				Name:         "Matt Quevedo",
				Genres:       "Jazz",
				City:         "New York",
				State:        "NY",
				Phone:        "300-400-5000",
				FacebookLink: "https://www.facebook.com/mattquevedo923251523",
				ImageLink:    "https://images.unsplash.com/photo-1495223153807-b916f75de8c5?w=334",
			},
			{
				Name:      "The Wild Sax Band",
				Genres:    "Jazz,Classical",
				City:      "San Francisco",
				State:     "CA",
				Phone:     "432-325-5432",
				ImageLink: "https://images.unsplash.com/photo-1558369981-f9ca78462e61?w=794",
			},
		},
		Shows: []ShowSeed{
			{Venue: 0, Artist: 0, Offset: -30 * 24 * time.Hour},
			{Venue: 2, Artist: 1, Offset: -14 * 24 * time.Hour},
			{Venue: 2, Artist: 2, Offset: 7 * 24 * time.Hour},
			{Venue: 2, Artist: 2, Offset: 14 * 24 * time.Hour},
			{Venue: 2, Artist: 2, Offset: 21 * 24 * time.Hour},
		},
	}
}

// Load inserts the directory and returns how many rows of each kind were
// written. It refuses to run against a directory that already has venues.
func Load(ctx context.Context, db *bun.DB, dir *Directory, now time.Time) (*Summary, error) {
	log := logger.FromContext(ctx)

	existing, err := db.NewSelect().Model((*models.Venue)(nil)).Count(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if existing > 0 {
		return nil, ErrAlreadySeeded
	}

	clock := func() time.Time { return now }
	venueSvc := venues.NewService(db).WithClock(clock)
	artistSvc := artists.NewService(db).WithClock(clock)
	showSvc := shows.NewService(db).WithClock(clock)

	summary := &Summary{}
	for _, venue := range dir.Venues {
		if err := venueSvc.CreateVenue(ctx, venue); err != nil {
			return summary, errors.Wrapf(err, "venue %q", venue.Name)
		}
		summary.Venues++
	}
	for _, artist := range dir.Artists {
		if err := artistSvc.CreateArtist(ctx, artist); err != nil {
			return summary, errors.Wrapf(err, "artist %q", artist.Name)
		}
		summary.Artists++
	}
	for i, s := range dir.Shows {
		if s.Venue < 0 || s.Venue >= len(dir.Venues) || s.Artist < 0 || s.Artist >= len(dir.Artists) {
			return summary, errors.Errorf("show %d references a venue or artist outside the directory", i)
		}
		show := &models.Show{
			VenueID:   dir.Venues[s.Venue].ID,
			ArtistID:  dir.Artists[s.Artist].ID,
			StartTime: now.Add(s.Offset).UTC().Truncate(time.Second),
		}
		if err := showSvc.CreateShow(ctx, show); err != nil {
			return summary, errors.Wrapf(err, "show %d", i)
		}
		summary.Shows++
	}

	log.Info("directory seeded", logger.Data{
		"venues":  summary.Venues,
		"artists": summary.Artists,
		"shows":   summary.Shows,
	})
	return summary, nil
}
