package shows

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/logger"
	"github.com/stagebook/stagebook/pkg/models"
	"github.com/uptrace/bun"
)

var (
	ErrUnknownVenue  = errors.New("venue does not exist")
	ErrUnknownArtist = errors.New("artist does not exist")
)

// Listing is one row of the all-shows page.
type Listing struct {
	VenueID         int    `json:"venue_id"`
	VenueName       string `json:"venue_name"`
	ArtistID        int    `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

type Service struct {
	db    *bun.DB
	nowFn func() time.Time
}

func NewService(db *bun.DB) *Service {
	return &Service{db: db, nowFn: time.Now}
}

// WithClock replaces the wall clock used to stamp rows and pre-fill forms.
func (svc *Service) WithClock(nowFn func() time.Time) *Service {
	svc.nowFn = nowFn
	return svc
}

func (svc *Service) Now() time.Time {
	return svc.nowFn()
}

// CreateShow inserts the show in its own transaction after checking that the
// venue and artist it links exist. On failure nothing is written and the
// show's ID is left at zero.
func (svc *Service) CreateShow(ctx context.Context, show *models.Show) error {
	if show.CreatedAt.IsZero() {
		show.CreatedAt = svc.nowFn()
	}
	show.StartTime = show.StartTime.UTC()

	err := svc.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		n, err := tx.NewSelect().
			Model((*models.Venue)(nil)).
			Where("v.id = ?", show.VenueID).
			Count(ctx)
		if err != nil {
			return errors.WithStack(err)
		}
		if n == 0 {
			return errors.Wrapf(ErrUnknownVenue, "venue_id %d", show.VenueID)
		}

		n, err = tx.NewSelect().
			Model((*models.Artist)(nil)).
			Where("a.id = ?", show.ArtistID).
			Count(ctx)
		if err != nil {
			return errors.WithStack(err)
		}
		if n == 0 {
			return errors.Wrapf(ErrUnknownArtist, "artist_id %d", show.ArtistID)
		}

		_, err = tx.NewInsert().
			Model(show).
			Returning("*").
			Exec(ctx)
		return errors.WithStack(err)
	})
	if err != nil {
		show.ID = 0
		return err
	}

	logger.FromContext(ctx).Info("show created", logger.Data{
		"show_id":   show.ID,
		"venue_id":  show.VenueID,
		"artist_id": show.ArtistID,
	})
	return nil
}

// ListShows returns every show with its venue and artist, ordered by start
// time.
func (svc *Service) ListShows(ctx context.Context) ([]*Listing, error) {
	var list []*models.Show
	err := svc.db.
		NewSelect().
		Model(&list).
		Relation("Venue").
		Relation("Artist").
		Order("sh.start_time ASC", "sh.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	listings := make([]*Listing, 0, len(list))
	for _, show := range list {
		l := &Listing{
			VenueID:   show.VenueID,
			ArtistID:  show.ArtistID,
			StartTime: show.FormattedStartTime(),
		}
		if show.Venue != nil {
			l.VenueName = show.Venue.Name
		}
		if show.Artist != nil {
			l.ArtistName = show.Artist.Name
			l.ArtistImageLink = show.Artist.ImageLink
		}
		listings = append(listings, l)
	}
	return listings, nil
}

// CountShows returns the number of stored shows.
func (svc *Service) CountShows(ctx context.Context) (int, error) {
	n, err := svc.db.NewSelect().Model((*models.Show)(nil)).Count(ctx)
	return n, errors.WithStack(err)
}
