package artists

import (
	"context"
	"database/sql"
	"time"

	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/logger"
	"github.com/stagebook/stagebook/pkg/errcodes"
	"github.com/stagebook/stagebook/pkg/models"
	"github.com/stagebook/stagebook/pkg/search"
	"github.com/stagebook/stagebook/pkg/shows"
	"github.com/uptrace/bun"
)

type RetrieveArtistOptions struct {
	ID *int
}

type UpdateArtistOptions struct {
	Columns []string
}

// Entry is a row of the artist list.
type Entry struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Detail is an artist with their show history split around now.
type Detail struct {
	ID                 int                      `json:"id"`
	Name               string                   `json:"name"`
	Genres             []string                 `json:"genres"`
	City               string                   `json:"city"`
	State              string                   `json:"state"`
	Phone              string                   `json:"phone"`
	Website            string                   `json:"website"`
	FacebookLink       string                   `json:"facebook_link"`
	SeekingVenue       bool                     `json:"seeking_venue"`
	SeekingDescription string                   `json:"seeking_description"`
	ImageLink          string                   `json:"image_link"`
	PastShows          []*shows.VenueAppearance `json:"past_shows"`
	UpcomingShows      []*shows.VenueAppearance `json:"upcoming_shows"`
	PastShowsCount     int                      `json:"past_shows_count"`
	UpcomingShowsCount int                      `json:"upcoming_shows_count"`
}

type Service struct {
	db    *bun.DB
	nowFn func() time.Time
}

func NewService(db *bun.DB) *Service {
	return &Service{db: db, nowFn: time.Now}
}

// WithClock replaces the wall clock used to split upcoming and past shows.
func (svc *Service) WithClock(nowFn func() time.Time) *Service {
	svc.nowFn = nowFn
	return svc
}

// CreateArtist inserts the artist in its own transaction. On failure nothing
// is written and the artist's ID is left at zero.
func (svc *Service) CreateArtist(ctx context.Context, artist *models.Artist) error {
	if artist.CreatedAt.IsZero() {
		artist.CreatedAt = svc.nowFn()
	}
	artist.UpdatedAt = artist.CreatedAt

	err := svc.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.
			NewInsert().
			Model(artist).
			Returning("*").
			Exec(ctx)
		return errors.WithStack(err)
	})
	if err != nil {
		artist.ID = 0
		return err
	}

	logger.FromContext(ctx).Info("artist created", logger.Data{"artist_id": artist.ID})
	return nil
}

func (svc *Service) RetrieveArtist(ctx context.Context, opts RetrieveArtistOptions) (*models.Artist, error) {
	artist := &models.Artist{}

	q := svc.db.
		NewSelect().
		Model(artist)

	if opts.ID != nil {
		q = q.Where("a.id = ?", *opts.ID)
	}

	err := q.Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errcodes.NotFound("Artist")
		}
		return nil, errors.WithStack(err)
	}

	return artist, nil
}

// RetrieveArtistDetail loads the artist with every show they play and the
// venue hosting each one.
func (svc *Service) RetrieveArtistDetail(ctx context.Context, id int) (*Detail, error) {
	artist := &models.Artist{}
	err := svc.db.
		NewSelect().
		Model(artist).
		Relation("Shows").
		Relation("Shows.Venue").
		Where("a.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errcodes.NotFound("Artist")
		}
		return nil, errors.WithStack(err)
	}

	past, upcoming := shows.Partition(artist.Shows, svc.nowFn())

	return &Detail{
		ID:                 artist.ID,
		Name:               artist.Name,
		Genres:             artist.GenreList(),
		City:               artist.City,
		State:              artist.State,
		Phone:              artist.Phone,
		Website:            artist.Website,
		FacebookLink:       artist.FacebookLink,
		SeekingVenue:       artist.SeekingVenue,
		SeekingDescription: artist.SeekingDescription,
		ImageLink:          artist.ImageLink,
		PastShows:          shows.VenueAppearances(past),
		UpcomingShows:      shows.VenueAppearances(upcoming),
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}, nil
}

// ListArtists returns every artist's id and name, ordered by id.
func (svc *Service) ListArtists(ctx context.Context) ([]*Entry, error) {
	var list []*models.Artist
	err := svc.db.
		NewSelect().
		Model(&list).
		Column("a.id", "a.name").
		Order("a.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	entries := make([]*Entry, 0, len(list))
	for _, artist := range list {
		entries = append(entries, &Entry{ID: artist.ID, Name: artist.Name})
	}
	return entries, nil
}

// SearchArtists matches artist names containing term, ignoring case. An
// empty term matches every artist.
func (svc *Service) SearchArtists(ctx context.Context, term string) (*search.Result, error) {
	var list []*models.Artist
	q := svc.db.
		NewSelect().
		Model(&list).
		Relation("Shows").
		Order("a.id ASC")
	q = search.NameContains(q, "a.name", term)

	err := q.Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	now := svc.nowFn()
	data := make([]*search.Summary, 0, len(list))
	for _, artist := range list {
		data = append(data, &search.Summary{
			ID:               artist.ID,
			Name:             artist.Name,
			NumUpcomingShows: shows.CountUpcoming(artist.Shows, now),
		})
	}

	return search.NewResult(term, data), nil
}

// UpdateArtist writes the given columns, or every column when none are
// named, inside a transaction. An unknown id yields a not-found error.
func (svc *Service) UpdateArtist(ctx context.Context, artist *models.Artist, opts UpdateArtistOptions) error {
	artist.UpdatedAt = svc.nowFn()

	return svc.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		n, err := tx.NewSelect().
			Model((*models.Artist)(nil)).
			Where("a.id = ?", artist.ID).
			Count(ctx)
		if err != nil {
			return errors.WithStack(err)
		}
		if n == 0 {
			return errcodes.NotFound("Artist")
		}

		q := tx.
			NewUpdate().
			Model(artist).
			WherePK()
		if len(opts.Columns) > 0 {
			q = q.Column(append(opts.Columns, "updated_at")...)
		} else {
			q = q.ExcludeColumn("id", "created_at")
		}

		_, err = q.Exec(ctx)
		return errors.WithStack(err)
	})
}
