package venues

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

// ErrDeleteNotImplemented is returned by DeleteVenue. Venues can't be removed
// yet, and nothing is deleted.
var ErrDeleteNotImplemented = errcodes.NotImplemented("Deleting a venue")

type RetrieveVenueOptions struct {
	ID *int
}

type UpdateVenueOptions struct {
	Columns []string
}

// Group is every venue sharing one exact (city, state) pair.
type Group struct {
	City   string            `json:"city"`
	State  string            `json:"state"`
	Venues []*search.Summary `json:"venues"`
}

// Detail is a venue with its show history split around now.
type Detail struct {
	ID                 int                       `json:"id"`
	Name               string                    `json:"name"`
	Genres             []string                  `json:"genres"`
	Address            string                    `json:"address"`
	City               string                    `json:"city"`
	State              string                    `json:"state"`
	Phone              string                    `json:"phone"`
	Website            string                    `json:"website"`
	FacebookLink       string                    `json:"facebook_link"`
	SeekingTalent      bool                      `json:"seeking_talent"`
	SeekingDescription string                    `json:"seeking_description"`
	ImageLink          string                    `json:"image_link"`
	PastShows          []*shows.ArtistAppearance `json:"past_shows"`
	UpcomingShows      []*shows.ArtistAppearance `json:"upcoming_shows"`
	PastShowsCount     int                       `json:"past_shows_count"`
	UpcomingShowsCount int                       `json:"upcoming_shows_count"`
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

// CreateVenue inserts the venue in its own transaction. On failure nothing is
// written and the venue's ID is left at zero.
func (svc *Service) CreateVenue(ctx context.Context, venue *models.Venue) error {
	now := svc.nowFn()
	if venue.CreatedAt.IsZero() {
		venue.CreatedAt = now
	}
	venue.UpdatedAt = venue.CreatedAt

	err := svc.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.
			NewInsert().
			Model(venue).
			Returning("*").
			Exec(ctx)
		return errors.WithStack(err)
	})
	if err != nil {
		venue.ID = 0
		return err
	}

	logger.FromContext(ctx).Info("venue created", logger.Data{"venue_id": venue.ID})
	return nil
}

func (svc *Service) RetrieveVenue(ctx context.Context, opts RetrieveVenueOptions) (*models.Venue, error) {
	venue := &models.Venue{}

	q := svc.db.
		NewSelect().
		Model(venue)

	if opts.ID != nil {
		q = q.Where("v.id = ?", *opts.ID)
	}

	err := q.Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errcodes.NotFound("Venue")
		}
		return nil, errors.WithStack(err)
	}

	return venue, nil
}

// RetrieveVenueDetail loads the venue with every show it hosts and the
// artist playing each one.
func (svc *Service) RetrieveVenueDetail(ctx context.Context, id int) (*Detail, error) {
	venue := &models.Venue{}
	err := svc.db.
		NewSelect().
		Model(venue).
		Relation("Shows").
		Relation("Shows.Artist").
		Where("v.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errcodes.NotFound("Venue")
		}
		return nil, errors.WithStack(err)
	}

	past, upcoming := shows.Partition(venue.Shows, svc.nowFn())

	return &Detail{
		ID:                 venue.ID,
		Name:               venue.Name,
		Genres:             venue.GenreList(),
		Address:            venue.Address,
		City:               venue.City,
		State:              venue.State,
		Phone:              venue.Phone,
		Website:            venue.Website,
		FacebookLink:       venue.FacebookLink,
		SeekingTalent:      venue.SeekingTalent,
		SeekingDescription: venue.SeekingDescription,
		ImageLink:          venue.ImageLink,
		PastShows:          shows.ArtistAppearances(past),
		UpcomingShows:      shows.ArtistAppearances(upcoming),
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}, nil
}

// ListVenueGroups groups every venue by its exact (city, state) pair. Groups
// are ordered by state then city, and venues within a group by id.
func (svc *Service) ListVenueGroups(ctx context.Context) ([]*Group, error) {
	var venues []*models.Venue
	err := svc.db.
		NewSelect().
		Model(&venues).
		Relation("Shows").
		Order("v.state ASC", "v.city ASC", "v.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	now := svc.nowFn()
	groups := []*Group{}
	var current *Group
	for _, venue := range venues {
		if current == nil || current.City != venue.City || current.State != venue.State {
			current = &Group{City: venue.City, State: venue.State, Venues: []*search.Summary{}}
			groups = append(groups, current)
		}
		current.Venues = append(current.Venues, &search.Summary{
			ID:               venue.ID,
			Name:             venue.Name,
			NumUpcomingShows: shows.CountUpcoming(venue.Shows, now),
		})
	}

	return groups, nil
}

// SearchVenues matches venue names containing term, ignoring case. An empty
// term matches every venue.
func (svc *Service) SearchVenues(ctx context.Context, term string) (*search.Result, error) {
	var venues []*models.Venue
	q := svc.db.
		NewSelect().
		Model(&venues).
		Relation("Shows").
		Order("v.id ASC")
	q = search.NameContains(q, "v.name", term)

	err := q.Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	now := svc.nowFn()
	data := make([]*search.Summary, 0, len(venues))
	for _, venue := range venues {
		data = append(data, &search.Summary{
			ID:               venue.ID,
			Name:             venue.Name,
			NumUpcomingShows: shows.CountUpcoming(venue.Shows, now),
		})
	}

	return search.NewResult(term, data), nil
}

// UpdateVenue writes the given columns, or every column when none are named,
// inside a transaction. An unknown id yields a not-found error.
func (svc *Service) UpdateVenue(ctx context.Context, venue *models.Venue, opts UpdateVenueOptions) error {
	venue.UpdatedAt = svc.nowFn()

	return svc.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		n, err := tx.NewSelect().
			Model((*models.Venue)(nil)).
			Where("v.id = ?", venue.ID).
			Count(ctx)
		if err != nil {
			return errors.WithStack(err)
		}
		if n == 0 {
			return errcodes.NotFound("Venue")
		}

		q := tx.
			NewUpdate().
			Model(venue).
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

// DeleteVenue is not implemented and always returns ErrDeleteNotImplemented.
func (svc *Service) DeleteVenue(_ context.Context, _ int) error {
	return ErrDeleteNotImplemented
}
