package migrations

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

// The table definitions are frozen here so later model changes don't alter
// what this migration creates.

type venueTableV1 struct {
	bun.BaseModel `bun:"table:venues"`

	ID                 int       `bun:",pk,autoincrement"`
	CreatedAt          time.Time `bun:",notnull,default:current_timestamp"`
	UpdatedAt          time.Time `bun:",notnull,default:current_timestamp"`
	Name               string    `bun:"type:varchar(255),notnull"`
	City               string    `bun:"type:varchar(120)"`
	State              string    `bun:"type:varchar(120)"`
	Address            string    `bun:"type:varchar(120)"`
	Phone              string    `bun:"type:varchar(120)"`
	ImageLink          string    `bun:"type:varchar(500)"`
	FacebookLink       string    `bun:"type:varchar(120)"`
	Website            string    `bun:"type:varchar(120)"`
	SeekingTalent      bool      `bun:",notnull,default:false"`
	SeekingDescription string    `bun:"type:varchar(120)"`
}

type artistTableV1 struct {
	bun.BaseModel `bun:"table:artists"`

	ID                 int       `bun:",pk,autoincrement"`
	CreatedAt          time.Time `bun:",notnull,default:current_timestamp"`
	UpdatedAt          time.Time `bun:",notnull,default:current_timestamp"`
	Name               string    `bun:"type:varchar(255),notnull"`
	City               string    `bun:"type:varchar(120)"`
	State              string    `bun:"type:varchar(120)"`
	Phone              string    `bun:"type:varchar(120)"`
	Genres             string    `bun:"type:varchar(120)"`
	ImageLink          string    `bun:"type:varchar(500)"`
	FacebookLink       string    `bun:"type:varchar(120)"`
	Website            string    `bun:"type:varchar(120)"`
	SeekingVenue       bool      `bun:",notnull,default:false"`
	SeekingDescription string    `bun:"type:varchar(120)"`
}

type showTableV1 struct {
	bun.BaseModel `bun:"table:shows"`

	ID        int            `bun:",pk,autoincrement"`
	CreatedAt time.Time      `bun:",notnull,default:current_timestamp"`
	StartTime time.Time      `bun:",notnull"`
	VenueID   int            `bun:",notnull"`
	Venue     *venueTableV1  `bun:"rel:belongs-to,join:venue_id=id"`
	ArtistID  int            `bun:",notnull"`
	Artist    *artistTableV1 `bun:"rel:belongs-to,join:artist_id=id"`
}

func init() {
	up := func(ctx context.Context, db *bun.DB) error {
		for _, model := range []any{(*venueTableV1)(nil), (*artistTableV1)(nil)} {
			_, err := db.NewCreateTable().Model(model).Exec(ctx)
			if err != nil {
				return errors.WithStack(err)
			}
		}

		_, err := db.NewCreateTable().
			Model((*showTableV1)(nil)).
			WithForeignKeys().
			Exec(ctx)
		if err != nil {
			return errors.WithStack(err)
		}

		// Show history is always read through one side of the association.
		_, err = db.NewCreateIndex().
			Model((*showTableV1)(nil)).
			Index("ix_shows_venue_id").
			Column("venue_id").
			Exec(ctx)
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = db.NewCreateIndex().
			Model((*showTableV1)(nil)).
			Index("ix_shows_artist_id").
			Column("artist_id").
			Exec(ctx)
		if err != nil {
			return errors.WithStack(err)
		}

		_, err = db.NewCreateIndex().
			Model((*venueTableV1)(nil)).
			Index("ix_venues_state_city").
			Column("state", "city").
			Exec(ctx)
		return errors.WithStack(err)
	}

	down := func(ctx context.Context, db *bun.DB) error {
		for _, model := range []any{(*showTableV1)(nil), (*artistTableV1)(nil), (*venueTableV1)(nil)} {
			_, err := db.NewDropTable().Model(model).IfExists().Exec(ctx)
			if err != nil {
				return errors.WithStack(err)
			}
		}
		return nil
	}

	Migrations.MustRegister(up, down)
}
