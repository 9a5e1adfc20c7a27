package models

import (
	"time"

	"github.com/uptrace/bun"
)

type Artist struct {
	bun.BaseModel `bun:"table:artists,alias:a"`

	ID                 int       `bun:",pk,autoincrement" json:"id"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
	Name               string    `bun:",notnull" json:"name"`
	City               string    `bun:",nullzero" json:"city"`
	State              string    `bun:",nullzero" json:"state"`
	Phone              string    `bun:",nullzero" json:"phone"`
	Genres             string    `bun:",nullzero" json:"genres"`
	ImageLink          string    `bun:",nullzero" json:"image_link"`
	FacebookLink       string    `bun:",nullzero" json:"facebook_link"`
	Website            string    `bun:",nullzero" json:"website"`
	SeekingVenue       bool      `bun:",notnull" json:"seeking_venue"`
	SeekingDescription string    `bun:",nullzero" json:"seeking_description"`
	Shows              []*Show   `bun:"rel:has-many,join:id=artist_id" json:"-"`
}

// GenreList returns the stored genres as a list.
func (a *Artist) GenreList() []string {
	return SplitGenres(a.Genres)
}

// ToMap returns the plain key/value representation of the artist.
func (a *Artist) ToMap() map[string]any {
	return map[string]any{
		"id":                  a.ID,
		"name":                a.Name,
		"city":                a.City,
		"state":               a.State,
		"phone":               a.Phone,
		"genres":              a.GenreList(),
		"image_link":          a.ImageLink,
		"facebook_link":       a.FacebookLink,
		"website":             a.Website,
		"seeking_venue":       a.SeekingVenue,
		"seeking_description": a.SeekingDescription,
	}
}
