package models

import (
	"time"

	"github.com/uptrace/bun"
)

type Venue struct {
	bun.BaseModel `bun:"table:venues,alias:v"`

	ID                 int       `bun:",pk,autoincrement" json:"id"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
	Name               string    `bun:",notnull" json:"name"`
	City               string    `bun:",nullzero" json:"city"`
	State              string    `bun:",nullzero" json:"state"`
	Address            string    `bun:",nullzero" json:"address"`
	Phone              string    `bun:",nullzero" json:"phone"`
	Genres             string    `bun:",nullzero" json:"genres"`
	ImageLink          string    `bun:",nullzero" json:"image_link"`
	FacebookLink       string    `bun:",nullzero" json:"facebook_link"`
	Website            string    `bun:",nullzero" json:"website"`
	SeekingTalent      bool      `bun:",notnull" json:"seeking_talent"`
	SeekingDescription string    `bun:",nullzero" json:"seeking_description"`
	Shows              []*Show   `bun:"rel:has-many,join:id=venue_id" json:"-"`
}

// GenreList returns the stored genres as a list.
func (v *Venue) GenreList() []string {
	return SplitGenres(v.Genres)
}

// ToMap returns the plain key/value representation of the venue.
func (v *Venue) ToMap() map[string]any {
	return map[string]any{
		"id":                  v.ID,
		"name":                v.Name,
		"city":                v.City,
		"state":               v.State,
		"address":             v.Address,
		"phone":               v.Phone,
		"genres":              v.GenreList(),
		"image_link":          v.ImageLink,
		"facebook_link":       v.FacebookLink,
		"website":             v.Website,
		"seeking_talent":      v.SeekingTalent,
		"seeking_description": v.SeekingDescription,
	}
}
