package artists

import (
	"github.com/pkg/errors"
	"github.com/stagebook/stagebook/pkg/forms"
	"github.com/stagebook/stagebook/pkg/models"
)

type ArtistPayload struct {
	Name               string   `form:"name" json:"name" mod:"trim" validate:"required,max=255"`
	City               string   `form:"city" json:"city" mod:"trim" validate:"max=120"`
	State              string   `form:"state" json:"state" mod:"trim,ucase" validate:"max=120"`
	Phone              string   `form:"phone" json:"phone" mod:"trim" validate:"max=120,phone"`
	Genres             []string `form:"genres" json:"genres" validate:"max=20,dive,max=60,excludesall=0x2C"`
	SeekingVenue       string   `form:"seeking_venue" json:"seeking_venue" mod:"trim" default:"No"`
	SeekingDescription string   `form:"seeking_description" json:"seeking_description" mod:"trim" validate:"max=120"`
	ImageLink          string   `form:"image_link" json:"image_link" mod:"trim" validate:"max=500,url"`
	Website            string   `form:"website" json:"website" mod:"trim" validate:"max=120,url"`
	FacebookLink       string   `form:"facebook_link" json:"facebook_link" mod:"trim" validate:"max=120,url"`
}

type SearchPayload struct {
	SearchTerm string `form:"search_term" query:"search_term" json:"search_term" mod:"trim" validate:"max=100"`
}

// apply copies the payload onto artist, leaving its id untouched.
func (p *ArtistPayload) apply(artist *models.Artist) error {
	if p.State != "" && !forms.IsState(p.State) {
		return errors.Errorf("unknown state %q", p.State)
	}
	genres, err := models.JoinGenres(p.Genres)
	if err != nil {
		return err
	}

	artist.Name = p.Name
	artist.City = p.City
	artist.State = p.State
	artist.Phone = p.Phone
	artist.Genres = genres
	artist.SeekingVenue = forms.SeekingValue(p.SeekingVenue)
	artist.SeekingDescription = p.SeekingDescription
	artist.ImageLink = p.ImageLink
	artist.Website = p.Website
	artist.FacebookLink = p.FacebookLink
	return nil
}
