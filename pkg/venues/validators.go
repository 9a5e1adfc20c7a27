package venues

import (
	"github.com/pkg/errors"
	"github.com/stagebook/stagebook/pkg/forms"
	"github.com/stagebook/stagebook/pkg/models"
)

type VenuePayload struct {
	Name               string   `form:"name" json:"name" mod:"trim" validate:"required,max=255"`
	City               string   `form:"city" json:"city" mod:"trim" validate:"max=120"`
	State              string   `form:"state" json:"state" mod:"trim,ucase" validate:"max=120"`
	Address            string   `form:"address" json:"address" mod:"trim" validate:"max=120"`
	Phone              string   `form:"phone" json:"phone" mod:"trim" validate:"max=120,phone"`
	Genres             []string `form:"genres" json:"genres" validate:"max=20,dive,max=60,excludesall=0x2C"`
	SeekingTalent      string   `form:"seeking_talent" json:"seeking_talent" mod:"trim" default:"No"`
	SeekingDescription string   `form:"seeking_description" json:"seeking_description" mod:"trim" validate:"max=120"`
	ImageLink          string   `form:"image_link" json:"image_link" mod:"trim" validate:"max=500,url"`
	Website            string   `form:"website" json:"website" mod:"trim" validate:"max=120,url"`
	FacebookLink       string   `form:"facebook_link" json:"facebook_link" mod:"trim" validate:"max=120,url"`
}

type SearchPayload struct {
	SearchTerm string `form:"search_term" query:"search_term" json:"search_term" mod:"trim" validate:"max=100"`
}

// apply copies the payload onto venue, leaving its id untouched.
func (p *VenuePayload) apply(venue *models.Venue) error {
	if p.State != "" && !forms.IsState(p.State) {
		return errors.Errorf("unknown state %q", p.State)
	}
	genres, err := models.JoinGenres(p.Genres)
	if err != nil {
		return err
	}

	venue.Name = p.Name
	venue.City = p.City
	venue.State = p.State
	venue.Address = p.Address
	venue.Phone = p.Phone
	venue.Genres = genres
	venue.SeekingTalent = forms.SeekingValue(p.SeekingTalent)
	venue.SeekingDescription = p.SeekingDescription
	venue.ImageLink = p.ImageLink
	venue.Website = p.Website
	venue.FacebookLink = p.FacebookLink
	return nil
}
