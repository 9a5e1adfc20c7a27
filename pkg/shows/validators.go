package shows

import (
	"github.com/pkg/errors"
	"github.com/stagebook/stagebook/pkg/models"
)

type CreateShowPayload struct {
	ArtistID  int    `form:"artist_id" json:"artist_id" validate:"required,min=1"`
	VenueID   int    `form:"venue_id" json:"venue_id" validate:"required,min=1"`
	StartTime string `form:"start_time" json:"start_time" mod:"trim" validate:"required,starttime"`
}

func (p *CreateShowPayload) toModel() (*models.Show, error) {
	startTime, err := models.ParseStartTime(p.StartTime)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return &models.Show{
		ArtistID:  p.ArtistID,
		VenueID:   p.VenueID,
		StartTime: startTime,
	}, nil
}
