package shows

import (
	"sort"
	"time"

	"github.com/stagebook/stagebook/pkg/models"
)

// ArtistAppearance is a show as seen from a venue's page.
type ArtistAppearance struct {
	ArtistID        int    `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

// VenueAppearance is a show as seen from an artist's page.
type VenueAppearance struct {
	VenueID        int    `json:"venue_id"`
	VenueName      string `json:"venue_name"`
	VenueImageLink string `json:"venue_image_link"`
	StartTime      string `json:"start_time"`
}

// Partition splits shows into those that started before now and those that
// start after it, each ordered by start time. A show starting exactly at now
// is in neither.
func Partition(list []*models.Show, now time.Time) (past, upcoming []*models.Show) {
	past = []*models.Show{}
	upcoming = []*models.Show{}
	for _, show := range list {
		switch {
		case show.StartTime.Before(now):
			past = append(past, show)
		case show.StartTime.After(now):
			upcoming = append(upcoming, show)
		}
	}
	sortByStartTime(past)
	sortByStartTime(upcoming)
	return past, upcoming
}

// CountUpcoming counts the shows starting strictly after now.
func CountUpcoming(list []*models.Show, now time.Time) int {
	n := 0
	for _, show := range list {
		if show.StartTime.After(now) {
			n++
		}
	}
	return n
}

// ArtistAppearances expects each show's Artist relation to be loaded.
func ArtistAppearances(list []*models.Show) []*ArtistAppearance {
	appearances := make([]*ArtistAppearance, 0, len(list))
	for _, show := range list {
		a := &ArtistAppearance{
			ArtistID:  show.ArtistID,
			StartTime: show.FormattedStartTime(),
		}
		if show.Artist != nil {
			a.ArtistName = show.Artist.Name
			a.ArtistImageLink = show.Artist.ImageLink
		}
		appearances = append(appearances, a)
	}
	return appearances
}

// VenueAppearances expects each show's Venue relation to be loaded.
func VenueAppearances(list []*models.Show) []*VenueAppearance {
	appearances := make([]*VenueAppearance, 0, len(list))
	for _, show := range list {
		a := &VenueAppearance{
			VenueID:   show.VenueID,
			StartTime: show.FormattedStartTime(),
		}
		if show.Venue != nil {
			a.VenueName = show.Venue.Name
			a.VenueImageLink = show.Venue.ImageLink
		}
		appearances = append(appearances, a)
	}
	return appearances
}

func sortByStartTime(list []*models.Show) {
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].StartTime.Equal(list[j].StartTime) {
			return list[i].ID < list[j].ID
		}
		return list[i].StartTime.Before(list[j].StartTime)
	})
}
