package models

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

// StartTimeLayout is the layout start times are rendered with.
const StartTimeLayout = "2006-01-02 15:04:05"

var startTimeLayouts = []string{
	StartTimeLayout,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
}

type Show struct {
	bun.BaseModel `bun:"table:shows,alias:sh"`

	ID        int       `bun:",pk,autoincrement" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	StartTime time.Time `bun:",notnull" json:"start_time"`
	VenueID   int       `bun:",notnull" json:"venue_id"`
	Venue     *Venue    `bun:"rel:belongs-to,join:venue_id=id" json:"venue,omitempty"`
	ArtistID  int       `bun:",notnull" json:"artist_id"`
	Artist    *Artist   `bun:"rel:belongs-to,join:artist_id=id" json:"artist,omitempty"`
}

// FormattedStartTime renders the start time in UTC as YYYY-MM-DD HH:MM:SS.
func (s *Show) FormattedStartTime() string {
	return FormatStartTime(s.StartTime)
}

func FormatStartTime(t time.Time) string {
	return t.UTC().Format(StartTimeLayout)
}

// ParseStartTime accepts RFC 3339 timestamps as well as the naive layouts
// produced by HTML date-time inputs. Naive values are read as UTC.
func ParseStartTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, errors.New("start time is empty")
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}
	for _, layout := range startTimeLayouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.Errorf("unrecognized start time %q", value)
}
