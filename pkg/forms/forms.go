// Package forms describes the create and edit forms so a client can render
// them: field names, required flags and the allowed choices.
package forms

import (
	"slices"
	"time"

	"github.com/stagebook/stagebook/pkg/models"
)

const (
	TypeText        = "text"
	TypeSelect      = "select"
	TypeMultiSelect = "multiselect"
	TypeDateTime    = "datetime"
	TypeNumber      = "number"
)

const (
	SeekingYes = "Yes"
	SeekingNo  = "No"
)

// States lists the US state codes offered by the state select, DC included.
var States = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "DC", "FL",
	"GA", "HI", "ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME",
	"MT", "NE", "NV", "NH", "NJ", "NM", "NY", "NC", "ND", "OH",
	"OK", "OR", "MD", "MA", "MI", "MN", "MS", "MO", "PA", "RI",
	"SC", "SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI",
	"WY",
}

// Genres is the genre catalogue offered by the genres multi-select.
var Genres = []string{
	"Alternative", "Blues", "Classical", "Country", "Electronic",
	"Folk", "Funk", "Hip-Hop", "Heavy Metal", "Instrumental", "Jazz",
	"Musical Theatre", "Pop", "Punk", "R&B", "Reggae", "Rock n Roll",
	"Soul", "Other",
}

type Choice struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type Field struct {
	Name     string   `json:"name"`
	Label    string   `json:"label"`
	Type     string   `json:"type"`
	Required bool     `json:"required"`
	Choices  []Choice `json:"choices,omitempty"`
	Default  any      `json:"default,omitempty"`
}

type Form struct {
	Action string         `json:"action"`
	Method string         `json:"method"`
	Fields []*Field       `json:"fields"`
	Values map[string]any `json:"values,omitempty"`
}

// WithValues pre-fills the form with an entity's current values.
func (f *Form) WithValues(values map[string]any) *Form {
	f.Values = values
	return f
}

// Field returns the named field, or nil.
func (f *Form) Field(name string) *Field {
	for _, field := range f.Fields {
		if field.Name == name {
			return field
		}
	}
	return nil
}

func IsState(code string) bool {
	return slices.Contains(States, code)
}

func IsGenre(genre string) bool {
	return slices.Contains(Genres, genre)
}

// SeekingValue converts the Yes/No select into a flag. Anything other than
// "Yes" reads as false.
func SeekingValue(v string) bool {
	return v == SeekingYes
}

// SeekingLabel is the inverse of SeekingValue.
func SeekingLabel(seeking bool) string {
	if seeking {
		return SeekingYes
	}
	return SeekingNo
}

func VenueForm(action string) *Form {
	return &Form{
		Action: action,
		Method: "POST",
		Fields: []*Field{
			text("name", "Name", true),
			text("city", "City", false),
			stateField(),
			text("address", "Address", false),
			text("phone", "Phone", false),
			genresField(),
			seekingField("seeking_talent", "Looking for Talent"),
			text("seeking_description", "Seeking Description", false),
			text("image_link", "Image Link", false),
			text("website", "Website", false),
			text("facebook_link", "Facebook Link", false),
		},
	}
}

func ArtistForm(action string) *Form {
	return &Form{
		Action: action,
		Method: "POST",
		Fields: []*Field{
			text("name", "Name", true),
			text("city", "City", false),
			stateField(),
			text("phone", "Phone", false),
			genresField(),
			seekingField("seeking_venue", "Looking for Venues"),
			text("seeking_description", "Seeking Description", false),
			text("image_link", "Image Link", false),
			text("website", "Website", false),
			text("facebook_link", "Facebook Link", false),
		},
	}
}

// ShowForm pre-fills the start time with now.
func ShowForm(action string, now time.Time) *Form {
	return &Form{
		Action: action,
		Method: "POST",
		Fields: []*Field{
			{Name: "artist_id", Label: "Artist ID", Type: TypeNumber, Required: true},
			{Name: "venue_id", Label: "Venue ID", Type: TypeNumber, Required: true},
			{Name: "start_time", Label: "Start Time", Type: TypeDateTime, Required: true, Default: models.FormatStartTime(now)},
		},
	}
}

func text(name, label string, required bool) *Field {
	return &Field{Name: name, Label: label, Type: TypeText, Required: required}
}

func stateField() *Field {
	return &Field{Name: "state", Label: "State", Type: TypeSelect, Choices: choices(States)}
}

func genresField() *Field {
	return &Field{Name: "genres", Label: "Genres", Type: TypeMultiSelect, Choices: choices(Genres)}
}

func seekingField(name, label string) *Field {
	return &Field{
		Name:    name,
		Label:   label,
		Type:    TypeSelect,
		Choices: choices([]string{SeekingYes, SeekingNo}),
		Default: SeekingNo,
	}
}

func choices(values []string) []Choice {
	c := make([]Choice, 0, len(values))
	for _, v := range values {
		c = append(c, Choice{Value: v, Label: v})
	}
	return c
}
