package search

// Summary is a search hit or a row of a grouped listing.
type Summary struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// Result is the response of a name search. SearchTerm echoes the term back so
// a client can re-display it.
type Result struct {
	Count      int        `json:"count"`
	Data       []*Summary `json:"data"`
	SearchTerm string     `json:"search_term"`
}

func NewResult(term string, data []*Summary) *Result {
	if data == nil {
		data = []*Summary{}
	}
	return &Result{
		Count:      len(data),
		Data:       data,
		SearchTerm: term,
	}
}
