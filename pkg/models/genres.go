package models

import (
	"strings"

	"github.com/pkg/errors"
)

const genreSeparator = ","

// SplitGenres decomposes a stored genre string into its tokens. Blank tokens
// are dropped, so an empty string yields an empty list rather than [""].
func SplitGenres(stored string) []string {
	genres := []string{}
	for _, token := range strings.Split(stored, genreSeparator) {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		genres = append(genres, token)
	}
	return genres
}

// JoinGenres encodes genres into their stored form. A genre containing the
// separator can't be represented and is rejected.
func JoinGenres(genres []string) (string, error) {
	tokens := make([]string, 0, len(genres))
	for _, genre := range genres {
		genre = strings.TrimSpace(genre)
		if genre == "" {
			continue
		}
		if strings.Contains(genre, genreSeparator) {
			return "", errors.Errorf("genre %q can't contain %q", genre, genreSeparator)
		}
		tokens = append(tokens, genre)
	}
	return strings.Join(tokens, genreSeparator), nil
}
