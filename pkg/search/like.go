// Package search builds case-insensitive substring filters for name search.
package search

import (
	"strings"

	"github.com/uptrace/bun"
)

// EscapeChar is the LIKE escape character used by ContainsPattern.
const EscapeChar = "!"

var likeEscaper = strings.NewReplacer(
	EscapeChar, EscapeChar+EscapeChar,
	"%", EscapeChar+"%",
	"_", EscapeChar+"_",
)

// ContainsPattern turns a user-supplied term into a LIKE pattern matching any
// value that contains it. Wildcards in the term match literally and the
// pattern is lowercased to pair with LOWER() on the column.
func ContainsPattern(term string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
}

// NameContains filters q to rows whose column contains term, ignoring case.
// An empty term leaves q untouched so every row matches.
func NameContains(q *bun.SelectQuery, column, term string) *bun.SelectQuery {
	if term == "" {
		return q
	}
	return q.Where("LOWER(?) LIKE ? ESCAPE '"+EscapeChar+"'", bun.Ident(column), ContainsPattern(term))
}
