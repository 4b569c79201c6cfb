package cities

import (
	"strings"

	"github.com/goliatone/go-formflow/pkg/suggest"
)

// Option is a single JSON search result.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Score int    `json:"score,omitempty"`
}

// Search ranks the city list against a query with the fuzzy scorer: prefix
// and substring bonuses minus an edit-distance penalty, ties keeping list
// order. An empty query returns nothing unless EmptySearchTop is configured,
// in which case the head of the curated list is served.
func Search(list []string, query string, limit int, opts Options) []suggest.Match {
	limit = clampLimit(limit, opts)
	if limit == 0 {
		return nil
	}

	query = strings.TrimSpace(query)
	if query == "" {
		if opts.EmptySearchMode != EmptySearchTop {
			return nil
		}
		matches := suggest.Rank("", list)
		if len(matches) > limit {
			matches = matches[:limit]
		}
		return matches
	}

	matches := suggest.Rank(query, list)
	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

// SearchOptions maps ranked matches into JSON options.
func SearchOptions(list []string, query string, limit int, opts Options) []Option {
	matches := Search(list, query, limit, opts)
	if len(matches) == 0 {
		return nil
	}

	out := make([]Option, 0, len(matches))
	for _, match := range matches {
		out = append(out, Option{Value: match.Label, Label: match.Label, Score: match.Score})
	}
	return out
}
