package suggest

import (
	"sort"
	"strings"
)

// Scoring weights for Rank. A prefix hit implies a substring hit, so an exact
// candidate scores at least prefixBonus+containsBonus before the distance
// penalty.
const (
	prefixBonus     = 100
	containsBonus   = 50
	distancePenalty = 2
)

// Match is a single ranked suggestion. Payload carries whatever opaque value
// the candidate was registered with.
type Match struct {
	Label   string
	Score   int
	Payload any
}

// Candidate pairs a display value with an opaque payload for ranking.
type Candidate struct {
	Value   string
	Payload any
}

// Rank scores candidates against a query. An empty query returns the full
// reference list unranked in original order. Otherwise each candidate scores
// prefix and substring bonuses minus twice its edit distance to the query;
// candidates scoring zero or less are dropped and the rest are sorted by
// descending score, preserving reference order on ties.
func Rank(query string, candidates []string) []Match {
	wrapped := make([]Candidate, 0, len(candidates))
	for _, candidate := range candidates {
		wrapped = append(wrapped, Candidate{Value: candidate})
	}
	return RankCandidates(query, wrapped)
}

// RankCandidates is Rank over payload-carrying candidates.
func RankCandidates(query string, candidates []Candidate) []Match {
	if len(candidates) == 0 {
		return nil
	}

	query = strings.TrimSpace(query)
	if query == "" {
		out := make([]Match, 0, len(candidates))
		for _, candidate := range candidates {
			out = append(out, Match{Label: candidate.Value, Payload: candidate.Payload})
		}
		return out
	}

	q := strings.ToLower(query)
	matches := make([]Match, 0, len(candidates))
	for _, candidate := range candidates {
		lower := strings.ToLower(candidate.Value)
		score := 0
		if strings.HasPrefix(lower, q) {
			score += prefixBonus
		}
		if strings.Contains(lower, q) {
			score += containsBonus
		}
		score -= distancePenalty * Distance(q, lower)
		if score <= 0 {
			continue
		}
		matches = append(matches, Match{
			Label:   candidate.Value,
			Score:   score,
			Payload: candidate.Payload,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	return matches
}
