package suggest

import "context"

// Scope narrows a lookup to the current cascade anchor: district and street
// suggestions are always fetched within a single city.
type Scope struct {
	City string
}

// Source supplies candidate lists for a query. Implementations may call out
// to an external geo service; failures are expected to surface as errors and
// callers degrade them to an empty suggestion list rather than blocking
// input.
type Source interface {
	Lookup(ctx context.Context, query string, scope Scope) ([]Candidate, error)
}

// SourceFunc adapts a plain function to the Source interface.
type SourceFunc func(ctx context.Context, query string, scope Scope) ([]Candidate, error)

func (f SourceFunc) Lookup(ctx context.Context, query string, scope Scope) ([]Candidate, error) {
	return f(ctx, query, scope)
}

// StaticSource exposes a fixed reference list as a Source. The scope is
// ignored; the list is returned as-is and callers rank it.
func StaticSource(values []string) Source {
	candidates := make([]Candidate, 0, len(values))
	for _, value := range values {
		candidates = append(candidates, Candidate{Value: value})
	}
	return SourceFunc(func(ctx context.Context, _ string, _ Scope) ([]Candidate, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return append([]Candidate(nil), candidates...), nil
	})
}
