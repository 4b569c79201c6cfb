package cities

import (
	"context"

	"github.com/goliatone/go-formflow/pkg/suggest"
)

// SuggestSource exposes the embedded city list as a suggestion source for
// form sessions. The scope is ignored; the city field is the cascade anchor
// itself.
func SuggestSource() suggest.Source {
	return suggest.SourceFunc(func(ctx context.Context, _ string, _ suggest.Scope) ([]suggest.Candidate, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		list, err := DefaultCities()
		if err != nil {
			return nil, err
		}
		candidates := make([]suggest.Candidate, 0, len(list))
		for _, city := range list {
			candidates = append(candidates, suggest.Candidate{Value: city})
		}
		return candidates, nil
	})
}
