package builder

import (
	"context"
	"slices"

	"github.com/heartmarshall/dictbuild/internal/domain"
)

// Strategy builds the entries of one output dictionary.
type Strategy interface {
	Language() domain.Language
	// Source is the provenance label recorded in the manifest.
	Source() string
	Build(ctx context.Context, bc *BuildContext) ([]domain.DictionaryEntry, error)
	// Fixtures returns the fixed entries used in sample mode.
	Fixtures() []domain.DictionaryEntry
}

// Registry maps a language to the strategy that builds it.
type Registry struct {
	strategies map[domain.Language]Strategy
}

// NewRegistry registers strategies; a later strategy for the same language
// replaces an earlier one.
func NewRegistry(strategies ...Strategy) *Registry {
	r := &Registry{strategies: make(map[domain.Language]Strategy, len(strategies))}
	for _, s := range strategies {
		r.strategies[s.Language()] = s
	}
	return r
}

// DefaultRegistry returns the strategies for every supported language.
func DefaultRegistry() *Registry {
	return NewRegistry(
		enZhStrategy{},
		enEnStrategy{},
		zhEnStrategy{},
		jaEnStrategy{},
		jaZhStrategy{},
	)
}

// Dispatch selects the strategy for lang.
func (r *Registry) Dispatch(lang domain.Language) (Strategy, bool) {
	s, ok := r.strategies[lang]
	return s, ok
}

// Languages returns the registered languages in canonical build order,
// followed by any others sorted by identifier.
func (r *Registry) Languages() []domain.Language {
	out := make([]domain.Language, 0, len(r.strategies))
	for _, l := range domain.AllLanguages {
		if _, ok := r.strategies[l]; ok {
			out = append(out, l)
		}
	}

	var extra []domain.Language
	for l := range r.strategies {
		if !slices.Contains(domain.AllLanguages, l) {
			extra = append(extra, l)
		}
	}
	slices.Sort(extra)
	return append(out, extra...)
}
