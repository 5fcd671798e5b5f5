package logic

import (
	"fmt"

	"github.com/poiesic/retort/compare"
	"github.com/poiesic/retort/selection"
)

// Built-in strategy names recognized by NewResolver.
const (
	ComparatorLevenshtein = "levenshtein_distance"
	ComparatorJaroWinkler = "jaro_winkler_similarity"
	ComparatorJaccard     = "jaccard_similarity"

	SelectorFirst        = "first"
	SelectorRandom       = "random"
	SelectorMostFrequent = "most_frequent"
)

// Resolver maps strategy names to comparison and selection functions,
// so adapter behavior can be chosen from configuration without code
// changes. Registration is not synchronized; register everything before
// handing the resolver to adapters.
type Resolver struct {
	comparators map[string]compare.Func
	selectors   map[string]selection.Func
}

// NewResolver creates a resolver pre-populated with the built-in
// comparators and selection methods.
func NewResolver() *Resolver {
	r := &Resolver{
		comparators: make(map[string]compare.Func),
		selectors:   make(map[string]selection.Func),
	}

	r.RegisterComparator(ComparatorLevenshtein, compare.Levenshtein)
	r.RegisterComparator(ComparatorJaroWinkler, compare.JaroWinkler)
	r.RegisterComparator(ComparatorJaccard, compare.Jaccard)

	r.RegisterSelector(SelectorFirst, selection.First)
	r.RegisterSelector(SelectorRandom, selection.Random)
	r.RegisterSelector(SelectorMostFrequent, selection.MostFrequent)

	return r
}

// RegisterComparator makes a comparison function resolvable by name,
// replacing any previous registration.
func (r *Resolver) RegisterComparator(name string, f compare.Func) {
	r.comparators[name] = f
}

// RegisterSelector makes a selection function resolvable by name,
// replacing any previous registration.
func (r *Resolver) RegisterSelector(name string, f selection.Func) {
	r.selectors[name] = f
}

// ResolveComparator returns the comparison function registered under
// name, or ErrConfiguration naming the unresolved identifier.
func (r *Resolver) ResolveComparator(name string) (compare.Func, error) {
	if f, ok := r.comparators[name]; ok {
		return f, nil
	}
	return nil, fmt.Errorf("%w: unknown comparison function %q", ErrConfiguration, name)
}

// ResolveSelector returns the selection function registered under name,
// or ErrConfiguration naming the unresolved identifier.
func (r *Resolver) ResolveSelector(name string) (selection.Func, error) {
	if f, ok := r.selectors[name]; ok {
		return f, nil
	}
	return nil, fmt.Errorf("%w: unknown selection method %q", ErrConfiguration, name)
}
