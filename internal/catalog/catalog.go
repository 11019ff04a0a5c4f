// Package catalog provides job profile lookup for the scoring engine.
// Profiles come from a built-in set, optionally replaced or extended by a
// YAML catalog file that can be hot-reloaded.
package catalog

import (
	"sync/atomic"

	"jobfit/internal/errors"
	"jobfit/internal/types"
)

// Catalog is the read contract consumed by the scoring engine and the
// presentation surfaces. Implementations must be immutable.
type Catalog interface {
	Lookup(jobID string) (types.JobProfile, bool)
	ListCategories() []string
	ListJobsByCategory(category string) []types.JobRef
	Jobs() []types.JobRef
}

// Static is an immutable, ordered profile set.
type Static struct {
	profiles []types.JobProfile
	index    map[string]int
}

// NewStatic builds a catalog from an ordered profile list. Keys must be
// unique and labels non-empty; weights must be non-negative. A weight sum
// far from 1.0 is accepted but reported through the returned warnings,
// the catalog is trusted as given and never normalized.
func NewStatic(profiles []types.JobProfile) (*Static, []string, error) {
	index := make(map[string]int, len(profiles))
	var warnings []string

	for i, p := range profiles {
		if p.Key == "" || p.Label == "" {
			return nil, nil, errors.NewConfigError(
				errors.ErrCodeCatalogLoadFailed,
				"job profile requires a key and a label",
				nil,
			).WithContext("index", i)
		}
		if _, exists := index[p.Key]; exists {
			return nil, nil, errors.NewConfigError(
				errors.ErrCodeCatalogLoadFailed,
				"duplicate job profile key: "+p.Key,
				nil,
			)
		}
		w := p.Weights
		if w.Technical < 0 || w.Experience < 0 || w.Projects < 0 || w.Education < 0 {
			return nil, nil, errors.NewConfigError(
				errors.ErrCodeCatalogLoadFailed,
				"job profile weights must be non-negative: "+p.Key,
				nil,
			)
		}
		if sum := w.Sum(); sum < 0.99 || sum > 1.01 {
			warnings = append(warnings, p.Key)
		}
		index[p.Key] = i
	}

	return &Static{profiles: profiles, index: index}, warnings, nil
}

// Lookup resolves a job profile by key.
func (s *Static) Lookup(jobID string) (types.JobProfile, bool) {
	i, ok := s.index[jobID]
	if !ok {
		return types.JobProfile{}, false
	}
	return s.profiles[i], true
}

// ListCategories returns category names in first-appearance order.
func (s *Static) ListCategories() []string {
	seen := make(map[string]bool)
	categories := []string{}
	for _, p := range s.profiles {
		if !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	return categories
}

// ListJobsByCategory returns the jobs of one category in catalog order.
func (s *Static) ListJobsByCategory(category string) []types.JobRef {
	refs := []types.JobRef{}
	for _, p := range s.profiles {
		if p.Category == category {
			refs = append(refs, types.JobRef{Key: p.Key, Label: p.Label, Category: p.Category})
		}
	}
	return refs
}

// Jobs returns every catalog entry in catalog order.
func (s *Static) Jobs() []types.JobRef {
	refs := make([]types.JobRef, len(s.profiles))
	for i, p := range s.profiles {
		refs[i] = types.JobRef{Key: p.Key, Label: p.Label, Category: p.Category}
	}
	return refs
}

// Store is a Catalog whose underlying profile set can be swapped
// atomically. Readers always see a complete set; a failed reload leaves
// the previous set serving.
type Store struct {
	current atomic.Pointer[Static]
}

// NewStore creates a store serving the given initial catalog.
func NewStore(initial *Static) *Store {
	s := &Store{}
	s.current.Store(initial)
	return s
}

// Replace swaps in a new profile set.
func (s *Store) Replace(next *Static) {
	s.current.Store(next)
}

func (s *Store) Lookup(jobID string) (types.JobProfile, bool) {
	return s.current.Load().Lookup(jobID)
}

func (s *Store) ListCategories() []string {
	return s.current.Load().ListCategories()
}

func (s *Store) ListJobsByCategory(category string) []types.JobRef {
	return s.current.Load().ListJobsByCategory(category)
}

func (s *Store) Jobs() []types.JobRef {
	return s.current.Load().Jobs()
}
