// Package recommend answers outfit recommendation requests from the catalog.
package recommend

import (
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/jonathan/stylesense/internal/types"
)

// Catalog is the read-only view of the outfit catalog the service needs.
type Catalog interface {
	ListCategories() []types.OutfitCategory
	Primary(category types.OutfitCategory) (types.OutfitRecord, error)
	Additional(category types.OutfitCategory) ([]types.OutfitRecord, error)
}

// Chooser picks an index in [0, n). *rand.Rand satisfies it.
type Chooser interface {
	IntN(n int) int
}

// Service implements the category-exact and attribute-driven recommendation modes.
type Service struct {
	catalog    Catalog
	chooser    Chooser
	candidates []types.Suggestion
}

// NewService creates a Service over the catalog using chooser for random picks.
func NewService(catalog Catalog, chooser Chooser) *Service {
	return &Service{
		catalog:    catalog,
		chooser:    chooser,
		candidates: candidateSuggestions(),
	}
}

// ByCategory returns the primary record and variants for a category.
// The result is deterministic.
func (s *Service) ByCategory(category types.OutfitCategory) (types.CategoryOutfits, error) {
	primary, err := s.catalog.Primary(category)
	if err != nil {
		return types.CategoryOutfits{}, err
	}
	additional, err := s.catalog.Additional(category)
	if err != nil {
		return types.CategoryOutfits{}, err
	}
	return types.CategoryOutfits{
		Category:   category,
		Primary:    primary,
		Additional: additional,
	}, nil
}

// Try returns category-exact results for every category in display order.
func (s *Service) Try() ([]types.CategoryOutfits, error) {
	categories := s.catalog.ListCategories()
	out := make([]types.CategoryOutfits, 0, len(categories))
	for _, c := range categories {
		result, err := s.ByCategory(c)
		if err != nil {
			return nil, fmt.Errorf("failed to look up %s: %w", c, err)
		}
		out = append(out, result)
	}
	return out, nil
}

// ByAttributes picks one of the fixed candidate suggestions uniformly at random.
//
// The attributes are collected by the recommendation form but do not
// influence the pick.
func (s *Service) ByAttributes(_ types.Attributes) types.Suggestion {
	idx := s.chooser.IntN(len(s.candidates))
	return s.candidates[idx].Clone()
}

// Candidates returns the fixed suggestion list ByAttributes draws from.
func (s *Service) Candidates() []types.Suggestion {
	out := make([]types.Suggestion, 0, len(s.candidates))
	for _, c := range s.candidates {
		out = append(out, c.Clone())
	}
	return out
}

// NewSeededChooser returns a deterministic chooser for a seed.
func NewSeededChooser(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// LockedChooser serializes access to a Chooser that is not safe for concurrent use.
type LockedChooser struct {
	mu    sync.Mutex
	inner Chooser
}

// NewLockedChooser wraps inner with a mutex.
func NewLockedChooser(inner Chooser) *LockedChooser {
	return &LockedChooser{inner: inner}
}

// IntN implements Chooser.
func (c *LockedChooser) IntN(n int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inner.IntN(n)
}
