// Package types provides type definitions for structured data used throughout the stylesense service.
package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

// OutfitCategory is one of the six fixed outfit style groupings.
// The zero value is not a valid category.
type OutfitCategory uint8

// Outfit categories in canonical display order.
const (
	CategoryCasual OutfitCategory = iota + 1
	CategoryParty
	CategoryBusiness
	CategorySummer
	CategoryWinter
	CategorySportswear
)

// categoryNames is indexed by OutfitCategory; index 0 is unused.
var categoryNames = [...]string{
	"",
	"Casual",
	"Party",
	"Business",
	"Summer",
	"Winter",
	"Sportswear",
}

// Categories returns every category in canonical display order.
func Categories() []OutfitCategory {
	return []OutfitCategory{
		CategoryCasual,
		CategoryParty,
		CategoryBusiness,
		CategorySummer,
		CategoryWinter,
		CategorySportswear,
	}
}

// Valid reports whether c is inside the fixed enumeration.
func (c OutfitCategory) Valid() bool {
	return c >= CategoryCasual && c <= CategorySportswear
}

// String returns the display name of the category.
func (c OutfitCategory) String() string {
	if !c.Valid() {
		return fmt.Sprintf("OutfitCategory(%d)", uint8(c))
	}
	return categoryNames[c]
}

// ParseCategory resolves a display name (case-insensitive) to a category.
func ParseCategory(name string) (OutfitCategory, error) {
	trimmed := strings.TrimSpace(name)
	for _, c := range Categories() {
		if strings.EqualFold(categoryNames[c], trimmed) {
			return c, nil
		}
	}
	return 0, &CategoryNotFoundError{Category: name}
}

// MarshalJSON encodes the category as its display name.
func (c OutfitCategory) MarshalJSON() ([]byte, error) {
	if !c.Valid() {
		return nil, &CategoryNotFoundError{Category: c.String()}
	}
	return json.Marshal(categoryNames[c])
}

// UnmarshalJSON decodes a display name, rejecting values outside the enumeration.
func (c *OutfitCategory) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("category must be a string: %w", err)
	}
	parsed, err := ParseCategory(name)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// CategoryNotFoundError reports a category outside the fixed enumeration.
type CategoryNotFoundError struct {
	Category string
}

func (e *CategoryNotFoundError) Error() string {
	return fmt.Sprintf("outfit category not found: %s", e.Category)
}
