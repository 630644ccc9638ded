// Package catalog holds the static outfit reference data and its read-only accessors.
package catalog

import (
	"slices"

	"github.com/jonathan/stylesense/internal/types"
)

// Store is an immutable table of outfit records and style reference data.
// All accessors return copies; the table is never mutated after New returns.
type Store struct {
	primary    map[types.OutfitCategory]types.OutfitRecord
	additional map[types.OutfitCategory][]types.OutfitRecord
	colors     map[types.SkinTone][]string
	guides     map[types.BodyType]types.StyleGuide
}

// New builds the catalog. Callers construct it once at startup and share it.
func New() *Store {
	primary := primaryOutfits()
	for c, rec := range primary {
		rec.Category = c
		primary[c] = rec
	}

	additional := additionalOutfits()
	for c, recs := range additional {
		for i := range recs {
			recs[i].Category = c
		}
	}

	return &Store{
		primary:    primary,
		additional: additional,
		colors:     skinToneColors(),
		guides:     bodyTypeGuides(),
	}
}

// ListCategories returns the six categories in canonical display order.
func (s *Store) ListCategories() []types.OutfitCategory {
	return types.Categories()
}

// Primary returns the canonical record for a category.
func (s *Store) Primary(category types.OutfitCategory) (types.OutfitRecord, error) {
	rec, ok := s.primary[category]
	if !ok {
		return types.OutfitRecord{}, &types.CategoryNotFoundError{Category: category.String()}
	}
	return rec.Clone(), nil
}

// Additional returns the named variants for a category, or an empty slice
// when none are authored.
func (s *Store) Additional(category types.OutfitCategory) ([]types.OutfitRecord, error) {
	if !category.Valid() {
		return nil, &types.CategoryNotFoundError{Category: category.String()}
	}
	recs := s.additional[category]
	out := make([]types.OutfitRecord, 0, len(recs))
	for _, rec := range recs {
		out = append(out, rec.Clone())
	}
	return out, nil
}

// All returns every record: each category's primary followed by its variants.
func (s *Store) All() []types.OutfitRecord {
	var out []types.OutfitRecord
	for _, c := range types.Categories() {
		out = append(out, s.primary[c].Clone())
		for _, rec := range s.additional[c] {
			out = append(out, rec.Clone())
		}
	}
	return out
}

// SkinTones returns the tones present in the color table.
func (s *Store) SkinTones() []types.SkinTone {
	return types.SkinTones()
}

// SkinToneColors returns the colors recommended for a skin tone.
func (s *Store) SkinToneColors(tone types.SkinTone) ([]string, error) {
	colors, ok := s.colors[tone]
	if !ok {
		return nil, &types.ReferenceNotFoundError{Kind: "skin tone", Value: string(tone)}
	}
	return slices.Clone(colors), nil
}

// BodyTypes returns the body types present in the guide table.
func (s *Store) BodyTypes() []types.BodyType {
	return types.BodyTypes()
}

// BodyTypeGuide returns the dos and don'ts for a body type.
func (s *Store) BodyTypeGuide(body types.BodyType) (types.StyleGuide, error) {
	guide, ok := s.guides[body]
	if !ok {
		return types.StyleGuide{}, &types.ReferenceNotFoundError{Kind: "body type", Value: string(body)}
	}
	return types.StyleGuide{
		Dos:   slices.Clone(guide.Dos),
		Donts: slices.Clone(guide.Donts),
	}, nil
}

// Palettes returns the color table in canonical skin tone order.
func (s *Store) Palettes() []types.SkinTonePalette {
	out := make([]types.SkinTonePalette, 0, len(s.colors))
	for _, tone := range types.SkinTones() {
		colors, ok := s.colors[tone]
		if !ok {
			continue
		}
		out = append(out, types.SkinTonePalette{SkinTone: tone, Colors: slices.Clone(colors)})
	}
	return out
}

// Guides returns the style guide table in canonical body type order.
func (s *Store) Guides() []types.BodyTypeGuide {
	out := make([]types.BodyTypeGuide, 0, len(s.guides))
	for _, body := range types.BodyTypes() {
		guide, ok := s.guides[body]
		if !ok {
			continue
		}
		out = append(out, types.BodyTypeGuide{
			BodyType: body,
			StyleGuide: types.StyleGuide{
				Dos:   slices.Clone(guide.Dos),
				Donts: slices.Clone(guide.Donts),
			},
		})
	}
	return out
}
