package types

import "slices"

// OutfitRecord is one authored outfit suggestion.
// Items are in display order.
type OutfitRecord struct {
	Category    OutfitCategory `json:"category"`
	Name        string         `json:"name,omitempty"`
	Description string         `json:"description"`
	Items       []string       `json:"items"`
	ImageURL    string         `json:"imageUrl"`
}

// Clone returns a deep copy of the record.
func (r OutfitRecord) Clone() OutfitRecord {
	r.Items = slices.Clone(r.Items)
	return r
}

// CategoryOutfits is the category-exact lookup result: the canonical record
// for a category plus its named variants.
type CategoryOutfits struct {
	Category   OutfitCategory `json:"category"`
	Primary    OutfitRecord   `json:"primary"`
	Additional []OutfitRecord `json:"additional"`
}
