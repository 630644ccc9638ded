package types

import "slices"

// Attributes are the physical and weather attributes collected by the
// recommendation form. Values are free text and are not validated.
type Attributes struct {
	Height   string `json:"height"`
	Weight   string `json:"weight"`
	HipSize  string `json:"hipSize"`
	SkinTone string `json:"skinTone"`
	BodyType string `json:"bodyType"`
	Weather  string `json:"weather"`
}

// Suggestion is an attribute-driven outfit recommendation.
type Suggestion struct {
	OutfitName         string   `json:"outfitName"`
	ClothingItems      []string `json:"clothingItems"`
	RecommendedColors  []string `json:"recommendedColors"`
	WeatherSuitability string   `json:"weatherSuitability"`
	StyleTips          string   `json:"styleTips"`
}

// Clone returns a deep copy of the suggestion.
func (s Suggestion) Clone() Suggestion {
	s.ClothingItems = slices.Clone(s.ClothingItems)
	s.RecommendedColors = slices.Clone(s.RecommendedColors)
	return s
}
