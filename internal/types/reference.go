package types

import (
	"fmt"
	"strings"
)

// SkinTone is a coarse skin tone used to pick flattering colors.
type SkinTone string

// Supported skin tones.
const (
	SkinToneFair   SkinTone = "Fair"
	SkinToneMedium SkinTone = "Medium"
	SkinToneDark   SkinTone = "Dark"
)

// SkinTones returns all skin tones in canonical order.
func SkinTones() []SkinTone {
	return []SkinTone{SkinToneFair, SkinToneMedium, SkinToneDark}
}

// ParseSkinTone accepts any casing of a skin tone name ("fair", "Fair").
func ParseSkinTone(s string) (SkinTone, error) {
	for _, t := range SkinTones() {
		if strings.EqualFold(string(t), strings.TrimSpace(s)) {
			return t, nil
		}
	}
	return "", &ReferenceNotFoundError{Kind: "skin tone", Value: s}
}

// BodyType is a coarse body shape used for style guidance.
type BodyType string

// Supported body types.
const (
	BodyTypeSlim     BodyType = "Slim"
	BodyTypeAthletic BodyType = "Athletic"
	BodyTypeAverage  BodyType = "Average"
	BodyTypePlusSize BodyType = "Plus Size"
)

// BodyTypes returns all body types in canonical order.
func BodyTypes() []BodyType {
	return []BodyType{BodyTypeSlim, BodyTypeAthletic, BodyTypeAverage, BodyTypePlusSize}
}

// ParseBodyType accepts display names and form values, ignoring case and
// spacing, so "Plus Size", "plusSize" and "plus-size" all resolve.
func ParseBodyType(s string) (BodyType, error) {
	key := normalizeKey(s)
	for _, b := range BodyTypes() {
		if normalizeKey(string(b)) == key {
			return b, nil
		}
	}
	return "", &ReferenceNotFoundError{Kind: "body type", Value: s}
}

func normalizeKey(s string) string {
	r := strings.NewReplacer(" ", "", "-", "", "_", "")
	return strings.ToLower(r.Replace(strings.TrimSpace(s)))
}

// StyleGuide lists what to wear and what to avoid for a body type.
type StyleGuide struct {
	Dos   []string `json:"dos"`
	Donts []string `json:"donts"`
}

// ReferenceNotFoundError reports a skin tone or body type outside its table.
type ReferenceNotFoundError struct {
	Kind  string
	Value string
}

func (e *ReferenceNotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.Value)
}

// SkinTonePalette pairs a skin tone with its recommended colors.
type SkinTonePalette struct {
	SkinTone SkinTone `json:"skinTone"`
	Colors   []string `json:"colors"`
}

// BodyTypeGuide pairs a body type with its style guide.
type BodyTypeGuide struct {
	BodyType BodyType `json:"bodyType"`
	StyleGuide
}
