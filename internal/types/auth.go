package types

import (
	"time"

	"github.com/google/uuid"
)

// CreateUserRequest represents the signup request.
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,notblank"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest represents the login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Measurements are the profile attributes a user keeps on their dashboard.
// Empty strings mean "not provided".
type Measurements struct {
	Height   string `json:"height"`
	Weight   string `json:"weight"`
	HipSize  string `json:"hipSize"`
	SkinTone string `json:"skinTone"`
	BodyType string `json:"bodyType"`
}

// HistoryEntry is one outfit the user saved with a rating.
type HistoryEntry struct {
	ID         uuid.UUID `json:"id"`
	Date       time.Time `json:"date"`
	OutfitName string    `json:"outfitName"`
	Items      []string  `json:"items"`
	Rating     int       `json:"rating"`
}

// AddHistoryRequest records an outfit in the user's history.
type AddHistoryRequest struct {
	OutfitName string   `json:"outfitName" validate:"required"`
	Items      []string `json:"items" validate:"required,min=1,dive,required"`
	Rating     int      `json:"rating" validate:"required,min=1,max=5"`
}

// User represents a user profile for API responses. It never carries the password hash.
type User struct {
	ID           uuid.UUID    `json:"id"`
	Name         string       `json:"name"`
	Email        string       `json:"email"`
	Measurements Measurements `json:"measurements"`
	CreatedAt    time.Time    `json:"createdAt"`
}

// LoginResponse represents the login/signup response with user data and authentication token.
type LoginResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

// Validate checks that skin tone and body type, when set, name known values.
func (m *Measurements) Validate() error {
	if m.SkinTone != "" {
		if _, err := ParseSkinTone(m.SkinTone); err != nil {
			return err
		}
	}
	if m.BodyType != "" {
		if _, err := ParseBodyType(m.BodyType); err != nil {
			return err
		}
	}
	return nil
}
