package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/jonathan/stylesense/internal/types"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// CategoriesResponse lists the outfit categories in display order.
type CategoriesResponse struct {
	Categories []types.OutfitCategory `json:"categories"`
}

// TryResponse holds the primary outfit and variants of every category.
type TryResponse struct {
	Results []types.CategoryOutfits `json:"results"`
}

// SkinTonesResponse holds the color table.
type SkinTonesResponse struct {
	SkinTones []types.SkinTonePalette `json:"skinTones"`
}

// BodyTypesResponse holds the style guide table.
type BodyTypesResponse struct {
	BodyTypes []types.BodyTypeGuide `json:"bodyTypes"`
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleListCategories returns the six categories in display order
func (s *Server) handleListCategories(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, CategoriesResponse{Categories: s.catalog.ListCategories()})
}

// handleCategoryOutfits answers the category-exact lookup
func (s *Server) handleCategoryOutfits(w http.ResponseWriter, r *http.Request) {
	category, err := types.ParseCategory(r.PathValue("category"))
	if err != nil {
		writeError(w, HTTPStatus(err), err.Error())
		return
	}

	result, err := s.recommender.ByCategory(category)
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// handleTry returns every category's outfits, as shown on the photo try-on page
func (s *Server) handleTry(w http.ResponseWriter, r *http.Request) {
	results, err := s.recommender.Try()
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, TryResponse{Results: results})
}

// handleSkinTones returns the skin tone color table
func (s *Server) handleSkinTones(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, SkinTonesResponse{SkinTones: s.catalog.Palettes()})
}

// handleBodyTypes returns the body type style guide table
func (s *Server) handleBodyTypes(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, BodyTypesResponse{BodyTypes: s.catalog.Guides()})
}

// handleRecommend answers the attribute-driven lookup. Every field is
// optional and an empty body is accepted.
func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	var attrs types.Attributes
	if err := json.NewDecoder(r.Body).Decode(&attrs); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	suggestion := s.recommender.ByAttributes(attrs)
	zerolog.Ctx(r.Context()).Debug().
		Str("outfit", suggestion.OutfitName).
		Str("weather", attrs.Weather).
		Msg("attribute recommendation")
	writeJSON(w, http.StatusOK, suggestion)
}

func (s *Server) internalError(w http.ResponseWriter, r *http.Request, err error) {
	zerolog.Ctx(r.Context()).Error().Err(err).Msg("request failed")
	writeError(w, http.StatusInternalServerError, "Internal server error")
}

// writeJSON writes a JSON response
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// headers are already sent
		log.Error().Err(err).Msg("failed to encode JSON response")
	}
}

// writeError writes an error JSON response
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
