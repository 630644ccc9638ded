package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/stylesense/internal/kv"
	"github.com/jonathan/stylesense/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCmd executes the root command with args and returns its stdout.
func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestCategoriesCommand(t *testing.T) {
	out, err := runCmd(t, "categories")
	require.NoError(t, err)
	assert.Contains(t, out, "OUTFIT CATEGORIES")
	assert.Contains(t, out, "1. Casual")

	out, err = runCmd(t, "categories", "--json")
	require.NoError(t, err)
	var categories []types.OutfitCategory
	require.NoError(t, json.Unmarshal([]byte(out), &categories))
	assert.Equal(t, types.Categories(), categories)
}

func TestOutfitsCommand(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		out, err := runCmd(t, "outfits", "--category", "business")
		require.NoError(t, err)
		assert.Contains(t, out, "BUSINESS OUTFITS")
		assert.Contains(t, out, "Navy blue blazer")
	})

	t.Run("json", func(t *testing.T) {
		out, err := runCmd(t, "outfits", "-c", "Winter", "--json")
		require.NoError(t, err)
		var result types.CategoryOutfits
		require.NoError(t, json.Unmarshal([]byte(out), &result))
		assert.Equal(t, types.CategoryWinter, result.Category)
		assert.NotEmpty(t, result.Additional)
	})

	t.Run("all", func(t *testing.T) {
		out, err := runCmd(t, "outfits", "--all", "--json")
		require.NoError(t, err)
		var results []types.CategoryOutfits
		require.NoError(t, json.Unmarshal([]byte(out), &results))
		assert.Len(t, results, 6)
	})

	t.Run("unknown category", func(t *testing.T) {
		_, err := runCmd(t, "outfits", "--category", "gala")
		var notFound *types.CategoryNotFoundError
		require.ErrorAs(t, err, &notFound)
	})

	t.Run("no selector", func(t *testing.T) {
		_, err := runCmd(t, "outfits")
		assert.Error(t, err)
	})

	t.Run("both selectors", func(t *testing.T) {
		_, err := runCmd(t, "outfits", "--all", "--category", "Party")
		assert.Error(t, err)
	})
}

func TestRecommendCommand(t *testing.T) {
	t.Run("seeded runs repeat", func(t *testing.T) {
		first, err := runCmd(t, "recommend", "--seed", "42", "--json")
		require.NoError(t, err)
		second, err := runCmd(t, "recommend", "--seed", "42", "--json", "--weather", "snow", "--skin-tone", "Dark")
		require.NoError(t, err)
		assert.JSONEq(t, first, second, "attributes do not affect the pick")

		var s types.Suggestion
		require.NoError(t, json.Unmarshal([]byte(first), &s))
		assert.Contains(t, []string{"Casual Summer Look", "Business Casual Ensemble", "Rainy Day Outfit"}, s.OutfitName)
	})

	t.Run("text with reference", func(t *testing.T) {
		out, err := runCmd(t, "recommend", "--seed", "7", "--verbose")
		require.NoError(t, err)
		assert.Contains(t, out, "Clothing:")
		assert.Contains(t, out, "COLORS BY SKIN TONE")
	})

	t.Run("config file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"skin_tone": "Fair", "seed": 42, "json": true}`), 0644))

		fromFile, err := runCmd(t, "recommend", "--config", path)
		require.NoError(t, err)
		fromFlags, err := runCmd(t, "recommend", "--seed", "42", "--json")
		require.NoError(t, err)
		assert.JSONEq(t, fromFlags, fromFile)
	})

	t.Run("invalid config file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"skin_tone": "Olive"}`), 0644))

		_, err := runCmd(t, "recommend", "--config", path)
		var refErr *types.ReferenceNotFoundError
		assert.ErrorAs(t, err, &refErr)
	})

	t.Run("missing config file", func(t *testing.T) {
		_, err := runCmd(t, "recommend", "--config", filepath.Join(t.TempDir(), "nope.json"))
		assert.Error(t, err)
	})
}

func TestReferenceCommand(t *testing.T) {
	out, err := runCmd(t, "reference", "--json")
	require.NoError(t, err)

	var ref referenceOutput
	require.NoError(t, json.Unmarshal([]byte(out), &ref))
	assert.Len(t, ref.SkinTones, 3)
	assert.Len(t, ref.BodyTypes, 4)

	out, err = runCmd(t, "reference")
	require.NoError(t, err)
	assert.Contains(t, out, "STYLE GUIDE BY BODY TYPE")
}

func TestValidateCommand(t *testing.T) {
	out, err := runCmd(t, "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "catalog records are valid")

	good := filepath.Join(t.TempDir(), "good.json")
	require.NoError(t, os.WriteFile(good, []byte(`{
		"category": "Party",
		"description": "Night out",
		"items": ["Sequin top"],
		"imageUrl": "https://example.com/p.jpg"
	}`), 0644))
	out, err = runCmd(t, "validate", "--file", good)
	require.NoError(t, err)
	assert.Contains(t, out, "is a valid outfit record")

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"category": "Party"}`), 0644))
	_, err = runCmd(t, "validate", "--file", bad)
	assert.Error(t, err)
}

func TestOpenStore_MemoryWithoutDatabaseURL(t *testing.T) {
	store, closeStore, err := openStore(context.Background(), "")
	require.NoError(t, err)
	defer closeStore()

	_, ok := store.(*kv.Memory)
	assert.True(t, ok)
}

func TestRunServe_RequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	os.Unsetenv("JWT_SECRET")
	t.Setenv("LOG_FORMAT", "json")

	err := runServe(context.Background(), 0, true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestRunServe_StopsOnCancelledContext(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-for-jwt-signing-minimum-32-bytes")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("BCRYPT_COST", "10")
	t.Setenv("RATE_LIMIT_ENABLED", "false")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, runServe(ctx, 0, true))
}
