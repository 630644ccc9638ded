package catalog

import (
	"net/url"
	"testing"

	"github.com/jonathan/stylesense/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCategories(t *testing.T) {
	store := New()

	names := make([]string, 0, 6)
	for _, c := range store.ListCategories() {
		names = append(names, c.String())
	}
	assert.Equal(t, []string{"Casual", "Party", "Business", "Summer", "Winter", "Sportswear"}, names)
}

func TestPrimary_EveryCategory(t *testing.T) {
	store := New()

	for _, c := range store.ListCategories() {
		t.Run(c.String(), func(t *testing.T) {
			rec, err := store.Primary(c)
			require.NoError(t, err)
			assert.Equal(t, c, rec.Category)
			assert.NotEmpty(t, rec.Description)
			assert.GreaterOrEqual(t, len(rec.Items), 1)
			assert.Empty(t, rec.Name, "primary records are unnamed")
		})
	}
}

func TestPrimary_Business(t *testing.T) {
	rec, err := New().Primary(types.CategoryBusiness)
	require.NoError(t, err)

	assert.Equal(t, "Professional attire that conveys confidence and competence.", rec.Description)
	assert.Len(t, rec.Items, 5)
	assert.Contains(t, rec.Items, "Navy blue blazer")
}

func TestPrimary_Sportswear(t *testing.T) {
	rec, err := New().Primary(types.CategorySportswear)
	require.NoError(t, err)

	require.Len(t, rec.Items, 4)
	assert.Equal(t, "Black moisture-wicking t-shirt", rec.Items[0])
}

func TestPrimary_UnknownCategory(t *testing.T) {
	_, err := New().Primary(types.OutfitCategory(0))
	var notFound *types.CategoryNotFoundError
	require.ErrorAs(t, err, &notFound)

	_, err = New().Additional(types.OutfitCategory(99))
	require.ErrorAs(t, err, &notFound)
}

func TestAdditional_Summer(t *testing.T) {
	recs, err := New().Additional(types.CategorySummer)
	require.NoError(t, err)

	names := make([]string, 0, len(recs))
	for _, r := range recs {
		assert.Equal(t, types.CategorySummer, r.Category)
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"Beach Day", "Summer BBQ", "Summer Evening"}, names)
}

func TestAdditional_Idempotent(t *testing.T) {
	store := New()
	for _, c := range store.ListCategories() {
		first, err := store.Additional(c)
		require.NoError(t, err)
		second, err := store.Additional(c)
		require.NoError(t, err)
		assert.Equal(t, first, second, c.String())
	}
}

func TestAdditional_EmptyWhenNoVariants(t *testing.T) {
	store := &Store{
		primary:    primaryOutfits(),
		additional: map[types.OutfitCategory][]types.OutfitRecord{},
	}
	recs, err := store.Additional(types.CategoryCasual)
	require.NoError(t, err)
	assert.NotNil(t, recs)
	assert.Empty(t, recs)
}

func TestAccessorsReturnCopies(t *testing.T) {
	store := New()

	rec, err := store.Primary(types.CategoryCasual)
	require.NoError(t, err)
	rec.Items[0] = "mutated"

	again, err := store.Primary(types.CategoryCasual)
	require.NoError(t, err)
	assert.Equal(t, "Light blue Oxford button-down shirt", again.Items[0])

	variants, err := store.Additional(types.CategoryCasual)
	require.NoError(t, err)
	variants[0].Items[0] = "mutated"
	variants, err = store.Additional(types.CategoryCasual)
	require.NoError(t, err)
	assert.Equal(t, "Cream henley shirt", variants[0].Items[0])

	colors, err := store.SkinToneColors(types.SkinToneFair)
	require.NoError(t, err)
	colors[0] = "mutated"
	colors, err = store.SkinToneColors(types.SkinToneFair)
	require.NoError(t, err)
	assert.Equal(t, "Navy", colors[0])
}

func TestAll_RecordsAreWellFormed(t *testing.T) {
	records := New().All()
	assert.Len(t, records, 24)

	for _, rec := range records {
		assert.True(t, rec.Category.Valid())
		assert.NotEmpty(t, rec.Description)
		require.NotEmpty(t, rec.Items)
		for _, item := range rec.Items {
			assert.NotEmpty(t, item)
		}

		u, err := url.Parse(rec.ImageURL)
		require.NoError(t, err, rec.ImageURL)
		assert.Equal(t, "https", u.Scheme)
		assert.NotEmpty(t, u.Host)
	}
}

func TestReferenceTables(t *testing.T) {
	store := New()

	for _, tone := range store.SkinTones() {
		colors, err := store.SkinToneColors(tone)
		require.NoError(t, err)
		assert.Len(t, colors, 6, string(tone))
	}

	for _, body := range store.BodyTypes() {
		guide, err := store.BodyTypeGuide(body)
		require.NoError(t, err)
		assert.NotEmpty(t, guide.Dos, string(body))
		assert.NotEmpty(t, guide.Donts, string(body))
	}

	guide, err := store.BodyTypeGuide(types.BodyTypeAverage)
	require.NoError(t, err)
	assert.Len(t, guide.Donts, 2)

	_, err = store.SkinToneColors("Olive")
	var refErr *types.ReferenceNotFoundError
	require.ErrorAs(t, err, &refErr)

	_, err = store.BodyTypeGuide("Tall")
	require.ErrorAs(t, err, &refErr)
}

func TestPalettesAndGuides_Ordered(t *testing.T) {
	store := New()

	palettes := store.Palettes()
	require.Len(t, palettes, 3)
	assert.Equal(t, types.SkinToneFair, palettes[0].SkinTone)
	assert.Equal(t, types.SkinToneDark, palettes[2].SkinTone)
	assert.Equal(t, "Navy", palettes[0].Colors[0])

	guides := store.Guides()
	require.Len(t, guides, 4)
	assert.Equal(t, types.BodyTypeSlim, guides[0].BodyType)
	assert.Equal(t, types.BodyTypePlusSize, guides[3].BodyType)

	palettes[0].Colors[0] = "Neon"
	guides[0].Dos[0] = "Anything"
	assert.Equal(t, "Navy", store.Palettes()[0].Colors[0])
	assert.Equal(t, "Layered outfits to add volume", store.Guides()[0].Dos[0])
}
