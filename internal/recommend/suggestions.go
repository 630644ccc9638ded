package recommend

import "github.com/jonathan/stylesense/internal/types"

func candidateSuggestions() []types.Suggestion {
	return []types.Suggestion{
		{
			OutfitName:         "Casual Summer Look",
			ClothingItems:      []string{"Light blue linen shirt", "Beige chino shorts", "White canvas sneakers", "Minimal brown leather watch"},
			RecommendedColors:  []string{"Light blue", "Beige", "White", "Earth tones"},
			WeatherSuitability: "Perfect for warm and sunny days. The lightweight linen will keep you cool while still looking stylish.",
			StyleTips:          "Roll up the sleeves for a more relaxed look. Pair with sunglasses for both style and sun protection.",
		},
		{
			OutfitName:         "Business Casual Ensemble",
			ClothingItems:      []string{"Navy blue blazer", "Light blue oxford shirt", "Gray chinos", "Brown leather loafers"},
			RecommendedColors:  []string{"Navy", "Light blue", "Gray", "Brown"},
			WeatherSuitability: "Suitable for mild to warm weather. The blazer can be removed if temperatures rise.",
			StyleTips:          "Keep the blazer unbuttoned for a more relaxed look. Add a pocket square for a touch of sophistication.",
		},
		{
			OutfitName:         "Rainy Day Outfit",
			ClothingItems:      []string{"Dark wash jeans", "Charcoal sweater", "Waterproof jacket", "Leather boots"},
			RecommendedColors:  []string{"Dark blue", "Charcoal", "Black", "Dark brown"},
			WeatherSuitability: "Designed for rainy conditions. The waterproof jacket and boots will keep you dry and comfortable.",
			StyleTips:          "Layer a t-shirt under the sweater for temperature control. Cuff the jeans slightly to avoid getting them wet.",
		},
	}
}
