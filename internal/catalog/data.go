package catalog

import "github.com/jonathan/stylesense/internal/types"

func primaryOutfits() map[types.OutfitCategory]types.OutfitRecord {
	return map[types.OutfitCategory]types.OutfitRecord{
		types.CategoryCasual: {
			Description: "A relaxed yet stylish look perfect for everyday wear.",
			Items: []string{
				"Light blue Oxford button-down shirt",
				"Dark wash slim fit jeans",
				"Brown leather sneakers",
				"Minimalist watch with brown leather strap",
			},
			ImageURL: "https://images.unsplash.com/photo-1603252109303-2751441dd157?q=80&w=1974&auto=format&fit=crop",
		},
		types.CategoryParty: {
			Description: "An elegant outfit that stands out for evening events.",
			Items: []string{
				"Black fitted dress shirt",
				"Charcoal slim fit trousers",
				"Black leather derby shoes",
				"Minimalist silver watch",
			},
			ImageURL: "https://images.unsplash.com/photo-1507679799987-c73779587ccf?q=80&w=2071&auto=format&fit=crop",
		},
		types.CategoryBusiness: {
			Description: "Professional attire that conveys confidence and competence.",
			Items: []string{
				"Navy blue blazer",
				"Light blue dress shirt",
				"Gray wool trousers",
				"Black cap-toe oxford shoes",
				"Burgundy tie with subtle pattern",
			},
			ImageURL: "https://images.unsplash.com/photo-1617127365659-c47fa864d8bc?q=80&w=1974&auto=format&fit=crop",
		},
		types.CategorySummer: {
			Description: "Light, breathable fabrics to keep you cool and stylish.",
			Items: []string{
				"White linen shirt",
				"Light beige chino shorts",
				"Brown leather sandals",
				"Straw hat with navy band",
			},
			ImageURL: "https://images.unsplash.com/photo-1552668693-d0738e00eca8?q=80&w=1974&auto=format&fit=crop",
		},
		types.CategoryWinter: {
			Description: "Warm, layered outfit for cold weather without sacrificing style.",
			Items: []string{
				"Charcoal wool overcoat",
				"Burgundy cable-knit sweater",
				"Dark wash jeans",
				"Brown leather boots",
				"Gray wool scarf",
			},
			ImageURL: "https://images.unsplash.com/photo-1610652492500-ded49ceeb378?q=80&w=1974&auto=format&fit=crop",
		},
		types.CategorySportswear: {
			Description: "Performance-focused attire for active lifestyles.",
			Items: []string{
				"Black moisture-wicking t-shirt",
				"Navy running shorts with compression liner",
				"Athletic performance sneakers",
				"Sports watch with heart rate monitor",
			},
			ImageURL: "https://images.unsplash.com/photo-1581009146145-b5ef050c2e1e?q=80&w=1740&auto=format&fit=crop",
		},
	}
}

func additionalOutfits() map[types.OutfitCategory][]types.OutfitRecord {
	return map[types.OutfitCategory][]types.OutfitRecord{
		types.CategoryCasual: {
			{
				Name:        "Weekend Casual",
				Description: "Perfect for weekend outings and casual meet-ups.",
				Items:       []string{"Cream henley shirt", "Olive chino pants", "White canvas sneakers", "Braided leather bracelet"},
				ImageURL:    "https://images.unsplash.com/photo-1552374196-1ab2a1c593e8?q=80&w=1974&auto=format&fit=crop",
			},
			{
				Name:        "Smart Casual",
				Description: "A step up from basic casual without being formal.",
				Items:       []string{"Navy polo shirt", "Khaki chinos", "Brown leather loafers", "Leather belt matching shoes"},
				ImageURL:    "https://images.unsplash.com/photo-1633280576469-b38f7c007dc9?q=80&w=1974&auto=format&fit=crop",
			},
			{
				Name:        "Streetwear Casual",
				Description: "Urban-inspired look with contemporary elements.",
				Items:       []string{"Graphic t-shirt with minimal design", "Black slim jeans", "High-top sneakers", "Simple chain necklace"},
				ImageURL:    "https://images.unsplash.com/photo-1576566588028-4147f3842259?q=80&w=1964&auto=format&fit=crop",
			},
		},
		types.CategoryParty: {
			{
				Name:        "Cocktail Party",
				Description: "Sophisticated look for upscale evening events.",
				Items:       []string{"Burgundy dress shirt", "Black slim fit dress pants", "Black leather chelsea boots", "Silver minimalist cufflinks"},
				ImageURL:    "https://images.unsplash.com/photo-1617196034183-421b4917c92d?q=80&w=1974&auto=format&fit=crop",
			},
			{
				Name:        "Casual Party",
				Description: "Stylish but relaxed for less formal gatherings.",
				Items:       []string{"Black fitted t-shirt", "Dark blue jeans", "Leather jacket", "Black ankle boots"},
				ImageURL:    "https://images.unsplash.com/photo-1516826957135-700dedea698c?q=80&w=1974&auto=format&fit=crop",
			},
			{
				Name:        "Club Night",
				Description: "Bold style for nightlife and club environments.",
				Items:       []string{"Fitted black button-up with subtle pattern", "Slim dark jeans", "Statement watch", "Leather dress shoes"},
				ImageURL:    "https://images.unsplash.com/photo-1507679799987-c73779587ccf?q=80&w=2071&auto=format&fit=crop",
			},
		},
		types.CategoryBusiness: {
			{
				Name:        "Corporate Executive",
				Description: "Refined look for leadership positions and important meetings.",
				Items:       []string{"Charcoal suit with subtle pinstripe", "Crisp white shirt", "Burgundy tie", "Black oxford shoes", "Silver tie clip"},
				ImageURL:    "https://images.unsplash.com/photo-1553240799-36214670e3be?q=80&w=1974&auto=format&fit=crop",
			},
			{
				Name:        "Business Casual",
				Description: "Professional but approachable style for modern workplaces.",
				Items:       []string{"Light blue button-down shirt", "Navy chinos", "Brown leather belt", "Tan brogues", "No tie"},
				ImageURL:    "https://images.unsplash.com/photo-1583744946564-b52d01a7e152?q=80&w=1974&auto=format&fit=crop",
			},
			{
				Name:        "Creative Professional",
				Description: "Modern business style for creative industries.",
				Items:       []string{"Knit blazer in navy", "Plain white t-shirt", "Slim fit dark jeans", "Leather sneakers", "Minimalist watch"},
				ImageURL:    "https://images.unsplash.com/photo-1596609548086-85bbf8ddb6b9?q=80&w=1970&auto=format&fit=crop",
			},
		},
		types.CategorySummer: {
			{
				Name:        "Beach Day",
				Description: "Comfortable and practical for beach outings.",
				Items:       []string{"Pastel short-sleeve button-up", "Quick-dry swim shorts", "Comfortable flip flops", "Polarized sunglasses"},
				ImageURL:    "https://images.unsplash.com/photo-1565128939070-37168577d6a8?q=80&w=1972&auto=format&fit=crop",
			},
			{
				Name:        "Summer BBQ",
				Description: "Casual yet put-together look for outdoor gatherings.",
				Items:       []string{"Light cotton t-shirt", "Patterned shorts", "Canvas slip-ons", "Braided belt"},
				ImageURL:    "https://images.unsplash.com/photo-1611937663641-5cef5189d71b?q=80&w=1974&auto=format&fit=crop",
			},
			{
				Name:        "Summer Evening",
				Description: "Light but elegant for warm summer nights.",
				Items:       []string{"Linen short-sleeve shirt", "Light chinos", "Suede loafers (no socks)", "Minimal leather bracelet"},
				ImageURL:    "https://images.unsplash.com/photo-1589992896344-f774d0a84c58?q=80&w=1972&auto=format&fit=crop",
			},
		},
		types.CategoryWinter: {
			{
				Name:        "Urban Winter",
				Description: "Stylish city look for cold weather.",
				Items:       []string{"Black pea coat", "Gray turtleneck sweater", "Black jeans", "Leather boots", "Black leather gloves"},
				ImageURL:    "https://images.unsplash.com/photo-1608236415053-3691791bbffe?q=80&w=1974&auto=format&fit=crop",
			},
			{
				Name:        "Winter Casual",
				Description: "Comfortable yet stylish for everyday winter wear.",
				Items:       []string{"Quilted jacket in navy", "Heavyweight flannel shirt", "Thermal henley", "Slim jeans", "Waterproof boots"},
				ImageURL:    "https://images.unsplash.com/photo-1488161628813-04466f872be2?q=80&w=1864&auto=format&fit=crop",
			},
			{
				Name:        "Winter Sport",
				Description: "Functional outfit for winter outdoor activities.",
				Items:       []string{"Performance base layer", "Insulated mid-layer", "Waterproof shell jacket", "Snow pants", "Insulated gloves and beanie"},
				ImageURL:    "https://images.unsplash.com/photo-1551698618-1dfe5d97d256?q=80&w=1950&auto=format&fit=crop",
			},
		},
		types.CategorySportswear: {
			{
				Name:        "Running",
				Description: "Performance gear for running and cardio workouts.",
				Items:       []string{"Technical running shirt", "Lightweight running shorts", "Performance running shoes", "Activity tracker watch", "Sweat-wicking hat"},
				ImageURL:    "https://images.unsplash.com/photo-1461897104016-0b3b00cc81ee?q=80&w=1974&auto=format&fit=crop",
			},
			{
				Name:        "Gym Training",
				Description: "Versatile outfit for strength training and gym workouts.",
				Items:       []string{"Fitted performance t-shirt", "Training shorts with liner", "Cross-training shoes", "Weightlifting gloves", "Sweatband"},
				ImageURL:    "https://images.unsplash.com/photo-1581009146145-b5ef050c2e1e?q=80&w=1740&auto=format&fit=crop",
			},
			{
				Name:        "Athleisure",
				Description: "Athletic-inspired everyday wear for comfort and style.",
				Items:       []string{"Technical polo shirt", "Performance joggers", "Lifestyle sneakers", "Sports watch", "Lightweight jacket"},
				ImageURL:    "https://images.unsplash.com/photo-1583454110551-21f2fa2afe61?q=80&w=1770&auto=format&fit=crop",
			},
		},
	}
}

func skinToneColors() map[types.SkinTone][]string {
	return map[types.SkinTone][]string{
		types.SkinToneFair:   {"Navy", "Burgundy", "Forest Green", "Lavender", "Light Blue", "Gray"},
		types.SkinToneMedium: {"Brown", "Olive Green", "Teal", "Burnt Orange", "Mustard", "Royal Blue"},
		types.SkinToneDark:   {"White", "Cream", "Light Gray", "Bold Red", "Emerald Green", "Purple"},
	}
}

func bodyTypeGuides() map[types.BodyType]types.StyleGuide {
	return map[types.BodyType]types.StyleGuide{
		types.BodyTypeSlim: {
			Dos:   []string{"Layered outfits to add volume", "Horizontal stripes", "Textured fabrics"},
			Donts: []string{"Oversized clothes", "Very skinny jeans", "Vertical stripes"},
		},
		types.BodyTypeAthletic: {
			Dos:   []string{"Fitted shirts to highlight shoulders", "Straight leg pants", "V-neck shirts"},
			Donts: []string{"Baggy clothes", "Skinny jeans", "Bulky sweaters"},
		},
		types.BodyTypeAverage: {
			Dos:   []string{"Well-fitted clothes", "Classic cuts", "Balanced proportions"},
			Donts: []string{"Extremely loose or tight clothing", "Overly busy patterns"},
		},
		types.BodyTypePlusSize: {
			Dos:   []string{"Vertical stripes", "Dark colors", "Structured jackets"},
			Donts: []string{"Horizontal stripes", "Tight-fitting clothes", "Bright all-over patterns"},
		},
	}
}
