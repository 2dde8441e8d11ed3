package menu

import "strings"

// Dietary classification is inferred from item names because the
// menu store carries no explicit veg flag. Uncertain items default
// to veg, the safer call for an Indian restaurant.

var nonVegKeywords = []string{
	"chicken", "mutton", "fish", "egg", "meat", "prawn", "lamb",
}

var vegKeywords = []string{
	"paneer", "aloo", "gobi", "dal", "roti", "naan", "rice",
	"veg", "vegetable", "bhindi", "palak", "matar", "raita",
	"lassi", "juice", "smoothie", "salad",
}

func IsVegName(itemName string) bool {
	name := strings.ToLower(itemName)

	for _, word := range nonVegKeywords {
		if strings.Contains(name, word) {
			return false
		}
	}
	for _, word := range vegKeywords {
		if strings.Contains(name, word) {
			return true
		}
	}
	return true
}

// --------------------------------------------------
// CATEGORY FALLBACKS (images + descriptions)
// --------------------------------------------------

var categoryImages = map[string]string{
	"Bread":     "https://images.unsplash.com/photo-1509440159596-0249088772ff",
	"Rice":      "https://images.unsplash.com/photo-1516714435131-44d6b64dc6a2",
	"Gravy":     "https://images.unsplash.com/photo-1585937421612-70a008356fbe",
	"Dry Veg":   "https://images.unsplash.com/photo-1512621776951-a57141f2eefd",
	"Starter":   "https://images.unsplash.com/photo-1599487488170-d11ec9c172f0",
	"Snacks":    "https://images.unsplash.com/photo-1601050690597-df0568f70950",
	"Beverages": "https://images.unsplash.com/photo-1437418747212-8d9709afab22",
	"Smoothies": "https://images.unsplash.com/photo-1505252585461-04db1eb84625",
	"Dessert":   "https://images.unsplash.com/photo-1488477181946-6428a0291777",
	"Raita":     "https://images.unsplash.com/photo-1596797038530-2c107229654b",
}

var categoryDescriptions = map[string]string{
	"Bread":     "Freshly baked bread",
	"Rice":      "Aromatic basmati rice",
	"Gravy":     "Rich and flavorful curry",
	"Dry Veg":   "Delicious dry preparation",
	"Starter":   "Perfect appetizer",
	"Snacks":    "Tasty snack",
	"Beverages": "Refreshing beverage",
	"Smoothies": "Healthy smoothie",
	"Dessert":   "Sweet treat",
	"Raita":     "Cool yogurt accompaniment",
}

const defaultImage = "https://images.unsplash.com/photo-1546069901-ba9599a7e63c"

func imageFor(category, itemName string) string {
	if url, ok := categoryImages[category]; ok {
		return url
	}

	name := strings.ToLower(itemName)
	switch {
	case strings.Contains(name, "paneer") || strings.Contains(name, "butter"):
		return categoryImages["Gravy"]
	case strings.Contains(name, "biryani") || strings.Contains(name, "rice"):
		return categoryImages["Rice"]
	case strings.Contains(name, "naan") || strings.Contains(name, "roti"):
		return categoryImages["Bread"]
	case strings.Contains(name, "dal"):
		return "https://images.unsplash.com/photo-1546833999-b9f581a1996d"
	case strings.Contains(name, "dessert") || strings.Contains(name, "sweet"):
		return categoryImages["Dessert"]
	}
	return defaultImage
}

func descriptionFor(category string) string {
	if desc, ok := categoryDescriptions[category]; ok {
		return desc
	}
	return "Delicious " + category
}
