package recommend

// Category pairing table for cross-selling. Process-wide constant,
// initialized once and never mutated.
type pairing struct {
	PairsWith []string
	Message   string
}

var categoryPairings = map[string]pairing{
	"Bread":   {PairsWith: []string{"Gravy", "DryVeg"}, Message: "Perfect with curry!"},
	"Rice":    {PairsWith: []string{"Gravy", "Dessert", "Raita"}, Message: "Complete your meal!"},
	"Gravy":   {PairsWith: []string{"Bread", "Rice"}, Message: "Best with bread or rice!"},
	"Starter": {PairsWith: []string{"Beverages", "Smoothies"}, Message: "Pair with a refreshing drink!"},
	"Snacks":  {PairsWith: []string{"Beverages", "Smoothies"}, Message: "Great with a drink!"},
}

var defaultPairing = pairing{PairsWith: []string{"Beverages"}, Message: "Pairs great with your meal!"}

func pairingFor(category string) pairing {
	if p, ok := categoryPairings[category]; ok {
		return p
	}
	return defaultPairing
}
