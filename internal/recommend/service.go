package recommend

import (
	"context"
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/Sana-aafreen/Menu-Recommendation-Special-AI-Generated-Combo/internal/llm"
	"github.com/Sana-aafreen/Menu-Recommendation-Special-AI-Generated-Combo/internal/menu"
)

const maxAddOns = 3

// Dietary values that demand a strict veg filter.
var strictVegDiets = map[string]bool{
	"Pure Veg":   true,
	"Vegetarian": true,
}

var fallbackPitch = "Perfect combo for your meal! 🍱"

type Service struct {
	repo   Repository
	prefs  PreferenceReader
	llm    llm.Client // nil disables generated pitches, never recommendations
	logger *zap.Logger
}

func NewService(repo Repository, prefs PreferenceReader, client llm.Client, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, prefs: prefs, llm: client, logger: logger}
}

// --------------------------------------------------
// ITEM ADD-ONS (hybrid: history + category pairing)
// --------------------------------------------------

func (s *Service) AddOns(ctx context.Context, email, itemID string) (*AddOnResult, error) {
	item, err := s.repo.GetItem(ctx, strings.TrimSpace(itemID))
	if err != nil {
		// Unknown item still gets a usable screen.
		s.logger.Warn("add-on anchor item not found", zap.String("item_id", itemID), zap.Error(err))
		return &AddOnResult{
			Pitch:  "Explore our bestsellers!",
			AddOns: s.popularFallback(ctx, "General"),
		}, nil
	}

	diet := s.dietaryFor(ctx, email)

	// Strategy 1: frequently bought together beats static pairing.
	history := s.frequentlyBoughtWith(ctx, item.ID, diet)

	// Strategy 2: logical category pairing.
	pair := pairingFor(item.Category)
	paired, err := s.repo.ActiveByCategories(ctx, pair.PairsWith, item.ID, maxAddOns)
	if err != nil {
		s.logger.Warn("pairing lookup failed", zap.Error(err))
	}

	seen := map[string]bool{item.ID: true}
	var final []AddOn

	for _, candidate := range append(history, toAddOns(paired, "")...) {
		if seen[candidate.ItemID] {
			continue
		}
		if strictVegDiets[diet] && !menu.IsVegName(candidate.ItemName) {
			continue
		}
		seen[candidate.ItemID] = true
		final = append(final, candidate)
		if len(final) == maxAddOns {
			break
		}
	}

	if len(final) == 0 {
		final = s.popularFallback(ctx, diet)
	}

	return &AddOnResult{
		Pitch:  s.pitchFor(ctx, item, final),
		AddOns: final,
	}, nil
}

// --------------------------------------------------
// AI COMBO (bundling for higher order value)
// --------------------------------------------------

// AIComboFor assembles one balanced bundle (rice + gravy + drink)
// at a 15% bundle discount. Returns nil when the menu cannot fill
// at least two slots.
func (s *Service) AIComboFor(ctx context.Context, email string) (*ComboOffer, error) {
	diet := s.dietaryFor(ctx, email)

	var items []menu.Item
	for _, category := range []string{"Rice", "Gravy", "Beverages"} {
		found, err := s.repo.ActiveByCategories(ctx, []string{category}, "", maxAddOns)
		if err != nil {
			return nil, err
		}
		for _, candidate := range found {
			if strictVegDiets[diet] && !menu.IsVegName(candidate.Name) {
				continue
			}
			items = append(items, candidate)
			break
		}
	}

	if len(items) < 2 {
		return nil, nil
	}

	var total float64
	for _, item := range items {
		total += item.Price
	}

	const discount = 15.0
	name, description := s.comboDetails(ctx, items)

	return &ComboOffer{
		Name:            name,
		Description:     description,
		Items:           items,
		OriginalPrice:   round2(total),
		ComboPrice:      round2(total * (1 - discount/100)),
		Savings:         round2(total * discount / 100),
		DiscountPercent: discount,
	}, nil
}

// --------------------------------------------------
// INTERNAL HELPERS
// --------------------------------------------------

func (s *Service) dietaryFor(ctx context.Context, email string) string {
	if s.prefs == nil || email == "" {
		return "General"
	}
	diet, err := s.prefs.DietaryFor(ctx, email)
	if err != nil || diet == "" {
		return "General"
	}
	return diet
}

func (s *Service) frequentlyBoughtWith(ctx context.Context, itemID, diet string) []AddOn {
	ids, err := s.repo.FrequentlyBoughtWith(ctx, itemID, 2)
	if err != nil || len(ids) == 0 {
		return nil
	}

	items, err := s.repo.ItemsByIDs(ctx, ids)
	if err != nil {
		s.logger.Warn("co-order lookup failed", zap.Error(err))
		return nil
	}

	return filterVeg(toAddOns(items, "Often added together"), diet)
}

func (s *Service) popularFallback(ctx context.Context, diet string) []AddOn {
	ids, err := s.repo.PopularItemIDs(ctx, 5)
	if err != nil {
		return nil
	}
	items, err := s.repo.ItemsByIDs(ctx, ids)
	if err != nil {
		return nil
	}

	popular := filterVeg(toAddOns(items, "Bestseller"), diet)
	if len(popular) > maxAddOns {
		popular = popular[:maxAddOns]
	}
	return popular
}

func (s *Service) pitchFor(ctx context.Context, item *menu.Item, addOns []AddOn) string {
	if s.llm == nil || len(addOns) == 0 {
		return fallbackPitch
	}

	prompt := llm.BuildPitchPrompt(addOns[0].ItemName, item.Name, item.Category)
	raw, err := s.llm.Complete(ctx, prompt)
	if err != nil {
		s.logger.Warn("pitch generation failed", zap.Error(err))
		return fallbackPitch
	}
	return llm.CleanPitch(raw)
}

func (s *Service) comboDetails(ctx context.Context, items []menu.Item) (string, string) {
	const defaultName = "Smart Value Combo"
	const defaultDesc = "Handpicked pairing for you."

	if s.llm == nil {
		return defaultName, defaultDesc
	}

	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.Name
	}

	raw, err := s.llm.Complete(ctx, llm.BuildComboNamePrompt(names))
	if err != nil {
		s.logger.Warn("combo naming failed", zap.Error(err))
		return defaultName, defaultDesc
	}

	name, description, err := llm.ParseComboDetails(raw)
	if err != nil {
		return defaultName, defaultDesc
	}
	return name, description
}

func toAddOns(items []menu.Item, tag string) []AddOn {
	out := make([]AddOn, 0, len(items))
	for _, item := range items {
		out = append(out, AddOn{
			ItemID:   item.ID,
			ItemName: item.Name,
			Price:    item.Price,
			Category: item.Category,
			Tag:      tag,
		})
	}
	return out
}

func filterVeg(addOns []AddOn, diet string) []AddOn {
	if !strictVegDiets[diet] {
		return addOns
	}
	var out []AddOn
	for _, a := range addOns {
		if menu.IsVegName(a.ItemName) {
			out = append(out, a)
		}
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
