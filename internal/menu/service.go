package menu

import (
	"context"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// Curated section titles, rendered before the category sections.
const (
	sectionFavorites   = "Your Favorites"
	sectionBestseller  = "Bestseller"
	sectionChefSpecial = "Chef Special"
	sectionCombos      = "Combos"
)

var comboKeywords = []string{"combo", "meal", "family", "pack", "thali"}

type Service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, logger: logger}
}

// --------------------------------------------------
// SMART MENU (curated sections + category sections)
// --------------------------------------------------

// SmartMenu builds the full menu for one customer: personalized
// favorites first, then bestsellers, chef specials, combos and
// plain category sections. customerID may be empty for guests.
func (s *Service) SmartMenu(ctx context.Context, customerID string) (*SmartMenu, error) {
	active, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	if len(active) == 0 {
		s.logger.Warn("no active menu items, falling back to all items")
		active, err = s.repo.ListAll(ctx)
		if err != nil {
			return nil, err
		}
	}

	for i := range active {
		decorate(&active[i])
	}

	var sections []Section

	// 1. Favorites from the customer's own history. A lookup
	// failure only drops the section, never the menu.
	if customerID != "" {
		names, err := s.repo.NamesOrderedByCustomer(ctx, customerID)
		if err != nil {
			s.logger.Warn("favorites lookup failed", zap.String("customer_id", customerID), zap.Error(err))
		} else if favs := itemsByName(active, names, 0); len(favs) > 0 {
			sections = append(sections, Section{Title: sectionFavorites, Items: favs})
		}
	}

	// 2. Bestsellers (top 6 most-ordered names).
	popular, err := s.repo.TopOrderedNames(ctx, 6)
	if err != nil {
		s.logger.Warn("bestseller lookup failed", zap.Error(err))
	} else if best := itemsByName(active, popular, 0); len(best) > 0 {
		sections = append(sections, Section{Title: sectionBestseller, Items: best})
	}

	// 3. Chef Special: top 30% by price, capped at 8.
	if special := chefSpecial(active); len(special) > 0 {
		sections = append(sections, Section{Title: sectionChefSpecial, Items: special})
	}

	// 4. Combos by name keyword.
	if combos := comboItems(active); len(combos) > 0 {
		sections = append(sections, Section{Title: sectionCombos, Items: combos})
	}

	// 5. One section per category, alphabetical.
	categories := make([]string, 0)
	byCategory := make(map[string][]Item)
	for _, item := range active {
		if _, seen := byCategory[item.Category]; !seen {
			categories = append(categories, item.Category)
		}
		byCategory[item.Category] = append(byCategory[item.Category], item)
	}
	sort.Strings(categories)

	for _, category := range categories {
		sections = append(sections, Section{Title: category, Items: byCategory[category]})
	}

	titles := make([]string, 0, len(sections))
	for _, sec := range sections {
		titles = append(titles, sec.Title)
	}

	s.logger.Info("smart menu built",
		zap.String("customer_id", customerID),
		zap.Int("active_items", len(active)),
		zap.Int("sections", len(sections)),
	)

	return &SmartMenu{
		Status:     "success",
		Sections:   sections,
		TotalItems: len(active),
		Categories: titles,
	}, nil
}

// --------------------------------------------------
// UPSELL ITEMS (e.g. Dessert, Beverages before checkout)
// --------------------------------------------------

// UpsellItems returns up to 5 active items per requested category.
// Category matching is fuzzy, the store spells categories loosely.
func (s *Service) UpsellItems(ctx context.Context, categories []string) (map[string][]Item, error) {
	if len(categories) == 0 {
		categories = []string{"Dessert", "Beverages"}
	}

	active, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	for i := range active {
		decorate(&active[i])
	}

	upsells := make(map[string][]Item)
	for _, category := range categories {
		needle := strings.ToLower(category)

		var matched []Item
		for _, item := range active {
			if strings.Contains(strings.ToLower(item.Category), needle) {
				matched = append(matched, item)
			}
			if len(matched) == 5 {
				break
			}
		}
		if len(matched) > 0 {
			upsells[category] = matched
		}
	}

	return upsells, nil
}

// --------------------------------------------------
// HELPERS
// --------------------------------------------------

// decorate fills the presentation fields the store does not keep.
func decorate(item *Item) {
	item.IsVeg = IsVegName(item.Name)
	if item.IsVeg {
		item.DietaryType = "Veg"
	} else {
		item.DietaryType = "Non-Veg"
	}
	if item.Description == "" {
		item.Description = descriptionFor(item.Category)
	}
	if item.ImageURL == "" {
		item.ImageURL = imageFor(item.Category, item.Name)
	}
}

// itemsByName keeps active items whose name is in names.
// limit 0 means unlimited.
func itemsByName(active []Item, names []string, limit int) []Item {
	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		wanted[n] = true
	}

	var out []Item
	for _, item := range active {
		if wanted[item.Name] {
			out = append(out, item)
			if limit > 0 && len(out) == limit {
				break
			}
		}
	}
	return out
}

func chefSpecial(active []Item) []Item {
	if len(active) == 0 {
		return nil
	}

	byPrice := make([]Item, len(active))
	copy(byPrice, active)
	sort.SliceStable(byPrice, func(i, j int) bool {
		return byPrice[i].Price > byPrice[j].Price
	})

	n := len(byPrice) * 30 / 100
	if n < 1 {
		n = 1
	}
	if n > 8 {
		n = 8
	}
	return byPrice[:n]
}

func comboItems(active []Item) []Item {
	var out []Item
	for _, item := range active {
		name := strings.ToLower(item.Name)
		for _, kw := range comboKeywords {
			if strings.Contains(name, kw) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}
