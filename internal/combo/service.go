package combo

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Sana-aafreen/Menu-Recommendation-Special-AI-Generated-Combo/internal/menu"
)

// Fixed deal discount for rule-generated combos.
const dealDiscountPercent = 3.0

const maxNameLength = 40

const fallbackImage = "https://images.unsplash.com/photo-1546069901-ba9599a7e63c"

// MenuReader is the slice of the menu repository this service needs.
// *menu.PostgresRepository satisfies it.
type MenuReader interface {
	ListActive(ctx context.Context) ([]menu.Item, error)
}

type Service struct {
	repo   MenuReader
	rng    *rand.Rand
	logger *zap.Logger
}

func NewService(repo MenuReader, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		repo:   repo,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		logger: logger,
	}
}

// --------------------------------------------------
// GENERATE COMBOS (rule strategies over the live menu)
// --------------------------------------------------

func (s *Service) GenerateCombos(ctx context.Context, numCombos int) ([]Deal, error) {
	if numCombos <= 0 {
		numCombos = 3
	}

	active, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	if len(active) == 0 {
		return nil, nil
	}

	var deals []Deal
	usedMains := map[string]bool{}

	for _, strat := range strategies {
		if len(deals) >= numCombos {
			break
		}

		mains := matchByKeyword(active, strat.MainKey)
		sides := matchByKeyword(active, strat.SideKey)
		if len(mains) == 0 || len(sides) == 0 {
			continue
		}

		main := mains[s.rng.Intn(len(mains))]
		for attempts := 0; usedMains[main.ID] && attempts < 3; attempts++ {
			main = mains[s.rng.Intn(len(mains))]
		}
		usedMains[main.ID] = true

		items := []menu.Item{main, sides[s.rng.Intn(len(sides))]}

		// Sometimes round the pair off with a drink.
		if strat.SideKey != "Beverage" && s.rng.Float64() > 0.5 {
			if drinks := matchByKeyword(active, "Beverage"); len(drinks) > 0 {
				items = append(items, drinks[s.rng.Intn(len(drinks))])
			}
		}

		deal := s.buildDeal(
			comboName(main.Name, strat.Suffix),
			items,
			dealDiscountPercent,
			strings.ReplaceAll(strings.ToLower(strat.Topic), " ", "_"),
			"Perfect Pairing",
		)
		deals = append(deals, deal)
	}

	s.logger.Info("generated combo deals",
		zap.Int("requested", numCombos),
		zap.Int("generated", len(deals)),
	)
	return deals, nil
}

// --------------------------------------------------
// DEAL ASSEMBLY (deterministic pricing, random garnish)
// --------------------------------------------------

func (s *Service) buildDeal(name string, items []menu.Item, discountPercent float64, comboType, insight string) Deal {
	var total float64
	names := make([]string, 0, len(items))
	allVeg := true
	image := fallbackImage

	for _, item := range items {
		total += item.Price
		names = append(names, item.Name)
		if !menu.IsVegName(item.Name) {
			allVeg = false
		}
		if image == fallbackImage && strings.HasPrefix(item.ImageURL, "http") {
			image = item.ImageURL
		}
	}

	price := round1(total * (1 - discountPercent/100))

	return Deal{
		ID:          fmt.Sprintf("combo_%s_%04d", comboType, s.rng.Intn(9000)+1000),
		Name:        name,
		Description: strings.Join(names, " • "),
		Price:       price,
		Original:    total,
		Savings:     round1(total - price),
		Discount:    discountPercent,
		ImageURL:    image,
		IsVeg:       allVeg,
		Category:    "Combos",
		Items:       names,
		ItemCount:   len(items),

		// Social-proof garnish until real combo stats exist.
		Rating:       round1(4.5 + s.rng.Float64()*0.4),
		OrderCount:   s.rng.Intn(700) + 100,
		Personalized: insight != "" && insight != "Perfect Pairing",
		Insight:      insight,
	}
}

// comboName prefers "<Item> <Suffix>" and degrades toward the bare
// item name when the result would not fit the menu card.
func comboName(itemName, suffix string) string {
	name := itemName + " " + suffix
	if len(name) > maxNameLength {
		name = itemName + " Combo"
	}
	if len(name) > maxNameLength {
		name = itemName
	}
	return name
}

func matchByKeyword(items []menu.Item, keyword string) []menu.Item {
	needle := strings.ToLower(keyword)

	var out []menu.Item
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Category), needle) ||
			strings.Contains(strings.ToLower(item.Name), needle) {
			out = append(out, item)
		}
	}
	return out
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
