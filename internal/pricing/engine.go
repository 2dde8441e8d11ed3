package pricing

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Engine computes checkout pricing intelligence: loyalty tier and
// reward points, the best-matching spend discount, combo detection,
// an upsell nudge and the coupon list. It is a pure computation over
// its inputs, with no I/O and no shared state, so a single Engine value is
// safe for any number of concurrent callers.
type Engine struct {
	discountTiers []DiscountTier // ascending by threshold, never mutated
	loyaltyTiers  []LoyaltyTier  // ascending by min orders, never mutated
}

// Default tiers (Zomato-style rules).
var defaultDiscountTiers = []DiscountTier{
	{Threshold: 500, Percent: 5, Code: "DINE5"},
	{Threshold: 800, Percent: 10, Code: "DINE10"},
	{Threshold: 1200, Percent: 15, Code: "DINE15"},
}

var defaultLoyaltyTiers = []LoyaltyTier{
	{Name: "Bronze", MinOrders: 0, Multiplier: 1.0},
	{Name: "Silver", MinOrders: 3, Multiplier: 1.5},
	{Name: "Gold", MinOrders: 7, Multiplier: 2.0},
	{Name: "Platinum", MinOrders: 15, Multiplier: 2.5},
}

// Category sets for combo detection (normalized title-case).
var (
	mainCategories     = map[string]bool{"Main Course": true, "Gravy": true, "Rice": true}
	sideCategories     = map[string]bool{"Bread": true, "Starter": true, "Dryveg": true}
	beverageCategories = map[string]bool{"Beverages": true, "Smoothies": true}
)

func NewEngine() *Engine {
	return &Engine{
		discountTiers: defaultDiscountTiers,
		loyaltyTiers:  defaultLoyaltyTiers,
	}
}

// NewEngineWithTiers builds an engine over custom discount tiers.
// Thresholds must be strictly increasing.
func NewEngineWithTiers(tiers []DiscountTier) (*Engine, error) {
	if len(tiers) == 0 {
		return nil, errors.New("at least one discount tier required")
	}
	for i := 1; i < len(tiers); i++ {
		if tiers[i].Threshold <= tiers[i-1].Threshold {
			return nil, errors.New("discount tier thresholds must be strictly increasing")
		}
	}
	copied := make([]DiscountTier, len(tiers))
	copy(copied, tiers)

	return &Engine{
		discountTiers: copied,
		loyaltyTiers:  defaultLoyaltyTiers,
	}, nil
}

// --------------------------------------------------
// COMPUTE STRATEGY (the single public operation)
// --------------------------------------------------

// ComputeStrategy never panics: any internal failure degrades to a
// result carrying the undiscounted total plus an error message, so
// the billing screen always has something honest to render.
func (e *Engine) ComputeStrategy(subtotal float64, orderCount int, cart []CartLine) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			res = Result{
				Subtotal:   round2(subtotal),
				FinalTotal: round2(subtotal),
				Error:      fmt.Sprintf("pricing computation failed: %v", r),
			}
		}
	}()

	if subtotal < 0 || math.IsNaN(subtotal) || math.IsInf(subtotal, 0) {
		subtotal = 0
	}
	if orderCount < 0 {
		orderCount = 0
	}

	// 1. Loyalty tier and reward points.
	// Points: multiplier applied AFTER the ₹10 floor division,
	// then truncated. Points are always whole.
	status, multiplier := e.loyaltyFor(orderCount)
	points := int(math.Trunc(math.Floor(subtotal/10) * multiplier))

	// 2. Biggest qualifying tier discount (never stacked).
	applicable := e.findDiscountTier(subtotal)

	discount := DiscountApplied{Name: nil, Percent: 0, Amount: 0}
	var discountAmount float64
	if applicable != nil {
		discountAmount = subtotal * (applicable.Percent / 100)
		code := applicable.Code
		discount = DiscountApplied{
			Name:    &code,
			Percent: applicable.Percent,
			Amount:  round2(discountAmount),
		}
	}

	finalTotal := subtotal - discountAmount

	var savings *string
	if discountAmount > 0 {
		s := fmt.Sprintf("💰 You saved ₹%.2f on this order!", round2(discountAmount))
		savings = &s
	}

	return Result{
		Subtotal:        round2(subtotal),
		DiscountApplied: discount,
		FinalTotal:      round2(finalTotal),
		RewardPoints: RewardPoints{
			Earned:  points,
			Tier:    status.CurrentTier,
			Message: fmt.Sprintf("✨ You earned %d points!", points),
		},
		LoyaltyStatus:    status,
		AvailableCoupons: e.coupons(orderCount, subtotal),
		UpsellNudge:      e.upsellNudge(subtotal),
		ComboDetails:     classifyCombo(cart),
		SavingsSummary:   savings,
	}
}

// --------------------------------------------------
// LOYALTY
// --------------------------------------------------

// LoyaltyFor exposes the tier lookup on its own, for profile views.
func (e *Engine) LoyaltyFor(orderCount int) LoyaltyStatus {
	if orderCount < 0 {
		orderCount = 0
	}
	status, _ := e.loyaltyFor(orderCount)
	return status
}

// loyaltyFor walks tiers from the top; boundary counts belong to
// the higher tier.
func (e *Engine) loyaltyFor(orderCount int) (LoyaltyStatus, float64) {
	for i := len(e.loyaltyTiers) - 1; i >= 0; i-- {
		tier := e.loyaltyTiers[i]
		if orderCount < tier.MinOrders {
			continue
		}

		status := LoyaltyStatus{CurrentTier: tier.Name}
		if i+1 < len(e.loyaltyTiers) {
			next := e.loyaltyTiers[i+1]
			status.NextTier = &next.Name
			status.OrdersToNext = next.MinOrders - orderCount
		}
		return status, tier.Multiplier
	}

	// Unreachable with a 0-floor base tier.
	base := e.loyaltyTiers[0]
	return LoyaltyStatus{CurrentTier: base.Name}, base.Multiplier
}

// --------------------------------------------------
// DISCOUNT TIERS
// --------------------------------------------------

// findDiscountTier returns the largest qualifying threshold, or nil.
func (e *Engine) findDiscountTier(subtotal float64) *DiscountTier {
	for i := len(e.discountTiers) - 1; i >= 0; i-- {
		if subtotal >= e.discountTiers[i].Threshold {
			return &e.discountTiers[i]
		}
	}
	return nil
}

func (e *Engine) upsellNudge(subtotal float64) UpsellNudge {
	for _, tier := range e.discountTiers {
		if subtotal < tier.Threshold {
			gap := tier.Threshold - subtotal
			return UpsellNudge{
				Show: true,
				Message: fmt.Sprintf(
					"Add ₹%d more to unlock %.0f%% OFF! 🚀",
					int(math.Ceil(gap)), tier.Percent,
				),
				Gap: round2(gap),
			}
		}
	}
	return UpsellNudge{Show: false, Message: "Max discount reached! 🎉"}
}

func (e *Engine) coupons(orderCount int, subtotal float64) []Coupon {
	coupons := make([]Coupon, 0, len(e.discountTiers)+1)

	if orderCount == 0 {
		coupons = append(coupons, Coupon{
			Code:        "NEW50",
			Description: "Flat ₹50 OFF on first order",
			Status:      "Available",
		})
	}

	for _, tier := range e.discountTiers {
		status := "Unlocked ✅"
		if subtotal < tier.Threshold {
			status = fmt.Sprintf("Add ₹%d more 🔒", int(math.Ceil(tier.Threshold-subtotal)))
		}
		coupons = append(coupons, Coupon{
			Code:        tier.Code,
			Description: fmt.Sprintf("%.0f%% OFF above ₹%.0f", tier.Percent, tier.Threshold),
			Status:      status,
		})
	}

	return coupons
}

// --------------------------------------------------
// COMBO DETECTION
// --------------------------------------------------

// classifyCombo detects a balanced meal (main + side + drink).
// Requires at least two items; returns nil when nothing matches.
func classifyCombo(cart []CartLine) *ComboDetails {
	if len(cart) < 2 {
		return nil
	}

	var hasMain, hasSide, hasBeverage bool
	for _, line := range cart {
		cat := normalizeCategory(line.Category)
		if mainCategories[cat] {
			hasMain = true
		}
		if sideCategories[cat] {
			hasSide = true
		}
		if beverageCategories[cat] {
			hasBeverage = true
		}
	}

	switch {
	case hasMain && hasSide && hasBeverage:
		return &ComboDetails{
			Eligible: true,
			Type:     "Balanced Feast",
			Message:  "🎊 Smart Combo: 15% Savings Unlocked!",
		}
	case hasMain && (hasSide || hasBeverage):
		return &ComboDetails{
			Eligible: true,
			Type:     "Mini Combo",
			Message:  "🍽️ Smart Combo Applied!",
		}
	}
	return nil
}

// normalizeCategory trims and title-cases free-text categories so
// "main course", "RICE " and "DryVeg" all land on one spelling.
func normalizeCategory(category string) string {
	words := strings.Fields(strings.ToLower(strings.TrimSpace(category)))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// --------------------------------------------------
// HELPERS
// --------------------------------------------------

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// DiscountTiers returns a copy, mostly for handlers that render
// the tier table.
func (e *Engine) DiscountTiers() []DiscountTier {
	tiers := make([]DiscountTier, len(e.discountTiers))
	copy(tiers, e.discountTiers)
	return tiers
}
