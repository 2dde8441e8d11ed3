package customer

import (
	"context"

	"go.uber.org/zap"

	"github.com/Sana-aafreen/Menu-Recommendation-Special-AI-Generated-Combo/internal/pricing"
)

// OrderCounter reports lifetime completed orders for a customer.
// The order service satisfies it.
type OrderCounter interface {
	CountCompleted(ctx context.Context, customerID string) (int, error)
}

type Service struct {
	repo   Repository
	orders OrderCounter
	engine *pricing.Engine
	logger *zap.Logger
}

func NewService(repo Repository, orders OrderCounter, engine *pricing.Engine, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, orders: orders, engine: engine, logger: logger}
}

// ProfileFor assembles the account screen: saved preferences plus
// a loyalty snapshot derived from the customer's order count.
func (s *Service) ProfileFor(ctx context.Context, customerID, email string) (Profile, error) {
	prefs, err := s.repo.PreferencesFor(ctx, email)
	if err != nil {
		s.logger.Warn("preference lookup failed", zap.String("email", email), zap.Error(err))
		prefs = DefaultPreferences(email)
	}

	count := 0
	if customerID != "" {
		count, err = s.orders.CountCompleted(ctx, customerID)
		if err != nil {
			s.logger.Warn("order count lookup failed", zap.String("customer_id", customerID), zap.Error(err))
			count = 0
		}
	}

	loyalty := s.engine.LoyaltyFor(count)

	name := prefs.Name
	if name == "" {
		name = "Guest"
	}

	return Profile{
		Email:       email,
		Name:        name,
		Preferences: prefs,
		OrderCount:  count,
		Loyalty: LoyaltyDetails{
			CurrentTier:  loyalty.CurrentTier,
			NextTier:     loyalty.NextTier,
			OrdersToNext: loyalty.OrdersToNext,
		},
	}, nil
}

func (s *Service) SavePreferences(ctx context.Context, prefs Preferences) error {
	return s.repo.SavePreferences(ctx, prefs)
}
