package cart

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

var ErrNoCustomer = errors.New("customer id is required")

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

// Save replaces the customer's cart. Zero-quantity lines are
// dropped so the frontend can delete by sending quantity 0.
func (s *Service) Save(ctx context.Context, customerID string, lines []Line) error {
	if customerID == "" {
		return ErrNoCustomer
	}

	kept := make([]Line, 0, len(lines))
	for _, l := range lines {
		if l.ItemID == "" || l.Quantity <= 0 {
			continue
		}
		kept = append(kept, l)
	}

	if len(kept) == 0 {
		return s.repo.Clear(ctx, customerID)
	}
	return s.repo.Save(ctx, customerID, kept)
}

func (s *Service) Get(ctx context.Context, customerID string) ([]Line, error) {
	if customerID == "" {
		return nil, ErrNoCustomer
	}
	return s.repo.Get(ctx, customerID)
}

func (s *Service) Clear(ctx context.Context, customerID string) error {
	if customerID == "" {
		return ErrNoCustomer
	}
	return s.repo.Clear(ctx, customerID)
}
