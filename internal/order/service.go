package order

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Sana-aafreen/Menu-Recommendation-Special-AI-Generated-Combo/internal/pricing"
)

var ErrEmptyCart = errors.New("cart is empty")

type Service struct {
	repo   Repository
	engine *pricing.Engine
	logger *zap.Logger
}

func NewService(repo Repository, engine *pricing.Engine, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, engine: engine, logger: logger}
}

// --------------------------------------------------
// CHECKOUT PREVIEW (pricing only, nothing persisted)
// --------------------------------------------------

// Checkout derives subtotal and lifetime order count for the
// customer and runs the pricing engine over the cart.
func (s *Service) Checkout(ctx context.Context, customerID string, cart []CartItem) (pricing.Result, error) {
	count := 0
	if customerID != "" {
		var err error
		count, err = s.repo.CountCompleted(ctx, customerID)
		if err != nil {
			// Degrade to a first-timer view rather than failing checkout.
			s.logger.Warn("order count lookup failed", zap.String("customer_id", customerID), zap.Error(err))
			count = 0
		}
	}

	subtotal := 0.0
	lines := make([]pricing.CartLine, 0, len(cart))
	for _, item := range cart {
		subtotal += item.UnitPrice() * float64(item.Qty())
		lines = append(lines, pricing.CartLine{
			Category: item.Category,
			Price:    item.UnitPrice(),
		})
	}

	return s.engine.ComputeStrategy(subtotal, count, lines), nil
}

// --------------------------------------------------
// PLACE ORDER (permanent)
// --------------------------------------------------

func (s *Service) Place(ctx context.Context, customerID, customerName string, cart []CartItem) (*Order, error) {
	if len(cart) == 0 {
		return nil, ErrEmptyCart
	}

	var total float64
	for _, item := range cart {
		total += item.UnitPrice() * float64(item.Qty())
	}

	order := &Order{
		ID:           newOrderID(),
		CustomerID:   customerID,
		CustomerName: customerName,
		Price:        total,
		Status:       StatusCompleted,
	}

	items := make([]Item, 0, len(cart))
	for _, c := range cart {
		items = append(items, Item{
			ID:       newItemID(),
			OrderID:  order.ID,
			ItemID:   c.ItemID,
			ItemName: c.ItemName,
			Quantity: c.Qty(),
			Price:    c.UnitPrice(),
		})
	}

	if err := s.repo.CreateWithItems(ctx, order, items); err != nil {
		return nil, err
	}

	s.logger.Info("order placed",
		zap.String("order_id", order.ID),
		zap.String("customer_id", customerID),
		zap.Float64("total", total),
		zap.Int("items", len(items)),
	)
	return order, nil
}

// --------------------------------------------------
// TRACK + HISTORY
// --------------------------------------------------

// Track returns a human status line for the chat and tracking
// screens; unknown IDs get a polite miss, not an error.
func (s *Service) Track(ctx context.Context, orderID string) (string, error) {
	orderID = strings.TrimSpace(orderID)

	o, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, ErrOrderNotFound) {
			return fmt.Sprintf("⚠️ Order ID '%s' is not in our records. Please check the ID.", orderID), nil
		}
		return "", err
	}

	return fmt.Sprintf(
		"Namaste %s! Your order %s is currently '%s'. Your total bill is ₹%.2f.",
		o.CustomerName, o.ID, o.Status, o.Price,
	), nil
}

func (s *Service) History(ctx context.Context, customerID string) ([]Order, error) {
	return s.repo.ListByCustomer(ctx, customerID)
}

func (s *Service) CountCompleted(ctx context.Context, customerID string) (int, error) {
	return s.repo.CountCompleted(ctx, customerID)
}

// --------------------------------------------------
// ID HELPERS
// --------------------------------------------------

func newOrderID() string {
	return "Ord_" + shortID()
}

func newItemID() string {
	return "Itm_" + shortID()
}

func shortID() string {
	return strings.Split(uuid.New().String(), "-")[0]
}
