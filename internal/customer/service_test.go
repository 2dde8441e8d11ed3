package customer

import (
	"context"
	"errors"
	"testing"

	"github.com/Sana-aafreen/Menu-Recommendation-Special-AI-Generated-Combo/internal/pricing"
)

type MockRepository struct {
	prefs    map[string]Preferences
	prefsErr error
}

func NewMockRepository() *MockRepository {
	return &MockRepository{prefs: make(map[string]Preferences)}
}

func (m *MockRepository) PreferencesFor(ctx context.Context, email string) (Preferences, error) {
	if m.prefsErr != nil {
		return Preferences{}, m.prefsErr
	}
	p, ok := m.prefs[email]
	if !ok {
		return DefaultPreferences(email), nil
	}
	return p, nil
}

func (m *MockRepository) SavePreferences(ctx context.Context, prefs Preferences) error {
	m.prefs[prefs.Email] = prefs
	return nil
}

func (m *MockRepository) DietaryFor(ctx context.Context, email string) (string, error) {
	p, _ := m.PreferencesFor(ctx, email)
	return p.Dietary, nil
}

type MockOrders struct {
	count int
	err   error
}

func (m *MockOrders) CountCompleted(ctx context.Context, customerID string) (int, error) {
	return m.count, m.err
}

func TestProfileIncludesLoyaltySnapshot(t *testing.T) {
	repo := NewMockRepository()
	repo.prefs["ravi@example.com"] = Preferences{
		Email: "ravi@example.com", Name: "Ravi", Dietary: "Non Veg",
	}

	svc := NewService(repo, &MockOrders{count: 8}, pricing.NewEngine(), nil)

	profile, err := svc.ProfileFor(context.Background(), "cust-1", "ravi@example.com")
	if err != nil {
		t.Fatalf("ProfileFor returned error: %v", err)
	}

	if profile.Name != "Ravi" {
		t.Errorf("expected name Ravi, got %s", profile.Name)
	}
	if profile.OrderCount != 8 {
		t.Errorf("expected 8 orders, got %d", profile.OrderCount)
	}
	if profile.Loyalty.CurrentTier != "Gold" {
		t.Errorf("expected Gold at 8 orders, got %s", profile.Loyalty.CurrentTier)
	}
	if profile.Loyalty.NextTier == nil || *profile.Loyalty.NextTier != "Platinum" {
		t.Errorf("expected next tier Platinum, got %v", profile.Loyalty.NextTier)
	}
	if profile.Loyalty.OrdersToNext != 7 {
		t.Errorf("expected 7 orders to Platinum, got %d", profile.Loyalty.OrdersToNext)
	}
}

func TestProfileUnknownCustomerGetsDefaults(t *testing.T) {
	svc := NewService(NewMockRepository(), &MockOrders{}, pricing.NewEngine(), nil)

	profile, err := svc.ProfileFor(context.Background(), "", "new@example.com")
	if err != nil {
		t.Fatalf("ProfileFor returned error: %v", err)
	}

	if profile.Name != "Guest" {
		t.Errorf("expected Guest fallback, got %s", profile.Name)
	}
	if profile.Preferences.Dietary != "Pure Veg" {
		t.Errorf("expected Pure Veg default, got %s", profile.Preferences.Dietary)
	}
	if profile.Loyalty.CurrentTier != "Bronze" {
		t.Errorf("expected Bronze at 0 orders, got %s", profile.Loyalty.CurrentTier)
	}
}

func TestProfileDegradesOnLookupFailures(t *testing.T) {
	repo := NewMockRepository()
	repo.prefsErr = errors.New("db down")

	svc := NewService(repo, &MockOrders{err: errors.New("db down")}, pricing.NewEngine(), nil)

	profile, err := svc.ProfileFor(context.Background(), "cust-1", "ravi@example.com")
	if err != nil {
		t.Fatalf("ProfileFor should degrade, not fail: %v", err)
	}
	if profile.OrderCount != 0 {
		t.Errorf("expected count fallback 0, got %d", profile.OrderCount)
	}
	if profile.Preferences.Dietary != "Pure Veg" {
		t.Errorf("expected default preferences on failure, got %+v", profile.Preferences)
	}
}
