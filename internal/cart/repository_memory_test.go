package cart

import (
	"context"
	"testing"
)

func TestMemoryRepositorySaveAndGet(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	lines := []Line{
		{ItemID: "I1", Quantity: 2},
		{ItemID: "I2", Quantity: 1},
	}
	if err := repo.Save(ctx, "cust-1", lines); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	got, err := repo.Get(ctx, "cust-1")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if len(got) != 2 || got[0].ItemID != "I1" || got[1].Quantity != 1 {
		t.Errorf("unexpected cart: %+v", got)
	}

	// Mutating the returned slice must not touch the stored copy.
	got[0].Quantity = 99
	again, _ := repo.Get(ctx, "cust-1")
	if again[0].Quantity != 2 {
		t.Error("stored cart was mutated through the returned slice")
	}
}

func TestMemoryRepositoryMissingCartIsEmpty(t *testing.T) {
	repo := NewMemoryRepository()

	got, err := repo.Get(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty cart, got %+v", got)
	}
}

func TestMemoryRepositoryClear(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	repo.Save(ctx, "cust-1", []Line{{ItemID: "I1", Quantity: 1}})
	if err := repo.Clear(ctx, "cust-1"); err != nil {
		t.Fatalf("Clear returned error: %v", err)
	}

	got, _ := repo.Get(ctx, "cust-1")
	if len(got) != 0 {
		t.Errorf("expected cleared cart, got %+v", got)
	}
}

func TestServiceDropsZeroQuantityLines(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo, nil)
	ctx := context.Background()

	err := svc.Save(ctx, "cust-1", []Line{
		{ItemID: "I1", Quantity: 2},
		{ItemID: "I2", Quantity: 0},
		{ItemID: "", Quantity: 3},
	})
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	got, _ := svc.Get(ctx, "cust-1")
	if len(got) != 1 || got[0].ItemID != "I1" {
		t.Errorf("expected only I1 kept, got %+v", got)
	}
}

func TestServiceSaveAllZeroClearsCart(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo, nil)
	ctx := context.Background()

	svc.Save(ctx, "cust-1", []Line{{ItemID: "I1", Quantity: 1}})
	svc.Save(ctx, "cust-1", []Line{{ItemID: "I1", Quantity: 0}})

	got, _ := svc.Get(ctx, "cust-1")
	if len(got) != 0 {
		t.Errorf("expected cart cleared, got %+v", got)
	}
}

func TestServiceRequiresCustomer(t *testing.T) {
	svc := NewService(NewMemoryRepository(), nil)

	if err := svc.Save(context.Background(), "", nil); err != ErrNoCustomer {
		t.Errorf("expected ErrNoCustomer, got %v", err)
	}
	if _, err := svc.Get(context.Background(), ""); err != ErrNoCustomer {
		t.Errorf("expected ErrNoCustomer, got %v", err)
	}
}
