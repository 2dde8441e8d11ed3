package auth

import (
	"errors"

	"github.com/google/uuid"
)

type InMemoryCustomerRepository struct {
	customers map[string]*Customer
}

func NewInMemoryCustomerRepository() *InMemoryCustomerRepository {
	return &InMemoryCustomerRepository{
		customers: make(map[string]*Customer),
	}
}

func (r *InMemoryCustomerRepository) Save(customer *Customer) error {
	// Generate UUID if not already set
	if customer.ID == "" {
		customer.ID = uuid.New().String()
	}
	r.customers[customer.Email] = customer
	return nil
}

func (r *InMemoryCustomerRepository) ExistsByEmail(email string) (bool, error) {
	_, exists := r.customers[email]
	return exists, nil
}

func (r *InMemoryCustomerRepository) FindByEmail(email string) (*Customer, error) {
	customer, ok := r.customers[email]
	if !ok {
		return nil, errors.New("customer not found")
	}
	return customer, nil
}
