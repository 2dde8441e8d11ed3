package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresCustomerRepository struct {
	db *pgxpool.Pool
}

func NewPostgresCustomerRepository(db *pgxpool.Pool) *PostgresCustomerRepository {
	return &PostgresCustomerRepository{db: db}
}

func (r *PostgresCustomerRepository) Save(customer *Customer) error {
	// Generate UUID if not already set
	if customer.ID == "" {
		customer.ID = uuid.New().String()
	}

	query := `
		INSERT INTO customers (id, name, email, phone, password, role)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.Exec(context.Background(), query,
		customer.ID, customer.Name, customer.Email, customer.Phone, customer.Password, customer.Role,
	)
	return err
}

func (r *PostgresCustomerRepository) ExistsByEmail(email string) (bool, error) {
	query := `SELECT 1 FROM customers WHERE email=$1 LIMIT 1`
	row := r.db.QueryRow(context.Background(), query, email)

	var exists int
	err := row.Scan(&exists)
	if err != nil {
		return false, nil
	}
	return true, nil
}

func (r *PostgresCustomerRepository) FindByEmail(email string) (*Customer, error) {
	query := `
		SELECT id, name, email, phone, password, role
		FROM customers WHERE email=$1
	`
	row := r.db.QueryRow(context.Background(), query, email)

	customer := &Customer{}
	if err := row.Scan(
		&customer.ID, &customer.Name, &customer.Email,
		&customer.Phone, &customer.Password, &customer.Role,
	); err != nil {
		return nil, errors.New("customer not found")
	}
	return customer, nil
}
