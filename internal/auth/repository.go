package auth

// CustomerRepository defines the data-access contract.
// Service depends ONLY on this interface.
type CustomerRepository interface {
	Save(customer *Customer) error
	ExistsByEmail(email string) (bool, error)
	FindByEmail(email string) (*Customer, error)
}
