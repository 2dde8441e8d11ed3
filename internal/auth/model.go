package auth

const (
	RoleCustomer = "CUSTOMER"
	RoleAdmin    = "ADMIN"
)

// Customer is the domain entity.
type Customer struct {
	ID       string
	Name     string
	Email    string
	Phone    string
	Password string
	Role     string
}
