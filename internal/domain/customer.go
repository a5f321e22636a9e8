package domain

import "time"

// CustomerRole represents the role of a registered customer
type CustomerRole string

const (
	RoleAdmin  CustomerRole = "admin"
	RoleMember CustomerRole = "member"
)

// Customer is a registered user of the shop.
type Customer struct {
	ID           int64
	FullName     string
	Email        string
	PhoneNumber  *string
	PasswordHash string
	Role         CustomerRole
	CreatedAt    time.Time
}

func (c *Customer) IsAdmin() bool {
	return c.Role == RoleAdmin
}
