// Package warehouse is the shared domain model used across the examples
// and the conversion tests: a small commerce schema with nested beans,
// collections, enum-valued fields and accessor-guarded members.
package warehouse

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"generic-caster/registry"
	"generic-caster/utils"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusPaid      OrderStatus = "paid"
	StatusShipped   OrderStatus = "shipped"
	StatusCancelled OrderStatus = "cancelled"
)

func (s OrderStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusShipped, StatusCancelled:
		return true
	}
	return false
}

// Address represents a physical or billing/shipping address.
type Address struct {
	ID         uint
	Street     string
	City       string
	State      string
	PostalCode string
	Country    string
	IsDefault  bool
}

// Customer represents a store customer. The email is accessor-guarded:
// assignment goes through SetEmail, which normalizes and validates.
type Customer struct {
	ID        uint
	FirstName string
	LastName  string
	Phone     string

	email string

	DateOfBirth *time.Time
	Addresses   []Address
}

var ErrBadEmail = errors.New("malformed email address")

func (c *Customer) GetEmail() string { return c.email }

func (c *Customer) SetEmail(email string) error {
	email = strings.TrimSpace(strings.ToLower(email))
	local, domain := utils.Unpack2(strings.SplitN(email, "@", 2))
	if local == "" || domain == "" {
		return fmt.Errorf("%w: %q", ErrBadEmail, email)
	}
	c.email = email
	return nil
}

// Product represents a sellable item in the store. Prices are kept in
// minor currency units.
type Product struct {
	ID          uint
	SKU         string
	Name        string
	Description string
	Price       int64
	Stock       int
	IsActive    bool
	Weight      float64 // grams
}

// Order represents a customer's purchase. ShippingAddress is a
// denormalized snapshot, Items the line items in order.
type Order struct {
	ID          uint
	OrderNumber string
	Status      OrderStatus
	TotalAmount int64
	Currency    string

	ShippingAddress Address
	Customer        *Customer
	Items           []OrderItem

	PlacedAt *time.Time
}

// OrderItem is a line item within an order.
type OrderItem struct {
	ID         uint
	ProductID  uint
	Quantity   int
	UnitPrice  int64
	TotalPrice int64

	Product *Product
}

func init() {
	registry.Default.MustRegister(
		Address{}, Customer{}, Product{}, Order{}, OrderItem{},
	)
}
