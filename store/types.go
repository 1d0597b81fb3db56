// Package store holds the sample domain used by tests and documentation.
package store

import (
	"time"
)

// Product represents an individual item available for sale.
// Price is kept in cents (lowest currency unit) to avoid floating-point errors.
type Product struct {
	ID         int64  `hydrator:"id"`
	SKU        string `hydrator:"sku"`
	Name       string `hydrator:"name"`
	PriceCents int64  `hydrator:"price_cents"`
	Inventory  int    `hydrator:"inventory_count"`
	Available  bool   `hydrator:"available"`
}

// Address is a postal address embedded in customers and orders.
type Address struct {
	Street string
	City   string
	Zip    string
}

// Customer represents the user placing orders.
type Customer struct {
	ID           int64
	Email        string
	FullName     string
	PasswordHash string
	Address      *Address
	IsActive     bool
	Newsletter   bool
	internalNote string
}

// Note returns the unexported note, which converters never see.
func (c Customer) Note() string { return c.internalNote }

// WithNote returns a copy carrying an internal note.
func (c Customer) WithNote(note string) Customer {
	c.internalNote = note
	return c
}

// Order represents a transaction made by a customer.
type Order struct {
	ID         int64
	CustomerID int64
	Status     OrderStatus
	TotalCents int64
	Items      []OrderItem
	Gift       bool
	OrderedAt  time.Time
}

// OrderItem represents a specific product line within an order.
// It snapshots the price at the time of purchase.
type OrderItem struct {
	ProductID int64
	Name      string
	Quantity  int
	UnitPrice int64
}

// OrderStatus is a custom type for type-safe status handling.
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusPaid      OrderStatus = "PAID"
	StatusShipped   OrderStatus = "SHIPPED"
	StatusCancelled OrderStatus = "CANCELLED"
)

// Audited is embedded to show that promoted fields are flattened.
type Audited struct {
	CreatedBy string
	Revision  int
}

// Coupon is a discount code with audit metadata.
type Coupon struct {
	Audited
	Code    string
	Percent uint8
	Secret  string `hydrator:"-"`
}
