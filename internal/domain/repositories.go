package domain

import (
	"errors"
	"iter"
)

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrOrderCancelled reports the distinguished zero-line outcome of a
	// purchase; it is informational, not a failure.
	ErrOrderCancelled = errors.New("order cancelled: no items added")
)

// EmployeeRepository stores employees keyed by exact name.
type EmployeeRepository interface {
	FindByName(name string) (*Employee, error)
	Insert(e *Employee)
	Remove(e *Employee) bool
	All() iter.Seq[*Employee]
}

// ProductRepository stores products keyed by exact name. FindByName returns
// the live record: stock decrements through the returned pointer are visible
// to every subsequent reader.
type ProductRepository interface {
	FindByName(name string) (*Product, error)
	Insert(p *Product)
	Remove(p *Product) bool
	All() iter.Seq[*Product]
}

// CustomerRepository stores customers keyed by exact name.
type CustomerRepository interface {
	FindByName(name string) (*Customer, error)
	Insert(c *Customer)
	Remove(c *Customer) bool
	All() iter.Seq[*Customer]
}

// OrderRepository stores committed orders. Customer-name lookup is
// case-insensitive, unlike the other repositories, to support report
// queries.
type OrderRepository interface {
	FindByCustomerName(name string) []*Order
	Insert(o *Order)
	Remove(o *Order) bool
	All() iter.Seq[*Order]
}
