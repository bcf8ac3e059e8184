package repository

import (
	"iter"
	"strings"

	"github.com/sirupsen/logrus"

	"store_management/internal/domain"
)

type inMemoryOrderRepository struct {
	orders []*domain.Order
	log    *logrus.Logger
}

func NewOrderRepository(logger *logrus.Logger) domain.OrderRepository {
	return &inMemoryOrderRepository{log: logger}
}

// FindByCustomerName matches case-insensitively so reports find orders
// regardless of how the name was typed.
func (r *inMemoryOrderRepository) FindByCustomerName(name string) []*domain.Order {
	var matched []*domain.Order
	for _, o := range r.orders {
		if strings.EqualFold(o.CustomerName, name) {
			matched = append(matched, o)
		}
	}
	r.log.Infof("Repository: Found %d orders for customer '%s'", len(matched), name)
	return matched
}

func (r *inMemoryOrderRepository) Insert(o *domain.Order) {
	r.orders = append(r.orders, o)
	r.log.Infof("Repository: Order %s inserted for customer '%s' (%d items)", o.ID, o.CustomerName, len(o.Items))
}

func (r *inMemoryOrderRepository) Remove(o *domain.Order) bool {
	for i, existing := range r.orders {
		if existing.ID == o.ID {
			r.orders = append(r.orders[:i], r.orders[i+1:]...)
			r.log.Infof("Repository: Order %s removed", o.ID)
			return true
		}
	}
	r.log.Warnf("Repository: Order %s not found for removal", o.ID)
	return false
}

func (r *inMemoryOrderRepository) All() iter.Seq[*domain.Order] {
	return func(yield func(*domain.Order) bool) {
		for _, o := range r.orders {
			if !yield(o) {
				return
			}
		}
	}
}
