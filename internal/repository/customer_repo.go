package repository

import (
	"iter"

	"github.com/sirupsen/logrus"

	"store_management/internal/domain"
)

type inMemoryCustomerRepository struct {
	customers []*domain.Customer
	log       *logrus.Logger
}

func NewCustomerRepository(logger *logrus.Logger) domain.CustomerRepository {
	return &inMemoryCustomerRepository{log: logger}
}

func (r *inMemoryCustomerRepository) FindByName(name string) (*domain.Customer, error) {
	for _, c := range r.customers {
		if c.Name == name {
			return c, nil
		}
	}
	r.log.Warnf("Repository: Customer '%s' not found", name)
	return nil, domain.ErrCustomerNotFound
}

func (r *inMemoryCustomerRepository) Insert(c *domain.Customer) {
	r.customers = append(r.customers, c)
	r.log.Infof("Repository: Customer '%s' inserted", c.Name)
}

func (r *inMemoryCustomerRepository) Remove(c *domain.Customer) bool {
	for i, existing := range r.customers {
		if *existing == *c {
			r.customers = append(r.customers[:i], r.customers[i+1:]...)
			r.log.Infof("Repository: Customer '%s' removed", c.Name)
			return true
		}
	}
	r.log.Warnf("Repository: Customer '%s' not found for removal", c.Name)
	return false
}

func (r *inMemoryCustomerRepository) All() iter.Seq[*domain.Customer] {
	return func(yield func(*domain.Customer) bool) {
		for _, c := range r.customers {
			if !yield(c) {
				return
			}
		}
	}
}
