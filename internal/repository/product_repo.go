package repository

import (
	"iter"

	"github.com/sirupsen/logrus"

	"store_management/internal/domain"
)

type inMemoryProductRepository struct {
	products []*domain.Product
	log      *logrus.Logger
}

func NewProductRepository(logger *logrus.Logger) domain.ProductRepository {
	return &inMemoryProductRepository{log: logger}
}

// FindByName returns the stored record itself, not a copy. The stock field
// on the returned product is the shared counter every caller decrements.
func (r *inMemoryProductRepository) FindByName(name string) (*domain.Product, error) {
	for _, p := range r.products {
		if p.Name == name {
			return p, nil
		}
	}
	r.log.Warnf("Repository: Product '%s' not found", name)
	return nil, domain.ErrProductNotFound
}

func (r *inMemoryProductRepository) Insert(p *domain.Product) {
	r.products = append(r.products, p)
	r.log.Infof("Repository: Product '%s' inserted (price=%s, stock=%d)", p.Name, p.Price, p.Stock)
}

func (r *inMemoryProductRepository) Remove(p *domain.Product) bool {
	for i, existing := range r.products {
		if existing.Name == p.Name && existing.Stock == p.Stock && existing.Price.Equal(p.Price) {
			r.products = append(r.products[:i], r.products[i+1:]...)
			r.log.Infof("Repository: Product '%s' removed", p.Name)
			return true
		}
	}
	r.log.Warnf("Repository: Product '%s' not found for removal", p.Name)
	return false
}

func (r *inMemoryProductRepository) All() iter.Seq[*domain.Product] {
	return func(yield func(*domain.Product) bool) {
		for _, p := range r.products {
			if !yield(p) {
				return
			}
		}
	}
}
