package usecase

import (
	"errors"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"store_management/internal/domain"
	"store_management/internal/validation"
)

type ProductUseCase interface {
	AddProduct(p *domain.Product) error
	FindProduct(name string) (*domain.Product, error)
	UpdateProduct(name string, price *decimal.Decimal, stock *int) error
	DeleteProduct(name string) error
	ListProducts() []*domain.Product
}

type productUseCase struct {
	productRepo domain.ProductRepository
	log         *logrus.Logger
}

func NewProductUseCase(repo domain.ProductRepository, logger *logrus.Logger) ProductUseCase {
	return &productUseCase{
		productRepo: repo,
		log:         logger,
	}
}

func (uc *productUseCase) AddProduct(p *domain.Product) error {
	if !validation.ValidName(p.Name) {
		uc.log.Warn("Use Case: Attempted to add product with empty name")
		return errors.New("product name cannot be empty")
	}
	if p.Price.IsNegative() {
		uc.log.Warnf("Use Case: Attempted to add product '%s' with negative price %s", p.Name, p.Price)
		return errors.New("product price cannot be negative")
	}
	if p.Stock < 0 {
		uc.log.Warnf("Use Case: Attempted to add product '%s' with negative stock %d", p.Name, p.Stock)
		return errors.New("product stock cannot be negative")
	}
	uc.productRepo.Insert(p)
	uc.log.Infof("Use Case: Product '%s' added (price=%s, stock=%d)", p.Name, p.Price, p.Stock)
	return nil
}

func (uc *productUseCase) FindProduct(name string) (*domain.Product, error) {
	return uc.productRepo.FindByName(name)
}

// UpdateProduct updates only the fields supplied; a nil price or stock
// leaves that field unchanged, so an edit value that fails to parse is
// simply skipped.
func (uc *productUseCase) UpdateProduct(name string, price *decimal.Decimal, stock *int) error {
	product, err := uc.productRepo.FindByName(name)
	if err != nil {
		uc.log.Warnf("Use Case: Product '%s' not found for update", name)
		return err
	}
	if price != nil {
		if price.IsNegative() {
			return errors.New("product price cannot be negative")
		}
		product.Price = *price
	}
	if stock != nil {
		if *stock < 0 {
			return errors.New("product stock cannot be negative")
		}
		product.Stock = *stock
	}
	uc.log.Infof("Use Case: Product '%s' updated (price=%s, stock=%d)", name, product.Price, product.Stock)
	return nil
}

func (uc *productUseCase) DeleteProduct(name string) error {
	product, err := uc.productRepo.FindByName(name)
	if err != nil {
		uc.log.Warnf("Use Case: Product '%s' not found for deletion", name)
		return err
	}
	uc.productRepo.Remove(product)
	uc.log.Infof("Use Case: Product '%s' deleted", name)
	return nil
}

func (uc *productUseCase) ListProducts() []*domain.Product {
	var products []*domain.Product
	for p := range uc.productRepo.All() {
		products = append(products, p)
	}
	uc.log.Infof("Use Case: Listed %d products", len(products))
	return products
}
