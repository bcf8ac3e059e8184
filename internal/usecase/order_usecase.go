package usecase

import (
	"github.com/sirupsen/logrus"

	"store_management/internal/domain"
)

type OrderUseCase interface {
	// OrdersForCustomer returns every committed order for the named
	// customer, matched case-insensitively.
	OrdersForCustomer(name string) []*domain.Order
}

type orderUseCase struct {
	orderRepo domain.OrderRepository
	log       *logrus.Logger
}

func NewOrderUseCase(repo domain.OrderRepository, logger *logrus.Logger) OrderUseCase {
	return &orderUseCase{
		orderRepo: repo,
		log:       logger,
	}
}

func (uc *orderUseCase) OrdersForCustomer(name string) []*domain.Order {
	orders := uc.orderRepo.FindByCustomerName(name)
	uc.log.Infof("Use Case: Retrieved %d orders for customer '%s'", len(orders), name)
	return orders
}
