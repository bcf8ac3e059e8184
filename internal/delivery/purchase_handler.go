package delivery

import (
	"errors"

	"github.com/sirupsen/logrus"

	"store_management/internal/domain"
	"store_management/internal/usecase"
	"store_management/internal/validation"
	"store_management/pkg/console"
)

type PurchaseHandler struct {
	customers usecase.CustomerUseCase
	purchase  usecase.PurchaseUseCase
	term      *console.Console
	log       *logrus.Logger
}

func NewPurchaseHandler(customers usecase.CustomerUseCase, purchase usecase.PurchaseUseCase, term *console.Console, logger *logrus.Logger) *PurchaseHandler {
	return &PurchaseHandler{
		customers: customers,
		purchase:  purchase,
		term:      term,
		log:       logger,
	}
}

// Purchase resolves the purchasing customer and hands off to the order
// builder. A zero-line build is a cancellation, not a failure.
func (h *PurchaseHandler) Purchase() {
	name := h.term.ReadValid("Enter Customer Name: ", "Invalid name. Re-enter: ", validation.ValidName)
	if h.term.EOF() {
		return
	}

	customer := h.customers.ResolveCustomer(name)
	if customer == nil {
		return
	}

	if _, err := h.purchase.BuildOrder(customer); errors.Is(err, domain.ErrOrderCancelled) {
		h.log.Infof("Handler: Purchase cancelled for customer '%s'", name)
		h.term.Println("No items added. Order cancelled.")
	}
}
