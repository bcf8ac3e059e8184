package delivery

import (
	"github.com/sirupsen/logrus"

	"store_management/internal/usecase"
	"store_management/internal/validation"
	"store_management/pkg/console"
)

type OrderHandler struct {
	useCase usecase.OrderUseCase
	term    *console.Console
	log     *logrus.Logger
}

func NewOrderHandler(uc usecase.OrderUseCase, term *console.Console, logger *logrus.Logger) *OrderHandler {
	return &OrderHandler{
		useCase: uc,
		term:    term,
		log:     logger,
	}
}

func (h *OrderHandler) ViewOrders() {
	name := h.term.ReadValid("Enter Customer Name: ", "Invalid Name. Re-enter: ", validation.ValidName)
	if h.term.EOF() {
		return
	}

	orders := h.useCase.OrdersForCustomer(name)
	if len(orders) == 0 {
		h.term.Println("No orders found.")
		return
	}

	for _, order := range orders {
		h.term.Printf("\nCustomer: %s, Address: %s, Date: %s\n",
			order.CustomerName, order.ShippingAddress, order.OrderDate.Format("2006-01-02 15:04:05"))
		for _, item := range order.Items {
			h.term.Printf(" - Product: %s, Qty: %d, Unit Price: $%s, Subtotal: $%s\n",
				item.ProductName, item.Quantity, item.UnitPrice.StringFixed(2), item.Subtotal().StringFixed(2))
		}
		h.term.Printf("Total Amount: $%s\n", order.TotalAmount().StringFixed(2))
	}
}
