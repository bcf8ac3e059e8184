package usecase

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"store_management/internal/domain"
	"store_management/pkg/console"
)

// doneSentinel ends line collection, matched case-insensitively.
const doneSentinel = "done"

type PurchaseUseCase interface {
	// BuildOrder collects order lines for customer until the sentinel, then
	// finalizes. Returns domain.ErrOrderCancelled when no line was accepted;
	// the decision is made only at the sentinel, never mid-loop.
	BuildOrder(customer *domain.Customer) (*domain.Order, error)
}

type purchaseUseCase struct {
	productRepo domain.ProductRepository
	orderRepo   domain.OrderRepository
	term        *console.Console
	log         *logrus.Logger
}

func NewPurchaseUseCase(productRepo domain.ProductRepository, orderRepo domain.OrderRepository, term *console.Console, logger *logrus.Logger) PurchaseUseCase {
	return &purchaseUseCase{
		productRepo: productRepo,
		orderRepo:   orderRepo,
		term:        term,
		log:         logger,
	}
}

func (uc *purchaseUseCase) BuildOrder(customer *domain.Customer) (*domain.Order, error) {
	order := &domain.Order{
		ID:              uuid.NewString(),
		CustomerName:    customer.Name,
		ShippingAddress: customer.Address,
		OrderDate:       time.Now(),
	}
	uc.log.Infof("Use Case: Collecting order %s for customer '%s'", order.ID, customer.Name)

	uc.term.Println("====Product List Stock====")
	for p := range uc.productRepo.All() {
		uc.term.Printf("%s | $%s | Stock: %d\n", p.Name, p.Price.StringFixed(2), p.Stock)
	}

	for !uc.term.EOF() {
		name := uc.term.ReadLine("Enter Product Name (or 'done'): ")
		if strings.EqualFold(name, doneSentinel) {
			break
		}

		product, err := uc.productRepo.FindByName(name)
		if err != nil {
			// Not an order-ending error: the line is skipped.
			uc.term.Println("Product not found.")
			continue
		}

		uc.term.Printf("Current stock: %d\n", product.Stock)

		qty, err := strconv.Atoi(uc.term.ReadLine("Quantity: "))
		if err != nil || qty <= 0 || qty > product.Stock {
			uc.log.Warnf("Use Case: Rejected quantity for product '%s' (stock=%d): %v", product.Name, product.Stock, err)
			uc.term.Println("Invalid quantity.")
			continue
		}

		order.Items = append(order.Items, domain.OrderDetail{
			ProductName: product.Name,
			Quantity:    qty,
			UnitPrice:   product.Price,
		})
		// Decrement immediately: the shared counter must reflect this line
		// for later lines of the same order and for every other reader. An
		// accepted line guarantees the order finalizes, so the decrement is
		// never undone.
		product.Stock -= qty
		uc.log.Infof("Use Case: Accepted line product='%s' qty=%d price=%s (stock now %d)", product.Name, qty, product.Price, product.Stock)
	}

	if len(order.Items) == 0 {
		uc.log.Infof("Use Case: Order %s discarded, no items accepted", order.ID)
		return nil, domain.ErrOrderCancelled
	}

	uc.orderRepo.Insert(order)
	uc.log.Infof("Use Case: Order %s finalized with %d items, total %s", order.ID, len(order.Items), order.TotalAmount())

	uc.term.Println("\nOrder Summary:")
	for _, item := range order.Items {
		uc.term.Printf(" - %s, Qty: %d, Unit Price: $%s, Subtotal: $%s\n",
			item.ProductName, item.Quantity, item.UnitPrice.StringFixed(2), item.Subtotal().StringFixed(2))
	}
	uc.term.Printf("Total Amount: $%s\n", order.TotalAmount().StringFixed(2))
	return order, nil
}
