package delivery

import (
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"store_management/internal/domain"
	"store_management/internal/usecase"
	"store_management/internal/validation"
	"store_management/pkg/console"
)

type ProductHandler struct {
	useCase usecase.ProductUseCase
	term    *console.Console
	log     *logrus.Logger
}

func NewProductHandler(uc usecase.ProductUseCase, term *console.Console, logger *logrus.Logger) *ProductHandler {
	return &ProductHandler{
		useCase: uc,
		term:    term,
		log:     logger,
	}
}

// Manage runs the product submenu. Unknown options fall through silently.
func (h *ProductHandler) Manage() {
	h.term.Println("\n1. Add Product\n2. Edit Product\n3. Delete Product\n4. List Products")
	switch h.term.ReadLine("") {
	case "1":
		h.addProduct()
	case "2":
		h.editProduct()
	case "3":
		h.deleteProduct()
	case "4":
		h.listProducts()
	}
}

func (h *ProductHandler) addProduct() {
	name := h.term.ReadValid("Name: ", "Invalid Name. Re-enter: ", validation.ValidName)

	price := h.readPrice("Price: ", "Invalid Price. Re-enter: ")
	stock := h.readStock("Stock: ", "Invalid Stock. Re-enter: ")

	if err := h.useCase.AddProduct(&domain.Product{Name: name, Price: price, Stock: stock}); err != nil {
		h.log.Errorf("Handler: Failed to add product '%s': %v", name, err)
		h.term.Println("Could not add product:", err)
	}
}

// editProduct updates price and stock individually: a value that fails to
// parse leaves that field unchanged instead of re-prompting.
func (h *ProductHandler) editProduct() {
	name := h.term.ReadValid("Enter Name: ", "Invalid Name. Re-enter: ", validation.ValidName)

	if _, err := h.useCase.FindProduct(name); err != nil {
		return
	}

	var newPrice *decimal.Decimal
	if price, err := decimal.NewFromString(h.term.ReadLine("New Price: ")); err == nil && !price.IsNegative() {
		newPrice = &price
	}
	var newStock *int
	if stock, err := strconv.Atoi(h.term.ReadLine("New Stock: ")); err == nil && stock >= 0 {
		newStock = &stock
	}

	if err := h.useCase.UpdateProduct(name, newPrice, newStock); err != nil {
		h.log.Warnf("Handler: Failed to edit product '%s': %v", name, err)
	}
}

func (h *ProductHandler) deleteProduct() {
	name := h.term.ReadValid("Enter Product Name to delete: ", "Invalid Name. Re-enter: ", validation.ValidName)
	_ = h.useCase.DeleteProduct(name)
}

func (h *ProductHandler) listProducts() {
	table := tablewriter.NewTable(h.term.Writer())
	table.Header([]string{"Name", "Price", "Stock"})
	for _, p := range h.useCase.ListProducts() {
		table.Append([]string{p.Name, "$" + p.Price.StringFixed(2), strconv.Itoa(p.Stock)})
	}
	table.Render()
}

func (h *ProductHandler) readPrice(prompt, reprompt string) decimal.Decimal {
	raw := h.term.ReadValid(prompt, reprompt, func(s string) bool {
		price, err := decimal.NewFromString(s)
		return err == nil && !price.IsNegative()
	})
	price, err := decimal.NewFromString(raw)
	if err != nil {
		// Only reachable on input exhaustion.
		return decimal.Zero
	}
	return price
}

func (h *ProductHandler) readStock(prompt, reprompt string) int {
	raw := h.term.ReadValid(prompt, reprompt, func(s string) bool {
		stock, err := strconv.Atoi(s)
		return err == nil && stock >= 0
	})
	stock, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return stock
}
