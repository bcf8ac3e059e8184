package delivery

import (
	"github.com/sirupsen/logrus"

	"store_management/internal/domain"
	"store_management/internal/export"
	"store_management/pkg/console"
)

type ExportHandler struct {
	productRepo  domain.ProductRepository
	customerRepo domain.CustomerRepository
	exportPath   string
	term         *console.Console
	log          *logrus.Logger
}

func NewExportHandler(productRepo domain.ProductRepository, customerRepo domain.CustomerRepository, exportPath string, term *console.Console, logger *logrus.Logger) *ExportHandler {
	return &ExportHandler{
		productRepo:  productRepo,
		customerRepo: customerRepo,
		exportPath:   exportPath,
		term:         term,
		log:          logger,
	}
}

// Export snapshots repository state into the workbook. A filesystem failure
// aborts only this operation.
func (h *ExportHandler) Export() {
	var products []*domain.Product
	for p := range h.productRepo.All() {
		products = append(products, p)
	}
	var customers []*domain.Customer
	for c := range h.customerRepo.All() {
		customers = append(customers, c)
	}

	if err := export.WriteWorkbook(h.exportPath, products, customers); err != nil {
		h.log.Errorf("Handler: Export to %s failed: %v", h.exportPath, err)
		h.term.Println("Export failed:", err)
		return
	}
	h.log.Infof("Handler: Exported %d products and %d customers to %s", len(products), len(customers), h.exportPath)
	h.term.Printf("Data exported to %s\n", h.exportPath)
}
