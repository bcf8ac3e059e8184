// Package delivery implements the interactive console shell: the menu loop
// and per-area handlers that sit between the user and the use cases.
package delivery

import (
	"github.com/sirupsen/logrus"

	"store_management/pkg/console"
)

type Shell struct {
	term      *console.Console
	employees *EmployeeHandler
	products  *ProductHandler
	purchase  *PurchaseHandler
	orders    *OrderHandler
	export    *ExportHandler
	log       *logrus.Logger
}

func NewShell(term *console.Console, employees *EmployeeHandler, products *ProductHandler, purchase *PurchaseHandler, orders *OrderHandler, export *ExportHandler, logger *logrus.Logger) *Shell {
	return &Shell{
		term:      term,
		employees: employees,
		products:  products,
		purchase:  purchase,
		orders:    orders,
		export:    export,
		log:       logger,
	}
}

// Run drives the top-level menu until the user selects exit or the input
// source is exhausted. Unknown selections are reported and re-prompted.
func (s *Shell) Run() {
	for !s.term.EOF() {
		s.term.Println("\n1. Manage Employees\n2. Manage Products\n3. Customer Purchase\n4. View Orders\n5. Export to Excel\n0. Exit")
		choice := s.term.ReadLine("Select option: ")

		switch choice {
		case "1":
			s.employees.Manage()
		case "2":
			s.products.Manage()
		case "3":
			s.purchase.Purchase()
		case "4":
			s.orders.ViewOrders()
		case "5":
			s.export.Export()
		case "0":
			s.log.Info("Shell: Exit selected")
			return
		default:
			if s.term.EOF() {
				return
			}
			s.term.Println("Invalid option.")
		}
	}
}
