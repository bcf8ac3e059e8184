package delivery

import (
	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"

	"store_management/internal/domain"
	"store_management/internal/usecase"
	"store_management/internal/validation"
	"store_management/pkg/console"
)

type EmployeeHandler struct {
	useCase usecase.EmployeeUseCase
	term    *console.Console
	log     *logrus.Logger
}

func NewEmployeeHandler(uc usecase.EmployeeUseCase, term *console.Console, logger *logrus.Logger) *EmployeeHandler {
	return &EmployeeHandler{
		useCase: uc,
		term:    term,
		log:     logger,
	}
}

// Manage runs the employee submenu. Unknown options fall through silently.
func (h *EmployeeHandler) Manage() {
	h.term.Println("\n1. Add Employee\n2. Edit Employee\n3. Delete Employee\n4. List Employees")
	switch h.term.ReadLine("") {
	case "1":
		h.addEmployee()
	case "2":
		h.editEmployee()
	case "3":
		h.deleteEmployee()
	case "4":
		h.listEmployees()
	}
}

func (h *EmployeeHandler) addEmployee() {
	name := h.term.ReadValid("Name: ", "Invalid Name. Re-enter: ", validation.ValidName)
	email := h.term.ReadValid("Email: ", "Invalid email. Re-enter(xxx@xxx.xx): ", validation.ValidEmail)
	phone := h.term.ReadValid("Phone (10 digits): ", "Invalid phone. Re-enter: ", validation.ValidPhone)

	if err := h.useCase.AddEmployee(&domain.Employee{Name: name, Email: email, Phone: phone}); err != nil {
		h.log.Errorf("Handler: Failed to add employee '%s': %v", name, err)
		h.term.Println("Could not add employee:", err)
	}
}

func (h *EmployeeHandler) editEmployee() {
	name := h.term.ReadValid("Enter Name: ", "Invalid Name. Re-enter: ", validation.ValidName)

	if _, err := h.useCase.FindEmployee(name); err != nil {
		h.term.Println("Cant find Employee")
		return
	}

	email := h.term.ReadValid("New Email: ", "Invalid email. Re-enter(xxx@xxx.xx): ", validation.ValidEmail)
	phone := h.term.ReadValid("New Phone(10 digits): ", "Invalid phone. Re-enter: ", validation.ValidPhone)

	if err := h.useCase.UpdateEmployee(name, email, phone); err != nil {
		h.log.Warnf("Handler: Failed to edit employee '%s': %v", name, err)
		h.term.Println("Could not update employee:", err)
	}
}

func (h *EmployeeHandler) deleteEmployee() {
	name := h.term.ReadValid("Enter Employee Name to delete: ", "Invalid Name. Re-enter: ", validation.ValidName)
	// Lookup miss is a silent no-op, matching delete semantics elsewhere.
	_ = h.useCase.DeleteEmployee(name)
}

func (h *EmployeeHandler) listEmployees() {
	table := tablewriter.NewTable(h.term.Writer())
	table.Header([]string{"Name", "Email", "Phone"})
	for _, e := range h.useCase.ListEmployees() {
		table.Append([]string{e.Name, e.Email, e.Phone})
	}
	table.Render()
}
