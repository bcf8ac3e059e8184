package usecase

import (
	"errors"

	"github.com/sirupsen/logrus"

	"store_management/internal/domain"
	"store_management/internal/validation"
)

type EmployeeUseCase interface {
	AddEmployee(e *domain.Employee) error
	FindEmployee(name string) (*domain.Employee, error)
	UpdateEmployee(name, email, phone string) error
	DeleteEmployee(name string) error
	ListEmployees() []*domain.Employee
}

type employeeUseCase struct {
	employeeRepo domain.EmployeeRepository
	log          *logrus.Logger
}

func NewEmployeeUseCase(repo domain.EmployeeRepository, logger *logrus.Logger) EmployeeUseCase {
	return &employeeUseCase{
		employeeRepo: repo,
		log:          logger,
	}
}

func (uc *employeeUseCase) AddEmployee(e *domain.Employee) error {
	if !validation.ValidName(e.Name) {
		uc.log.Warn("Use Case: Attempted to add employee with empty name")
		return errors.New("employee name cannot be empty")
	}
	if !validation.ValidEmail(e.Email) {
		uc.log.Warnf("Use Case: Attempted to add employee '%s' with invalid email", e.Name)
		return errors.New("invalid employee email")
	}
	if !validation.ValidPhone(e.Phone) {
		uc.log.Warnf("Use Case: Attempted to add employee '%s' with invalid phone", e.Name)
		return errors.New("invalid employee phone")
	}
	uc.employeeRepo.Insert(e)
	uc.log.Infof("Use Case: Employee '%s' added", e.Name)
	return nil
}

func (uc *employeeUseCase) FindEmployee(name string) (*domain.Employee, error) {
	return uc.employeeRepo.FindByName(name)
}

// UpdateEmployee replaces the email and phone of the employee stored under
// name. Both replacement values must already be validated by the caller's
// prompt loop; they are checked again here as a guard.
func (uc *employeeUseCase) UpdateEmployee(name, email, phone string) error {
	emp, err := uc.employeeRepo.FindByName(name)
	if err != nil {
		uc.log.Warnf("Use Case: Employee '%s' not found for update", name)
		return err
	}
	if !validation.ValidEmail(email) {
		return errors.New("invalid employee email")
	}
	if !validation.ValidPhone(phone) {
		return errors.New("invalid employee phone")
	}
	emp.Email = email
	emp.Phone = phone
	uc.log.Infof("Use Case: Employee '%s' updated", name)
	return nil
}

func (uc *employeeUseCase) DeleteEmployee(name string) error {
	emp, err := uc.employeeRepo.FindByName(name)
	if err != nil {
		uc.log.Warnf("Use Case: Employee '%s' not found for deletion", name)
		return err
	}
	uc.employeeRepo.Remove(emp)
	uc.log.Infof("Use Case: Employee '%s' deleted", name)
	return nil
}

func (uc *employeeUseCase) ListEmployees() []*domain.Employee {
	var employees []*domain.Employee
	for e := range uc.employeeRepo.All() {
		employees = append(employees, e)
	}
	uc.log.Infof("Use Case: Listed %d employees", len(employees))
	return employees
}
