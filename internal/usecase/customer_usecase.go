package usecase

import (
	"errors"

	"github.com/sirupsen/logrus"

	"store_management/internal/domain"
	"store_management/internal/validation"
	"store_management/pkg/console"
)

type CustomerUseCase interface {
	// ResolveCustomer returns the customer stored under name, or drives
	// validated creation of a new one when no such customer exists.
	// Returns nil when the input source is exhausted before every field
	// has passed validation; nothing is inserted in that case.
	ResolveCustomer(name string) *domain.Customer
}

type customerUseCase struct {
	customerRepo domain.CustomerRepository
	term         *console.Console
	log          *logrus.Logger
}

func NewCustomerUseCase(repo domain.CustomerRepository, term *console.Console, logger *logrus.Logger) CustomerUseCase {
	return &customerUseCase{
		customerRepo: repo,
		term:         term,
		log:          logger,
	}
}

// ResolveCustomer never re-validates a stored customer: whatever passed
// validation at creation time is returned as-is. A missing customer is
// acquired field by field, each prompt repeating until its validator
// accepts, then inserted exactly once. The prior lookup guarantees the name
// cannot collide.
func (uc *customerUseCase) ResolveCustomer(name string) *domain.Customer {
	existing, err := uc.customerRepo.FindByName(name)
	if err == nil {
		uc.log.Infof("Use Case: Customer '%s' found, reusing stored record", name)
		return existing
	}
	if !errors.Is(err, domain.ErrCustomerNotFound) {
		uc.log.Errorf("Use Case: Unexpected lookup failure for customer '%s': %v", name, err)
	}

	uc.log.Infof("Use Case: Customer '%s' not found, starting acquisition", name)

	phone := uc.term.ReadValid(
		"Customer not found. Enter Phone (10 digits): ",
		"Invalid phone. Re-enter: ",
		validation.ValidPhone,
	)
	address := uc.term.ReadValid(
		"Shipping Address: ",
		"Invalid address. Re-enter: ",
		validation.ValidAddress,
	)
	email := uc.term.ReadValid(
		"Email: ",
		"Invalid email. Re-enter(xxx@xxx.xx): ",
		validation.ValidEmail,
	)

	// An exhausted input source ends the re-prompt loops with whatever was
	// last read; only fully validated customers may be stored.
	if uc.term.EOF() {
		uc.log.Warnf("Use Case: Input exhausted during acquisition of customer '%s', nothing stored", name)
		return nil
	}

	customer := &domain.Customer{
		Name:    name,
		Phone:   phone,
		Address: address,
		Email:   email,
	}
	uc.customerRepo.Insert(customer)
	uc.log.Infof("Use Case: Customer '%s' created", name)
	return customer
}
