package repository

import (
	"iter"

	"github.com/sirupsen/logrus"

	"store_management/internal/domain"
)

type inMemoryEmployeeRepository struct {
	employees []*domain.Employee
	log       *logrus.Logger
}

func NewEmployeeRepository(logger *logrus.Logger) domain.EmployeeRepository {
	return &inMemoryEmployeeRepository{log: logger}
}

func (r *inMemoryEmployeeRepository) FindByName(name string) (*domain.Employee, error) {
	for _, e := range r.employees {
		if e.Name == name {
			return e, nil
		}
	}
	r.log.Warnf("Repository: Employee '%s' not found", name)
	return nil, domain.ErrEmployeeNotFound
}

func (r *inMemoryEmployeeRepository) Insert(e *domain.Employee) {
	r.employees = append(r.employees, e)
	r.log.Infof("Repository: Employee '%s' inserted", e.Name)
}

func (r *inMemoryEmployeeRepository) Remove(e *domain.Employee) bool {
	for i, existing := range r.employees {
		if *existing == *e {
			r.employees = append(r.employees[:i], r.employees[i+1:]...)
			r.log.Infof("Repository: Employee '%s' removed", e.Name)
			return true
		}
	}
	r.log.Warnf("Repository: Employee '%s' not found for removal", e.Name)
	return false
}

func (r *inMemoryEmployeeRepository) All() iter.Seq[*domain.Employee] {
	return func(yield func(*domain.Employee) bool) {
		for _, e := range r.employees {
			if !yield(e) {
				return
			}
		}
	}
}
