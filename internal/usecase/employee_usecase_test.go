package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"store_management/internal/domain"
	"store_management/internal/repository"
)

func newEmployeeFixture() (EmployeeUseCase, domain.EmployeeRepository) {
	logger := testLogger()
	repo := repository.NewEmployeeRepository(logger)
	return NewEmployeeUseCase(repo, logger), repo
}

func TestAddEmployeeValidation(t *testing.T) {
	uc, _ := newEmployeeFixture()

	assert.Error(t, uc.AddEmployee(&domain.Employee{Name: "", Email: "a@b.co", Phone: "5551234567"}))
	assert.Error(t, uc.AddEmployee(&domain.Employee{Name: "Dan", Email: "bad", Phone: "5551234567"}))
	assert.Error(t, uc.AddEmployee(&domain.Employee{Name: "Dan", Email: "a@b.co", Phone: "123"}))
	assert.NoError(t, uc.AddEmployee(&domain.Employee{Name: "Dan", Email: "a@b.co", Phone: "5551234567"}))
}

func TestUpdateEmployee(t *testing.T) {
	uc, repo := newEmployeeFixture()
	repo.Insert(&domain.Employee{Name: "Dan", Email: "old@b.co", Phone: "5551234567"})

	require.NoError(t, uc.UpdateEmployee("Dan", "new@b.co", "5559998888"))

	got, err := repo.FindByName("Dan")
	require.NoError(t, err)
	assert.Equal(t, "new@b.co", got.Email)
	assert.Equal(t, "5559998888", got.Phone)

	assert.ErrorIs(t, uc.UpdateEmployee("Nobody", "a@b.co", "5551234567"), domain.ErrEmployeeNotFound)
}

func TestDeleteEmployee(t *testing.T) {
	uc, repo := newEmployeeFixture()
	repo.Insert(&domain.Employee{Name: "Dan", Email: "a@b.co", Phone: "5551234567"})

	require.NoError(t, uc.DeleteEmployee("Dan"))
	_, err := repo.FindByName("Dan")
	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)

	assert.ErrorIs(t, uc.DeleteEmployee("Dan"), domain.ErrEmployeeNotFound)
}

func TestListEmployees(t *testing.T) {
	uc, repo := newEmployeeFixture()
	repo.Insert(&domain.Employee{Name: "A", Email: "a@b.co", Phone: "5551234567"})
	repo.Insert(&domain.Employee{Name: "B", Email: "b@b.co", Phone: "5551234568"})

	list := uc.ListEmployees()
	require.Len(t, list, 2)
	assert.Equal(t, "A", list[0].Name)
	assert.Equal(t, "B", list[1].Name)
}
