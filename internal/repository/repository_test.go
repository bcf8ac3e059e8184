package repository

import (
	"io"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"store_management/internal/domain"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestEmployeeRepositoryRoundTrip(t *testing.T) {
	repo := NewEmployeeRepository(testLogger())
	emp := &domain.Employee{Name: "Alice", Email: "alice@store.com", Phone: "5551234567"}

	repo.Insert(emp)
	got, err := repo.FindByName("Alice")
	require.NoError(t, err)
	assert.Equal(t, *emp, *got)

	_, err = repo.FindByName("alice")
	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound, "employee lookup is case-sensitive")
}

func TestEmployeeRepositoryRemove(t *testing.T) {
	repo := NewEmployeeRepository(testLogger())
	emp := &domain.Employee{Name: "Bob", Email: "bob@store.com", Phone: "5550001111"}
	repo.Insert(emp)

	assert.False(t, repo.Remove(&domain.Employee{Name: "Bob"}), "partial match is not structural identity")
	assert.True(t, repo.Remove(&domain.Employee{Name: "Bob", Email: "bob@store.com", Phone: "5550001111"}))
	assert.False(t, repo.Remove(emp), "second removal is a no-op")
}

func TestProductRepositorySharedStock(t *testing.T) {
	repo := NewProductRepository(testLogger())
	repo.Insert(&domain.Product{Name: "Widget", Price: decimal.NewFromFloat(9.99), Stock: 5})

	first, err := repo.FindByName("Widget")
	require.NoError(t, err)
	first.Stock -= 3

	second, err := repo.FindByName("Widget")
	require.NoError(t, err)
	assert.Equal(t, 2, second.Stock, "stock is a single shared counter")
}

func TestProductRepositoryRemoveComparesPrice(t *testing.T) {
	repo := NewProductRepository(testLogger())
	repo.Insert(&domain.Product{Name: "Widget", Price: decimal.NewFromFloat(9.99), Stock: 5})

	assert.False(t, repo.Remove(&domain.Product{Name: "Widget", Price: decimal.NewFromFloat(1.00), Stock: 5}))
	assert.True(t, repo.Remove(&domain.Product{Name: "Widget", Price: decimal.RequireFromString("9.99"), Stock: 5}))
}

func TestCustomerRepositoryRoundTrip(t *testing.T) {
	repo := NewCustomerRepository(testLogger())
	cust := &domain.Customer{Name: "Carol", Phone: "5551234567", Address: "123 Main St", Email: "carol@x.co"}
	repo.Insert(cust)

	got, err := repo.FindByName("Carol")
	require.NoError(t, err)
	assert.Equal(t, *cust, *got)
}

func TestOrderRepositoryCaseInsensitiveLookup(t *testing.T) {
	repo := NewOrderRepository(testLogger())
	repo.Insert(&domain.Order{ID: "o1", CustomerName: "Alice", OrderDate: time.Now()})
	repo.Insert(&domain.Order{ID: "o2", CustomerName: "alice", OrderDate: time.Now()})
	repo.Insert(&domain.Order{ID: "o3", CustomerName: "Bob", OrderDate: time.Now()})

	assert.Len(t, repo.FindByCustomerName("ALICE"), 2)
	assert.Len(t, repo.FindByCustomerName("bob"), 1)
	assert.Empty(t, repo.FindByCustomerName("Carol"))
}

func TestAllPreservesInsertionOrderAndRestarts(t *testing.T) {
	repo := NewProductRepository(testLogger())
	names := []string{"Widget", "Gadget", "Sprocket"}
	for _, name := range names {
		repo.Insert(&domain.Product{Name: name, Price: decimal.Zero})
	}

	for range 2 {
		var got []string
		for p := range repo.All() {
			got = append(got, p.Name)
		}
		assert.Equal(t, names, got)
	}

	// Early break must not disturb later iteration.
	for p := range repo.All() {
		_ = p
		break
	}
	var count int
	for range repo.All() {
		count++
	}
	assert.Equal(t, 3, count)
}
