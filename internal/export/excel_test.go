package export

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"store_management/internal/domain"
)

func TestWriteWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ExportedData.xlsx")

	products := []*domain.Product{
		{Name: "Widget", Price: decimal.RequireFromString("9.99"), Stock: 5},
		{Name: "Gadget", Price: decimal.RequireFromString("1.25"), Stock: 0},
	}
	customers := []*domain.Customer{
		{Name: "Alice", Phone: "5551234567", Address: "123 Main St", Email: "alice@store.com"},
	}

	require.NoError(t, WriteWorkbook(path, products, customers))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"Products", "Customers"}, f.GetSheetList())

	rows, err := f.GetRows("Products")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Name", "Price", "Stock"}, rows[0])
	assert.Equal(t, "Widget", rows[1][0])
	assert.Equal(t, "5", rows[1][2])

	crows, err := f.GetRows("Customers")
	require.NoError(t, err)
	require.Len(t, crows, 2)
	assert.Equal(t, []string{"Name", "Phone", "Address", "Email"}, crows[0])
	assert.Equal(t, []string{"Alice", "5551234567", "123 Main St", "alice@store.com"}, crows[1])
}

func TestWriteWorkbookOverwritesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ExportedData.xlsx")

	require.NoError(t, WriteWorkbook(path, []*domain.Product{{Name: "Old", Price: decimal.Zero}}, nil))
	require.NoError(t, WriteWorkbook(path, []*domain.Product{{Name: "New", Price: decimal.Zero}}, nil))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Products")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "New", rows[1][0])
}

func TestWriteWorkbookEmptyRepositories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ExportedData.xlsx")
	require.NoError(t, WriteWorkbook(path, nil, nil))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Products")
	require.NoError(t, err)
	require.Len(t, rows, 1, "header row only")
}
