// Package export projects repository state into a two-sheet xlsx workbook.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"store_management/internal/domain"
)

const (
	productsSheet  = "Products"
	customersSheet = "Customers"

	// Built-in number format 7 renders currency with two decimals.
	currencyNumFmt = 7
)

// WriteWorkbook writes a Products sheet (name, price, stock) and a
// Customers sheet (name, phone, address, email) to path, overwriting any
// existing file.
func WriteWorkbook(path string, products []*domain.Product, customers []*domain.Customer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", productsSheet); err != nil {
		return fmt.Errorf("could not create products sheet: %w", err)
	}
	if _, err := f.NewSheet(customersSheet); err != nil {
		return fmt.Errorf("could not create customers sheet: %w", err)
	}

	if err := writeProducts(f, products); err != nil {
		return err
	}
	if err := writeCustomers(f, customers); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("could not save workbook to %s: %w", path, err)
	}
	return nil
}

func writeProducts(f *excelize.File, products []*domain.Product) error {
	headers := []any{"Name", "Price", "Stock"}
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(productsSheet, cell, h); err != nil {
			return err
		}
	}

	for i, p := range products {
		row := i + 2
		price, _ := p.Price.Float64()
		if err := setRow(f, productsSheet, row, p.Name, price, p.Stock); err != nil {
			return err
		}
	}

	if len(products) > 0 {
		style, err := f.NewStyle(&excelize.Style{NumFmt: currencyNumFmt})
		if err != nil {
			return fmt.Errorf("could not build currency style: %w", err)
		}
		last := fmt.Sprintf("B%d", len(products)+1)
		if err := f.SetCellStyle(productsSheet, "B2", last, style); err != nil {
			return fmt.Errorf("could not style price column: %w", err)
		}
	}
	return nil
}

func writeCustomers(f *excelize.File, customers []*domain.Customer) error {
	headers := []any{"Name", "Phone", "Address", "Email"}
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(customersSheet, cell, h); err != nil {
			return err
		}
	}

	for i, c := range customers {
		if err := setRow(f, customersSheet, i+2, c.Name, c.Phone, c.Address, c.Email); err != nil {
			return err
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values ...any) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}
