package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderDetail is one line of an order. Quantity and unit price are fixed at
// the moment the line is accepted; later product edits do not change them.
type OrderDetail struct {
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// Subtotal returns quantity times the snapshotted unit price.
func (d OrderDetail) Subtotal() decimal.Decimal {
	return d.UnitPrice.Mul(decimal.NewFromInt(int64(d.Quantity)))
}

type Order struct {
	ID              string        `json:"id"`
	CustomerName    string        `json:"customer_name"`
	ShippingAddress string        `json:"shipping_address"`
	OrderDate       time.Time     `json:"order_date"`
	Items           []OrderDetail `json:"items"`
}

// TotalAmount is derived from the lines on every call, never stored.
func (o *Order) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Subtotal())
	}
	return total
}
