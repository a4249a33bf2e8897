package order

import (
	"time"

	"shopcore-be/internal/product"

	"github.com/shopspring/decimal"
)

// Order is the central entity. An order with Completed=false is the
// customer's cart; at most one such order exists per customer.
type Order struct {
	ID              int
	CustomerID      *int
	CustomerName    string
	CreatedAt       time.Time
	Completed       bool
	TransactionID   *string
	ProviderOrderID *string
	Items           []LineItem
	ShippingAddress *ShippingAddress
}

// LineItem ties one product to one order. Quantity is strictly positive in
// storage; an item adjusted to zero is deleted instead.
type LineItem struct {
	ID        int
	OrderID   int
	ProductID *int
	Quantity  int
	CreatedAt time.Time

	// Product is nil when the referenced product has been removed from the
	// catalog; such items total to zero.
	Product *product.Product
}

// ShippingAddress is created exactly once, at finalization.
type ShippingAddress struct {
	ID         int
	CustomerID *int
	OrderID    int
	Address    string
	City       string
	State      string
	Zipcode    string
	CreatedAt  time.Time
}

// ShippingInfo is the address bag submitted at checkout.
type ShippingInfo struct {
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zipcode string `json:"zipcode"`
}

// Total returns price x quantity, zero when the product is gone.
func (i *LineItem) Total() decimal.Decimal {
	if i.Product == nil {
		return decimal.Zero
	}
	return i.Product.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// CartTotal sums the line totals.
func (o *Order) CartTotal() decimal.Decimal {
	total := decimal.Zero
	for i := range o.Items {
		total = total.Add(o.Items[i].Total())
	}
	return total
}

// CartItems sums the quantities.
func (o *Order) CartItems() int {
	count := 0
	for i := range o.Items {
		count += o.Items[i].Quantity
	}
	return count
}

// RequiresShipping reports whether any surviving line item is physical.
func (o *Order) RequiresShipping() bool {
	for i := range o.Items {
		if o.Items[i].Product != nil && !o.Items[i].Product.Digital {
			return true
		}
	}
	return false
}
