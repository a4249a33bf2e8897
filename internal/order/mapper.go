package order

import "time"

const unavailableProductName = "[Product no longer available]"

type ProductView struct {
	ID      *int   `json:"id"`
	Name    string `json:"name"`
	Price   string `json:"price"`
	Digital bool   `json:"digital"`
	Image   string `json:"image"`
}

type ItemView struct {
	ID       int         `json:"id"`
	Product  ProductView `json:"product"`
	Quantity int         `json:"quantity"`
	Total    string      `json:"total"`
}

type AddressView struct {
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zipcode string `json:"zipcode"`
}

type OrderView struct {
	ID              int          `json:"id"`
	Customer        string       `json:"customer"`
	DateOrdered     time.Time    `json:"dateOrdered"`
	Completed       bool         `json:"completed"`
	TransactionID   *string      `json:"transactionId"`
	Shipping        bool         `json:"shipping"`
	CartTotal       string       `json:"cartTotal"`
	CartItems       int          `json:"cartItems"`
	ShippingAddress *AddressView `json:"shippingAddress"`
	Items           []ItemView   `json:"items"`
}

func toProductView(i *LineItem) ProductView {
	if i.Product == nil {
		return ProductView{
			Name:  unavailableProductName,
			Price: "0.00",
		}
	}

	id := i.Product.ID
	return ProductView{
		ID:      &id,
		Name:    i.Product.Name,
		Price:   i.Product.Price.StringFixed(2),
		Digital: i.Product.Digital,
		Image:   i.Product.ImageURL,
	}
}

func ToOrderView(o *Order) OrderView {
	items := make([]ItemView, 0, len(o.Items))
	for i := range o.Items {
		item := &o.Items[i]
		items = append(items, ItemView{
			ID:       item.ID,
			Product:  toProductView(item),
			Quantity: item.Quantity,
			Total:    item.Total().StringFixed(2),
		})
	}

	var addr *AddressView
	if o.ShippingAddress != nil {
		addr = &AddressView{
			Address: o.ShippingAddress.Address,
			City:    o.ShippingAddress.City,
			State:   o.ShippingAddress.State,
			Zipcode: o.ShippingAddress.Zipcode,
		}
	}

	return OrderView{
		ID:              o.ID,
		Customer:        o.CustomerName,
		DateOrdered:     o.CreatedAt,
		Completed:       o.Completed,
		TransactionID:   o.TransactionID,
		Shipping:        o.RequiresShipping(),
		CartTotal:       o.CartTotal().StringFixed(2),
		CartItems:       o.CartItems(),
		ShippingAddress: addr,
		Items:           items,
	}
}
