package wishlist

import (
	"time"

	"shopcore-be/internal/product"
)

// Item is one saved product. Each (user, product) pair appears at most once.
type Item struct {
	ID        int
	UserID    int
	ProductID int
	CreatedAt time.Time

	Product *product.Product
}

// ItemView is the API shape of a saved product.
type ItemView struct {
	ID      int             `json:"id"`
	Product product.Product `json:"product"`
	AddedAt time.Time       `json:"added_at"`
}

func ToItemViews(items []Item) []ItemView {
	views := make([]ItemView, 0, len(items))
	for i := range items {
		if items[i].Product == nil {
			continue
		}
		views = append(views, ItemView{
			ID:      items[i].ID,
			Product: *items[i].Product,
			AddedAt: items[i].CreatedAt,
		})
	}
	return views
}
