package wishlist

import (
	"context"
	"database/sql"

	"shopcore-be/internal/product"
)

type Repository interface {
	// List returns the user's saved products, newest first.
	List(ctx context.Context, userID int) ([]Item, error)
	// Add saves a product. ErrAlreadySaved when the pair already exists.
	Add(ctx context.Context, userID, productID int) (*Item, error)
	// Remove deletes a saved product. ErrNotSaved when absent.
	Remove(ctx context.Context, userID, productID int) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context, userID int) ([]Item, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT w.id, w.user_id, w.product_id, w.created_at,
		       p.id, p.name, p.price, p.digital, COALESCE(p.image_url, '')
		FROM wishlist_items w
		JOIN products p ON p.id = w.product_id
		WHERE w.user_id = $1
		ORDER BY w.created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var it Item
		var p product.Product
		err := rows.Scan(
			&it.ID, &it.UserID, &it.ProductID, &it.CreatedAt,
			&p.ID, &p.Name, &p.Price, &p.Digital, &p.ImageURL,
		)
		if err != nil {
			return nil, err
		}
		it.Product = &p
		items = append(items, it)
	}

	return items, rows.Err()
}

func (r *repository) Add(ctx context.Context, userID, productID int) (*Item, error) {
	var it Item
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO wishlist_items (user_id, product_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, product_id) DO NOTHING
		RETURNING id, user_id, product_id, created_at`,
		userID, productID,
	).Scan(&it.ID, &it.UserID, &it.ProductID, &it.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrAlreadySaved
	}
	if err != nil {
		return nil, err
	}

	return &it, nil
}

func (r *repository) Remove(ctx context.Context, userID, productID int) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM wishlist_items
		WHERE user_id = $1 AND product_id = $2`,
		userID, productID,
	)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotSaved
	}
	return nil
}
