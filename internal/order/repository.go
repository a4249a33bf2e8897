package order

import (
	"context"
	"database/sql"
	"errors"

	"shopcore-be/internal/logger"
	"shopcore-be/internal/product"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type FinalizeParams struct {
	OrderID    int
	CustomerID int
	// TransactionID is set on the gateway-verified path only.
	TransactionID *string
	Shipping      ShippingInfo
}

type Repository interface {
	GetOpenOrder(ctx context.Context, customerID int) (*Order, error)
	CreateOrder(ctx context.Context, customerID int) (*Order, error)
	GetByProviderOrderID(ctx context.Context, providerOrderID string) (*Order, error)
	SetProviderOrderID(ctx context.Context, orderID int, providerOrderID string) error

	GetItem(ctx context.Context, orderID, productID int) (*LineItem, error)
	CreateItem(ctx context.Context, orderID, productID int) (*LineItem, error)
	SetItemQuantity(ctx context.Context, itemID, quantity int) error
	DeleteItem(ctx context.Context, itemID int) error
	ListItems(ctx context.Context, orderID int) ([]LineItem, error)

	FinalizeOrder(ctx context.Context, params FinalizeParams) error
	FirstShippingAddress(ctx context.Context, orderID int) (*ShippingAddress, error)
	ListCompleted(ctx context.Context, customerID int) ([]Order, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// IsUniqueViolation reports whether err is a Postgres unique constraint
// violation, which the find-or-create paths treat as "lost the race".
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == "23505"
}

const selectOrder = `
	SELECT o.id, o.customer_id, COALESCE(u.username, ''), o.created_at,
	       o.completed, o.transaction_id, o.provider_order_id
	FROM orders o
	LEFT JOIN users u ON u.id = o.customer_id
`

func scanOrder(row *sql.Row) (*Order, error) {
	var o Order
	err := row.Scan(
		&o.ID, &o.CustomerID, &o.CustomerName, &o.CreatedAt,
		&o.Completed, &o.TransactionID, &o.ProviderOrderID,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *repository) GetOpenOrder(ctx context.Context, customerID int) (*Order, error) {
	o, err := scanOrder(r.db.QueryRowContext(ctx,
		selectOrder+` WHERE o.customer_id = $1 AND NOT o.completed`, customerID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return o, err
}

func (r *repository) CreateOrder(ctx context.Context, customerID int) (*Order, error) {
	var o Order
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO orders (customer_id)
		VALUES ($1)
		RETURNING id, customer_id, created_at, completed, transaction_id, provider_order_id
	`, customerID).Scan(
		&o.ID, &o.CustomerID, &o.CreatedAt,
		&o.Completed, &o.TransactionID, &o.ProviderOrderID,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *repository) GetByProviderOrderID(ctx context.Context, providerOrderID string) (*Order, error) {
	o, err := scanOrder(r.db.QueryRowContext(ctx,
		selectOrder+` WHERE o.provider_order_id = $1`, providerOrderID))
	if err == sql.ErrNoRows {
		return nil, ErrOrderNotFound
	}
	return o, err
}

func (r *repository) SetProviderOrderID(ctx context.Context, orderID int, providerOrderID string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE orders SET provider_order_id = $1 WHERE id = $2
	`, providerOrderID, orderID)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func (r *repository) GetItem(ctx context.Context, orderID, productID int) (*LineItem, error) {
	var item LineItem
	err := r.db.QueryRowContext(ctx, `
		SELECT id, order_id, product_id, quantity, created_at
		FROM order_items
		WHERE order_id = $1 AND product_id = $2
	`, orderID, productID).Scan(
		&item.ID, &item.OrderID, &item.ProductID, &item.Quantity, &item.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// CreateItem inserts a zero-quantity line item. Returns (nil, nil) when a
// concurrent insert won the (order_id, product_id) slot; callers re-read.
func (r *repository) CreateItem(ctx context.Context, orderID, productID int) (*LineItem, error) {
	var item LineItem
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO order_items (order_id, product_id, quantity)
		VALUES ($1, $2, 0)
		ON CONFLICT (order_id, product_id) DO NOTHING
		RETURNING id, order_id, product_id, quantity, created_at
	`, orderID, productID).Scan(
		&item.ID, &item.OrderID, &item.ProductID, &item.Quantity, &item.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *repository) SetItemQuantity(ctx context.Context, itemID, quantity int) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE order_items SET quantity = $1 WHERE id = $2
	`, quantity, itemID)
	return err
}

func (r *repository) DeleteItem(ctx context.Context, itemID int) error {
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM order_items WHERE id = $1
	`, itemID)
	return err
}

func (r *repository) ListItems(ctx context.Context, orderID int) ([]LineItem, error) {
	log := logger.FromCtx(ctx).With(zap.Int("order_id", orderID))

	rows, err := r.db.QueryContext(ctx, `
		SELECT oi.id, oi.order_id, oi.product_id, oi.quantity, oi.created_at,
		       p.id, p.name, p.price, p.digital, COALESCE(p.image_url, '')
		FROM order_items oi
		LEFT JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id = $1
		ORDER BY oi.created_at, oi.id
	`, orderID)
	if err != nil {
		log.Error("failed to query order items", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	items := make([]LineItem, 0)
	for rows.Next() {
		var (
			item     LineItem
			pID      sql.NullInt64
			pName    sql.NullString
			pPrice   decimal.NullDecimal
			pDigital sql.NullBool
			pImage   sql.NullString
		)

		if err := rows.Scan(
			&item.ID, &item.OrderID, &item.ProductID, &item.Quantity, &item.CreatedAt,
			&pID, &pName, &pPrice, &pDigital, &pImage,
		); err != nil {
			log.Error("failed to scan order item", zap.Error(err))
			return nil, err
		}

		if pID.Valid {
			item.Product = &product.Product{
				ID:       int(pID.Int64),
				Name:     pName.String,
				Price:    pPrice.Decimal,
				Digital:  pDigital.Bool,
				ImageURL: pImage.String,
			}
		}

		items = append(items, item)
	}

	return items, rows.Err()
}

// FinalizeOrder marks the order completed and records the shipping address in
// one transaction. A failed address insert rolls back the completion.
func (r *repository) FinalizeOrder(ctx context.Context, params FinalizeParams) error {
	log := logger.FromCtx(ctx).With(zap.Int("order_id", params.OrderID))

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE orders
		SET completed = TRUE,
		    transaction_id = COALESCE($2, transaction_id)
		WHERE id = $1
	`, params.OrderID, params.TransactionID)
	if err != nil {
		log.Error("failed to complete order", zap.Error(err))
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrOrderNotFound
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO shipping_addresses (customer_id, order_id, address, city, state, zipcode)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, params.CustomerID, params.OrderID,
		params.Shipping.Address, params.Shipping.City,
		params.Shipping.State, params.Shipping.Zipcode,
	)
	if err != nil {
		log.Error("failed to create shipping address", zap.Error(err))
		return err
	}

	return tx.Commit()
}

func (r *repository) FirstShippingAddress(ctx context.Context, orderID int) (*ShippingAddress, error) {
	var a ShippingAddress
	err := r.db.QueryRowContext(ctx, `
		SELECT id, customer_id, order_id, address, city, state, zipcode, created_at
		FROM shipping_addresses
		WHERE order_id = $1
		ORDER BY created_at, id
		LIMIT 1
	`, orderID).Scan(
		&a.ID, &a.CustomerID, &a.OrderID,
		&a.Address, &a.City, &a.State, &a.Zipcode, &a.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) ListCompleted(ctx context.Context, customerID int) ([]Order, error) {
	log := logger.FromCtx(ctx).With(zap.Int("customer_id", customerID))

	rows, err := r.db.QueryContext(ctx,
		selectOrder+`
		WHERE o.customer_id = $1 AND o.completed
		ORDER BY o.created_at DESC
	`, customerID)
	if err != nil {
		log.Error("failed to query completed orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	orders := make([]Order, 0)
	for rows.Next() {
		var o Order
		if err := rows.Scan(
			&o.ID, &o.CustomerID, &o.CustomerName, &o.CreatedAt,
			&o.Completed, &o.TransactionID, &o.ProviderOrderID,
		); err != nil {
			log.Error("failed to scan order", zap.Error(err))
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, rows.Err()
}
