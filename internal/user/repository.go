package user

import (
	"context"
	"database/sql"

	"shopcore-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, u User) (User, error)
	FindByUsername(ctx context.Context, username string) (User, error)
	FindByID(ctx context.Context, id int) (User, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, u User) (User, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO users (username, email, phone, password)
		VALUES ($1, $2, $3, $4)
		RETURNING id, username, email, phone, password, created_at
	`, u.Username, u.Email, u.Phone, u.Password).Scan(
		&u.ID, &u.Username, &u.Email, &u.Phone, &u.Password, &u.CreatedAt,
	)
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to insert user",
			zap.String("username", u.Username),
			zap.Error(err),
		)
	}

	return u, err
}

func (r *repository) FindByUsername(ctx context.Context, username string) (User, error) {
	var u User
	err := r.db.QueryRowContext(ctx, `
		SELECT id, username, email, phone, password, created_at
		FROM users
		WHERE username = $1
	`, username).Scan(&u.ID, &u.Username, &u.Email, &u.Phone, &u.Password, &u.CreatedAt)

	if err == sql.ErrNoRows {
		return User{}, ErrUserNotFound
	}
	return u, err
}

func (r *repository) FindByID(ctx context.Context, id int) (User, error) {
	var u User
	err := r.db.QueryRowContext(ctx, `
		SELECT id, username, email, phone, password, created_at
		FROM users
		WHERE id = $1
	`, id).Scan(&u.ID, &u.Username, &u.Email, &u.Phone, &u.Password, &u.CreatedAt)

	if err == sql.ErrNoRows {
		return User{}, ErrUserNotFound
	}
	return u, err
}
