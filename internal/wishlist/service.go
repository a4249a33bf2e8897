package wishlist

import (
	"context"

	"shopcore-be/internal/logger"
	"shopcore-be/internal/product"

	"go.uber.org/zap"
)

type Service interface {
	List(ctx context.Context, userID int) ([]Item, error)
	Add(ctx context.Context, userID, productID int) (*Item, error)
	Remove(ctx context.Context, userID, productID int) error
}

type service struct {
	repo    Repository
	catalog product.Repository
}

func NewService(repo Repository, catalog product.Repository) Service {
	return &service{repo: repo, catalog: catalog}
}

func (s *service) List(ctx context.Context, userID int) ([]Item, error) {
	return s.repo.List(ctx, userID)
}

func (s *service) Add(ctx context.Context, userID, productID int) (*Item, error) {
	if _, err := s.catalog.GetByID(ctx, productID); err != nil {
		return nil, err
	}

	it, err := s.repo.Add(ctx, userID, productID)
	if err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Info("product saved to wishlist",
		zap.Int("user_id", userID),
		zap.Int("product_id", productID),
	)
	return it, nil
}

func (s *service) Remove(ctx context.Context, userID, productID int) error {
	return s.repo.Remove(ctx, userID, productID)
}
