package user

import (
	"context"
	"errors"
	"strings"

	"shopcore-be/internal/logger"

	"go.uber.org/zap"
)

type RegisterParams struct {
	Username string
	Email    string
	Phone    string
	Password string
}

type Service interface {
	Register(ctx context.Context, params RegisterParams) (string, User, error)
	Login(ctx context.Context, username, password string) (string, User, error)
	GetByID(ctx context.Context, id int) (User, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Register(ctx context.Context, params RegisterParams) (string, User, error) {
	log := logger.FromCtx(ctx)

	hashed, err := HashPassword(params.Password)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return "", User{}, err
	}

	u, err := s.repo.Create(ctx, User{
		Username: params.Username,
		Email:    params.Email,
		Phone:    params.Phone,
		Password: hashed,
	})
	if err != nil {
		if strings.Contains(err.Error(), "users_username_key") {
			return "", User{}, ErrUsernameExists
		}
		return "", User{}, err
	}

	token, err := GenerateJWT(u.ID, u.Username, u.Email)
	if err != nil {
		log.Error("failed to generate jwt", zap.Int("user_id", u.ID), zap.Error(err))
		return "", User{}, err
	}

	log.Info("user registered",
		zap.Int("user_id", u.ID),
		zap.String("username", u.Username),
	)

	return token, u, nil
}

func (s *service) Login(ctx context.Context, username, password string) (string, User, error) {
	u, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return "", User{}, ErrInvalidCredentials
		}
		return "", User{}, err
	}

	if !CheckPasswordHash(password, u.Password) {
		return "", User{}, ErrInvalidCredentials
	}

	token, err := GenerateJWT(u.ID, u.Username, u.Email)
	return token, u, err
}

func (s *service) GetByID(ctx context.Context, id int) (User, error) {
	return s.repo.FindByID(ctx, id)
}
