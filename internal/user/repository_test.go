package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func userColumns() []string {
	return []string{"id", "username", "email", "phone", "password", "created_at"}
}

func TestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows(userColumns()).
			AddRow(1, "ravi", "ravi@example.com", "9999999999", "hashed", time.Now())

		mock.ExpectQuery("INSERT INTO users").
			WithArgs("ravi", "ravi@example.com", "9999999999", "hashed").
			WillReturnRows(rows)

		u, err := repo.Create(context.Background(), User{
			Username: "ravi",
			Email:    "ravi@example.com",
			Phone:    "9999999999",
			Password: "hashed",
		})
		assert.NoError(t, err)
		assert.Equal(t, 1, u.ID)
	})

	t.Run("DuplicateUsername", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO users").
			WillReturnError(errors.New(`pq: duplicate key value violates unique constraint "users_username_key"`))

		_, err := repo.Create(context.Background(), User{Username: "ravi"})
		assert.Error(t, err)
	})
}

func TestRepository_FindByUsername(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Found", func(t *testing.T) {
		rows := sqlmock.NewRows(userColumns()).
			AddRow(2, "sita", "sita@example.com", "8888888888", "hashed", time.Now())

		mock.ExpectQuery("SELECT (.+) FROM users").
			WithArgs("sita").
			WillReturnRows(rows)

		u, err := repo.FindByUsername(context.Background(), "sita")
		assert.NoError(t, err)
		assert.Equal(t, "sita@example.com", u.Email)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM users").
			WithArgs("ghost").
			WillReturnRows(sqlmock.NewRows(userColumns()))

		_, err := repo.FindByUsername(context.Background(), "ghost")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestRepository_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	rows := sqlmock.NewRows(userColumns()).
		AddRow(3, "mohan", "mohan@example.com", "7777777777", "hashed", time.Now())

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs(3).
		WillReturnRows(rows)

	u, err := repo.FindByID(context.Background(), 3)
	assert.NoError(t, err)
	assert.Equal(t, "mohan", u.Username)
}
