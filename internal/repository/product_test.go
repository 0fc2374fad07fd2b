package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shoplite/shoplite-go/internal/model"
)

func productColumns() []string {
	return []string{"id", "user_id", "name", "description", "price", "created_at", "updated_at"}
}

func TestProductRepositoryCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO products").
		WithArgs(sqlmock.AnyArg(), "u-1", "Widget", "A widget", 9.99, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewProductRepository(db)
	product := &model.Product{UserID: "u-1", Name: "Widget", Description: "A widget", Price: 9.99}

	require.NoError(t, repo.Create(context.Background(), product))
	assert.NotEmpty(t, product.ID)
	assert.False(t, product.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepositoryGetByID(t *testing.T) {
	t.Run("returns the product", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		now := time.Now()
		mock.ExpectQuery("SELECT id, user_id, name, description, price, created_at, updated_at").
			WithArgs("p-1").
			WillReturnRows(sqlmock.NewRows(productColumns()).
				AddRow("p-1", "u-1", "Widget", "A widget", 9.99, now, now))

		repo := NewProductRepository(db)
		product, err := repo.GetByID(context.Background(), "p-1")

		require.NoError(t, err)
		assert.Equal(t, "u-1", product.UserID)
		assert.Equal(t, 9.99, product.Price)
	})

	t.Run("unknown id yields ErrProductNotFound", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("SELECT id, user_id, name, description, price, created_at, updated_at").
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows(productColumns()))

		repo := NewProductRepository(db)
		_, err = repo.GetByID(context.Background(), "missing")

		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}

func TestProductRepositoryListByUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery("SELECT id, user_id, name, description, price, created_at, updated_at").
		WithArgs("u-1").
		WillReturnRows(sqlmock.NewRows(productColumns()).
			AddRow("p-2", "u-1", "Gadget", "A gadget", 19.99, now, now).
			AddRow("p-1", "u-1", "Widget", "A widget", 9.99, now, now))

	repo := NewProductRepository(db)
	products, err := repo.ListByUser(context.Background(), "u-1")

	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "p-2", products[0].ID)
	assert.Equal(t, "p-1", products[1].ID)
}

func TestProductRepositoryListByUserWithOwner(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	columns := append(productColumns(), "owner_name", "owner_email")
	mock.ExpectQuery("JOIN users u ON u.id = p.user_id").
		WithArgs("u-1").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("p-1", "u-1", "Widget", "A widget", 9.99, now, now, "Alice", "alice@example.com"))

	repo := NewProductRepository(db)
	results, err := repo.ListByUserWithOwner(context.Background(), "u-1")

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Alice", results[0].OwnerName)
	assert.Equal(t, "alice@example.com", results[0].OwnerEmail)
	assert.Equal(t, "p-1", results[0].Product.ID)
}

func TestProductRepositoryUpdate(t *testing.T) {
	t.Run("writes mutable fields", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec("UPDATE products SET").
			WithArgs("Widget v2", "Better widget", 14.99, sqlmock.AnyArg(), "p-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := NewProductRepository(db)
		product := &model.Product{ID: "p-1", Name: "Widget v2", Description: "Better widget", Price: 14.99}

		require.NoError(t, repo.Update(context.Background(), product))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("zero rows affected yields ErrProductNotFound", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec("UPDATE products SET").
			WillReturnResult(sqlmock.NewResult(0, 0))

		repo := NewProductRepository(db)
		err = repo.Update(context.Background(), &model.Product{ID: "missing"})

		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}

func TestProductRepositoryDelete(t *testing.T) {
	t.Run("deletes the row", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec("DELETE FROM products WHERE id").
			WithArgs("p-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := NewProductRepository(db)
		require.NoError(t, repo.Delete(context.Background(), "p-1"))
	})

	t.Run("zero rows affected yields ErrProductNotFound", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec("DELETE FROM products WHERE id").
			WithArgs("missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		repo := NewProductRepository(db)
		err = repo.Delete(context.Background(), "missing")

		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}
