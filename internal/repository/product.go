package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/shoplite/shoplite-go/internal/model"
)

var ErrProductNotFound = errors.New("product not found")

// ProductRepository handles product persistence operations.
type ProductRepository struct {
	db *sql.DB
}

// NewProductRepository creates a new ProductRepository.
func NewProductRepository(db *sql.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// Create inserts a new product, assigning a fresh id and timestamps.
func (r *ProductRepository) Create(ctx context.Context, product *model.Product) error {
	if product.ID == "" {
		product.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	product.CreatedAt = now
	product.UpdatedAt = now

	query := `INSERT INTO products (id, user_id, name, description, price, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		product.ID, product.UserID, product.Name, product.Description, product.Price,
		product.CreatedAt, product.UpdatedAt,
	)
	return err
}

// GetByID retrieves a product by id.
func (r *ProductRepository) GetByID(ctx context.Context, id string) (*model.Product, error) {
	query := `SELECT id, user_id, name, description, price, created_at, updated_at
		FROM products WHERE id = ?`

	product := &model.Product{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&product.ID, &product.UserID, &product.Name, &product.Description,
		&product.Price, &product.CreatedAt, &product.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	return product, nil
}

// ListByUser retrieves all products owned by a user, newest first.
func (r *ProductRepository) ListByUser(ctx context.Context, userID string) ([]model.Product, error) {
	query := `SELECT id, user_id, name, description, price, created_at, updated_at
		FROM products WHERE user_id = ? ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(
			&p.ID, &p.UserID, &p.Name, &p.Description, &p.Price, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, rows.Err()
}

// ProductWithOwner pairs a product with its owning user's public fields.
type ProductWithOwner struct {
	Product    model.Product
	OwnerName  string
	OwnerEmail string
}

// ListByUserWithOwner retrieves a user's products joined with the owner's
// name and email.
func (r *ProductRepository) ListByUserWithOwner(ctx context.Context, userID string) ([]ProductWithOwner, error) {
	query := `SELECT p.id, p.user_id, p.name, p.description, p.price, p.created_at, p.updated_at,
			u.name, u.email
		FROM products p
		JOIN users u ON u.id = p.user_id
		WHERE p.user_id = ?
		ORDER BY p.created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []ProductWithOwner
	for rows.Next() {
		var po ProductWithOwner
		p := &po.Product
		if err := rows.Scan(
			&p.ID, &p.UserID, &p.Name, &p.Description, &p.Price, &p.CreatedAt, &p.UpdatedAt,
			&po.OwnerName, &po.OwnerEmail,
		); err != nil {
			return nil, err
		}
		results = append(results, po)
	}

	return results, rows.Err()
}

// Update writes a product's mutable fields and bumps updated_at.
func (r *ProductRepository) Update(ctx context.Context, product *model.Product) error {
	product.UpdatedAt = time.Now().UTC()

	query := `UPDATE products SET name = ?, description = ?, price = ?, updated_at = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query,
		product.Name, product.Description, product.Price, product.UpdatedAt, product.ID,
	)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrProductNotFound
	}

	return nil
}

// Delete removes a product by id.
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrProductNotFound
	}

	return nil
}
