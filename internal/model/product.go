package model

import "time"

// Product represents a product in the database. UserID references the
// owning user and never changes after creation.
type Product struct {
	ID          string
	UserID      string
	Name        string
	Description string
	Price       float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CreateProductRequest represents a product creation request.
type CreateProductRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Price       *float64 `json:"price" validate:"required"`
}

// UpdateProductRequest represents a partial product update. Nil fields keep
// the stored value; a present field replaces it, zero values included.
type UpdateProductRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
}

// ProductOwner is the owner summary embedded when a product listing expands
// its owning user.
type ProductOwner struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ProductResponse represents product data for API responses.
type ProductResponse struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Price       float64       `json:"price"`
	UserID      string        `json:"user_id"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
	Owner       *ProductOwner `json:"owner,omitempty"`
}
