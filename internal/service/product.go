package service

import (
	"context"
	"errors"

	"github.com/shoplite/shoplite-go/internal/model"
	"github.com/shoplite/shoplite-go/internal/repository"
)

var ErrProductNotFound = errors.New("Product not found")

// ProductService handles product business logic, including the per-resource
// ownership checks.
type ProductService struct {
	repo *repository.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo *repository.ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

// Create stores a new product owned by the authenticated user. The owner is
// fixed at creation and no operation changes it afterwards.
func (s *ProductService) Create(ctx context.Context, userID string, req model.CreateProductRequest) (model.ProductResponse, error) {
	if err := model.Validate(req); err != nil {
		return model.ProductResponse{}, err
	}

	product := &model.Product{
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
	}

	if err := s.repo.Create(ctx, product); err != nil {
		return model.ProductResponse{}, err
	}

	return toProductResponse(product), nil
}

// ListMine returns all products owned by the authenticated user.
func (s *ProductService) ListMine(ctx context.Context, userID string) ([]model.ProductResponse, error) {
	products, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]model.ProductResponse, len(products))
	for i := range products {
		responses[i] = toProductResponse(&products[i])
	}
	return responses, nil
}

// Update applies a partial update to a product the authenticated user owns.
// Nil request fields keep the stored values.
func (s *ProductService) Update(ctx context.Context, userID, productID string, req model.UpdateProductRequest) (model.ProductResponse, error) {
	product, err := s.repo.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return model.ProductResponse{}, ErrProductNotFound
		}
		return model.ProductResponse{}, err
	}

	if err := checkOwnership(product.UserID, userID, "update", "this product"); err != nil {
		return model.ProductResponse{}, err
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}

	if err := s.repo.Update(ctx, product); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return model.ProductResponse{}, ErrProductNotFound
		}
		return model.ProductResponse{}, err
	}

	return toProductResponse(product), nil
}

// Delete removes a product the authenticated user owns.
func (s *ProductService) Delete(ctx context.Context, userID, productID string) error {
	product, err := s.repo.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return ErrProductNotFound
		}
		return err
	}

	if err := checkOwnership(product.UserID, userID, "delete", "this product"); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return ErrProductNotFound
		}
		return err
	}

	return nil
}

// ListByUser returns the products of the user named in the path, with the
// owner expanded. Users may only list their own products, so the ownership
// predicate runs against the path id itself.
func (s *ProductService) ListByUser(ctx context.Context, requesterID, ownerID string) ([]model.ProductResponse, error) {
	if err := checkOwnership(ownerID, requesterID, "view", "these products"); err != nil {
		return nil, err
	}

	results, err := s.repo.ListByUserWithOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	responses := make([]model.ProductResponse, len(results))
	for i := range results {
		resp := toProductResponse(&results[i].Product)
		resp.Owner = &model.ProductOwner{
			ID:    results[i].Product.UserID,
			Name:  results[i].OwnerName,
			Email: results[i].OwnerEmail,
		}
		responses[i] = resp
	}
	return responses, nil
}

func toProductResponse(p *model.Product) model.ProductResponse {
	return model.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		UserID:      p.UserID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
