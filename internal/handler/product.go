package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shoplite/shoplite-go/internal/middleware"
	"github.com/shoplite/shoplite-go/internal/model"
	"github.com/shoplite/shoplite-go/internal/service"
)

// ProductHandler handles HTTP requests for product operations.
type ProductHandler struct {
	service *service.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(svc *service.ProductService) *ProductHandler {
	return &ProductHandler{service: svc}
}

// HandleCreate handles POST /api/products/create requests.
func (h *ProductHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, messageResponse("No token provided, authorization denied"))
		return
	}

	var req model.CreateProductRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.Create(r.Context(), userID, req)
	if err != nil {
		if isValidationError(err) {
			writeJSON(w, http.StatusBadRequest, messageResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, messageResponse("Server error"))
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// HandleMyProducts handles GET /api/products/my-products requests.
func (h *ProductHandler) HandleMyProducts(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, messageResponse("No token provided, authorization denied"))
		return
	}

	products, err := h.service.ListMine(r.Context(), userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, messageResponse("Server error"))
		return
	}
	if products == nil {
		products = []model.ProductResponse{}
	}

	writeJSON(w, http.StatusOK, products)
}

// HandleUpdate handles PUT /api/products/update/{id} requests.
func (h *ProductHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, messageResponse("No token provided, authorization denied"))
		return
	}

	productID := chi.URLParam(r, "id")

	var req model.UpdateProductRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.Update(r.Context(), userID, productID, req)
	if err != nil {
		h.writeProductError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleDelete handles DELETE /api/products/delete/{id} requests.
func (h *ProductHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, messageResponse("No token provided, authorization denied"))
		return
	}

	productID := chi.URLParam(r, "id")

	if err := h.service.Delete(r.Context(), userID, productID); err != nil {
		h.writeProductError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse("Product deleted successfully"))
}

// HandleUserProducts handles GET /api/products/user/{userID} requests.
func (h *ProductHandler) HandleUserProducts(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, messageResponse("No token provided, authorization denied"))
		return
	}

	ownerID := chi.URLParam(r, "userID")

	products, err := h.service.ListByUser(r.Context(), requesterID, ownerID)
	if err != nil {
		h.writeProductError(w, err)
		return
	}
	if products == nil {
		products = []model.ProductResponse{}
	}

	writeJSON(w, http.StatusOK, products)
}

// writeProductError maps product service errors onto HTTP responses.
func (h *ProductHandler) writeProductError(w http.ResponseWriter, err error) {
	var notOwner *service.NotOwnerError
	switch {
	case errors.Is(err, service.ErrProductNotFound):
		writeJSON(w, http.StatusNotFound, messageResponse(err.Error()))
	case errors.As(err, &notOwner):
		writeJSON(w, http.StatusForbidden, messageResponse(err.Error()))
	case isValidationError(err):
		writeJSON(w, http.StatusBadRequest, messageResponse(err.Error()))
	default:
		writeJSON(w, http.StatusInternalServerError, messageResponse("Server error"))
	}
}
