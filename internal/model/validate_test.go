package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRegisterRequest(t *testing.T) {
	cases := []struct {
		name    string
		req     RegisterRequest
		wantMsg string
	}{
		{
			name:    "missing name",
			req:     RegisterRequest{Email: "a@x.com", Password: "secret1"},
			wantMsg: "name is required",
		},
		{
			name:    "name too short",
			req:     RegisterRequest{Name: "Al", Email: "a@x.com", Password: "secret1"},
			wantMsg: "name must be at least 3 characters",
		},
		{
			name:    "invalid email",
			req:     RegisterRequest{Name: "Alice", Email: "not-an-email", Password: "secret1"},
			wantMsg: "email must be a valid email address",
		},
		{
			name:    "password too short",
			req:     RegisterRequest{Name: "Alice", Email: "a@x.com", Password: "short"},
			wantMsg: "password must be at least 6 characters",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.req)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tc.wantMsg, validationErr.Message)
		})
	}

	t.Run("valid request passes", func(t *testing.T) {
		assert.NoError(t, Validate(RegisterRequest{Name: "Alice", Email: "a@x.com", Password: "secret1"}))
	})
}

func TestValidateCreateProductRequest(t *testing.T) {
	price := 9.99
	zero := 0.0

	t.Run("missing price is rejected", func(t *testing.T) {
		err := Validate(CreateProductRequest{Name: "Widget", Description: "A widget"})
		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "price is required", validationErr.Message)
	})

	t.Run("explicit zero price is accepted", func(t *testing.T) {
		assert.NoError(t, Validate(CreateProductRequest{Name: "Widget", Description: "A widget", Price: &zero}))
	})

	t.Run("complete request passes", func(t *testing.T) {
		assert.NoError(t, Validate(CreateProductRequest{Name: "Widget", Description: "A widget", Price: &price}))
	})
}
