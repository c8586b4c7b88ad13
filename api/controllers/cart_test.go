package controllers

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rohitvarpe/stitchkart-backend/api/middleware"
	"github.com/rohitvarpe/stitchkart-backend/internal/cart"
	pkgerrors "github.com/rohitvarpe/stitchkart-backend/pkg/errors"
	"github.com/rohitvarpe/stitchkart-backend/pkg/logger"
)

type stubCartService struct {
	item *cart.ItemDTO
	err  error

	gotCustomer uint
	gotInput    cart.AddInput
}

func (s *stubCartService) List(ctx context.Context, customerID uint) (*cart.CartDTO, error) {
	s.gotCustomer = customerID
	return &cart.CartDTO{Items: []cart.ItemDTO{}}, s.err
}

func (s *stubCartService) Add(ctx context.Context, customerID uint, input cart.AddInput) (*cart.ItemDTO, error) {
	s.gotCustomer = customerID
	s.gotInput = input
	return s.item, s.err
}

func (s *stubCartService) IsInCart(ctx context.Context, customerID, productID uint) (bool, error) {
	return false, s.err
}

func TestCartAddRequiresAuth(t *testing.T) {
	logg := logger.New(logger.Options{ServiceName: "test", Level: logger.ParseLevel("debug"), Output: io.Discard})

	req := httptest.NewRequest(http.MethodPost, "/api/cart", bytes.NewBufferString(`{"product_id":1,"quantity":1}`))
	rec := httptest.NewRecorder()
	CartAdd(&stubCartService{}, logg).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without identity, got %d", rec.Code)
	}
}

func TestCartAddCreatesLine(t *testing.T) {
	logg := logger.New(logger.Options{ServiceName: "test", Level: logger.ParseLevel("debug"), Output: io.Discard})
	stub := &stubCartService{item: &cart.ItemDTO{ID: 1, ProductID: 3, Quantity: 2, Size: "M", Color: "Red"}}

	req := httptest.NewRequest(http.MethodPost, "/api/cart",
		bytes.NewBufferString(`{"product_id":3,"quantity":2,"size":"M","color":"Red"}`))
	req = req.WithContext(middleware.WithCustomerID(req.Context(), 42))
	rec := httptest.NewRecorder()
	CartAdd(stub, logg).ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if stub.gotCustomer != 42 || stub.gotInput.ProductID != 3 || stub.gotInput.Size != "M" {
		t.Fatalf("unexpected input %d/%+v", stub.gotCustomer, stub.gotInput)
	}
}

func TestCartAddSurfacesValidation(t *testing.T) {
	logg := logger.New(logger.Options{ServiceName: "test", Level: logger.ParseLevel("debug"), Output: io.Discard})
	stub := &stubCartService{err: pkgerrors.New(pkgerrors.CodeValidation, "quantity exceeds the limit of 3")}

	req := httptest.NewRequest(http.MethodPost, "/api/cart",
		bytes.NewBufferString(`{"product_id":3,"quantity":9}`))
	req = req.WithContext(middleware.WithCustomerID(req.Context(), 42))
	rec := httptest.NewRecorder()
	CartAdd(stub, logg).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
