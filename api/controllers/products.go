package controllers

import (
	"net/http"
	"strings"

	"github.com/rohitvarpe/stitchkart-backend/api/responses"
	"github.com/rohitvarpe/stitchkart-backend/api/validators"
	"github.com/rohitvarpe/stitchkart-backend/internal/products"
	"github.com/rohitvarpe/stitchkart-backend/pkg/envelope"
	"github.com/rohitvarpe/stitchkart-backend/pkg/logger"
)

// ProductsCustomerList returns every product visible on the storefront,
// sealed in the transport envelope.
func ProductsCustomerList(svc products.Service, codec *envelope.Codec, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		list, err := svc.ListCustomer(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteEncrypted(ctx, logg, codec, w, list)
	}
}

// ProductDetail returns one product with its live review stats.
func ProductDetail(svc products.Service, codec *envelope.Codec, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id, err := validators.ParseIDParam(r, "productId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		detail, err := svc.Get(ctx, id)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteEncrypted(ctx, logg, codec, w, detail)
	}
}

// ProductsByCategory serves the similar-products strip.
func ProductsByCategory(svc products.Service, codec *envelope.Codec, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		limit, err := validators.ParseQueryInt(r, "limit", 0, 1, 100)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		category := strings.TrimSpace(r.URL.Query().Get("category"))

		list, err := svc.ListByCategory(ctx, category, limit)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteEncrypted(ctx, logg, codec, w, list)
	}
}
