package controllers

import (
	"net/http"

	"github.com/rohitvarpe/stitchkart-backend/api/middleware"
	"github.com/rohitvarpe/stitchkart-backend/api/responses"
	"github.com/rohitvarpe/stitchkart-backend/api/validators"
	"github.com/rohitvarpe/stitchkart-backend/internal/cart"
	pkgerrors "github.com/rohitvarpe/stitchkart-backend/pkg/errors"
	"github.com/rohitvarpe/stitchkart-backend/pkg/logger"
)

// CartFetch returns the signed-in customer's cart.
func CartFetch(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		customerID := middleware.CustomerIDFromContext(ctx)
		if customerID == 0 {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
			return
		}

		result, err := svc.List(ctx, customerID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// CartAdd validates the selection against live stock and stores the line.
func CartAdd(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		customerID := middleware.CustomerIDFromContext(ctx)
		if customerID == 0 {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
			return
		}

		var input cart.AddInput
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		item, err := svc.Add(ctx, customerID, input)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, item)
	}
}

// CartContains reports cart membership for one product.
func CartContains(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		customerID := middleware.CustomerIDFromContext(ctx)
		if customerID == 0 {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
			return
		}

		id, err := validators.ParseIDParam(r, "productId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		in, err := svc.IsInCart(ctx, customerID, id)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]bool{"in_cart": in})
	}
}
