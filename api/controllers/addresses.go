package controllers

import (
	"net/http"

	"github.com/rohitvarpe/stitchkart-backend/api/middleware"
	"github.com/rohitvarpe/stitchkart-backend/api/responses"
	"github.com/rohitvarpe/stitchkart-backend/internal/addresses"
	pkgerrors "github.com/rohitvarpe/stitchkart-backend/pkg/errors"
	"github.com/rohitvarpe/stitchkart-backend/pkg/logger"
)

// AddressList returns the signed-in customer's saved addresses, default first.
func AddressList(svc addresses.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		customerID := middleware.CustomerIDFromContext(ctx)
		if customerID == 0 {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
			return
		}

		list, err := svc.ListForCustomer(ctx, customerID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}
