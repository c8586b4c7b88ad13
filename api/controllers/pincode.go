package controllers

import (
	"net/http"

	"github.com/rohitvarpe/stitchkart-backend/api/responses"
	"github.com/rohitvarpe/stitchkart-backend/api/validators"
	"github.com/rohitvarpe/stitchkart-backend/internal/serviceability"
	"github.com/rohitvarpe/stitchkart-backend/pkg/envelope"
	"github.com/rohitvarpe/stitchkart-backend/pkg/logger"
)

type pincodeCheckPayload struct {
	Pincode string `json:"pincode" validate:"required"`
}

type addressCheckPayload struct {
	AddressID uint `json:"address_id" validate:"required"`
}

// PincodeCheck resolves a typed pincode to a serviceability verdict. Request
// and response both ride the encrypted envelope.
func PincodeCheck(svc serviceability.Service, codec *envelope.Codec, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var input pincodeCheckPayload
		if err := validators.DecodeEnvelopeBody(r, codec, &input); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		verdict, err := svc.CheckPincode(ctx, input.Pincode)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteEncrypted(ctx, logg, codec, w, verdict)
	}
}

// PincodeCheckAddress resolves a saved address to a serviceability verdict.
func PincodeCheckAddress(svc serviceability.Service, codec *envelope.Codec, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var input addressCheckPayload
		if err := validators.DecodeEnvelopeBody(r, codec, &input); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		verdict, err := svc.CheckAddress(ctx, input.AddressID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteEncrypted(ctx, logg, codec, w, verdict)
	}
}
