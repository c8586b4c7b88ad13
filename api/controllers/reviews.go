package controllers

import (
	"net/http"

	"github.com/rohitvarpe/stitchkart-backend/api/middleware"
	"github.com/rohitvarpe/stitchkart-backend/api/responses"
	"github.com/rohitvarpe/stitchkart-backend/api/validators"
	"github.com/rohitvarpe/stitchkart-backend/internal/reviews"
	"github.com/rohitvarpe/stitchkart-backend/pkg/config"
	"github.com/rohitvarpe/stitchkart-backend/pkg/envelope"
	pkgerrors "github.com/rohitvarpe/stitchkart-backend/pkg/errors"
	"github.com/rohitvarpe/stitchkart-backend/pkg/logger"
)

// ReviewsForProduct returns the approved reviews and live stats for a product.
func ReviewsForProduct(svc reviews.Service, codec *envelope.Codec, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id, err := validators.ParseIDParam(r, "productId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		list, err := svc.ListForProduct(ctx, id)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteEncrypted(ctx, logg, codec, w, list)
	}
}

// ReviewCreate accepts an encrypted review payload from the signed-in customer.
func ReviewCreate(svc reviews.Service, codec *envelope.Codec, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		customerID := middleware.CustomerIDFromContext(ctx)
		if customerID == 0 {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
			return
		}

		var input reviews.CreateReviewInput
		if err := validators.DecodeEnvelopeBody(r, codec, &input); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		created, err := svc.CreateReview(ctx, customerID, input)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteEncryptedStatus(ctx, logg, codec, w, http.StatusCreated, created)
	}
}

// ReviewUploadMedia stores review media ahead of review creation and returns
// the public URLs, split by kind.
func ReviewUploadMedia(store *reviews.MediaStore, codec *envelope.Codec, cfg config.MediaConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		customerID := middleware.CustomerIDFromContext(ctx)
		if customerID == 0 {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
			return
		}

		maxBytes := int64(cfg.MaxUploadMB) << 20
		r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
		if err := r.ParseMultipartForm(maxBytes); err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid multipart body"))
			return
		}

		files := r.MultipartForm.File["files"]
		result, err := store.SaveAll(customerID, files)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteEncryptedStatus(ctx, logg, codec, w, http.StatusCreated, result)
	}
}

// ReviewCommentsList returns the approved comment thread for a review.
func ReviewCommentsList(svc reviews.Service, codec *envelope.Codec, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id, err := validators.ParseIDParam(r, "reviewId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		comments, err := svc.ListComments(ctx, id)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteEncrypted(ctx, logg, codec, w, comments)
	}
}

// ReviewCommentCreate accepts an encrypted comment payload.
func ReviewCommentCreate(svc reviews.Service, codec *envelope.Codec, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		customerID := middleware.CustomerIDFromContext(ctx)
		if customerID == 0 {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
			return
		}

		var input reviews.CreateCommentInput
		if err := validators.DecodeEnvelopeBody(r, codec, &input); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		created, err := svc.CreateComment(ctx, customerID, input)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteEncryptedStatus(ctx, logg, codec, w, http.StatusCreated, created)
	}
}
