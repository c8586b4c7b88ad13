package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/rohitvarpe/stitchkart-backend/internal/addresses"
	"github.com/rohitvarpe/stitchkart-backend/internal/cart"
	"github.com/rohitvarpe/stitchkart-backend/internal/products"
	"github.com/rohitvarpe/stitchkart-backend/internal/reviews"
	"github.com/rohitvarpe/stitchkart-backend/internal/serviceability"
	"github.com/rohitvarpe/stitchkart-backend/internal/wishlist"
	pkgAuth "github.com/rohitvarpe/stitchkart-backend/pkg/auth"
	"github.com/rohitvarpe/stitchkart-backend/pkg/config"
	"github.com/rohitvarpe/stitchkart-backend/pkg/envelope"
	"github.com/rohitvarpe/stitchkart-backend/pkg/logger"
	"github.com/rs/zerolog"
)

type stubPinger struct{}

func (stubPinger) Ping(context.Context) error { return nil }

type stubProducts struct{}

func (stubProducts) ListCustomer(context.Context) (*products.ProductListDTO, error) {
	return &products.ProductListDTO{}, nil
}
func (stubProducts) Get(context.Context, uint) (*products.ProductDetailDTO, error) {
	return &products.ProductDetailDTO{}, nil
}
func (stubProducts) ListByCategory(context.Context, string, int) (*products.ProductListDTO, error) {
	return &products.ProductListDTO{}, nil
}

type stubReviews struct{}

func (stubReviews) CreateReview(context.Context, uint, reviews.CreateReviewInput) (*reviews.ReviewDTO, error) {
	return &reviews.ReviewDTO{}, nil
}
func (stubReviews) ListForProduct(context.Context, uint) (*reviews.ReviewListDTO, error) {
	return &reviews.ReviewListDTO{}, nil
}
func (stubReviews) Stats(context.Context, uint) (*reviews.StatsDTO, error) {
	return &reviews.StatsDTO{}, nil
}
func (stubReviews) ListComments(context.Context, uint) ([]reviews.CommentDTO, error) {
	return nil, nil
}
func (stubReviews) CreateComment(context.Context, uint, reviews.CreateCommentInput) (*reviews.CommentDTO, error) {
	return &reviews.CommentDTO{}, nil
}

type stubServiceability struct{}

func (stubServiceability) CheckPincode(context.Context, string) (serviceability.Verdict, error) {
	return serviceability.Verdict{}, nil
}
func (stubServiceability) CheckAddress(context.Context, uint) (serviceability.Verdict, error) {
	return serviceability.Verdict{}, nil
}

type stubAddresses struct{}

func (stubAddresses) ListForCustomer(context.Context, uint) ([]addresses.AddressDTO, error) {
	return nil, nil
}
func (stubAddresses) GetForCustomer(context.Context, uint, uint) (*addresses.AddressDTO, error) {
	return nil, nil
}

type stubCart struct{}

func (stubCart) List(context.Context, uint) (*cart.CartDTO, error) { return &cart.CartDTO{}, nil }
func (stubCart) Add(context.Context, uint, cart.AddInput) (*cart.ItemDTO, error) {
	return &cart.ItemDTO{}, nil
}
func (stubCart) IsInCart(context.Context, uint, uint) (bool, error) { return false, nil }

type stubWishlist struct{}

func (stubWishlist) List(context.Context, uint) (*wishlist.WishlistDTO, error) {
	return &wishlist.WishlistDTO{}, nil
}
func (stubWishlist) Add(context.Context, uint, uint) error          { return nil }
func (stubWishlist) IsInWishlist(context.Context, uint, uint) (bool, error) { return false, nil }

func newTestRouter(t *testing.T) (http.Handler, *config.Config) {
	t.Helper()
	cfg := &config.Config{}
	cfg.App.Env = "test"
	cfg.JWT = config.JWTConfig{Secret: "test-secret", Issuer: "stitchkart-test", ExpirationMinutes: 15}
	cfg.Media.MaxUploadMB = 5
	cfg.Media.UploadDir = t.TempDir()

	codec, err := envelope.New("0123456789abcdef0123456789abcdef")
	if err != nil {
		t.Fatalf("codec: %v", err)
	}
	store, err := reviews.NewMediaStore(cfg.Media)
	if err != nil {
		t.Fatalf("media store: %v", err)
	}

	logg := logger.New(logger.Options{ServiceName: "test", Level: zerolog.Disabled})
	handler := NewRouter(Deps{
		Config:         cfg,
		Logger:         logg,
		Codec:          codec,
		DBPinger:       stubPinger{},
		RedisPinger:    stubPinger{},
		Registry:       prometheus.NewRegistry(),
		Products:       stubProducts{},
		Reviews:        stubReviews{},
		MediaStore:     store,
		Serviceability: stubServiceability{},
		Addresses:      stubAddresses{},
		Cart:           stubCart{},
		Wishlist:       stubWishlist{},
	})
	return handler, cfg
}

func TestRouterServesHealthAndMetrics(t *testing.T) {
	handler, _ := newTestRouter(t)

	for _, path := range []string{"/health/live", "/health/ready", "/metrics"} {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("GET %s: expected 200, got %d", path, rec.Code)
		}
	}
}

func TestRouterPublicProductRoutes(t *testing.T) {
	handler, _ := newTestRouter(t)

	for _, path := range []string{"/api/products/customer", "/api/products/3", "/api/reviews/product/3", "/api/review-comments/review/3"} {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("GET %s: expected 200, got %d", path, rec.Code)
		}
	}
}

func TestRouterProtectsCustomerRoutes(t *testing.T) {
	handler, cfg := newTestRouter(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/cart", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}

	token, err := pkgAuth.MintAccessToken(cfg.JWT, time.Now(), pkgAuth.AccessTokenPayload{CustomerID: 7, Username: "asha"})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}

	for _, path := range []string{"/api/cart", "/api/wishlist", "/api/addresses"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("GET %s: expected 200 with token, got %d", path, rec.Code)
		}
	}
}
