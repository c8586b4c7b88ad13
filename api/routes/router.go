package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rohitvarpe/stitchkart-backend/api/controllers"
	"github.com/rohitvarpe/stitchkart-backend/api/middleware"
	"github.com/rohitvarpe/stitchkart-backend/internal/addresses"
	"github.com/rohitvarpe/stitchkart-backend/internal/cart"
	"github.com/rohitvarpe/stitchkart-backend/internal/products"
	"github.com/rohitvarpe/stitchkart-backend/internal/reviews"
	"github.com/rohitvarpe/stitchkart-backend/internal/serviceability"
	"github.com/rohitvarpe/stitchkart-backend/internal/wishlist"
	"github.com/rohitvarpe/stitchkart-backend/pkg/config"
	"github.com/rohitvarpe/stitchkart-backend/pkg/db"
	"github.com/rohitvarpe/stitchkart-backend/pkg/envelope"
	"github.com/rohitvarpe/stitchkart-backend/pkg/logger"
	"github.com/rohitvarpe/stitchkart-backend/pkg/metrics"
)

// Deps carries everything the router wires into handlers.
type Deps struct {
	Config *config.Config
	Logger *logger.Logger
	Codec  *envelope.Codec

	DBPinger    db.Pinger
	RedisPinger db.Pinger

	Registry *prometheus.Registry

	Products       products.Service
	Reviews        reviews.Service
	MediaStore     *reviews.MediaStore
	Serviceability serviceability.Service
	Addresses      addresses.Service
	Cart           cart.Service
	Wishlist       wishlist.Service
}

func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()

	httpMetrics := metrics.NewHTTPMetrics(d.Registry)

	r.Use(
		middleware.Recoverer(d.Logger),
		middleware.RequestID(d.Logger),
		middleware.Logging(d.Logger),
		middleware.Metrics(httpMetrics),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(d.Config))
		r.Get("/ready", controllers.HealthReady(d.Config, d.Logger, d.DBPinger, d.RedisPinger))
	})

	if d.Registry != nil {
		r.Method("GET", "/metrics", promhttp.HandlerFor(d.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ProductsByCategory(d.Products, d.Codec, d.Logger))
			r.Get("/customer", controllers.ProductsCustomerList(d.Products, d.Codec, d.Logger))
			r.Get("/{productId}", controllers.ProductDetail(d.Products, d.Codec, d.Logger))
		})

		r.Route("/reviews", func(r chi.Router) {
			r.Get("/product/{productId}", controllers.ReviewsForProduct(d.Reviews, d.Codec, d.Logger))
			r.Group(func(r chi.Router) {
				r.Use(middleware.Auth(d.Config.JWT, d.Logger))
				r.Post("/", controllers.ReviewCreate(d.Reviews, d.Codec, d.Logger))
				r.Post("/upload-media", controllers.ReviewUploadMedia(d.MediaStore, d.Codec, d.Config.Media, d.Logger))
			})
		})

		r.Route("/review-comments", func(r chi.Router) {
			r.Get("/review/{reviewId}", controllers.ReviewCommentsList(d.Reviews, d.Codec, d.Logger))
			r.Group(func(r chi.Router) {
				r.Use(middleware.Auth(d.Config.JWT, d.Logger))
				r.Post("/", controllers.ReviewCommentCreate(d.Reviews, d.Codec, d.Logger))
			})
		})

		r.Route("/pincode", func(r chi.Router) {
			r.Post("/check", controllers.PincodeCheck(d.Serviceability, d.Codec, d.Logger))
			r.Group(func(r chi.Router) {
				r.Use(middleware.Auth(d.Config.JWT, d.Logger))
				r.Post("/check-address", controllers.PincodeCheckAddress(d.Serviceability, d.Codec, d.Logger))
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(d.Config.JWT, d.Logger))

			r.Get("/addresses", controllers.AddressList(d.Addresses, d.Logger))

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", controllers.CartFetch(d.Cart, d.Logger))
				r.Post("/", controllers.CartAdd(d.Cart, d.Logger))
				r.Get("/contains/{productId}", controllers.CartContains(d.Cart, d.Logger))
			})

			r.Route("/wishlist", func(r chi.Router) {
				r.Get("/", controllers.WishlistFetch(d.Wishlist, d.Logger))
				r.Post("/", controllers.WishlistAdd(d.Wishlist, d.Logger))
				r.Get("/contains/{productId}", controllers.WishlistContains(d.Wishlist, d.Logger))
			})
		})
	})

	return r
}
