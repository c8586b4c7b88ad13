package wishlist

import (
	"context"
	"testing"

	"github.com/rohitvarpe/stitchkart-backend/internal/products"
	"github.com/rohitvarpe/stitchkart-backend/internal/reviews"
	"github.com/rohitvarpe/stitchkart-backend/pkg/db"
	"github.com/rohitvarpe/stitchkart-backend/pkg/db/models"
	pkgerrors "github.com/rohitvarpe/stitchkart-backend/pkg/errors"
	"github.com/rohitvarpe/stitchkart-backend/pkg/logger"
	"github.com/rs/zerolog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (Service, *gorm.DB) {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := conn.AutoMigrate(
		&models.Product{},
		&models.Customer{},
		&models.ProductReview{},
		&models.ReviewComment{},
		&models.WishlistItem{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	logg := logger.New(logger.Options{ServiceName: "test", Level: zerolog.Disabled})
	reviewSvc, err := reviews.NewService(reviews.NewRepository(conn), db.NewFromConn(conn))
	if err != nil {
		t.Fatalf("review service: %v", err)
	}
	productSvc, err := products.NewService(products.NewRepository(conn), reviewSvc, logg)
	if err != nil {
		t.Fatalf("product service: %v", err)
	}
	svc, err := NewService(NewRepository(conn), productSvc)
	if err != nil {
		t.Fatalf("NewService failed: %v", err)
	}
	return svc, conn
}

func TestAddAndMembership(t *testing.T) {
	svc, conn := newTestService(t)
	row := &models.Product{Name: "Tee", Price: 100, Visibility: true, IsActive: true}
	if err := conn.Create(row).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}

	if err := svc.Add(context.Background(), 1, row.ID); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	// Re-adding is idempotent.
	if err := svc.Add(context.Background(), 1, row.ID); err != nil {
		t.Fatalf("second Add failed: %v", err)
	}

	in, err := svc.IsInWishlist(context.Background(), 1, row.ID)
	if err != nil || !in {
		t.Fatalf("expected membership, got %v/%v", in, err)
	}
	in, err = svc.IsInWishlist(context.Background(), 2, row.ID)
	if err != nil || in {
		t.Fatalf("expected no membership for other customer, got %v/%v", in, err)
	}

	list, err := svc.List(context.Background(), 1)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list.Items) != 1 || list.Items[0].ProductID != row.ID {
		t.Fatalf("unexpected wishlist %+v", list.Items)
	}
	if list.Items[0].Product == nil || list.Items[0].Product.Name != "Tee" {
		t.Fatalf("expected product payload, got %+v", list.Items[0].Product)
	}
}

func TestAddHiddenProductIsNotFound(t *testing.T) {
	svc, conn := newTestService(t)
	row := &models.Product{Name: "Hidden", Price: 100, Visibility: false, IsActive: true}
	if err := conn.Create(row).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}

	err := svc.Add(context.Background(), 1, row.ID)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}
