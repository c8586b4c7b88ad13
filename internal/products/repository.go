package products

import (
	"context"

	"github.com/rohitvarpe/stitchkart-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository reads the product catalog.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindByID loads one product row regardless of visibility.
func (r *Repository) FindByID(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// ListCustomerVisible returns products the storefront may show.
func (r *Repository) ListCustomerVisible(ctx context.Context) ([]models.Product, error) {
	var rows []models.Product
	if err := r.db.WithContext(ctx).
		Where("is_active = ? AND visibility = ?", true, true).
		Order("id DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ListByCategory returns visible products for a category, capped at limit.
func (r *Repository) ListByCategory(ctx context.Context, category string, limit int) ([]models.Product, error) {
	q := r.db.WithContext(ctx).
		Where("is_active = ? AND visibility = ?", true, true).
		Order("id DESC")
	if category != "" {
		q = q.Where("category = ?", category)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	var rows []models.Product
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
