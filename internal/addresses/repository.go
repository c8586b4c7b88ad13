package addresses

import (
	"context"

	"github.com/rohitvarpe/stitchkart-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository reads customer delivery addresses.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindByID loads one address row.
func (r *Repository) FindByID(ctx context.Context, id uint) (*models.Address, error) {
	var address models.Address
	if err := r.db.WithContext(ctx).First(&address, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &address, nil
}

// ListByCustomer returns the customer's addresses, default first, newest next.
func (r *Repository) ListByCustomer(ctx context.Context, customerID uint) ([]models.Address, error) {
	var rows []models.Address
	if err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("is_default DESC, created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
