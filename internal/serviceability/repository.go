package serviceability

import (
	"context"

	"github.com/rohitvarpe/stitchkart-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository reads the pincode serviceability table.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindPincode loads a pincode row by its code.
func (r *Repository) FindPincode(ctx context.Context, code string) (*models.Pincode, error) {
	var pincode models.Pincode
	if err := r.db.WithContext(ctx).First(&pincode, "code = ?", code).Error; err != nil {
		return nil, err
	}
	return &pincode, nil
}
