package reviews

import (
	"context"

	"github.com/rohitvarpe/stitchkart-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository persists reviews and their comment threads.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// CreateReview inserts a review row.
func (r *Repository) CreateReview(ctx context.Context, review *models.ProductReview) (*models.ProductReview, error) {
	if err := r.db.WithContext(ctx).Create(review).Error; err != nil {
		return nil, err
	}
	return review, nil
}

// FindReviewByID loads one review row.
func (r *Repository) FindReviewByID(ctx context.Context, id uint) (*models.ProductReview, error) {
	var review models.ProductReview
	if err := r.db.WithContext(ctx).First(&review, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

// ListApprovedByProduct returns approved reviews, newest first.
func (r *Repository) ListApprovedByProduct(ctx context.Context, productID uint) ([]models.ProductReview, error) {
	var rows []models.ProductReview
	if err := r.db.WithContext(ctx).
		Where("product_id = ? AND status = ?", productID, models.ReviewStatusApproved).
		Order("id DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// RatingBreakdown returns the approved rating histogram for a product.
func (r *Repository) RatingBreakdown(ctx context.Context, productID uint) (map[int]int, error) {
	type bucket struct {
		Rating int
		Count  int
	}
	var buckets []bucket
	if err := r.db.WithContext(ctx).
		Model(&models.ProductReview{}).
		Select("rating, COUNT(*) AS count").
		Where("product_id = ? AND status = ?", productID, models.ReviewStatusApproved).
		Group("rating").
		Scan(&buckets).Error; err != nil {
		return nil, err
	}
	breakdown := make(map[int]int, len(buckets))
	for _, b := range buckets {
		breakdown[b.Rating] = b.Count
	}
	return breakdown, nil
}

// UpdateProductRating writes the recalculated static rating onto the product.
func (r *Repository) UpdateProductRating(ctx context.Context, productID uint, rating float64) error {
	return r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", productID).
		Update("rating", rating).Error
}

// ProductExists reports whether the product row is present.
func (r *Repository) ProductExists(ctx context.Context, productID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", productID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CreateComment inserts a comment row.
func (r *Repository) CreateComment(ctx context.Context, comment *models.ReviewComment) (*models.ReviewComment, error) {
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// FindCommentByID loads one comment row.
func (r *Repository) FindCommentByID(ctx context.Context, id uint) (*models.ReviewComment, error) {
	var comment models.ReviewComment
	if err := r.db.WithContext(ctx).First(&comment, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListTopLevelComments returns approved root comments, oldest first.
func (r *Repository) ListTopLevelComments(ctx context.Context, reviewID uint) ([]models.ReviewComment, error) {
	var rows []models.ReviewComment
	if err := r.db.WithContext(ctx).
		Where("review_id = ? AND parent_id IS NULL AND status = ?", reviewID, models.CommentStatusApproved).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ListReplies returns approved replies for the given parents, oldest first.
func (r *Repository) ListReplies(ctx context.Context, parentIDs []uint) ([]models.ReviewComment, error) {
	if len(parentIDs) == 0 {
		return nil, nil
	}
	var rows []models.ReviewComment
	if err := r.db.WithContext(ctx).
		Where("parent_id IN ? AND status = ?", parentIDs, models.CommentStatusApproved).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// CustomerNames resolves display names (username, else email) for the ids.
func (r *Repository) CustomerNames(ctx context.Context, ids []uint) (map[uint]string, error) {
	if len(ids) == 0 {
		return map[uint]string{}, nil
	}
	var rows []models.Customer
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	names := make(map[uint]string, len(rows))
	for _, row := range rows {
		name := row.Username
		if name == "" {
			name = row.Email
		}
		names[row.ID] = name
	}
	return names, nil
}
