package reviews

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/rohitvarpe/stitchkart-backend/pkg/db"
	"github.com/rohitvarpe/stitchkart-backend/pkg/db/models"
	pkgerrors "github.com/rohitvarpe/stitchkart-backend/pkg/errors"
	"gorm.io/gorm"
)

// Service exposes the customer review surface: approved listings with live
// stats, review creation, and two-level comment threads.
type Service interface {
	CreateReview(ctx context.Context, customerID uint, input CreateReviewInput) (*ReviewDTO, error)
	ListForProduct(ctx context.Context, productID uint) (*ReviewListDTO, error)
	Stats(ctx context.Context, productID uint) (*StatsDTO, error)
	ListComments(ctx context.Context, reviewID uint) ([]CommentDTO, error)
	CreateComment(ctx context.Context, customerID uint, input CreateCommentInput) (*CommentDTO, error)
}

// CreateReviewInput holds the decoded review payload. Media URLs arrive from
// the upload endpoint; the review is only created once they are known.
type CreateReviewInput struct {
	ProductID          uint     `json:"product_id" validate:"required"`
	Rating             int      `json:"rating" validate:"required,min=1,max=5"`
	Title              string   `json:"title"`
	Content            string   `json:"content"`
	Images             []string `json:"images"`
	Videos             []string `json:"videos"`
	IsVerifiedPurchase bool     `json:"is_verified_purchase"`
}

// CreateCommentInput holds the decoded comment payload.
type CreateCommentInput struct {
	ReviewID uint   `json:"review_id" validate:"required"`
	ParentID *uint  `json:"parent_id"`
	Content  string `json:"content" validate:"required"`
}

// ReviewDTO is the wire shape of one review.
type ReviewDTO struct {
	ID                 uint         `json:"id"`
	ProductID          uint         `json:"product_id"`
	CustomerID         uint         `json:"customer_id"`
	AuthorName         string       `json:"author_name,omitempty"`
	Rating             int          `json:"rating"`
	Title              string       `json:"title,omitempty"`
	Content            string       `json:"content,omitempty"`
	Images             []string     `json:"images"`
	Videos             []string     `json:"videos"`
	IsVerifiedPurchase bool         `json:"is_verified_purchase"`
	Status             string       `json:"status"`
	CreatedAt          time.Time    `json:"created_at"`
	Comments           []CommentDTO `json:"comments,omitempty"`
}

// CommentDTO is one comment with its single level of replies.
type CommentDTO struct {
	ID         uint         `json:"id"`
	ReviewID   uint         `json:"review_id"`
	ParentID   *uint        `json:"parent_id,omitempty"`
	AuthorType string       `json:"author_type"`
	AuthorName string       `json:"author_name,omitempty"`
	Content    string       `json:"content"`
	Status     string       `json:"status"`
	CreatedAt  time.Time    `json:"created_at"`
	Replies    []CommentDTO `json:"replies,omitempty"`
}

// StatsDTO is the live rating aggregate for one product.
type StatsDTO struct {
	Total     int            `json:"total"`
	Average   float64        `json:"average"`
	Breakdown map[string]int `json:"breakdown"`
}

type service struct {
	repo     *Repository
	dbClient *db.Client
}

// NewService constructs the review service.
func NewService(repo *Repository, dbClient *db.Client) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("review repository required")
	}
	if dbClient == nil {
		return nil, fmt.Errorf("db client required")
	}
	return &service{repo: repo, dbClient: dbClient}, nil
}

// CreateReview stores an approved review and refreshes the product's static
// rating in the same transaction.
func (s *service) CreateReview(ctx context.Context, customerID uint, input CreateReviewInput) (*ReviewDTO, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "rating must be between 1 and 5")
	}

	exists, err := s.repo.ProductExists(ctx, input.ProductID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: check product")
	}
	if !exists {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid product_id")
	}

	review := &models.ProductReview{
		ProductID:          input.ProductID,
		CustomerID:         customerID,
		Rating:             input.Rating,
		Title:              input.Title,
		Content:            input.Content,
		ImageURLs:          joinURLs(input.Images),
		VideoURLs:          joinURLs(input.Videos),
		IsVerifiedPurchase: input.IsVerifiedPurchase,
		Status:             models.ReviewStatusApproved,
	}

	if err := s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)
		if _, err := txRepo.CreateReview(ctx, review); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert review")
		}
		return recalculateRating(ctx, txRepo, input.ProductID)
	}); err != nil {
		return nil, err
	}

	dto := s.toReviewDTO(ctx, *review)
	return &dto, nil
}

// ListForProduct returns approved reviews newest first, plus live stats.
func (s *service) ListForProduct(ctx context.Context, productID uint) (*ReviewListDTO, error) {
	rows, err := s.repo.ListApprovedByProduct(ctx, productID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list reviews")
	}

	stats, err := s.Stats(ctx, productID)
	if err != nil {
		return nil, err
	}

	names := s.authorNames(ctx, customerIDsOfReviews(rows))
	dtos := make([]ReviewDTO, 0, len(rows))
	for _, row := range rows {
		dto := toReviewDTO(row)
		dto.AuthorName = names[row.CustomerID]
		dtos = append(dtos, dto)
	}

	return &ReviewListDTO{Reviews: dtos, Stats: *stats}, nil
}

// Stats aggregates the approved rating histogram into total/average/breakdown.
func (s *service) Stats(ctx context.Context, productID uint) (*StatsDTO, error) {
	histogram, err := s.repo.RatingBreakdown(ctx, productID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: rating breakdown")
	}

	stats := &StatsDTO{Breakdown: map[string]int{}}
	sum := 0
	for rating := 1; rating <= 5; rating++ {
		count := histogram[rating]
		stats.Breakdown[strconv.Itoa(rating)] = count
		stats.Total += count
		sum += rating * count
	}
	if stats.Total > 0 {
		stats.Average = round2(float64(sum) / float64(stats.Total))
	}
	return stats, nil
}

// ListComments returns approved top-level comments with one level of replies.
func (s *service) ListComments(ctx context.Context, reviewID uint) ([]CommentDTO, error) {
	roots, err := s.repo.ListTopLevelComments(ctx, reviewID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list comments")
	}

	rootIDs := make([]uint, 0, len(roots))
	for _, root := range roots {
		rootIDs = append(rootIDs, root.ID)
	}
	replies, err := s.repo.ListReplies(ctx, rootIDs)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list replies")
	}

	names := s.authorNames(ctx, customerIDsOfComments(append(roots, replies...)))

	repliesByParent := make(map[uint][]CommentDTO, len(roots))
	for _, reply := range replies {
		dto := toCommentDTO(reply, names)
		repliesByParent[*reply.ParentID] = append(repliesByParent[*reply.ParentID], dto)
	}

	out := make([]CommentDTO, 0, len(roots))
	for _, root := range roots {
		dto := toCommentDTO(root, names)
		dto.Replies = repliesByParent[root.ID]
		out = append(out, dto)
	}
	return out, nil
}

// CreateComment stores a customer comment. Replies to replies are rejected;
// threads never exceed two levels.
func (s *service) CreateComment(ctx context.Context, customerID uint, input CreateCommentInput) (*CommentDTO, error) {
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "content required")
	}

	if _, err := s.repo.FindReviewByID(ctx, input.ReviewID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid review_id")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load review")
	}

	if input.ParentID != nil {
		parent, err := s.repo.FindCommentByID(ctx, *input.ParentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid parent_id")
			}
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load parent comment")
		}
		if parent.ReviewID != input.ReviewID {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "parent comment belongs to a different review")
		}
		if parent.ParentID != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "replies cannot be nested further")
		}
	}

	cid := customerID
	comment := &models.ReviewComment{
		ReviewID:   input.ReviewID,
		ParentID:   input.ParentID,
		CustomerID: &cid,
		AuthorType: models.CommentAuthorCustomer,
		Content:    content,
		Status:     models.CommentStatusApproved,
	}
	if _, err := s.repo.CreateComment(ctx, comment); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert comment")
	}

	names := s.authorNames(ctx, []uint{customerID})
	dto := toCommentDTO(*comment, names)
	return &dto, nil
}

func (s *service) toReviewDTO(ctx context.Context, row models.ProductReview) ReviewDTO {
	dto := toReviewDTO(row)
	names := s.authorNames(ctx, []uint{row.CustomerID})
	dto.AuthorName = names[row.CustomerID]
	return dto
}

// authorNames is best-effort; a failed lookup leaves names blank.
func (s *service) authorNames(ctx context.Context, ids []uint) map[uint]string {
	names, err := s.repo.CustomerNames(ctx, ids)
	if err != nil {
		return map[uint]string{}
	}
	return names
}

func recalculateRating(ctx context.Context, repo *Repository, productID uint) error {
	histogram, err := repo.RatingBreakdown(ctx, productID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: rating breakdown")
	}
	total, sum := 0, 0
	for rating, count := range histogram {
		total += count
		sum += rating * count
	}
	rating := 0.0
	if total > 0 {
		rating = round2(float64(sum) / float64(total))
	}
	if err := repo.UpdateProductRating(ctx, productID, rating); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: update product rating")
	}
	return nil
}

func toReviewDTO(row models.ProductReview) ReviewDTO {
	return ReviewDTO{
		ID:                 row.ID,
		ProductID:          row.ProductID,
		CustomerID:         row.CustomerID,
		Rating:             row.Rating,
		Title:              row.Title,
		Content:            row.Content,
		Images:             splitURLs(row.ImageURLs),
		Videos:             splitURLs(row.VideoURLs),
		IsVerifiedPurchase: row.IsVerifiedPurchase,
		Status:             row.Status,
		CreatedAt:          row.CreatedAt,
	}
}

func toCommentDTO(row models.ReviewComment, names map[uint]string) CommentDTO {
	dto := CommentDTO{
		ID:         row.ID,
		ReviewID:   row.ReviewID,
		ParentID:   row.ParentID,
		AuthorType: row.AuthorType,
		Content:    row.Content,
		Status:     row.Status,
		CreatedAt:  row.CreatedAt,
	}
	if row.CustomerID != nil {
		dto.AuthorName = names[*row.CustomerID]
	}
	return dto
}

func customerIDsOfReviews(rows []models.ProductReview) []uint {
	seen := make(map[uint]struct{}, len(rows))
	ids := make([]uint, 0, len(rows))
	for _, row := range rows {
		if _, ok := seen[row.CustomerID]; ok {
			continue
		}
		seen[row.CustomerID] = struct{}{}
		ids = append(ids, row.CustomerID)
	}
	return ids
}

func customerIDsOfComments(rows []models.ReviewComment) []uint {
	seen := make(map[uint]struct{}, len(rows))
	ids := make([]uint, 0, len(rows))
	for _, row := range rows {
		if row.CustomerID == nil {
			continue
		}
		if _, ok := seen[*row.CustomerID]; ok {
			continue
		}
		seen[*row.CustomerID] = struct{}{}
		ids = append(ids, *row.CustomerID)
	}
	return ids
}

func joinURLs(urls []string) string {
	cleaned := make([]string, 0, len(urls))
	for _, u := range urls {
		if trimmed := strings.TrimSpace(u); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	return strings.Join(cleaned, ",")
}

func splitURLs(joined string) []string {
	if joined == "" {
		return []string{}
	}
	parts := strings.Split(joined, ",")
	urls := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			urls = append(urls, trimmed)
		}
	}
	return urls
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
