package products

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/rohitvarpe/stitchkart-backend/internal/catalog"
	"github.com/rohitvarpe/stitchkart-backend/internal/reviews"
	"github.com/rohitvarpe/stitchkart-backend/pkg/db/models"
	pkgerrors "github.com/rohitvarpe/stitchkart-backend/pkg/errors"
	"github.com/rohitvarpe/stitchkart-backend/pkg/logger"
	"gorm.io/gorm"
)

// Service exposes the customer catalog reads.
type Service interface {
	ListCustomer(ctx context.Context) (*ProductListDTO, error)
	Get(ctx context.Context, id uint) (*ProductDetailDTO, error)
	ListByCategory(ctx context.Context, category string, limit int) (*ProductListDTO, error)
}

type statsProvider interface {
	Stats(ctx context.Context, productID uint) (*reviews.StatsDTO, error)
}

type service struct {
	repo  *Repository
	stats statsProvider
	logg  *logger.Logger
}

// NewService constructs the product service.
func NewService(repo *Repository, stats statsProvider, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("product repository required")
	}
	if stats == nil {
		return nil, fmt.Errorf("review stats provider required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{repo: repo, stats: stats, logg: logg}, nil
}

func (s *service) ListCustomer(ctx context.Context) (*ProductListDTO, error) {
	rows, err := s.repo.ListCustomerVisible(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list products")
	}
	return &ProductListDTO{Products: s.toDTOs(ctx, rows)}, nil
}

// Get returns the detail payload. Hidden or inactive products are NOT_FOUND,
// same as missing rows.
func (s *service) Get(ctx context.Context, id uint) (*ProductDetailDTO, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load product")
	}
	if !row.IsActive || !row.Visibility {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}

	stats, err := s.stats.Stats(ctx, id)
	if err != nil {
		return nil, err
	}

	return &ProductDetailDTO{
		Product: s.toDTO(ctx, *row),
		Stats:   *stats,
	}, nil
}

func (s *service) ListByCategory(ctx context.Context, category string, limit int) (*ProductListDTO, error) {
	rows, err := s.repo.ListByCategory(ctx, category, limit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list products by category")
	}
	return &ProductListDTO{Products: s.toDTOs(ctx, rows)}, nil
}

func (s *service) toDTOs(ctx context.Context, rows []models.Product) []ProductDTO {
	out := make([]ProductDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, s.toDTO(ctx, row))
	}
	return out
}

// toDTO assembles the wire payload from the row's JSON columns. A column
// that fails to parse is dropped from the payload, not fatal; the row id is
// logged for cleanup.
func (s *service) toDTO(ctx context.Context, row models.Product) ProductDTO {
	dto := ProductDTO{
		ID:             row.ID,
		Name:           row.Name,
		Description:    row.Description,
		Price:          row.Price,
		DiscountValue:  row.DiscountValue,
		FinalPrice:     round2(row.Price * (1 - row.DiscountValue/100)),
		OriginalPrice:  round2(row.Price),
		Color:          row.Color,
		Image:          row.Image,
		Category:       row.Category,
		Subcategory:    row.Subcategory,
		Tag:            row.Tag,
		Stock:          row.Stock,
		Visibility:     row.Visibility,
		IsActive:       row.IsActive,
		IsReturnable:   row.IsReturnable,
		IsCODAvailable: row.IsCODAvailable,
		Rating:         row.Rating,
		IsFeatured:     row.IsFeatured,
		IsLatest:       row.IsLatest,
		IsTrending:     row.IsTrending,
		IsNew:          row.IsNew,
		CreatedAt:      row.CreatedAt,
	}

	if row.ColorsJSON != "" {
		if err := json.Unmarshal([]byte(row.ColorsJSON), &dto.Colors); err != nil {
			s.logg.Warn(s.logg.WithField(ctx, "product_id", row.ID), "unparseable colors column")
			dto.Colors = nil
		}
	}
	if row.VariantsJSON != "" {
		if err := json.Unmarshal([]byte(row.VariantsJSON), &dto.Variants); err != nil {
			s.logg.Warn(s.logg.WithField(ctx, "product_id", row.ID), "unparseable variants column")
			dto.Variants = nil
		}
	}
	if row.SizesJSON != "" {
		if err := json.Unmarshal([]byte(row.SizesJSON), &dto.Sizes); err != nil {
			s.logg.Warn(s.logg.WithField(ctx, "product_id", row.ID), "unparseable sizes column")
			dto.Sizes = nil
		}
	}

	dto.Images = imagesOf(row)
	normalized := catalog.Normalize(dto.Raw())
	dto.AvailableSizes = normalized.AvailableSizes()
	dto.TotalStock = totalStock(normalized, row.Stock)

	return dto
}

// imagesOf builds the image list, preferring the JSON column and falling back
// to the comma-separated legacy column.
func imagesOf(row models.Product) []string {
	if row.ImagesJSON != "" {
		var images []string
		if err := json.Unmarshal([]byte(row.ImagesJSON), &images); err == nil {
			return images
		}
	}
	if row.Image == "" {
		return []string{}
	}
	parts := strings.Split(row.Image, ",")
	images := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			images = append(images, trimmed)
		}
	}
	return images
}

// totalStock sums whatever stock the authoritative representation carries,
// falling back to the bare stock column.
func totalStock(p *catalog.Product, fallback int) int {
	switch p.Model {
	case catalog.ModelColor:
		total := 0
		for _, c := range p.Colors {
			for _, count := range c.SizeCounts {
				total += count
			}
		}
		return total
	case catalog.ModelLegacyVariant:
		total := 0
		for _, v := range p.Variants {
			if v.Available {
				total += v.Stock
			}
		}
		return total
	default:
		if len(p.FlatSizes) > 0 {
			total := 0
			for _, count := range p.FlatSizes {
				total += count
			}
			return total
		}
		return fallback
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
