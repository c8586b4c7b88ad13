package cart

import (
	"context"
	"fmt"

	"github.com/rohitvarpe/stitchkart-backend/internal/catalog"
	"github.com/rohitvarpe/stitchkart-backend/internal/products"
	"github.com/rohitvarpe/stitchkart-backend/pkg/db/models"
	pkgerrors "github.com/rohitvarpe/stitchkart-backend/pkg/errors"
)

// Service exposes the cart collaborator surface: membership reads and a
// validated add. The add resolves the requested color/size against the
// product's authoritative variant representation before anything is written.
type Service interface {
	List(ctx context.Context, customerID uint) (*CartDTO, error)
	Add(ctx context.Context, customerID uint, input AddInput) (*ItemDTO, error)
	IsInCart(ctx context.Context, customerID, productID uint) (bool, error)
}

// AddInput is the decoded add-to-cart payload.
type AddInput struct {
	ProductID uint   `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	VariantID *uint  `json:"variant_id"`
}

// ItemDTO is one cart line.
type ItemDTO struct {
	ID        uint   `json:"id"`
	ProductID uint   `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Size      string `json:"size,omitempty"`
	Color     string `json:"color,omitempty"`
	VariantID *uint  `json:"variant_id,omitempty"`

	Product *products.ProductDTO `json:"product,omitempty"`
}

// CartDTO wraps the customer's cart lines.
type CartDTO struct {
	Items []ItemDTO `json:"items"`
}

type productDetailProvider interface {
	Get(ctx context.Context, id uint) (*products.ProductDetailDTO, error)
}

type service struct {
	repo     *Repository
	products productDetailProvider
}

// NewService constructs the cart service.
func NewService(repo *Repository, productProvider productDetailProvider) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("cart repository required")
	}
	if productProvider == nil {
		return nil, fmt.Errorf("product provider required")
	}
	return &service{repo: repo, products: productProvider}, nil
}

func (s *service) List(ctx context.Context, customerID uint) (*CartDTO, error) {
	rows, err := s.repo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list cart")
	}

	items := make([]ItemDTO, 0, len(rows))
	for _, row := range rows {
		item := ItemDTO{
			ID:        row.ID,
			ProductID: row.ProductID,
			Quantity:  row.Quantity,
			Size:      row.Size,
			Color:     row.Color,
			VariantID: row.VariantID,
		}
		// Lines pointing at products that went hidden stay listed without
		// the product payload; checkout re-validates.
		if detail, err := s.products.Get(ctx, row.ProductID); err == nil {
			item.Product = &detail.Product
		}
		items = append(items, item)
	}
	return &CartDTO{Items: items}, nil
}

// Add validates the requested selection against live stock and upserts the
// line. A rejected request never writes anything.
func (s *service) Add(ctx context.Context, customerID uint, input AddInput) (*ItemDTO, error) {
	if input.Quantity < 1 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be at least 1")
	}

	detail, err := s.products.Get(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}

	product := catalog.Normalize(detail.Product.Raw())
	selection := catalog.NewSelection(product)
	if input.Color != "" {
		selection.SelectColor(input.Color)
	}
	if input.Size != "" {
		selection.SelectSize(input.Size)
	}

	if product.Model == catalog.ModelColor && selection.Size == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "size selection required")
	}

	maxQty := selection.MaxQuantity()
	if maxQty == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "selected variant is out of stock")
	}
	if input.Quantity > maxQty {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("quantity exceeds the limit of %d", maxQty))
	}

	item := &models.CartItem{
		CustomerID: customerID,
		ProductID:  input.ProductID,
		Quantity:   input.Quantity,
		Size:       selection.Size,
		Color:      selection.Color,
		VariantID:  input.VariantID,
	}
	if err := s.repo.Upsert(ctx, item); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: upsert cart item")
	}

	return &ItemDTO{
		ID:        item.ID,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
		Size:      item.Size,
		Color:     item.Color,
		VariantID: item.VariantID,
	}, nil
}

func (s *service) IsInCart(ctx context.Context, customerID, productID uint) (bool, error) {
	exists, err := s.repo.Exists(ctx, customerID, productID)
	if err != nil {
		return false, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: check cart")
	}
	return exists, nil
}
