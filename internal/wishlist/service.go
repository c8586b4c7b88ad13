package wishlist

import (
	"context"
	"fmt"

	"github.com/rohitvarpe/stitchkart-backend/internal/products"
	"github.com/rohitvarpe/stitchkart-backend/pkg/db/models"
	pkgerrors "github.com/rohitvarpe/stitchkart-backend/pkg/errors"
)

// Service exposes the wishlist collaborator surface.
type Service interface {
	List(ctx context.Context, customerID uint) (*WishlistDTO, error)
	Add(ctx context.Context, customerID, productID uint) error
	IsInWishlist(ctx context.Context, customerID, productID uint) (bool, error)
}

// ItemDTO is one wishlist entry.
type ItemDTO struct {
	ID        uint                 `json:"id"`
	ProductID uint                 `json:"product_id"`
	Product   *products.ProductDTO `json:"product,omitempty"`
}

// WishlistDTO wraps the customer's wishlist.
type WishlistDTO struct {
	Items []ItemDTO `json:"items"`
}

type productDetailProvider interface {
	Get(ctx context.Context, id uint) (*products.ProductDetailDTO, error)
}

type service struct {
	repo     *Repository
	products productDetailProvider
}

// NewService constructs the wishlist service.
func NewService(repo *Repository, productProvider productDetailProvider) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("wishlist repository required")
	}
	if productProvider == nil {
		return nil, fmt.Errorf("product provider required")
	}
	return &service{repo: repo, products: productProvider}, nil
}

func (s *service) List(ctx context.Context, customerID uint) (*WishlistDTO, error) {
	rows, err := s.repo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list wishlist")
	}

	items := make([]ItemDTO, 0, len(rows))
	for _, row := range rows {
		item := ItemDTO{ID: row.ID, ProductID: row.ProductID}
		if detail, err := s.products.Get(ctx, row.ProductID); err == nil {
			item.Product = &detail.Product
		}
		items = append(items, item)
	}
	return &WishlistDTO{Items: items}, nil
}

// Add ensures the product is live before recording the like.
func (s *service) Add(ctx context.Context, customerID, productID uint) error {
	if _, err := s.products.Get(ctx, productID); err != nil {
		return err
	}
	item := &models.WishlistItem{CustomerID: customerID, ProductID: productID}
	if err := s.repo.Add(ctx, item); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: add wishlist item")
	}
	return nil
}

func (s *service) IsInWishlist(ctx context.Context, customerID, productID uint) (bool, error) {
	exists, err := s.repo.Exists(ctx, customerID, productID)
	if err != nil {
		return false, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: check wishlist")
	}
	return exists, nil
}
