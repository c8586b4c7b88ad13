package addresses

import (
	"context"
	"errors"
	"fmt"

	"github.com/rohitvarpe/stitchkart-backend/pkg/db/models"
	pkgerrors "github.com/rohitvarpe/stitchkart-backend/pkg/errors"
	"gorm.io/gorm"
)

// Service exposes customer address reads.
type Service interface {
	ListForCustomer(ctx context.Context, customerID uint) ([]AddressDTO, error)
	GetForCustomer(ctx context.Context, customerID, addressID uint) (*AddressDTO, error)
}

// AddressDTO is the wire shape of one delivery address.
type AddressDTO struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Line1     string `json:"line1"`
	Line2     string `json:"line2,omitempty"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zip_code"`
	IsDefault bool   `json:"is_default"`
}

type service struct {
	repo *Repository
}

// NewService constructs the address service.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("address repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) ListForCustomer(ctx context.Context, customerID uint) ([]AddressDTO, error) {
	rows, err := s.repo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list addresses")
	}
	out := make([]AddressDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDTO(row))
	}
	return out, nil
}

func (s *service) GetForCustomer(ctx context.Context, customerID, addressID uint) (*AddressDTO, error) {
	row, err := s.repo.FindByID(ctx, addressID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "address not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load address")
	}
	if row.CustomerID != customerID {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "address not found")
	}
	dto := toDTO(*row)
	return &dto, nil
}

func toDTO(row models.Address) AddressDTO {
	return AddressDTO{
		ID:        row.ID,
		Name:      row.Name,
		Line1:     row.Line1,
		Line2:     row.Line2,
		City:      row.City,
		State:     row.State,
		ZipCode:   row.ZipCode,
		IsDefault: row.IsDefault,
	}
}
