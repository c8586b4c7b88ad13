package serviceability

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rohitvarpe/stitchkart-backend/pkg/db/models"
	pkgerrors "github.com/rohitvarpe/stitchkart-backend/pkg/errors"
	"github.com/rohitvarpe/stitchkart-backend/pkg/logger"
	"github.com/rohitvarpe/stitchkart-backend/pkg/redis"
	"gorm.io/gorm"
)

const verdictCacheTTL = 15 * time.Minute

// Service resolves serviceability verdicts from the pincode table, fronted
// by a short-lived Redis cache.
type Service interface {
	Checker
}

type addressLoader interface {
	FindByID(ctx context.Context, id uint) (*models.Address, error)
}

type verdictCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}

type service struct {
	repo      *Repository
	addresses addressLoader
	cache     verdictCache
	logg      *logger.Logger
}

// NewService constructs the serviceability service. The cache is optional.
func NewService(repo *Repository, addresses addressLoader, cache verdictCache, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("serviceability repository required")
	}
	if addresses == nil {
		return nil, fmt.Errorf("address loader required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{repo: repo, addresses: addresses, cache: cache, logg: logg}, nil
}

type cachedVerdict struct {
	Serviceable bool   `json:"serviceable"`
	City        string `json:"city,omitempty"`
	State       string `json:"state,omitempty"`
}

// CheckPincode answers whether the given pincode is deliverable. An unknown
// pincode is a negative verdict, not an error.
func (s *service) CheckPincode(ctx context.Context, code string) (Verdict, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return Verdict{}, pkgerrors.New(pkgerrors.CodeValidation, "pincode is required")
	}

	cached, err := s.lookup(ctx, code)
	if err != nil {
		return Verdict{}, err
	}

	verdict := Verdict{
		Serviceable: cached.Serviceable,
		Pincode:     code,
		City:        cached.City,
		State:       cached.State,
	}
	if cached.Serviceable {
		verdict.Message = MsgPincodeDeliverable
	} else {
		verdict.Message = MsgPincodeNotDeliverable
	}
	return verdict, nil
}

// CheckAddress resolves the address's zip code and answers deliverability
// with the address-flow messages. Unknown addresses are NOT_FOUND.
func (s *service) CheckAddress(ctx context.Context, addressID uint) (Verdict, error) {
	address, err := s.addresses.FindByID(ctx, addressID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Verdict{}, pkgerrors.New(pkgerrors.CodeNotFound, "address not found")
		}
		return Verdict{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load address")
	}

	cached, err := s.lookup(ctx, address.ZipCode)
	if err != nil {
		return Verdict{}, err
	}

	verdict := Verdict{
		Serviceable: cached.Serviceable,
		Pincode:     address.ZipCode,
		City:        cached.City,
		State:       cached.State,
	}
	if cached.Serviceable {
		verdict.Message = MsgAddressDeliverable
	} else {
		verdict.Message = MsgAddressNotServiceable
	}
	return verdict, nil
}

// lookup answers the pincode question, cache first. Cache trouble only
// degrades to a direct table read.
func (s *service) lookup(ctx context.Context, code string) (cachedVerdict, error) {
	key := redis.ServiceabilityKey(code)

	if s.cache != nil {
		raw, err := s.cache.Get(ctx, key)
		switch {
		case err == nil:
			var cached cachedVerdict
			if jsonErr := json.Unmarshal([]byte(raw), &cached); jsonErr == nil {
				return cached, nil
			}
			s.logg.Warn(ctx, "discarding unreadable serviceability cache entry")
		case !errors.Is(err, redis.Nil):
			s.logg.Warn(ctx, "serviceability cache read failed")
		}
	}

	var result cachedVerdict
	pincode, err := s.repo.FindPincode(ctx, code)
	switch {
	case err == nil:
		result = cachedVerdict{
			Serviceable: pincode.IsServiceable,
			City:        pincode.City,
			State:       pincode.State,
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		result = cachedVerdict{Serviceable: false}
	default:
		return cachedVerdict{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: lookup pincode")
	}

	if s.cache != nil {
		if payload, err := json.Marshal(result); err == nil {
			if err := s.cache.Set(ctx, key, payload, verdictCacheTTL); err != nil {
				s.logg.Warn(ctx, "serviceability cache write failed")
			}
		}
	}

	return result, nil
}
