package shop

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/yash635644/barber-backend/internal/domain"
	shopRepo "github.com/yash635644/barber-backend/internal/infra/storage/shop"
)

// Service чтение информации о магазине через кэш с TTL
// Строка магазина читается при каждом подтверждении записи, поэтому кэшируется
type Service struct {
	shopID int64
	repo   ShopRepository
	cache  *expirable.LRU[int64, *domain.Shop]
	logger Logger
}

// NewService создает сервис. size <= 0 или ttl <= 0 отключают кэш
func NewService(shopID int64, repo ShopRepository, size int, ttl time.Duration, logger Logger) *Service {
	s := &Service{
		shopID: shopID,
		repo:   repo,
		logger: logger,
	}
	if size > 0 && ttl > 0 {
		s.cache = expirable.NewLRU[int64, *domain.Shop](size, nil, ttl)
	}
	return s
}

// Get возвращает настроенный магазин
func (s *Service) Get(ctx context.Context) (*domain.Shop, error) {
	if s.cache != nil {
		if cached, ok := s.cache.Get(s.shopID); ok {
			return cached, nil
		}
	}

	shop, err := s.repo.GetByID(ctx, s.shopID)
	if err != nil {
		if errors.Is(err, shopRepo.ErrShopNotFound) {
			s.logger.Warn("GetShop: shop id=%d not found", s.shopID)
			return nil, ErrShopNotFound
		}
		s.logger.Error("GetShop: repository error for shop id=%d: %v", s.shopID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	if s.cache != nil {
		s.cache.Add(s.shopID, shop)
	}

	return shop, nil
}
