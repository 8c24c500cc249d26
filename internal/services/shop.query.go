package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/zhou-jk/flashsale-api/internal/domain"
	"github.com/zhou-jk/flashsale-api/internal/domain/vo"
	sharedcache "github.com/zhou-jk/flashsale-api/internal/shared/cache"
	"github.com/zhou-jk/flashsale-api/internal/shared/lock"
)

type ShopRepository interface {
	GetShopByID(ctx context.Context, shopID int64) (domain.Shop, error)
	UpdateShop(ctx context.Context, shop domain.Shop) error
}

// ShopQueryService serves shop reads through the logical-expiry cache: a warm
// entry is always servable, staleness triggers one background rebuild, and
// writes go durable-first with cache invalidation after.
type ShopQueryService struct {
	repository ShopRepository
	cache      *sharedcache.Client
	freshFor   time.Duration
}

const defaultShopFreshFor = 30 * time.Minute

func NewShopQueryService(repository ShopRepository, cacheClient *sharedcache.Client, freshFor time.Duration) *ShopQueryService {
	if freshFor <= 0 {
		freshFor = defaultShopFreshFor
	}
	return &ShopQueryService{
		repository: repository,
		cache:      cacheClient,
		freshFor:   freshFor,
	}
}

func (s *ShopQueryService) GetShop(ctx context.Context, shopID int64) (vo.ShopDetails, error) {
	shop, err := sharedcache.GetLogical(ctx, s.cache, shopCacheKey(shopID), shopLockKey(shopID), s.freshFor,
		func(ctx context.Context) (*domain.Shop, error) {
			return s.loadShop(ctx, shopID)
		})
	if err != nil {
		if errors.Is(err, sharedcache.ErrNotFound) {
			return vo.ShopDetails{}, vo.ErrShopNotFound
		}
		return vo.ShopDetails{}, err
	}
	return toShopDetails(*shop), nil
}

// UpdateShop writes the durable row first and invalidates the cached entry
// after, so a racing read can at worst repopulate from the committed state.
func (s *ShopQueryService) UpdateShop(ctx context.Context, shop domain.Shop) error {
	if err := s.repository.UpdateShop(ctx, shop); err != nil {
		return err
	}
	if err := s.cache.Invalidate(ctx, shopCacheKey(shop.ID)); err != nil {
		return fmt.Errorf("service: shop updated but cache invalidation failed: %w", err)
	}
	return nil
}

// WarmShop pre-loads one shop into the cache as a logical-expiry entry.
// Run before directing flash-sale traffic at the shop.
func (s *ShopQueryService) WarmShop(ctx context.Context, shopID int64) error {
	shop, err := s.repository.GetShopByID(ctx, shopID)
	if err != nil {
		return err
	}
	return sharedcache.SetLogical(ctx, s.cache, shopCacheKey(shopID), &shop, s.freshFor)
}

func (s *ShopQueryService) loadShop(ctx context.Context, shopID int64) (*domain.Shop, error) {
	shop, err := s.repository.GetShopByID(ctx, shopID)
	if err != nil {
		if errors.Is(err, vo.ErrShopNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &shop, nil
}

func toShopDetails(shop domain.Shop) vo.ShopDetails {
	return vo.ShopDetails{
		ID:        shop.ID,
		Name:      shop.Name,
		TypeID:    shop.TypeID,
		Address:   shop.Address,
		X:         shop.X,
		Y:         shop.Y,
		UpdatedAt: shop.UpdatedAt,
	}
}

func shopCacheKey(shopID int64) string {
	return "cache:shop:" + strconv.FormatInt(shopID, 10)
}

func shopLockKey(shopID int64) string {
	return lock.Key("shop", strconv.FormatInt(shopID, 10))
}
