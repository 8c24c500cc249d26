package services

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/zhou-jk/flashsale-api/internal/domain"
	"github.com/zhou-jk/flashsale-api/internal/domain/vo"
	sharedcache "github.com/zhou-jk/flashsale-api/internal/shared/cache"
)

// VoucherQueryService serves voucher detail reads through the jittered-TTL
// cache. Lookups of ids that do not exist leave a short-lived null marker
// behind, so a flood of requests for a bogus id stops at the cache.
type VoucherQueryService struct {
	vouchers VoucherReader
	cache    *sharedcache.Client
	ttl      time.Duration
}

const defaultVoucherTTL = 30 * time.Minute

func NewVoucherQueryService(vouchers VoucherReader, cacheClient *sharedcache.Client, ttl time.Duration) *VoucherQueryService {
	if ttl <= 0 {
		ttl = defaultVoucherTTL
	}
	return &VoucherQueryService{
		vouchers: vouchers,
		cache:    cacheClient,
		ttl:      ttl,
	}
}

func (s *VoucherQueryService) GetVoucher(ctx context.Context, voucherID int64) (vo.VoucherDetails, error) {
	voucher, err := sharedcache.GetOrLoad(ctx, s.cache, voucherCacheKey(voucherID), s.ttl,
		func(ctx context.Context) (*domain.Voucher, error) {
			value, err := s.vouchers.GetVoucherByID(ctx, voucherID)
			if err != nil {
				if errors.Is(err, vo.ErrVoucherNotFound) {
					return nil, nil
				}
				return nil, err
			}
			return &value, nil
		})
	if err != nil {
		if errors.Is(err, sharedcache.ErrNotFound) {
			return vo.VoucherDetails{}, vo.ErrVoucherNotFound
		}
		return vo.VoucherDetails{}, err
	}

	return vo.VoucherDetails{
		ID:      voucher.ID,
		Title:   voucher.Title,
		Stock:   voucher.Stock,
		BeginAt: voucher.BeginAt,
		EndAt:   voucher.EndAt,
	}, nil
}

func voucherCacheKey(voucherID int64) string {
	return "cache:voucher:" + strconv.FormatInt(voucherID, 10)
}
