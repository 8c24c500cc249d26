package services

import (
	"context"
	"fmt"
	"time"

	"github.com/zhou-jk/flashsale-api/internal/domain"
	"github.com/zhou-jk/flashsale-api/internal/domain/vo"
	shareduid "github.com/zhou-jk/flashsale-api/internal/shared/uid"
)

// orderIDScope is the sequence scope for flash-sale order ids.
const orderIDScope = "order"

type VoucherReader interface {
	GetVoucherByID(ctx context.Context, voucherID int64) (domain.Voucher, error)
}

type SeckillAdmitter interface {
	Admit(ctx context.Context, voucherID int64, userID string, orderID uint64) error
	SeedStock(ctx context.Context, voucherID int64, stock int64) error
}

// SeckillService is the synchronous half of flash-sale ordering: it validates
// the sale window, assigns an order id and runs the atomic admission check.
// An accepted order is durable in the intake stream, not yet in the database;
// the materializer writes it behind the returned response.
type SeckillService struct {
	vouchers VoucherReader
	admitter SeckillAdmitter
	orderIDs shareduid.SequenceGenerator
	now      func() time.Time
}

func NewSeckillService(
	vouchers VoucherReader,
	admitter SeckillAdmitter,
	orderIDs shareduid.SequenceGenerator,
) *SeckillService {
	return &SeckillService{
		vouchers: vouchers,
		admitter: admitter,
		orderIDs: orderIDs,
		now:      time.Now,
	}
}

// PlaceOrder admits one buyer for one voucher. Sale-window and contention
// rejections come back as vo sentinel errors; anything else is an infra
// failure.
func (s *SeckillService) PlaceOrder(ctx context.Context, userID string, voucherID int64) (vo.SeckillOrder, error) {
	voucher, err := s.vouchers.GetVoucherByID(ctx, voucherID)
	if err != nil {
		return vo.SeckillOrder{}, err
	}

	now := s.now()
	if now.Before(voucher.BeginAt) {
		return vo.SeckillOrder{}, vo.ErrSaleNotStarted
	}
	if now.After(voucher.EndAt) {
		return vo.SeckillOrder{}, vo.ErrSaleEnded
	}

	orderID, err := s.orderIDs.NextID(ctx, orderIDScope)
	if err != nil {
		return vo.SeckillOrder{}, fmt.Errorf("service: failed to assign order id: %w", err)
	}

	if err := s.admitter.Admit(ctx, voucherID, userID, orderID); err != nil {
		return vo.SeckillOrder{}, err
	}

	return vo.SeckillOrder{
		OrderID:   orderID,
		VoucherID: voucherID,
		UserID:    userID,
	}, nil
}

// ActivateSale seeds the cached stock counter from durable stock and resets
// the admitted set. Must run before the sale window opens.
func (s *SeckillService) ActivateSale(ctx context.Context, voucherID int64) error {
	voucher, err := s.vouchers.GetVoucherByID(ctx, voucherID)
	if err != nil {
		return err
	}
	return s.admitter.SeedStock(ctx, voucherID, voucher.Stock)
}
