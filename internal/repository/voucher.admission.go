package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/zhou-jk/flashsale-api/internal/domain/vo"
)

// admissionScript is the fast-path admission gate. Stock check, one-per-user
// check, stock decrement, admitted-set insert and intake-record append all run
// as one store-side operation, so no interleaving between concurrent buyers is
// possible. It operates on the cached stock counter seeded by SeedStock, not
// the durable counter: the materializer's recheck is the authority.
var admissionScript = redis.NewScript(`
local stock = tonumber(redis.call('get', KEYS[1]) or '0')
if stock <= 0 then
	return 1
end
if redis.call('sismember', KEYS[2], ARGV[1]) == 1 then
	return 2
end
redis.call('incrby', KEYS[1], -1)
redis.call('sadd', KEYS[2], ARGV[1])
redis.call('xadd', KEYS[3], '*', 'orderId', ARGV[2], 'userId', ARGV[1], 'voucherId', ARGV[3])
return 0
`)

const (
	admitOK             = 0
	admitOutOfStock     = 1
	admitAlreadyOrdered = 2
)

// SeckillAdmissionRepository runs the atomic admission check against Redis
// and seeds the cached stock counter at sale activation.
type SeckillAdmissionRepository struct {
	client *redis.Client
	stream string
}

func NewSeckillAdmissionRepository(client *redis.Client, stream string) (*SeckillAdmissionRepository, error) {
	if client == nil {
		return nil, errors.New("repository: redis client is required")
	}
	if stream == "" {
		return nil, errors.New("repository: intake stream name is required")
	}
	return &SeckillAdmissionRepository{client: client, stream: stream}, nil
}

// Admit validates stock and one-per-user eligibility and, when eligible,
// appends the intake record in the same atomic operation. Returns
// vo.ErrOutOfStock or vo.ErrAlreadyOrdered on rejection.
func (r *SeckillAdmissionRepository) Admit(ctx context.Context, voucherID int64, userID string, orderID uint64) error {
	keys := []string{stockKey(voucherID), admittedKey(voucherID), r.stream}
	args := []interface{}{userID, strconv.FormatUint(orderID, 10), strconv.FormatInt(voucherID, 10)}

	result, err := admissionScript.Run(ctx, r.client, keys, args...).Int64()
	if err != nil {
		return fmt.Errorf("repository: admission script failed for voucher %d: %w", voucherID, err)
	}

	switch result {
	case admitOK:
		return nil
	case admitOutOfStock:
		return vo.ErrOutOfStock
	case admitAlreadyOrdered:
		return vo.ErrAlreadyOrdered
	default:
		return fmt.Errorf("repository: unexpected admission result %d for voucher %d", result, voucherID)
	}
}

// SeedStock initializes the cached stock counter and clears the admitted set.
// Must run before the sale opens; admission correctness depends on the cached
// counter starting equal to durable stock.
func (r *SeckillAdmissionRepository) SeedStock(ctx context.Context, voucherID int64, stock int64) error {
	pipe := r.client.Pipeline()
	pipe.Set(ctx, stockKey(voucherID), stock, 0)
	pipe.Del(ctx, admittedKey(voucherID))
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("repository: failed to seed stock for voucher %d: %w", voucherID, err)
	}
	return nil
}

func stockKey(voucherID int64) string {
	return fmt.Sprintf("seckill:stock:%d", voucherID)
}

func admittedKey(voucherID int64) string {
	return fmt.Sprintf("seckill:order:%d", voucherID)
}
