package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/zhou-jk/flashsale-api/internal/domain"
	"github.com/zhou-jk/flashsale-api/internal/domain/vo"
)

type VoucherOrderRepository struct {
	db *sqlx.DB
}

func NewVoucherOrderRepository(db *sqlx.DB) *VoucherOrderRepository {
	return &VoucherOrderRepository{db: db}
}

type voucherRow struct {
	ID      int64     `db:"id"`
	Title   string    `db:"title"`
	Stock   int64     `db:"stock"`
	BeginAt time.Time `db:"begin_at"`
	EndAt   time.Time `db:"end_at"`
}

func (r *VoucherOrderRepository) GetVoucherByID(ctx context.Context, voucherID int64) (domain.Voucher, error) {
	const query = `
		SELECT id, title, stock, begin_at, end_at
		FROM vouchers
		WHERE id = $1
	`

	var row voucherRow
	if err := r.db.GetContext(ctx, &row, query, voucherID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Voucher{}, vo.ErrVoucherNotFound
		}
		return domain.Voucher{}, fmt.Errorf("repository: get voucher by id failed: %w", err)
	}

	return domain.Voucher{
		ID:      row.ID,
		Title:   row.Title,
		Stock:   row.Stock,
		BeginAt: row.BeginAt,
		EndAt:   row.EndAt,
	}, nil
}

// CountOrders is the authoritative one-per-user check, run by the
// materializer before every durable write.
func (r *VoucherOrderRepository) CountOrders(ctx context.Context, userID string, voucherID int64) (int64, error) {
	const query = `
		SELECT count(*)
		FROM voucher_orders
		WHERE user_id = $1 AND voucher_id = $2
	`

	var count int64
	if err := r.db.GetContext(ctx, &count, query, userID, voucherID); err != nil {
		return 0, fmt.Errorf("repository: count orders failed: %w", err)
	}
	return count, nil
}

// CreateOrder decrements durable stock and inserts the order row in one
// transaction. The decrement carries the stock > 0 predicate, so a racing
// worker that loses the update affects zero rows and the whole transaction
// aborts with vo.ErrOutOfStock.
func (r *VoucherOrderRepository) CreateOrder(ctx context.Context, order domain.Order) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("repository: failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	const decrementQuery = `
		UPDATE vouchers
		SET stock = stock - 1
		WHERE id = $1 AND stock > 0
	`

	result, err := tx.ExecContext(ctx, decrementQuery, order.VoucherID)
	if err != nil {
		return fmt.Errorf("repository: failed to decrement stock: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("repository: failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return vo.ErrOutOfStock
	}

	const insertQuery = `
		INSERT INTO voucher_orders (id, user_id, voucher_id, created_at)
		VALUES ($1, $2, $3, $4)
	`

	createdAt := order.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	if _, err := tx.ExecContext(ctx, insertQuery, int64(order.ID), order.UserID, order.VoucherID, createdAt); err != nil {
		return fmt.Errorf("repository: failed to insert order: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("repository: failed to commit order: %w", err)
	}

	return nil
}
