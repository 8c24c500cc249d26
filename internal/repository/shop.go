package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/zhou-jk/flashsale-api/internal/domain"
	"github.com/zhou-jk/flashsale-api/internal/domain/vo"
)

type ShopRepository struct {
	db *sqlx.DB
}

func NewShopRepository(db *sqlx.DB) *ShopRepository {
	return &ShopRepository{db: db}
}

type shopRow struct {
	ID        int64        `db:"id"`
	Name      string       `db:"name"`
	TypeID    int64        `db:"type_id"`
	Address   string       `db:"address"`
	X         float64      `db:"x"`
	Y         float64      `db:"y"`
	UpdatedAt sql.NullTime `db:"updated_at"`
}

func (r *ShopRepository) GetShopByID(ctx context.Context, shopID int64) (domain.Shop, error) {
	const query = `
		SELECT id, name, type_id, address, x, y, updated_at
		FROM shops
		WHERE id = $1
	`

	var row shopRow
	if err := r.db.GetContext(ctx, &row, query, shopID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Shop{}, vo.ErrShopNotFound
		}
		return domain.Shop{}, fmt.Errorf("repository: get shop by id failed: %w", err)
	}

	shop := domain.Shop{
		ID:      row.ID,
		Name:    row.Name,
		TypeID:  row.TypeID,
		Address: row.Address,
		X:       row.X,
		Y:       row.Y,
	}
	if row.UpdatedAt.Valid {
		shop.UpdatedAt = row.UpdatedAt.Time
	}
	return shop, nil
}

func (r *ShopRepository) UpdateShop(ctx context.Context, shop domain.Shop) error {
	const query = `
		UPDATE shops
		SET name = $2, type_id = $3, address = $4, x = $5, y = $6, updated_at = now()
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query, shop.ID, shop.Name, shop.TypeID, shop.Address, shop.X, shop.Y)
	if err != nil {
		return fmt.Errorf("repository: update shop failed: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("repository: failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return vo.ErrShopNotFound
	}
	return nil
}
