package vo

import (
	"errors"
	"time"
)

var ErrShopNotFound = errors.New("shop not found")

type ShopDetails struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	TypeID    int64     `json:"type_id"`
	Address   string    `json:"address"`
	X         float64   `json:"x"`
	Y         float64   `json:"y"`
	UpdatedAt time.Time `json:"updated_at"`
}
