package domain

import "time"

// Voucher is a time-limited, stock-limited offer. Stock is durable and is the
// authoritative counter; the cached admission counter is seeded from it at
// sale activation.
type Voucher struct {
	ID      int64     `json:"id"`
	Title   string    `json:"title"`
	Stock   int64     `json:"stock"`
	BeginAt time.Time `json:"begin_at"`
	EndAt   time.Time `json:"end_at"`
}

// Order is one user's claim on one voucher unit. At most one order ever
// exists per (user, voucher) pair.
type Order struct {
	ID        uint64
	UserID    string
	VoucherID int64
	CreatedAt time.Time
}
