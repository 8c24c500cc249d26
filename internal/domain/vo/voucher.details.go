package vo

import "time"

type VoucherDetails struct {
	ID      int64     `json:"id"`
	Title   string    `json:"title"`
	Stock   int64     `json:"stock"`
	BeginAt time.Time `json:"begin_at"`
	EndAt   time.Time `json:"end_at"`
}
