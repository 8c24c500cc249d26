package vo

// SeckillOrder is returned to the buyer as soon as admission succeeds; the
// durable order row is created asynchronously by the materializer.
type SeckillOrder struct {
	OrderID   uint64 `json:"order_id,string"`
	VoucherID int64  `json:"voucher_id"`
	UserID    string `json:"user_id"`
}
