package vo

import "errors"

var ErrVoucherNotFound = errors.New("voucher not found")
var ErrSaleNotStarted = errors.New("sale has not started")
var ErrSaleEnded = errors.New("sale has ended")
var ErrOutOfStock = errors.New("out of stock")
var ErrAlreadyOrdered = errors.New("user already ordered this voucher")
