package sale

import "errors"

var (
	ErrSaleNotFound         = errors.New("sale not found")
	ErrSaleAlreadyCompleted = errors.New("sale is already completed; no further payments can be applied")
)
