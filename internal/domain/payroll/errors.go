package payroll

import "errors"

var (
	ErrNoWorkingDays = errors.New("reference month has no working days")
)
