package employee

import "errors"

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrInvalidOnboardDate = errors.New("cannot parse onboard date")
)
