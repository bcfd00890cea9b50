package bank

import "errors"

var ErrBankDetailsNotFound = errors.New("bank details not found for employee")
