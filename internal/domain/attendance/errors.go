package attendance

import "errors"

var ErrSummaryNotFound = errors.New("period summary not found")
