package holiday

import "context"

// HolidayRepository reads the public-holiday calendar.
type HolidayRepository interface {
	GetByYear(ctx context.Context, year int) ([]Holiday, error)
}
