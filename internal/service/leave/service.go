package leave

import (
	"context"

	"github.com/clockwise-hr/payroll-backend-go/internal/domain/leave"
)

// LeaveService exposes the read-only leave balance view used by the payslip
// screens.
type LeaveService interface {
	GetBalance(ctx context.Context, employeeID string, year int) (leave.BalanceResponse, error)
}

type leaveService struct {
	balanceRepo leave.BalanceRepository
}

func NewLeaveService(balanceRepo leave.BalanceRepository) LeaveService {
	return &leaveService{balanceRepo: balanceRepo}
}

func (s *leaveService) GetBalance(ctx context.Context, employeeID string, year int) (leave.BalanceResponse, error) {
	b, err := s.balanceRepo.GetByEmployeeAndYear(ctx, employeeID, year)
	if err != nil {
		return leave.BalanceResponse{}, err
	}
	return leave.BalanceResponse{
		EmployeeID:      b.EmployeeID,
		Year:            b.Year,
		CasualAllowed:   b.CasualAllowed,
		CasualTaken:     b.CasualTaken,
		SickAllowed:     b.SickAllowed,
		SickTaken:       b.SickTaken,
		FloatingAllowed: b.FloatingAllowed,
		FloatingTaken:   b.FloatingTaken,
		EarnedAllowed:   b.EarnedAllowed,
		EarnedTaken:     b.EarnedTaken,
	}, nil
}
