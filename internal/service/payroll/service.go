package payroll

import (
	"context"

	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/employee"
	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/payroll"
	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/user"
)

type PayrollServiceImpl struct {
	payroll.PayrollRepository
	employee.ProfileRepository
}

func NewPayrollService(payrollRepository payroll.PayrollRepository, profileRepository employee.ProfileRepository) payroll.PayrollService {
	return &PayrollServiceImpl{
		PayrollRepository: payrollRepository,
		ProfileRepository: profileRepository,
	}
}

func (s *PayrollServiceImpl) MyPayroll(ctx context.Context, session user.Session) (payroll.ListResponse, error) {
	records, err := s.PayrollRepository.ListForUser(ctx, session.UserID)
	if err != nil {
		return payroll.ListResponse{}, err
	}
	return payroll.NewListResponse(records), nil
}

func (s *PayrollServiceImpl) AllPayroll(ctx context.Context, session user.Session) (payroll.ListResponse, error) {
	if !session.IsHrOrAdmin() {
		return payroll.ListResponse{}, user.ErrHrOrAdminRequired
	}

	records, err := s.PayrollRepository.ListAll(ctx)
	if err != nil {
		return payroll.ListResponse{}, err
	}
	return payroll.NewListResponse(records), nil
}

// Slip renders one record as downloadable plain text. Employees may only
// render their own slips; hr/admin may render anyone's.
func (s *PayrollServiceImpl) Slip(ctx context.Context, session user.Session, recordID string) (string, error) {
	rec, err := s.PayrollRepository.GetByID(ctx, recordID)
	if err != nil {
		return "", err
	}
	if rec.UserID != session.UserID && !session.IsHrOrAdmin() {
		return "", payroll.ErrRecordNotFound
	}

	employeeName := session.Email
	if profile, err := s.ProfileRepository.GetByUserID(ctx, rec.UserID); err == nil {
		employeeName = profile.FullName()
	}

	return payroll.RenderSlip(rec, employeeName), nil
}
