package employee

import (
	"context"

	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/employee"
	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/user"
)

type EmployeeServiceImpl struct {
	employee.ProfileRepository
}

func NewEmployeeService(repo employee.ProfileRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{ProfileRepository: repo}
}

func (s *EmployeeServiceImpl) List(ctx context.Context, session user.Session, filter employee.ListFilter) ([]employee.ProfileResponse, error) {
	if !session.IsHrOrAdmin() {
		return nil, user.ErrHrOrAdminRequired
	}

	profiles, err := s.ProfileRepository.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.ProfileResponse, 0, len(profiles))
	for _, p := range profiles {
		responses = append(responses, employee.NewProfileResponse(p))
	}
	return responses, nil
}

func (s *EmployeeServiceImpl) Get(ctx context.Context, session user.Session, profileID string) (employee.ProfileResponse, error) {
	if !session.IsHrOrAdmin() {
		return employee.ProfileResponse{}, user.ErrHrOrAdminRequired
	}

	profile, err := s.ProfileRepository.GetByID(ctx, profileID)
	if err != nil {
		return employee.ProfileResponse{}, err
	}
	return employee.NewProfileResponse(profile), nil
}

func (s *EmployeeServiceImpl) Departments(ctx context.Context, session user.Session) ([]string, error) {
	if !session.IsHrOrAdmin() {
		return nil, user.ErrHrOrAdminRequired
	}
	return s.ProfileRepository.Departments(ctx)
}

func (s *EmployeeServiceImpl) UpdateJobInfo(ctx context.Context, session user.Session, profileID string, req employee.UpdateJobInfoRequest) (employee.ProfileResponse, error) {
	if !session.IsHrOrAdmin() {
		return employee.ProfileResponse{}, user.ErrHrOrAdminRequired
	}
	if err := req.Validate(); err != nil {
		return employee.ProfileResponse{}, err
	}

	profile, err := s.ProfileRepository.UpdateJobInfo(ctx, profileID, req.Department, req.Designation, req.JoiningDate())
	if err != nil {
		return employee.ProfileResponse{}, err
	}
	return employee.NewProfileResponse(profile), nil
}

type ProfileServiceImpl struct {
	employee.ProfileRepository
}

func NewProfileService(repo employee.ProfileRepository) employee.ProfileService {
	return &ProfileServiceImpl{ProfileRepository: repo}
}

func (s *ProfileServiceImpl) GetMine(ctx context.Context, session user.Session) (employee.ProfileResponse, error) {
	profile, err := s.ProfileRepository.GetByUserID(ctx, session.UserID)
	if err != nil {
		return employee.ProfileResponse{}, err
	}
	return employee.NewProfileResponse(profile), nil
}

// UpdateContactInfo writes the self-service fields only. Job fields stay
// HR-managed and go through the employee service.
func (s *ProfileServiceImpl) UpdateContactInfo(ctx context.Context, session user.Session, req employee.UpdateContactInfoRequest) (employee.ProfileResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.ProfileResponse{}, err
	}

	profile, err := s.ProfileRepository.GetByUserID(ctx, session.UserID)
	if err != nil {
		return employee.ProfileResponse{}, err
	}

	updated, err := s.ProfileRepository.UpdateContactInfo(ctx, profile.ID, req.Phone, req.Address)
	if err != nil {
		return employee.ProfileResponse{}, err
	}
	return employee.NewProfileResponse(updated), nil
}
