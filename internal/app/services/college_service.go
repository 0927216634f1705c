package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/enrolldesk/enrolldesk/internal/app/models"
	"github.com/enrolldesk/enrolldesk/internal/app/models/dto"
	"github.com/enrolldesk/enrolldesk/internal/app/repositories"
	"github.com/enrolldesk/enrolldesk/internal/pkg/apperrors"
)

// CollegeService defines the college reference list operations
type CollegeService interface {
	Create(ctx context.Context, req *dto.CreateCollegeRequest) (*dto.CollegeResponse, error)
	List(ctx context.Context) (*dto.CollegeListResponse, error)
}

type collegeService struct {
	collegeRepo repositories.ICollegeRepository
}

// NewCollegeService creates a new CollegeService
func NewCollegeService(collegeRepo repositories.ICollegeRepository) CollegeService {
	return &collegeService{collegeRepo: collegeRepo}
}

// Create adds a college with at least one offered course
func (s *collegeService) Create(ctx context.Context, req *dto.CreateCollegeRequest) (*dto.CollegeResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: college name cannot be empty", apperrors.ErrValidationFailed)
	}

	courses := make([]string, 0, len(req.Courses))
	for _, course := range req.Courses {
		course = strings.TrimSpace(course)
		if course != "" {
			courses = append(courses, course)
		}
	}
	if len(courses) == 0 {
		return nil, fmt.Errorf("%w: at least one course is required", apperrors.ErrValidationFailed)
	}

	college := &models.College{
		Name:    name,
		Courses: courses,
	}

	if err := s.collegeRepo.Create(ctx, college); err != nil {
		if errors.Is(err, apperrors.ErrCollegeAlreadyExists) {
			return nil, apperrors.ErrCollegeAlreadyExists
		}
		return nil, fmt.Errorf("error creating college: %w", err)
	}

	resp := dto.FromCollege(*college)
	return &resp, nil
}

// List retrieves all registered colleges
func (s *collegeService) List(ctx context.Context) (*dto.CollegeListResponse, error) {
	colleges, err := s.collegeRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing colleges: %w", err)
	}

	responses := make([]dto.CollegeResponse, 0, len(colleges))
	for _, college := range colleges {
		responses = append(responses, dto.FromCollege(college))
	}

	return &dto.CollegeListResponse{Colleges: responses}, nil
}
