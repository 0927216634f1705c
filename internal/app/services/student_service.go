package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/enrolldesk/enrolldesk/internal/app/models"
	"github.com/enrolldesk/enrolldesk/internal/app/models/dto"
	"github.com/enrolldesk/enrolldesk/internal/app/repositories"
	"github.com/enrolldesk/enrolldesk/internal/pkg/apperrors"
	"github.com/enrolldesk/enrolldesk/internal/pkg/helpers"
	"github.com/enrolldesk/enrolldesk/internal/pkg/validation"
)

// dashboardRecentCount is how many latest records the summary carries.
const dashboardRecentCount = 5

// newStudentResponse pairs a record with its listing display strings.
func newStudentResponse(s models.Student) dto.StudentResponse {
	return dto.StudentResponse{
		Student:           s,
		CreatedAtDisplay:  helpers.FormatDisplayDate(s.CreatedAt),
		AmountPaidDisplay: helpers.FormatINR(s.AmountPaid),
	}
}

// FieldErrors maps field keys to operator-facing validation messages.
// It travels as an error so services keep single-error signatures.
type FieldErrors map[string]string

// Error implements the error interface
func (f FieldErrors) Error() string {
	return "validation failed"
}

// flowStep tracks where an actor is in the two-step registration workflow.
type flowStep int

const (
	stepVerify flowStep = iota
	stepDetails
	stepSubmitting
)

// flowState is the per-actor workflow position. A submission is only
// accepted from stepDetails, reached by verifying an available ID.
type flowState struct {
	step       flowStep
	verifiedID string
}

// StudentService defines the student record operations exposed to controllers
type StudentService interface {
	Verify(ctx context.Context, actorID int64, studentID string) (*dto.VerifyStudentResponse, error)
	Submit(ctx context.Context, actorID int64, req *dto.SubmitStudentRequest) (*dto.SubmitStudentResponse, error)
	List(ctx context.Context, actorID int64, filter dto.StudentFilter, page, size int) (*dto.StudentListResponse, error)
	Get(ctx context.Context, actorID int64, studentID string) (*dto.StudentResponse, error)
	Update(ctx context.Context, actorID int64, studentID string, req *dto.UpdateStudentRequest) (*dto.StudentResponse, error)
	Summary(ctx context.Context, actorID int64) (*dto.DashboardResponse, error)
}

type studentService struct {
	studentRepo repositories.IStudentRepository
	collegeRepo repositories.ICollegeRepository
	userRepo    repositories.IUserRepository
	logger      zerolog.Logger

	mu    sync.Mutex
	flows map[int64]*flowState
}

// NewStudentService creates a new StudentService
func NewStudentService(
	studentRepo repositories.IStudentRepository,
	collegeRepo repositories.ICollegeRepository,
	userRepo repositories.IUserRepository,
	logger zerolog.Logger,
) StudentService {
	return &studentService{
		studentRepo: studentRepo,
		collegeRepo: collegeRepo,
		userRepo:    userRepo,
		logger:      logger,
		flows:       make(map[int64]*flowState),
	}
}

// Verify checks whether a student ID is available for registration. On
// success the actor's workflow advances to the details step; any failure
// leaves it at the verify step.
func (s *studentService) Verify(ctx context.Context, actorID int64, studentID string) (*dto.VerifyStudentResponse, error) {
	studentID = strings.TrimSpace(studentID)

	if studentID == "" || !validation.CompiledPatterns.Digits.MatchString(studentID) {
		s.resetFlow(actorID)
		return nil, apperrors.ErrInvalidStudentID
	}

	exists, existingName, err := s.studentRepo.LookupName(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error verifying student ID: %w", err)
	}

	if exists {
		s.resetFlow(actorID)
		return nil, apperrors.NewCustomError(
			apperrors.ErrStudentAlreadyExists,
			fmt.Sprintf("Student ID %s is already enrolled under %s", studentID, existingName),
		).WithDetails(map[string]interface{}{
			models.FieldCandidateName: existingName,
		})
	}

	s.mu.Lock()
	s.flows[actorID] = &flowState{step: stepDetails, verifiedID: studentID}
	s.mu.Unlock()

	return &dto.VerifyStudentResponse{StudentID: studentID, Available: true}, nil
}

// Submit completes the registration workflow for a verified student ID.
// Calls made outside the details step, or for an ID other than the verified
// one, change nothing and report that verification is required.
func (s *studentService) Submit(ctx context.Context, actorID int64, req *dto.SubmitStudentRequest) (*dto.SubmitStudentResponse, error) {
	if !s.enterSubmit(actorID, strings.TrimSpace(req.StudentID)) {
		return nil, apperrors.ErrVerificationRequired
	}

	student := req.ToModel()
	student.StudentID = strings.TrimSpace(student.StudentID)

	resp, err := s.persist(ctx, actorID, student)
	if err != nil {
		// Back to the details step so the operator can correct and retry
		s.mu.Lock()
		if st, ok := s.flows[actorID]; ok && st.step == stepSubmitting {
			st.step = stepDetails
		}
		s.mu.Unlock()
		return nil, err
	}

	// Workflow complete; the next registration starts at verify
	s.resetFlow(actorID)

	return &dto.SubmitStudentResponse{
		Student: *resp,
		Message: "Registration completed!",
	}, nil
}

// persist validates, shapes, stamps, and writes a record.
func (s *studentService) persist(ctx context.Context, actorID int64, student models.Student) (*dto.StudentResponse, error) {
	if errs := validation.ValidateStudent(&student); len(errs) > 0 {
		return nil, FieldErrors(errs)
	}

	if err := s.checkCourseOffered(ctx, &student); err != nil {
		return nil, err
	}

	// Enquiry payloads never carry Enroll-only values, whatever was entered
	student = student.Shaped()

	user, err := s.userRepo.GetByID(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("error resolving actor profile: %w", err)
	}

	student.Reference = models.Reference{Name: user.FullName}
	if user.UserType == models.UserTypeConsultant {
		student.Reference.ConsultancyName = user.ConsultancyName
	}
	student.CreatedBy = actorID
	student.CreatedAt = time.Now()

	if err := s.studentRepo.Upsert(ctx, &student); err != nil {
		return nil, fmt.Errorf("error saving student: %w", err)
	}

	s.logger.Info().
		Str("studentID", student.StudentID).
		Str("status", string(student.ApplicationStatus)).
		Int64("createdBy", actorID).
		Msg("Student record saved")

	resp := newStudentResponse(student)
	return &resp, nil
}

// checkCourseOffered rejects a course the selected college is known not to
// offer. Colleges absent from the reference list are not constrained.
func (s *studentService) checkCourseOffered(ctx context.Context, student *models.Student) error {
	if student.College == "" || student.Course == "" {
		return nil
	}

	college, err := s.collegeRepo.GetByName(ctx, student.College)
	if err != nil {
		if errors.Is(err, apperrors.ErrCollegeNotFound) {
			return nil
		}
		return fmt.Errorf("error checking college: %w", err)
	}

	if !college.Offers(student.Course) {
		return FieldErrors{
			models.FieldCourse: "Selected college does not offer this course.",
		}
	}

	return nil
}

// List returns the actor's records, filtered and paginated
func (s *studentService) List(ctx context.Context, actorID int64, filter dto.StudentFilter, page, size int) (*dto.StudentListResponse, error) {
	students, err := s.studentRepo.ListByCreator(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}

	filtered := FilterStudents(students, filter)

	start, end := helpers.CalculateSliceIndices(page, size, len(filtered))
	pageItems := filtered[start:end]

	responses := make([]dto.StudentResponse, 0, len(pageItems))
	for _, student := range pageItems {
		responses = append(responses, newStudentResponse(student))
	}

	return &dto.StudentListResponse{
		Students:       responses,
		PaginationInfo: helpers.NewPaginationInfo(int64(len(filtered)), page, size),
	}, nil
}

// FilterStudents applies the composable listing filters: candidate name
// substring, exact status, and college substring, all combined.
func FilterStudents(students []models.Student, filter dto.StudentFilter) []models.Student {
	search := strings.ToLower(strings.TrimSpace(filter.Search))
	college := strings.ToLower(strings.TrimSpace(filter.College))
	status := strings.TrimSpace(filter.Status)

	if search == "" && college == "" && status == "" {
		return students
	}

	filtered := make([]models.Student, 0, len(students))
	for _, student := range students {
		if search != "" && !strings.Contains(strings.ToLower(student.CandidateName), search) {
			continue
		}
		if status != "" && string(student.ApplicationStatus) != status {
			continue
		}
		if college != "" && !strings.Contains(strings.ToLower(student.College), college) {
			continue
		}
		filtered = append(filtered, student)
	}

	return filtered
}

// Get retrieves one of the actor's records by student ID
func (s *studentService) Get(ctx context.Context, actorID int64, studentID string) (*dto.StudentResponse, error) {
	student, err := s.getOwned(ctx, actorID, studentID)
	if err != nil {
		return nil, err
	}

	resp := newStudentResponse(*student)
	return &resp, nil
}

// Update applies a partial edit to an existing record. The merged record is
// re-validated under its (possibly changed) status, and Enquiry records get
// their Enroll-only fields cleared in storage no matter what the edit sent.
func (s *studentService) Update(ctx context.Context, actorID int64, studentID string, req *dto.UpdateStudentRequest) (*dto.StudentResponse, error) {
	existing, err := s.getOwned(ctx, actorID, studentID)
	if err != nil {
		return nil, err
	}

	merged := *existing
	req.ApplyTo(&merged)
	merged.StudentID = existing.StudentID

	if errs := validation.ValidateStudent(&merged); len(errs) > 0 {
		return nil, FieldErrors(errs)
	}

	if err := s.checkCourseOffered(ctx, &merged); err != nil {
		return nil, err
	}

	merged = merged.Shaped()

	// Every editable column is written so the force-clear always lands
	fields := map[string]interface{}{
		"application_status": merged.ApplicationStatus,
		"candidate_name":     merged.CandidateName,
		"candidate_number":   merged.CandidateNumber,
		"dob":                merged.DOB,
		"college":            merged.College,
		"course":             merged.Course,
		"father_name":        merged.FatherName,
		"gender":             merged.Gender,
		"parent_number":      merged.ParentNumber,
		"national_id_number": merged.NationalIDNumber,
		"amount_paid":        merged.AmountPaid,
		"transaction_id":     merged.TransactionID,
		"place":              merged.Place,
	}

	if err := s.studentRepo.UpdateFields(ctx, studentID, fields); err != nil {
		return nil, fmt.Errorf("error updating student: %w", err)
	}

	s.logger.Info().
		Str("studentID", studentID).
		Str("status", string(merged.ApplicationStatus)).
		Msg("Student record updated")

	resp := newStudentResponse(merged)
	return &resp, nil
}

// Summary builds the dashboard counts plus the most recent records
func (s *studentService) Summary(ctx context.Context, actorID int64) (*dto.DashboardResponse, error) {
	students, err := s.studentRepo.ListByCreator(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("error loading dashboard data: %w", err)
	}

	summary := &dto.DashboardResponse{
		TotalStudents: len(students),
		Recent:        []dto.StudentResponse{},
	}

	for _, student := range students {
		switch student.ApplicationStatus {
		case models.StatusEnroll:
			summary.Enrolled++
		case models.StatusEnquiry:
			summary.Enquiries++
		}
	}

	for i, student := range students {
		if i >= dashboardRecentCount {
			break
		}
		summary.Recent = append(summary.Recent, newStudentResponse(student))
	}

	return summary, nil
}

// getOwned fetches a record and checks it belongs to the actor.
func (s *studentService) getOwned(ctx context.Context, actorID int64, studentID string) (*models.Student, error) {
	studentID = strings.TrimSpace(studentID)
	if studentID == "" {
		return nil, apperrors.ErrInvalidStudentID
	}

	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	// Records are scoped to the account that registered them
	if student.CreatedBy != actorID {
		return nil, apperrors.ErrStudentNotFound
	}

	return student, nil
}

// enterSubmit moves the actor's workflow from details to submitting when the
// submitted ID matches the verified one. Returns false otherwise.
func (s *studentService) enterSubmit(actorID int64, studentID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.flows[actorID]
	if !ok || state.step != stepDetails || state.verifiedID != studentID {
		return false
	}

	state.step = stepSubmitting
	return true
}

// resetFlow puts the actor back at the verify step.
func (s *studentService) resetFlow(actorID int64) {
	s.mu.Lock()
	delete(s.flows, actorID)
	s.mu.Unlock()
}
