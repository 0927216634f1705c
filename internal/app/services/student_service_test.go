package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/enrolldesk/enrolldesk/internal/app/models"
	"github.com/enrolldesk/enrolldesk/internal/app/models/dto"
	"github.com/enrolldesk/enrolldesk/internal/pkg/apperrors"
)

// fakeStudentRepo is an in-memory IStudentRepository.
type fakeStudentRepo struct {
	students    map[string]models.Student
	lookupCalls int
	upsertCalls int
}

func newFakeStudentRepo() *fakeStudentRepo {
	return &fakeStudentRepo{students: make(map[string]models.Student)}
}

func (r *fakeStudentRepo) GetByID(ctx context.Context, studentID string) (*models.Student, error) {
	s, ok := r.students[studentID]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return &s, nil
}

func (r *fakeStudentRepo) LookupName(ctx context.Context, studentID string) (bool, string, error) {
	r.lookupCalls++
	s, ok := r.students[studentID]
	if !ok {
		return false, "", nil
	}
	return true, s.CandidateName, nil
}

func (r *fakeStudentRepo) Upsert(ctx context.Context, student *models.Student) error {
	r.upsertCalls++
	r.students[student.StudentID] = *student
	return nil
}

func (r *fakeStudentRepo) UpdateFields(ctx context.Context, studentID string, fields map[string]interface{}) error {
	s, ok := r.students[studentID]
	if !ok {
		return apperrors.ErrStudentNotFound
	}
	for col, val := range fields {
		switch col {
		case "application_status":
			s.ApplicationStatus = val.(models.ApplicationStatus)
		case "candidate_name":
			s.CandidateName = val.(string)
		case "candidate_number":
			s.CandidateNumber = val.(string)
		case "dob":
			s.DOB = val.(string)
		case "college":
			s.College = val.(string)
		case "course":
			s.Course = val.(string)
		case "father_name":
			s.FatherName = val.(string)
		case "gender":
			s.Gender = val.(string)
		case "parent_number":
			s.ParentNumber = val.(string)
		case "national_id_number":
			s.NationalIDNumber = val.(string)
		case "amount_paid":
			s.AmountPaid = val.(float64)
		case "transaction_id":
			s.TransactionID = val.(string)
		case "place":
			s.Place = val.(string)
		}
	}
	r.students[studentID] = s
	return nil
}

func (r *fakeStudentRepo) ListByCreator(ctx context.Context, createdBy int64) ([]models.Student, error) {
	var out []models.Student
	for _, s := range r.students {
		if s.CreatedBy == createdBy {
			out = append(out, s)
		}
	}
	return out, nil
}

// fakeCollegeRepo is an in-memory ICollegeRepository.
type fakeCollegeRepo struct {
	colleges map[string]models.College
}

func newFakeCollegeRepo(colleges ...models.College) *fakeCollegeRepo {
	r := &fakeCollegeRepo{colleges: make(map[string]models.College)}
	for _, c := range colleges {
		r.colleges[c.Name] = c
	}
	return r
}

func (r *fakeCollegeRepo) Create(ctx context.Context, college *models.College) error {
	if _, ok := r.colleges[college.Name]; ok {
		return apperrors.ErrCollegeAlreadyExists
	}
	r.colleges[college.Name] = *college
	return nil
}

func (r *fakeCollegeRepo) GetAll(ctx context.Context) ([]models.College, error) {
	out := make([]models.College, 0, len(r.colleges))
	for _, c := range r.colleges {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeCollegeRepo) GetByName(ctx context.Context, name string) (*models.College, error) {
	c, ok := r.colleges[name]
	if !ok {
		return nil, apperrors.ErrCollegeNotFound
	}
	return &c, nil
}

// fakeUserRepo is an in-memory IUserRepository.
type fakeUserRepo struct {
	users  map[int64]models.User
	nextID int64
}

func newFakeUserRepo(users ...models.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[int64]models.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	r.nextID++
	user.ID = r.nextID + 100
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return &u, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *fakeUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	_, err := r.GetByEmail(ctx, email)
	return err == nil, nil
}

func (r *fakeUserRepo) UpdateLastLogin(ctx context.Context, userID int64) error { return nil }

func (r *fakeUserRepo) UpdatePassword(ctx context.Context, userID int64, hashedPassword string) error {
	u, ok := r.users[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	u.Password = hashedPassword
	r.users[userID] = u
	return nil
}

const (
	consultantID int64 = 1
	freelanceID  int64 = 2
)

type serviceFixture struct {
	svc         StudentService
	studentRepo *fakeStudentRepo
	collegeRepo *fakeCollegeRepo
}

func newServiceFixture() *serviceFixture {
	studentRepo := newFakeStudentRepo()
	collegeRepo := newFakeCollegeRepo(models.College{
		ID:      "c1",
		Name:    "ABC College",
		Courses: []string{"BCA", "BBA"},
	})
	userRepo := newFakeUserRepo(
		models.User{
			ID:              consultantID,
			FullName:        "Priya Raman",
			UserType:        models.UserTypeConsultant,
			ConsultancyName: "Bright Path",
		},
		models.User{
			ID:       freelanceID,
			FullName: "Kumar S",
			UserType: models.UserTypeFreelance,
		},
	)
	return &serviceFixture{
		svc:         NewStudentService(studentRepo, collegeRepo, userRepo, zerolog.Nop()),
		studentRepo: studentRepo,
		collegeRepo: collegeRepo,
	}
}

func enquiryRequest(id string) *dto.SubmitStudentRequest {
	return &dto.SubmitStudentRequest{
		StudentID:         id,
		ApplicationStatus: string(models.StatusEnquiry),
		CandidateName:     "Asha",
		CandidateNumber:   "9876543210",
		DOB:               "2005-01-01",
		College:           "ABC College",
		Course:            "BCA",
		FatherName:        "Ram",
	}
}

func enrollRequest(id string) *dto.SubmitStudentRequest {
	req := enquiryRequest(id)
	req.ApplicationStatus = string(models.StatusEnroll)
	req.Gender = "Female"
	req.ParentNumber = "9123456780"
	req.NationalIDNumber = "AAAA1234"
	req.AmountPaid = 25000
	req.TransactionID = "TXN42"
	req.Place = "Erode"
	return req
}

func TestVerifyThenSubmit(t *testing.T) {
	f := newServiceFixture()
	ctx := context.Background()

	verify, err := f.svc.Verify(ctx, consultantID, "2024001")
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if !verify.Available || verify.StudentID != "2024001" {
		t.Fatalf("unexpected verify response: %+v", verify)
	}

	resp, err := f.svc.Submit(ctx, consultantID, enrollRequest("2024001"))
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if resp.Message != "Registration completed!" {
		t.Errorf("unexpected message: %q", resp.Message)
	}

	saved := f.studentRepo.students["2024001"]
	if saved.Reference.Name != "Priya Raman" {
		t.Errorf("expected reference name stamped, got %q", saved.Reference.Name)
	}
	if saved.Reference.ConsultancyName != "Bright Path" {
		t.Errorf("consultant submissions carry the consultancy, got %q", saved.Reference.ConsultancyName)
	}
	if saved.CreatedBy != consultantID {
		t.Errorf("expected CreatedBy %d, got %d", consultantID, saved.CreatedBy)
	}
}

func TestSubmitFreelanceOmitsConsultancy(t *testing.T) {
	f := newServiceFixture()
	ctx := context.Background()

	if _, err := f.svc.Verify(ctx, freelanceID, "2024002"); err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if _, err := f.svc.Submit(ctx, freelanceID, enrollRequest("2024002")); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	saved := f.studentRepo.students["2024002"]
	if saved.Reference.Name != "Kumar S" {
		t.Errorf("expected reference name stamped, got %q", saved.Reference.Name)
	}
	if saved.Reference.ConsultancyName != "" {
		t.Errorf("freelance submissions carry no consultancy, got %q", saved.Reference.ConsultancyName)
	}
}

func TestVerifyRejectsMalformedID(t *testing.T) {
	f := newServiceFixture()
	ctx := context.Background()

	for _, id := range []string{"", "  ", "20a4", "id-1"} {
		if _, err := f.svc.Verify(ctx, consultantID, id); !errors.Is(err, apperrors.ErrInvalidStudentID) {
			t.Errorf("Verify(%q): expected ErrInvalidStudentID, got %v", id, err)
		}
	}
	if f.studentRepo.lookupCalls != 0 {
		t.Errorf("malformed IDs should never reach storage, got %d lookups", f.studentRepo.lookupCalls)
	}
}

func TestVerifyDuplicateReportsExistingName(t *testing.T) {
	f := newServiceFixture()
	ctx := context.Background()

	f.studentRepo.students["2024001"] = models.Student{
		StudentID:     "2024001",
		CandidateName: "Asha",
		CreatedBy:     consultantID,
	}

	_, err := f.svc.Verify(ctx, consultantID, "2024001")
	if !errors.Is(err, apperrors.ErrStudentAlreadyExists) {
		t.Fatalf("expected ErrStudentAlreadyExists, got %v", err)
	}

	var custom *apperrors.CustomError
	if !errors.As(err, &custom) {
		t.Fatalf("expected a CustomError, got %T", err)
	}
	if custom.Details[models.FieldCandidateName] != "Asha" {
		t.Errorf("expected existing candidate name in details, got %v", custom.Details)
	}

	// A failed verify resets the flow; the submit must be refused.
	if _, err := f.svc.Submit(ctx, consultantID, enrollRequest("2024001")); !errors.Is(err, apperrors.ErrVerificationRequired) {
		t.Errorf("expected ErrVerificationRequired after failed verify, got %v", err)
	}
}

func TestSubmitRequiresVerification(t *testing.T) {
	f := newServiceFixture()
	ctx := context.Background()

	// Never verified at all.
	if _, err := f.svc.Submit(ctx, consultantID, enrollRequest("2024001")); !errors.Is(err, apperrors.ErrVerificationRequired) {
		t.Errorf("expected ErrVerificationRequired, got %v", err)
	}

	// Verified a different ID.
	if _, err := f.svc.Verify(ctx, consultantID, "2024009"); err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if _, err := f.svc.Submit(ctx, consultantID, enrollRequest("2024001")); !errors.Is(err, apperrors.ErrVerificationRequired) {
		t.Errorf("expected ErrVerificationRequired for unverified ID, got %v", err)
	}

	// Another actor's verification does not transfer.
	if _, err := f.svc.Submit(ctx, freelanceID, enrollRequest("2024009")); !errors.Is(err, apperrors.ErrVerificationRequired) {
		t.Errorf("expected ErrVerificationRequired for other actor, got %v", err)
	}

	if f.studentRepo.upsertCalls != 0 {
		t.Errorf("refused submissions must not write, got %d upserts", f.studentRepo.upsertCalls)
	}
}

func TestSubmitValidationFailureKeepsFlowOpen(t *testing.T) {
	f := newServiceFixture()
	ctx := context.Background()

	if _, err := f.svc.Verify(ctx, consultantID, "2024001"); err != nil {
		t.Fatalf("Verify failed: %v", err)
	}

	bad := enrollRequest("2024001")
	bad.Gender = ""
	bad.Place = ""

	_, err := f.svc.Submit(ctx, consultantID, bad)
	var fieldErrs FieldErrors
	if !errors.As(err, &fieldErrs) {
		t.Fatalf("expected FieldErrors, got %v", err)
	}
	if _, ok := fieldErrs[models.FieldGender]; !ok {
		t.Errorf("expected gender error, got %v", fieldErrs)
	}

	// The operator corrects the form and retries without re-verifying.
	if _, err := f.svc.Submit(ctx, consultantID, enrollRequest("2024001")); err != nil {
		t.Fatalf("retry after validation failure should succeed, got %v", err)
	}
}

func TestSubmitEnquiryForceClearsEnrollOnly(t *testing.T) {
	f := newServiceFixture()
	ctx := context.Background()

	if _, err := f.svc.Verify(ctx, consultantID, "2024001"); err != nil {
		t.Fatalf("Verify failed: %v", err)
	}

	req := enquiryRequest("2024001")
	req.Gender = "Female"
	req.AmountPaid = 5000
	req.TransactionID = "TXN99"

	resp, err := f.svc.Submit(ctx, consultantID, req)
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	saved := f.studentRepo.students["2024001"]
	if saved.Gender != "" || saved.AmountPaid != 0 || saved.TransactionID != "" {
		t.Errorf("enquiry records must not persist enroll-only values: %+v", saved)
	}
	if resp.Student.Gender != "" || resp.Student.AmountPaid != 0 {
		t.Errorf("response must reflect the cleared record: %+v", resp.Student)
	}
}

func TestSubmitChecksCourseOffered(t *testing.T) {
	f := newServiceFixture()
	ctx := context.Background()

	if _, err := f.svc.Verify(ctx, consultantID, "2024001"); err != nil {
		t.Fatalf("Verify failed: %v", err)
	}

	req := enrollRequest("2024001")
	req.Course = "MBBS" // ABC College offers BCA and BBA only

	_, err := f.svc.Submit(ctx, consultantID, req)
	var fieldErrs FieldErrors
	if !errors.As(err, &fieldErrs) {
		t.Fatalf("expected FieldErrors, got %v", err)
	}
	if fieldErrs[models.FieldCourse] != "Selected college does not offer this course." {
		t.Errorf("unexpected course error: %v", fieldErrs)
	}

	// Colleges outside the reference list accept any course.
	req = enrollRequest("2024001")
	req.College = "Unlisted College"
	req.Course = "MBBS"
	if _, err := f.svc.Submit(ctx, consultantID, req); err != nil {
		t.Errorf("unknown colleges are unconstrained, got %v", err)
	}
}

func TestSubmitOverwritesExistingRecord(t *testing.T) {
	f := newServiceFixture()
	ctx := context.Background()

	if _, err := f.svc.Verify(ctx, consultantID, "2024001"); err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if _, err := f.svc.Submit(ctx, consultantID, enquiryRequest("2024001")); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	// The record now exists, so re-verifying reports the duplicate. Storage
	// still accepts a direct upsert, which is how the workflow treats a
	// record whose ID was re-verified before it was saved.
	if _, err := f.svc.Verify(ctx, consultantID, "2024001"); !errors.Is(err, apperrors.ErrStudentAlreadyExists) {
		t.Errorf("expected duplicate after first submit, got %v", err)
	}
}

func TestFilterStudents(t *testing.T) {
	students := []models.Student{
		{StudentID: "1", CandidateName: "Asha Kumar", ApplicationStatus: models.StatusEnquiry, College: "ABC College"},
		{StudentID: "2", CandidateName: "Bala", ApplicationStatus: models.StatusEnroll, College: "ABC College"},
		{StudentID: "3", CandidateName: "Chitra", ApplicationStatus: models.StatusEnroll, College: "XYZ Institute"},
	}

	tests := []struct {
		name    string
		filter  dto.StudentFilter
		wantIDs []string
	}{
		{"no filters", dto.StudentFilter{}, []string{"1", "2", "3"}},
		{"name substring is case insensitive", dto.StudentFilter{Search: "asha"}, []string{"1"}},
		{"status exact", dto.StudentFilter{Status: "Enroll"}, []string{"2", "3"}},
		{"college substring", dto.StudentFilter{College: "xyz"}, []string{"3"}},
		{"filters combine", dto.StudentFilter{Status: "Enroll", College: "abc"}, []string{"2"}},
		{"whitespace-only filters ignored", dto.StudentFilter{Search: "  ", College: " "}, []string{"1", "2", "3"}},
		{"no match", dto.StudentFilter{Search: "zzz"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterStudents(students, tt.filter)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("expected %d results, got %d", len(tt.wantIDs), len(got))
			}
			for i, id := range tt.wantIDs {
				if got[i].StudentID != id {
					t.Errorf("result %d: expected ID %s, got %s", i, id, got[i].StudentID)
				}
			}
		})
	}
}

func TestGetEnforcesOwnership(t *testing.T) {
	f := newServiceFixture()
	ctx := context.Background()

	f.studentRepo.students["2024001"] = models.Student{
		StudentID: "2024001",
		CreatedBy: consultantID,
	}

	if _, err := f.svc.Get(ctx, consultantID, "2024001"); err != nil {
		t.Errorf("owner should read the record, got %v", err)
	}
	if _, err := f.svc.Get(ctx, freelanceID, "2024001"); !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Errorf("other actors must see not-found, got %v", err)
	}
	if _, err := f.svc.Get(ctx, consultantID, "9999"); !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Errorf("missing records report not-found, got %v", err)
	}
}

func TestUpdateDemotionForceClears(t *testing.T) {
	f := newServiceFixture()
	ctx := context.Background()

	f.studentRepo.students["2024001"] = models.Student{
		StudentID:         "2024001",
		ApplicationStatus: models.StatusEnroll,
		CandidateName:     "Asha",
		CandidateNumber:   "9876543210",
		DOB:               "2005-01-01",
		College:           "ABC College",
		Course:            "BCA",
		FatherName:        "Ram",
		Gender:            "Female",
		ParentNumber:      "9123456780",
		NationalIDNumber:  "AAAA1234",
		AmountPaid:        25000,
		TransactionID:     "TXN42",
		Place:             "Erode",
		CreatedBy:         consultantID,
		CreatedAt:         time.Now(),
	}

	status := string(models.StatusEnquiry)
	resp, err := f.svc.Update(ctx, consultantID, "2024001", &dto.UpdateStudentRequest{
		ApplicationStatus: &status,
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	saved := f.studentRepo.students["2024001"]
	if saved.ApplicationStatus != models.StatusEnquiry {
		t.Errorf("expected status Enquiry, got %s", saved.ApplicationStatus)
	}
	if saved.Gender != "" || saved.AmountPaid != 0 || saved.TransactionID != "" || saved.Place != "" {
		t.Errorf("demotion must clear enroll-only values in storage: %+v", saved)
	}
	if resp.AmountPaid != 0 {
		t.Errorf("response must reflect the cleared record: %+v", resp)
	}
}

func TestUpdateRevalidatesMergedRecord(t *testing.T) {
	f := newServiceFixture()
	ctx := context.Background()

	f.studentRepo.students["2024001"] = models.Student{
		StudentID:         "2024001",
		ApplicationStatus: models.StatusEnquiry,
		CandidateName:     "Asha",
		CandidateNumber:   "9876543210",
		DOB:               "2005-01-01",
		College:           "ABC College",
		Course:            "BCA",
		FatherName:        "Ram",
		CreatedBy:         consultantID,
	}

	// Promoting to Enroll without the enroll-only fields must fail.
	status := string(models.StatusEnroll)
	_, err := f.svc.Update(ctx, consultantID, "2024001", &dto.UpdateStudentRequest{
		ApplicationStatus: &status,
	})
	var fieldErrs FieldErrors
	if !errors.As(err, &fieldErrs) {
		t.Fatalf("expected FieldErrors, got %v", err)
	}
	if _, ok := fieldErrs[models.FieldGender]; !ok {
		t.Errorf("expected missing enroll-only fields reported, got %v", fieldErrs)
	}

	// Untouched fields survive a partial edit.
	name := "Asha R"
	resp, err := f.svc.Update(ctx, consultantID, "2024001", &dto.UpdateStudentRequest{
		CandidateName: &name,
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if resp.CandidateName != "Asha R" || resp.College != "ABC College" {
		t.Errorf("merge lost data: %+v", resp)
	}
}

func TestSummaryCounts(t *testing.T) {
	f := newServiceFixture()
	ctx := context.Background()

	f.studentRepo.students["1"] = models.Student{StudentID: "1", ApplicationStatus: models.StatusEnquiry, CreatedBy: consultantID}
	f.studentRepo.students["2"] = models.Student{StudentID: "2", ApplicationStatus: models.StatusEnroll, CreatedBy: consultantID}
	f.studentRepo.students["3"] = models.Student{StudentID: "3", ApplicationStatus: models.StatusEnroll, CreatedBy: consultantID}
	f.studentRepo.students["4"] = models.Student{StudentID: "4", ApplicationStatus: models.StatusEnroll, CreatedBy: freelanceID}

	summary, err := f.svc.Summary(ctx, consultantID)
	if err != nil {
		t.Fatalf("Summary failed: %v", err)
	}
	if summary.TotalStudents != 3 {
		t.Errorf("expected 3 total, got %d", summary.TotalStudents)
	}
	if summary.Enrolled != 2 || summary.Enquiries != 1 {
		t.Errorf("expected 2 enrolled and 1 enquiry, got %d/%d", summary.Enrolled, summary.Enquiries)
	}
	if len(summary.Recent) != 3 {
		t.Errorf("expected 3 recent records, got %d", len(summary.Recent))
	}
}

func TestListPaginates(t *testing.T) {
	f := newServiceFixture()
	ctx := context.Background()

	for _, id := range []string{"1", "2", "3"} {
		f.studentRepo.students[id] = models.Student{
			StudentID:         id,
			ApplicationStatus: models.StatusEnquiry,
			CandidateName:     "Student " + id,
			CreatedBy:         consultantID,
		}
	}

	resp, err := f.svc.List(ctx, consultantID, dto.StudentFilter{}, 1, 2)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(resp.Students) != 2 {
		t.Errorf("expected 2 records on page 1, got %d", len(resp.Students))
	}
	if resp.TotalItems != 3 || resp.TotalPages != 2 {
		t.Errorf("unexpected pagination info: %+v", resp.PaginationInfo)
	}

	// A page past the end clamps to the last page.
	resp, err = f.svc.List(ctx, consultantID, dto.StudentFilter{}, 99, 2)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(resp.Students) != 1 {
		t.Errorf("expected the last page's 1 record, got %d", len(resp.Students))
	}
}
