package validation

import (
	"regexp"

	"github.com/enrolldesk/enrolldesk/internal/app/models"
)

// Validation rule patterns
var (
	// Digits-only, any length (student IDs are externally assigned numbers)
	DigitsPattern = `^\d+$`

	// Exactly 10 digits (candidate and parent contact numbers)
	TenDigitPattern = `^\d{10}$`

	// Exactly 6 digits (postal pincode)
	PincodePattern = `^\d{6}$`

	// Email validation pattern
	EmailPattern = `^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,4}$`
)

// CompiledPatterns caches compiled regex patterns for better performance
var CompiledPatterns = struct {
	Digits   *regexp.Regexp
	TenDigit *regexp.Regexp
	Pincode  *regexp.Regexp
	Email    *regexp.Regexp
}{
	Digits:   regexp.MustCompile(DigitsPattern),
	TenDigit: regexp.MustCompile(TenDigitPattern),
	Pincode:  regexp.MustCompile(PincodePattern),
	Email:    regexp.MustCompile(EmailPattern),
}

// Human-readable messages surfaced against field keys.
const (
	MsgRequired     = "This field is required."
	MsgSelectStatus = "Please select an application status."
	MsgStudentIDNum = "Student ID should contain only numbers."
	MsgTenDigit     = "Enter a valid 10-digit number."
)

// ValidateStudent checks a candidate record against the field set its
// declared status makes mandatory, plus the unconditional format rules.
// The returned map is keyed by field name; an empty map means the record is
// valid. It never errors and has no side effects.
func ValidateStudent(s *models.Student) map[string]string {
	errs := make(map[string]string)

	// Status must be chosen before any other validation runs.
	if s.ApplicationStatus == "" {
		errs[models.FieldApplicationStatus] = MsgSelectStatus
		return errs
	}

	var required []string
	switch s.ApplicationStatus {
	case models.StatusEnquiry:
		required = models.EnquiryFields
	case models.StatusEnroll:
		required = models.EnrollFields
	default:
		errs[models.FieldApplicationStatus] = MsgSelectStatus
		return errs
	}

	for _, key := range required {
		if s.FieldEmpty(key) {
			errs[key] = MsgRequired
		}
	}

	// Format pass runs on non-empty values regardless of the required pass.
	if s.StudentID != "" && !CompiledPatterns.Digits.MatchString(s.StudentID) {
		errs[models.FieldStudentID] = MsgStudentIDNum
	}

	if s.CandidateNumber != "" && !CompiledPatterns.TenDigit.MatchString(s.CandidateNumber) {
		errs[models.FieldCandidateNumber] = MsgTenDigit
	}

	// The parent number only matters for confirmed enrollments.
	if s.ApplicationStatus == models.StatusEnroll &&
		s.ParentNumber != "" && !CompiledPatterns.TenDigit.MatchString(s.ParentNumber) {
		errs[models.FieldParentNumber] = MsgTenDigit
	}

	return errs
}
