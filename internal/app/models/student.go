package models

import (
	"time"
)

// Reference attributes a student record to the staff member who entered it
// and, when that member is a Consultant, to their consultancy.
type Reference struct {
	Name            string `json:"name" db:"reference_name"`
	ConsultancyName string `json:"consultancyName,omitempty" db:"reference_consultancy"`
}

// Student defines the student record model based on the 'students' table.
// The externally assigned StudentID is the storage key.
type Student struct {
	StudentID         string            `json:"studentId" db:"student_id" example:"2024001"`
	ApplicationStatus ApplicationStatus `json:"applicationStatus" db:"application_status" example:"Enquiry"`
	CandidateName     string            `json:"candidateName" db:"candidate_name" example:"Asha"`
	CandidateNumber   string            `json:"candidateNumber" db:"candidate_number" example:"9876543210"`
	DOB               string            `json:"dob" db:"dob" example:"2005-01-01"`
	College           string            `json:"college" db:"college" example:"ABC College"`
	Course            string            `json:"course" db:"course" example:"BCA"`
	FatherName        string            `json:"fatherName" db:"father_name" example:"Ram"`

	// Enroll-only group, blank/zero while the record is an Enquiry.
	Gender           string  `json:"gender" db:"gender"`
	ParentNumber     string  `json:"parentNumber" db:"parent_number"`
	NationalIDNumber string  `json:"nationalIdNumber" db:"national_id_number"`
	AmountPaid       float64 `json:"amountPaid" db:"amount_paid"`
	TransactionID    string  `json:"transactionId" db:"transaction_id"`
	Place            string  `json:"place" db:"place"`

	// Server-stamped attribution, never user-supplied.
	Reference Reference `json:"reference" db:"-"`
	CreatedBy int64     `json:"createdBy" db:"created_by"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// Field keys, matching the JSON names. Validation error maps and the
// declarative field sets below are keyed by these.
const (
	FieldStudentID         = "studentId"
	FieldApplicationStatus = "applicationStatus"
	FieldCandidateName     = "candidateName"
	FieldCandidateNumber   = "candidateNumber"
	FieldDOB               = "dob"
	FieldCollege           = "college"
	FieldCourse            = "course"
	FieldFatherName        = "fatherName"
	FieldGender            = "gender"
	FieldParentNumber      = "parentNumber"
	FieldNationalIDNumber  = "nationalIdNumber"
	FieldAmountPaid        = "amountPaid"
	FieldTransactionID     = "transactionId"
	FieldPlace             = "place"
)

// EnquiryFields is the minimal set mandatory when status is Enquiry.
var EnquiryFields = []string{
	FieldStudentID,
	FieldApplicationStatus,
	FieldCandidateName,
	FieldCandidateNumber,
	FieldDOB,
	FieldCourse,
	FieldCollege,
	FieldFatherName,
}

// EnrollOnlyFields is the group that is additionally mandatory when status is
// Enroll, and force-cleared in persisted Enquiry payloads. Both form
// requiredness and payload shaping read this one list so they cannot drift.
var EnrollOnlyFields = []string{
	FieldGender,
	FieldParentNumber,
	FieldNationalIDNumber,
	FieldAmountPaid,
	FieldTransactionID,
	FieldPlace,
}

// EnrollFields is the full mandatory set when status is Enroll: everything
// the operator supplies (attribution fields are server-stamped and excluded).
var EnrollFields = append(append([]string{}, EnquiryFields...), EnrollOnlyFields...)

// EmptyStudent returns the canonical empty-record defaults.
func EmptyStudent() Student {
	return Student{}
}

// FieldEmpty reports whether the named field carries no value.
// Unknown keys are treated as empty.
func (s *Student) FieldEmpty(key string) bool {
	switch key {
	case FieldStudentID:
		return s.StudentID == ""
	case FieldApplicationStatus:
		return s.ApplicationStatus == ""
	case FieldCandidateName:
		return s.CandidateName == ""
	case FieldCandidateNumber:
		return s.CandidateNumber == ""
	case FieldDOB:
		return s.DOB == ""
	case FieldCollege:
		return s.College == ""
	case FieldCourse:
		return s.Course == ""
	case FieldFatherName:
		return s.FatherName == ""
	case FieldGender:
		return s.Gender == ""
	case FieldParentNumber:
		return s.ParentNumber == ""
	case FieldNationalIDNumber:
		return s.NationalIDNumber == ""
	case FieldAmountPaid:
		return s.AmountPaid == 0
	case FieldTransactionID:
		return s.TransactionID == ""
	case FieldPlace:
		return s.Place == ""
	}
	return true
}

// ClearEnrollOnly zeroes the Enroll-only group in place.
func (s *Student) ClearEnrollOnly() {
	s.Gender = ""
	s.ParentNumber = ""
	s.NationalIDNumber = ""
	s.AmountPaid = 0
	s.TransactionID = ""
	s.Place = ""
}

// Shaped returns the record as it should be persisted for its status:
// Enquiry records keep only the enquiry fields with the Enroll-only group
// force-cleared regardless of what was entered; Enroll records pass as-is.
func (s Student) Shaped() Student {
	if s.ApplicationStatus == StatusEnquiry {
		s.ClearEnrollOnly()
	}
	return s
}
