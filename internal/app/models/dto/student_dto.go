package dto

import (
	"github.com/enrolldesk/enrolldesk/internal/app/models"
)

// SubmitStudentRequest carries the operator-supplied record for the
// submission workflow. Requiredness is status-conditional, so it is enforced
// by the domain validator rather than binding tags; only the storage key is
// unconditionally required here.
type SubmitStudentRequest struct {
	StudentID         string  `json:"studentId" binding:"required"`
	ApplicationStatus string  `json:"applicationStatus"`
	CandidateName     string  `json:"candidateName"`
	CandidateNumber   string  `json:"candidateNumber"`
	DOB               string  `json:"dob"`
	College           string  `json:"college"`
	Course            string  `json:"course"`
	FatherName        string  `json:"fatherName"`
	Gender            string  `json:"gender"`
	ParentNumber      string  `json:"parentNumber"`
	NationalIDNumber  string  `json:"nationalIdNumber"`
	AmountPaid        float64 `json:"amountPaid"`
	TransactionID     string  `json:"transactionId"`
	Place             string  `json:"place"`
}

// ToModel converts the request into a candidate record. Attribution fields
// stay zero; the workflow stamps them.
func (r *SubmitStudentRequest) ToModel() models.Student {
	return models.Student{
		StudentID:         r.StudentID,
		ApplicationStatus: models.ApplicationStatus(r.ApplicationStatus),
		CandidateName:     r.CandidateName,
		CandidateNumber:   r.CandidateNumber,
		DOB:               r.DOB,
		College:           r.College,
		Course:            r.Course,
		FatherName:        r.FatherName,
		Gender:            r.Gender,
		ParentNumber:      r.ParentNumber,
		NationalIDNumber:  r.NationalIDNumber,
		AmountPaid:        r.AmountPaid,
		TransactionID:     r.TransactionID,
		Place:             r.Place,
	}
}

// UpdateStudentRequest carries a partial edit; nil fields are left untouched.
type UpdateStudentRequest struct {
	ApplicationStatus *string  `json:"applicationStatus,omitempty"`
	CandidateName     *string  `json:"candidateName,omitempty"`
	CandidateNumber   *string  `json:"candidateNumber,omitempty"`
	DOB               *string  `json:"dob,omitempty"`
	College           *string  `json:"college,omitempty"`
	Course            *string  `json:"course,omitempty"`
	FatherName        *string  `json:"fatherName,omitempty"`
	Gender            *string  `json:"gender,omitempty"`
	ParentNumber      *string  `json:"parentNumber,omitempty"`
	NationalIDNumber  *string  `json:"nationalIdNumber,omitempty"`
	AmountPaid        *float64 `json:"amountPaid,omitempty"`
	TransactionID     *string  `json:"transactionId,omitempty"`
	Place             *string  `json:"place,omitempty"`
}

// ApplyTo overlays the non-nil fields onto a working copy of the record.
func (r *UpdateStudentRequest) ApplyTo(s *models.Student) {
	if r.ApplicationStatus != nil {
		s.ApplicationStatus = models.ApplicationStatus(*r.ApplicationStatus)
	}
	if r.CandidateName != nil {
		s.CandidateName = *r.CandidateName
	}
	if r.CandidateNumber != nil {
		s.CandidateNumber = *r.CandidateNumber
	}
	if r.DOB != nil {
		s.DOB = *r.DOB
	}
	if r.College != nil {
		s.College = *r.College
	}
	if r.Course != nil {
		s.Course = *r.Course
	}
	if r.FatherName != nil {
		s.FatherName = *r.FatherName
	}
	if r.Gender != nil {
		s.Gender = *r.Gender
	}
	if r.ParentNumber != nil {
		s.ParentNumber = *r.ParentNumber
	}
	if r.NationalIDNumber != nil {
		s.NationalIDNumber = *r.NationalIDNumber
	}
	if r.AmountPaid != nil {
		s.AmountPaid = *r.AmountPaid
	}
	if r.TransactionID != nil {
		s.TransactionID = *r.TransactionID
	}
	if r.Place != nil {
		s.Place = *r.Place
	}
}

// StudentResponse is a student record plus its listing display strings.
// Raw values stay alongside the formatted ones so edits keep working.
type StudentResponse struct {
	models.Student
	CreatedAtDisplay  string `json:"createdAtDisplay" example:"15-04-2024"`
	AmountPaidDisplay string `json:"amountPaidDisplay" example:"₹25,000"`
}

// StudentListResponse represents a filtered, paginated student listing.
type StudentListResponse struct {
	Students []StudentResponse `json:"students"`
	PaginationInfo
}

// StudentFilter carries the composable listing filters.
type StudentFilter struct {
	Search  string `form:"search"`
	Status  string `form:"status"`
	College string `form:"college"`
}

// VerifyStudentResponse reports the verification outcome for a candidate ID.
type VerifyStudentResponse struct {
	StudentID string `json:"studentId"`
	Available bool   `json:"available"`
}

// SubmitStudentResponse confirms a completed registration.
type SubmitStudentResponse struct {
	Student StudentResponse `json:"student"`
	Message string          `json:"message" example:"Registration completed!"`
}

// DashboardResponse summarizes the actor's records.
type DashboardResponse struct {
	TotalStudents int               `json:"totalStudents"`
	Enrolled      int               `json:"enrolled"`
	Enquiries     int               `json:"enquiries"`
	Recent        []StudentResponse `json:"recent"`
}
