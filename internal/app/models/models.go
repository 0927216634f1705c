package models

// UserType defines the staff account type
type UserType string

const (
	UserTypeConsultant UserType = "Consultant"
	UserTypeFreelance  UserType = "Freelance Associate"
)

// ApplicationStatus defines the lifecycle status of a student record
type ApplicationStatus string

const (
	StatusEnquiry ApplicationStatus = "Enquiry"
	StatusEnroll  ApplicationStatus = "Enroll"
)

// Valid reports whether the status is one of the two known values.
func (s ApplicationStatus) Valid() bool {
	return s == StatusEnquiry || s == StatusEnroll
}
