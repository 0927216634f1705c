package models

import (
	"time"
)

// User defines the staff account model based on the 'users' table
type User struct {
	ID              int64      `json:"id" db:"id" example:"1"`                                       // Unique identifier for the user
	Email           string     `json:"email" db:"email" example:"staff@consultancy.in"`              // User's email address
	Password        string     `json:"-" db:"password"`                                              // User's hashed password (excluded from JSON)
	FullName        string     `json:"fullName" db:"full_name" example:"Priya Raman"`                // User's full display name
	Phone           string     `json:"phone" db:"phone" example:"9876543210"`                        // 10-digit contact number
	UserType        UserType   `json:"userType" db:"user_type" example:"Consultant"`                 // Consultant or Freelance Associate
	ConsultancyName string     `json:"consultancyName" db:"consultancy_name" example:"Bright Path"`  // Blank unless the user is a Consultant
	Address         string     `json:"address" db:"address"`                                         // Postal address
	City            string     `json:"city" db:"city"`                                               // City
	State           string     `json:"state" db:"state"`                                             // State
	Pincode         string     `json:"pincode" db:"pincode" example:"638001"`                        // 6-digit postal code
	CreatedAt       time.Time  `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"`     // Timestamp when the account was created
	LastLoginAt     *time.Time `json:"lastLoginAt,omitempty" db:"last_login_at"`                     // Timestamp of the last login (nullable)
}
