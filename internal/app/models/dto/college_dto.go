package dto

import "github.com/enrolldesk/enrolldesk/internal/app/models"

// CreateCollegeRequest adds a college and the courses it offers.
type CreateCollegeRequest struct {
	Name    string   `json:"name" binding:"required"`
	Courses []string `json:"courses" binding:"required,min=1"`
}

// CollegeResponse represents a college in API responses.
type CollegeResponse struct {
	ID      string   `json:"id" example:"5f8b7a2e-1c4d-4e6f-9a3b-8d7c6e5f4a3b"`
	Name    string   `json:"name" example:"Govt Engineering College"`
	Courses []string `json:"courses"`
}

// CollegeListResponse is the full set of registered colleges.
type CollegeListResponse struct {
	Colleges []CollegeResponse `json:"colleges"`
}

// FromCollege converts a model college into a response.
func FromCollege(c models.College) CollegeResponse {
	return CollegeResponse{
		ID:      c.ID,
		Name:    c.Name,
		Courses: c.Courses,
	}
}
