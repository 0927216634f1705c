package models

// College represents a reference entry in the college list. The ordered
// course list is the allowed value-set for a student's course once this
// college is selected.
type College struct {
	ID      string   `json:"id" db:"id"`
	Name    string   `json:"name" db:"name" example:"ABC College"`
	Courses []string `json:"courses" db:"courses" example:"BCA,BBA,MCA"`
}

// Offers reports whether the college offers the named course.
func (c *College) Offers(course string) bool {
	for _, cr := range c.Courses {
		if cr == course {
			return true
		}
	}
	return false
}
