package models

import "testing"

func TestShapedClearsEnrollOnlyForEnquiries(t *testing.T) {
	s := Student{
		StudentID:         "2024001",
		ApplicationStatus: StatusEnquiry,
		CandidateName:     "Asha",
		Gender:            "Female",
		ParentNumber:      "9123456780",
		NationalIDNumber:  "AAAA1234",
		AmountPaid:        25000,
		TransactionID:     "TXN42",
		Place:             "Erode",
	}

	shaped := s.Shaped()

	for _, key := range EnrollOnlyFields {
		if !shaped.FieldEmpty(key) {
			t.Errorf("enquiry field %s should be cleared", key)
		}
	}
	if shaped.CandidateName != "Asha" {
		t.Errorf("enquiry fields must survive shaping, got %q", shaped.CandidateName)
	}
	if s.Gender != "Female" {
		t.Errorf("Shaped must not mutate the receiver")
	}
}

func TestShapedKeepsEnrollRecordsIntact(t *testing.T) {
	s := Student{
		ApplicationStatus: StatusEnroll,
		Gender:            "Female",
		AmountPaid:        25000,
	}

	shaped := s.Shaped()
	if shaped.Gender != "Female" || shaped.AmountPaid != 25000 {
		t.Errorf("enroll records pass through unchanged, got %+v", shaped)
	}
}

func TestEnrollFieldsCoverBothGroups(t *testing.T) {
	if len(EnrollFields) != len(EnquiryFields)+len(EnrollOnlyFields) {
		t.Fatalf("EnrollFields should be the union of both groups, got %d", len(EnrollFields))
	}

	seen := make(map[string]bool)
	for _, key := range EnrollFields {
		if seen[key] {
			t.Errorf("duplicate field key %s", key)
		}
		seen[key] = true
	}
}

func TestFieldEmpty(t *testing.T) {
	s := Student{CandidateName: "Asha", AmountPaid: 100}

	if s.FieldEmpty(FieldCandidateName) {
		t.Error("set string field reported empty")
	}
	if s.FieldEmpty(FieldAmountPaid) {
		t.Error("nonzero amount reported empty")
	}
	if !s.FieldEmpty(FieldGender) {
		t.Error("unset field reported present")
	}
	if !s.FieldEmpty("unknownKey") {
		t.Error("unknown keys are treated as empty")
	}
}

func TestApplicationStatusValid(t *testing.T) {
	if !StatusEnquiry.Valid() || !StatusEnroll.Valid() {
		t.Error("known statuses must be valid")
	}
	if ApplicationStatus("Waitlisted").Valid() || ApplicationStatus("").Valid() {
		t.Error("unknown statuses must be invalid")
	}
}

func TestCollegeOffers(t *testing.T) {
	c := College{Name: "ABC College", Courses: []string{"BCA", "BBA"}}

	if !c.Offers("BCA") {
		t.Error("listed course should be offered")
	}
	if c.Offers("MBBS") {
		t.Error("unlisted course should not be offered")
	}
	if c.Offers("bca") {
		t.Error("course matching is exact")
	}
}
