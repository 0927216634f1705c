package services

import (
	"context"
	"errors"
	"testing"

	"github.com/enrolldesk/enrolldesk/internal/app/models/dto"
	"github.com/enrolldesk/enrolldesk/internal/pkg/apperrors"
)

func TestCollegeCreate(t *testing.T) {
	svc := NewCollegeService(newFakeCollegeRepo())
	ctx := context.Background()

	resp, err := svc.Create(ctx, &dto.CreateCollegeRequest{
		Name:    "  XYZ Institute ",
		Courses: []string{" BCA ", "", "MCA"},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if resp.Name != "XYZ Institute" {
		t.Errorf("expected trimmed name, got %q", resp.Name)
	}
	if len(resp.Courses) != 2 || resp.Courses[0] != "BCA" || resp.Courses[1] != "MCA" {
		t.Errorf("expected blank courses dropped and the rest trimmed, got %v", resp.Courses)
	}

	if _, err := svc.Create(ctx, &dto.CreateCollegeRequest{Name: "XYZ Institute", Courses: []string{"BBA"}}); !errors.Is(err, apperrors.ErrCollegeAlreadyExists) {
		t.Errorf("expected ErrCollegeAlreadyExists, got %v", err)
	}
}

func TestCollegeCreateValidation(t *testing.T) {
	svc := NewCollegeService(newFakeCollegeRepo())
	ctx := context.Background()

	if _, err := svc.Create(ctx, &dto.CreateCollegeRequest{Name: "  ", Courses: []string{"BCA"}}); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("blank name should fail, got %v", err)
	}
	if _, err := svc.Create(ctx, &dto.CreateCollegeRequest{Name: "ABC", Courses: []string{"  ", ""}}); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("course list of blanks should fail, got %v", err)
	}
}

func TestCollegeList(t *testing.T) {
	svc := NewCollegeService(newFakeCollegeRepo())
	ctx := context.Background()

	resp, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(resp.Colleges) != 0 {
		t.Errorf("expected empty list, got %d", len(resp.Colleges))
	}

	if _, err := svc.Create(ctx, &dto.CreateCollegeRequest{Name: "ABC College", Courses: []string{"BCA"}}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	resp, err = svc.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(resp.Colleges) != 1 || resp.Colleges[0].Name != "ABC College" {
		t.Errorf("unexpected listing: %+v", resp.Colleges)
	}
}
