package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/enrolldesk/enrolldesk/internal/app/models"
	"github.com/enrolldesk/enrolldesk/internal/pkg/apperrors"
	"github.com/enrolldesk/enrolldesk/internal/pkg/dberrors"
)

// ICollegeRepository defines the interface for college reference data operations
type ICollegeRepository interface {
	Create(ctx context.Context, college *models.College) error
	GetAll(ctx context.Context) ([]models.College, error)
	GetByName(ctx context.Context, name string) (*models.College, error)
}

// CollegeRepository handles database operations for the college list
type CollegeRepository struct {
	db *pgxpool.Pool
}

// NewCollegeRepository creates a new CollegeRepository
func NewCollegeRepository(db *pgxpool.Pool) *CollegeRepository {
	return &CollegeRepository{db: db}
}

// Create inserts a new college with its course list
func (r *CollegeRepository) Create(ctx context.Context, college *models.College) error {
	if college.ID == "" {
		college.ID = uuid.New().String()
	}

	query := `
		INSERT INTO colleges (id, name, courses, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query, college.ID, college.Name, college.Courses, time.Now())
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrCollegeAlreadyExists
		}
		return fmt.Errorf("error creating college: %w", err)
	}

	return nil
}

// GetAll retrieves all colleges ordered by name
func (r *CollegeRepository) GetAll(ctx context.Context) ([]models.College, error) {
	query := `
		SELECT id, name, courses
		FROM colleges
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing colleges: %w", err)
	}
	defer rows.Close()

	var colleges []models.College
	for rows.Next() {
		var college models.College
		if err := rows.Scan(&college.ID, &college.Name, &college.Courses); err != nil {
			return nil, fmt.Errorf("error scanning college row: %w", err)
		}
		colleges = append(colleges, college)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return colleges, nil
}

// GetByName retrieves a college by its exact name
func (r *CollegeRepository) GetByName(ctx context.Context, name string) (*models.College, error) {
	query := `
		SELECT id, name, courses
		FROM colleges
		WHERE name = $1
	`

	var college models.College
	err := r.db.QueryRow(ctx, query, name).Scan(&college.ID, &college.Name, &college.Courses)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCollegeNotFound
		}
		return nil, fmt.Errorf("error retrieving college: %w", err)
	}

	return &college, nil
}
