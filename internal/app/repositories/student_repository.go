package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/enrolldesk/enrolldesk/internal/app/models"
	"github.com/enrolldesk/enrolldesk/internal/pkg/apperrors"
	"github.com/enrolldesk/enrolldesk/internal/pkg/logger"
)

// IStudentRepository defines the interface for student record database operations
type IStudentRepository interface {
	GetByID(ctx context.Context, studentID string) (*models.Student, error)
	LookupName(ctx context.Context, studentID string) (bool, string, error)
	Upsert(ctx context.Context, student *models.Student) error
	UpdateFields(ctx context.Context, studentID string, fields map[string]interface{}) error
	ListByCreator(ctx context.Context, createdBy int64) ([]models.Student, error)
}

// StudentRepository handles database operations for student records
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var studentColumns = []string{
	"student_id", "application_status", "candidate_name", "candidate_number",
	"dob", "college", "course", "father_name",
	"gender", "parent_number", "national_id_number", "amount_paid",
	"transaction_id", "place",
	"reference_name", "reference_consultancy", "created_by", "created_at",
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	var s models.Student
	err := row.Scan(
		&s.StudentID,
		&s.ApplicationStatus,
		&s.CandidateName,
		&s.CandidateNumber,
		&s.DOB,
		&s.College,
		&s.Course,
		&s.FatherName,
		&s.Gender,
		&s.ParentNumber,
		&s.NationalIDNumber,
		&s.AmountPaid,
		&s.TransactionID,
		&s.Place,
		&s.Reference.Name,
		&s.Reference.ConsultancyName,
		&s.CreatedBy,
		&s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// GetByID retrieves a single student record by its operator-chosen ID
func (r *StudentRepository) GetByID(ctx context.Context, studentID string) (*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).
		From("students").
		Where(squirrel.Eq{"student_id": studentID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

// LookupName reports whether a record exists for the ID, and if so the
// candidate name stored on it. Used by the pre-submission verification step.
func (r *StudentRepository) LookupName(ctx context.Context, studentID string) (bool, string, error) {
	sql, args, err := r.sb.Select("candidate_name").
		From("students").
		Where(squirrel.Eq{"student_id": studentID}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, "", fmt.Errorf("failed to build lookup query: %w", err)
	}

	var name string
	err = r.db.QueryRow(ctx, sql, args...).Scan(&name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, "", nil
		}
		return false, "", fmt.Errorf("error looking up student: %w", err)
	}

	return true, name, nil
}

// Upsert writes the record under its student ID, overwriting any existing
// row with that key.
func (r *StudentRepository) Upsert(ctx context.Context, student *models.Student) error {
	if student.CreatedAt.IsZero() {
		student.CreatedAt = time.Now()
	}

	sql, args, err := r.sb.Insert("students").
		Columns(studentColumns...).
		Values(
			student.StudentID,
			student.ApplicationStatus,
			student.CandidateName,
			student.CandidateNumber,
			student.DOB,
			student.College,
			student.Course,
			student.FatherName,
			student.Gender,
			student.ParentNumber,
			student.NationalIDNumber,
			student.AmountPaid,
			student.TransactionID,
			student.Place,
			student.Reference.Name,
			student.Reference.ConsultancyName,
			student.CreatedBy,
			student.CreatedAt,
		).
		Suffix(`ON CONFLICT (student_id) DO UPDATE SET
			application_status = EXCLUDED.application_status,
			candidate_name = EXCLUDED.candidate_name,
			candidate_number = EXCLUDED.candidate_number,
			dob = EXCLUDED.dob,
			college = EXCLUDED.college,
			course = EXCLUDED.course,
			father_name = EXCLUDED.father_name,
			gender = EXCLUDED.gender,
			parent_number = EXCLUDED.parent_number,
			national_id_number = EXCLUDED.national_id_number,
			amount_paid = EXCLUDED.amount_paid,
			transaction_id = EXCLUDED.transaction_id,
			place = EXCLUDED.place,
			reference_name = EXCLUDED.reference_name,
			reference_consultancy = EXCLUDED.reference_consultancy,
			created_by = EXCLUDED.created_by,
			created_at = EXCLUDED.created_at`).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building upsert student SQL")
		return fmt.Errorf("failed to build upsert student query: %w", err)
	}

	_, err = r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("studentID", student.StudentID).Msg("Error executing upsert student query")
		return fmt.Errorf("error saving student: %w", err)
	}

	return nil
}

// UpdateFields applies a partial update to an existing record
func (r *StudentRepository) UpdateFields(ctx context.Context, studentID string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}

	update := r.sb.Update("students").Where(squirrel.Eq{"student_id": studentID})
	for column, value := range fields {
		update = update.Set(column, value)
	}

	sql, args, err := update.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update student SQL")
		return fmt.Errorf("failed to build update student query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("studentID", studentID).Msg("Error executing update student query")
		return fmt.Errorf("error updating student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// ListByCreator retrieves all records registered by a staff account,
// newest first.
func (r *StudentRepository) ListByCreator(ctx context.Context, createdBy int64) ([]models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).
		From("students").
		Where(squirrel.Eq{"created_by": createdBy}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	defer rows.Close()

	var students []models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, *student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}
