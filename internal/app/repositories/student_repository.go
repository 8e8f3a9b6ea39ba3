package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/hamzak/maktab/internal/app/models"
	"github.com/hamzak/maktab/internal/pkg/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// IStudentRepository defines the interface for student database operations
type IStudentRepository interface {
	Create(ctx context.Context, student *models.Student) error
	GetAllByBranch(ctx context.Context, branchID int64) ([]*models.Student, error)
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id int64) error
}

// StudentRepository handles rows in the 'students' table
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

const studentColumns = `id, branch_id, guardian_id, full_name, date_of_birth, gender,
	registration_number, class_name, section, admission_date, photo, created_at, updated_at`

func scanStudent(row pgx.Row) (*models.Student, error) {
	student := &models.Student{}
	err := row.Scan(
		&student.ID, &student.BranchID, &student.GuardianID, &student.FullName,
		&student.DateOfBirth, &student.Gender, &student.RegistrationNumber,
		&student.ClassName, &student.Section, &student.AdmissionDate,
		&student.Photo, &student.CreatedAt, &student.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error scanning student: %w", err)
	}
	return student, nil
}

// Create inserts a new student row
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO students (branch_id, guardian_id, full_name, date_of_birth, gender,
		                      registration_number, class_name, section, admission_date, photo)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at`,
		student.BranchID, student.GuardianID, student.FullName, student.DateOfBirth,
		student.Gender, student.RegistrationNumber, student.ClassName, student.Section,
		student.AdmissionDate, student.Photo).
		Scan(&student.ID, &student.CreatedAt, &student.UpdatedAt)

	if err != nil {
		return fmt.Errorf("error creating student: %w", err)
	}
	return nil
}

// GetAllByBranch retrieves all students of a branch
func (r *StudentRepository) GetAllByBranch(ctx context.Context, branchID int64) ([]*models.Student, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+studentColumns+`
		FROM students
		WHERE branch_id = $1
		ORDER BY id`,
		branchID)
	if err != nil {
		return nil, fmt.Errorf("error querying students: %w", err)
	}
	defer rows.Close()

	students := make([]*models.Student, 0)
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating students: %w", err)
	}

	return students, nil
}

// GetByID retrieves a student by ID
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	row := r.db.QueryRow(ctx, `SELECT `+studentColumns+` FROM students WHERE id = $1`, id)
	return scanStudent(row)
}

// Update saves changed student fields
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	result, err := r.db.Exec(ctx, `
		UPDATE students
		SET guardian_id = $1, full_name = $2, date_of_birth = $3, gender = $4,
		    registration_number = $5, class_name = $6, section = $7,
		    admission_date = $8, photo = $9, updated_at = NOW()
		WHERE id = $10`,
		student.GuardianID, student.FullName, student.DateOfBirth, student.Gender,
		student.RegistrationNumber, student.ClassName, student.Section,
		student.AdmissionDate, student.Photo, student.ID)

	if err != nil {
		return fmt.Errorf("error updating student: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// Delete removes a student row
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}
