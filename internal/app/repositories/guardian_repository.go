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

// IGuardianRepository defines the interface for guardian database operations
type IGuardianRepository interface {
	Create(ctx context.Context, guardian *models.Guardian) error
	GetAllByBranch(ctx context.Context, branchID int64) ([]*models.Guardian, error)
	GetByID(ctx context.Context, id int64) (*models.Guardian, error)
	Update(ctx context.Context, guardian *models.Guardian) error
	Delete(ctx context.Context, id int64) error
}

// GuardianRepository handles rows in the 'guardians' table
type GuardianRepository struct {
	db *pgxpool.Pool
}

// NewGuardianRepository creates a new GuardianRepository
func NewGuardianRepository(db *pgxpool.Pool) *GuardianRepository {
	return &GuardianRepository{
		db: db,
	}
}

const guardianColumns = `id, branch_id, full_name, cnic_number, phone_number, address, relation, occupation, photo, created_at, updated_at`

func scanGuardian(row pgx.Row) (*models.Guardian, error) {
	guardian := &models.Guardian{}
	err := row.Scan(
		&guardian.ID, &guardian.BranchID, &guardian.FullName, &guardian.CnicNumber,
		&guardian.PhoneNumber, &guardian.Address, &guardian.Relation,
		&guardian.Occupation, &guardian.Photo, &guardian.CreatedAt, &guardian.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrGuardianNotFound
		}
		return nil, fmt.Errorf("error scanning guardian: %w", err)
	}
	return guardian, nil
}

// Create inserts a new guardian row
func (r *GuardianRepository) Create(ctx context.Context, guardian *models.Guardian) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO guardians (branch_id, full_name, cnic_number, phone_number, address, relation, occupation, photo)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at`,
		guardian.BranchID, guardian.FullName, guardian.CnicNumber, guardian.PhoneNumber,
		guardian.Address, guardian.Relation, guardian.Occupation, guardian.Photo).
		Scan(&guardian.ID, &guardian.CreatedAt, &guardian.UpdatedAt)

	if err != nil {
		return fmt.Errorf("error creating guardian: %w", err)
	}
	return nil
}

// GetAllByBranch retrieves all guardians of a branch
func (r *GuardianRepository) GetAllByBranch(ctx context.Context, branchID int64) ([]*models.Guardian, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+guardianColumns+`
		FROM guardians
		WHERE branch_id = $1
		ORDER BY id`,
		branchID)
	if err != nil {
		return nil, fmt.Errorf("error querying guardians: %w", err)
	}
	defer rows.Close()

	guardians := make([]*models.Guardian, 0)
	for rows.Next() {
		guardian, err := scanGuardian(rows)
		if err != nil {
			return nil, err
		}
		guardians = append(guardians, guardian)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating guardians: %w", err)
	}

	return guardians, nil
}

// GetByID retrieves a guardian by ID
func (r *GuardianRepository) GetByID(ctx context.Context, id int64) (*models.Guardian, error) {
	row := r.db.QueryRow(ctx, `SELECT `+guardianColumns+` FROM guardians WHERE id = $1`, id)
	return scanGuardian(row)
}

// Update saves changed guardian fields
func (r *GuardianRepository) Update(ctx context.Context, guardian *models.Guardian) error {
	result, err := r.db.Exec(ctx, `
		UPDATE guardians
		SET full_name = $1, cnic_number = $2, phone_number = $3, address = $4,
		    relation = $5, occupation = $6, photo = $7, updated_at = NOW()
		WHERE id = $8`,
		guardian.FullName, guardian.CnicNumber, guardian.PhoneNumber, guardian.Address,
		guardian.Relation, guardian.Occupation, guardian.Photo, guardian.ID)

	if err != nil {
		return fmt.Errorf("error updating guardian: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrGuardianNotFound
	}

	return nil
}

// Delete removes a guardian row. Students referencing it keep their row with
// a cleared guardian link.
func (r *GuardianRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM guardians WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting guardian: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrGuardianNotFound
	}
	return nil
}
