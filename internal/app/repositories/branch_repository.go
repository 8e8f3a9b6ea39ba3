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

// IBranchRepository defines the interface for branch database operations
type IBranchRepository interface {
	Create(ctx context.Context, branch *models.Branch) error
	GetAll(ctx context.Context) ([]*models.Branch, error)
	GetByID(ctx context.Context, id int64) (*models.Branch, error)
	GetByAssignedTo(ctx context.Context, branchAdminID int64) (*models.Branch, error)
	Update(ctx context.Context, branch *models.Branch) error
	Assign(ctx context.Context, branchID int64, branchAdminID *int64) error
	Delete(ctx context.Context, id int64) error
}

// BranchRepository handles rows in the 'branches' table
type BranchRepository struct {
	db *pgxpool.Pool
}

// NewBranchRepository creates a new BranchRepository
func NewBranchRepository(db *pgxpool.Pool) *BranchRepository {
	return &BranchRepository{
		db: db,
	}
}

const branchColumns = `id, branch_name, branch_address, branch_phone_number, branch_email_address, branch_type, assigned_to, created_at, updated_at`

func scanBranch(row pgx.Row) (*models.Branch, error) {
	branch := &models.Branch{}
	err := row.Scan(
		&branch.ID, &branch.BranchName, &branch.BranchAddress, &branch.BranchPhoneNumber,
		&branch.BranchEmailAddress, &branch.BranchType, &branch.AssignedTo,
		&branch.CreatedAt, &branch.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrBranchNotFound
		}
		return nil, fmt.Errorf("error scanning branch: %w", err)
	}
	return branch, nil
}

// Create inserts a new branch row
func (r *BranchRepository) Create(ctx context.Context, branch *models.Branch) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO branches (branch_name, branch_address, branch_phone_number, branch_email_address, branch_type, assigned_to)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`,
		branch.BranchName, branch.BranchAddress, branch.BranchPhoneNumber,
		branch.BranchEmailAddress, branch.BranchType, branch.AssignedTo).
		Scan(&branch.ID, &branch.CreatedAt, &branch.UpdatedAt)

	if err != nil {
		return fmt.Errorf("error creating branch: %w", err)
	}
	return nil
}

// GetAll retrieves all branches
func (r *BranchRepository) GetAll(ctx context.Context) ([]*models.Branch, error) {
	rows, err := r.db.Query(ctx, `SELECT `+branchColumns+` FROM branches ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("error querying branches: %w", err)
	}
	defer rows.Close()

	branches := make([]*models.Branch, 0)
	for rows.Next() {
		branch, err := scanBranch(rows)
		if err != nil {
			return nil, err
		}
		branches = append(branches, branch)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating branches: %w", err)
	}

	return branches, nil
}

// GetByID retrieves a branch by ID
func (r *BranchRepository) GetByID(ctx context.Context, id int64) (*models.Branch, error) {
	row := r.db.QueryRow(ctx, `SELECT `+branchColumns+` FROM branches WHERE id = $1`, id)
	return scanBranch(row)
}

// GetByAssignedTo retrieves the branch assigned to a branch admin
func (r *BranchRepository) GetByAssignedTo(ctx context.Context, branchAdminID int64) (*models.Branch, error) {
	row := r.db.QueryRow(ctx, `SELECT `+branchColumns+` FROM branches WHERE assigned_to = $1`, branchAdminID)
	return scanBranch(row)
}

// Update saves changed branch fields
func (r *BranchRepository) Update(ctx context.Context, branch *models.Branch) error {
	result, err := r.db.Exec(ctx, `
		UPDATE branches
		SET branch_name = $1, branch_address = $2, branch_phone_number = $3,
		    branch_email_address = $4, branch_type = $5, updated_at = NOW()
		WHERE id = $6`,
		branch.BranchName, branch.BranchAddress, branch.BranchPhoneNumber,
		branch.BranchEmailAddress, branch.BranchType, branch.ID)

	if err != nil {
		return fmt.Errorf("error updating branch: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrBranchNotFound
	}

	return nil
}

// Assign sets or clears the branch admin a branch is assigned to
func (r *BranchRepository) Assign(ctx context.Context, branchID int64, branchAdminID *int64) error {
	result, err := r.db.Exec(ctx, `
		UPDATE branches
		SET assigned_to = $1, updated_at = NOW()
		WHERE id = $2`,
		branchAdminID, branchID)

	if err != nil {
		return fmt.Errorf("error assigning branch: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrBranchNotFound
	}

	return nil
}

// Delete removes a branch. Settings, staff and students in the branch are
// removed by the cascading foreign keys.
func (r *BranchRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM branches WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting branch: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrBranchNotFound
	}
	return nil
}
