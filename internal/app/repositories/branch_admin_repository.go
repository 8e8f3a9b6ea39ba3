package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/hamzak/maktab/internal/app/models"
	"github.com/hamzak/maktab/internal/db"
	"github.com/hamzak/maktab/internal/pkg/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// IBranchAdminRepository defines the interface for branch admin profile
// database operations
type IBranchAdminRepository interface {
	CreateWithUser(ctx context.Context, user *models.User, admin *models.BranchAdmin) error
	GetAll(ctx context.Context) ([]*models.BranchAdmin, error)
	GetByID(ctx context.Context, id int64) (*models.BranchAdmin, error)
	GetByUserID(ctx context.Context, userID int64) (*models.BranchAdmin, error)
	Update(ctx context.Context, admin *models.BranchAdmin) error
	Delete(ctx context.Context, id int64) error
}

// BranchAdminRepository handles rows in the 'branch_admins' table
type BranchAdminRepository struct {
	db *pgxpool.Pool
}

// NewBranchAdminRepository creates a new BranchAdminRepository
func NewBranchAdminRepository(db *pgxpool.Pool) *BranchAdminRepository {
	return &BranchAdminRepository{
		db: db,
	}
}

const branchAdminSelect = `
	SELECT ba.id, ba.user_id, ba.full_name, ba.cnic_number, ba.phone_number,
	       ba.address, ba.salary, ba.gender, ba.photo, ba.created_at, ba.updated_at,
	       u.id, u.username, u.email, u.user_role, u.last_login_at, u.created_at, u.updated_at
	FROM branch_admins ba
	JOIN users u ON u.id = ba.user_id`

func scanBranchAdmin(row pgx.Row) (*models.BranchAdmin, error) {
	admin := &models.BranchAdmin{}
	user := &models.PublicUser{}
	err := row.Scan(
		&admin.ID, &admin.UserID, &admin.FullName, &admin.CnicNumber, &admin.PhoneNumber,
		&admin.Address, &admin.Salary, &admin.Gender, &admin.Photo, &admin.CreatedAt, &admin.UpdatedAt,
		&user.ID, &user.Username, &user.Email, &user.UserRole, &user.LastLoginAt, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrBranchAdminNotFound
		}
		return nil, fmt.Errorf("error scanning branch admin: %w", err)
	}
	admin.User = user
	return admin, nil
}

// CreateWithUser creates the account and the branch admin profile in one
// transaction so a profile failure cannot leave an orphaned account.
func (r *BranchAdminRepository) CreateWithUser(ctx context.Context, user *models.User, admin *models.BranchAdmin) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		userID, err := CreateUserTx(ctx, tx, user)
		if err != nil {
			return err
		}

		admin.UserID = userID
		err = tx.QueryRow(ctx, `
			INSERT INTO branch_admins (user_id, full_name, cnic_number, phone_number, address, salary, gender, photo)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id, created_at, updated_at`,
			admin.UserID, admin.FullName, admin.CnicNumber, admin.PhoneNumber,
			admin.Address, admin.Salary, admin.Gender, admin.Photo).
			Scan(&admin.ID, &admin.CreatedAt, &admin.UpdatedAt)
		if err != nil {
			return fmt.Errorf("error creating branch admin: %w", err)
		}
		return nil
	})
}

// GetAll retrieves all branch admins with their accounts populated
func (r *BranchAdminRepository) GetAll(ctx context.Context) ([]*models.BranchAdmin, error) {
	rows, err := r.db.Query(ctx, branchAdminSelect+` ORDER BY ba.id`)
	if err != nil {
		return nil, fmt.Errorf("error querying branch admins: %w", err)
	}
	defer rows.Close()

	admins := make([]*models.BranchAdmin, 0)
	for rows.Next() {
		admin, err := scanBranchAdmin(rows)
		if err != nil {
			return nil, err
		}
		admins = append(admins, admin)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating branch admins: %w", err)
	}

	return admins, nil
}

// GetByID retrieves a branch admin by ID with the account populated
func (r *BranchAdminRepository) GetByID(ctx context.Context, id int64) (*models.BranchAdmin, error) {
	row := r.db.QueryRow(ctx, branchAdminSelect+` WHERE ba.id = $1`, id)
	return scanBranchAdmin(row)
}

// GetByUserID retrieves a branch admin by the linked account ID
func (r *BranchAdminRepository) GetByUserID(ctx context.Context, userID int64) (*models.BranchAdmin, error) {
	row := r.db.QueryRow(ctx, branchAdminSelect+` WHERE ba.user_id = $1`, userID)
	return scanBranchAdmin(row)
}

// Update saves changed profile fields
func (r *BranchAdminRepository) Update(ctx context.Context, admin *models.BranchAdmin) error {
	result, err := r.db.Exec(ctx, `
		UPDATE branch_admins
		SET full_name = $1, cnic_number = $2, phone_number = $3, address = $4,
		    salary = $5, gender = $6, photo = $7, updated_at = NOW()
		WHERE id = $8`,
		admin.FullName, admin.CnicNumber, admin.PhoneNumber, admin.Address,
		admin.Salary, admin.Gender, admin.Photo, admin.ID)

	if err != nil {
		return fmt.Errorf("error updating branch admin: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrBranchAdminNotFound
	}

	return nil
}

// Delete removes a branch admin and its account. Deleting the user row
// cascades to the profile.
func (r *BranchAdminRepository) Delete(ctx context.Context, id int64) error {
	admin, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}

	result, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, admin.UserID)
	if err != nil {
		return fmt.Errorf("error deleting branch admin user: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrBranchAdminNotFound
	}

	return nil
}
