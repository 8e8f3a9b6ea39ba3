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

// IStaffRepository defines the interface for staff profile database operations
type IStaffRepository interface {
	CreateWithUser(ctx context.Context, user *models.User, staff *models.Staff) error
	GetAllByBranch(ctx context.Context, branchID int64) ([]*models.Staff, error)
	GetByID(ctx context.Context, id int64) (*models.Staff, error)
	Update(ctx context.Context, staff *models.Staff) error
	Delete(ctx context.Context, id int64) error
}

// StaffRepository handles rows in the 'staff' table
type StaffRepository struct {
	db *pgxpool.Pool
}

// NewStaffRepository creates a new StaffRepository
func NewStaffRepository(db *pgxpool.Pool) *StaffRepository {
	return &StaffRepository{
		db: db,
	}
}

const staffColumns = `id, user_id, branch_id, full_name, cnic_number, phone_number, address, gender, "cast",
	join_date, salary, basic_salary, staff_type, employee_number, photo, created_at, updated_at`

func scanStaff(row pgx.Row) (*models.Staff, error) {
	staff := &models.Staff{}
	err := row.Scan(
		&staff.ID, &staff.UserID, &staff.BranchID, &staff.FullName, &staff.CnicNumber,
		&staff.PhoneNumber, &staff.Address, &staff.Gender, &staff.Cast,
		&staff.JoinDate, &staff.Salary, &staff.BasicSalary, &staff.StaffType,
		&staff.EmployeeNumber, &staff.Photo, &staff.CreatedAt, &staff.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStaffNotFound
		}
		return nil, fmt.Errorf("error scanning staff: %w", err)
	}
	return staff, nil
}

// CreateWithUser creates the account and the staff profile in one transaction.
func (r *StaffRepository) CreateWithUser(ctx context.Context, user *models.User, staff *models.Staff) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		userID, err := CreateUserTx(ctx, tx, user)
		if err != nil {
			return err
		}

		staff.UserID = userID
		err = tx.QueryRow(ctx, `
			INSERT INTO staff (user_id, branch_id, full_name, cnic_number, phone_number, address, gender, "cast",
			                   join_date, salary, basic_salary, staff_type, employee_number, photo)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
			RETURNING id, created_at, updated_at`,
			staff.UserID, staff.BranchID, staff.FullName, staff.CnicNumber, staff.PhoneNumber,
			staff.Address, staff.Gender, staff.Cast, staff.JoinDate, staff.Salary,
			staff.BasicSalary, staff.StaffType, staff.EmployeeNumber, staff.Photo).
			Scan(&staff.ID, &staff.CreatedAt, &staff.UpdatedAt)
		if err != nil {
			return fmt.Errorf("error creating staff: %w", err)
		}
		return nil
	})
}

// GetAllByBranch retrieves all staff members of a branch
func (r *StaffRepository) GetAllByBranch(ctx context.Context, branchID int64) ([]*models.Staff, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+staffColumns+`
		FROM staff
		WHERE branch_id = $1
		ORDER BY id`,
		branchID)
	if err != nil {
		return nil, fmt.Errorf("error querying staff: %w", err)
	}
	defer rows.Close()

	members := make([]*models.Staff, 0)
	for rows.Next() {
		staff, err := scanStaff(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, staff)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating staff: %w", err)
	}

	return members, nil
}

// GetByID retrieves a staff member by ID
func (r *StaffRepository) GetByID(ctx context.Context, id int64) (*models.Staff, error) {
	row := r.db.QueryRow(ctx, `SELECT `+staffColumns+` FROM staff WHERE id = $1`, id)
	return scanStaff(row)
}

// Update saves changed staff fields
func (r *StaffRepository) Update(ctx context.Context, staff *models.Staff) error {
	result, err := r.db.Exec(ctx, `
		UPDATE staff
		SET full_name = $1, cnic_number = $2, phone_number = $3, address = $4, gender = $5,
		    "cast" = $6, join_date = $7, salary = $8, staff_type = $9, branch_id = $10,
		    employee_number = $11, photo = $12, updated_at = NOW()
		WHERE id = $13`,
		staff.FullName, staff.CnicNumber, staff.PhoneNumber, staff.Address, staff.Gender,
		staff.Cast, staff.JoinDate, staff.Salary, staff.StaffType, staff.BranchID,
		staff.EmployeeNumber, staff.Photo, staff.ID)

	if err != nil {
		return fmt.Errorf("error updating staff: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrStaffNotFound
	}

	return nil
}

// Delete removes a staff member and its account. Deleting the user row
// cascades to the profile.
func (r *StaffRepository) Delete(ctx context.Context, id int64) error {
	staff, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}

	result, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, staff.UserID)
	if err != nil {
		return fmt.Errorf("error deleting staff user: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrStaffNotFound
	}

	return nil
}
