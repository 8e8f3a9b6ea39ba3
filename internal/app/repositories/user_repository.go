package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hamzak/maktab/internal/app/models"
	"github.com/hamzak/maktab/internal/pkg/apperrors"
	"github.com/hamzak/maktab/internal/pkg/dberrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// IUserRepository defines the interface for account database operations
type IUserRepository interface {
	CreateUser(ctx context.Context, user *models.User) (int64, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	GetFirstUserByRole(ctx context.Context, role models.RoleType) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	UpdateLastLogin(ctx context.Context, userID int64) error
	SetResetToken(ctx context.Context, userID int64, token string) error
	ResetPassword(ctx context.Context, userID int64, passwordHash string) error
	DeleteUser(ctx context.Context, id int64) error
}

// UserRepository handles account rows in the 'users' table
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

const userColumns = `id, username, email, password, user_role, last_login_at, reset_token, created_at, updated_at`

func scanUser(row pgx.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(
		&user.ID, &user.Username, &user.Email, &user.Password, &user.UserRole,
		&user.LastLoginAt, &user.ResetToken, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error scanning user: %w", err)
	}
	return user, nil
}

// CreateUser creates a new account row
func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO users (username, email, password, user_role)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		user.Username, user.Email, user.Password, user.UserRole).Scan(&id)

	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrUserAlreadyExists
		}
		return 0, fmt.Errorf("error creating user: %w", err)
	}

	user.ID = id
	return id, nil
}

// CreateUserTx creates an account row within an existing transaction
func CreateUserTx(ctx context.Context, tx pgx.Tx, user *models.User) (int64, error) {
	var id int64
	err := tx.QueryRow(ctx, `
		INSERT INTO users (username, email, password, user_role)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		user.Username, user.Email, user.Password, user.UserRole).Scan(&id)

	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrUserAlreadyExists
		}
		return 0, fmt.Errorf("error creating user: %w", err)
	}

	user.ID = id
	return id, nil
}

// GetUserByEmail retrieves an account by email
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE email = $1`,
		email)
	return scanUser(row)
}

// GetUserByID retrieves an account by ID
func (r *UserRepository) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE id = $1`,
		id)
	return scanUser(row)
}

// GetFirstUserByRole retrieves the first account holding the given role.
// Used to resolve the single super admin; the seed guarantees one exists.
func (r *UserRepository) GetFirstUserByRole(ctx context.Context, role models.RoleType) (*models.User, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE user_role = $1
		ORDER BY id
		LIMIT 1`,
		role)
	return scanUser(row)
}

// EmailExists checks if an email is already registered
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`,
		email).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking email: %w", err)
	}

	return exists, nil
}

// UpdateLastLogin updates the last login time
func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID int64) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users
		SET last_login_at = $1, updated_at = NOW()
		WHERE id = $2`,
		time.Now(), userID)

	if err != nil {
		return fmt.Errorf("failed to update last login time: %w", err)
	}

	return nil
}

// SetResetToken stores a password reset token on the account, replacing any
// outstanding one.
func (r *UserRepository) SetResetToken(ctx context.Context, userID int64, token string) error {
	result, err := r.db.Exec(ctx, `
		UPDATE users
		SET reset_token = $1, updated_at = NOW()
		WHERE id = $2`,
		token, userID)

	if err != nil {
		return fmt.Errorf("failed to store reset token: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// ResetPassword replaces the password hash and clears the reset token in one
// statement, enforcing single use.
func (r *UserRepository) ResetPassword(ctx context.Context, userID int64, passwordHash string) error {
	result, err := r.db.Exec(ctx, `
		UPDATE users
		SET password = $1, reset_token = NULL, updated_at = NOW()
		WHERE id = $2`,
		passwordHash, userID)

	if err != nil {
		return fmt.Errorf("failed to reset password: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// DeleteUser removes an account row. Profile rows referencing it are removed
// by the cascading foreign keys.
func (r *UserRepository) DeleteUser(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting user: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}
