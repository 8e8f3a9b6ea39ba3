package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/hamzak/maktab/internal/app/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrBranchSettingNotFound is returned when a branch has no settings row yet.
// Callers treat this as "no settings", not as a failure.
var ErrBranchSettingNotFound = errors.New("branch settings not found")

// IBranchSettingRepository defines the interface for branch settings
// database operations
type IBranchSettingRepository interface {
	GetByBranchID(ctx context.Context, branchID int64) (*models.BranchSetting, error)
	Upsert(ctx context.Context, setting *models.BranchSetting) error
}

// BranchSettingRepository handles rows in the 'branch_settings' table
type BranchSettingRepository struct {
	db *pgxpool.Pool
}

// NewBranchSettingRepository creates a new BranchSettingRepository
func NewBranchSettingRepository(db *pgxpool.Pool) *BranchSettingRepository {
	return &BranchSettingRepository{
		db: db,
	}
}

// GetByBranchID retrieves the settings row for a branch
func (r *BranchSettingRepository) GetByBranchID(ctx context.Context, branchID int64) (*models.BranchSetting, error) {
	setting := &models.BranchSetting{}
	err := r.db.QueryRow(ctx, `
		SELECT id, branch_id, start_time, end_time, machine_attendance, diary, created_at, updated_at
		FROM branch_settings
		WHERE branch_id = $1`,
		branchID).Scan(
		&setting.ID, &setting.BranchID, &setting.StartTime, &setting.EndTime,
		&setting.MachineAttendance, &setting.Diary, &setting.CreatedAt, &setting.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBranchSettingNotFound
		}
		return nil, fmt.Errorf("error retrieving branch settings: %w", err)
	}

	return setting, nil
}

// Upsert creates or replaces the settings row for a branch
func (r *BranchSettingRepository) Upsert(ctx context.Context, setting *models.BranchSetting) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO branch_settings (branch_id, start_time, end_time, machine_attendance, diary)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (branch_id) DO UPDATE
		SET start_time = EXCLUDED.start_time,
		    end_time = EXCLUDED.end_time,
		    machine_attendance = EXCLUDED.machine_attendance,
		    diary = EXCLUDED.diary,
		    updated_at = NOW()
		RETURNING id, created_at, updated_at`,
		setting.BranchID, setting.StartTime, setting.EndTime,
		setting.MachineAttendance, setting.Diary).
		Scan(&setting.ID, &setting.CreatedAt, &setting.UpdatedAt)

	if err != nil {
		return fmt.Errorf("error upserting branch settings: %w", err)
	}

	return nil
}
