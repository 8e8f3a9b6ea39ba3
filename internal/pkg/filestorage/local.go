package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/hamzak/maktab/internal/pkg/logger"
)

// PhotoStorage defines the interface for storing uploaded photos. Only the
// generated filename is persisted; the binary lives on disk under a per-role
// subdirectory served by the static file mount.
type PhotoStorage interface {
	// SavePhoto stores an uploaded photo under the given role subdirectory and
	// returns the generated filename. A nil fileHeader yields an empty name.
	SavePhoto(fileHeader *multipart.FileHeader, role string) (string, error)

	// DeletePhoto removes a stored photo. Missing files are not an error.
	DeletePhoto(role, filename string) error
}

// LocalStorage stores photos on the local filesystem.
type LocalStorage struct {
	basePath string // Root directory, e.g. assets/images
}

// NewLocalStorage creates a LocalStorage rooted at basePath, creating the
// directory if needed.
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStorage{
		basePath: basePath,
	}, nil
}

// SavePhoto stores an uploaded photo under basePath/<role>/ with a unique name.
func (ls *LocalStorage) SavePhoto(fileHeader *multipart.FileHeader, role string) (string, error) {
	if fileHeader == nil {
		return "", nil // No file uploaded
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	dirPath := filepath.Join(ls.basePath, role)
	if err := os.MkdirAll(dirPath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", dirPath).Msg("Failed to create role subdirectory")
		return "", fmt.Errorf("failed to create subdirectory: %w", err)
	}

	// Unique filename to prevent collisions
	ext := filepath.Ext(fileHeader.Filename)
	uniqueFilename := uuid.New().String() + ext
	dstPath := filepath.Join(dirPath, uniqueFilename)

	dst, err := os.Create(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to copy uploaded file content")
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	logger.Info().Str("filename", fileHeader.Filename).Str("saved_as", uniqueFilename).Str("role", role).Msg("Photo saved")
	return uniqueFilename, nil
}

// DeletePhoto removes a stored photo from the role subdirectory.
func (ls *LocalStorage) DeletePhoto(role, filename string) error {
	if filename == "" {
		return nil // Nothing to delete
	}

	// Guard against path traversal in stored values
	base := filepath.Base(filename)
	if base == "" || base == "." || base == string(filepath.Separator) {
		return fmt.Errorf("invalid photo filename: %s", filename)
	}

	physicalPath := filepath.Join(ls.basePath, role, base)
	if _, err := os.Stat(physicalPath); os.IsNotExist(err) {
		logger.Warn().Str("path", physicalPath).Msg("Photo to delete does not exist")
		return nil
	}

	if err := os.Remove(physicalPath); err != nil {
		logger.Error().Err(err).Str("path", physicalPath).Msg("Failed to delete photo")
		return fmt.Errorf("failed to delete photo: %w", err)
	}
	return nil
}

// BasePath returns the storage root, used for the static file mount.
func (ls *LocalStorage) BasePath() string {
	return ls.basePath
}
