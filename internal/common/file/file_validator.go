package file

import (
	"fmt"
	"os"

	"github.com/aleister1102/layoutdiff/internal/common/errorwrapper"
	"github.com/rs/zerolog"
)

// FileValidator handles file validation operations
type FileValidator struct {
	logger zerolog.Logger
}

// NewFileValidator creates a new FileValidator instance
func NewFileValidator(logger zerolog.Logger) *FileValidator {
	return &FileValidator{
		logger: logger.With().Str("component", "FileValidator").Logger(),
	}
}

// GetFileInfo returns information about a file
func (fv *FileValidator) GetFileInfo(path string) (*FileInfo, error) {
	stat, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errorwrapper.NewSentinelValidationError(errorwrapper.ErrInvalidInput, "path", path, "file not found")
		}
		return nil, errorwrapper.WrapError(err, fmt.Sprintf("failed to get file info for: %s", path))
	}

	return &FileInfo{
		Path:    path,
		Name:    stat.Name(),
		Size:    stat.Size(),
		IsDir:   stat.IsDir(),
		ModTime: stat.ModTime(),
	}, nil
}

// ValidateFileForReading checks that path is a regular file within the size limit
func (fv *FileValidator) ValidateFileForReading(path string, opts ReadOptions) (*FileInfo, error) {
	info, err := fv.GetFileInfo(path)
	if err != nil {
		return nil, err
	}

	if info.IsDir {
		return nil, errorwrapper.NewSentinelValidationError(errorwrapper.ErrInvalidInput, "path", path, "is a directory, not a file")
	}

	if opts.MaxSize > 0 && info.Size > opts.MaxSize {
		fv.logger.Debug().Str("path", path).Int64("size", info.Size).Msg("Input rejected by size limit")
		return nil, errorwrapper.NewSentinelValidationError(errorwrapper.ErrInvalidInput, "file_size", info.Size, fmt.Sprintf("exceeds maximum size of %d bytes", opts.MaxSize))
	}

	return info, nil
}
