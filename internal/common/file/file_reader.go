package file

import (
	"fmt"
	"io"
	"os"

	"github.com/aleister1102/layoutdiff/internal/common/errorwrapper"
	"github.com/rs/zerolog"
)

// FileReader reads comparison inputs from files or streams
type FileReader struct {
	logger    zerolog.Logger
	validator *FileValidator
}

// NewFileReader creates a new FileReader instance
func NewFileReader(logger zerolog.Logger) *FileReader {
	componentLogger := logger.With().Str("component", "FileReader").Logger()
	return &FileReader{
		logger:    componentLogger,
		validator: NewFileValidator(componentLogger),
	}
}

// ReadFile reads the whole file at path
func (fr *FileReader) ReadFile(path string, opts ReadOptions) ([]byte, error) {
	if _, err := fr.validator.ValidateFileForReading(path, opts); err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, errorwrapper.WrapError(err, fmt.Sprintf("failed to open file: %s", path))
	}
	defer func() {
		if err := file.Close(); err != nil {
			fr.logger.Error().Err(err).Str("path", path).Msg("Failed to close file.")
		}
	}()

	content, err := fr.ReadStream(file, opts)
	if err != nil {
		return nil, errorwrapper.WrapError(err, fmt.Sprintf("failed to read file content: %s", path))
	}

	fr.logger.Debug().Str("path", path).Int("bytes", len(content)).Msg("Input file read")
	return content, nil
}

// ReadStream reads r to the end. Streams larger than opts.MaxSize are
// rejected rather than truncated.
func (fr *FileReader) ReadStream(r io.Reader, opts ReadOptions) ([]byte, error) {
	if opts.MaxSize <= 0 {
		return io.ReadAll(r)
	}

	content, err := io.ReadAll(io.LimitReader(r, opts.MaxSize+1))
	if err != nil {
		return nil, err
	}
	if int64(len(content)) > opts.MaxSize {
		return nil, errorwrapper.NewSentinelValidationError(errorwrapper.ErrInvalidInput, "input_size", len(content), fmt.Sprintf("exceeds maximum size of %d bytes", opts.MaxSize))
	}
	return content, nil
}
