package file

import (
	"time"
)

// FileInfo contains metadata about an input file
type FileInfo struct {
	Path    string    // Full file path
	Name    string    // File name only
	Size    int64     // File size in bytes
	IsDir   bool      // Whether it's a directory
	ModTime time.Time // Last modification time
}

// ReadOptions configures input reading
type ReadOptions struct {
	MaxSize int64 // Maximum input size to read (0 = no limit)
}

// DefaultReadOptions returns default reading options
func DefaultReadOptions() ReadOptions {
	return ReadOptions{
		MaxSize: 50 * 1024 * 1024,
	}
}

// ReadOptionsFromMB builds options with a limit given in megabytes
func ReadOptionsFromMB(maxSizeMB int) ReadOptions {
	if maxSizeMB <= 0 {
		return ReadOptions{}
	}
	return ReadOptions{MaxSize: int64(maxSizeMB) * 1024 * 1024}
}
