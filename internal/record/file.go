package record

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
)

// DefaultPath is where the record lives unless told otherwise.
var DefaultPath = filepath.Join("data", "Space_Dude_record.txt")

// FileStore keeps the record as a decimal integer in a text file.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Path() string {
	return s.path
}

// Read returns 0 without error when the file does not exist yet.
func (s *FileStore) Read() (int, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read record file: %w", err)
	}
	n, err := parseRecord(string(data))
	if err != nil {
		return 0, fmt.Errorf("failed to parse record file %s: %w", s.path, err)
	}
	return n, nil
}

// Write replaces the file atomically: the value goes to a temp file in the
// same directory which is then renamed over the old one.
func (s *FileStore) Write(score int) error {
	if score < 0 {
		return fmt.Errorf("%w: negative value %d", ErrInvalidRecord, score)
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create record directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".record-*")
	if err != nil {
		return fmt.Errorf("failed to create temp record file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.WriteString(strconv.Itoa(score)); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write record: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync record: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close record: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("failed to replace record file: %w", err)
	}
	return nil
}
