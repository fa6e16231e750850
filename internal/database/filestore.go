package database

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// FileStore appends clipboard text to a plain file, one entry per line.
// It does not check for duplicates; callers are expected to consult their
// own seen set first.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Path() string {
	return s.path
}

// InsertIfNew appends content unconditionally and always reports true on
// success. The file is opened per write so an external rotation of the
// file is picked up on the next entry.
func (s *FileStore) InsertIfNew(_ context.Context, content string) (bool, error) {
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return false, fmt.Errorf("failed to open %s for append: %w", s.path, err)
	}

	if _, err := f.WriteString(content + "\n"); err != nil {
		f.Close()
		return false, fmt.Errorf("failed to append to %s: %w", s.path, err)
	}

	if err := f.Close(); err != nil {
		return false, fmt.Errorf("failed to close %s: %w", s.path, err)
	}

	return true, nil
}

// Lines returns the non-empty, trimmed lines already in the file. A missing
// file has no lines.
func (s *FileStore) Lines() ([]string, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open %s: %w", s.path, err)
	}
	defer f.Close()

	var lines []string
	r := bufio.NewReader(f)
	for {
		line, err := r.ReadString('\n')
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", s.path, err)
		}
	}

	return lines, nil
}

func (s *FileStore) Close() error {
	return nil
}
