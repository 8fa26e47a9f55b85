package dvw

import (
	"fmt"
	"os"
	"strings"
)

const (
	Extension    = ".dvw"
	ScoutSection = "[3SCOUT]"
	BackupSuffix = ".bak"
)

// File holds a scout file's lines plus enough shape to rewrite it
// byte-faithfully: newline style and trailing-newline presence.
type File struct {
	Path     string
	Lines    []string
	crlf     bool
	trailing bool
}

// IsScoutFile reports whether path names an existing regular file with the
// scout extension. It does not inspect content.
func IsScoutFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	if info.IsDir() {
		return false
	}
	return strings.HasSuffix(path, Extension)
}

// Read loads a scout file. The path must pass IsScoutFile.
func Read(path string) (*File, error) {
	if !IsScoutFile(path) {
		return nil, fmt.Errorf("%w: %s", ErrNotScoutFile, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scout file %s: %w", path, err)
	}
	text := string(data)
	f := &File{
		Path:     path,
		crlf:     strings.Contains(text, "\r\n"),
		trailing: strings.HasSuffix(text, "\n"),
	}
	lines := strings.Split(text, "\n")
	if f.trailing {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	f.Lines = lines
	return f, nil
}

// ScoutStart returns the index of the first line after the [3SCOUT] header.
func (f *File) ScoutStart() (int, bool) {
	for i, line := range f.Lines {
		if strings.TrimSpace(line) == ScoutSection {
			return i + 1, true
		}
	}
	return 0, false
}

// Write renders the file to path with its original newline style.
func (f *File) Write(path string) error {
	sep := "\n"
	if f.crlf {
		sep = "\r\n"
	}
	text := strings.Join(f.Lines, sep)
	if f.trailing {
		text += sep
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write scout file %s: %w", path, err)
	}
	return nil
}

// RewriteInPlace copies the original to a backup before overwriting it.
func (f *File) RewriteInPlace(backupSuffix string) error {
	if backupSuffix == "" {
		backupSuffix = BackupSuffix
	}
	original, err := os.ReadFile(f.Path)
	if err != nil {
		return fmt.Errorf("backup read %s: %w", f.Path, err)
	}
	if err := os.WriteFile(f.Path+backupSuffix, original, 0o644); err != nil {
		return fmt.Errorf("backup write %s: %w", f.Path+backupSuffix, err)
	}
	return f.Write(f.Path)
}
