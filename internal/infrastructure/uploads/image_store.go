package uploads

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/mvisser/enroll/internal/core/repository"
)

type imageStore struct {
	dir         string
	maxBytes    int64
	allowedExts map[string]bool
}

// NewImageStore creates a filesystem image store rooted at dir. Allowed
// extensions are matched case-insensitively, without the leading dot.
func NewImageStore(dir string, maxBytes int64, allowedExts []string) (repository.ImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}

	exts := make(map[string]bool, len(allowedExts))
	for _, ext := range allowedExts {
		exts[strings.ToLower(strings.TrimPrefix(ext, "."))] = true
	}

	return &imageStore{
		dir:         dir,
		maxBytes:    maxBytes,
		allowedExts: exts,
	}, nil
}

func (s *imageStore) Save(filename string, r io.Reader, size int64) (string, error) {
	if size > s.maxBytes {
		return "", repository.ErrFileTooLarge
	}

	name := SanitizeFilename(filename)
	if name == "" {
		return "", repository.ErrFileTypeNotAllowed
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	if ext == "" || !s.allowedExts[ext] {
		return "", repository.ErrFileTypeNotAllowed
	}

	// Unique prefix so two uploads with the same name never clobber each other.
	stored := uuid.New().String() + "_" + name
	path := filepath.Join(s.dir, stored)

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer dst.Close()

	// The declared size is client-supplied; cap the actual bytes written too.
	written, err := io.Copy(dst, io.LimitReader(r, s.maxBytes+1))
	if err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write upload file: %w", err)
	}
	if written > s.maxBytes {
		os.Remove(path)
		return "", repository.ErrFileTooLarge
	}

	return "uploads/" + stored, nil
}

// SanitizeFilename strips directory components and replaces anything outside
// [A-Za-z0-9._-] with an underscore, so the result is always safe to use as
// a single path element. It returns "" when nothing usable remains.
func SanitizeFilename(filename string) string {
	// Take the last element of both unix and windows style paths.
	name := filename
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}

	name = strings.Trim(b.String(), "._-")
	if name == "" {
		return ""
	}
	return name
}
