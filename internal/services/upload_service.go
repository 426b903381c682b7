package services

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ErrUnsupportedExtension indicates an upload whose filename extension is not
// an accepted audio format.
var ErrUnsupportedExtension = errors.New("upload service: unsupported file extension")

// allowed audio extensions, lower case, without the leading dot
var allowedAudioExtensions = map[string]struct{}{
	"mp3": {},
	"wav": {},
	"ogg": {},
	"m4a": {},
}

// UploadService stores uploaded music files under a local directory served
// as static content. Every stored file gets a fresh uuid name, so concurrent
// uploads never collide.
type UploadService struct {
	baseDir   string
	urlPrefix string
}

// NewUploadService prepares the upload directory tree.
func NewUploadService(baseDir string) (*UploadService, error) {
	if strings.TrimSpace(baseDir) == "" {
		return nil, errors.New("upload service: base directory is required")
	}

	musicDir := filepath.Join(baseDir, "music")
	if err := os.MkdirAll(musicDir, 0o755); err != nil {
		return nil, fmt.Errorf("upload service: create music dir: %w", err)
	}

	return &UploadService{baseDir: baseDir, urlPrefix: "/uploads"}, nil
}

// BaseDir returns the directory served under the static uploads prefix.
func (s *UploadService) BaseDir() string {
	return s.baseDir
}

// SaveMusic validates the filename extension, streams the content to disk
// under a generated name, and returns the relative URL of the stored file.
func (s *UploadService) SaveMusic(filename string, src io.Reader) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if _, ok := allowedAudioExtensions[ext]; !ok {
		return "", ErrUnsupportedExtension
	}

	stored := fmt.Sprintf("%s.%s", uuid.NewString(), ext)
	path := filepath.Join(s.baseDir, "music", stored)

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("upload service: create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("upload service: write file: %w", err)
	}

	return fmt.Sprintf("%s/music/%s", s.urlPrefix, stored), nil
}
