package storage

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"

	"github.com/helpdesk-inc/helpdesk/internal/shared/config"
	"github.com/helpdesk-inc/helpdesk/internal/shared/errors"
)

// UploadKind selects the destination directory for an uploaded image.
type UploadKind string

const (
	KindUserReport      UploadKind = "user_report"
	KindAdminResolution UploadKind = "admin_resolution"
)

func (k UploadKind) IsValid() bool {
	return k == KindUserReport || k == KindAdminResolution
}

const defaultMaxSizeMB = 5

// allowedImageMIMETypes whitelists content-detected types; the client-provided
// Content-Type header is never trusted.
var allowedImageMIMETypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/gif":  true,
	"image/webp": true,
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// LocalStorage writes uploaded images to local disk and returns the public
// URL path they are served from.
type LocalStorage struct {
	uploadDir  string
	publicPath string
	maxSize    int64
}

func NewLocalStorage(cfg *config.StorageConfig) *LocalStorage {
	maxMB := cfg.MaxSizeMB
	if maxMB <= 0 {
		maxMB = defaultMaxSizeMB
	}

	publicPath := cfg.PublicPath
	if publicPath == "" {
		publicPath = "/uploads"
	}

	return &LocalStorage{
		uploadDir:  cfg.UploadDir,
		publicPath: strings.TrimRight(publicPath, "/"),
		maxSize:    int64(maxMB) << 20,
	}
}

// MaxSize returns the upload size ceiling in bytes.
func (s *LocalStorage) MaxSize() int64 {
	return s.maxSize
}

// Save validates and persists an uploaded image, returning its public URL.
func (s *LocalStorage) Save(kind UploadKind, filename string, size int64, content io.Reader) (string, error) {
	if !kind.IsValid() {
		return "", errors.NewValidationError("invalid upload type")
	}
	if size <= 0 {
		return "", errors.NewValidationError("file is empty")
	}
	if size > s.maxSize {
		return "", errors.NewValidationError(fmt.Sprintf("file size exceeds %dMB limit", s.maxSize>>20))
	}

	data, err := io.ReadAll(io.LimitReader(content, s.maxSize+1))
	if err != nil {
		return "", fmt.Errorf("failed to read uploaded file: %w", err)
	}
	if int64(len(data)) > s.maxSize {
		return "", errors.NewValidationError(fmt.Sprintf("file size exceeds %dMB limit", s.maxSize>>20))
	}

	detected := mimetype.Detect(data)
	if !allowedImageMIMETypes[detected.String()] {
		return "", errors.NewValidationError("only image files are allowed", "detected type "+detected.String())
	}

	dir := filepath.Join(s.uploadDir, string(kind))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	name := fmt.Sprintf("%d_%s", time.Now().UnixMilli(), sanitizeFilename(filename))
	dst := filepath.Join(dir, name)

	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write uploaded file: %w", err)
	}

	return path.Join(s.publicPath, string(kind), name), nil
}

// sanitizeFilename strips path components and characters that are unsafe in a
// URL or on disk.
func sanitizeFilename(filename string) string {
	base := filepath.Base(filename)
	base = strings.ReplaceAll(base, " ", "_")
	base = unsafeFilenameChars.ReplaceAllString(base, "")
	if base == "" || base == "." || base == ".." {
		return "upload"
	}
	return base
}
