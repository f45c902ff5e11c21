package storage

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helpdesk-inc/helpdesk/internal/shared/config"
	"github.com/helpdesk-inc/helpdesk/internal/shared/errors"
)

// Minimal valid PNG file (1x1 transparent pixel).
var pngBytes = []byte{
	0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A,
	0x00, 0x00, 0x00, 0x0D, 0x49, 0x48, 0x44, 0x52,
	0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1F, 0x15, 0xC4,
	0x89, 0x00, 0x00, 0x00, 0x0D, 0x49, 0x44, 0x41,
	0x54, 0x78, 0x9C, 0x62, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0D, 0x0A, 0x2D, 0xB4, 0x00,
	0x00, 0x00, 0x00, 0x49, 0x45, 0x4E, 0x44, 0xAE,
	0x42, 0x60, 0x82,
}

func newTestStorage(t *testing.T) *LocalStorage {
	return NewLocalStorage(&config.StorageConfig{
		UploadDir:  t.TempDir(),
		PublicPath: "/uploads",
		MaxSizeMB:  5,
	})
}

func TestLocalStorage_Save(t *testing.T) {
	t.Run("saves image and returns public URL", func(t *testing.T) {
		s := newTestStorage(t)

		url, err := s.Save(KindUserReport, "screenshot.png", int64(len(pngBytes)), bytes.NewReader(pngBytes))
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(url, "/uploads/user_report/"), url)
		assert.True(t, strings.HasSuffix(url, "_screenshot.png"), url)

		onDisk := filepath.Join(s.uploadDir, "user_report", filepath.Base(url))
		data, err := os.ReadFile(onDisk)
		require.NoError(t, err)
		assert.Equal(t, pngBytes, data)
	})

	t.Run("admin resolution uploads go to their own directory", func(t *testing.T) {
		s := newTestStorage(t)

		url, err := s.Save(KindAdminResolution, "fix.png", int64(len(pngBytes)), bytes.NewReader(pngBytes))
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(url, "/uploads/admin_resolution/"), url)
	})

	t.Run("rejects non-image content despite image filename", func(t *testing.T) {
		s := newTestStorage(t)

		content := []byte("#!/bin/sh\necho pwned\n")
		_, err := s.Save(KindUserReport, "innocent.png", int64(len(content)), bytes.NewReader(content))
		assert.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("rejects oversized file", func(t *testing.T) {
		s := newTestStorage(t)

		_, err := s.Save(KindUserReport, "big.png", 6<<20, bytes.NewReader(pngBytes))
		assert.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("rejects empty file", func(t *testing.T) {
		s := newTestStorage(t)

		_, err := s.Save(KindUserReport, "empty.png", 0, bytes.NewReader(nil))
		assert.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("rejects unknown upload kind", func(t *testing.T) {
		s := newTestStorage(t)

		_, err := s.Save(UploadKind("other"), "x.png", int64(len(pngBytes)), bytes.NewReader(pngBytes))
		assert.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "report.png", sanitizeFilename("report.png"))
	assert.Equal(t, "my_shot.png", sanitizeFilename("my shot.png"))
	assert.Equal(t, "passwd", sanitizeFilename("../../etc/passwd"))
	assert.Equal(t, "upload", sanitizeFilename(""))
	assert.Equal(t, "shot.png", sanitizeFilename("sh\x00ot.png"))
}
