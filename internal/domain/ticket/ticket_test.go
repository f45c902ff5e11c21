package ticket

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/helpdesk-inc/helpdesk/internal/domain/ticket/valueobjects"
)

func newTestTicket(t *testing.T) *Ticket {
	t.Helper()
	tk, err := NewTicket(1, "Printer broken", "It will not print", nil, nil)
	require.NoError(t, err)
	require.NoError(t, tk.SetID(5))
	return tk
}

func TestNewTicket(t *testing.T) {
	t.Run("starts in the new status", func(t *testing.T) {
		category := "hardware"
		tk, err := NewTicket(1, "Printer broken", "It will not print", &category, nil)
		require.NoError(t, err)
		assert.Equal(t, vo.StatusNew, tk.Status())
		assert.Equal(t, "hardware", *tk.Category())
		assert.Nil(t, tk.AdminNotes())
	})

	t.Run("requires a user", func(t *testing.T) {
		_, err := NewTicket(0, "Printer broken", "It will not print", nil, nil)
		assert.Error(t, err)
	})

	t.Run("requires a title", func(t *testing.T) {
		_, err := NewTicket(1, "", "It will not print", nil, nil)
		assert.Error(t, err)
	})

	t.Run("caps title length", func(t *testing.T) {
		_, err := NewTicket(1, strings.Repeat("a", 201), "It will not print", nil, nil)
		assert.Error(t, err)
	})

	t.Run("caps description length", func(t *testing.T) {
		_, err := NewTicket(1, "Printer broken", strings.Repeat("a", 5001), nil, nil)
		assert.Error(t, err)
	})
}

func TestTicket_ChangeStatus(t *testing.T) {
	tk := newTestTicket(t)

	require.NoError(t, tk.ChangeStatus(vo.StatusInProgress))
	assert.Equal(t, vo.StatusInProgress, tk.Status())

	require.NoError(t, tk.ChangeStatus(vo.StatusResolved))
	assert.Equal(t, vo.StatusResolved, tk.Status())

	// Reopening a resolved ticket is allowed.
	require.NoError(t, tk.ChangeStatus(vo.StatusNew))
	assert.Equal(t, vo.StatusNew, tk.Status())

	assert.Error(t, tk.ChangeStatus("reopened"))
}

func TestTicket_AdminImage(t *testing.T) {
	tk := newTestTicket(t)

	require.NoError(t, tk.SetAdminImage("/uploads/admin_resolution/fix.png"))
	require.NotNil(t, tk.ImageAdminURL())
	require.NotNil(t, tk.ImageAdminUploadedAt())
	assert.WithinDuration(t, time.Now(), *tk.ImageAdminUploadedAt(), time.Minute)

	tk.ClearAdminImage()
	assert.Nil(t, tk.ImageAdminURL())
	assert.Nil(t, tk.ImageAdminUploadedAt())

	assert.Error(t, tk.SetAdminImage(""))
}

func TestTicket_CanBeViewedBy(t *testing.T) {
	tk := newTestTicket(t)

	assert.True(t, tk.CanBeViewedBy(1, false))
	assert.False(t, tk.CanBeViewedBy(2, false))
	assert.True(t, tk.CanBeViewedBy(2, true))
}

func TestTicket_SetID(t *testing.T) {
	tk, err := NewTicket(1, "Printer broken", "It will not print", nil, nil)
	require.NoError(t, err)

	require.NoError(t, tk.SetID(7))
	assert.Error(t, tk.SetID(8))
}
