package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helpdesk-inc/helpdesk/internal/domain/notification"
	vo "github.com/helpdesk-inc/helpdesk/internal/domain/notification/valueobjects"
	"github.com/helpdesk-inc/helpdesk/internal/shared/errors"
)

func TestAdminNotificationRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAdminNotificationRepository(db)
	ctx := context.Background()

	t.Run("create notification successfully", func(t *testing.T) {
		n, err := notification.NewAdminNotification(1, 10, 5, "Printer broken", "New ticket from Alice")
		require.NoError(t, err)

		err = repo.Create(ctx, n)
		assert.NoError(t, err)
		assert.NotZero(t, n.ID())
	})

	t.Run("duplicate admin and ticket pair is rejected", func(t *testing.T) {
		first, err := notification.NewAdminNotification(2, 20, 5, "VPN down", "New ticket from Bob")
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, first))

		second, err := notification.NewAdminNotification(2, 20, 5, "VPN down", "New ticket from Bob")
		require.NoError(t, err)

		err = repo.Create(ctx, second)
		assert.Error(t, err)
		assert.True(t, errors.IsDuplicateError(err))
	})

	t.Run("same ticket for another admin is allowed", func(t *testing.T) {
		n, err := notification.NewAdminNotification(3, 20, 5, "VPN down", "New ticket from Bob")
		require.NoError(t, err)

		err = repo.Create(ctx, n)
		assert.NoError(t, err)
	})
}

func TestAdminNotificationRepository_FindByAdminAndTicket(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAdminNotificationRepository(db)
	ctx := context.Background()

	t.Run("find existing pair", func(t *testing.T) {
		n, err := notification.NewAdminNotification(1, 10, 5, "Printer broken", "New ticket from Alice")
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, n))

		found, err := repo.FindByAdminAndTicket(ctx, 1, 10)
		assert.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, n.ID(), found.ID())
		assert.False(t, found.EmailSent())
	})

	t.Run("absent pair returns nil without error", func(t *testing.T) {
		found, err := repo.FindByAdminAndTicket(ctx, 99, 99)
		assert.NoError(t, err)
		assert.Nil(t, found)
	})
}

func TestAdminNotificationRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAdminNotificationRepository(db)
	ctx := context.Background()

	t.Run("refresh resets read flag and keeps email_sent", func(t *testing.T) {
		n, err := notification.NewAdminNotification(1, 10, 5, "Old title", "Old message")
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, n))
		require.NoError(t, repo.MarkEmailSent(ctx, n.ID()))

		stored, err := repo.FindByAdminAndTicket(ctx, 1, 10)
		require.NoError(t, err)
		stored.Refresh(6, "New title", "New message")

		err = repo.Update(ctx, stored)
		assert.NoError(t, err)

		found, err := repo.FindByAdminAndTicket(ctx, 1, 10)
		require.NoError(t, err)
		assert.Equal(t, "New title", found.Title())
		assert.Equal(t, "New message", found.Message())
		assert.Equal(t, uint(6), found.UserID())
		assert.False(t, found.IsRead())
		assert.True(t, found.EmailSent())
	})

	t.Run("update non-existent notification should fail", func(t *testing.T) {
		n, err := notification.ReconstructAdminNotification(99999, 1, 1, 1, "t", "m", false, false, testTime())
		require.NoError(t, err)

		err = repo.Update(ctx, n)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestAdminNotificationRepository_MarkEmailSent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAdminNotificationRepository(db)
	ctx := context.Background()

	t.Run("mark email sent is persisted", func(t *testing.T) {
		n, err := notification.NewAdminNotification(1, 10, 5, "Printer broken", "New ticket from Alice")
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, n))

		err = repo.MarkEmailSent(ctx, n.ID())
		assert.NoError(t, err)

		found, err := repo.FindByAdminAndTicket(ctx, 1, 10)
		require.NoError(t, err)
		assert.True(t, found.EmailSent())
	})

	t.Run("mark non-existent notification should fail", func(t *testing.T) {
		err := repo.MarkEmailSent(ctx, 99999)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestUserNotificationRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserNotificationRepository(db)
	ctx := context.Background()

	t.Run("create and list by user", func(t *testing.T) {
		first, err := notification.NewUserNotification(5, 10, "Printer broken", "An admin changed your ticket status to \"In Progress\"", vo.TypeStatusUpdate)
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, first))
		assert.NotZero(t, first.ID())

		second, err := notification.NewUserNotification(5, 10, "Printer broken", "An admin added a note to your ticket", vo.TypeAdminNote)
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, second))

		other, err := notification.NewUserNotification(7, 11, "VPN down", "An admin changed your ticket status to \"Resolved\"", vo.TypeTicketResolved)
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, other))

		list, total, err := repo.ListByUserID(ctx, 5, 10, 0)
		assert.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Len(t, list, 2)
		for _, n := range list {
			assert.Equal(t, uint(5), n.UserID())
		}
	})

	t.Run("pagination", func(t *testing.T) {
		list, total, err := repo.ListByUserID(ctx, 5, 1, 0)
		assert.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Len(t, list, 1)

		list, total, err = repo.ListByUserID(ctx, 5, 1, 1)
		assert.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Len(t, list, 1)
	})

	t.Run("no notifications returns empty list", func(t *testing.T) {
		list, total, err := repo.ListByUserID(ctx, 999, 10, 0)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), total)
		assert.Len(t, list, 0)
	})
}
