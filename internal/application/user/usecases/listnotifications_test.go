package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helpdesk-inc/helpdesk/internal/domain/notification"
	vo "github.com/helpdesk-inc/helpdesk/internal/domain/notification/valueobjects"
	"github.com/helpdesk-inc/helpdesk/internal/shared/logger"
)

func testNotification(t *testing.T, id, userID uint, notifType vo.UserNotificationType, isRead bool) *notification.UserNotification {
	t.Helper()

	n, err := notification.ReconstructUserNotification(
		id, userID, 10, "Printer broken", "Your ticket status changed to In Progress",
		notifType, isRead, time.Now().UTC(),
	)
	require.NoError(t, err)
	return n
}

func TestListNotificationsUseCase_Execute(t *testing.T) {
	log := logger.NewLogger()

	t.Run("returns notifications for the user", func(t *testing.T) {
		var gotUserID uint
		var gotLimit, gotOffset int
		repo := &mockUserNotificationRepository{
			ListByUserIDFunc: func(_ context.Context, userID uint, limit, offset int) ([]*notification.UserNotification, int64, error) {
				gotUserID, gotLimit, gotOffset = userID, limit, offset
				return []*notification.UserNotification{
					testNotification(t, 1, userID, vo.TypeStatusUpdate, false),
					testNotification(t, 2, userID, vo.TypeAdminNote, true),
				}, 5, nil
			},
		}

		uc := NewListNotificationsUseCase(repo, log)
		result, err := uc.Execute(context.Background(), ListNotificationsQuery{UserID: 7, Limit: 2, Offset: 2})

		require.NoError(t, err)
		assert.Equal(t, uint(7), gotUserID)
		assert.Equal(t, 2, gotLimit)
		assert.Equal(t, 2, gotOffset)
		assert.Equal(t, int64(5), result.Total)
		require.Len(t, result.Notifications, 2)
		assert.Equal(t, uint(1), result.Notifications[0].ID)
		assert.Equal(t, "status_update", result.Notifications[0].Type)
		assert.False(t, result.Notifications[0].IsRead)
		assert.Equal(t, "admin_note", result.Notifications[1].Type)
		assert.True(t, result.Notifications[1].IsRead)
	})

	t.Run("applies default and maximum limits", func(t *testing.T) {
		var gotLimit, gotOffset int
		repo := &mockUserNotificationRepository{
			ListByUserIDFunc: func(_ context.Context, _ uint, limit, offset int) ([]*notification.UserNotification, int64, error) {
				gotLimit, gotOffset = limit, offset
				return nil, 0, nil
			},
		}
		uc := NewListNotificationsUseCase(repo, log)

		_, err := uc.Execute(context.Background(), ListNotificationsQuery{UserID: 7})
		require.NoError(t, err)
		assert.Equal(t, defaultNotificationLimit, gotLimit)
		assert.Equal(t, 0, gotOffset)

		_, err = uc.Execute(context.Background(), ListNotificationsQuery{UserID: 7, Limit: 500, Offset: -3})
		require.NoError(t, err)
		assert.Equal(t, maxNotificationLimit, gotLimit)
		assert.Equal(t, 0, gotOffset)
	})

	t.Run("empty list yields an empty slice, not nil", func(t *testing.T) {
		uc := NewListNotificationsUseCase(&mockUserNotificationRepository{}, log)

		result, err := uc.Execute(context.Background(), ListNotificationsQuery{UserID: 7})

		require.NoError(t, err)
		assert.NotNil(t, result.Notifications)
		assert.Len(t, result.Notifications, 0)
		assert.Equal(t, int64(0), result.Total)
	})

	t.Run("repository failure is returned", func(t *testing.T) {
		repo := &mockUserNotificationRepository{
			ListByUserIDFunc: func(_ context.Context, _ uint, _, _ int) ([]*notification.UserNotification, int64, error) {
				return nil, 0, fmt.Errorf("connection refused")
			},
		}
		uc := NewListNotificationsUseCase(repo, log)

		result, err := uc.Execute(context.Background(), ListNotificationsQuery{UserID: 7})

		require.Error(t, err)
		assert.Nil(t, result)
	})
}
