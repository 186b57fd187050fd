package services_test

import (
	"context"
	"testing"

	"github.com/findjobsyria/api/internal/app/models"
	"github.com/findjobsyria/api/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationReadFlow(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	for _, title := range []string{"one", "two", "three"} {
		e.svc.Notification.Notify(ctx, &models.Notification{UserID: e.seeker.ID, Title: title, Content: title, Type: models.NotificationTypeMessage})
	}

	notes := e.notificationsOf(t, e.seeker)
	require.Len(t, notes, 3)
	assert.Equal(t, "three", notes[0].Title)

	_, err := e.svc.Notification.MarkRead(ctx, notes[0].ID, e.stranger.Identity())
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	read, err := e.svc.Notification.MarkRead(ctx, notes[0].ID, e.seeker.Identity())
	require.NoError(t, err)
	assert.True(t, read.IsRead)

	updated, err := e.svc.Notification.MarkAllRead(ctx, e.seeker.Identity())
	require.NoError(t, err)
	assert.Equal(t, int64(2), updated)

	for _, n := range e.notificationsOf(t, e.seeker) {
		assert.True(t, n.IsRead)
	}
}

func TestNotifyUnknownUserIsSwallowed(t *testing.T) {
	e := newEnv(t)

	assert.NotPanics(t, func() {
		e.svc.Notification.Notify(context.Background(), &models.Notification{UserID: "missing", Title: "x", Content: "x", Type: models.NotificationTypeMessage})
	})
	assert.Empty(t, e.realtime.For("missing"))
}
