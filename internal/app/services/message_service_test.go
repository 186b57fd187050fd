package services_test

import (
	"context"
	"testing"

	"github.com/findjobsyria/api/internal/app/models"
	"github.com/findjobsyria/api/internal/app/models/dto"
	"github.com/findjobsyria/api/internal/pkg/apperrors"
	"github.com/findjobsyria/api/internal/pkg/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendMessagePushesToReceiver(t *testing.T) {
	e := newEnv(t)

	msg, err := e.svc.Message.SendMessage(context.Background(), &dto.SendMessageRequest{
		ReceiverID:    e.employer.ID,
		OpportunityID: &e.listing.ID,
		Content:       "  مرحبا، هل الوظيفة متاحة؟ ",
	}, e.seeker.Identity())
	require.NoError(t, err)
	assert.Equal(t, e.seeker.ID, msg.SenderID)
	assert.Equal(t, "مرحبا، هل الوظيفة متاحة؟", msg.Content)
	assert.False(t, msg.IsRead)

	pushes := e.realtime.For(e.employer.ID)
	require.Len(t, pushes, 2)
	assert.Equal(t, websocket.EventMessage, pushes[0].eventType)
	assert.Equal(t, websocket.EventNotification, pushes[1].eventType)
	assert.Empty(t, e.realtime.For(e.seeker.ID))

	notes := e.notificationsOf(t, e.employer)
	require.Len(t, notes, 1)
	assert.Equal(t, "/messages/"+e.seeker.ID, *notes[0].Link)
}

func TestSendMessageChecks(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	_, err := e.svc.Message.SendMessage(ctx, &dto.SendMessageRequest{ReceiverID: "missing", Content: "hi"}, e.seeker.Identity())
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)

	_, err = e.svc.Message.SendMessage(ctx, &dto.SendMessageRequest{ReceiverID: e.seeker.ID, Content: "hi"}, e.seeker.Identity())
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)

	_, err = e.svc.Message.SendMessage(ctx, &dto.SendMessageRequest{ReceiverID: e.employer.ID, Content: "   "}, e.seeker.Identity())
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	// Content is checked before the receiver is looked up
	_, err = e.svc.Message.SendMessage(ctx, &dto.SendMessageRequest{ReceiverID: "missing", Content: "\n\t"}, e.seeker.Identity())
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	convs, err := e.svc.Message.ListConversations(ctx, e.seeker.Identity())
	require.NoError(t, err)
	assert.Empty(t, convs)
}

func TestConversationsAndHistory(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	send := func(from, to *models.User, content string) *models.Message {
		msg, err := e.svc.Message.SendMessage(ctx, &dto.SendMessageRequest{ReceiverID: to.ID, Content: content}, from.Identity())
		require.NoError(t, err)
		return msg
	}

	send(e.seeker, e.employer, "first")
	send(e.employer, e.seeker, "second")
	latestStranger := send(e.stranger, e.seeker, "hello from stranger")
	latestEmployer := send(e.seeker, e.employer, "third")

	convs, err := e.svc.Message.ListConversations(ctx, e.seeker.Identity())
	require.NoError(t, err)
	require.Len(t, convs, 2)
	assert.Equal(t, e.employer.ID, convs[0].PartnerID)
	assert.Equal(t, latestEmployer.ID, convs[0].LastMessage.ID)
	assert.Equal(t, e.stranger.ID, convs[1].PartnerID)
	assert.Equal(t, latestStranger.ID, convs[1].LastMessage.ID)

	history, err := e.svc.Message.GetHistory(ctx, e.employer.ID, e.seeker.Identity())
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, "first", history[0].Content)
	assert.Equal(t, "third", history[2].Content)
}

func TestMarkMessageRead(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	msg, err := e.svc.Message.SendMessage(ctx, &dto.SendMessageRequest{ReceiverID: e.employer.ID, Content: "hi"}, e.seeker.Identity())
	require.NoError(t, err)

	_, err = e.svc.Message.MarkRead(ctx, msg.ID, e.seeker.Identity())
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	_, err = e.svc.Message.MarkRead(ctx, "missing", e.employer.Identity())
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)

	read, err := e.svc.Message.MarkRead(ctx, msg.ID, e.employer.Identity())
	require.NoError(t, err)
	assert.True(t, read.IsRead)
}
