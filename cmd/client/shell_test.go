package main

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mentorhub/mentorhub-client/internal/controllers"
	"github.com/mentorhub/mentorhub-client/internal/models"
)

type scriptedChatAPI struct {
	messages []models.ChatMessage
}

func (s *scriptedChatAPI) CreateChat(ctx context.Context, mentorID int64) (*models.Chat, error) {
	return &models.Chat{ChatID: 1, MentorID: mentorID}, nil
}

func (s *scriptedChatAPI) GetMessages(ctx context.Context, chatID int64) ([]models.ChatMessage, error) {
	return s.messages, nil
}

func (s *scriptedChatAPI) SendMessage(ctx context.Context, chatID int64, content string) (*models.ChatMessage, error) {
	return &models.ChatMessage{MessageID: 99, ChatID: chatID, Content: content}, nil
}

func (s *scriptedChatAPI) MarkRead(ctx context.Context, chatID int64) error { return nil }

func TestTerminalViewportTracksTranscript(t *testing.T) {
	api := &scriptedChatAPI{messages: []models.ChatMessage{
		{MessageID: 1, Content: "hi", SenderName: "Grace", SentAt: time.Now()},
		{MessageID: 2, Content: "hello", SenderName: "Ada", SentAt: time.Now()},
	}}

	viewport := newTerminalViewport(50)
	sess := controllers.NewChatSession(api, viewport, models.RoleStudent,
		controllers.ChatSessionConfig{PollInterval: time.Hour, MaxMessageLength: 1000})
	require.NoError(t, sess.OpenExisting(context.Background(), 7))
	defer sess.Close()
	viewport.bind(sess)

	// An empty pane sits at the bottom.
	assert.True(t, viewport.AtBottom())

	viewport.PinToBottom()
	assert.Equal(t, 2, viewport.printed)

	// The terminal renders the full transcript, so the recorded geometry
	// keeps the pane within tolerance of the bottom.
	assert.True(t, viewport.AtBottom())

	// A second pin has nothing new to print.
	viewport.PinToBottom()
	assert.Equal(t, 2, viewport.printed)
}
