package api

import (
	"context"
	"fmt"

	"github.com/mentorhub/mentorhub-client/internal/models"
)

// ChatClient manages chat sessions and messages.
type ChatClient struct {
	core *Client
}

// NewChatClient creates a chat client over the shared request core.
func NewChatClient(core *Client) *ChatClient {
	return &ChatClient{core: core}
}

// ListChats fetches the authenticated user's chat sessions.
func (c *ChatClient) ListChats(ctx context.Context) ([]models.Chat, error) {
	var chats []models.Chat
	if err := c.core.getJSON(ctx, "listChats", "/chat/list", true, &chats); err != nil {
		return nil, err
	}
	return chats, nil
}

// CreateChat opens a chat with a mentor. The server enforces one chat per
// (student, mentor) pair and returns the existing chat when one exists.
func (c *ChatClient) CreateChat(ctx context.Context, mentorID int64) (*models.Chat, error) {
	var chat models.Chat
	req := models.NewChatRequest{MentorID: mentorID}
	if err := c.core.postJSON(ctx, "createChat", "/chat/create", true, req, &chat); err != nil {
		return nil, err
	}
	return &chat, nil
}

// GetMessages fetches the full message list for a chat in server-assigned
// order.
func (c *ChatClient) GetMessages(ctx context.Context, chatID int64) ([]models.ChatMessage, error) {
	var messages []models.ChatMessage
	path := fmt.Sprintf("/chat/%d/messages", chatID)
	if err := c.core.getJSON(ctx, "getMessages", path, true, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// SendMessage posts a message and returns the server's echo of the stored
// record, which the controller appends optimistically.
func (c *ChatClient) SendMessage(ctx context.Context, chatID int64, content string) (*models.ChatMessage, error) {
	var message models.ChatMessage
	req := models.MessageRequest{ChatID: chatID, Content: content}
	if err := c.core.postJSON(ctx, "sendMessage", "/chat/send", true, req, &message); err != nil {
		return nil, err
	}
	return &message, nil
}

// MarkRead marks every message in the chat as read for the caller.
func (c *ChatClient) MarkRead(ctx context.Context, chatID int64) error {
	return c.core.postJSON(ctx, "markRead", fmt.Sprintf("/chat/%d/read", chatID), true, nil, nil)
}
