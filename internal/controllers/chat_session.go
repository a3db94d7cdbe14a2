package controllers

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/mentorhub/mentorhub-client/internal/models"
	"github.com/mentorhub/mentorhub-client/pkg/errors"
	"github.com/mentorhub/mentorhub-client/pkg/logger"
	"github.com/mentorhub/mentorhub-client/pkg/metrics"
)

// ErrMentorToMentorChat is the blocking rejection shown when a mentor tries
// to open a chat with another mentor. Raised before any request is issued.
var ErrMentorToMentorChat = errors.DomainRuleError("Mentors cannot create chats with other mentors")

// ChatAPI is the subset of the chat client the session controller drives.
type ChatAPI interface {
	CreateChat(ctx context.Context, mentorID int64) (*models.Chat, error)
	GetMessages(ctx context.Context, chatID int64) ([]models.ChatMessage, error)
	SendMessage(ctx context.Context, chatID int64, content string) (*models.ChatMessage, error)
	MarkRead(ctx context.Context, chatID int64) error
}

// Viewport abstracts the message view's scroll state. AtBottom must answer
// using the configured pixel tolerance; PinToBottom scrolls to the newest
// message.
type Viewport interface {
	AtBottom() bool
	PinToBottom()
}

// ChatSessionConfig carries the tunables of one chat session controller.
type ChatSessionConfig struct {
	PollInterval     time.Duration
	MaxMessageLength int
}

// ChatSession owns the view state of a single chat: it loads the message
// list, keeps it fresh on a fixed-interval poll, and reconciles fetched
// lists against local state by message-id set. The server is the sole
// source of truth; any fetch that brings no unseen ids (including a
// shrunken list) changes nothing.
type ChatSession struct {
	api      ChatAPI
	view     Viewport
	userRole string
	cfg      ChatSessionConfig

	mu       sync.Mutex
	chatID   int64
	info     *models.Chat
	messages []models.ChatMessage
	seen     map[int64]struct{}

	pollOnce  sync.Once
	closeOnce sync.Once
	closed    bool
	cancel    context.CancelFunc
	done      chan struct{}
}

// NewChatSession creates a controller. userRole is the locally derived role
// claim, used only for the mentor-to-mentor rejection.
func NewChatSession(api ChatAPI, view Viewport, userRole string, cfg ChatSessionConfig) *ChatSession {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 5 * time.Second
	}
	if cfg.MaxMessageLength <= 0 {
		cfg.MaxMessageLength = 1000
	}
	return &ChatSession{
		api:      api,
		view:     view,
		userRole: userRole,
		cfg:      cfg,
		seen:     make(map[int64]struct{}),
		done:     make(chan struct{}),
	}
}

// OpenExisting loads an existing chat once, marks it read, and starts the
// poll loop. The poll starts as soon as the chat id is known: a failed
// initial load is retried on the next tick like any other fetch.
func (s *ChatSession) OpenExisting(ctx context.Context, chatID int64) error {
	s.mu.Lock()
	s.chatID = chatID
	s.mu.Unlock()

	s.startPolling(ctx)

	messages, err := s.api.GetMessages(ctx, chatID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.replaceLocked(messages)
	s.mu.Unlock()

	s.markRead(ctx)
	return nil
}

// OpenNew creates a chat with the given mentor and starts the poll loop.
// A mentor-role actor is rejected before any request is sent.
func (s *ChatSession) OpenNew(ctx context.Context, mentorID int64) (*models.Chat, error) {
	if s.userRole == models.RoleMentor {
		return nil, ErrMentorToMentorChat
	}

	chat, err := s.api.CreateChat(ctx, mentorID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.chatID = chat.ChatID
	s.info = chat
	s.mu.Unlock()

	s.startPolling(ctx)
	return chat, nil
}

// Send validates and sends a message, appending the server's echoed record
// optimistically and re-pinning the view to the bottom. A concurrent poll
// tick cannot lose the message: the next tick re-fetches the authoritative
// full list.
func (s *ChatSession) Send(ctx context.Context, content string) (*models.ChatMessage, error) {
	if strings.TrimSpace(content) == "" {
		return nil, errors.ValidationError("message", "must not be empty")
	}
	if len(content) > s.cfg.MaxMessageLength {
		return nil, errors.ValidationError("message", "exceeds maximum length")
	}

	s.mu.Lock()
	chatID := s.chatID
	s.mu.Unlock()
	if chatID == 0 {
		return nil, errors.ValidationError("chat", "no chat session established")
	}

	message, err := s.api.SendMessage(ctx, chatID, content)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.messages = append(s.messages, *message)
	s.seen[message.MessageID] = struct{}{}
	s.mu.Unlock()

	metrics.ChatMessagesSent.Inc()
	s.view.PinToBottom()
	return message, nil
}

// Messages returns a snapshot of the current message list.
func (s *ChatSession) Messages() []models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.ChatMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

// ChatID returns the established session id, or 0 before one exists.
func (s *ChatSession) ChatID() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.chatID
}

// Info returns the chat record obtained at creation, if any.
func (s *ChatSession) Info() *models.Chat {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.info
}

// IsOwnMessage reports whether the given sender is the local user.
func (s *ChatSession) IsOwnMessage(senderID int64, localUserID int64) bool {
	return localUserID != 0 && senderID == localUserID
}

// Close cancels the poll loop and waits for it to exit. No tick fires
// after Close returns. Safe to call more than once.
func (s *ChatSession) Close() {
	s.closeOnce.Do(func() {
		s.mu.Lock()
		s.closed = true
		cancel := s.cancel
		s.mu.Unlock()

		if cancel != nil {
			cancel()
			<-s.done
		}
	})
}

func (s *ChatSession) startPolling(ctx context.Context) {
	s.pollOnce.Do(func() {
		pollCtx, cancel := context.WithCancel(ctx)

		s.mu.Lock()
		if s.closed {
			s.mu.Unlock()
			cancel()
			return
		}
		s.cancel = cancel
		s.mu.Unlock()

		go func() {
			defer close(s.done)

			ticker := time.NewTicker(s.cfg.PollInterval)
			defer ticker.Stop()

			for {
				select {
				case <-pollCtx.Done():
					return
				case <-ticker.C:
					s.refresh(pollCtx)
				}
			}
		}()
	})
}

// refresh is one poll tick: fetch the full list and reconcile. Failures
// are logged only; the loop retries on the next tick.
func (s *ChatSession) refresh(ctx context.Context) {
	s.mu.Lock()
	chatID := s.chatID
	s.mu.Unlock()
	if chatID == 0 {
		return
	}

	messages, err := s.api.GetMessages(ctx, chatID)
	if err != nil {
		metrics.ChatPollTicks.WithLabelValues("error").Inc()
		logger.Warn("Chat refresh failed, retrying next tick",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
		return
	}

	s.mu.Lock()
	if !s.hasUnseenLocked(messages) {
		s.mu.Unlock()
		metrics.ChatPollTicks.WithLabelValues("unchanged").Inc()
		return
	}

	// Capture scroll state before the list changes, then replace wholesale.
	wasAtBottom := s.view.AtBottom()
	s.replaceLocked(messages)
	s.mu.Unlock()

	metrics.ChatPollTicks.WithLabelValues("updated").Inc()
	s.markRead(ctx)

	if wasAtBottom {
		s.view.PinToBottom()
	}
}

// hasUnseenLocked reports whether the fetched list contains any message id
// not held locally. A list that only lost messages reports false: the
// controller never un-shows a message on its own.
func (s *ChatSession) hasUnseenLocked(fetched []models.ChatMessage) bool {
	for i := range fetched {
		if _, ok := s.seen[fetched[i].MessageID]; !ok {
			return true
		}
	}
	return false
}

func (s *ChatSession) replaceLocked(messages []models.ChatMessage) {
	s.messages = messages
	s.seen = make(map[int64]struct{}, len(messages))
	for i := range messages {
		s.seen[messages[i].MessageID] = struct{}{}
	}
}

// markRead tells the server the chat has been seen. Its failure is logged
// and swallowed, never surfaced.
func (s *ChatSession) markRead(ctx context.Context) {
	s.mu.Lock()
	chatID := s.chatID
	s.mu.Unlock()
	if chatID == 0 {
		return
	}

	if err := s.api.MarkRead(ctx, chatID); err != nil {
		logger.Warn("Failed to mark chat as read",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
	}
}
