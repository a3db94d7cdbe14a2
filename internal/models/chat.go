package models

import "time"

// Chat is a persistent (student, mentor) message thread. The server
// enforces one chat per pair; the client never validates that.
type Chat struct {
	ChatID             int64     `json:"chatId"`
	StudentID          int64     `json:"studentId"`
	StudentName        string    `json:"studentName"`
	StudentPictureURL  string    `json:"studentPictureUrl"`
	MentorID           int64     `json:"mentorId"`
	MentorName         string    `json:"mentorName"`
	MentorPictureURL   string    `json:"mentorPictureUrl"`
	LastMessageTime    time.Time `json:"lastMessageTime"`
	LastMessageContent string    `json:"lastMessageContent"`
	UnreadCount        int       `json:"unreadCount"`
}

// ChatMessage is a single message in a chat. Ordering is server-assigned
// arrival order; the client never reorders.
type ChatMessage struct {
	MessageID               int64     `json:"messageId"`
	ChatID                  int64     `json:"chatId"`
	SenderID                int64     `json:"senderId"`
	SenderName              string    `json:"senderName"`
	SenderProfilePictureURL string    `json:"senderProfilePictureUrl"`
	Content                 string    `json:"content"`
	SentAt                  time.Time `json:"sentAt"`
	Read                    bool      `json:"read"`
}

// MessageRequest sends a message via POST /chat/send.
type MessageRequest struct {
	ChatID  int64  `json:"chatId"`
	Content string `json:"content"`
}

// NewChatRequest opens a chat with a mentor via POST /chat/create.
type NewChatRequest struct {
	MentorID int64 `json:"mentorId"`
}
