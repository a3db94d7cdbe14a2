package controllers_test

import (
	"context"
	"sync"

	"github.com/mentorhub/mentorhub-client/internal/models"
)

// fakeChatAPI scripts the chat endpoints and records every call. The poll
// loop hits it from its own goroutine, so everything is mutex-guarded.
type fakeChatAPI struct {
	mu sync.Mutex

	messages    []models.ChatMessage
	getErr      error
	sendErr     error
	markReadErr error
	createErr   error
	createChat  *models.Chat

	getCalls      int
	markReadCalls int
	createCalls   int
	sent          []string
	nextMessageID int64
}

func (f *fakeChatAPI) setMessages(messages []models.ChatMessage) {
	f.mu.Lock()
	f.messages = messages
	f.mu.Unlock()
}

func (f *fakeChatAPI) GetMessages(ctx context.Context, chatID int64) ([]models.ChatMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.getCalls++
	if f.getErr != nil {
		return nil, f.getErr
	}
	out := make([]models.ChatMessage, len(f.messages))
	copy(out, f.messages)
	return out, nil
}

func (f *fakeChatAPI) SendMessage(ctx context.Context, chatID int64, content string) (*models.ChatMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sendErr != nil {
		return nil, f.sendErr
	}
	f.nextMessageID++
	f.sent = append(f.sent, content)
	return &models.ChatMessage{MessageID: 1000 + f.nextMessageID, ChatID: chatID, Content: content}, nil
}

func (f *fakeChatAPI) MarkRead(ctx context.Context, chatID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.markReadCalls++
	return f.markReadErr
}

func (f *fakeChatAPI) CreateChat(ctx context.Context, mentorID int64) (*models.Chat, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createCalls++
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createChat != nil {
		return f.createChat, nil
	}
	return &models.Chat{ChatID: 500, MentorID: mentorID}, nil
}

func (f *fakeChatAPI) counts() (getCalls, markReadCalls, createCalls int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.getCalls, f.markReadCalls, f.createCalls
}

// fakeViewport records at-bottom queries and pin requests.
type fakeViewport struct {
	mu       sync.Mutex
	atBottom bool
	pins     int
}

func (v *fakeViewport) AtBottom() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.atBottom
}

func (v *fakeViewport) PinToBottom() {
	v.mu.Lock()
	v.pins++
	v.mu.Unlock()
}

func (v *fakeViewport) pinCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.pins
}

// fakeSearchAPI records search requests as they arrive.
type fakeSearchAPI struct {
	mu       sync.Mutex
	requests []models.MentorSearchRequest
	results  []models.Mentor
	err      error
}

func (f *fakeSearchAPI) SearchMentors(ctx context.Context, req models.MentorSearchRequest) ([]models.Mentor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, req)
	if f.err != nil {
		return nil, f.err
	}
	return f.results, nil
}

func (f *fakeSearchAPI) recorded() []models.MentorSearchRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.MentorSearchRequest, len(f.requests))
	copy(out, f.requests)
	return out
}

// fakeReviewAPI scripts the review endpoints.
type fakeReviewAPI struct {
	mu sync.Mutex

	reviews   []models.Review
	createErr error
	updateErr error
	deleteErr error

	created []models.ReviewRequest
	updated []int64
	deleted []int64
	loads   int
}

func (f *fakeReviewAPI) GetMentorReviews(ctx context.Context, mentorID int64) ([]models.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loads++
	out := make([]models.Review, len(f.reviews))
	copy(out, f.reviews)
	return out, nil
}

func (f *fakeReviewAPI) CreateReview(ctx context.Context, req models.ReviewRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, req)
	return nil
}

func (f *fakeReviewAPI) UpdateReview(ctx context.Context, reviewID int64, req models.ReviewUpdateRequest) (*models.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	f.updated = append(f.updated, reviewID)
	return &models.Review{ID: reviewID, Rating: req.Rating, Comment: req.Comment}, nil
}

func (f *fakeReviewAPI) DeleteReview(ctx context.Context, reviewID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, reviewID)
	return nil
}

// fakeIdentity is a canned session identity.
type fakeIdentity struct {
	authenticated bool
	role          string
	userID        int64
}

func (f *fakeIdentity) IsAuthenticated() bool { return f.authenticated }
func (f *fakeIdentity) Role() string          { return f.role }

func (f *fakeIdentity) UserID() (int64, bool) {
	if f.userID == 0 {
		return 0, false
	}
	return f.userID, true
}
