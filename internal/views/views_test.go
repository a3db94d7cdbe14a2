package views_test

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/mentorhub/mentorhub-client/internal/api"
	"github.com/mentorhub/mentorhub-client/internal/session"
	"github.com/mentorhub/mentorhub-client/pkg/httpclient"
)

// testNav records navigation in order.
type testNav struct {
	mu     sync.Mutex
	routes []string
}

func (n *testNav) Navigate(route string) {
	n.mu.Lock()
	n.routes = append(n.routes, route)
	n.mu.Unlock()
}

func (n *testNav) visited() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]string, len(n.routes))
	copy(out, n.routes)
	return out
}

func (n *testNav) last() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.routes) == 0 {
		return ""
	}
	return n.routes[len(n.routes)-1]
}

// testModal records blocking error messages.
type testModal struct {
	mu       sync.Mutex
	messages []string
}

func (m *testModal) ShowError(message string) {
	m.mu.Lock()
	m.messages = append(m.messages, message)
	m.mu.Unlock()
}

func (m *testModal) shown() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.messages))
	copy(out, m.messages)
	return out
}

// harness bundles a store and API clients pointed at a test server.
type harness struct {
	store   *session.Store
	auth    *api.AuthClient
	profile *api.ProfileClient
	mentors *api.MentorClient
	chats   *api.ChatClient
	nav     *testNav
	modal   *testModal
}

func newHarness(t *testing.T, handler http.Handler) *harness {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	store, err := session.NewStore("")
	require.NoError(t, err)

	core := api.NewClient(server.URL+"/api", httpclient.NewStandardClientWithTimeout(5*time.Second), store)
	return &harness{
		store:   store,
		auth:    api.NewAuthClient(core),
		profile: api.NewProfileClient(core),
		mentors: api.NewMentorClient(core),
		chats:   api.NewChatClient(core),
		nav:     &testNav{},
		modal:   &testModal{},
	}
}

func sessionRegistration(userID int64, email, role string) session.Registration {
	return session.Registration{UserID: userID, Email: email, Role: role}
}

func studentToken(t *testing.T) string {
	return tokenWithRole(t, "ROLE_STUDENT")
}

func mentorToken(t *testing.T) string {
	return tokenWithRole(t, "ROLE_MENTOR")
}

func tokenWithRole(t *testing.T, role string) string {
	t.Helper()

	token := gojwt.NewWithClaims(gojwt.SigningMethodHS256, gojwt.MapClaims{
		"role":   role,
		"userId": int64(123),
	})
	signed, err := token.SignedString([]byte("secret"))
	require.NoError(t, err)
	return signed
}
