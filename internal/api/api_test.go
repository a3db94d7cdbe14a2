package api_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/mentorhub/mentorhub-client/internal/api"
	"github.com/mentorhub/mentorhub-client/internal/session"
	"github.com/mentorhub/mentorhub-client/pkg/httpclient"
)

// newTestClient wires a request core against a test server, plus the store
// backing its bearer injection.
func newTestClient(t *testing.T, handler http.Handler) (*api.Client, *session.Store) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	store, err := session.NewStore("")
	require.NoError(t, err)

	core := api.NewClient(server.URL+"/api", httpclient.NewStandardClientWithTimeout(5*time.Second), store)
	return core, store
}

func authedTestClient(t *testing.T, handler http.Handler) (*api.Client, *session.Store) {
	t.Helper()

	core, store := newTestClient(t, handler)
	store.SetCredential(testToken(t, "ROLE_STUDENT", 7))
	return core, store
}

func testToken(t *testing.T, role string, userID int64) string {
	t.Helper()

	token := gojwt.NewWithClaims(gojwt.SigningMethodHS256, gojwt.MapClaims{
		"role":   role,
		"userId": userID,
	})
	signed, err := token.SignedString([]byte("secret"))
	require.NoError(t, err)
	return signed
}
