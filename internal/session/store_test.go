package session_test

import (
	"testing"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mentorhub/mentorhub-client/internal/session"
)

func tokenWith(t *testing.T, role string, userID int64) string {
	t.Helper()

	token := gojwt.NewWithClaims(gojwt.SigningMethodHS256, gojwt.MapClaims{
		"role":   role,
		"userId": userID,
	})
	signed, err := token.SignedString([]byte("secret"))
	require.NoError(t, err)
	return signed
}

func TestStore_SetCredential(t *testing.T) {
	store, err := session.NewStore("")
	require.NoError(t, err)

	assert.False(t, store.IsAuthenticated())
	assert.Equal(t, "", store.Role())

	token := tokenWith(t, "ROLE_MENTOR", 42)
	store.SetCredential(token)

	assert.True(t, store.IsAuthenticated())
	assert.Equal(t, "ROLE_MENTOR", store.Role())

	got, ok := store.Token()
	assert.True(t, ok)
	assert.Equal(t, token, got)

	userID, ok := store.UserID()
	assert.True(t, ok)
	assert.Equal(t, int64(42), userID)
}

func TestStore_SetCredential_UndecodableToken(t *testing.T) {
	store, err := session.NewStore("")
	require.NoError(t, err)

	// An undecodable token is still stored; only the claims are lost.
	store.SetCredential("opaque-token")

	assert.True(t, store.IsAuthenticated())
	assert.Equal(t, "", store.Role())

	_, ok := store.UserID()
	assert.False(t, ok)
}

func TestStore_Clear(t *testing.T) {
	store, err := session.NewStore("")
	require.NoError(t, err)

	store.SetCredential(tokenWith(t, "ROLE_STUDENT", 7))
	store.SetVerificationEmail("user@example.com")
	store.SetPendingRedirect("/chats/new/3")

	store.Clear()

	assert.False(t, store.IsAuthenticated())
	assert.Equal(t, "", store.Role())
	assert.Equal(t, "", store.VerificationEmail())

	_, ok := store.TakePendingRedirect()
	assert.False(t, ok)
}

func TestStore_PendingRedirectPopsOnce(t *testing.T) {
	store, err := session.NewStore("")
	require.NoError(t, err)

	store.SetPendingRedirect("/chats/new/3")

	route, ok := store.TakePendingRedirect()
	assert.True(t, ok)
	assert.Equal(t, "/chats/new/3", route)

	_, ok = store.TakePendingRedirect()
	assert.False(t, ok)
}

func TestStore_RegistrationTransients(t *testing.T) {
	store, err := session.NewStore("")
	require.NoError(t, err)

	_, ok := store.TakeRegistration()
	assert.False(t, ok)

	store.SetRegistration(session.Registration{
		UserID: 99,
		Email:  "new@example.com",
		Role:   "ROLE_MENTOR",
	})

	// The transients survive repeated reads until explicitly cleared, so a
	// restart mid-flow does not lose them.
	for i := 0; i < 2; i++ {
		reg, ok := store.TakeRegistration()
		require.True(t, ok)
		assert.Equal(t, int64(99), reg.UserID)
		assert.Equal(t, "new@example.com", reg.Email)
		assert.Equal(t, "ROLE_MENTOR", reg.Role)
	}

	store.ClearRegistration()
	_, ok = store.TakeRegistration()
	assert.False(t, ok)
}

func TestStore_PersistsAcrossRestarts(t *testing.T) {
	dir := t.TempDir()
	token := tokenWith(t, "ROLE_STUDENT", 7)

	store, err := session.NewStore(dir)
	require.NoError(t, err)
	store.SetCredential(token)
	store.SetVerificationEmail("user@example.com")

	reopened, err := session.NewStore(dir)
	require.NoError(t, err)

	assert.True(t, reopened.IsAuthenticated())
	assert.Equal(t, "ROLE_STUDENT", reopened.Role())
	assert.Equal(t, "user@example.com", reopened.VerificationEmail())

	got, ok := reopened.Token()
	assert.True(t, ok)
	assert.Equal(t, token, got)
}

func TestStore_ClearPersists(t *testing.T) {
	dir := t.TempDir()

	store, err := session.NewStore(dir)
	require.NoError(t, err)
	store.SetCredential(tokenWith(t, "ROLE_STUDENT", 7))
	store.Clear()

	reopened, err := session.NewStore(dir)
	require.NoError(t, err)
	assert.False(t, reopened.IsAuthenticated())
}
