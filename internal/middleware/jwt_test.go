package middleware

import (
	"crypto/rand"
	"crypto/rsa"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKeyPair(t *testing.T) *rsa.PrivateKey {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	return key
}

func TestIssueAndValidateToken(t *testing.T) {
	key := testKeyPair(t)

	token, err := IssueToken(key, "ekpm", 42, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := ValidateToken(token, "ekpm", &key.PublicKey)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestValidateTokenRejectsWrongIssuer(t *testing.T) {
	key := testKeyPair(t)

	token, err := IssueToken(key, "someone-else", 42, time.Hour)
	require.NoError(t, err)

	_, err = ValidateToken(token, "ekpm", &key.PublicKey)
	require.Error(t, err)
}

func TestValidateTokenRejectsWrongKey(t *testing.T) {
	key := testKeyPair(t)
	other := testKeyPair(t)

	token, err := IssueToken(key, "ekpm", 42, time.Hour)
	require.NoError(t, err)

	_, err = ValidateToken(token, "ekpm", &other.PublicKey)
	require.Error(t, err)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	key := testKeyPair(t)

	token, err := IssueToken(key, "ekpm", 42, -time.Minute)
	require.NoError(t, err)

	_, err = ValidateToken(token, "ekpm", &key.PublicKey)
	require.Error(t, err)
}

func TestAuthMiddleware(t *testing.T) {
	key := testKeyPair(t)

	var gotUserID int64
	var gotOK bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, gotOK = UserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	handler := AuthMiddleware(&key.PublicKey, "ekpm")(next)

	t.Run("valid token passes and sets user id", func(t *testing.T) {
		token, err := IssueToken(key, "ekpm", 7, time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, gotOK)
		assert.Equal(t, int64(7), gotUserID)
	})

	t.Run("missing header is 401", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token is 401", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("expired token is 401 with token_expired", func(t *testing.T) {
		token, err := IssueToken(key, "ekpm", 7, -time.Minute)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "token_expired")
	})
}
