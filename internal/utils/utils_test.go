package utils

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── context ──────────────────────────────────────────────────────────────────

func TestUserIDContext(t *testing.T) {
	_, ok := GetUserIDFromContext(context.Background())
	assert.False(t, ok)

	id, ok := GetUserIDFromContext(WithUserID(context.Background(), 42))
	require.True(t, ok)
	assert.Equal(t, int64(42), id)

	_, ok = GetUserIDFromContext(context.WithValue(context.Background(), UserIDCtxKey, "42"))
	assert.False(t, ok, "wrong type must not be accepted")

	assert.Equal(t, "userID", UserIDCtxKey.String())
}

// ── WriteJSON ────────────────────────────────────────────────────────────────

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	n, err := WriteJSON(rec, map[string]string{"url": "https://youtu.be/x?t=1&a=<b>"}, http.StatusCreated)
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, strconv.Itoa(rec.Body.Len()), rec.Header().Get("Content-Length"))
	assert.Equal(t, rec.Body.Len(), n)
	assert.Contains(t, rec.Body.String(), "t=1&a=<b>", "html must not be escaped")

	var got map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "https://youtu.be/x?t=1&a=<b>", got["url"])
}

func TestWriteJSON_Unencodable(t *testing.T) {
	rec := httptest.NewRecorder()

	_, err := WriteJSON(rec, make(chan int), http.StatusOK)
	assert.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotEqual(t, "application/json", rec.Header().Get("Content-Type"))
}

// ── HTTP client ──────────────────────────────────────────────────────────────

func TestNewHTTPClientFor(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ping", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := NewHTTPClientFor(srv.URL, time.Second)
	resp, err := c.R().Get("/ping")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode())
	assert.NotSame(t, NewHTTPClient().Client, NewHTTPClient().Client)
}

// ── hashing / ids ────────────────────────────────────────────────────────────

func TestCacheKey(t *testing.T) {
	a := CacheKey("key", "summarize", "text")

	assert.Len(t, a, 64)
	assert.Equal(t, a, CacheKey("key", "summarize", "text"))
	assert.NotEqual(t, a, CacheKey("other-key", "summarize", "text"))
	assert.NotEqual(t, a, CacheKey("key", "explain", "text"))
	assert.NotEqual(t, CacheKey("key", "ab", "c"), CacheKey("key", "a", "bc"), "parts are separated")
}

func TestIDGenerator(t *testing.T) {
	g := NewIDGenerator()
	a, b := g.NewID(), g.NewID()

	assert.NotEqual(t, a, b)
	parsed, err := uuid.Parse(a)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
	assert.True(t, IsID(b))
	assert.False(t, IsID("not-an-id"))
}

func TestIDGenerator_FallsBackToRandom(t *testing.T) {
	g := &IDGenerator{newID: func() (uuid.UUID, error) { return uuid.Nil, errors.New("clock") }}

	parsed, err := uuid.Parse(g.NewID())
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), parsed.Version())
}

// ── JWT ──────────────────────────────────────────────────────────────────────

func TestJWT_RoundTrip(t *testing.T) {
	token, err := GenerateJWTToken("video-notes", 123, time.Hour, "secret")
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := ValidateAndParseJWTToken(token.SignedString, "secret", "video-notes")
	require.NoError(t, err)
	assert.Equal(t, int64(123), parsed.UserID)

	id, err := ParseUserIDFromJWT(token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(123), id)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", time.Hour, "key"},
		{"zero duration", "iss", 0, "key"},
		{"empty key", "iss", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, 1, tt.duration, tt.key)
			assert.ErrorIs(t, err, ErrInvalidJWTParams)
		})
	}
}

func TestValidateAndParseJWTToken_Rejects(t *testing.T) {
	valid, err := GenerateJWTToken("video-notes", 1, time.Hour, "secret")
	require.NoError(t, err)

	expiredClaims := jwt.RegisteredClaims{
		Issuer:    "video-notes",
		Subject:   "1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, expiredClaims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(valid.SignedString, "other", "video-notes")
	assert.Error(t, err, "wrong key")

	_, err = ValidateAndParseJWTToken(valid.SignedString, "secret", "someone-else")
	assert.Error(t, err, "wrong issuer")

	_, err = ValidateAndParseJWTToken(expired, "secret", "video-notes")
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)

	_, err = ValidateAndParseJWTToken("not.a.token", "secret", "video-notes")
	assert.Error(t, err)
}

func TestParseBearerToken(t *testing.T) {
	token, err := ParseBearerToken("Bearer abc.def")
	require.NoError(t, err)
	assert.Equal(t, "abc.def", token)

	for _, h := range []string{"", "Bearer", "Basic abc", "Bearer a b"} {
		_, err := ParseBearerToken(h)
		assert.ErrorIs(t, err, ErrInvalidAuthorizationHeader, h)
	}
}
