package auth

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// signedToken builds a real HS256 token with the given expiry so the
// unverified parse path sees well-formed claims.
func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "learner",
		"exp": exp.Unix(),
	})
	signed, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func testStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "token.json"))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := testStore(t)
	tok := Token{
		AccessToken:  signedToken(t, time.Now().Add(time.Hour)),
		TokenType:    "bearer",
		UserRole:     "student",
		UserLanguage: "en",
		SavedAt:      time.Now(),
	}
	require.NoError(t, s.Save(tok))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, tok.AccessToken, got.AccessToken)
	assert.Equal(t, "student", got.UserRole)
}

func TestLoadMissingFile(t *testing.T) {
	s := testStore(t)
	_, err := s.Load()
	assert.ErrorIs(t, err, ErrNoToken)
}

func TestClearIsIdempotent(t *testing.T) {
	s := testStore(t)
	require.NoError(t, s.Save(Token{AccessToken: "x"}))
	require.NoError(t, s.Clear())
	require.NoError(t, s.Clear())

	_, err := s.Load()
	assert.ErrorIs(t, err, ErrNoToken)
}

func TestExpired(t *testing.T) {
	now := time.Now()

	fresh := Token{AccessToken: signedToken(t, now.Add(30*time.Minute))}
	assert.False(t, fresh.Expired(now))

	stale := Token{AccessToken: signedToken(t, now.Add(-time.Minute))}
	assert.True(t, stale.Expired(now))

	garbage := Token{AccessToken: "not-a-jwt"}
	assert.True(t, garbage.Expired(now), "unreadable tokens count as expired")
}

func TestUpdateAccessToken(t *testing.T) {
	s := testStore(t)
	require.NoError(t, s.Save(Token{AccessToken: "old", TokenType: "bearer", UserRole: "student"}))

	require.NoError(t, s.UpdateAccessToken("rotated"))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, "rotated", got.AccessToken)
	assert.Equal(t, "student", got.UserRole, "other fields survive rotation")
}

// Two in-flight API calls can both carry a rotation header. The whole
// read-modify-write holds the lock, so no interleaving may drop the
// role field or leave the file unreadable. Run with -race.
func TestUpdateAccessTokenConcurrentRotations(t *testing.T) {
	s := testStore(t)
	require.NoError(t, s.Save(Token{AccessToken: "initial", TokenType: "bearer", UserRole: "student"}))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			assert.NoError(t, s.UpdateAccessToken(fmt.Sprintf("rotated-%d", n)))
		}(i)
	}
	wg.Wait()

	got, err := s.Load()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got.AccessToken, "rotated-"))
	assert.Equal(t, "student", got.UserRole, "role must survive every interleaving")
	assert.Equal(t, "bearer", got.TokenType)
}
