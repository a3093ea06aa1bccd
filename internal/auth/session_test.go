package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueVerify(t *testing.T) {
	now := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)
	iss := NewIssuer("secret", time.Hour).WithClock(func() time.Time { return now })

	token, sess, err := iss.Issue()
	require.NoError(t, err)
	assert.True(t, sess.Valid(now))

	got, err := iss.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", got.Subject)
	assert.True(t, got.ExpiresAt.Equal(now.Add(time.Hour)))
}

func TestVerify_Rejects(t *testing.T) {
	now := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)
	iss := NewIssuer("secret", time.Hour).WithClock(func() time.Time { return now })

	token, _, err := iss.Issue()
	require.NoError(t, err)

	other := NewIssuer("other", time.Hour).WithClock(func() time.Time { return now })
	_, err = other.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	later := NewIssuer("secret", time.Hour).WithClock(func() time.Time { return now.Add(2 * time.Hour) })
	_, err = later.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = iss.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSessionValid(t *testing.T) {
	now := time.Now()
	var nilSession *Session

	assert.False(t, nilSession.Valid(now))
	assert.False(t, (&Session{Subject: "admin", ExpiresAt: now.Add(-time.Second)}).Valid(now))
	assert.False(t, (&Session{Subject: "guest", ExpiresAt: now.Add(time.Hour)}).Valid(now))
	assert.True(t, (&Session{Subject: "admin", ExpiresAt: now.Add(time.Hour)}).Valid(now))
}

func TestPassphrase(t *testing.T) {
	hash, err := HashPassphrase("123")
	require.NoError(t, err)

	assert.True(t, CheckPassphrase(hash, "123"))
	assert.False(t, CheckPassphrase(hash, "1234"))
	assert.False(t, CheckPassphrase("", "123"))
}
