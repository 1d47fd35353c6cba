package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	t.Parallel()

	svc := NewTokenService([]byte("super-secret"), time.Hour)

	token, err := svc.Issue("alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	username, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", username)
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	svc := NewTokenService([]byte("secret"), -time.Second)

	token, err := svc.Issue("bob")
	require.NoError(t, err)

	_, err = svc.Verify(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	issuer := NewTokenService([]byte("right-secret"), time.Hour)
	verifier := NewTokenService([]byte("wrong-secret"), time.Hour)

	token, err := issuer.Issue("carol")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()

	svc := NewTokenService([]byte("k"), time.Hour)

	_, err := svc.Verify("not.a.jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_EmptyUsernameClaim(t *testing.T) {
	t.Parallel()

	svc := NewTokenService([]byte("k"), time.Hour)

	token, err := svc.Issue("")
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
