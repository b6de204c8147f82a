package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIssueAndParse(t *testing.T) {
	issuer := NewTokenIssuer("test-secret")

	token, err := issuer.Issue("acc-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := issuer.Parse(token)
	require.NoError(t, err)
	require.Equal(t, "acc-123", claims.ID)
}

func TestIssueSetsNoExpiry(t *testing.T) {
	issuer := NewTokenIssuer("test-secret")

	token, err := issuer.Issue("acc-123")
	require.NoError(t, err)

	claims, err := issuer.Parse(token)
	require.NoError(t, err)
	require.Nil(t, claims.ExpiresAt)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	token, err := NewTokenIssuer("secret-a").Issue("acc-123")
	require.NoError(t, err)

	_, err = NewTokenIssuer("secret-b").Parse(token)
	require.Error(t, err)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := NewTokenIssuer("test-secret").Parse("not.a.token")
	require.Error(t, err)
}
