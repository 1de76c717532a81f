package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	password := "my-secure-password"
	hash, err := HashPassword(password)

	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)
	assert.NotContains(t, hash, password)

	again, err := HashPassword(password)
	require.NoError(t, err)
	assert.NotEqual(t, hash, again, "each hash carries its own salt")
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("my-secure-password")
	require.NoError(t, err)

	assert.NoError(t, CheckPassword(hash, "my-secure-password"))
	assert.Error(t, CheckPassword(hash, "wrong-password"))
	assert.Error(t, CheckPassword("hashed", "hashed"))
}

func TestHashPasswordTooLong(t *testing.T) {
	_, err := HashPassword(strings.Repeat("p", MaxPasswordBytes))
	require.NoError(t, err)

	_, err = HashPassword(strings.Repeat("p", MaxPasswordBytes+1))
	assert.ErrorIs(t, err, ErrPasswordTooLong)
}

func TestNormalizeIdentity(t *testing.T) {
	assert.Equal(t, "alice@x.com", NormalizeIdentity("  Alice@X.com "))
	assert.Equal(t, "bob", NormalizeIdentity("BOB"))
	assert.Equal(t, "", NormalizeIdentity("   "))
}

func TestNormalizeContent(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "  hi  ", want: "hi"},
		{in: "hello", want: "hello"},
		{in: "   ", want: ""},
		{in: "\n\t spaced \n", want: "spaced"},
		{in: "if a<b and c>d then", want: "if a<b and c>d then"},
		{in: "<b>bold</b> move", want: "<b>bold</b> move"},
		{in: "&lt;script&gt;alert(1)&lt;/script&gt;", want: "&lt;script&gt;alert(1)&lt;/script&gt;"},
		{in: "don't & won't", want: "don't & won't"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeContent(tt.in), "input %q", tt.in)
	}
}

func TestRuneLen(t *testing.T) {
	assert.Equal(t, 5, RuneLen("héllo"))
	assert.Equal(t, 1, RuneLen("☕"))
}
