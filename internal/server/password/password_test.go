package password

import (
	"strings"
	"testing"

	"github.com/alexedwards/argon2id"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func lightHasher() *Hasher {
	return NewHasher(&argon2id.Params{Memory: 1024, Iterations: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32})
}

func TestHash_VerifyRoundTrip(t *testing.T) {
	h := lightHasher()

	digest, err := h.Hash("s3cret!")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(digest, "$argon2id$v=19$"))

	ok, err := h.Verify("s3cret!", digest)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Verify("wrong", digest)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHash_FreshSaltEachCall(t *testing.T) {
	h := lightHasher()

	a, err := h.Hash("same")
	require.NoError(t, err)
	b, err := h.Hash("same")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestHash_EmptySecretPanics(t *testing.T) {
	assert.Panics(t, func() { _, _ = lightHasher().Hash("") })
}

func TestVerify_Bcrypt(t *testing.T) {
	legacy, err := bcrypt.GenerateFromPassword([]byte("old-pass"), bcrypt.MinCost)
	require.NoError(t, err)

	h := lightHasher()
	ok, err := h.Verify("old-pass", string(legacy))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Verify("nope", string(legacy))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerify_BadDigest(t *testing.T) {
	h := lightHasher()

	_, err := h.Verify("x", "plaintext")
	assert.ErrorIs(t, err, ErrUnknownDigest)

	_, err = h.Verify("x", "$argon2id$garbage")
	assert.Error(t, err)
}

func TestNewDefaultHasher(t *testing.T) {
	assert.Equal(t, argon2id.DefaultParams, NewDefaultHasher().params)
}
