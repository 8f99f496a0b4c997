package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/accountkeeper/internal/common"
)

func newTestCodec(t *testing.T) *Codec {
	t.Helper()
	c, err := NewCodec("access-secret", "refresh-secret", 15*time.Minute, 240*time.Hour)
	require.NoError(t, err)
	return c
}

func TestNewCodec_Validation(t *testing.T) {
	_, err := NewCodec("", "r", time.Minute, time.Hour)
	assert.Error(t, err)
	_, err = NewCodec("same", "same", time.Minute, time.Hour)
	assert.Error(t, err)
	_, err = NewCodec("a", "r", 0, time.Hour)
	assert.Error(t, err)
	_, err = NewCodec("a", "r", time.Minute, -time.Hour)
	assert.Error(t, err)
}

func TestCodec_RoundTrip(t *testing.T) {
	c := newTestCodec(t)

	access, refresh, err := c.IssuePair("u1")
	require.NoError(t, err)
	assert.NotEqual(t, access, refresh)

	id, err := c.Verify(KindAccess, access)
	require.NoError(t, err)
	assert.Equal(t, "u1", id)

	id, err = c.Verify(KindRefresh, refresh)
	require.NoError(t, err)
	assert.Equal(t, "u1", id)
	assert.Equal(t, 15*time.Minute, c.AccessTTL())
}

func TestCodec_KindsUseSeparateSecrets(t *testing.T) {
	c := newTestCodec(t)

	access, refresh, err := c.IssuePair("u1")
	require.NoError(t, err)

	_, err = c.Verify(KindRefresh, access)
	assert.ErrorIs(t, err, common.ErrTokenSignatureInvalid)
	_, err = c.Verify(KindAccess, refresh)
	assert.ErrorIs(t, err, common.ErrTokenSignatureInvalid)
}

func TestCodec_ExpiryFollowsTTL(t *testing.T) {
	c := newTestCodec(t)
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return base }

	access, refresh, err := c.IssuePair("u1")
	require.NoError(t, err)

	c.now = func() time.Time { return base.Add(15*time.Minute + time.Second) }
	_, err = c.Verify(KindAccess, access)
	assert.ErrorIs(t, err, common.ErrTokenExpired)
	_, err = c.Verify(KindRefresh, refresh)
	assert.NoError(t, err, "refresh token outlives the access token")

	c.now = func() time.Time { return base.Add(240*time.Hour + time.Second) }
	_, err = c.Verify(KindRefresh, refresh)
	assert.ErrorIs(t, err, common.ErrTokenExpired)
}

func TestCodec_UnknownKind(t *testing.T) {
	c := newTestCodec(t)

	_, err := c.Issue(Kind("id"), "u1")
	assert.Error(t, err)
	_, err = c.Verify(Kind("id"), "x")
	assert.Error(t, err)
}
