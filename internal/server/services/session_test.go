package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/accountkeeper/internal/common"
	"github.com/dmitrijs2005/accountkeeper/internal/server/auth"
)

func TestSession_EndToEndRotation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.register(t, "alice", "a@x.com", "s3cret!")

	sess, err := env.svc.Login(ctx, "alice", "s3cret!")
	require.NoError(t, err)
	t1 := sess.Tokens

	t2, err := env.svc.Refresh(ctx, t1.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, t1.RefreshToken, t2.RefreshToken)
	assert.NotEqual(t, t1.AccessToken, t2.AccessToken)

	_, err = env.svc.Refresh(ctx, t1.RefreshToken)
	require.ErrorIs(t, err, common.ErrorUnauthorized)
	assert.ErrorIs(t, err, common.ErrRefreshTokenReused)

	t3, err := env.svc.Refresh(ctx, t2.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, t2.RefreshToken, t3.RefreshToken)
}

func TestLogin_ReturnsProfileWithoutSecrets(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "alice", "alice@example.com", "s3cret!")

	sess, err := env.svc.Login(context.Background(), "  ALICE@Example.com ", "s3cret!")
	require.NoError(t, err)

	p := sess.Profile
	assert.Equal(t, "alice", p.UserName)
	assert.Equal(t, "alice@example.com", p.Email)
	assert.Equal(t, "https://img.test/avatar/1", p.AvatarURL)
	assert.Empty(t, p.CoverImageURL)

	stored := env.storedRefreshToken(t, p.ID)
	require.NotNil(t, stored)
	assert.Equal(t, sess.Tokens.RefreshToken, *stored)

	userID, err := env.svc.Authenticate(context.Background(), sess.Tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, p.ID, userID)
}

func TestLogin_Failures(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	p := env.register(t, "alice", "alice@example.com", "s3cret!")

	_, err := env.svc.Login(ctx, "bob", "whatever")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	_, err = env.svc.Login(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, common.ErrorInvalidCredentials)

	_, err = env.svc.Login(ctx, " ", "s3cret!")
	assert.ErrorIs(t, err, common.ErrorValidation)

	_, err = env.svc.Login(ctx, "alice", "")
	assert.ErrorIs(t, err, common.ErrorValidation)

	assert.Nil(t, env.storedRefreshToken(t, p.ID), "failed logins must not write a token")
	assert.Equal(t, 4, env.events.count(EventLogin+"/failure"))
}

func TestLogin_SupersedesPreviousSession(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.register(t, "alice", "alice@example.com", "s3cret!")

	first, err := env.svc.Login(ctx, "alice", "s3cret!")
	require.NoError(t, err)
	second, err := env.svc.Login(ctx, "alice", "s3cret!")
	require.NoError(t, err)

	_, err = env.svc.Refresh(ctx, first.Tokens.RefreshToken)
	assert.ErrorIs(t, err, common.ErrRefreshTokenReused)

	_, err = env.svc.Refresh(ctx, second.Tokens.RefreshToken)
	assert.NoError(t, err)
}

type failingCodec struct {
	TokenCodec
}

func (failingCodec) IssuePair(string) (string, string, error) {
	return "", "", errors.New("signer unavailable")
}

func TestLogin_TokenFailureWritesNothing(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.register(t, "alice", "alice@example.com", "s3cret!")

	sess, err := env.svc.Login(ctx, "alice", "s3cret!")
	require.NoError(t, err)
	before := *env.storedRefreshToken(t, sess.Profile.ID)

	env.svc.tokens = failingCodec{TokenCodec: env.codec}
	_, err = env.svc.Login(ctx, "alice", "s3cret!")
	require.ErrorIs(t, err, common.ErrorInternal)

	assert.Equal(t, before, *env.storedRefreshToken(t, sess.Profile.ID))
}

func TestRefresh_RejectsBadTokens(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.register(t, "alice", "alice@example.com", "s3cret!")
	sess, err := env.svc.Login(ctx, "alice", "s3cret!")
	require.NoError(t, err)

	expired, err := auth.GenerateToken(auth.KindRefresh, sess.Profile.ID, []byte("refresh-secret"), -time.Minute)
	require.NoError(t, err)
	ghost, err := env.codec.Issue(auth.KindRefresh, "00000000-0000-0000-0000-000000000000")
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
		cause error
	}{
		{name: "empty", token: ""},
		{name: "garbage", token: "not-a-token", cause: common.ErrTokenMalformed},
		{name: "last bit flipped", token: flipLastBit(sess.Tokens.RefreshToken), cause: common.ErrTokenSignatureInvalid},
		{name: "access token", token: sess.Tokens.AccessToken, cause: common.ErrTokenSignatureInvalid},
		{name: "expired", token: expired, cause: common.ErrTokenExpired},
		{name: "unknown user", token: ghost, cause: common.ErrorNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.svc.Refresh(ctx, tt.token)
			require.ErrorIs(t, err, common.ErrorUnauthorized)
			if tt.cause != nil {
				assert.ErrorIs(t, err, tt.cause)
			}
		})
	}

	_, err = env.svc.Refresh(ctx, sess.Tokens.RefreshToken)
	assert.NoError(t, err, "rejected attempts must not disturb the live token")
}

func TestRefresh_ConcurrentSingleWinner(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.register(t, "alice", "alice@example.com", "s3cret!")
	sess, err := env.svc.Login(ctx, "alice", "s3cret!")
	require.NoError(t, err)

	const callers = 16
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		winners []*TokenPair
		losers  int
	)
	start := make(chan struct{})
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			pair, err := env.svc.Refresh(ctx, sess.Tokens.RefreshToken)
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				winners = append(winners, pair)
				return
			}
			if errors.Is(err, common.ErrorUnauthorized) {
				losers++
			}
		}()
	}
	close(start)
	wg.Wait()

	require.Len(t, winners, 1)
	assert.Equal(t, callers-1, losers)

	stored := env.storedRefreshToken(t, sess.Profile.ID)
	require.NotNil(t, stored)
	assert.Equal(t, winners[0].RefreshToken, *stored)
}

func TestLogout(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.register(t, "alice", "alice@example.com", "s3cret!")
	sess, err := env.svc.Login(ctx, "alice", "s3cret!")
	require.NoError(t, err)

	require.NoError(t, env.svc.Logout(ctx, sess.Profile.ID))
	assert.Nil(t, env.storedRefreshToken(t, sess.Profile.ID))

	_, err = env.svc.Refresh(ctx, sess.Tokens.RefreshToken)
	require.ErrorIs(t, err, common.ErrorUnauthorized)
	assert.ErrorIs(t, err, common.ErrRefreshTokenReused)

	require.NoError(t, env.svc.Logout(ctx, sess.Profile.ID), "logout is idempotent")
	assert.ErrorIs(t, env.svc.Logout(ctx, "missing"), common.ErrorNotFound)
	assert.Equal(t, 2, env.events.count(EventLogout+"/success"))
}

func TestChangePassword(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.register(t, "alice", "alice@example.com", "s3cret!")
	sess, err := env.svc.Login(ctx, "alice", "s3cret!")
	require.NoError(t, err)
	id := sess.Profile.ID

	err = env.svc.ChangePassword(ctx, id, "wrong", "n3w!")
	require.ErrorIs(t, err, common.ErrorUnauthorized)
	assert.ErrorIs(t, err, common.ErrorInvalidCredentials)
	assert.NotNil(t, env.storedRefreshToken(t, id), "a rejected change keeps the session")

	assert.ErrorIs(t, env.svc.ChangePassword(ctx, id, "s3cret!", ""), common.ErrorValidation)
	assert.ErrorIs(t, env.svc.ChangePassword(ctx, "missing", "a", "b"), common.ErrorNotFound)

	require.NoError(t, env.svc.ChangePassword(ctx, id, "s3cret!", "n3w!"))
	assert.Nil(t, env.storedRefreshToken(t, id), "password change ends the session")

	_, err = env.svc.Refresh(ctx, sess.Tokens.RefreshToken)
	assert.ErrorIs(t, err, common.ErrorUnauthorized)

	_, err = env.svc.Login(ctx, "alice", "s3cret!")
	assert.ErrorIs(t, err, common.ErrorInvalidCredentials)
	_, err = env.svc.Login(ctx, "alice", "n3w!")
	assert.NoError(t, err)
}

func TestAuthenticate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.register(t, "alice", "alice@example.com", "s3cret!")
	sess, err := env.svc.Login(ctx, "alice", "s3cret!")
	require.NoError(t, err)

	_, err = env.svc.Authenticate(ctx, "")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)

	_, err = env.svc.Authenticate(ctx, sess.Tokens.RefreshToken)
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
	assert.NotErrorIs(t, err, common.ErrTokenExpired)

	expired, err := auth.GenerateToken(auth.KindAccess, sess.Profile.ID, []byte("access-secret"), -time.Second)
	require.NoError(t, err)
	_, err = env.svc.Authenticate(ctx, expired)
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
	assert.ErrorIs(t, err, common.ErrTokenExpired)

	for bit := 0; bit < 2; bit++ {
		b := []byte(sess.Tokens.AccessToken)
		b[len(b)-1] ^= 1 << bit
		_, err = env.svc.Authenticate(ctx, string(b))
		assert.ErrorIs(t, err, common.ErrTokenSignatureInvalid, "bit %d", bit)
	}
}

func flipLastBit(token string) string {
	b := []byte(token)
	b[len(b)-1] ^= 1
	return string(b)
}
