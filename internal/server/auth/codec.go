package auth

import (
	"errors"
	"fmt"
	"time"
)

// Codec binds each token kind to its own secret and lifetime.
type Codec struct {
	secrets map[Kind][]byte
	ttls    map[Kind]time.Duration
	now     func() time.Time
}

// NewCodec returns a Codec. The secrets must be non-empty and different, the
// lifetimes positive.
func NewCodec(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) (*Codec, error) {
	switch {
	case accessSecret == "" || refreshSecret == "":
		return nil, errors.New("token secrets must not be empty")
	case accessSecret == refreshSecret:
		return nil, errors.New("access and refresh secrets must differ")
	case accessTTL <= 0 || refreshTTL <= 0:
		return nil, errors.New("token lifetimes must be positive")
	}

	return &Codec{
		secrets: map[Kind][]byte{
			KindAccess:  []byte(accessSecret),
			KindRefresh: []byte(refreshSecret),
		},
		ttls: map[Kind]time.Duration{
			KindAccess:  accessTTL,
			KindRefresh: refreshTTL,
		},
		now: time.Now,
	}, nil
}

// Issue signs a token of kind for userID.
func (c *Codec) Issue(kind Kind, userID string) (string, error) {
	secret, ok := c.secrets[kind]
	if !ok {
		return "", fmt.Errorf("unknown token kind %q", kind)
	}
	return generateToken(kind, userID, secret, c.ttls[kind], c.now())
}

// Verify checks a token of kind and returns its principal id.
func (c *Codec) Verify(kind Kind, token string) (string, error) {
	secret, ok := c.secrets[kind]
	if !ok {
		return "", fmt.Errorf("unknown token kind %q", kind)
	}
	return parseToken(kind, token, secret, c.now)
}

// IssuePair signs a fresh access token and refresh token for userID.
func (c *Codec) IssuePair(userID string) (access, refresh string, err error) {
	access, err = c.Issue(KindAccess, userID)
	if err != nil {
		return "", "", err
	}
	refresh, err = c.Issue(KindRefresh, userID)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

// AccessTTL is the lifetime of issued access tokens.
func (c *Codec) AccessTTL() time.Duration { return c.ttls[KindAccess] }
