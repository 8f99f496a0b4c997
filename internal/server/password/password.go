// Package password hashes and verifies account passwords.
//
// New digests are argon2id PHC strings. bcrypt digests ($2a$, $2b$, $2y$)
// from imported accounts are still accepted by Verify.
package password

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexedwards/argon2id"
	"golang.org/x/crypto/bcrypt"
)

// ErrUnknownDigest is returned by Verify for a digest in no supported format.
var ErrUnknownDigest = errors.New("unknown password digest format")

type Hasher struct {
	params *argon2id.Params
}

// NewDefaultHasher uses argon2id.DefaultParams.
func NewDefaultHasher() *Hasher { return &Hasher{params: argon2id.DefaultParams} }

func NewHasher(p *argon2id.Params) *Hasher { return &Hasher{params: p} }

// Hash derives a digest with a fresh random salt. An empty secret is a
// programming error and panics; callers validate input first.
func (h *Hasher) Hash(secret string) (string, error) {
	if secret == "" {
		panic("password: hash of empty secret")
	}
	digest, err := argon2id.CreateHash(secret, h.params)
	if err != nil {
		return "", fmt.Errorf("argon2id: %w", err)
	}
	return digest, nil
}

// Verify reports whether secret matches digest. A mismatch is (false, nil);
// an unparseable digest is an error.
func (h *Hasher) Verify(secret, digest string) (bool, error) {
	switch {
	case strings.HasPrefix(digest, "$argon2id$"):
		ok, err := argon2id.ComparePasswordAndHash(secret, digest)
		if err != nil {
			return false, fmt.Errorf("argon2id: %w", err)
		}
		return ok, nil
	case isBcrypt(digest):
		err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(secret))
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		if err != nil {
			return false, fmt.Errorf("bcrypt: %w", err)
		}
		return true, nil
	default:
		return false, ErrUnknownDigest
	}
}

func isBcrypt(digest string) bool {
	for _, p := range []string{"$2a$", "$2b$", "$2y$"} {
		if strings.HasPrefix(digest, p) {
			return true
		}
	}
	return false
}
