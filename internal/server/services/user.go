// Package services contains the server-side business logic. UserService owns
// the account lifecycle: registration, the login/refresh/logout session state
// machine, password changes and profile updates.
package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/accountkeeper/internal/common"
	"github.com/dmitrijs2005/accountkeeper/internal/dbx"
	"github.com/dmitrijs2005/accountkeeper/internal/logging"
	"github.com/dmitrijs2005/accountkeeper/internal/server/auth"
	"github.com/dmitrijs2005/accountkeeper/internal/server/metrics"
	"github.com/dmitrijs2005/accountkeeper/internal/server/models"
	"github.com/dmitrijs2005/accountkeeper/internal/server/repositories/repomanager"
)

// Session event names reported to the EventRecorder.
const (
	EventLogin          = "login"
	EventRefresh        = "refresh"
	EventLogout         = "logout"
	EventChangePassword = "change_password"
)

// TokenCodec issues and verifies signed tokens. *auth.Codec implements it.
type TokenCodec interface {
	Verify(kind auth.Kind, token string) (string, error)
	IssuePair(userID string) (access, refresh string, err error)
}

// PasswordHasher is implemented by *password.Hasher.
type PasswordHasher interface {
	Hash(secret string) (string, error)
	Verify(secret, digest string) (bool, error)
}

// ImageStore is implemented by *images.S3Store.
type ImageStore interface {
	Put(ctx context.Context, kind models.ImageKind, data []byte) (string, error)
	URL(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
}

// EventRecorder counts session operations. *metrics.Collector implements it.
type EventRecorder interface {
	SessionEvent(event, outcome string)
}

type nopRecorder struct{}

func (nopRecorder) SessionEvent(string, string) {}

// TokenPair bundles a short-lived access token and a long-lived refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// Session is the result of a successful login.
type Session struct {
	Tokens  TokenPair
	Profile *models.Profile
}

type UserService struct {
	db          dbx.DB
	repomanager repomanager.RepositoryManager
	tokens      TokenCodec
	hasher      PasswordHasher
	images      ImageStore
	events      EventRecorder
	log         logging.Logger
}

func NewUserService(db dbx.DB, m repomanager.RepositoryManager, tokens TokenCodec, hasher PasswordHasher, images ImageStore, log logging.Logger) *UserService {
	if log == nil {
		log = logging.Nop{}
	}
	return &UserService{
		db:          db,
		repomanager: m,
		tokens:      tokens,
		hasher:      hasher,
		images:      images,
		events:      nopRecorder{},
		log:         log.With("module", "user_service"),
	}
}

// WithEvents sets the recorder for session events and returns s.
func (s *UserService) WithEvents(e EventRecorder) *UserService {
	if e != nil {
		s.events = e
	}
	return s
}

// Login authenticates by username or email. An unknown identifier yields
// common.ErrorNotFound, a wrong password common.ErrorInvalidCredentials. On
// success the new refresh token replaces whatever was stored before, which
// ends any other open session of the user.
func (s *UserService) Login(ctx context.Context, identifier, secret string) (sess *Session, err error) {
	defer func() { s.record(EventLogin, err) }()

	identifier = normalize(identifier)
	if identifier == "" {
		return nil, common.NewValidationError("username", "username or email is required")
	}
	if secret == "" {
		return nil, common.NewValidationError("password", "is required")
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.log.Info(ctx, "login for unknown identifier")
			return nil, common.ErrorNotFound
		}
		return nil, s.internal(ctx, "load user", err)
	}

	ok, err := s.hasher.Verify(secret, user.PasswordHash)
	if err != nil {
		return nil, s.internal(ctx, "verify password", err, "user_id", user.ID)
	}
	if !ok {
		s.log.Info(ctx, "login with wrong password", "user_id", user.ID)
		return nil, common.ErrorInvalidCredentials
	}

	profile, err := s.profile(ctx, user)
	if err != nil {
		return nil, s.internal(ctx, "build profile", err, "user_id", user.ID)
	}

	access, refresh, err := s.tokens.IssuePair(user.ID)
	if err != nil {
		return nil, s.internal(ctx, "issue tokens", err, "user_id", user.ID)
	}

	if err := repo.SetRefreshToken(ctx, user.ID, &refresh); err != nil {
		return nil, s.internal(ctx, "store refresh token", err, "user_id", user.ID)
	}

	s.log.Info(ctx, "user logged in", "user_id", user.ID)
	return &Session{
		Tokens:  TokenPair{AccessToken: access, RefreshToken: refresh},
		Profile: profile,
	}, nil
}

// Refresh rotates a refresh token. The presented token must be the one
// currently stored for its user; the swap to the new token is conditional on
// that, so of two concurrent calls with the same token only one succeeds.
// Every failure is common.ErrorUnauthorized, wrapping the cause.
func (s *UserService) Refresh(ctx context.Context, presented string) (pair *TokenPair, err error) {
	defer func() { s.record(EventRefresh, err) }()

	if presented == "" {
		return nil, common.ErrorUnauthorized
	}

	userID, err := s.tokens.Verify(auth.KindRefresh, presented)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrorUnauthorized, err)
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, fmt.Errorf("%w: %w", common.ErrorUnauthorized, err)
		}
		return nil, s.internal(ctx, "load user", err, "user_id", userID)
	}

	if user.RefreshToken == nil || subtle.ConstantTimeCompare([]byte(*user.RefreshToken), []byte(presented)) != 1 {
		s.log.Warn(ctx, "stale refresh token presented", "user_id", userID)
		return nil, fmt.Errorf("%w: %w", common.ErrorUnauthorized, common.ErrRefreshTokenReused)
	}

	access, refresh, err := s.tokens.IssuePair(userID)
	if err != nil {
		return nil, s.internal(ctx, "issue tokens", err, "user_id", userID)
	}

	swapped, err := repo.SwapRefreshToken(ctx, userID, presented, refresh)
	if err != nil {
		return nil, s.internal(ctx, "rotate refresh token", err, "user_id", userID)
	}
	if !swapped {
		s.log.Warn(ctx, "refresh token rotated concurrently", "user_id", userID)
		return nil, fmt.Errorf("%w: %w", common.ErrorUnauthorized, common.ErrRefreshTokenReused)
	}

	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// Logout clears the stored refresh token. Logging out twice is not an error.
func (s *UserService) Logout(ctx context.Context, userID string) (err error) {
	defer func() { s.record(EventLogout, err) }()

	if err := s.repomanager.Users(s.db).SetRefreshToken(ctx, userID, nil); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return s.internal(ctx, "clear refresh token", err, "user_id", userID)
	}

	s.log.Info(ctx, "user logged out", "user_id", userID)
	return nil
}

// ChangePassword replaces the password after checking the old one. The stored
// refresh token is cleared in the same write, so every session has to log in
// again.
func (s *UserService) ChangePassword(ctx context.Context, userID, oldSecret, newSecret string) (err error) {
	defer func() { s.record(EventChangePassword, err) }()

	if oldSecret == "" {
		return common.NewValidationError("oldPassword", "is required")
	}
	if newSecret == "" {
		return common.NewValidationError("newPassword", "is required")
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return s.internal(ctx, "load user", err, "user_id", userID)
	}

	ok, err := s.hasher.Verify(oldSecret, user.PasswordHash)
	if err != nil {
		return s.internal(ctx, "verify password", err, "user_id", userID)
	}
	if !ok {
		return fmt.Errorf("%w: %w", common.ErrorUnauthorized, common.ErrorInvalidCredentials)
	}

	digest, err := s.hasher.Hash(newSecret)
	if err != nil {
		return s.internal(ctx, "hash password", err, "user_id", userID)
	}

	swapped, err := repo.SwapPasswordHash(ctx, userID, user.PasswordHash, digest)
	if err != nil {
		return s.internal(ctx, "store password", err, "user_id", userID)
	}
	if !swapped {
		return fmt.Errorf("%w: password changed concurrently", common.ErrorUnauthorized)
	}

	s.log.Info(ctx, "password changed", "user_id", userID)
	return nil
}

// Authenticate verifies an access token and returns its user id. Expired
// tokens wrap common.ErrTokenExpired so callers can tell them apart; all
// failures wrap common.ErrorUnauthorized.
func (s *UserService) Authenticate(_ context.Context, accessToken string) (string, error) {
	if accessToken == "" {
		return "", common.ErrorUnauthorized
	}
	userID, err := s.tokens.Verify(auth.KindAccess, accessToken)
	if err != nil {
		return "", fmt.Errorf("%w: %w", common.ErrorUnauthorized, err)
	}
	return userID, nil
}

func (s *UserService) record(event string, err error) {
	outcome := metrics.OutcomeSuccess
	if err != nil {
		outcome = metrics.OutcomeFailure
	}
	s.events.SessionEvent(event, outcome)
}

// internal logs err and returns it wrapped in common.ErrorInternal.
func (s *UserService) internal(ctx context.Context, op string, err error, args ...any) error {
	s.log.Error(ctx, op+" failed", append(args, "error", err)...)
	return fmt.Errorf("%w: %s: %v", common.ErrorInternal, op, err)
}
