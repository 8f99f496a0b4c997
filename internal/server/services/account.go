package services

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"github.com/dmitrijs2005/accountkeeper/internal/common"
	"github.com/dmitrijs2005/accountkeeper/internal/dbx"
	"github.com/dmitrijs2005/accountkeeper/internal/server/models"
)

// RegisterInput carries the fields of a new account. CoverImage is optional.
type RegisterInput struct {
	UserName   string
	Email      string
	FullName   string
	Password   string
	Avatar     []byte
	CoverImage []byte
}

// Register creates an account. Images are uploaded first and removed again
// if the row cannot be created.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*models.Profile, error) {
	user, err := s.validateRegistration(in)
	if err != nil {
		return nil, err
	}

	repo := s.repomanager.Users(s.db)
	exists, err := repo.Exists(ctx, user.UserName, user.Email)
	if err != nil {
		return nil, s.internal(ctx, "check existing user", err)
	}
	if exists {
		return nil, common.ErrorConflict
	}

	user.PasswordHash, err = s.hasher.Hash(in.Password)
	if err != nil {
		return nil, s.internal(ctx, "hash password", err)
	}

	user.AvatarKey, err = s.images.Put(ctx, models.ImageAvatar, in.Avatar)
	if err != nil {
		return nil, s.imageError(ctx, err)
	}
	if len(in.CoverImage) > 0 {
		user.CoverImageKey, err = s.images.Put(ctx, models.ImageCover, in.CoverImage)
		if err != nil {
			s.discard(ctx, user.AvatarKey)
			return nil, s.imageError(ctx, err)
		}
	}

	created, err := repo.Create(ctx, user)
	if err != nil {
		s.discard(ctx, user.AvatarKey, user.CoverImageKey)
		if errors.Is(err, common.ErrorConflict) {
			return nil, common.ErrorConflict
		}
		return nil, s.internal(ctx, "create user", err)
	}

	profile, err := s.profile(ctx, created)
	if err != nil {
		return nil, s.internal(ctx, "build profile", err, "user_id", created.ID)
	}

	s.log.Info(ctx, "user registered", "user_id", created.ID)
	return profile, nil
}

// GetCurrentUser returns the profile of userID.
func (s *UserService) GetCurrentUser(ctx context.Context, userID string) (*models.Profile, error) {
	user, err := s.repomanager.Users(s.db).GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, s.internal(ctx, "load user", err, "user_id", userID)
	}

	profile, err := s.profile(ctx, user)
	if err != nil {
		return nil, s.internal(ctx, "build profile", err, "user_id", userID)
	}
	return profile, nil
}

// UpdateAccountDetails changes the full name and/or email. At least one must
// be given. The email uniqueness check and the update share a transaction.
func (s *UserService) UpdateAccountDetails(ctx context.Context, userID string, fullName, email *string) (*models.Profile, error) {
	if fullName != nil {
		v := strings.TrimSpace(*fullName)
		if v == "" {
			fullName = nil
		} else {
			fullName = &v
		}
	}
	if email != nil {
		v := normalize(*email)
		if v == "" {
			email = nil
		} else {
			if err := validateEmail(v); err != nil {
				return nil, err
			}
			email = &v
		}
	}
	if fullName == nil && email == nil {
		return nil, common.NewValidationError("fullName", "or email is required")
	}

	var updated *models.User
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		current, err := repo.GetByID(ctx, userID)
		if err != nil {
			return err
		}
		if email != nil && *email != current.Email {
			taken, err := repo.Exists(ctx, "", *email)
			if err != nil {
				return err
			}
			if taken {
				return common.ErrorConflict
			}
		}

		updated, err = repo.UpdateDetails(ctx, userID, fullName, email)
		return err
	})
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorNotFound):
			return nil, common.ErrorNotFound
		case errors.Is(err, common.ErrorConflict):
			return nil, common.ErrorConflict
		}
		return nil, s.internal(ctx, "update account details", err, "user_id", userID)
	}

	profile, err := s.profile(ctx, updated)
	if err != nil {
		return nil, s.internal(ctx, "build profile", err, "user_id", userID)
	}
	return profile, nil
}

// UpdateAvatar replaces the avatar image.
func (s *UserService) UpdateAvatar(ctx context.Context, userID string, image []byte) (*models.Profile, error) {
	return s.updateImage(ctx, userID, models.ImageAvatar, image)
}

// UpdateCoverImage replaces the cover image.
func (s *UserService) UpdateCoverImage(ctx context.Context, userID string, image []byte) (*models.Profile, error) {
	return s.updateImage(ctx, userID, models.ImageCover, image)
}

// updateImage uploads the new object, swaps the key in a transaction and
// deletes the previous object once the swap is committed.
func (s *UserService) updateImage(ctx context.Context, userID string, kind models.ImageKind, image []byte) (*models.Profile, error) {
	key, err := s.images.Put(ctx, kind, image)
	if err != nil {
		return nil, s.imageError(ctx, err)
	}

	var previous string
	var updated *models.User
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		current, err := repo.GetByID(ctx, userID)
		if err != nil {
			return err
		}
		previous = current.AvatarKey
		if kind == models.ImageCover {
			previous = current.CoverImageKey
		}

		updated, err = repo.SetImageKey(ctx, userID, kind, key)
		return err
	})
	if err != nil {
		s.discard(ctx, key)
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, s.internal(ctx, "update "+string(kind), err, "user_id", userID)
	}

	s.discard(ctx, previous)

	profile, err := s.profile(ctx, updated)
	if err != nil {
		return nil, s.internal(ctx, "build profile", err, "user_id", userID)
	}
	return profile, nil
}

// profile projects user to its public view with presigned image URLs.
func (s *UserService) profile(ctx context.Context, user *models.User) (*models.Profile, error) {
	avatar, err := s.images.URL(ctx, user.AvatarKey)
	if err != nil {
		return nil, err
	}
	cover, err := s.images.URL(ctx, user.CoverImageKey)
	if err != nil {
		return nil, err
	}
	return &models.Profile{
		ID:            user.ID,
		UserName:      user.UserName,
		Email:         user.Email,
		FullName:      user.FullName,
		AvatarURL:     avatar,
		CoverImageURL: cover,
		CreatedAt:     user.CreatedAt,
		UpdatedAt:     user.UpdatedAt,
	}, nil
}

// discard deletes objects that are no longer referenced. Failures only leave
// an orphaned object behind, so they are logged and otherwise ignored.
func (s *UserService) discard(ctx context.Context, keys ...string) {
	for _, key := range keys {
		if key == "" {
			continue
		}
		if err := s.images.Delete(ctx, key); err != nil {
			s.log.Warn(ctx, "delete image failed", "key", key, "error", err)
		}
	}
}

func (s *UserService) imageError(ctx context.Context, err error) error {
	if errors.Is(err, common.ErrorValidation) {
		return err
	}
	return s.internal(ctx, "upload image", err)
}

func (s *UserService) validateRegistration(in RegisterInput) (*models.User, error) {
	user := &models.User{
		UserName: normalize(in.UserName),
		Email:    normalize(in.Email),
		FullName: strings.TrimSpace(in.FullName),
	}

	switch {
	case user.UserName == "":
		return nil, common.NewValidationError("username", "is required")
	case strings.Contains(user.UserName, "@"):
		return nil, common.NewValidationError("username", "must not contain @")
	case user.Email == "":
		return nil, common.NewValidationError("email", "is required")
	case user.FullName == "":
		return nil, common.NewValidationError("fullName", "is required")
	case strings.TrimSpace(in.Password) == "":
		return nil, common.NewValidationError("password", "is required")
	case len(in.Avatar) == 0:
		return nil, common.NewValidationError("avatar", "is required")
	}
	if err := validateEmail(user.Email); err != nil {
		return nil, err
	}
	return user, nil
}

// normalize trims and lower-cases usernames and emails.
func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func validateEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return common.NewValidationError("email", "is invalid")
	}
	return nil
}
