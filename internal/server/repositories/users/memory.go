package users

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/accountkeeper/internal/common"
	"github.com/dmitrijs2005/accountkeeper/internal/server/models"
)

// MemoryRepository keeps users in a map. It is test support that lets the
// service and transport tests run without PostgreSQL. Every method holds the
// lock for its whole read-compare-write, which gives the swap methods the
// same all-or-nothing behaviour as a conditional UPDATE.
type MemoryRepository struct {
	mu    sync.Mutex
	users map[string]*models.User
	now   func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		users: make(map[string]*models.User),
		now:   time.Now,
	}
}

func (r *MemoryRepository) Create(_ context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.UserName == user.UserName {
			return nil, fmt.Errorf("%w: users_username_key", common.ErrorConflict)
		}
		if u.Email == user.Email {
			return nil, fmt.Errorf("%w: users_email_key", common.ErrorConflict)
		}
	}

	user.ID = uuid.NewString()
	user.CreatedAt = r.now()
	user.UpdatedAt = user.CreatedAt
	r.users[user.ID] = clone(user)
	return user, nil
}

func (r *MemoryRepository) Exists(_ context.Context, username, email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if (username != "" && u.UserName == username) || (email != "" && u.Email == email) {
			return true, nil
		}
	}
	return false, nil
}

func (r *MemoryRepository) GetByIdentifier(_ context.Context, identifier string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.UserName == identifier || u.Email == identifier {
			return clone(u), nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *MemoryRepository) GetByID(_ context.Context, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return clone(u), nil
}

func (r *MemoryRepository) SetRefreshToken(_ context.Context, id string, token *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return common.ErrorNotFound
	}
	u.RefreshToken = copyString(token)
	u.UpdatedAt = r.now()
	return nil
}

func (r *MemoryRepository) SwapRefreshToken(_ context.Context, id, current, next string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok || u.RefreshToken == nil || *u.RefreshToken != current {
		return false, nil
	}
	u.RefreshToken = &next
	u.UpdatedAt = r.now()
	return true, nil
}

func (r *MemoryRepository) SwapPasswordHash(_ context.Context, id, current, next string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok || u.PasswordHash != current {
		return false, nil
	}
	u.PasswordHash = next
	u.RefreshToken = nil
	u.UpdatedAt = r.now()
	return true, nil
}

func (r *MemoryRepository) UpdateDetails(_ context.Context, id string, fullName, email *string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	if email != nil {
		for otherID, other := range r.users {
			if otherID != id && other.Email == *email {
				return nil, fmt.Errorf("%w: users_email_key", common.ErrorConflict)
			}
		}
		u.Email = *email
	}
	if fullName != nil {
		u.FullName = *fullName
	}
	u.UpdatedAt = r.now()
	return clone(u), nil
}

func (r *MemoryRepository) SetImageKey(_ context.Context, id string, kind models.ImageKind, key string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	switch kind {
	case models.ImageAvatar:
		u.AvatarKey = key
	case models.ImageCover:
		u.CoverImageKey = key
	default:
		return nil, fmt.Errorf("unknown image kind %q", kind)
	}
	u.UpdatedAt = r.now()
	return clone(u), nil
}

func clone(u *models.User) *models.User {
	c := *u
	c.RefreshToken = copyString(u.RefreshToken)
	return &c
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
