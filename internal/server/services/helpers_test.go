package services

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alexedwards/argon2id"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/accountkeeper/internal/server/auth"
	"github.com/dmitrijs2005/accountkeeper/internal/server/models"
	"github.com/dmitrijs2005/accountkeeper/internal/server/password"
	"github.com/dmitrijs2005/accountkeeper/internal/server/repositories/repomanager"
)

var pngImage = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

type fakeImages struct {
	mu      sync.Mutex
	n       int
	objects map[string][]byte
	deleted []string
	putErr  error
	urlErr  error
}

func newFakeImages() *fakeImages {
	return &fakeImages{objects: make(map[string][]byte)}
}

func (f *fakeImages) Put(_ context.Context, kind models.ImageKind, data []byte) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.putErr != nil {
		return "", f.putErr
	}
	f.n++
	key := fmt.Sprintf("%s/%d", kind, f.n)
	f.objects[key] = data
	return key, nil
}

func (f *fakeImages) URL(_ context.Context, key string) (string, error) {
	if f.urlErr != nil {
		return "", f.urlErr
	}
	if key == "" {
		return "", nil
	}
	return "https://img.test/" + key, nil
}

func (f *fakeImages) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.objects, key)
	f.deleted = append(f.deleted, key)
	return nil
}

type fakeRecorder struct {
	mu     sync.Mutex
	events map[string]int
}

func (f *fakeRecorder) SessionEvent(event, outcome string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.events == nil {
		f.events = make(map[string]int)
	}
	f.events[event+"/"+outcome]++
}

func (f *fakeRecorder) count(key string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.events[key]
}

type testEnv struct {
	svc    *UserService
	db     *sql.DB
	mock   sqlmock.Sqlmock
	rm     *repomanager.MemoryRepositoryManager
	codec  *auth.Codec
	images *fakeImages
	events *fakeRecorder
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	codec, err := auth.NewCodec("access-secret", "refresh-secret", 15*time.Minute, 240*time.Hour)
	require.NoError(t, err)

	env := &testEnv{
		db:     db,
		mock:   mock,
		rm:     repomanager.NewMemoryRepositoryManager(),
		codec:  codec,
		images: newFakeImages(),
		events: &fakeRecorder{},
	}
	hasher := password.NewHasher(&argon2id.Params{Memory: 1024, Iterations: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32})
	env.svc = NewUserService(db, env.rm, codec, hasher, env.images, nil).WithEvents(env.events)
	return env
}

func (e *testEnv) register(t *testing.T, username, email, secret string) *models.Profile {
	t.Helper()
	p, err := e.svc.Register(context.Background(), RegisterInput{
		UserName: username,
		Email:    email,
		FullName: "Test " + username,
		Password: secret,
		Avatar:   pngImage,
	})
	require.NoError(t, err)
	return p
}

func (e *testEnv) storedRefreshToken(t *testing.T, userID string) *string {
	t.Helper()
	u, err := e.rm.Users(e.db).GetByID(context.Background(), userID)
	require.NoError(t, err)
	return u.RefreshToken
}
