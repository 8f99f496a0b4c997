package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/dmitrijs2005/accountkeeper/internal/filex"
)

// SessionFileName is the file kept inside the session directory.
const SessionFileName = "session.json"

// Session is the token pair of a logged-in user.
type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

func (s Session) Empty() bool { return s.AccessToken == "" && s.RefreshToken == "" }

// SessionStore persists the session between CLI runs. Load returns an empty
// Session when nothing is stored.
type SessionStore interface {
	Load() (Session, error)
	Save(Session) error
	Clear() error
}

// FileSessionStore keeps the session as JSON in a 0600 file.
type FileSessionStore struct {
	path string
}

// NewFileSessionStore creates dir if needed and stores the session in it.
func NewFileSessionStore(dir string) (*FileSessionStore, error) {
	path, err := filex.EnsureDir(filepath.Dir(dir), filepath.Base(dir))
	if err != nil {
		return nil, err
	}
	return &FileSessionStore{path: filepath.Join(path, SessionFileName)}, nil
}

func (f *FileSessionStore) Load() (Session, error) {
	var s Session
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("read session: %w", err)
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return Session{}, fmt.Errorf("decode session: %w", err)
	}
	return s, nil
}

func (f *FileSessionStore) Save(s Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return filex.WritePrivateFile(f.path, data)
}

func (f *FileSessionStore) Clear() error {
	if err := os.Remove(f.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove session: %w", err)
	}
	return nil
}

// MemorySessionStore keeps the session for the lifetime of the process.
type MemorySessionStore struct {
	mu sync.Mutex
	s  Session
}

func (m *MemorySessionStore) Load() (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.s, nil
}

func (m *MemorySessionStore) Save(s Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.s = s
	return nil
}

func (m *MemorySessionStore) Clear() error {
	return m.Save(Session{})
}
