package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/accountkeeper/internal/client/client"
	"github.com/dmitrijs2005/accountkeeper/internal/client/config"
	pb "github.com/dmitrijs2005/accountkeeper/internal/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	loggedIn bool
	user     *pb.User
	err      error

	closed     bool
	register   client.RegisterInput
	identifier string
	password   string
	oldPw      string
	newPw      string
	fullName   *string
	email      *string
	image      []byte
	calls      []string
}

func (f *fakeClient) Close() error   { f.closed = true; return nil }
func (f *fakeClient) LoggedIn() bool { return f.loggedIn }
func (f *fakeClient) Ping(context.Context) error {
	return f.err
}
func (f *fakeClient) Register(_ context.Context, in client.RegisterInput) (*pb.User, error) {
	f.register = in
	return f.user, f.err
}
func (f *fakeClient) Login(_ context.Context, identifier, password string) (*pb.User, error) {
	f.identifier, f.password = identifier, password
	if f.err != nil {
		return nil, f.err
	}
	f.loggedIn = true
	return f.user, nil
}
func (f *fakeClient) Refresh(context.Context) error {
	f.calls = append(f.calls, "refresh")
	return f.err
}
func (f *fakeClient) Logout(context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return f.err
}
func (f *fakeClient) ChangePassword(_ context.Context, oldPw, newPw string) error {
	f.oldPw, f.newPw = oldPw, newPw
	return f.err
}
func (f *fakeClient) CurrentUser(ctx context.Context) (*pb.User, error) {
	if _, ok := ctx.Deadline(); !ok {
		return nil, errors.New("no deadline")
	}
	return f.user, f.err
}
func (f *fakeClient) UpdateAccountDetails(_ context.Context, fullName, email *string) (*pb.User, error) {
	f.fullName, f.email = fullName, email
	return f.user, f.err
}
func (f *fakeClient) UpdateAvatar(_ context.Context, image []byte) (*pb.User, error) {
	f.calls = append(f.calls, "avatar")
	f.image = image
	return f.user, f.err
}
func (f *fakeClient) UpdateCoverImage(_ context.Context, image []byte) (*pb.User, error) {
	f.calls = append(f.calls, "cover")
	f.image = image
	return f.user, f.err
}

var testUser = &pb.User{Id: "u1", Username: "alice", Email: "alice@example.com", FullName: "Alice", Avatar: "https://img.test/a"}

func newTestApp(t *testing.T, fc *fakeClient, input string) (*App, *bytes.Buffer) {
	t.Helper()

	passwords := []string{"old-pw", "new-pw"}
	origPw, origRead := getPassword, readFile
	getPassword = func(string, io.Writer) ([]byte, error) {
		p := passwords[0]
		passwords = passwords[1:]
		return []byte(p), nil
	}
	readFile = func(name string) ([]byte, error) {
		if name == "missing.png" {
			return nil, errors.New("no such file")
		}
		return []byte("data:" + name), nil
	}
	t.Cleanup(func() { getPassword, readFile = origPw, origRead })

	var out bytes.Buffer
	cfg := &config.Config{RequestTimeout: time.Second}
	return newApp(cfg, fc, strings.NewReader(input), &out), &out
}

func TestRegister(t *testing.T) {
	fc := &fakeClient{user: testUser}
	app, out := newTestApp(t, fc, "alice\nalice@example.com\nAlice A\navatar.png\ncover.png\n")

	require.NoError(t, app.Register(context.Background()))
	assert.Equal(t, client.RegisterInput{
		Username:   "alice",
		Email:      "alice@example.com",
		FullName:   "Alice A",
		Password:   "old-pw",
		Avatar:     []byte("data:avatar.png"),
		CoverImage: []byte("data:cover.png"),
	}, fc.register)
	assert.Contains(t, out.String(), "Registered alice")
}

func TestRegister_OptionalCoverAndMissingAvatar(t *testing.T) {
	fc := &fakeClient{user: testUser}
	app, _ := newTestApp(t, fc, "alice\na@b.c\nA\navatar.png\n\n")
	require.NoError(t, app.Register(context.Background()))
	assert.Nil(t, fc.register.CoverImage)

	app2, _ := newTestApp(t, &fakeClient{}, "alice\na@b.c\nA\nmissing.png\n")
	err := app2.Register(context.Background())
	assert.ErrorContains(t, err, "read avatar")
}

func TestLogin(t *testing.T) {
	fc := &fakeClient{user: testUser}
	app, out := newTestApp(t, fc, "alice@example.com\n")

	require.NoError(t, app.Login(context.Background()))
	assert.Equal(t, "alice@example.com", fc.identifier)
	assert.Equal(t, "old-pw", fc.password)
	assert.Equal(t, "(alice)", app.status())
	assert.Contains(t, out.String(), "Login successful")
}

func TestLogin_WrongCredentials(t *testing.T) {
	app, _ := newTestApp(t, &fakeClient{err: client.ErrUnauthorized}, "alice\n")
	err := app.Login(context.Background())
	assert.EqualError(t, err, "wrong username, email or password")
	assert.Equal(t, "", app.status())
}

func TestUpdate(t *testing.T) {
	fc := &fakeClient{user: testUser, loggedIn: true}
	app, _ := newTestApp(t, fc, "\nnew@example.com\n")
	require.NoError(t, app.Update(context.Background()))
	assert.Nil(t, fc.fullName)
	require.NotNil(t, fc.email)
	assert.Equal(t, "new@example.com", *fc.email)

	fc2 := &fakeClient{user: testUser, loggedIn: true}
	app2, out := newTestApp(t, fc2, "\n\n")
	require.NoError(t, app2.Update(context.Background()))
	assert.Contains(t, out.String(), "Nothing to update")
}

func TestImages(t *testing.T) {
	fc := &fakeClient{user: testUser, loggedIn: true}
	app, _ := newTestApp(t, fc, "a.png\nc.png\nmissing.png\n")

	require.NoError(t, app.Avatar(context.Background()))
	assert.Equal(t, []byte("data:a.png"), fc.image)
	require.NoError(t, app.Cover(context.Background()))
	assert.Equal(t, []byte("data:c.png"), fc.image)
	assert.Error(t, app.Avatar(context.Background()))
	assert.Equal(t, []string{"avatar", "cover"}, fc.calls)
}

func TestPasswdRefreshLogout(t *testing.T) {
	fc := &fakeClient{user: testUser, loggedIn: true}
	app, out := newTestApp(t, fc, "")
	app.user = "alice"

	require.NoError(t, app.Passwd(context.Background()))
	assert.Equal(t, "old-pw", fc.oldPw)
	assert.Equal(t, "new-pw", fc.newPw)
	assert.Equal(t, "", app.user)

	require.NoError(t, app.Refresh(context.Background()))
	require.NoError(t, app.Logout(context.Background()))
	assert.Equal(t, []string{"refresh", "logout"}, fc.calls)
	assert.Contains(t, out.String(), "Logged out")
}

func TestRun_RestoresSessionAndCloses(t *testing.T) {
	captureOutput(t)
	fc := &fakeClient{user: testUser, loggedIn: true}
	app, out := newTestApp(t, fc, "exit\n")

	app.Run(context.Background())

	assert.True(t, fc.closed)
	assert.Contains(t, out.String(), "Username:  alice")
}

func TestRun_StaleSession(t *testing.T) {
	captureOutput(t)
	fc := &fakeClient{loggedIn: true, err: client.ErrUnauthorized}
	app, out := newTestApp(t, fc, "")

	app.Run(context.Background())

	assert.Contains(t, out.String(), "Saved session is no longer valid")
}

func TestDownload(t *testing.T) {
	fc := &fakeClient{user: testUser, loggedIn: true}
	dest := filepath.Join(t.TempDir(), "me.png")
	app, out := newTestApp(t, fc, "avatar\n"+dest+"\ncover\n"+dest+"\nbanner\n")

	var gotURL string
	origDownload := download
	download = func(_ context.Context, url string, _ int64) ([]byte, error) {
		gotURL = url
		return []byte("png-bytes"), nil
	}
	t.Cleanup(func() { download = origDownload })

	require.NoError(t, app.Download(context.Background()))
	assert.Equal(t, testUser.Avatar, gotURL)
	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))
	assert.Contains(t, out.String(), "Saved 9 bytes")

	assert.ErrorContains(t, app.Download(context.Background()), "no cover image set")
	assert.ErrorContains(t, app.Download(context.Background()), "unknown image")
}
