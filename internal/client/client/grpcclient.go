package client

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/accountkeeper/internal/common"
	pb "github.com/dmitrijs2005/accountkeeper/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	conn   *grpc.ClientConn
	client pb.AccountServiceClient
	store  SessionStore

	mu      sync.Mutex
	session Session
}

// NewGRPCClient connects to target and restores the session saved in store.
// Extra dial options are appended after the defaults.
func NewGRPCClient(target string, store SessionStore, opts ...grpc.DialOption) (*GRPCClient, error) {
	session, err := store.Load()
	if err != nil {
		return nil, err
	}

	c := &GRPCClient{store: store, session: session}

	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.accessTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(target, dialOpts...)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.client = pb.NewAccountServiceClient(conn)
	return c, nil
}

func (c *GRPCClient) Close() error {
	return c.conn.Close()
}

func (c *GRPCClient) current() Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

func (c *GRPCClient) setSession(s Session) error {
	c.mu.Lock()
	c.session = s
	c.mu.Unlock()
	if s.Empty() {
		return c.store.Clear()
	}
	return c.store.Save(s)
}

func (c *GRPCClient) LoggedIn() bool {
	return !c.current().Empty()
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AccessTokenHeaderName, token)
	return metadata.NewOutgoingContext(ctx, md)
}

func isTokenExpired(err error) bool {
	st, ok := status.FromError(err)
	return ok && st.Code() == codes.Unauthenticated && st.Message() == common.ErrTokenExpired.Error()
}

func (c *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	session := c.current()
	if session.AccessToken != "" {
		ctx = withAccessToken(ctx, session.AccessToken)
	}

	err := invoker(ctx, method, req, reply, cc, opts...)
	if err == nil || !isTokenExpired(err) || session.RefreshToken == "" {
		return err
	}

	if rerr := c.refresh(ctx, session.RefreshToken); rerr != nil {
		return rerr
	}

	ctx = withAccessToken(ctx, c.current().AccessToken)
	return invoker(ctx, method, req, reply, cc, opts...)
}

// refresh rotates the token pair. A rejected refresh token ends the session.
func (c *GRPCClient) refresh(ctx context.Context, refreshToken string) error {
	resp, err := c.client.RefreshToken(ctx, &pb.RefreshTokenRequest{RefreshToken: refreshToken})
	if err != nil {
		if status.Code(err) == codes.Unauthenticated {
			if cerr := c.setSession(Session{}); cerr != nil {
				return cerr
			}
		}
		return mapError(err)
	}
	return c.setSession(Session{AccessToken: resp.AccessToken, RefreshToken: resp.RefreshToken})
}

func (c *GRPCClient) Ping(ctx context.Context) error {
	resp, err := c.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return mapError(err)
	}
	if resp.Status != "OK" {
		return ErrUnavailable
	}
	return nil
}

func (c *GRPCClient) Register(ctx context.Context, in RegisterInput) (*pb.User, error) {
	resp, err := c.client.RegisterUser(ctx, &pb.RegisterUserRequest{
		Username:   in.Username,
		Email:      in.Email,
		FullName:   in.FullName,
		Password:   in.Password,
		Avatar:     in.Avatar,
		CoverImage: in.CoverImage,
	})
	if err != nil {
		return nil, mapError(err)
	}
	return resp.User, nil
}

// Login accepts a username or, when identifier contains "@", an email.
func (c *GRPCClient) Login(ctx context.Context, identifier, password string) (*pb.User, error) {
	req := &pb.LoginRequest{Username: identifier, Password: password}
	if strings.Contains(identifier, "@") {
		req = &pb.LoginRequest{Email: identifier, Password: password}
	}

	resp, err := c.client.Login(ctx, req)
	if err != nil {
		return nil, mapError(err)
	}
	if err := c.setSession(Session{AccessToken: resp.AccessToken, RefreshToken: resp.RefreshToken}); err != nil {
		return nil, err
	}
	return resp.User, nil
}

func (c *GRPCClient) Refresh(ctx context.Context) error {
	session := c.current()
	if session.RefreshToken == "" {
		return ErrNotLoggedIn
	}
	return c.refresh(ctx, session.RefreshToken)
}

// Logout ends the session on the server and forgets it locally. The local
// session is dropped even when the server already considers it gone.
func (c *GRPCClient) Logout(ctx context.Context) error {
	if !c.LoggedIn() {
		return ErrNotLoggedIn
	}
	_, err := c.client.Logout(ctx, &pb.LogoutRequest{})
	if err != nil && status.Code(err) != codes.Unauthenticated {
		return mapError(err)
	}
	return c.setSession(Session{})
}

// ChangePassword also forgets the local session: the server revokes it.
func (c *GRPCClient) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	if !c.LoggedIn() {
		return ErrNotLoggedIn
	}
	_, err := c.client.ChangePassword(ctx, &pb.ChangePasswordRequest{OldPassword: oldPassword, NewPassword: newPassword})
	if err != nil {
		return mapError(err)
	}
	return c.setSession(Session{})
}

func (c *GRPCClient) CurrentUser(ctx context.Context) (*pb.User, error) {
	if !c.LoggedIn() {
		return nil, ErrNotLoggedIn
	}
	resp, err := c.client.GetCurrentUser(ctx, &pb.GetCurrentUserRequest{})
	if err != nil {
		return nil, mapError(err)
	}
	return resp.User, nil
}

func (c *GRPCClient) UpdateAccountDetails(ctx context.Context, fullName, email *string) (*pb.User, error) {
	if !c.LoggedIn() {
		return nil, ErrNotLoggedIn
	}
	resp, err := c.client.UpdateAccountDetails(ctx, &pb.UpdateAccountDetailsRequest{FullName: fullName, Email: email})
	if err != nil {
		return nil, mapError(err)
	}
	return resp.User, nil
}

func (c *GRPCClient) UpdateAvatar(ctx context.Context, image []byte) (*pb.User, error) {
	if !c.LoggedIn() {
		return nil, ErrNotLoggedIn
	}
	resp, err := c.client.UpdateAvatar(ctx, &pb.UpdateImageRequest{Image: image})
	if err != nil {
		return nil, mapError(err)
	}
	return resp.User, nil
}

func (c *GRPCClient) UpdateCoverImage(ctx context.Context, image []byte) (*pb.User, error) {
	if !c.LoggedIn() {
		return nil, ErrNotLoggedIn
	}
	resp, err := c.client.UpdateCoverImage(ctx, &pb.UpdateImageRequest{Image: image})
	if err != nil {
		return nil, mapError(err)
	}
	return resp.User, nil
}

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrUnauthorized) || errors.Is(err, ErrNotLoggedIn) {
		return err
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.AlreadyExists:
		return ErrAlreadyExists
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", ErrInvalidInput, st.Message())
	case codes.NotFound:
		return ErrNotFound
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
