package client

import (
	"context"

	pb "github.com/dmitrijs2005/accountkeeper/internal/proto"
)

// RegisterInput carries the fields of a new account.
type RegisterInput struct {
	Username   string
	Email      string
	FullName   string
	Password   string
	Avatar     []byte
	CoverImage []byte
}

// Client is the account API as seen by the CLI.
type Client interface {
	Close() error
	LoggedIn() bool
	Ping(ctx context.Context) error
	Register(ctx context.Context, in RegisterInput) (*pb.User, error)
	Login(ctx context.Context, identifier, password string) (*pb.User, error)
	Refresh(ctx context.Context) error
	Logout(ctx context.Context) error
	ChangePassword(ctx context.Context, oldPassword, newPassword string) error
	CurrentUser(ctx context.Context) (*pb.User, error)
	UpdateAccountDetails(ctx context.Context, fullName, email *string) (*pb.User, error)
	UpdateAvatar(ctx context.Context, image []byte) (*pb.User, error)
	UpdateCoverImage(ctx context.Context, image []byte) (*pb.User, error)
}
