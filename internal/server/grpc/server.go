// Package grpc exposes the account service over gRPC.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/accountkeeper/internal/logging"
	pb "github.com/dmitrijs2005/accountkeeper/internal/proto"
	"github.com/dmitrijs2005/accountkeeper/internal/server/metrics"
	"github.com/dmitrijs2005/accountkeeper/internal/server/models"
	"github.com/dmitrijs2005/accountkeeper/internal/server/services"
	"google.golang.org/grpc"
)

// accountService is the part of *services.UserService the handlers use.
type accountService interface {
	Register(ctx context.Context, in services.RegisterInput) (*models.Profile, error)
	Login(ctx context.Context, identifier, secret string) (*services.Session, error)
	Refresh(ctx context.Context, presented string) (*services.TokenPair, error)
	Logout(ctx context.Context, userID string) error
	ChangePassword(ctx context.Context, userID, oldSecret, newSecret string) error
	Authenticate(ctx context.Context, accessToken string) (string, error)
	GetCurrentUser(ctx context.Context, userID string) (*models.Profile, error)
	UpdateAccountDetails(ctx context.Context, userID string, fullName, email *string) (*models.Profile, error)
	UpdateAvatar(ctx context.Context, userID string, image []byte) (*models.Profile, error)
	UpdateCoverImage(ctx context.Context, userID string, image []byte) (*models.Profile, error)
}

type GRPCServer struct {
	pb.UnimplementedAccountServiceServer
	address string
	users   accountService
	metrics *metrics.Collector
	logger  logging.Logger
}

// NewGRPCServer builds a server for address. m may be nil.
func NewGRPCServer(a string, l logging.Logger, us accountService, m *metrics.Collector) *GRPCServer {
	if l == nil {
		l = logging.Nop{}
	}
	return &GRPCServer{
		address: a,
		logger:  l.With("module", "grpc_server"),
		users:   us,
		metrics: m,
	}
}

// newServer creates the grpc.Server with the interceptor chain and the
// service registered.
func (s *GRPCServer) newServer() *grpc.Server {
	var interceptors []grpc.UnaryServerInterceptor
	if s.metrics != nil {
		interceptors = append(interceptors, s.metrics.UnaryServerInterceptor())
	}
	interceptors = append(interceptors, s.accessTokenInterceptor)

	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(interceptors...))
	pb.RegisterAccountServiceServer(srv, s)
	return srv
}

// Run serves until ctx is cancelled, then stops gracefully.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.serve(ctx, listen)
}

func (s *GRPCServer) serve(ctx context.Context, listen net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
