package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/accountkeeper/internal/common"
	pb "github.com/dmitrijs2005/accountkeeper/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const userIDKey ctxKey = "userID"

// protectedMethods require a valid access token.
var protectedMethods = map[string]struct{}{
	pb.AccountService_Logout_FullMethodName:               {},
	pb.AccountService_ChangePassword_FullMethodName:       {},
	pb.AccountService_GetCurrentUser_FullMethodName:       {},
	pb.AccountService_UpdateAccountDetails_FullMethodName: {},
	pb.AccountService_UpdateAvatar_FullMethodName:         {},
	pb.AccountService_UpdateCoverImage_FullMethodName:     {},
}

// UserIDFromContext returns the user id stored by the access token interceptor.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok && id != ""
}

func metadataValue(ctx context.Context, key string) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	if values := md.Get(key); len(values) > 0 {
		return values[0]
	}
	return ""
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if _, ok := protectedMethods[info.FullMethod]; !ok {
		return handler(ctx, req)
	}

	accessToken := metadataValue(ctx, common.AccessTokenHeaderName)
	if accessToken == "" {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	userID, err := s.users.Authenticate(ctx, accessToken)
	if err != nil {
		if errors.Is(err, common.ErrTokenExpired) {
			return nil, status.Error(codes.Unauthenticated, "token expired")
		}
		s.logger.Debug(ctx, "access token rejected", "method", info.FullMethod, "error", err)
		return nil, status.Error(codes.Unauthenticated, "unauthorized")
	}

	return handler(context.WithValue(ctx, userIDKey, userID), req)
}
