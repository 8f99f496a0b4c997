package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/accountkeeper/internal/common"
	pb "github.com/dmitrijs2005/accountkeeper/internal/proto"
	"github.com/dmitrijs2005/accountkeeper/internal/server/models"
	"github.com/dmitrijs2005/accountkeeper/internal/server/services"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// toStatus maps service errors to gRPC statuses. Internal details never
// leave the server.
func toStatus(err error) error {
	var ve common.ValidationError
	switch {
	case errors.As(err, &ve):
		return status.Error(codes.InvalidArgument, ve.Error())
	case errors.Is(err, common.ErrorValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrorConflict):
		return status.Error(codes.AlreadyExists, "user already exists")
	case errors.Is(err, common.ErrorInvalidCredentials), errors.Is(err, common.ErrorUnauthorized):
		return status.Error(codes.Unauthenticated, "unauthorized")
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, "not found")
	default:
		return status.Error(codes.Internal, "internal error")
	}
}

func toUser(p *models.Profile) *pb.User {
	if p == nil {
		return nil
	}
	return &pb.User{
		Id:         p.ID,
		Username:   p.UserName,
		Email:      p.Email,
		FullName:   p.FullName,
		Avatar:     p.AvatarURL,
		CoverImage: p.CoverImageURL,
		CreatedAt:  timestamppb.New(p.CreatedAt),
		UpdatedAt:  timestamppb.New(p.UpdatedAt),
	}
}

func (s *GRPCServer) userID(ctx context.Context) (string, error) {
	id, ok := UserIDFromContext(ctx)
	if !ok {
		s.logger.Error(ctx, "user id missing from context")
		return "", status.Error(codes.Internal, "internal error")
	}
	return id, nil
}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) RegisterUser(ctx context.Context, req *pb.RegisterUserRequest) (*pb.RegisterUserResponse, error) {
	s.logger.Info(ctx, "Registration request")

	profile, err := s.users.Register(ctx, services.RegisterInput{
		UserName:   req.Username,
		Email:      req.Email,
		FullName:   req.FullName,
		Password:   req.Password,
		Avatar:     req.Avatar,
		CoverImage: req.CoverImage,
	})
	if err != nil {
		return nil, toStatus(err)
	}

	s.logger.Info(ctx, "Registered", "user_id", profile.ID)
	return &pb.RegisterUserResponse{User: toUser(profile), Message: "user registered successfully"}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {
	identifier := req.Username
	if identifier == "" {
		identifier = req.Email
	}

	sess, err := s.users.Login(ctx, identifier, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, status.Error(codes.Unauthenticated, "unauthorized")
		}
		return nil, toStatus(err)
	}

	header := metadata.Pairs(
		common.AccessTokenHeaderName, sess.Tokens.AccessToken,
		common.RefreshTokenHeaderName, sess.Tokens.RefreshToken,
	)
	if err := grpc.SetHeader(ctx, header); err != nil {
		s.logger.Warn(ctx, "cannot set token header", "error", err)
	}

	return &pb.LoginResponse{
		User:         toUser(sess.Profile),
		AccessToken:  sess.Tokens.AccessToken,
		RefreshToken: sess.Tokens.RefreshToken,
		Message:      "user logged in successfully",
	}, nil
}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *pb.RefreshTokenRequest) (*pb.RefreshTokenResponse, error) {
	token := req.RefreshToken
	if token == "" {
		token = metadataValue(ctx, common.RefreshTokenHeaderName)
	}

	pair, err := s.users.Refresh(ctx, token)
	if err != nil {
		return nil, toStatus(err)
	}

	return &pb.RefreshTokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		Message:      "access token refreshed",
	}, nil
}

func (s *GRPCServer) Logout(ctx context.Context, req *pb.LogoutRequest) (*pb.LogoutResponse, error) {
	userID, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.users.Logout(ctx, userID); err != nil {
		return nil, toStatus(err)
	}
	return &pb.LogoutResponse{Message: "user logged out"}, nil
}

func (s *GRPCServer) ChangePassword(ctx context.Context, req *pb.ChangePasswordRequest) (*pb.ChangePasswordResponse, error) {
	userID, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.users.ChangePassword(ctx, userID, req.OldPassword, req.NewPassword); err != nil {
		return nil, toStatus(err)
	}
	return &pb.ChangePasswordResponse{Message: "password changed successfully"}, nil
}

func (s *GRPCServer) GetCurrentUser(ctx context.Context, req *pb.GetCurrentUserRequest) (*pb.GetCurrentUserResponse, error) {
	userID, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}
	profile, err := s.users.GetCurrentUser(ctx, userID)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.GetCurrentUserResponse{User: toUser(profile), Message: "current user fetched"}, nil
}

func (s *GRPCServer) UpdateAccountDetails(ctx context.Context, req *pb.UpdateAccountDetailsRequest) (*pb.UpdateAccountDetailsResponse, error) {
	userID, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}
	profile, err := s.users.UpdateAccountDetails(ctx, userID, req.FullName, req.Email)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.UpdateAccountDetailsResponse{User: toUser(profile), Message: "account details updated"}, nil
}

func (s *GRPCServer) UpdateAvatar(ctx context.Context, req *pb.UpdateImageRequest) (*pb.UpdateImageResponse, error) {
	userID, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}
	profile, err := s.users.UpdateAvatar(ctx, userID, req.Image)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.UpdateImageResponse{User: toUser(profile), Message: "avatar updated"}, nil
}

func (s *GRPCServer) UpdateCoverImage(ctx context.Context, req *pb.UpdateImageRequest) (*pb.UpdateImageResponse, error) {
	userID, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}
	profile, err := s.users.UpdateCoverImage(ctx, userID, req.Image)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.UpdateImageResponse{User: toUser(profile), Message: "cover image updated"}, nil
}
