package services

import (
	"context"

	"github.com/ovenly/bakeshop-backend/internal/data/repos"
	"github.com/ovenly/bakeshop-backend/internal/domain"
	"github.com/ovenly/bakeshop-backend/internal/pkg/ctxutil"
	"github.com/ovenly/bakeshop-backend/internal/pkg/logger"
)

type UserService interface {
	Me(ctx context.Context) (*domain.User, error)
}

type userService struct {
	log      *logger.Logger
	userRepo repos.UserRepo
}

func NewUserService(baseLog *logger.Logger, userRepo repos.UserRepo) UserService {
	return &userService{
		log:      baseLog.With("service", "UserService"),
		userRepo: userRepo,
	}
}

// Me resolves the authenticated user from the request context. The auth
// middleware must have run first.
func (s *userService) Me(ctx context.Context) (*domain.User, error) {
	const op = "user.me"

	rd := ctxutil.GetRequestData(ctx)
	if rd == nil || rd.Username == "" {
		return nil, domain.InvalidSessionError(op, "Invalid or expired session", nil)
	}
	user, err := s.userRepo.GetByName(ctx, nil, rd.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.InvalidSessionError(op, "Invalid or expired session", nil)
	}
	return user, nil
}
