package services

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/ovenly/bakeshop-backend/internal/data/repos"
	"github.com/ovenly/bakeshop-backend/internal/domain"
	"github.com/ovenly/bakeshop-backend/internal/pkg/logger"
)

// AuthService verifies credentials and mints/checks the signed session
// tokens carried in the session cookie. Tokens are stateless: validity is a
// pure function of signature and expiry, so logout is just cookie removal.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*domain.User, string, error)
	VerifySession(ctx context.Context, token string) (*domain.User, error)
	SessionTTL() time.Duration
}

type authService struct {
	log      *logger.Logger
	userRepo repos.UserRepo
	secret   []byte
	ttl      time.Duration
}

func NewAuthService(baseLog *logger.Logger, userRepo repos.UserRepo, secret string, ttl time.Duration) AuthService {
	return &authService{
		log:      baseLog.With("service", "AuthService"),
		userRepo: userRepo,
		secret:   []byte(secret),
		ttl:      ttl,
	}
}

func (s *authService) SessionTTL() time.Duration { return s.ttl }

// Login checks the password against the stored bcrypt hash and issues a
// session token. Unknown users and wrong passwords are indistinguishable to
// the caller.
func (s *authService) Login(ctx context.Context, username, password string) (*domain.User, string, error) {
	const op = "auth.login"

	user, err := s.userRepo.GetByName(ctx, nil, username)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", domain.ValidationError(op, "Username or password is incorrect")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		return nil, "", domain.ValidationError(op, "Username or password is incorrect")
	}

	token, err := s.issueToken(user.Name)
	if err != nil {
		s.log.Error("Failed to sign session token", "error", err)
		return nil, "", domain.Wrap(domain.CodeInternal, op, err)
	}
	return user, token, nil
}

func (s *authService) issueToken(username string) (string, error) {
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// VerifySession validates the token signature and expiry and resolves the
// embedded subject to a stored user. Expiry is enforced here regardless of
// the cookie's own max age.
func (s *authService) VerifySession(ctx context.Context, token string) (*domain.User, error) {
	const op = "auth.verify"

	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, domain.InvalidSessionError(op, "Invalid or expired session", err)
	}
	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return nil, domain.InvalidSessionError(op, "Invalid or expired session", nil)
	}

	user, err := s.userRepo.GetByName(ctx, nil, claims.Subject)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.InvalidSessionError(op, "Invalid or expired session", nil)
	}
	return user, nil
}

// HashPassword produces a bcrypt hash for out-of-band user provisioning.
func HashPassword(password string) (string, error) {
	out, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
