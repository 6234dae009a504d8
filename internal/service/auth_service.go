package service

import (
	"context"
	"errors"
	"strings"

	"syahi/internal/auth"
	"syahi/internal/cache"
	"syahi/internal/models"
	"syahi/internal/observability"
	"syahi/internal/repository"
	"syahi/internal/validation"

	"go.uber.org/zap"
)

type AuthService struct {
	userRepo repository.UserRepository
	tokens   *auth.TokenManager
	revoker  *auth.Revoker
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

func NewAuthService(userRepo repository.UserRepository, tokens *auth.TokenManager, revoker *auth.Revoker) *AuthService {
	return &AuthService{userRepo: userRepo, tokens: tokens, revoker: revoker}
}

func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.AuthResponse, error) {
	username := trimmed(in.Username)
	email := strings.ToLower(trimmed(in.Email))

	if err := validation.ValidateUsername(username); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateEmail(email); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePassword(in.Password); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, models.NewConflictError("Email already registered")
	} else if !models.IsNotFound(err) {
		return nil, err
	}
	if _, err := s.userRepo.GetByUsername(ctx, username); err == nil {
		return nil, models.NewConflictError("Username already taken")
	} else if !models.IsNotFound(err) {
		return nil, err
	}

	hashed, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{Username: username, Email: email, Password: hashed}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, models.NewConflictError("Username or email already registered")
		}
		return nil, err
	}

	observability.FromContext(ctx).Info("user registered", zap.String("user_id", user.ID))
	return s.respond(user)
}

func (s *AuthService) Login(ctx context.Context, in LoginInput) (*models.AuthResponse, error) {
	email := strings.ToLower(trimmed(in.Email))
	if email == "" || in.Password == "" {
		return nil, models.NewValidationError("Email and password are required")
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if models.IsNotFound(err) {
			return nil, models.NewUnauthenticatedError("Invalid credentials")
		}
		return nil, err
	}
	if !auth.CheckPassword(user.Password, in.Password) {
		return nil, models.NewUnauthenticatedError("Invalid credentials")
	}
	return s.respond(user)
}

func (s *AuthService) respond(user *models.User) (*models.AuthResponse, error) {
	token, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return &models.AuthResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		Token:     token,
	}, nil
}

// Authenticate resolves a bearer token to the stored user it names.
// Revocation lookups fail open when Redis is unreachable.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*auth.Identity, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		if errors.Is(err, auth.ErrMissingToken) {
			return nil, models.NewUnauthenticatedError("Not authorized, no token")
		}
		return nil, models.NewUnauthenticatedError("Not authorized, token failed")
	}

	revoked, err := s.revoker.IsRevoked(ctx, claims.ID)
	if err != nil {
		observability.FromContext(ctx).Warn("token revocation check failed", zap.Error(err))
	}
	if revoked {
		return nil, models.NewUnauthenticatedError("Token has been revoked")
	}

	var cached models.CachedUser
	err = cache.Aside(ctx, cache.UserKey(claims.Subject), &cached, cache.UserTTL, func() error {
		user, err := s.userRepo.GetByID(ctx, claims.Subject)
		if err != nil {
			return err
		}
		cached = models.CachedUser{ID: user.ID, Username: user.Username}
		return nil
	})
	if err != nil {
		if models.IsNotFound(err) {
			return nil, models.NewUnauthenticatedError("Not authorized, user not found")
		}
		return nil, err
	}

	return &auth.Identity{
		ID:       cached.ID,
		Username: cached.Username,
		TokenID:  claims.ID,
		Claims:   claims,
	}, nil
}

// Me returns the stored account of the caller.
func (s *AuthService) Me(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if models.IsNotFound(err) {
			return nil, models.NewUnauthenticatedError("Not authorized, user not found")
		}
		return nil, err
	}
	return user, nil
}

// Logout revokes the presented token until it would have expired.
func (s *AuthService) Logout(ctx context.Context, id *auth.Identity) error {
	if id == nil {
		return nil
	}
	if err := s.revoker.Revoke(ctx, id.TokenID, s.tokens.Remaining(id.Claims)); err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateUser(ctx, id.ID)
	return nil
}
