package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/bloghub/blog-api/internal/core/domain"
	"github.com/bloghub/blog-api/internal/core/ports"
)

// AuthService implements login and registration on top of the credential
// store, the password hasher and the token service. It holds no per-request
// state; every call is decided from its inputs and the shared store.
type AuthService struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
	tokens ports.TokenService
	log    zerolog.Logger
}

func NewAuthService(users ports.UserRepository, hasher ports.PasswordHasher, tokens ports.TokenService, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, hasher: hasher, tokens: tokens, log: log}
}

// Login verifies the credentials and returns a signed bearer token. Both an
// unknown identifier and a wrong password fail with ErrBadCredentials so the
// caller cannot tell which field was wrong.
func (s *AuthService) Login(ctx context.Context, usernameOrEmail, password string) (string, error) {
	if usernameOrEmail == "" || password == "" {
		return "", domain.ErrBadCredentials
	}

	user, err := s.users.FindByUsernameOrEmail(ctx, usernameOrEmail)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrBadCredentials
		}
		return "", err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", domain.ErrBadCredentials
	}

	token, err := s.tokens.Issue(user.Username, user.Roles, time.Now().UTC())
	if err != nil {
		return "", err
	}

	s.log.Info().Str("username", user.Username).Msg("user logged in")
	return token, nil
}

// Register creates a new account holding the default user role. Username
// uniqueness is checked strictly before email uniqueness, so when both
// collide the username conflict is the one reported.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	taken, err := s.users.ExistsByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrUsernameTaken
	}

	taken, err = s.users.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrEmailTaken
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	// Default roles are seeded before traffic is served; absence here means
	// the deployment is broken, not that this request is retryable.
	role, err := s.users.FindRoleByName(ctx, domain.RoleUser)
	if err != nil {
		if errors.Is(err, domain.ErrRoleNotFound) {
			s.log.Error().Str("role", domain.RoleUser).Msg("default role missing; startup seeding is broken")
			return nil, domain.ErrDefaultRoleMissing
		}
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         input.Name,
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		Roles:        []string{role.Name},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Save(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("username", created.Username).Msg("user registered")
	return created, nil
}
