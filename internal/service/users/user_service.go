package users

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"github.com/Domenick1991/airreserve/internal/domain"
	"github.com/Domenick1991/airreserve/internal/repository"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

type UserUseCase interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

type TokenIssuer interface {
	Issue(p domain.Principal) (string, error)
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type UserService struct {
	users      repository.UserRepository
	tokens     TokenIssuer
	bcryptCost int
	logger     *zap.Logger
}

type UserServiceOption func(*UserService)

func WithBcryptCost(cost int) UserServiceOption {
	return func(s *UserService) {
		if cost >= bcrypt.MinCost && cost <= bcrypt.MaxCost {
			s.bcryptCost = cost
		}
	}
}

func WithLogger(logger *zap.Logger) UserServiceOption {
	return func(s *UserService) {
		s.logger = logger
	}
}

func NewUserService(users repository.UserRepository, tokens TokenIssuer, opts ...UserServiceOption) *UserService {
	service := &UserService{
		users:      users,
		tokens:     tokens,
		bcryptCost: bcrypt.DefaultCost,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// Register creates a user with the regular role. Admins are promoted out of band.
func (s *UserService) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if name == "" {
		return nil, domain.Validation("name is required")
	}
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		return nil, domain.Validation("invalid email %q", input.Email)
	}
	if len(input.Password) < minPasswordLength {
		return nil, domain.Validation("password must be at least %d characters", minPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.bcryptCost)
	if err != nil {
		return nil, domain.Validation("password: %v", err)
	}

	user := &domain.User{Name: name, Email: email, PasswordHash: string(hash), Role: domain.RoleUser}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	s.logger.Info("user registered", zap.Int64("user_id", user.ID))
	return user, nil
}

// Login checks credentials and returns a bearer token. Unknown emails and
// wrong passwords produce the same error.
func (s *UserService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if errors.Is(err, domain.ErrNotFound) {
		return "", nil, domain.ErrUnauthenticated
	}
	if err != nil {
		return "", nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, domain.ErrUnauthenticated
	}

	token, err := s.tokens.Issue(user.Principal())
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

var _ UserUseCase = (*UserService)(nil)
