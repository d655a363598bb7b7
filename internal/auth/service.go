// Package auth implements credential management: password hashing,
// registration and login against the user repository.
package auth

import (
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/SubhashKumar14/LearnPath/internal/models"
	"github.com/SubhashKumar14/LearnPath/internal/store"
)

// ErrInvalidCredentials is returned for both an unknown email and a
// wrong password so login failures do not reveal which accounts exist.
var ErrInvalidCredentials = errors.New("invalid credentials")

type Service struct {
	users store.UserRepository
	log   *zap.Logger
}

func NewService(users store.UserRepository, log *zap.Logger) *Service {
	return &Service{users: users, log: log}
}

// Register creates a new account with role "user". There is no way to
// self-assign admin; admins are seeded at startup. A duplicate email is
// the only rejection; password strength is the client's concern.
// Emails are trimmed of surrounding whitespace and compared case-sensitively.
func (s *Service) Register(name, email, password string) (*models.User, error) {
	email = strings.TrimSpace(email)

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleUser,
	}
	if err := s.users.Create(user); err != nil {
		return nil, err
	}

	s.log.Info("user registered", zap.Uint("user_id", user.ID))
	return user, nil
}

// Login checks the credentials and returns the matching user. The caller
// is responsible for opening a session for it.
func (s *Service) Login(email, password string) (*models.User, error) {
	email = strings.TrimSpace(email)

	user, err := s.users.FindByEmail(email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !CheckPassword(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	s.log.Info("user logged in",
		zap.Uint("user_id", user.ID),
		zap.String("role", string(user.Role)),
	)
	return user, nil
}
