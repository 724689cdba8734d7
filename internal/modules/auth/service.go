// README: Demo admin login checked against one configured account.
package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNoAccount          = errors.New("no admin account configured")
)

const RoleAdmin = "admin"

type User struct {
	Username string
	Role     string
}

type Service struct {
	username     string
	passwordHash []byte
}

// NewService accepts either a bcrypt hash or a plain password (hashed here).
// An empty username disables login.
func NewService(username, password string) (*Service, error) {
	s := &Service{username: strings.TrimSpace(username)}
	if s.username == "" {
		return s, nil
	}
	if password == "" {
		return nil, fmt.Errorf("admin password is required for user %q", s.username)
	}
	if isBcryptHash(password) {
		if _, err := bcrypt.Cost([]byte(password)); err != nil {
			return nil, fmt.Errorf("admin password hash: %w", err)
		}
		s.passwordHash = []byte(password)
		return s, nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}
	s.passwordHash = hash
	return s, nil
}

func (s *Service) Login(username, password string) (User, error) {
	if s.username == "" {
		return User{}, ErrNoAccount
	}
	userOK := subtle.ConstantTimeCompare([]byte(strings.TrimSpace(username)), []byte(s.username)) == 1
	passErr := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password))
	if !userOK || passErr != nil {
		return User{}, ErrInvalidCredentials
	}
	return User{Username: s.username, Role: RoleAdmin}, nil
}

func isBcryptHash(s string) bool {
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$")
}
