package users

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"
)

var (
	ErrInvalidUsername    = errors.New("username must be 3-20 chars: letters, digits, underscore")
	ErrInvalidPassword    = errors.New("password must be >= 6 chars and include letters + digits")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNotFound           = errors.New("user not found")
)

var usernameRe = regexp.MustCompile(`^[A-Za-z0-9_]{3,20}$`)

// PasswordHasher es la capacidad one-way de hash+verify.
// El plaintext nunca se persiste ni se recupera.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, hash string) bool
}

type Service struct {
	repo   Repository
	hasher PasswordHasher
	now    func() time.Time
}

func NewService(repo Repository, hasher PasswordHasher) *Service {
	return &Service{
		repo:   repo,
		hasher: hasher,
		now:    time.Now,
	}
}

func ValidateUsername(raw string) bool {
	return usernameRe.MatchString(raw)
}

func ValidatePassword(raw string) bool {
	if len(raw) < 6 {
		return false
	}
	hasLetter, hasDigit := false, false
	for _, r := range raw {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			hasLetter = true
		case r >= '0' && r <= '9':
			hasDigit = true
		}
	}
	return hasLetter && hasDigit
}

// Register valida formato, exige unicidad case-sensitive y persiste la
// cuenta con el hash. Nunca devuelve el password ni el hash al caller HTTP.
func (s *Service) Register(ctx context.Context, username, pass string) (User, error) {
	username = strings.TrimSpace(username)
	if !ValidateUsername(username) {
		return User{}, ErrInvalidUsername
	}
	if !ValidatePassword(pass) {
		return User{}, ErrInvalidPassword
	}

	if _, err := s.repo.GetByUsername(ctx, username); err == nil {
		return User{}, ErrDuplicateUsername
	} else if !errors.Is(err, ErrNotFound) {
		return User{}, err
	}

	hash, err := s.hasher.Hash(pass)
	if err != nil {
		return User{}, err
	}

	u := User{
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    s.now(),
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return User{}, err
	}
	return u, nil
}

// Login devuelve el username autenticado. Cuenta inexistente y password
// incorrecto responden con el mismo error para no filtrar qué cuentas existen.
func (s *Service) Login(ctx context.Context, username, pass string) (string, error) {
	username = strings.TrimSpace(username)

	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if !s.hasher.Verify(pass, u.PasswordHash) {
		return "", ErrInvalidCredentials
	}
	return u.Username, nil
}
