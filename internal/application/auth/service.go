package auth

import (
	"errors"
	"regexp"
	"time"

	"golang.org/x/crypto/bcrypt"

	domain "pokedex/internal/domain/auth"
	"pokedex/internal/domain/user"
)

// Token lifetimes. Registration hands out a longer-lived token than
// login so a fresh account stays signed in through first setup.
const (
	loginTokenTTL    = time.Hour
	registerTokenTTL = 24 * time.Hour
)

// Service defines the authentication service interface
type Service interface {
	Register(req domain.RegisterRequest) (*user.User, string, error)
	Login(req domain.LoginRequest) (string, error)
	// Authenticate verifies a token and returns the user id it was
	// issued for.
	Authenticate(token string) (string, error)
}

type service struct {
	users  user.Repository
	secret []byte
}

// NewService creates a new auth service signing tokens with secret
func NewService(users user.Repository, secret string) Service {
	return &service{
		users:  users,
		secret: []byte(secret),
	}
}

func (s *service) Register(req domain.RegisterRequest) (*user.User, string, error) {
	if !isValidEmail(req.Email) {
		return nil, "", user.ErrInvalidEmail
	}

	// Hashing happens here, before the record ever reaches storage.
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	newUser := &user.User{
		Pseudo:   req.Pseudo,
		Email:    req.Email,
		Password: string(hashed),
	}

	// The repository rejects duplicate email or pseudo in a single
	// conditional insert.
	if err := s.users.Create(newUser); err != nil {
		return nil, "", err
	}

	token, err := generateToken(newUser.ID, s.secret, registerTokenTTL)
	if err != nil {
		return nil, "", err
	}

	return newUser, token, nil
}

func (s *service) Login(req domain.LoginRequest) (string, error) {
	u, err := s.users.GetByEmail(req.Email)
	if errors.Is(err, user.ErrUserNotFound) {
		// Unknown email and bad password collapse into the same error
		// so responses cannot be used to enumerate accounts.
		return "", user.ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)) != nil {
		return "", user.ErrInvalidCredentials
	}

	return generateToken(u.ID, s.secret, loginTokenTTL)
}

func (s *service) Authenticate(token string) (string, error) {
	return parseToken(token, s.secret)
}

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func isValidEmail(email string) bool {
	return emailRe.MatchString(email)
}
