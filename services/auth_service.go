package services

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/Ashitosh2004/hotellucky/entity"
	"github.com/Ashitosh2004/hotellucky/repository"
	"github.com/Ashitosh2004/hotellucky/utils"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrTooManyAttempts    = errors.New("too many attempts, try again later")
)

const (
	maxLoginAttempts = 5
	attemptWindow    = 15 * time.Minute
)

// AuthService handles staff login and session tokens.
type AuthService struct {
	userRepo  *repository.UserRepository
	jwtSecret string
	jwtTTL    time.Duration

	mu       sync.Mutex
	attempts map[string][]time.Time // failed logins per email
}

func NewAuthService(repo *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		userRepo:  repo,
		jwtSecret: secret,
		jwtTTL:    ttl,
		attempts:  make(map[string][]time.Time),
	}
}

// Login verifies credentials and issues a JWT. The role in the token comes
// from the user row, never from anything the client asserts.
func (s *AuthService) Login(email, password string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if s.rateLimited(email) {
		return "", nil, ErrTooManyAttempts
	}

	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		s.recordFailure(email)
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		s.recordFailure(email)
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.ID, user.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, errors.New("cannot generate token")
	}

	s.clearFailures(email)
	return token, user, nil
}

func (s *AuthService) GetProfile(userID string) (*entity.User, error) {
	return s.userRepo.FindByID(userID)
}

func (s *AuthService) rateLimited(email string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-attemptWindow)
	recent := s.attempts[email][:0]
	for _, t := range s.attempts[email] {
		if t.After(cutoff) {
			recent = append(recent, t)
		}
	}
	s.attempts[email] = recent
	return len(recent) >= maxLoginAttempts
}

func (s *AuthService) recordFailure(email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attempts[email] = append(s.attempts[email], time.Now())
}

func (s *AuthService) clearFailures(email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.attempts, email)
}
