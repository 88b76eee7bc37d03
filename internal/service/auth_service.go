package service

import (
	"errors"
	"fmt"
	"time"

	"pyquest/internal/models"
	"pyquest/internal/repository"
	"pyquest/internal/security"
	"pyquest/internal/validation"
)

var (
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrSessionNotFound    = errors.New("session not found")
	ErrSessionExpired     = errors.New("session expired")
)

// AuthService handles signup, login and session validation
type AuthService struct {
	accountRepo     *repository.AccountRepository
	sessionRepo     *repository.SessionRepository
	sessionDuration time.Duration
	jwtSecret       string
}

// NewAuthService creates a new auth service
func NewAuthService(accountRepo *repository.AccountRepository, sessionRepo *repository.SessionRepository, sessionDuration time.Duration, jwtSecret string) *AuthService {
	return &AuthService{
		accountRepo:     accountRepo,
		sessionRepo:     sessionRepo,
		sessionDuration: sessionDuration,
		jwtSecret:       jwtSecret,
	}
}

// Signup creates a new account with starting progress. The password is
// stored only as a salted bcrypt hash.
func (s *AuthService) Signup(username, password, avatar string) (*models.Account, error) {
	if err := validation.ValidateUsername(username); err != nil {
		return nil, err
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, err
	}
	if err := validation.ValidateAvatar(avatar); err != nil {
		return nil, err
	}

	existing, err := s.accountRepo.GetByUsername(username)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing account: %w", err)
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	passwordHash, err := security.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account, err := s.accountRepo.CreateAccount(username, passwordHash, avatar)
	if err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	return account, nil
}

// Login authenticates a username/password pair and opens a session. The
// same ErrInvalidCredentials covers both an unknown username and a wrong
// password so the response never reveals which one it was.
func (s *AuthService) Login(username, password string) (*models.Session, string, *models.Account, error) {
	account, err := s.accountRepo.GetByUsername(username)
	if err != nil {
		return nil, "", nil, fmt.Errorf("failed to get account: %w", err)
	}
	if account == nil {
		return nil, "", nil, ErrInvalidCredentials
	}

	if !security.CheckPassword(password, account.PasswordHash) {
		return nil, "", nil, ErrInvalidCredentials
	}

	sessionID := security.GenerateSessionID()
	expiresAt := time.Now().Add(s.sessionDuration)

	session, err := s.sessionRepo.CreateSession(sessionID, account.ID, expiresAt)
	if err != nil {
		return nil, "", nil, fmt.Errorf("failed to create session: %w", err)
	}

	token, err := security.SignSessionToken(s.jwtSecret, sessionID, account.ID, expiresAt)
	if err != nil {
		return nil, "", nil, fmt.Errorf("failed to sign session token: %w", err)
	}

	return session, token, account, nil
}

// ChangePassword verifies the current password before storing a new hash.
// Existing sessions stay valid; only the credential changes.
func (s *AuthService) ChangePassword(accountID int64, current, updated string) error {
	account, err := s.accountRepo.GetByID(accountID)
	if err != nil {
		return fmt.Errorf("failed to get account: %w", err)
	}
	if account == nil {
		return ErrInvalidCredentials
	}

	if !security.CheckPassword(current, account.PasswordHash) {
		return ErrInvalidCredentials
	}

	if err := validation.ValidatePassword(updated); err != nil {
		return err
	}

	passwordHash, err := security.HashPassword(updated)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.accountRepo.UpdatePassword(accountID, passwordHash)
}

// ValidateSession checks a session id and returns the associated account
func (s *AuthService) ValidateSession(sessionID string) (*models.Account, error) {
	session, err := s.sessionRepo.GetSession(sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}

	if session.IsExpired() {
		_ = s.sessionRepo.DeleteSession(sessionID)
		return nil, ErrSessionExpired
	}

	account, err := s.accountRepo.GetByID(session.AccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	if account == nil {
		return nil, ErrSessionNotFound
	}

	return account, nil
}

// ValidateToken verifies a bearer token and returns the account plus the
// underlying session id
func (s *AuthService) ValidateToken(token string) (*models.Account, string, error) {
	sessionID, err := security.ParseSessionToken(s.jwtSecret, token)
	if err != nil {
		return nil, "", ErrSessionNotFound
	}
	account, err := s.ValidateSession(sessionID)
	if err != nil {
		return nil, "", err
	}
	return account, sessionID, nil
}

// Logout ends a session without touching the account
func (s *AuthService) Logout(sessionID string) error {
	return s.sessionRepo.DeleteSession(sessionID)
}

// CleanupExpiredSessions removes all expired sessions
func (s *AuthService) CleanupExpiredSessions() error {
	return s.sessionRepo.DeleteExpiredSessions()
}
