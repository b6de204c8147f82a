package services

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"github.com/isdelr/inkwell-be/internal/auth"
	"github.com/isdelr/inkwell-be/internal/models"
	"github.com/isdelr/inkwell-be/internal/store"
	"golang.org/x/crypto/bcrypt"
)

// Validation failures surface these messages verbatim to the client.
var (
	ErrFullnameTooShort  = errors.New("fullname must be at least 3 letters long")
	ErrEmailRequired     = errors.New("enter Email")
	ErrEmailInvalid      = errors.New("Email is invalid")
	ErrPasswordInvalid   = errors.New("Password should be 6 to 20 characters long with a numeric, 1 uppercase, 1 lowercase letters")
	ErrEmailTaken        = errors.New("email already exists")
	ErrEmailNotFound     = errors.New("email not found")
	ErrIncorrectPassword = errors.New("incorrect password")
	ErrVerifyFailed      = errors.New("error occured while login please try again")
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const bcryptCost = 10

// AccountServiceProvider defines the interface for account services.
type AccountServiceProvider interface {
	Register(fullname, email, password string) (models.SessionPayload, error)
	Authenticate(email, password string) (models.SessionPayload, error)
}

// AccountService provides the signup and signin business logic.
type AccountService struct {
	store  store.AccountStore
	issuer *auth.TokenIssuer
}

// NewAccountService creates a new AccountService.
func NewAccountService(store store.AccountStore, issuer *auth.TokenIssuer) *AccountService {
	return &AccountService{store: store, issuer: issuer}
}

// Register validates the signup input, creates the account with a hashed
// password and a username derived from the email, and returns a session
// payload for the new account. Checks run in order; the first failing check
// aborts the request and nothing is persisted.
func (s *AccountService) Register(fullname, email, password string) (models.SessionPayload, error) {
	if len(fullname) < 3 {
		return models.SessionPayload{}, ErrFullnameTooShort
	}
	if len(email) == 0 {
		return models.SessionPayload{}, ErrEmailRequired
	}
	if !emailRegex.MatchString(email) {
		return models.SessionPayload{}, ErrEmailInvalid
	}
	if !validPassword(password) {
		return models.SessionPayload{}, ErrPasswordInvalid
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return models.SessionPayload{}, fmt.Errorf("failed to hash password: %w", err)
	}

	username, err := s.generateUsername(email)
	if err != nil {
		return models.SessionPayload{}, err
	}

	account := models.Account{
		ID:           uuid.New().String(),
		Fullname:     fullname,
		Email:        email,
		Username:     username,
		PasswordHash: string(hashed),
	}

	if err := s.store.Insert(account); err != nil {
		if errors.Is(err, store.ErrConflict) {
			return models.SessionPayload{}, ErrEmailTaken
		}
		return models.SessionPayload{}, err
	}

	return s.sessionPayload(account)
}

// Authenticate verifies the credentials against the stored account and
// returns a session payload. It never mutates state.
func (s *AccountService) Authenticate(email, password string) (models.SessionPayload, error) {
	account, err := s.store.FindByEmail(email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.SessionPayload{}, ErrEmailNotFound
		}
		return models.SessionPayload{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return models.SessionPayload{}, ErrIncorrectPassword
		}
		// Malformed stored hash or any other internal compare failure.
		return models.SessionPayload{}, ErrVerifyFailed
	}

	return s.sessionPayload(account)
}

func (s *AccountService) sessionPayload(account models.Account) (models.SessionPayload, error) {
	token, err := s.issuer.Issue(account.ID)
	if err != nil {
		return models.SessionPayload{}, fmt.Errorf("failed to sign session token: %w", err)
	}
	return models.SessionPayload{
		AccessToken: token,
		ProfileImg:  account.ProfileImg,
		Username:    account.Username,
		Fullname:    account.Fullname,
	}, nil
}

// generateUsername derives a username from the email local part. If that
// username is taken, a short random suffix is appended once; the result is
// not re-checked, so a double collision is left for the unique index to
// reject at insert time.
func (s *AccountService) generateUsername(email string) (string, error) {
	username := strings.Split(email, "@")[0]
	exists, err := s.store.ExistsByUsername(username)
	if err != nil {
		return "", err
	}
	if exists {
		username += randomSuffix(5)
	}
	return username, nil
}

func randomSuffix(n int) string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:n]
}

// validPassword reports whether the password is 6 to 20 characters long and
// contains at least one digit, one lowercase, and one uppercase letter.
func validPassword(password string) bool {
	if len(password) < 6 || len(password) > 20 {
		return false
	}
	var hasDigit, hasLower, hasUpper bool
	for _, r := range password {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		}
	}
	return hasDigit && hasLower && hasUpper
}
