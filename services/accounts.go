package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"smarttasks/model"
)

const (
	MinPasswordLength = 5
	MaxPasswordLength = 72
	MaxUsernameLength = 256

	allowedUsernameChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789-._@+"
)

// AccountService registers users and exchanges credentials for tokens.
type AccountService struct {
	db     *gorm.DB
	tokens *TokenService
	log    zerolog.Logger

	// HashCost is the bcrypt cost used for new passwords.
	HashCost int
}

func NewAccountService(db *gorm.DB, tokens *TokenService, log zerolog.Logger) *AccountService {
	return &AccountService{
		db:       db,
		tokens:   tokens,
		log:      log.With().Str("component", "accounts").Logger(),
		HashCost: bcrypt.DefaultCost,
	}
}

// CheckAccount returns every username and password rule the pair breaks.
func CheckAccount(username, password string) []AccountIssue {
	var issues []AccountIssue
	if username == "" || len(username) > MaxUsernameLength || strings.Trim(username, allowedUsernameChars) != "" {
		issues = append(issues, AccountIssue{
			Code:        "InvalidUserName",
			Description: fmt.Sprintf("Username '%s' is invalid, can only contain letters or digits.", username),
		})
	}
	if len(password) < MinPasswordLength {
		issues = append(issues, AccountIssue{
			Code:        "PasswordTooShort",
			Description: fmt.Sprintf("Passwords must be at least %d characters.", MinPasswordLength),
		})
	}
	if len(password) > MaxPasswordLength {
		issues = append(issues, AccountIssue{
			Code:        "PasswordTooLong",
			Description: fmt.Sprintf("Passwords must be at most %d bytes.", MaxPasswordLength),
		})
	}
	if !strings.ContainsAny(password, "0123456789") {
		issues = append(issues, AccountIssue{
			Code:        "PasswordRequiresDigit",
			Description: "Passwords must have at least one digit ('0'-'9').",
		})
	}
	return issues
}

func (s *AccountService) CreateAccount(ctx context.Context, username, password string) (*model.User, error) {
	if issues := CheckAccount(username, password); len(issues) > 0 {
		return nil, &AccountError{Issues: issues}
	}

	db := s.db.WithContext(ctx)
	var existing int64
	if err := db.Model(&model.User{}).Where("username = ?", username).Count(&existing).Error; err != nil {
		return nil, fmt.Errorf("looking up username: %w", err)
	}
	if existing > 0 {
		return nil, &AccountError{Issues: []AccountIssue{{
			Code:        "DuplicateUserName",
			Description: fmt.Sprintf("Username '%s' is already taken.", username),
		}}}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.HashCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}
	user := model.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hashed),
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}
	s.log.Info().Str("user_id", user.ID).Msg("account created")
	return &user, nil
}

// Authenticate returns a bearer token for valid credentials. Unknown users
// and wrong passwords both yield ErrInvalidCredentials.
func (s *AccountService) Authenticate(ctx context.Context, username, password string) (string, error) {
	var user model.User
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("looking up user: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return token, nil
}
