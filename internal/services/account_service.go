package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/rahmatsubandi/undanganku/internal/models"
	"github.com/rahmatsubandi/undanganku/pkg/crypto"
)

var (
	// ErrEmailTaken indicates a registration attempt with an email that is already in use.
	ErrEmailTaken = errors.New("account service: email already registered")
	// ErrInvalidCredentials indicates an unknown email or a wrong password.
	ErrInvalidCredentials = errors.New("account service: invalid credentials")
	// ErrUserNotFound indicates that the referenced account no longer exists.
	ErrUserNotFound = errors.New("account service: user not found")
)

// AccountService manages owner accounts: registration, credential checks, lookups.
type AccountService struct {
	db *gorm.DB
}

// NewAccountService constructs an account service once a database handle is supplied.
func NewAccountService(db *gorm.DB) (*AccountService, error) {
	if db == nil {
		return nil, errors.New("account service: db is required")
	}
	return &AccountService{db: db}, nil
}

// RegisterInput captures the fields required to create an account.
type RegisterInput struct {
	Email    string
	Password string
	Name     string
}

// Register creates a new account with a bcrypt-hashed password. The email
// pre-check gives a clean conflict for the common case; the unique index on
// users.email catches the concurrent-registration race the pre-check cannot.
func (s *AccountService) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	ctx = ensuredContext(ctx)

	email := strings.TrimSpace(input.Email)

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:    email,
		Password: hash,
		Name:     input.Name,
	}

	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return user, nil
}

// Authenticate verifies an email/password pair. Unknown emails and wrong
// passwords are indistinguishable to the caller.
func (s *AccountService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	ctx = ensuredContext(ctx)

	var user models.User
	err := s.db.WithContext(ctx).Where("email = ?", strings.TrimSpace(email)).Take(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !crypto.VerifyPassword(user.Password, password) {
		return nil, ErrInvalidCredentials
	}

	return &user, nil
}

// GetByID loads an account by identifier.
func (s *AccountService) GetByID(ctx context.Context, id string) (*models.User, error) {
	ctx = ensuredContext(ctx)

	var user models.User
	err := s.db.WithContext(ctx).Take(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}
