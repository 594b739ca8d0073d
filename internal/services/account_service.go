package services

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "rewardstracker/internal/errors"
	"rewardstracker/internal/models"
	"rewardstracker/internal/validator"
)

// accountService handles account-related business logic.
type accountService struct {
	db *gorm.DB
}

// NewAccountService creates a new AccountServicer.
func NewAccountService(db *gorm.DB) AccountServicer {
	return &accountService{db: db}
}

// CreateAccount stores a new account. Any of email, phone and secret may be
// nil or empty, but not both email and phone. The email is lowercased, the
// phone reduced to its digits and the secret bcrypt-hashed.
func (s *accountService) CreateAccount(email, phone, secret *string) (*models.Account, error) {
	email = normalize(email, strings.ToLower)
	phone = normalize(phone, validator.PhoneDigitsOnly)
	secret = normalize(secret, nil)

	if email == nil && phone == nil {
		return nil, apperrors.ErrAccountIncomplete
	}

	if err := s.checkUnique(email, phone); err != nil {
		return nil, err
	}

	account := &models.Account{
		Email: email,
		Phone: phone,
	}

	if secret != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*secret), bcrypt.DefaultCost)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrAccountCreation, err)
		}
		hashed := string(hash)
		account.PasswordHash = &hashed
	}

	if err := s.insert(account); err != nil {
		return nil, err
	}

	return account, nil
}

// insert writes account. A unique index violation from a concurrent signup
// that passed checkUnique is reported as a duplicate.
func (s *accountService) insert(account *models.Account) error {
	if err := s.db.Create(account).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.Wrap(apperrors.ErrDuplicateAccount, err)
		}
		return apperrors.Wrap(apperrors.ErrAccountCreation, err)
	}
	return nil
}

// GetAccountByID retrieves an account by ID
func (s *accountService) GetAccountByID(id string) (*models.Account, error) {
	var account models.Account
	if err := s.db.Where("id = ?", id).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &account, nil
}

func (s *accountService) checkUnique(email, phone *string) error {
	query := s.db.Model(&models.Account{})
	switch {
	case email != nil && phone != nil:
		query = query.Where("email = ? OR phone = ?", *email, *phone)
	case email != nil:
		query = query.Where("email = ?", *email)
	default:
		query = query.Where("phone = ?", *phone)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrAccountCreation, err)
	}
	if count > 0 {
		return apperrors.ErrDuplicateAccount
	}
	return nil
}

// normalize trims v, applies fn and maps an empty result to nil.
func normalize(v *string, fn func(string) string) *string {
	if v == nil {
		return nil
	}
	out := strings.TrimSpace(*v)
	if fn != nil {
		out = fn(out)
	}
	if out == "" {
		return nil
	}
	return &out
}
