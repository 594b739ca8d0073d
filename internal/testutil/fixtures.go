package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"rewardstracker/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// StrPtr returns a pointer to s.
func StrPtr(s string) *string {
	return &s
}

// CreateTestAccount creates an account with a unique email, a unique phone
// and a hashed secret.
func CreateTestAccount(t *testing.T, db *gorm.DB) *models.Account {
	t.Helper()
	n := nextID()
	return CreateTestAccountWith(t, db, StrPtr(fmt.Sprintf("user%d@test.com", n)), StrPtr(fmt.Sprintf("555%07d", n)))
}

// CreateTestAccountWith creates an account with the given email and phone,
// either of which may be nil.
func CreateTestAccountWith(t *testing.T, db *gorm.DB, email, phone *string) *models.Account {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash secret: %v", err)
	}

	account := &models.Account{
		Email:        email,
		Phone:        phone,
		PasswordHash: StrPtr(string(hash)),
	}
	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create test account: %v", err)
	}
	return account
}
