package services

import (
	"rewardstracker/internal/models"
)

// AccountServicer defines the contract for account-related business logic.
type AccountServicer interface {
	CreateAccount(email, phone, secret *string) (*models.Account, error)
	GetAccountByID(id string) (*models.Account, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(accountID, action, resourceType, ipAddress string, changes map[string]any)
	LogAccountCreated(account *models.Account, ipAddress string)
}
