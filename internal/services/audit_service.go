package services

import (
	"encoding/json"

	"gorm.io/gorm"

	"rewardstracker/internal/logger"
	"rewardstracker/internal/models"
)

// auditService handles audit log recording.
type auditService struct {
	db *gorm.DB
}

// NewAuditService creates a new AuditServicer.
func NewAuditService(db *gorm.DB) AuditServicer {
	return &auditService{db: db}
}

// Log records an audit event. Errors are logged but never propagate
// to avoid disrupting the main operation.
func (s *auditService) Log(accountID, action, resourceType, ipAddress string, changes map[string]any) {
	var changesJSON string
	if changes != nil {
		data, err := json.Marshal(changes)
		if err != nil {
			logger.Get().Errorw("failed to marshal audit log changes", "error", err, "action", action)
			changesJSON = "{}"
		} else {
			changesJSON = string(data)
		}
	}

	entry := &models.AuditLog{
		AccountID:    accountID,
		Action:       action,
		ResourceType: resourceType,
		IPAddress:    ipAddress,
		Changes:      changesJSON,
	}

	if err := s.db.Create(entry).Error; err != nil {
		logger.Get().Errorw("failed to create audit log entry",
			"error", err,
			"account_id", accountID,
			"action", action,
			"resource_type", resourceType,
		)
	}
}

// LogAccountCreated records a signup with the channel it came through and
// whether a secret was set. Contact values themselves are never written.
func (s *auditService) LogAccountCreated(account *models.Account, ipAddress string) {
	s.Log(account.ID, models.AuditActionAccountCreated, models.AuditResourceAccount, ipAddress, map[string]any{
		"channel":    signupChannel(account),
		"has_secret": account.PasswordHash != nil,
	})
}

func signupChannel(account *models.Account) string {
	switch {
	case account.Email != nil && account.Phone != nil:
		return models.SignupChannelEmailAndPhone
	case account.Email != nil:
		return models.SignupChannelEmail
	default:
		return models.SignupChannelPhone
	}
}
