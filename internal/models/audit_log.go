package models

// AuditLog records account lifecycle events on the server.
type AuditLog struct {
	Base
	AccountID    string `gorm:"type:uuid;not null;index" json:"accountId"`
	Action       string `gorm:"not null" json:"action"`
	ResourceType string `gorm:"not null" json:"resourceType"`
	IPAddress    string `json:"ipAddress"`
	Changes      string `json:"changes,omitempty"`
}

// Audit actions.
const (
	AuditActionAccountCreated = "account.created"
)

// AuditResourceAccount is the resource type of account events.
const AuditResourceAccount = "account"

// Signup channels recorded on account.created.
const (
	SignupChannelEmail         = "email"
	SignupChannelPhone         = "phone"
	SignupChannelEmailAndPhone = "email_and_phone"
)
