package models

// Account is the durable user record created at signup. Email, Phone and
// PasswordHash are independently nullable: the signup endpoint accepts
// partial records.
type Account struct {
	Base
	Email        *string `gorm:"uniqueIndex;size:255" json:"email"`
	Phone        *string `gorm:"uniqueIndex;size:32" json:"phone"`
	PasswordHash *string `gorm:"size:255" json:"-"`
}
