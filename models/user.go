package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email                string    `gorm:"uniqueIndex;size:120;not null"`
	PasswordHash         string    `gorm:"size:255;not null"`
	IsPremium            bool      `gorm:"default:false"`
	StripeCustomerID     string    `gorm:"size:120"`
	StripeSubscriptionID string    `gorm:"size:120"`
	MessagesCount        int       `gorm:"default:0"`
	MessagesResetDate    time.Time `gorm:"autoCreateTime"`
}

func (u *User) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
	return err == nil
}
