package models

import "gorm.io/gorm"

// ChatSession is a user-saved chat: a title plus the mode it was held in.
type ChatSession struct {
	gorm.Model
	UserID uint   `gorm:"not null;index"`
	Title  string `gorm:"size:200;not null"`
	Mode   string `gorm:"size:20;not null"`
}
