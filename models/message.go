package models

import "gorm.io/gorm"

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Chat modes. Each mode has its own persona prompt and history stream.
const (
	ModeAssistant = "assistant"
	ModeHomework  = "homework"
	ModeMoney     = "money"
)

// ValidMode reports whether mode is one of the three chat personas.
func ValidMode(mode string) bool {
	return mode == ModeAssistant || mode == ModeHomework || mode == ModeMoney
}

type Message struct {
	gorm.Model
	UserID  *uint  `gorm:"index"` // nil for anonymous turns
	Role    string `gorm:"size:20;not null"`
	Content string `gorm:"type:text;not null"`
	Mode    string `gorm:"size:20;not null;index"`
}
