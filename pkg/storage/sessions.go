package storage

import (
	"errors"

	"StudyIQ/models"

	"gorm.io/gorm"
)

func (s *Store) CreateChatSession(userID uint, title, mode string) (*models.ChatSession, error) {
	sess := models.ChatSession{UserID: userID, Title: title, Mode: mode}
	if err := s.db.Create(&sess).Error; err != nil {
		return nil, err
	}
	return &sess, nil
}

// ListChatSessionsByUser returns the user's saved chats, newest first.
func (s *Store) ListChatSessionsByUser(userID uint) ([]models.ChatSession, error) {
	var sessions []models.ChatSession
	if err := s.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

func (s *Store) GetChatSession(id uint) (*models.ChatSession, error) {
	var sess models.ChatSession
	if err := s.db.First(&sess, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &sess, nil
}

func (s *Store) DeleteChatSession(id uint) error {
	return s.db.Delete(&models.ChatSession{}, id).Error
}
