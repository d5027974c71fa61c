package storage

import (
	"errors"
	"time"

	"StudyIQ/models"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

// Store is the persistence gateway over users, messages and chat sessions.
// All entity state lives here; callers hold no state across calls.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CreateMessage(role, content, mode string, userID *uint) (*models.Message, error) {
	msg := models.Message{
		UserID:  userID,
		Role:    role,
		Content: content,
		Mode:    mode,
	}
	if err := s.db.Create(&msg).Error; err != nil {
		return nil, err
	}
	return &msg, nil
}

// ListMessages returns the full history stream for a mode, oldest first.
func (s *Store) ListMessages(mode string) ([]models.Message, error) {
	var msgs []models.Message
	if err := s.db.Where("mode = ?", mode).Order("created_at ASC").Find(&msgs).Error; err != nil {
		return nil, err
	}
	return msgs, nil
}

// ListMessagesByUser returns one user's history, oldest first. Mode may be
// empty to fetch across all modes.
func (s *Store) ListMessagesByUser(userID uint, mode string) ([]models.Message, error) {
	q := s.db.Where("user_id = ?", userID)
	if mode != "" {
		q = q.Where("mode = ?", mode)
	}
	var msgs []models.Message
	if err := q.Order("created_at ASC").Find(&msgs).Error; err != nil {
		return nil, err
	}
	return msgs, nil
}

func (s *Store) CreateUser(user *models.User) error {
	return s.db.Create(user).Error
}

func (s *Store) GetUser(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *Store) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *Store) UpdateUser(user *models.User) error {
	return s.db.Save(user).Error
}

// EffectiveMessageCount returns the user's daily message count, resetting it
// first when the stored reset date belongs to an earlier calendar day. The
// reset writes through to the store before returning.
func (s *Store) EffectiveMessageCount(userID uint) (int, error) {
	user, err := s.GetUser(userID)
	if err != nil {
		return 0, err
	}
	now := time.Now()
	if resetDue(user.MessagesResetDate, now) {
		err := s.db.Model(&models.User{}).Where("id = ?", userID).
			Updates(map[string]any{"messages_count": 0, "messages_reset_date": now}).Error
		if err != nil {
			return 0, err
		}
		return 0, nil
	}
	return user.MessagesCount, nil
}

// IncrementMessageCount bumps the daily counter by one.
func (s *Store) IncrementMessageCount(userID uint) error {
	return s.db.Model(&models.User{}).Where("id = ?", userID).
		UpdateColumn("messages_count", gorm.Expr("messages_count + 1")).Error
}

// resetDue compares calendar days only; time of day is ignored.
func resetDue(resetDate, now time.Time) bool {
	ry, rm, rd := resetDate.Date()
	ny, nm, nd := now.Date()
	if ry != ny {
		return ry < ny
	}
	if rm != nm {
		return rm < nm
	}
	return rd < nd
}
