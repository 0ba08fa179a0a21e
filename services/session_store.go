package services

import (
	"errors"
	"sync"

	"gorm.io/gorm"

	"github.com/rakapradana/boba-order-app/models"
)

// SessionStore persists one dialog session per normalized phone number.
// Turns for the same phone are serialized with a per-key mutex so two
// messages arriving back to back cannot interleave their session writes.
type SessionStore struct {
	db    *gorm.DB
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewSessionStore(db *gorm.DB) *SessionStore {
	return &SessionStore{
		db:    db,
		locks: make(map[string]*sync.Mutex),
	}
}

// Lock serializes turns for one phone. It returns the unlock func.
func (s *SessionStore) Lock(phone string) func() {
	s.mu.Lock()
	l, ok := s.locks[phone]
	if !ok {
		l = &sync.Mutex{}
		s.locks[phone] = l
	}
	s.mu.Unlock()

	l.Lock()
	return l.Unlock
}

// GetOrCreate returns the open session for a phone, creating a fresh one at
// pick_drink on the first inbound message.
func (s *SessionStore) GetOrCreate(phone string) (*models.OrderSession, error) {
	var session models.OrderSession
	err := s.db.Where("phone = ?", phone).First(&session).Error
	if err == nil {
		return &session, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	session = models.OrderSession{
		Phone: phone,
		Step:  models.StepPickDrink,
		Cart:  "[]",
	}
	if err := s.db.Create(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

// Save writes the mutated session back.
func (s *SessionStore) Save(session *models.OrderSession) error {
	return s.db.Save(session).Error
}
