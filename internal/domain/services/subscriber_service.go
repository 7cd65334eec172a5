package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"realtrust-http-service/internal/domain/models"
	"realtrust-http-service/internal/infrastructure/config"
)

var (
	// ErrSubscriberExists is returned when an email is already subscribed.
	ErrSubscriberExists = errors.New("email already subscribed")
	// ErrSubscriberNotFound is returned when a subscriber id does not exist.
	ErrSubscriberNotFound = errors.New("subscriber not found")
)

// InterfaceSubscriberService defines the newsletter subscriber service interface
type InterfaceSubscriberService interface {
	Subscribe(email string) (*models.Subscriber, error)
	GetAllSubscribers() ([]models.Subscriber, error)
	DeleteSubscriber(id uint) error
}

// SubscriberService manages newsletter subscribers
type SubscriberService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewSubscriberService creates a new subscriber service
func NewSubscriberService(db *gorm.DB, cfg *config.Config) InterfaceSubscriberService {
	return &SubscriberService{
		DB:     db,
		Config: cfg,
	}
}

// Subscribe records a public newsletter opt-in. The email unique index
// backstops the duplicate pre-check.
func (s *SubscriberService) Subscribe(email string) (*models.Subscriber, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var count int64
	if err := s.DB.Model(&models.Subscriber{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrSubscriberExists
	}

	subscribed := true
	subscriber := &models.Subscriber{
		Email:      email,
		Subscribed: &subscribed,
	}

	if err := s.DB.Create(subscriber).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrSubscriberExists
		}
		return nil, err
	}
	return subscriber, nil
}

// GetAllSubscribers returns active subscribers, newest first
func (s *SubscriberService) GetAllSubscribers() ([]models.Subscriber, error) {
	var subscribers []models.Subscriber
	if err := s.DB.Where("subscribed = ?", true).Order("created_at DESC").Find(&subscribers).Error; err != nil {
		return nil, err
	}
	return subscribers, nil
}

// DeleteSubscriber removes a subscriber permanently. There is no
// soft-unsubscribe; deletion is hard.
func (s *SubscriberService) DeleteSubscriber(id uint) error {
	result := s.DB.Delete(&models.Subscriber{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSubscriberNotFound
	}
	return nil
}
