package services

import (
	"errors"

	"gorm.io/gorm"

	"realtrust-http-service/internal/domain/models"
	"realtrust-http-service/internal/infrastructure/config"
	"realtrust-http-service/pkg/logger"
)

// ErrClientNotFound is returned when a client id does not exist.
var ErrClientNotFound = errors.New("client not found")

// InterfaceClientService defines the client testimonial service interface
type InterfaceClientService interface {
	GetAllClients() ([]models.Client, error)
	CreateClient(client *models.Client) error
	UpdateClient(id uint, updates map[string]interface{}) (*models.Client, error)
	DeleteClient(id uint) error
}

// ClientService manages client testimonials
type ClientService struct {
	DB     *gorm.DB
	Config *config.Config
	Cache  *RedisService // optional, nil disables caching
}

// NewClientService creates a new client service
func NewClientService(db *gorm.DB, cfg *config.Config, cache *RedisService) InterfaceClientService {
	return &ClientService{
		DB:     db,
		Config: cfg,
		Cache:  cache,
	}
}

// GetAllClients returns every testimonial, newest first, through the same
// Redis read-through cache as projects.
func (s *ClientService) GetAllClients() ([]models.Client, error) {
	if s.Cache != nil {
		var cached []models.Client
		if err := s.Cache.Get(CacheKeyClients, &cached); err == nil {
			return cached, nil
		}
	}

	var clients []models.Client
	if err := s.DB.Order("created_at DESC").Find(&clients).Error; err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if err := s.Cache.Set(CacheKeyClients, clients, contentCacheTTL); err != nil {
			logger.Warning("failed to cache client list: %v", err)
		}
	}

	return clients, nil
}

// CreateClient persists a new testimonial
func (s *ClientService) CreateClient(client *models.Client) error {
	if err := s.DB.Create(client).Error; err != nil {
		return err
	}
	s.purgeCache()
	return nil
}

// UpdateClient merges the provided fields onto an existing testimonial
func (s *ClientService) UpdateClient(id uint, updates map[string]interface{}) (*models.Client, error) {
	var client models.Client
	if err := s.DB.First(&client, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}

	if len(updates) > 0 {
		if err := s.DB.Model(&client).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	s.purgeCache()

	if err := s.DB.First(&client, id).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

// DeleteClient removes a testimonial permanently
func (s *ClientService) DeleteClient(id uint) error {
	result := s.DB.Delete(&models.Client{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrClientNotFound
	}
	s.purgeCache()
	return nil
}

func (s *ClientService) purgeCache() {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Delete(CacheKeyClients); err != nil {
		logger.Warning("failed to purge client cache: %v", err)
	}
}
