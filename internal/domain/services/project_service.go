package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"realtrust-http-service/internal/domain/models"
	"realtrust-http-service/internal/infrastructure/config"
	"realtrust-http-service/pkg/logger"
)

// ErrProjectNotFound is returned when a project id does not exist.
var ErrProjectNotFound = errors.New("project not found")

// contentCacheTTL bounds how long the public content lists may be stale
// when a cache purge is missed.
const contentCacheTTL = 5 * time.Minute

// InterfaceProjectService defines the project content service interface
type InterfaceProjectService interface {
	GetAllProjects() ([]models.Project, error)
	CreateProject(project *models.Project) error
	UpdateProject(id uint, updates map[string]interface{}) (*models.Project, error)
	DeleteProject(id uint) error
}

// ProjectService manages showcased projects
type ProjectService struct {
	DB     *gorm.DB
	Config *config.Config
	Cache  *RedisService // optional, nil disables caching
}

// NewProjectService creates a new project service
func NewProjectService(db *gorm.DB, cfg *config.Config, cache *RedisService) InterfaceProjectService {
	return &ProjectService{
		DB:     db,
		Config: cfg,
		Cache:  cache,
	}
}

// GetAllProjects returns every project, newest first. The public landing
// page hits this constantly, so the list is cached in Redis and purged on
// every mutation.
func (s *ProjectService) GetAllProjects() ([]models.Project, error) {
	if s.Cache != nil {
		var cached []models.Project
		if err := s.Cache.Get(CacheKeyProjects, &cached); err == nil {
			return cached, nil
		}
	}

	var projects []models.Project
	if err := s.DB.Order("created_at DESC").Find(&projects).Error; err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if err := s.Cache.Set(CacheKeyProjects, projects, contentCacheTTL); err != nil {
			logger.Warning("failed to cache project list: %v", err)
		}
	}

	return projects, nil
}

// CreateProject persists a new project
func (s *ProjectService) CreateProject(project *models.Project) error {
	if err := s.DB.Create(project).Error; err != nil {
		return err
	}
	s.purgeCache()
	return nil
}

// UpdateProject merges the provided fields onto an existing project.
// Fields absent from updates are left unchanged.
func (s *ProjectService) UpdateProject(id uint, updates map[string]interface{}) (*models.Project, error) {
	var project models.Project
	if err := s.DB.First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}

	if len(updates) > 0 {
		if err := s.DB.Model(&project).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	s.purgeCache()

	if err := s.DB.First(&project, id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// DeleteProject removes a project permanently
func (s *ProjectService) DeleteProject(id uint) error {
	result := s.DB.Delete(&models.Project{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProjectNotFound
	}
	s.purgeCache()
	return nil
}

func (s *ProjectService) purgeCache() {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Delete(CacheKeyProjects); err != nil {
		logger.Warning("failed to purge project cache: %v", err)
	}
}
