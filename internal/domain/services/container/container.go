package container

import (
	"sync"
	"time"

	"gorm.io/gorm"

	"realtrust-http-service/internal/domain/services"
	"realtrust-http-service/internal/infrastructure/config"
	"realtrust-http-service/pkg/logger"
)

// ServiceContainer wires every service together. It is constructed once at
// startup and handed to the controllers; nothing reaches for a global.
type ServiceContainer struct {
	db     *gorm.DB
	config *config.Config

	// base services
	jwtService   services.InterfaceJWTService
	redisService *services.RedisService

	// domain services
	adminService      services.InterfaceAdminService
	leadService       services.InterfaceLeadService
	projectService    services.InterfaceProjectService
	clientService     services.InterfaceClientService
	subscriberService services.InterfaceSubscriberService

	mu sync.RWMutex
}

// NewServiceContainer creates the container and initializes all services.
// redisService may be nil; the content caches are skipped in that case.
func NewServiceContainer(db *gorm.DB, cfg *config.Config, redisService *services.RedisService) *ServiceContainer {
	if db == nil {
		panic("database connection is nil")
	}
	if cfg == nil {
		panic("configuration is nil")
	}

	if redisService != nil {
		if err := redisService.Ping(5 * time.Second); err != nil {
			logger.Warning("Redis ping failed: %v, content caching disabled", err)
			redisService = nil
		}
	}

	container := &ServiceContainer{
		db:           db,
		config:       cfg,
		redisService: redisService,
	}
	container.initializeServices()
	return container
}

// initializeServices constructs every service
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.jwtService = services.NewJWTService(c.config)

	c.adminService = services.NewAdminService(c.db, c.config)
	c.leadService = services.NewLeadService(c.db, c.config)
	c.projectService = services.NewProjectService(c.db, c.config, c.redisService)
	c.clientService = services.NewClientService(c.db, c.config, c.redisService)
	c.subscriberService = services.NewSubscriberService(c.db, c.config)
}

// GetService returns a service by name
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case "config":
		return c.config
	case "db":
		return c.db
	case "jwt":
		return c.jwtService
	case "redis":
		return c.redisService
	case "admin":
		return c.adminService
	case "lead":
		return c.leadService
	case "project":
		return c.projectService
	case "client":
		return c.clientService
	case "subscriber":
		return c.subscriberService
	default:
		return nil
	}
}

// GetDB returns the database handle
func (c *ServiceContainer) GetDB() *gorm.DB {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.db
}

// GetConfig returns the application configuration
func (c *ServiceContainer) GetConfig() *config.Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.config
}
