package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"realtrust-http-service/internal/domain/models"
	"realtrust-http-service/internal/infrastructure/config"
	"realtrust-http-service/utils"
)

var (
	// ErrAdminExists is returned by Register on an email collision.
	ErrAdminExists = errors.New("admin already exists with this email")
	// ErrAdminNotFound is returned when an administrator id does not exist.
	ErrAdminNotFound = errors.New("administrator not found")
	// ErrInvalidCredentials is returned for any login failure. It is a
	// single undifferentiated error so callers cannot probe which emails
	// are registered.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// InterfaceAdminService defines the administrator credential service interface
type InterfaceAdminService interface {
	Register(name, email, password string) (*models.Admin, error)
	Login(email, password string) (*models.Admin, error)
	GetAdminByID(id uint) (*models.Admin, error)
	CheckPassword(password, hash string) bool
}

// AdminService manages administrator identities and credential checks
type AdminService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewAdminService creates a new administrator service
func NewAdminService(db *gorm.DB, cfg *config.Config) InterfaceAdminService {
	return &AdminService{
		DB:     db,
		Config: cfg,
	}
}

// CheckPassword verifies a plaintext password against a stored bcrypt hash
func (s *AdminService) CheckPassword(password, hash string) bool {
	return utils.CheckPasswordHash(password, hash)
}

// Register creates a new administrator with a hashed password. Emails are
// stored lowercase so the uniqueness check is case-insensitive. The unique
// index is the source of truth for duplicates; a concurrent insert that
// slips past the pre-check still surfaces as ErrAdminExists.
func (s *AdminService) Register(name, email, password string) (*models.Admin, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var count int64
	if err := s.DB.Model(&models.Admin{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrAdminExists
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	admin := &models.Admin{
		Name:     strings.TrimSpace(name),
		Email:    email,
		Password: hashed,
		Role:     models.RoleAdmin,
	}

	if err := s.DB.Create(admin).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAdminExists
		}
		return nil, err
	}
	return admin, nil
}

// Login verifies credentials and records the login time. Unknown email and
// wrong password both return ErrInvalidCredentials.
func (s *AdminService) Login(email, password string) (*models.Admin, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var admin models.Admin
	if err := s.DB.Where("email = ?", email).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.CheckPasswordHash(password, admin.Password) {
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	if err := s.DB.Model(&admin).Update("last_login_at", &now).Error; err != nil {
		return nil, err
	}
	admin.LastLoginAt = &now

	return &admin, nil
}

// GetAdminByID fetches an administrator by id
func (s *AdminService) GetAdminByID(id uint) (*models.Admin, error) {
	var admin models.Admin
	if err := s.DB.First(&admin, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}
	return &admin, nil
}
