package services

import (
	"errors"
	"math"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"

	"realtrust-http-service/internal/domain/models"
	"realtrust-http-service/internal/infrastructure/config"
)

var (
	// ErrLeadExists is returned when a lead email is already registered.
	ErrLeadExists = errors.New("a lead with this email already exists")
	// ErrLeadNotFound is returned when a lead id does not exist.
	ErrLeadNotFound = errors.New("lead not found")
	// ErrInvalidLeadStatus is returned for a status outside the lifecycle enum.
	ErrInvalidLeadStatus = errors.New("invalid lead status")
)

// leadSortKeys whitelists the sort parameter values accepted by GetLeads.
var leadSortKeys = map[string]string{
	"created_at":  "created_at ASC",
	"-created_at": "created_at DESC",
	"name":        "name ASC",
	"-name":       "name DESC",
	"status":      "status ASC",
}

// LeadQuery holds the listing parameters for the admin lead table.
type LeadQuery struct {
	Page     int
	PageSize int
	Status   string // exact status filter, empty for all
	Search   string // substring match over name/email/company
	Sort     string // whitelisted sort key, default "-created_at"
}

// LeadStats aggregates the dashboard statistics.
type LeadStats struct {
	Total          int64            `json:"total"`
	ByStatus       map[string]int64 `json:"byStatus"`
	RecentLeads    int64            `json:"recentLeads"` // created within the last 30 days
	ConversionRate float64          `json:"conversionRate"`
}

// DateCount is a per-day lead count for charting.
type DateCount struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Count int64  `json:"count"`
}

// StatusCount is a per-status lead count for charting.
type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// LeadAnalytics groups leads by creation day and by status.
type LeadAnalytics struct {
	LeadsOverTime []DateCount   `json:"leadsOverTime"`
	LeadsByStatus []StatusCount `json:"leadsByStatus"`
}

// InterfaceLeadService defines the lead lifecycle service interface
type InterfaceLeadService interface {
	CreateLead(lead *models.Lead) error
	GetLeads(q LeadQuery) ([]models.Lead, int64, error)
	GetLeadByID(id uint) (*models.Lead, error)
	UpdateLeadStatus(id uint, status string) (*models.Lead, error)
	DeleteLead(id uint) error
	GetAllLeads() ([]models.Lead, error)
	GetLeadStats() (*LeadStats, error)
	GetAnalytics(start, end *time.Time) (*LeadAnalytics, error)
}

// LeadService manages the lead lifecycle
type LeadService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewLeadService creates a new lead service
func NewLeadService(db *gorm.DB, cfg *config.Config) InterfaceLeadService {
	return &LeadService{
		DB:     db,
		Config: cfg,
	}
}

// CreateLead persists a public submission. Status always starts at "new"
// regardless of what the caller set. The email unique index backstops the
// duplicate pre-check under concurrent submissions.
func (s *LeadService) CreateLead(lead *models.Lead) error {
	lead.Email = strings.ToLower(strings.TrimSpace(lead.Email))
	lead.Status = models.LeadStatusNew

	var count int64
	if err := s.DB.Model(&models.Lead{}).Where("email = ?", lead.Email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrLeadExists
	}

	if err := s.DB.Create(lead).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrLeadExists
		}
		return err
	}
	return nil
}

// GetLeads returns one page of leads matching the query plus the total count
func (s *LeadService) GetLeads(q LeadQuery) ([]models.Lead, int64, error) {
	var leads []models.Lead
	var total int64

	query := s.DB.Model(&models.Lead{})

	if q.Status != "" {
		query = query.Where("status = ?", q.Status)
	}
	if q.Search != "" {
		like := "%" + q.Search + "%"
		query = query.Where("name LIKE ? OR email LIKE ? OR company LIKE ?", like, like, like)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order, ok := leadSortKeys[q.Sort]
	if !ok {
		order = leadSortKeys["-created_at"]
	}

	offset := (q.Page - 1) * q.PageSize
	if err := query.Order(order).Offset(offset).Limit(q.PageSize).Find(&leads).Error; err != nil {
		return nil, 0, err
	}

	return leads, total, nil
}

// GetLeadByID fetches a single lead
func (s *LeadService) GetLeadByID(id uint) (*models.Lead, error) {
	var lead models.Lead
	if err := s.DB.First(&lead, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLeadNotFound
		}
		return nil, err
	}
	return &lead, nil
}

// UpdateLeadStatus transitions a lead to a new lifecycle status. Only the
// status column is written.
func (s *LeadService) UpdateLeadStatus(id uint, status string) (*models.Lead, error) {
	if !models.IsValidLeadStatus(status) {
		return nil, ErrInvalidLeadStatus
	}

	lead, err := s.GetLeadByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.DB.Model(lead).Update("status", status).Error; err != nil {
		return nil, err
	}
	lead.Status = status

	return lead, nil
}

// DeleteLead removes a lead permanently
func (s *LeadService) DeleteLead(id uint) error {
	result := s.DB.Delete(&models.Lead{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrLeadNotFound
	}
	return nil
}

// GetAllLeads returns the full collection, newest first, for CSV export
func (s *LeadService) GetAllLeads() ([]models.Lead, error) {
	var leads []models.Lead
	if err := s.DB.Order("created_at DESC").Find(&leads).Error; err != nil {
		return nil, err
	}
	return leads, nil
}

// GetLeadStats computes the dashboard aggregates. The conversion rate is
// converted/total*100 rounded to two decimals, and 0 on an empty collection.
func (s *LeadService) GetLeadStats() (*LeadStats, error) {
	stats := &LeadStats{ByStatus: make(map[string]int64, len(models.LeadStatuses))}

	if err := s.DB.Model(&models.Lead{}).Count(&stats.Total).Error; err != nil {
		return nil, err
	}

	for _, status := range models.LeadStatuses {
		var count int64
		if err := s.DB.Model(&models.Lead{}).Where("status = ?", status).Count(&count).Error; err != nil {
			return nil, err
		}
		stats.ByStatus[status] = count
	}

	thirtyDaysAgo := time.Now().AddDate(0, 0, -30)
	if err := s.DB.Model(&models.Lead{}).Where("created_at >= ?", thirtyDaysAgo).Count(&stats.RecentLeads).Error; err != nil {
		return nil, err
	}

	if stats.Total > 0 {
		converted := stats.ByStatus[models.LeadStatusConverted]
		stats.ConversionRate = math.Round(float64(converted)/float64(stats.Total)*100*100) / 100
	}

	return stats, nil
}

// GetAnalytics buckets leads by creation day and by status within an
// optional inclusive date range. Day bucketing happens in Go to stay
// portable across SQL dialects.
func (s *LeadService) GetAnalytics(start, end *time.Time) (*LeadAnalytics, error) {
	query := s.DB.Model(&models.Lead{})
	if start != nil {
		query = query.Where("created_at >= ?", *start)
	}
	if end != nil {
		query = query.Where("created_at <= ?", *end)
	}

	var createdAts []time.Time
	if err := query.Session(&gorm.Session{}).Pluck("created_at", &createdAts).Error; err != nil {
		return nil, err
	}

	byDay := make(map[string]int64)
	for _, t := range createdAts {
		byDay[t.Format("2006-01-02")]++
	}

	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Strings(days)

	overTime := make([]DateCount, 0, len(days))
	for _, day := range days {
		overTime = append(overTime, DateCount{Date: day, Count: byDay[day]})
	}

	var byStatus []StatusCount
	if err := query.Session(&gorm.Session{}).Select("status, COUNT(*) AS count").Group("status").Scan(&byStatus).Error; err != nil {
		return nil, err
	}
	if byStatus == nil {
		byStatus = []StatusCount{}
	}

	return &LeadAnalytics{
		LeadsOverTime: overTime,
		LeadsByStatus: byStatus,
	}, nil
}
