package controllers

import (
	"bytes"
	"encoding/csv"
	"errors"
	"regexp"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"realtrust-http-service/internal/domain/models"
	"realtrust-http-service/internal/domain/services"
	"realtrust-http-service/internal/domain/services/container"
	"realtrust-http-service/internal/error/code"
	"realtrust-http-service/internal/error/response"
)

// phoneRegexp matches digits plus common separators, same as the landing
// page's client-side check.
var phoneRegexp = regexp.MustCompile(`^[\d\s\-\+\(\)]+$`)

// leadCSVHeader is the fixed export column set.
var leadCSVHeader = []string{"name", "email", "phone", "company", "message", "status", "createdAt"}

// InterfaceLeadController defines the lead controller interface
type InterfaceLeadController interface {
	CreateLead()
	GetLeads()
	GetLead()
	UpdateLead()
	DeleteLead()
	GetLeadStats()
	ExportLeads()
	GetAnalytics()
}

// LeadController handles lead capture and management requests
type LeadController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewLeadController creates a new lead controller
func NewLeadController(ctx *gin.Context, container *container.ServiceContainer) *LeadController {
	return &LeadController{
		Ctx:       ctx,
		Container: container,
	}
}

// CreateLeadRequest is the public landing-page submission payload
type CreateLeadRequest struct {
	Name    string `json:"name" binding:"required,min=2,max=100" example:"John Doe"`
	Email   string `json:"email" binding:"required,email" example:"john@example.com"`
	Phone   string `json:"phone" binding:"required" example:"+1 555 012 3456"`
	City    string `json:"city" binding:"omitempty,max=100" example:"Pune"`
	Company string `json:"company" binding:"omitempty,max=100" example:"Acme Corp"`
	Message string `json:"message" binding:"omitempty,max=1000" example:"Interested in a consultation"`
}

// UpdateLeadRequest transitions a lead's lifecycle status
type UpdateLeadRequest struct {
	Status string `json:"status" binding:"required" example:"qualified"`
}

// HandleLeadFunc returns a Gin handler dispatching to the lead controller
func HandleLeadFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewLeadController(ctx, container)

		switch method {
		case "createLead":
			controller.CreateLead()
		case "getLeads":
			controller.GetLeads()
		case "getLead":
			controller.GetLead()
		case "updateLead":
			controller.UpdateLead()
		case "deleteLead":
			controller.DeleteLead()
		case "getLeadStats":
			controller.GetLeadStats()
		case "exportLeads":
			controller.ExportLeads()
		case "getAnalytics":
			controller.GetAnalytics()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "Invalid method", nil)
		}
	}
}

// CreateLead accepts a public contact submission
// @Summary      Submit a lead
// @Description  Create a lead from the public landing page form
// @Tags         Lead
// @Accept       json
// @Produce      json
// @Param        request body CreateLeadRequest true "Contact details"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse "Validation failure or duplicate email"
// @Router       /leads [post]
func (c *LeadController) CreateLead() {
	var req CreateLeadRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ValidationFail(c.Ctx, err)
		return
	}

	if !phoneRegexp.MatchString(req.Phone) {
		response.ValidationFailFields(c.Ctx, response.FieldError{
			Field:   "phone",
			Message: "please provide a valid phone number",
		})
		return
	}

	lead := &models.Lead{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		City:    req.City,
		Company: req.Company,
		Message: req.Message,
	}

	leadService := c.Container.GetService("lead").(services.InterfaceLeadService)
	if err := leadService.CreateLead(lead); err != nil {
		if errors.Is(err, services.ErrLeadExists) {
			response.Fail(c.Ctx, code.ErrLeadAlreadyExist, nil)
			return
		}
		response.ServerError(c.Ctx)
		return
	}

	response.Created(c.Ctx, lead)
}

// GetLeads lists leads with filtering, search and pagination
// @Summary      List leads
// @Description  Paginated lead listing with optional status filter and substring search
// @Tags         Lead
// @Accept       json
// @Produce      json
// @Param        page query int false "Page number, default 1"
// @Param        limit query int false "Page size, default 10, max 100"
// @Param        status query string false "Exact status filter"
// @Param        search query string false "Substring match over name/email/company"
// @Param        sort query string false "Sort key: created_at, -created_at, name, -name, status"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  ErrorResponse
// @Router       /admin/leads [get]
func (c *LeadController) GetLeads() {
	page, _ := strconv.Atoi(c.Ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.Ctx.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	query := services.LeadQuery{
		Page:     page,
		PageSize: limit,
		Status:   c.Ctx.Query("status"),
		Search:   c.Ctx.Query("search"),
		Sort:     c.Ctx.DefaultQuery("sort", "-created_at"),
	}

	leadService := c.Container.GetService("lead").(services.InterfaceLeadService)
	leads, total, err := leadService.GetLeads(query)
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"data": leads,
		"pagination": gin.H{
			"page":  page,
			"limit": limit,
			"total": total,
			"pages": (total + int64(limit) - 1) / int64(limit),
		},
	})
}

// GetLead fetches a single lead
// @Summary      Get lead
// @Tags         Lead
// @Produce      json
// @Param        id path int true "Lead ID"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /admin/leads/{id} [get]
func (c *LeadController) GetLead() {
	id, ok := c.parseID()
	if !ok {
		return
	}

	leadService := c.Container.GetService("lead").(services.InterfaceLeadService)
	lead, err := leadService.GetLeadByID(id)
	if err != nil {
		if errors.Is(err, services.ErrLeadNotFound) {
			response.NotFound(c.Ctx, code.ErrLeadNotFound)
			return
		}
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, lead)
}

// UpdateLead changes a lead's status
// @Summary      Update lead status
// @Description  Set the lead to one of new, contacted, qualified, converted
// @Tags         Lead
// @Accept       json
// @Produce      json
// @Param        id path int true "Lead ID"
// @Param        request body UpdateLeadRequest true "New status"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /admin/leads/{id} [put]
func (c *LeadController) UpdateLead() {
	id, ok := c.parseID()
	if !ok {
		return
	}

	var req UpdateLeadRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ValidationFail(c.Ctx, err)
		return
	}

	leadService := c.Container.GetService("lead").(services.InterfaceLeadService)
	lead, err := leadService.UpdateLeadStatus(id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidLeadStatus):
			response.Fail(c.Ctx, code.ErrInvalidLeadStatus, nil)
		case errors.Is(err, services.ErrLeadNotFound):
			response.NotFound(c.Ctx, code.ErrLeadNotFound)
		default:
			response.Fail(c.Ctx, code.ErrDatabase, nil)
		}
		return
	}

	response.Success(c.Ctx, lead)
}

// DeleteLead removes a lead
// @Summary      Delete lead
// @Tags         Lead
// @Produce      json
// @Param        id path int true "Lead ID"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /admin/leads/{id} [delete]
func (c *LeadController) DeleteLead() {
	id, ok := c.parseID()
	if !ok {
		return
	}

	leadService := c.Container.GetService("lead").(services.InterfaceLeadService)
	if err := leadService.DeleteLead(id); err != nil {
		if errors.Is(err, services.ErrLeadNotFound) {
			response.NotFound(c.Ctx, code.ErrLeadNotFound)
			return
		}
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, nil)
}

// GetLeadStats returns the dashboard aggregates
// @Summary      Lead statistics
// @Description  Totals, per-status counts, last-30-day count and conversion rate
// @Tags         Lead
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /admin/leads/stats [get]
func (c *LeadController) GetLeadStats() {
	leadService := c.Container.GetService("lead").(services.InterfaceLeadService)
	stats, err := leadService.GetLeadStats()
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, stats)
}

// ExportLeads downloads the full lead collection as CSV
// @Summary      Export leads
// @Description  Full collection as a CSV attachment, no pagination
// @Tags         Lead
// @Produce      text/csv
// @Security     BearerAuth
// @Success      200  {string}  string "CSV file"
// @Router       /admin/leads/export [get]
func (c *LeadController) ExportLeads() {
	leadService := c.Container.GetService("lead").(services.InterfaceLeadService)
	leads, err := leadService.GetAllLeads()
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write(leadCSVHeader)
	for _, lead := range leads {
		_ = w.Write([]string{
			lead.Name,
			lead.Email,
			lead.Phone,
			lead.Company,
			lead.Message,
			lead.Status,
			lead.CreatedAt.Format(time.RFC3339),
		})
	}
	w.Flush()

	c.Ctx.Header("Content-Disposition", "attachment; filename=leads.csv")
	c.Ctx.Data(200, "text/csv", buf.Bytes())
}

// GetAnalytics returns charting data
// @Summary      Lead analytics
// @Description  Leads grouped by creation day and by status, optional inclusive date range
// @Tags         Lead
// @Produce      json
// @Param        startDate query string false "Range start, YYYY-MM-DD"
// @Param        endDate query string false "Range end, YYYY-MM-DD"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Router       /admin/analytics [get]
func (c *LeadController) GetAnalytics() {
	var start, end *time.Time

	if s := c.Ctx.Query("startDate"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			response.ValidationFailFields(c.Ctx, response.FieldError{Field: "startDate", Message: "must be YYYY-MM-DD"})
			return
		}
		start = &t
	}
	if s := c.Ctx.Query("endDate"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			response.ValidationFailFields(c.Ctx, response.FieldError{Field: "endDate", Message: "must be YYYY-MM-DD"})
			return
		}
		// inclusive bound: cover the whole end day
		t = t.Add(24*time.Hour - time.Nanosecond)
		end = &t
	}

	leadService := c.Container.GetService("lead").(services.InterfaceLeadService)
	analytics, err := leadService.GetAnalytics(start, end)
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, analytics)
}

// parseID reads the :id path parameter, writing a validation failure on bad
// input.
func (c *LeadController) parseID() (uint, bool) {
	idStr := c.Ctx.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		response.ValidationFailFields(c.Ctx, response.FieldError{Field: "id", Message: "must be a positive integer"})
		return 0, false
	}
	return uint(id), true
}
