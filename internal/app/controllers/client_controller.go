package controllers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"realtrust-http-service/internal/domain/models"
	"realtrust-http-service/internal/domain/services"
	"realtrust-http-service/internal/domain/services/container"
	"realtrust-http-service/internal/error/code"
	"realtrust-http-service/internal/error/response"
)

// InterfaceClientController defines the client testimonial controller interface
type InterfaceClientController interface {
	GetClients()
	CreateClient()
	UpdateClient()
	DeleteClient()
}

// ClientController handles client testimonial requests
type ClientController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewClientController creates a new client controller
func NewClientController(ctx *gin.Context, container *container.ServiceContainer) *ClientController {
	return &ClientController{
		Ctx:       ctx,
		Container: container,
	}
}

// CreateClientRequest is the testimonial creation payload
type CreateClientRequest struct {
	Name        string `json:"name" binding:"required,max=100" example:"Sarah Johnson"`
	Designation string `json:"designation" binding:"required,max=100" example:"CEO, TechStart Inc."`
	Description string `json:"description" binding:"required,max=1000" example:"A visionary leader with 15 years of experience"`
	Image       string `json:"image" binding:"required" example:"/uploads/clients/client-1712345678901-12345.png"`
}

// UpdateClientRequest carries a partial merge; nil fields stay unchanged
type UpdateClientRequest struct {
	Name        *string `json:"name"`
	Designation *string `json:"designation"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
}

// HandleClientFunc returns a Gin handler dispatching to the client controller
func HandleClientFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewClientController(ctx, container)

		switch method {
		case "getClients":
			controller.GetClients()
		case "createClient":
			controller.CreateClient()
		case "updateClient":
			controller.UpdateClient()
		case "deleteClient":
			controller.DeleteClient()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "Invalid method", nil)
		}
	}
}

// GetClients lists all testimonials, newest first
// @Summary      List clients
// @Description  Public client testimonials for the landing page
// @Tags         Client
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /clients [get]
func (c *ClientController) GetClients() {
	clientService := c.Container.GetService("client").(services.InterfaceClientService)
	clients, err := clientService.GetAllClients()
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, clients)
}

// CreateClient creates a testimonial
// @Summary      Create client
// @Tags         Client
// @Accept       json
// @Produce      json
// @Param        request body CreateClientRequest true "Client details"
// @Security     BearerAuth
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Router       /clients [post]
func (c *ClientController) CreateClient() {
	var req CreateClientRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ValidationFail(c.Ctx, err)
		return
	}

	client := &models.Client{
		Name:        strings.TrimSpace(req.Name),
		Designation: strings.TrimSpace(req.Designation),
		Description: strings.TrimSpace(req.Description),
		Image:       req.Image,
	}

	clientService := c.Container.GetService("client").(services.InterfaceClientService)
	if err := clientService.CreateClient(client); err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Created(c.Ctx, client)
}

// UpdateClient merges provided fields onto a testimonial
// @Summary      Update client
// @Description  Partial update; omitted fields are left unchanged
// @Tags         Client
// @Accept       json
// @Produce      json
// @Param        id path int true "Client ID"
// @Param        request body UpdateClientRequest true "Fields to change"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /clients/{id} [put]
func (c *ClientController) UpdateClient() {
	id, ok := parseIDParam(c.Ctx)
	if !ok {
		return
	}

	var req UpdateClientRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrBind, nil)
		return
	}

	updates := make(map[string]interface{})
	var fields []response.FieldError

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			fields = append(fields, response.FieldError{Field: "name", Message: "name must not be blank"})
		} else {
			updates["name"] = strings.TrimSpace(*req.Name)
		}
	}
	if req.Designation != nil {
		if strings.TrimSpace(*req.Designation) == "" {
			fields = append(fields, response.FieldError{Field: "designation", Message: "designation must not be blank"})
		} else {
			updates["designation"] = strings.TrimSpace(*req.Designation)
		}
	}
	if req.Description != nil {
		if strings.TrimSpace(*req.Description) == "" {
			fields = append(fields, response.FieldError{Field: "description", Message: "description must not be blank"})
		} else {
			updates["description"] = strings.TrimSpace(*req.Description)
		}
	}
	if req.Image != nil {
		if *req.Image == "" {
			fields = append(fields, response.FieldError{Field: "image", Message: "image must not be blank"})
		} else {
			updates["image"] = *req.Image
		}
	}

	if len(fields) > 0 {
		response.ValidationFailFields(c.Ctx, fields...)
		return
	}

	clientService := c.Container.GetService("client").(services.InterfaceClientService)
	client, err := clientService.UpdateClient(id, updates)
	if err != nil {
		if errors.Is(err, services.ErrClientNotFound) {
			response.NotFound(c.Ctx, code.ErrClientNotFound)
			return
		}
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, client)
}

// DeleteClient removes a testimonial
// @Summary      Delete client
// @Tags         Client
// @Produce      json
// @Param        id path int true "Client ID"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /clients/{id} [delete]
func (c *ClientController) DeleteClient() {
	id, ok := parseIDParam(c.Ctx)
	if !ok {
		return
	}

	clientService := c.Container.GetService("client").(services.InterfaceClientService)
	if err := clientService.DeleteClient(id); err != nil {
		if errors.Is(err, services.ErrClientNotFound) {
			response.NotFound(c.Ctx, code.ErrClientNotFound)
			return
		}
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, nil)
}
