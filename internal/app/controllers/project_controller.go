package controllers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"realtrust-http-service/internal/domain/models"
	"realtrust-http-service/internal/domain/services"
	"realtrust-http-service/internal/domain/services/container"
	"realtrust-http-service/internal/error/code"
	"realtrust-http-service/internal/error/response"
)

// InterfaceProjectController defines the project controller interface
type InterfaceProjectController interface {
	GetProjects()
	CreateProject()
	UpdateProject()
	DeleteProject()
}

// ProjectController handles showcased project requests
type ProjectController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewProjectController creates a new project controller
func NewProjectController(ctx *gin.Context, container *container.ServiceContainer) *ProjectController {
	return &ProjectController{
		Ctx:       ctx,
		Container: container,
	}
}

// CreateProjectRequest is the project creation payload
type CreateProjectRequest struct {
	Name        string `json:"name" binding:"required,max=100" example:"Real Estate Platform"`
	Description string `json:"description" binding:"required,max=1000" example:"A platform for buying and renting properties"`
	Image       string `json:"image" binding:"required" example:"/uploads/projects/project-1712345678901-12345.png"`
	Category    string `json:"category" binding:"omitempty,max=100" example:"Web Development"`
}

// UpdateProjectRequest carries a partial merge; nil fields stay unchanged
type UpdateProjectRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
	Category    *string `json:"category"`
}

// HandleProjectFunc returns a Gin handler dispatching to the project controller
func HandleProjectFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewProjectController(ctx, container)

		switch method {
		case "getProjects":
			controller.GetProjects()
		case "createProject":
			controller.CreateProject()
		case "updateProject":
			controller.UpdateProject()
		case "deleteProject":
			controller.DeleteProject()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "Invalid method", nil)
		}
	}
}

// GetProjects lists all projects, newest first
// @Summary      List projects
// @Description  Public project showcase for the landing page
// @Tags         Project
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /projects [get]
func (c *ProjectController) GetProjects() {
	projectService := c.Container.GetService("project").(services.InterfaceProjectService)
	projects, err := projectService.GetAllProjects()
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, projects)
}

// CreateProject creates a project
// @Summary      Create project
// @Tags         Project
// @Accept       json
// @Produce      json
// @Param        request body CreateProjectRequest true "Project details"
// @Security     BearerAuth
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Router       /projects [post]
func (c *ProjectController) CreateProject() {
	var req CreateProjectRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ValidationFail(c.Ctx, err)
		return
	}

	project := &models.Project{
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		Image:       req.Image,
		Category:    strings.TrimSpace(req.Category),
	}

	projectService := c.Container.GetService("project").(services.InterfaceProjectService)
	if err := projectService.CreateProject(project); err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Created(c.Ctx, project)
}

// UpdateProject merges provided fields onto a project
// @Summary      Update project
// @Description  Partial update; omitted fields are left unchanged
// @Tags         Project
// @Accept       json
// @Produce      json
// @Param        id path int true "Project ID"
// @Param        request body UpdateProjectRequest true "Fields to change"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /projects/{id} [put]
func (c *ProjectController) UpdateProject() {
	id, ok := parseIDParam(c.Ctx)
	if !ok {
		return
	}

	var req UpdateProjectRequest
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
	if req.Category != nil {
		updates["category"] = strings.TrimSpace(*req.Category)
	}

	if len(fields) > 0 {
		response.ValidationFailFields(c.Ctx, fields...)
		return
	}

	projectService := c.Container.GetService("project").(services.InterfaceProjectService)
	project, err := projectService.UpdateProject(id, updates)
	if err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			response.NotFound(c.Ctx, code.ErrProjectNotFound)
			return
		}
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, project)
}

// DeleteProject removes a project
// @Summary      Delete project
// @Tags         Project
// @Produce      json
// @Param        id path int true "Project ID"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /projects/{id} [delete]
func (c *ProjectController) DeleteProject() {
	id, ok := parseIDParam(c.Ctx)
	if !ok {
		return
	}

	projectService := c.Container.GetService("project").(services.InterfaceProjectService)
	if err := projectService.DeleteProject(id); err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			response.NotFound(c.Ctx, code.ErrProjectNotFound)
			return
		}
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, nil)
}

// parseIDParam reads the :id path parameter shared by the content
// controllers.
func parseIDParam(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		response.ValidationFailFields(ctx, response.FieldError{Field: "id", Message: "must be a positive integer"})
		return 0, false
	}
	return uint(id), true
}
