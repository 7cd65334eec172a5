package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"realtrust-http-service/internal/app/middleware"
	"realtrust-http-service/internal/domain/services"
	"realtrust-http-service/internal/domain/services/container"
	"realtrust-http-service/internal/error/code"
	"realtrust-http-service/internal/error/response"
)

// InterfaceAdminController defines the administrator auth controller interface
type InterfaceAdminController interface {
	Register()
	Login()
	Verify()
}

// AdminController handles administrator registration and login
type AdminController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAdminController creates a new administrator controller
func NewAdminController(ctx *gin.Context, container *container.ServiceContainer) *AdminController {
	return &AdminController{
		Ctx:       ctx,
		Container: container,
	}
}

// RegisterRequest is the administrator registration payload
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100" example:"Admin"`
	Email    string `json:"email" binding:"required,email" example:"admin@example.com"`
	Password string `json:"password" binding:"required,min=6" example:"secret1"`
}

// LoginRequest is the administrator login payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"admin@example.com"`
	Password string `json:"password" binding:"required" example:"secret1"`
}

// ErrorResponse documents the failure envelope for swagger
type ErrorResponse struct {
	Code    int         `json:"code" example:"101002"`
	Success bool        `json:"success" example:"false"`
	Message string      `json:"message" example:"Invalid credentials"`
	Data    interface{} `json:"data"`
}

// HandleAdminFunc returns a Gin handler dispatching to the admin controller
func HandleAdminFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAdminController(ctx, container)

		switch method {
		case "register":
			controller.Register()
		case "login":
			controller.Login()
		case "verify":
			controller.Verify()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "Invalid method", nil)
		}
	}
}

// adminIdentity is the admin view returned by auth endpoints; the password
// hash never leaves the service layer.
func adminIdentity(id uint, name, email, role string) gin.H {
	return gin.H{
		"id":    id,
		"name":  name,
		"email": email,
		"role":  role,
	}
}

// Register creates an administrator account
// @Summary      Register administrator
// @Description  Create a new administrator account and return a session token
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        request body RegisterRequest true "Administrator details"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /admin/register [post]
func (c *AdminController) Register() {
	var req RegisterRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ValidationFail(c.Ctx, err)
		return
	}

	adminService := c.Container.GetService("admin").(services.InterfaceAdminService)
	admin, err := adminService.Register(req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrAdminExists) {
			response.Fail(c.Ctx, code.ErrAdminAlreadyExist, nil)
			return
		}
		response.ServerError(c.Ctx)
		return
	}

	jwtService := c.Container.GetService("jwt").(services.InterfaceJWTService)
	token, err := jwtService.GenerateToken(admin.ID, admin.Role)
	if err != nil {
		response.ServerError(c.Ctx)
		return
	}

	response.Created(c.Ctx, gin.H{
		"admin": adminIdentity(admin.ID, admin.Name, admin.Email, admin.Role),
		"token": token,
	})
}

// Login authenticates an administrator
// @Summary      Administrator login
// @Description  Verify credentials, return a session token and set it as an http-only cookie
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login credentials"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse "Invalid credentials, deliberately undifferentiated"
// @Router       /admin/login [post]
func (c *AdminController) Login() {
	var req LoginRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ValidationFail(c.Ctx, err)
		return
	}

	adminService := c.Container.GetService("admin").(services.InterfaceAdminService)
	admin, err := adminService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			response.Fail(c.Ctx, code.ErrInvalidCredentials, nil)
			return
		}
		response.ServerError(c.Ctx)
		return
	}

	jwtService := c.Container.GetService("jwt").(services.InterfaceJWTService)
	token, err := jwtService.GenerateToken(admin.ID, admin.Role)
	if err != nil {
		response.ServerError(c.Ctx)
		return
	}

	// Token travels both ways: in the body for bearer use and as an
	// http-only cookie so browser sessions survive a reload.
	cfg := c.Container.GetConfig()
	c.Ctx.SetSameSite(http.SameSiteLaxMode)
	c.Ctx.SetCookie(middleware.TokenCookieName, token, cfg.JWTExpireHours*3600, "/", "", false, true)

	response.Success(c.Ctx, gin.H{
		"admin": adminIdentity(admin.ID, admin.Name, admin.Email, admin.Role),
		"token": token,
	})
}

// Verify confirms the presented token and returns the current admin identity
// @Summary      Verify session
// @Description  Return the administrator identity behind the presented token
// @Tags         Admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  ErrorResponse
// @Router       /admin/verify [get]
func (c *AdminController) Verify() {
	adminID := c.Ctx.GetUint("adminID")

	adminService := c.Container.GetService("admin").(services.InterfaceAdminService)
	admin, err := adminService.GetAdminByID(adminID)
	if err != nil {
		if errors.Is(err, services.ErrAdminNotFound) {
			// The account was deleted after the token was issued.
			response.Unauthorized(c.Ctx)
			return
		}
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, gin.H{
		"admin": adminIdentity(admin.ID, admin.Name, admin.Email, admin.Role),
	})
}
