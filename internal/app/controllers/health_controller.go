package controllers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"realtrust-http-service/internal/domain/services/container"
	"realtrust-http-service/internal/error/code"
	"realtrust-http-service/internal/error/response"
)

// InterfaceHealthController defines the health controller interface
type InterfaceHealthController interface {
	Ping()
	Status()
}

// HealthController reports service liveness and database reachability
type HealthController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewHealthController creates a new health controller
func NewHealthController(ctx *gin.Context, container *container.ServiceContainer) *HealthController {
	return &HealthController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleHealthFunc returns a Gin handler dispatching to the health controller
func HandleHealthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewHealthController(ctx, container)

		switch method {
		case "ping":
			controller.Ping()
		case "status":
			controller.Status()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "Invalid method", nil)
		}
	}
}

// Ping answers without touching any dependency
// @Summary      Ping
// @Description  Liveness probe
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /ping [get]
func (c *HealthController) Ping() {
	response.Success(c.Ctx, gin.H{"message": "pong"})
}

// Status reports database reachability
// @Summary      Health status
// @Description  Checks the database connection
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /health [get]
func (c *HealthController) Status() {
	dbStatus := "up"

	sqlDB, err := c.Container.GetDB().DB()
	if err == nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		err = sqlDB.PingContext(ctx)
		cancel()
	}
	if err != nil {
		dbStatus = "down"
		response.Fail(c.Ctx, code.ErrDatabase, gin.H{
			"database": dbStatus,
		})
		return
	}

	response.Success(c.Ctx, gin.H{
		"status":   "ok",
		"database": dbStatus,
		"time":     time.Now().UTC().Format(time.RFC3339),
	})
}
