package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"realtrust-http-service/internal/domain/services"
	"realtrust-http-service/internal/domain/services/container"
	"realtrust-http-service/internal/error/code"
	"realtrust-http-service/internal/error/response"
)

// InterfaceSubscriberController defines the subscriber controller interface
type InterfaceSubscriberController interface {
	Subscribe()
	GetSubscribers()
	DeleteSubscriber()
}

// SubscriberController handles newsletter subscription requests
type SubscriberController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewSubscriberController creates a new subscriber controller
func NewSubscriberController(ctx *gin.Context, container *container.ServiceContainer) *SubscriberController {
	return &SubscriberController{
		Ctx:       ctx,
		Container: container,
	}
}

// SubscribeRequest is the public newsletter opt-in payload
type SubscribeRequest struct {
	Email string `json:"email" binding:"required,email" example:"reader@example.com"`
}

// HandleSubscriberFunc returns a Gin handler dispatching to the subscriber controller
func HandleSubscriberFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewSubscriberController(ctx, container)

		switch method {
		case "subscribe":
			controller.Subscribe()
		case "getSubscribers":
			controller.GetSubscribers()
		case "deleteSubscriber":
			controller.DeleteSubscriber()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "Invalid method", nil)
		}
	}
}

// Subscribe records a newsletter opt-in
// @Summary      Subscribe to the newsletter
// @Tags         Subscriber
// @Accept       json
// @Produce      json
// @Param        request body SubscribeRequest true "Email address"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse "Validation failure or already subscribed"
// @Router       /subscribers [post]
func (c *SubscriberController) Subscribe() {
	var req SubscribeRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ValidationFail(c.Ctx, err)
		return
	}

	subscriberService := c.Container.GetService("subscriber").(services.InterfaceSubscriberService)
	subscriber, err := subscriberService.Subscribe(req.Email)
	if err != nil {
		if errors.Is(err, services.ErrSubscriberExists) {
			response.Fail(c.Ctx, code.ErrSubscriberAlreadyExist, nil)
			return
		}
		response.ServerError(c.Ctx)
		return
	}

	response.Created(c.Ctx, subscriber)
}

// GetSubscribers lists active subscribers, newest first
// @Summary      List subscribers
// @Tags         Subscriber
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /admin/subscribers [get]
func (c *SubscriberController) GetSubscribers() {
	subscriberService := c.Container.GetService("subscriber").(services.InterfaceSubscriberService)
	subscribers, err := subscriberService.GetAllSubscribers()
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, subscribers)
}

// DeleteSubscriber removes a subscriber
// @Summary      Delete subscriber
// @Tags         Subscriber
// @Produce      json
// @Param        id path int true "Subscriber ID"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /admin/subscribers/{id} [delete]
func (c *SubscriberController) DeleteSubscriber() {
	id, ok := parseIDParam(c.Ctx)
	if !ok {
		return
	}

	subscriberService := c.Container.GetService("subscriber").(services.InterfaceSubscriberService)
	if err := subscriberService.DeleteSubscriber(id); err != nil {
		if errors.Is(err, services.ErrSubscriberNotFound) {
			response.NotFound(c.Ctx, code.ErrSubscriberNotFound)
			return
		}
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, nil)
}
