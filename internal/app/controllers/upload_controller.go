package controllers

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"realtrust-http-service/internal/domain/services/container"
	"realtrust-http-service/internal/error/code"
	"realtrust-http-service/internal/error/response"
	"realtrust-http-service/utils"
)

// allowedImageExts and allowedImageTypes gate what an upload may be. Both
// the filename extension and the declared content type must pass.
var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// InterfaceUploadController defines the image upload controller interface
type InterfaceUploadController interface {
	UploadProjectImage()
	UploadClientImage()
}

// UploadController stores uploaded images and returns their blob locators
type UploadController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewUploadController creates a new upload controller
func NewUploadController(ctx *gin.Context, container *container.ServiceContainer) *UploadController {
	return &UploadController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleUploadFunc returns a Gin handler dispatching to the upload controller
func HandleUploadFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewUploadController(ctx, container)

		switch method {
		case "uploadProjectImage":
			controller.UploadProjectImage()
		case "uploadClientImage":
			controller.UploadClientImage()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "Invalid method", nil)
		}
	}
}

// UploadProjectImage stores a project image
// @Summary      Upload project image
// @Description  Single image file up to 5MB (jpeg, png, gif, webp); returns the blob locator
// @Tags         Upload
// @Accept       multipart/form-data
// @Produce      json
// @Param        image formData file true "Image file"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Router       /upload/project [post]
func (c *UploadController) UploadProjectImage() {
	c.saveImage("project", "projects")
}

// UploadClientImage stores a client testimonial image
// @Summary      Upload client image
// @Description  Single image file up to 5MB (jpeg, png, gif, webp); returns the blob locator
// @Tags         Upload
// @Accept       multipart/form-data
// @Produce      json
// @Param        image formData file true "Image file"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Router       /upload/client [post]
func (c *UploadController) UploadClientImage() {
	c.saveImage("client", "clients")
}

// saveImage validates and stores a single "image" form file under
// {uploadDir}/{subdir}/ with a generated unique name. The returned locator
// is an opaque string; nothing later checks that the blob still exists.
func (c *UploadController) saveImage(kind, subdir string) {
	file, err := c.Ctx.FormFile("image")
	if err != nil {
		response.Fail(c.Ctx, code.ErrNoFileUploaded, nil)
		return
	}

	cfg := c.Container.GetConfig()
	if file.Size > cfg.MaxUploadSizeBytes() {
		response.Fail(c.Ctx, code.ErrUploadRejected, nil)
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExts[ext] {
		response.Fail(c.Ctx, code.ErrUploadRejected, nil)
		return
	}
	if contentType := file.Header.Get("Content-Type"); contentType != "" && !allowedImageTypes[contentType] {
		response.Fail(c.Ctx, code.ErrUploadRejected, nil)
		return
	}

	dir := filepath.Join(cfg.UploadDir, subdir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		response.ServerError(c.Ctx)
		return
	}

	filename := utils.GenerateUploadFilename(kind, ext)
	if err := c.Ctx.SaveUploadedFile(file, filepath.Join(dir, filename)); err != nil {
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, gin.H{
		"imageUrl": cfg.UploadURLBasePath + "/" + subdir + "/" + filename,
	})
}
