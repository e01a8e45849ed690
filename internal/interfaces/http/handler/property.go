package handler

import (
	"io"
	"mime/multipart"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	applisting "github.com/imovelliz/backend/internal/application/listing"
	"github.com/imovelliz/backend/internal/interfaces/http/middleware"
)

// PropertyHandler handles property-related API endpoints
type PropertyHandler struct {
	BaseHandler
	propertyService *applisting.PropertyService
}

// NewPropertyHandler creates a new PropertyHandler
func NewPropertyHandler(propertyService *applisting.PropertyService) *PropertyHandler {
	return &PropertyHandler{
		propertyService: propertyService,
	}
}

// multipartFiles extracts the uploaded photo files from the request.
// The frontend sends them under the "files" form field.
func multipartFiles(c *gin.Context) []applisting.UploadFile {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil
	}

	headers := form.File["files"]
	files := make([]applisting.UploadFile, 0, len(headers))
	for _, fh := range headers {
		files = append(files, applisting.UploadFile{
			OriginalName: fh.Filename,
			Size:         fh.Size,
			ContentType:  fh.Header.Get("Content-Type"),
			Open:         headerOpener(fh),
		})
	}
	return files
}

func headerOpener(fh *multipart.FileHeader) func() (io.ReadCloser, error) {
	return func() (io.ReadCloser, error) {
		return fh.Open()
	}
}

// Create godoc
// @Summary      Create a property listing
// @Description  Create a property owned by the authenticated user, with up to 5 photos
// @Tags         properties
// @Accept       multipart/form-data
// @Produce      json
// @Param        title formData string true "Title"
// @Param        files formData file false "Photo files (max 5, 5 MiB each)"
// @Success      201 {object} dto.Response{data=listing.PropertyResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /properties [post]
func (h *PropertyHandler) Create(c *gin.Context) {
	username, err := getUsername(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req applisting.CreatePropertyRequest
	if err := c.ShouldBind(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	property, err := h.propertyService.Create(c.Request.Context(), username, req, multipartFiles(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, property)
}

// Update godoc
// @Summary      Update a property listing
// @Description  Replace a property's attributes; new photos are appended
// @Tags         properties
// @Accept       multipart/form-data
// @Produce      json
// @Param        id path string true "Property ID" format(uuid)
// @Success      200 {object} dto.Response{data=listing.PropertyResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /properties/{id} [patch]
func (h *PropertyHandler) Update(c *gin.Context) {
	propertyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid property ID format")
		return
	}

	var req applisting.UpdatePropertyRequest
	if err := c.ShouldBind(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	property, err := h.propertyService.Update(c.Request.Context(), propertyID, req, multipartFiles(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, property)
}

// AddPhoto godoc
// @Summary      Attach a photo to a property
// @Tags         properties
// @Accept       json
// @Produce      json
// @Param        request body listing.AddPhotoRequest true "Photo attachment request"
// @Success      201 {object} dto.Response{data=listing.PhotoResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /properties/photo [post]
func (h *PropertyHandler) AddPhoto(c *gin.Context) {
	var req applisting.AddPhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	photo, err := h.propertyService.AddPhoto(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, photo)
}

// List godoc
// @Summary      List all properties
// @Tags         properties
// @Produce      json
// @Success      200 {object} dto.Response{data=[]listing.PropertyResponse}
// @Security     BearerAuth
// @Router       /properties [get]
func (h *PropertyHandler) List(c *gin.Context) {
	properties, err := h.propertyService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, properties)
}

// ListMine godoc
// @Summary      List the authenticated user's properties
// @Tags         properties
// @Produce      json
// @Success      200 {object} dto.Response{data=[]listing.PropertyResponse}
// @Security     BearerAuth
// @Router       /properties/user [get]
func (h *PropertyHandler) ListMine(c *gin.Context) {
	username, err := getUsername(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	properties, err := h.propertyService.ListByOwner(c.Request.Context(), username)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, properties)
}

// Home godoc
// @Summary      Public home page listing
// @Description  Up to 6 newest available properties, reduced projection, main photos only
// @Tags         properties
// @Produce      json
// @Success      200 {object} dto.Response{data=[]listing.HomePropertyResponse}
// @Router       /properties/home [get]
func (h *PropertyHandler) Home(c *gin.Context) {
	properties, err := h.propertyService.Home(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, properties)
}

// Get godoc
// @Summary      Get a property by ID
// @Tags         properties
// @Produce      json
// @Param        id path string true "Property ID" format(uuid)
// @Success      200 {object} dto.Response{data=listing.PropertyResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /properties/{id} [get]
func (h *PropertyHandler) Get(c *gin.Context) {
	propertyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid property ID format")
		return
	}

	property, err := h.propertyService.Get(c.Request.Context(), propertyID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, property)
}

// Delete godoc
// @Summary      Delete a property
// @Tags         properties
// @Produce      json
// @Param        id path string true "Property ID" format(uuid)
// @Success      200 {object} dto.Response
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /properties/{id} [delete]
func (h *PropertyHandler) Delete(c *gin.Context) {
	propertyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid property ID format")
		return
	}

	if err := h.propertyService.Delete(c.Request.Context(), propertyID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"deleted": propertyID})
}
