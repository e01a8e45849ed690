package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	applisting "github.com/imovelliz/backend/internal/application/listing"
	"github.com/imovelliz/backend/internal/interfaces/http/middleware"
)

// FavoriteHandler handles favorites API endpoints
type FavoriteHandler struct {
	BaseHandler
	favoriteService *applisting.FavoriteService
}

// NewFavoriteHandler creates a new FavoriteHandler
func NewFavoriteHandler(favoriteService *applisting.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteService: favoriteService,
	}
}

// Create godoc
// @Summary      Favorite a property
// @Tags         favorites
// @Accept       json
// @Produce      json
// @Param        request body listing.CreateFavoriteRequest true "Favorite creation request"
// @Success      201 {object} dto.Response{data=listing.FavoriteResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /properties/favorites [post]
func (h *FavoriteHandler) Create(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req applisting.CreateFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	favorite, err := h.favoriteService.Add(c.Request.Context(), userID, req.PropertyID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, favorite)
}

// List godoc
// @Summary      List the authenticated user's favorites
// @Tags         favorites
// @Produce      json
// @Success      200 {object} dto.Response{data=[]listing.FavoriteResponse}
// @Security     BearerAuth
// @Router       /properties/favorites [get]
func (h *FavoriteHandler) List(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	favorites, err := h.favoriteService.List(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, favorites)
}

// Remove godoc
// @Summary      Remove a favorite
// @Tags         favorites
// @Produce      json
// @Param        propertyId path string true "Property ID" format(uuid)
// @Success      204
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /properties/favorites/{propertyId} [delete]
func (h *FavoriteHandler) Remove(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	propertyID, err := uuid.Parse(c.Param("propertyId"))
	if err != nil {
		h.BadRequest(c, "Invalid property ID format")
		return
	}

	if err := h.favoriteService.Remove(c.Request.Context(), userID, propertyID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
