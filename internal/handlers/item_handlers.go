package handlers

import (
	"errors"
	"net/http"

	"store_expiry_backend/internal/middleware"
	"store_expiry_backend/internal/models"
	"store_expiry_backend/internal/services"
	"store_expiry_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ItemHandler holds the item service.
type ItemHandler struct {
	itemService services.ItemService
}

// NewItemHandler creates a new ItemHandler.
func NewItemHandler(is services.ItemService) *ItemHandler {
	return &ItemHandler{itemService: is}
}

func currentUserOrAbort(c *gin.Context) (models.User, bool) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "User not authenticated.", ""))
	}
	return user, ok
}

// respondItemError maps item service errors; it returns false for unknown errors.
func respondItemError(c *gin.Context, err error) bool {
	switch {
	case errors.Is(err, services.ErrItemValidation), errors.Is(err, services.ErrExpirationFormat):
		utils.RespondValidationFailed(c, "Validation failed: "+err.Error(), "")
	case errors.Is(err, services.ErrItemReference):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeBadRequest, "Unknown staffId or storeCode.", ""))
	case errors.Is(err, services.ErrItemNotFound):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Item not found.", ""))
	case errors.Is(err, services.ErrForbiddenStore), errors.Is(err, services.ErrIdentityMismatch):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusForbidden, utils.ErrCodeForbidden, err.Error(), ""))
	case errors.Is(err, services.ErrItemIDCollision):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "Item was added too quickly, please retry.", ""))
	default:
		return false
	}
	return true
}

// CreateItem handles POST /items.
func (h *ItemHandler) CreateItem(c *gin.Context) {
	user, ok := currentUserOrAbort(c)
	if !ok {
		return
	}

	var req services.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogWarn("CreateItem: Failed to bind JSON", map[string]interface{}{"error": err.Error()})
		utils.RespondValidationFailed(c, "Missing required item fields.", err.Error())
		return
	}

	item, err := h.itemService.CreateItem(c.Request.Context(), user, req)
	if err != nil {
		if !respondItemError(c, err) {
			utils.LogError(err, "CreateItem: Error from itemService.CreateItem")
			utils.RespondInternalError(c, "Failed to add item.")
		}
		return
	}
	c.JSON(http.StatusCreated, item)
}

// UpdateItem handles PUT /items/:itemId.
func (h *ItemHandler) UpdateItem(c *gin.Context) {
	user, ok := currentUserOrAbort(c)
	if !ok {
		return
	}

	var req services.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogWarn("UpdateItem: Failed to bind JSON", map[string]interface{}{"error": err.Error()})
		utils.RespondValidationFailed(c, "Missing required item fields.", err.Error())
		return
	}

	itemID := c.Param("itemId")
	item, err := h.itemService.UpdateItem(c.Request.Context(), user, itemID, req)
	if err != nil {
		if !respondItemError(c, err) {
			utils.LogError(err, "UpdateItem: Error from itemService.UpdateItem", map[string]interface{}{"item_id": itemID})
			utils.RespondInternalError(c, "Failed to update item.")
		}
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteItem handles DELETE /items/:itemId.
func (h *ItemHandler) DeleteItem(c *gin.Context) {
	user, ok := currentUserOrAbort(c)
	if !ok {
		return
	}

	itemID := c.Param("itemId")
	if err := h.itemService.DeleteItem(c.Request.Context(), user, itemID); err != nil {
		if !respondItemError(c, err) {
			utils.LogError(err, "DeleteItem: Error from itemService.DeleteItem", map[string]interface{}{"item_id": itemID})
			utils.RespondInternalError(c, "Failed to delete item.")
		}
		return
	}
	c.Status(http.StatusNoContent)
}
