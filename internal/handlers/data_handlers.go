package handlers

import (
	"errors"
	"net/http"
	"strings"

	"store_expiry_backend/internal/middleware"
	"store_expiry_backend/internal/services"
	"store_expiry_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// DataHandler serves the snapshots clients render from.
type DataHandler struct {
	dataService services.DataService
}

// NewDataHandler creates a new DataHandler.
func NewDataHandler(ds services.DataService) *DataHandler {
	return &DataHandler{dataService: ds}
}

// GetAllData handles GET /data/all.
func (h *DataHandler) GetAllData(c *gin.Context) {
	snap, err := h.dataService.GetAllData(c.Request.Context())
	if err != nil {
		utils.LogError(err, "GetAllData: Error from dataService.GetAllData")
		utils.RespondInternalError(c, "Failed to fetch all data.")
		return
	}
	c.JSON(http.StatusOK, snap)
}

// GetStoreData handles GET /data/store?storeCode=.
func (h *DataHandler) GetStoreData(c *gin.Context) {
	storeCode := strings.TrimSpace(c.Query("storeCode"))
	if storeCode == "" {
		utils.RespondValidationFailed(c, "storeCode is required.", "")
		return
	}

	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "User not authenticated.", ""))
		return
	}
	if !user.IsAdmin() && user.StoreID != storeCode {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusForbidden, utils.ErrCodeForbidden, "You may only view your own store.", ""))
		return
	}

	snap, err := h.dataService.GetStoreData(c.Request.Context(), storeCode)
	if err != nil {
		if errors.Is(err, services.ErrStoreCodeRequired) {
			utils.RespondValidationFailed(c, "storeCode is required.", "")
			return
		}
		utils.LogError(err, "GetStoreData: Error from dataService.GetStoreData", map[string]interface{}{"store_code": storeCode})
		utils.RespondInternalError(c, "Failed to fetch store data.")
		return
	}
	c.JSON(http.StatusOK, snap)
}
