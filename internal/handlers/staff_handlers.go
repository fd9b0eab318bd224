package handlers

import (
	"errors"
	"net/http"

	"store_expiry_backend/internal/services"
	"store_expiry_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// StaffHandler holds the staff service.
type StaffHandler struct {
	staffService services.StaffService
}

// NewStaffHandler creates a new StaffHandler.
func NewStaffHandler(ss services.StaffService) *StaffHandler {
	return &StaffHandler{staffService: ss}
}

// CreateStaff handles POST /admin/staff: a staff member plus their access code.
func (h *StaffHandler) CreateStaff(c *gin.Context) {
	var req services.CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogWarn("CreateStaff: Failed to bind JSON", map[string]interface{}{"error": err.Error()})
		utils.RespondValidationFailed(c, "storeCode is required.", err.Error())
		return
	}

	resp, err := h.staffService.ProvisionStaff(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrStaffValidation):
			utils.RespondValidationFailed(c, "storeCode is required.", "")
		case errors.Is(err, services.ErrStaffExists):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "Staff ID already exists.", ""))
		case errors.Is(err, services.ErrStoreNotFound):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeBadRequest, "Unknown storeCode.", ""))
		case errors.Is(err, services.ErrAccessCodeConflict):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "Generated access code collided, please retry.", ""))
		default:
			utils.LogError(err, "CreateStaff: Error from staffService.ProvisionStaff")
			utils.RespondInternalError(c, "Failed to add staff and code.")
		}
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// DeleteStaff handles DELETE /admin/staff/:staffId.
func (h *StaffHandler) DeleteStaff(c *gin.Context) {
	staffID := c.Param("staffId")
	if err := h.staffService.DeleteStaff(c.Request.Context(), staffID); err != nil {
		switch {
		case errors.Is(err, services.ErrStaffValidation):
			utils.RespondValidationFailed(c, "staffId is required.", "")
		case errors.Is(err, services.ErrStaffNotFound):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Staff member not found.", ""))
		case errors.Is(err, services.ErrStaffHasItems):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "Staff member still has items recorded.", ""))
		default:
			utils.LogError(err, "DeleteStaff: Error from staffService.DeleteStaff", map[string]interface{}{"staff_id": staffID})
			utils.RespondInternalError(c, "Failed to delete staff member.")
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteAccessCode handles DELETE /admin/access-codes/:code.
func (h *StaffHandler) DeleteAccessCode(c *gin.Context) {
	code := c.Param("code")
	if err := h.staffService.DeleteAccessCode(c.Request.Context(), code); err != nil {
		switch {
		case errors.Is(err, services.ErrStaffValidation):
			utils.RespondValidationFailed(c, "code is required.", "")
		case errors.Is(err, services.ErrAccessCodeNotFound):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Access code not found.", ""))
		default:
			utils.LogError(err, "DeleteAccessCode: Error from staffService.DeleteAccessCode")
			utils.RespondInternalError(c, "Failed to delete access code.")
		}
		return
	}
	c.Status(http.StatusNoContent)
}
