package router

import (
	"store_expiry_backend/internal/handlers"
	"store_expiry_backend/internal/middleware"
	"store_expiry_backend/internal/models"

	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes sets up the public login route.
func SetupAuthRoutes(publicGroup *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	publicGroup.POST("/login", authHandler.Login)
}

// SetupDataRoutes sets up the snapshot routes.
func SetupDataRoutes(authenticatedGroup *gin.RouterGroup, dataHandler *handlers.DataHandler) {
	dataRoutes := authenticatedGroup.Group("/data")
	{
		dataRoutes.GET("/all", middleware.RoleAuthMiddleware(models.RoleAdmin), dataHandler.GetAllData)
		dataRoutes.GET("/store", middleware.RoleAuthMiddleware(models.RoleAdmin, models.RoleStaff), dataHandler.GetStoreData)
	}
}

// SetupItemRoutes sets up the item routes.
func SetupItemRoutes(authenticatedGroup *gin.RouterGroup, itemHandler *handlers.ItemHandler) {
	itemRoutes := authenticatedGroup.Group("/items")
	itemRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin, models.RoleStaff))
	{
		itemRoutes.POST("", itemHandler.CreateItem)
		itemRoutes.PUT("/:itemId", itemHandler.UpdateItem)
		itemRoutes.DELETE("/:itemId", itemHandler.DeleteItem)
	}
}

// SetupAdminRoutes sets up staff and access code administration.
func SetupAdminRoutes(authenticatedGroup *gin.RouterGroup, staffHandler *handlers.StaffHandler) {
	adminRoutes := authenticatedGroup.Group("/admin")
	adminRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin))
	{
		adminRoutes.POST("/staff", staffHandler.CreateStaff)
		adminRoutes.DELETE("/staff/:staffId", staffHandler.DeleteStaff)
		adminRoutes.DELETE("/access-codes/:code", staffHandler.DeleteAccessCode)
	}
}

// SetupAIRoutes sets up the AI assistant route.
func SetupAIRoutes(authenticatedGroup *gin.RouterGroup, aiHandler *handlers.AIHandler) {
	aiRoutes := authenticatedGroup.Group("/ai")
	aiRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin, models.RoleStaff))
	{
		aiRoutes.POST("/ask", aiHandler.Ask)
	}
}
