package router

import (
	"database/sql"
	"net/http"

	"store_expiry_backend/internal/handlers"
	"store_expiry_backend/internal/middleware"
	"store_expiry_backend/internal/repositories"
	"store_expiry_backend/internal/services"
	"store_expiry_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// Dependencies are the long-lived objects created once in main.
type Dependencies struct {
	DB          *sql.DB
	Tokens      *utils.TokenManager
	AdminSecret services.AdminSecret
	// AI may be nil, in which case /ai/ask answers 503.
	AI services.TextGenerator
}

// Handlers groups every HTTP handler of the API.
type Handlers struct {
	Auth  *handlers.AuthHandler
	Data  *handlers.DataHandler
	Item  *handlers.ItemHandler
	Staff *handlers.StaffHandler
	AI    *handlers.AIHandler
}

// NewHandlers wires repositories, services and handlers over one pool.
func NewHandlers(deps Dependencies) *Handlers {
	// Initialize Repositories
	storeRepo := repositories.NewStoreRepository(deps.DB)
	staffRepo := repositories.NewStaffRepository(deps.DB)
	codeRepo := repositories.NewAccessCodeRepository(deps.DB)
	itemRepo := repositories.NewItemRepository(deps.DB)
	transactor := repositories.NewTransactor(deps.DB)

	// Initialize Services
	authService := services.NewAuthService(codeRepo, staffRepo, deps.Tokens, deps.AdminSecret)
	dataService := services.NewDataService(itemRepo, staffRepo, codeRepo, storeRepo)
	itemService := services.NewItemService(itemRepo, deps.DB)
	staffService := services.NewStaffService(staffRepo, codeRepo, transactor)
	aiService := services.NewAIService(deps.AI)

	return &Handlers{
		Auth:  handlers.NewAuthHandler(authService),
		Data:  handlers.NewDataHandler(dataService),
		Item:  handlers.NewItemHandler(itemService),
		Staff: handlers.NewStaffHandler(staffService),
		AI:    handlers.NewAIHandler(aiService),
	}
}

// Setup registers every route on engine.
func Setup(engine *gin.Engine, h *Handlers, tokens middleware.TokenValidator) {
	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	SetupAuthRoutes(engine.Group(""), h.Auth)

	authenticated := engine.Group("")
	authenticated.Use(middleware.AuthMiddleware(tokens))
	{
		SetupDataRoutes(authenticated, h.Data)
		SetupItemRoutes(authenticated, h.Item)
		SetupAdminRoutes(authenticated, h.Staff)
		SetupAIRoutes(authenticated, h.AI)
	}
}
