package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/india-resources/directory-api/internal/config"
	"github.com/india-resources/directory-api/internal/db"
	"github.com/india-resources/directory-api/internal/middleware"
)

// NewRouter creates and configures the Gin router.
func NewRouter(dbConn *gorm.DB, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	r := gin.New()

	r.Use(middleware.Recovery(log))
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORS())

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().UTC(),
			"service":   "directory-api",
		})
	})

	// Authentication endpoints
	r.POST("/auth/login", LoginHandler(dbConn, cfg, log))
	r.POST("/auth/register", RegisterHandler(dbConn, cfg, log))

	// Public directory endpoints
	r.GET("/items", ListItemsHandler(dbConn, log))
	r.GET("/items/:id", GetItemHandler(dbConn, log))
	r.GET("/categories", ListCategoriesHandler(dbConn, log))
	r.GET("/seo", GetSeoHandler(dbConn, log))
	r.GET("/meta/states", StatesHandler())
	r.GET("/meta/icons", IconsHandler())

	// Routes for any authenticated user
	authorized := r.Group("/")
	authorized.Use(middleware.JWTRequired(cfg.JWTSecret))
	{
		authorized.POST("/submissions", SubmitHandler(dbConn, log))
		authorized.GET("/submissions/mine", MySubmissionsHandler(dbConn, log))
	}

	// Admin-only routes
	admin := authorized.Group("/")
	admin.Use(middleware.RoleRequired(db.RoleAdmin))
	{
		admin.POST("/items", CreateItemHandler(dbConn, log))
		admin.PUT("/items/:id", UpdateItemHandler(dbConn, log))
		admin.DELETE("/items/:id", DeleteItemHandler(dbConn, log))

		admin.GET("/submissions", ListPendingHandler(dbConn, log))
		admin.POST("/submissions/:id/approve", ApproveHandler(dbConn, log))
		admin.POST("/submissions/:id/reject", RejectHandler(dbConn, log))

		admin.POST("/categories", AddCategoryHandler(dbConn, log))
		admin.DELETE("/categories", RemoveCategoryHandler(dbConn, log))

		admin.PUT("/seo", UpdateSeoHandler(dbConn, log))
	}

	return r
}
