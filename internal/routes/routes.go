package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Amogh004/store-ratings-platform/internal/auth"
	"github.com/Amogh004/store-ratings-platform/internal/handlers"
	"github.com/Amogh004/store-ratings-platform/internal/middleware"
	"github.com/Amogh004/store-ratings-platform/internal/models"
)

// RegisterRoutes wires every endpoint with its auth and role requirements.
func RegisterRoutes(r *gin.Engine, h *handlers.AppHandlers, jwt *auth.JWTManager) {
	authenticated := middleware.AuthMiddleware(jwt)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/signup", h.AuthHandler.Signup)
		authGroup.POST("/login", h.AuthHandler.Login)
		authGroup.POST("/change-password", authenticated, h.AuthHandler.ChangePassword)
	}

	r.GET("/me", authenticated, h.AuthHandler.Me)

	admin := r.Group("/admin", authenticated, middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.POST("/users", h.UserHandler.CreateUser)
		admin.GET("/users", h.UserHandler.ListUsers)
		admin.GET("/users/:id", h.UserHandler.GetUser)
		admin.GET("/dashboard-stats", h.UserHandler.DashboardStats)
		admin.POST("/stores", h.StoreHandler.CreateStore)
		admin.GET("/stores", h.StoreHandler.ListStoresAdmin)
	}

	stores := r.Group("/stores", authenticated)
	{
		stores.GET("", h.StoreHandler.ListStores)

		// Rating submission is for normal users only.
		userOnly := middleware.RequireRoles(models.UserRoleUser)
		stores.POST("/:id/ratings", userOnly, h.RatingHandler.Create)
		stores.PUT("/:id/ratings", userOnly, h.RatingHandler.Update)
	}

	owner := r.Group("/owner", authenticated, middleware.RequireRoles(models.UserRoleStoreOwner))
	{
		owner.GET("/dashboard", h.StoreHandler.OwnerDashboard)
	}
}
