package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Amogh004/store-ratings-platform/database"
	"github.com/Amogh004/store-ratings-platform/internal/auth"
	"github.com/Amogh004/store-ratings-platform/internal/config"
	"github.com/Amogh004/store-ratings-platform/internal/handlers"
	"github.com/Amogh004/store-ratings-platform/internal/logger"
	"github.com/Amogh004/store-ratings-platform/internal/middleware"
	"github.com/Amogh004/store-ratings-platform/internal/models"
	"github.com/Amogh004/store-ratings-platform/internal/repositories"
	"github.com/Amogh004/store-ratings-platform/internal/routes"
	"github.com/Amogh004/store-ratings-platform/internal/services"
	"github.com/Amogh004/store-ratings-platform/internal/validator"
)

func Run() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", "error", err)
	}

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("AutoMigrate failed", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter builds the full handler chain over an already-opened DB; the
// integration tests call it directly with their own connection.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	if cfg.Server.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	jwtManager := auth.NewJWTManager(cfg.JWT.Secret, time.Duration(cfg.JWT.TTLDays)*24*time.Hour)

	serviceContainer := initializeServices(jwtManager)
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := gin.New()
	ginRouter.Use(gin.Recovery())
	ginRouter.Use(middleware.RequestIDMiddleware())
	ginRouter.Use(middleware.LoggingMiddleware())
	ginRouter.Use(middleware.CORSMiddleware())
	ginRouter.Use(middleware.DBMiddleware(gormDB))

	routes.RegisterRoutes(ginRouter, appHandlers, jwtManager)

	return ginRouter
}

func initializeServices(jwtManager *auth.JWTManager) *services.ServiceContainer {
	userRepo := repositories.NewUserRepository()
	storeRepo := repositories.NewStoreRepository()
	ratingRepo := repositories.NewRatingRepository()

	return &services.ServiceContainer{
		AuthService:   services.NewAuthService(userRepo, jwtManager),
		UserService:   services.NewUserService(userRepo, storeRepo, ratingRepo),
		StoreService:  services.NewStoreService(storeRepo, userRepo, ratingRepo),
		RatingService: services.NewRatingService(ratingRepo, storeRepo),
	}
}

func initializeHandlers(container *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:   handlers.NewAuthHandler(baseHandler, container.AuthService),
		UserHandler:   handlers.NewUserHandler(baseHandler, container.UserService),
		StoreHandler:  handlers.NewStoreHandler(baseHandler, container.StoreService),
		RatingHandler: handlers.NewRatingHandler(baseHandler, container.RatingService),
	}
}

// seedFirstAdmin creates the initial ADMIN account from config. Signup only
// ever creates USER accounts, so without this no admin could exist.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.FirstAdminEmail
	adminPassword := cfg.FirstAdminPassword

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD not set. Skipping admin seeding.")
		return nil
	}

	var existing models.User
	result := db.Where("email = ?", adminEmail).First(&existing)
	if result.Error == nil {
		logger.Info("Admin user already exists. Skipping creation.", "email", adminEmail)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	passwordHash, err := auth.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &models.User{
		Name:         "Platform Administrator Account",
		Email:        adminEmail,
		Address:      "Platform",
		PasswordHash: passwordHash,
		Role:         models.UserRoleAdmin,
	}
	if err := db.Create(admin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	logger.Info("Created first admin user", "email", adminEmail)
	return nil
}
