package app

import (
	"context"
	"errors"
	"fmt"

	"mychild_backend/database"
	"mychild_backend/internal/auth"
	"mychild_backend/internal/config"
	"mychild_backend/internal/email"
	"mychild_backend/internal/handlers"
	"mychild_backend/internal/logger"
	"mychild_backend/internal/middleware"
	"mychild_backend/internal/models"
	"mychild_backend/internal/repositories"
	"mychild_backend/internal/routes"
	"mychild_backend/internal/services"
	"mychild_backend/internal/services/payment"
	"mychild_backend/internal/validator"
	"mychild_backend/internal/workers"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	gormDB, err := database.ConnectGorm()
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

	if err := database.Migrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	tokens := auth.NewTokenService(cfg.Auth.JWTSecret)
	serviceContainer := initializeServices(cfg, tokens)

	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()
	startWorkers(workerCtx, gormDB, serviceContainer, cfg)

	ginRouter := SetupRouter(cfg, gormDB, serviceContainer, tokens)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB, serviceContainer *services.ServiceContainer, tokens *auth.TokenService) *gin.Engine {
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter(cfg, gormDB)

	routes.RegisterRoutes(ginRouter, appHandlers, tokens)

	return ginRouter
}

func initializeServices(cfg *config.Config, tokens *auth.TokenService) *services.ServiceContainer {
	emailProvider := initEmailProvider(cfg)

	userRepo := repositories.NewUserRepository()
	subjectRepo := repositories.NewSubjectRepository()
	courseRepo := repositories.NewCourseRepository()
	questionRepo := repositories.NewQuestionRepository()
	quizResultRepo := repositories.NewQuizResultRepository()
	paymentRepo := repositories.NewPaymentRepository()

	gateway := payment.NewPayDunyaClient(cfg)

	return &services.ServiceContainer{
		AuthService:     services.NewAuthService(userRepo, tokens, emailProvider, cfg.Auth.AdminSecret, cfg.Email.AdminEmail),
		UserService:     services.NewUserService(userRepo),
		SubjectService:  services.NewSubjectService(subjectRepo, userRepo),
		CourseService:   services.NewCourseService(courseRepo, subjectRepo),
		QuestionService: services.NewQuestionService(questionRepo, subjectRepo),
		QuizService:     services.NewQuizService(quizResultRepo, subjectRepo),
		PaymentService:  services.NewPaymentService(paymentRepo, userRepo, gateway),
		EmailProvider:   emailProvider,
	}
}

func initEmailProvider(cfg *config.Config) email.Provider {
	if !cfg.Email.Enabled {
		logger.Warn("Email delivery disabled, notifications will be dropped")
		return email.NewNoopProvider()
	}

	provider, err := email.NewSMTPProvider(cfg)
	if err != nil {
		logger.Fatal("Failed to initialize SMTP provider", "error", err)
	}
	logger.Info("SMTP provider initialized", "host", cfg.Email.SMTPHost)
	return provider
}

func initializeHandlers(serviceContainer *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:     handlers.NewAuthHandler(baseHandler, serviceContainer.AuthService),
		UserHandler:     handlers.NewUserHandler(baseHandler, serviceContainer.UserService),
		SubjectHandler:  handlers.NewSubjectHandler(baseHandler, serviceContainer.SubjectService),
		CourseHandler:   handlers.NewCourseHandler(baseHandler, serviceContainer.CourseService),
		QuestionHandler: handlers.NewQuestionHandler(baseHandler, serviceContainer.QuestionService),
		QuizHandler:     handlers.NewQuizHandler(baseHandler, serviceContainer.QuizService),
		PaymentHandler:  handlers.NewPaymentHandler(baseHandler, serviceContainer.PaymentService),
	}
}

func initializeGinRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}

func startWorkers(ctx context.Context, db *gorm.DB, serviceContainer *services.ServiceContainer, cfg *config.Config) {
	worker := workers.NewMaintenanceWorker(
		db,
		repositories.NewPaymentRepository(),
		repositories.NewUserRepository(),
		serviceContainer.EmailProvider,
		cfg.Email.AdminEmail,
	)
	worker.Start(ctx)
	logger.Info("Maintenance worker started")
}

// seedFirstAdmin создает первого администратора из конфига.
// Без него одобрять заявки некому: обычная регистрация дает только user.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminPhone := models.NormalizePhone(cfg.FirstAdmin.Phone)
	adminPassword := cfg.FirstAdmin.Password

	if adminPhone == "" || adminPassword == "" {
		logger.Warn("FIRST_ADMIN_PHONE or FIRST_ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}

	if !models.ValidPhone(adminPhone) {
		return fmt.Errorf("invalid first admin phone: %q", cfg.FirstAdmin.Phone)
	}

	var admin models.User
	result := db.Where("LOWER(phone) = LOWER(?)", adminPhone).First(&admin)
	if result.Error == nil {
		logger.Info("Admin user already exists. Skipping creation.", "phone", adminPhone)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	hash, err := auth.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	newAdmin := &models.User{
		FirstName:       "Admin",
		LastName:        "MyChild",
		Phone:           adminPhone,
		PasswordHash:    hash,
		Role:            models.UserRoleAdmin,
		IsActive:        true,
		Approved:        true,
		PendingApproval: false,
	}

	if err := db.Create(newAdmin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	logger.Info("First admin user created", "phone", adminPhone)
	return nil
}
