package http

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	reportusecases "github.com/helpdesk-inc/helpdesk/internal/application/report/usecases"
	ticketusecases "github.com/helpdesk-inc/helpdesk/internal/application/ticket/usecases"
	userusecases "github.com/helpdesk-inc/helpdesk/internal/application/user/usecases"
	vo "github.com/helpdesk-inc/helpdesk/internal/domain/ticket/valueobjects"
	"github.com/helpdesk-inc/helpdesk/internal/infrastructure/auth"
	"github.com/helpdesk-inc/helpdesk/internal/infrastructure/classifier"
	"github.com/helpdesk-inc/helpdesk/internal/infrastructure/config"
	"github.com/helpdesk-inc/helpdesk/internal/infrastructure/email"
	"github.com/helpdesk-inc/helpdesk/internal/infrastructure/ratelimit"
	"github.com/helpdesk-inc/helpdesk/internal/infrastructure/report"
	"github.com/helpdesk-inc/helpdesk/internal/infrastructure/repository"
	"github.com/helpdesk-inc/helpdesk/internal/infrastructure/storage"
	authhandlers "github.com/helpdesk-inc/helpdesk/internal/interfaces/http/handlers/auth"
	reporthandlers "github.com/helpdesk-inc/helpdesk/internal/interfaces/http/handlers/report"
	tickethandlers "github.com/helpdesk-inc/helpdesk/internal/interfaces/http/handlers/ticket"
	uploadhandlers "github.com/helpdesk-inc/helpdesk/internal/interfaces/http/handlers/upload"
	userhandlers "github.com/helpdesk-inc/helpdesk/internal/interfaces/http/handlers/user"
	"github.com/helpdesk-inc/helpdesk/internal/interfaces/http/middleware"
	"github.com/helpdesk-inc/helpdesk/internal/interfaces/http/routes"
	"github.com/helpdesk-inc/helpdesk/internal/shared/logger"
)

// Router wires repositories, use cases and handlers onto a gin engine.
type Router struct {
	engine         *gin.Engine
	cfg            *config.Config
	logger         logger.Interface
	ticketHandler  *tickethandlers.TicketHandler
	authHandler    *authhandlers.AuthHandler
	userHandler    *userhandlers.UserHandler
	uploadHandler  *uploadhandlers.UploadHandler
	reportHandler  *reporthandlers.ReportHandler
	authMiddleware *middleware.AuthMiddleware
	authRateLimit  gin.HandlerFunc
}

// NewRouter builds the full dependency graph. redisClient may be nil, in
// which case auth endpoints run without rate limiting.
func NewRouter(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	userRepo := repository.NewUserRepository(db)
	ticketRepo := repository.NewTicketRepository(db)
	adminNotifRepo := repository.NewAdminNotificationRepository(db)
	userNotifRepo := repository.NewUserNotificationRepository(db)

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtSvc := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)

	var emailSender ticketusecases.TicketEmailSender
	if cfg.Email.Enabled {
		emailSender = email.NewSMTPEmailService(email.SMTPConfig{
			Host:        cfg.Email.SMTPHost,
			Port:        cfg.Email.SMTPPort,
			Username:    cfg.Email.SMTPUser,
			Password:    cfg.Email.SMTPPassword,
			FromAddress: cfg.Email.FromAddress,
			FromName:    cfg.Email.FromName,
			BaseURL:     cfg.Server.BaseURL,
		})
	} else {
		emailSender = email.NewNoopEmailService(log)
	}

	nlpClassifier := classifier.NewHTTPClassifier(&cfg.Classifier)
	store := storage.NewLocalStorage(&cfg.Storage)

	createTicketUC := ticketusecases.NewCreateTicketUseCase(ticketRepo, userRepo, adminNotifRepo, nlpClassifier, emailSender, log)
	updateTicketUC := ticketusecases.NewUpdateTicketUseCase(ticketRepo, userNotifRepo, log)
	getTicketUC := ticketusecases.NewGetTicketUseCase(ticketRepo, userRepo, log)
	listTicketsUC := ticketusecases.NewListTicketsUseCase(ticketRepo, log)
	listImagesUC := ticketusecases.NewListTicketImagesUseCase(ticketRepo, log)

	registerUC := userusecases.NewRegisterUseCase(userRepo, hasher, jwtSvc, log)
	loginUC := userusecases.NewLoginUseCase(userRepo, hasher, jwtSvc, log)
	getProfileUC := userusecases.NewGetProfileUseCase(userRepo, log)
	listNotificationsUC := userusecases.NewListNotificationsUseCase(userNotifRepo, log)

	exportUC := reportusecases.NewExportTicketsUseCase(ticketRepo, report.NewExcelRenderer(), report.NewPDFRenderer(), log)

	var authRateLimit gin.HandlerFunc
	if redisClient != nil {
		limiter := ratelimit.NewRedisRateLimiter(redisClient)
		authRateLimit = middleware.AuthRateLimit(limiter, ratelimit.RateLimitConfig{
			RequestsPerMinute: 10,
			RequestsPerHour:   100,
		}, log)
	}

	return &Router{
		engine:         engine,
		cfg:            cfg,
		logger:         log,
		ticketHandler:  tickethandlers.NewTicketHandler(createTicketUC, updateTicketUC, getTicketUC, listTicketsUC, listImagesUC, store),
		authHandler:    authhandlers.NewAuthHandler(registerUC, loginUC),
		userHandler:    userhandlers.NewUserHandler(getProfileUC, listNotificationsUC),
		uploadHandler:  uploadhandlers.NewUploadHandler(store),
		reportHandler:  reporthandlers.NewReportHandler(exportUC),
		authMiddleware: middleware.NewAuthMiddleware(jwtSvc, log),
		authRateLimit:  authRateLimit,
	}
}

// SetupRoutes configures middleware, custom validators and all HTTP routes.
func (r *Router) SetupRoutes() {
	registerValidators()

	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Uploaded images are served straight from local disk.
	r.engine.Static(r.cfg.Storage.PublicPath, r.cfg.Storage.UploadDir)

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler: r.authHandler,
		RateLimit:   r.authRateLimit,
	})

	routes.SetupTicketRoutes(r.engine, &routes.TicketRouteConfig{
		TicketHandler:  r.ticketHandler,
		AuthMiddleware: r.authMiddleware,
	})

	routes.SetupUserRoutes(r.engine, &routes.UserRouteConfig{
		UserHandler:    r.userHandler,
		AuthMiddleware: r.authMiddleware,
	})

	routes.SetupUploadRoutes(r.engine, &routes.UploadRouteConfig{
		UploadHandler:  r.uploadHandler,
		AuthMiddleware: r.authMiddleware,
	})

	routes.SetupAdminRoutes(r.engine, &routes.AdminRouteConfig{
		TicketHandler:  r.ticketHandler,
		ReportHandler:  r.reportHandler,
		AuthMiddleware: r.authMiddleware,
	})
}

func registerValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("ticketstatus", func(fl validator.FieldLevel) bool {
			return vo.TicketStatus(fl.Field().String()).IsValid()
		})
	}
}

// GetEngine returns the gin engine, mainly for tests.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server.
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
