package http

import (
	"context"
	"estate-service/internal/audit"
	"estate-service/internal/auth"
	"estate-service/internal/config"
	"estate-service/internal/http/handler"
	"estate-service/internal/http/middleware"
	"estate-service/internal/notify"
	"estate-service/internal/repository/mongo"
	"estate-service/internal/storage/s3"
	"estate-service/internal/visitors"
	stdhttp "net/http"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

const (
	jsonKeyStatus = "status"
	statusOK      = "ok"

	// Multipart property uploads carry several images per request.
	requestBodyLimit = "10M"
)

type ServerDependencies struct {
	Config          *config.Config
	AdminRepo       *mongo.AdminRepository
	PropertyRepo    *mongo.PropertyRepository
	TeamRepo        *mongo.TeamRepository
	PortfolioRepo   *mongo.PortfolioRepository
	VisitRepo       *mongo.VisitRepository
	ContactRepo     *mongo.ContactRepository
	NewsletterRepo  *mongo.NewsletterRepository
	AchievementRepo *mongo.AchievementRepository
	ActivityRepo    *mongo.ActivityRepository
	Media           *s3.Client
	JWTService      *auth.JWTService
	AuthMiddleware  *auth.Middleware
	Notifier        *notify.Notifier
	Recorder        *audit.Recorder
	Visitors        *visitors.Counter
}

type Server struct {
	echo *echo.Echo
	deps *ServerDependencies
}

func NewServer(deps *ServerDependencies) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = CustomHTTPErrorHandler

	e.Server.ReadTimeout = deps.Config.Server.ReadTimeout
	e.Server.WriteTimeout = deps.Config.Server.WriteTimeout

	// Request ID middleware (first, so all logs have request ID)
	e.Use(middleware.RequestID())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.BodyLimit(requestBodyLimit))

	// Global rate limiting
	globalRateLimiter := middleware.NewGlobalRateLimiter()
	e.Use(globalRateLimiter.Middleware())

	// Strict rate limiting for login and the public intake forms
	strictRateLimiter := middleware.NewStrictRateLimiter()
	strict := strictRateLimiter.Middleware()

	track := middleware.TrackVisitors(deps.Visitors)

	authHandler := handler.NewAuthHandler(deps.AdminRepo, deps.JWTService, deps.Recorder)
	propertyHandler := handler.NewPropertyHandler(deps.PropertyRepo, deps.Media, deps.Recorder)
	teamHandler := handler.NewTeamHandler(deps.TeamRepo, deps.Media, deps.Recorder)
	portfolioHandler := handler.NewPortfolioHandler(deps.PortfolioRepo, deps.Media, deps.Recorder)
	visitHandler := handler.NewVisitHandler(deps.VisitRepo, deps.PropertyRepo, deps.Notifier, deps.Recorder)
	contactHandler := handler.NewContactHandler(deps.ContactRepo, deps.Notifier, deps.Recorder, deps.Config.App.PageSize)
	newsletterHandler := handler.NewNewsletterHandler(deps.NewsletterRepo)
	achievementHandler := handler.NewAchievementHandler(deps.AchievementRepo, deps.Recorder)
	shareHandler := handler.NewShareHandler(deps.PropertyRepo, deps.Config.App.SiteBaseURL)
	dashboardHandler := handler.NewDashboardHandler(handler.DashboardDeps{
		Activities: deps.ActivityRepo,
		Properties: deps.PropertyRepo,
		Team:       deps.TeamRepo,
		Portfolio:  deps.PortfolioRepo,
		Visits:     deps.VisitRepo,
		Contacts:   deps.ContactRepo,
		Newsletter: deps.NewsletterRepo,
		Analytics:  deps.ContactRepo,
		Visitors:   deps.Visitors,
	})

	e.GET("/health", healthCheck)

	// Crawler-facing share page
	e.GET("/property/:id", shareHandler.Property, track)

	api := e.Group("/api")

	// Public site endpoints
	api.GET("/public/properties", propertyHandler.PublicList, track)
	api.GET("/public/properties/:id", propertyHandler.PublicGet, track)
	api.GET("/public/team", teamHandler.PublicList, track)
	api.GET("/public/portfolio", portfolioHandler.PublicList, track)
	api.GET("/achievements", achievementHandler.Get, track)

	// Public intake
	api.POST("/contact", contactHandler.Submit, track, strict)
	api.POST("/newsletter", newsletterHandler.Subscribe, track, strict)
	api.POST("/schedule-visits", visitHandler.Schedule, track, strict)

	api.POST("/auth/login", authHandler.Login, strict)

	admin := api.Group("")
	admin.Use(deps.AuthMiddleware.RequireJWT())

	admin.GET("/auth/verify", authHandler.Verify)

	admin.GET("/properties", propertyHandler.List)
	admin.POST("/properties", propertyHandler.Create)
	admin.GET("/properties/:id", propertyHandler.Get)
	admin.PUT("/properties/:id", propertyHandler.Update)
	admin.DELETE("/properties/:id", propertyHandler.Delete)

	admin.GET("/team", teamHandler.List)
	admin.POST("/team", teamHandler.Create)
	admin.GET("/team/:id", teamHandler.Get)
	admin.PUT("/team/:id", teamHandler.Update)
	admin.DELETE("/team/:id", teamHandler.Delete)

	admin.GET("/portfolio", portfolioHandler.List)
	admin.POST("/portfolio", portfolioHandler.Create)
	admin.GET("/portfolio/:id", portfolioHandler.Get)
	admin.PUT("/portfolio/:id", portfolioHandler.Update)
	admin.DELETE("/portfolio/:id", portfolioHandler.Delete)

	admin.GET("/schedule-visits", visitHandler.List)
	admin.GET("/schedule-visits/:id", visitHandler.Get)
	admin.PUT("/schedule-visits/:id", visitHandler.Update)
	admin.PATCH("/schedule-visits/:id", visitHandler.UpdateStatus)
	admin.DELETE("/schedule-visits/:id", visitHandler.Delete)

	admin.GET("/contacts", contactHandler.List)
	admin.PUT("/contacts/:id/status", contactHandler.UpdateStatus)

	admin.GET("/newsletter", newsletterHandler.List)
	admin.DELETE("/newsletter/:id", newsletterHandler.Delete)

	admin.POST("/achievements", achievementHandler.Update)
	admin.PUT("/achievements", achievementHandler.Update)
	admin.PUT("/achievements/:field", achievementHandler.UpdateField)

	admin.GET("/activity", dashboardHandler.Activity)
	admin.GET("/stats", dashboardHandler.Stats)
	admin.GET("/analytics/overview", dashboardHandler.Analytics)

	return &Server{
		echo: e,
		deps: deps,
	}
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func healthCheck(c echo.Context) error {
	return c.JSON(stdhttp.StatusOK, map[string]string{
		jsonKeyStatus: statusOK,
	})
}
