package main

import (
	"context"
	"estate-service/internal/audit"
	"estate-service/internal/auth"
	"estate-service/internal/config"
	"estate-service/internal/http"
	"estate-service/internal/notify"
	"estate-service/internal/repository/mongo"
	"estate-service/internal/storage/s3"
	"estate-service/internal/visitors"
	"estate-service/pkg/mailer"
	"estate-service/pkg/mailer/providers"
	"estate-service/pkg/mailer/strategies"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
)

const (
	envFilePath      = ".env"
	serverAddrPrefix = ":"
	signalBufferSize = 1
	logOutputFlags   = log.LstdFlags | log.Lshortfile
)

var shutdownSignals = []os.Signal{
	syscall.SIGINT,
	syscall.SIGTERM,
}

func main() {
	if err := godotenv.Load(envFilePath); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	log.SetOutput(os.Stderr)
	log.SetFlags(logOutputFlags)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Println("Configuration loaded successfully")

	db, err := mongo.New(&cfg.Mongo)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Database connection established")

	bootstrapCtx := context.Background()

	if err := db.EnsureIndexes(bootstrapCtx); err != nil {
		log.Fatalf("Failed to ensure indexes: %v", err)
	}

	adminRepo := mongo.NewAdminRepository(db)
	propertyRepo := mongo.NewPropertyRepository(db)
	teamRepo := mongo.NewTeamRepository(db)
	portfolioRepo := mongo.NewPortfolioRepository(db)
	visitRepo := mongo.NewVisitRepository(db)
	contactRepo := mongo.NewContactRepository(db)
	newsletterRepo := mongo.NewNewsletterRepository(db)
	achievementRepo := mongo.NewAchievementRepository(db)
	activityRepo := mongo.NewActivityRepository(db)

	if err := auth.EnsureDefaultAdmin(bootstrapCtx, adminRepo, &cfg.Admin); err != nil {
		log.Fatalf("Failed to ensure default admin: %v", err)
	}

	s3Client, err := s3.NewClient(&cfg.AWS)
	if err != nil {
		log.Fatalf("Failed to create S3 client: %v", err)
	}

	log.Println("S3 client initialized")

	smtpProvider := providers.NewSMTPProvider(providers.SMTPConfig{
		Host:     cfg.SMTP.Host,
		Port:     strconv.Itoa(cfg.SMTP.Port),
		Username: cfg.SMTP.User,
		Password: cfg.SMTP.Password,
	})

	emailService, err := mailer.NewEmailService(mailer.EmailServiceConfig{
		Providers:   []providers.EmailProvider{smtpProvider},
		Strategy:    &strategies.FailoverStrategy{},
		DefaultFrom: cfg.SMTP.From,
	})
	if err != nil {
		log.Fatalf("Failed to create email service: %v", err)
	}

	notifier, err := notify.NewNotifier(notify.Config{
		Service:    emailService,
		AdminEmail: cfg.SMTP.AdminAlertEmail,
	})
	if err != nil {
		log.Fatalf("Failed to create notifier: %v", err)
	}

	counter, err := visitors.NewCounter(cfg.Visitor.FilePath, cfg.Visitor.FlushInterval)
	if err != nil {
		log.Fatalf("Failed to load visitor counter: %v", err)
	}

	jwtService := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.ExpiryDuration)
	authMiddleware := auth.NewMiddleware(jwtService)
	recorder := audit.NewRecorder(activityRepo)

	serverDeps := &http.ServerDependencies{
		Config:          cfg,
		AdminRepo:       adminRepo,
		PropertyRepo:    propertyRepo,
		TeamRepo:        teamRepo,
		PortfolioRepo:   portfolioRepo,
		VisitRepo:       visitRepo,
		ContactRepo:     contactRepo,
		NewsletterRepo:  newsletterRepo,
		AchievementRepo: achievementRepo,
		ActivityRepo:    activityRepo,
		Media:           s3Client,
		JWTService:      jwtService,
		AuthMiddleware:  authMiddleware,
		Notifier:        notifier,
		Recorder:        recorder,
		Visitors:        counter,
	}

	server := http.NewServer(serverDeps)

	go func() {
		log.Printf("Starting HTTP server on port %s", cfg.Server.Port)
		if err := server.Start(serverAddrPrefix + cfg.Server.Port); err != nil {
			log.Printf("Server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, signalBufferSize)
	signal.Notify(quit, shutdownSignals...)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	notifier.Close()

	if err := counter.Close(); err != nil {
		log.Printf("Failed to flush visitor counter: %v", err)
	}

	if err := db.Close(ctx); err != nil {
		log.Printf("Failed to close database connection: %v", err)
	}

	log.Println("Server exited gracefully")
}
