package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"placeverse/config"
	"placeverse/internal/app"
	"placeverse/internal/database"
	"placeverse/internal/notify"
	"placeverse/internal/server"
	"placeverse/internal/services"
	"placeverse/internal/storage/postgres"
	"placeverse/internal/storage/redisstore"
	"placeverse/internal/uploads"

	"github.com/go-playground/validator/v10"
)

// @title           PlaceVerse API
// @version         1.0
// @description     Campus placement platform connecting students and recruiters.

// @contact.name   API Support
// @contact.email  support@placeverse.example.com

// @host      localhost:8080
// @BasePath  /api/v1
// @schemes   http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// --- Initialize Redis Client ---
	redisClient, err := database.NewRedisClient(cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	dbPool, err := database.NewConnectionPool(cfg.DB)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	migrateCtx, cancelMigrate := context.WithTimeout(context.Background(), 60*time.Second)
	if err := database.RunMigrations(migrateCtx, cfg.DB); err != nil {
		cancelMigrate()
		log.Fatalf("Failed to run database migrations: %v", err)
	}
	cancelMigrate()

	// --- Initialize Email Dispatcher ---
	mailer := notify.NewSMTPMailer(
		cfg.Email.Host,
		cfg.Email.Port,
		cfg.Email.User,
		cfg.Email.Password,
		cfg.Email.FromAddress,
		cfg.Email.FromName,
	)
	notifier, err := notify.NewDispatcher(mailer, cfg.Email.FromName, cfg.Email.FrontendURL)
	if err != nil {
		log.Fatalf("Failed to initialize email dispatcher: %v", err)
	}

	// Verify SMTP connectivity at startup. A broken mail setup should not
	// keep the API down, so this only warns.
	verifyCtx, cancelVerify := context.WithTimeout(context.Background(), 10*time.Second)
	if err := notifier.Verify(verifyCtx); err != nil {
		log.Printf("WARN: Email transport verification failed: %v. Continuing, notifications may not be delivered.", err)
	} else {
		log.Println("Email transport verified and ready")
	}
	cancelVerify()

	// --- Repositories ---
	userRepo := postgres.NewUserRepo(dbPool)
	jobRepo := postgres.NewJobRepo(dbPool)
	appRepo := postgres.NewApplicationRepo(dbPool)
	tokenStore := redisstore.NewTokenStore(redisClient)

	// --- Services ---
	userService := services.NewUserService(userRepo, tokenStore, cfg.JWT.Secret, cfg.JWT.Expiration, cfg.JWT.RefreshExpiration)
	jobService := services.NewJobService(jobRepo, appRepo)
	applicationService := services.NewApplicationService(appRepo, jobRepo, userRepo, notifier)

	resumeStore := uploads.NewS3ResumeStore(cfg.S3)

	validate := validator.New()

	application := &app.Application{
		Config:      cfg,
		DBPool:      dbPool,
		RedisClient: redisClient,
		Validator:   validate,

		UserService:        userService,
		JobService:         jobService,
		ApplicationService: applicationService,

		Notifier:    notifier,
		ResumeStore: resumeStore,
	}

	srv := server.NewServer(application)

	// --- Graceful Shutdown Handling ---
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit // Block until a signal is received

	log.Println("Shutting down server...")

	//Gin shutdowns on its own

	log.Println("Application gracefully stopped.")
}
