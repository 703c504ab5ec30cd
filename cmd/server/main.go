package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"net/http"

	httpapi "clubhub-backend/internal/api/http"
	"clubhub-backend/internal/config"
	"clubhub-backend/internal/github"
	"clubhub-backend/internal/logger"
	"clubhub-backend/internal/repository/postgres"
	"clubhub-backend/internal/security"
	"clubhub-backend/internal/service"
	"clubhub-backend/internal/slack"

	_ "github.com/lib/pq"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting ClubHub Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	logger.Debug("Connecting to database...", "connection_string", fmt.Sprintf("%s@%s:%d/%s", cfg.Database.User, cfg.Database.Host, cfg.Database.Port, cfg.Database.Database))
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret)

	// Initialize External Clients
	chatClient := slack.NewClient(cfg.Slack.BotToken, cfg.Slack.TeamID, cfg.Slack.DefaultChannelID)
	codeHostClient := github.NewClient(cfg.Github.Org, cfg.Github.Token)

	// Initialize Email Service
	emailSvc := service.NewEmailService(
		cfg.Sendgrid.APIKey,
		cfg.Sendgrid.FromEmail,
		cfg.Sendgrid.FromName,
	)

	// Initialize Services
	decisionSvc := service.NewDecisionService(
		store.ApplicationRepository,
		store.ProfileRepository,
		store.RoleRepository,
		store.ProjectRepository,
		store.ClassRepository,
		store.OutboxRepository,
		emailSvc,
		chatClient,
		codeHostClient,
		cfg.Github.DefaultBranch,
	)
	appSvc := service.NewApplicationService(
		store.ApplicationRepository,
		store.ProfileRepository,
		store.ProjectRepository,
		store.ClassRepository,
	)
	memberSvc := service.NewMemberService(store.ProfileRepository, store.RoleRepository)
	dirSvc := service.NewDirectoryService(
		store.ProjectRepository,
		store.ClassRepository,
		store.EventRepository,
		store.SemesterRepository,
	)

	// Set up HTTP server
	router := httpapi.NewRouter(tokenManager, decisionSvc, appSvc, memberSvc, dirSvc, cfg.CORS.AllowedOrigins)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("Failed to serve HTTP", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
