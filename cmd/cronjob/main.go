package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	"clubhub-backend/internal/config"
	"clubhub-backend/internal/github"
	"clubhub-backend/internal/jobs"
	"clubhub-backend/internal/logger"
	"clubhub-backend/internal/repository/postgres"
	"clubhub-backend/internal/scheduler"
	"clubhub-backend/internal/service"
	"clubhub-backend/internal/slack"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'retry-outbox-tasks', 'bootstrap-project-repos', 'all')")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting ClubHub Cronjob Runner...", "log_level", cfg.Log.Level)

	// Initialize Database
	logger.Info("Connecting to database...", "host", cfg.Database.Host, "port", cfg.Database.Port)
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

	// Initialize External Clients
	chatClient := slack.NewClient(cfg.Slack.BotToken, cfg.Slack.TeamID, cfg.Slack.DefaultChannelID)
	codeHostClient := github.NewClient(cfg.Github.Org, cfg.Github.Token)

	// Initialize Services
	emailService := service.NewEmailService(
		cfg.Sendgrid.APIKey,
		cfg.Sendgrid.FromEmail,
		cfg.Sendgrid.FromName,
	)

	decisionService := service.NewDecisionService(
		store.ApplicationRepository,
		store.ProfileRepository,
		store.RoleRepository,
		store.ProjectRepository,
		store.ClassRepository,
		store.OutboxRepository,
		emailService,
		chatClient,
		codeHostClient,
		cfg.Github.DefaultBranch,
	)

	provisioningService := service.NewProvisioningService(
		store.ProfileRepository,
		store.ProjectRepository,
		store.ClassRepository,
		chatClient,
		codeHostClient,
		cfg.Github.DefaultBranch,
	)

	jobServices := &jobs.Services{
		Decision:     decisionService,
		Provisioning: provisioningService,
	}

	// Initialize Job Runner
	jobRunner := jobs.NewJobRunner(db, store, jobServices, cfg)

	// Check if running a single job
	if *runOnce != "" {
		logger.Info("Running job once", "job", *runOnce)
		runJobOnce(jobRunner, *runOnce)
		logger.Info("Job execution completed", "job", *runOnce)
		return
	}

	// Initialize Scheduler
	cronScheduler := scheduler.NewScheduler(jobRunner)

	// Start scheduler
	cronScheduler.Start()
	logger.Info("Cronjob scheduler is running. Press Ctrl+C to stop.")

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down cronjob scheduler...")
	cronScheduler.Stop()
	logger.Info("Cronjob scheduler stopped. Goodbye!")
}

// runJobOnce runs a specific job once and exits
func runJobOnce(jobRunner *jobs.JobRunner, jobName string) {
	switch jobName {
	case "retry-outbox-tasks":
		jobRunner.RetryOutboxTasks()
	case "bootstrap-project-repos":
		jobRunner.BootstrapProjectRepos()
	case "all":
		jobRunner.RetryOutboxTasks()
		jobRunner.BootstrapProjectRepos()
	default:
		logger.Error("Unknown job name", "job", jobName)
		fmt.Printf("Available jobs:\n")
		fmt.Printf("  - retry-outbox-tasks\n")
		fmt.Printf("  - bootstrap-project-repos\n")
		fmt.Printf("  - all\n")
		os.Exit(1)
	}
}
