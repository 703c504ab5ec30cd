package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	JWT       JWTConfig       `yaml:"jwt"`
	Slack     SlackConfig     `yaml:"slack"`
	Github    GithubConfig    `yaml:"github"`
	Sendgrid  SendgridConfig  `yaml:"sendgrid"`
	CORS      CORSConfig      `yaml:"cors"`
	Log       LogConfig       `yaml:"log"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// DatabaseConfig contains PostgreSQL connection settings
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"ssl_mode"`
}

// JWTConfig contains token validation settings
type JWTConfig struct {
	Secret string `yaml:"secret"`
}

// SlackConfig contains chat workspace settings
type SlackConfig struct {
	BotToken         string `yaml:"bot_token"`
	TeamID           string `yaml:"team_id"`
	DefaultChannelID string `yaml:"default_channel_id"`
}

// GithubConfig contains code hosting settings
type GithubConfig struct {
	Org           string `yaml:"org"`
	Token         string `yaml:"token"`
	DefaultBranch string `yaml:"default_branch"`
}

// SendgridConfig contains transactional email settings
type SendgridConfig struct {
	APIKey    string `yaml:"api_key"`
	FromEmail string `yaml:"from_email"`
	FromName  string `yaml:"from_name"`
}

// CORSConfig contains allowed origins for browser callers
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// SchedulerConfig contains cron schedule settings
type SchedulerConfig struct {
	RetryOutboxTasks      string `yaml:"retry_outbox_tasks"`
	BootstrapProjectRepos string `yaml:"bootstrap_project_repos"`
}

// Load reads configuration from a YAML file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Override with environment variables if present
	cfg.overrideWithEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// overrideWithEnv overrides config values with environment variables
func (c *Config) overrideWithEnv() {
	// Database
	if val := os.Getenv("DB_HOST"); val != "" {
		c.Database.Host = val
	}
	if val := os.Getenv("DB_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Database.Port)
	}
	if val := os.Getenv("DB_USER"); val != "" {
		c.Database.User = val
	}
	if val := os.Getenv("DB_PASSWORD"); val != "" {
		c.Database.Password = val
	}
	if val := os.Getenv("DB_NAME"); val != "" {
		c.Database.Database = val
	}
	if val := os.Getenv("DB_SSL_MODE"); val != "" {
		c.Database.SSLMode = val
	}

	// JWT
	if val := os.Getenv("JWT_SECRET"); val != "" {
		c.JWT.Secret = val
	}

	// Slack
	if val := os.Getenv("SLACK_BOT_TOKEN"); val != "" {
		c.Slack.BotToken = val
	}
	if val := os.Getenv("SLACK_TEAM_ID"); val != "" {
		c.Slack.TeamID = val
	}
	if val := os.Getenv("SLACK_DEFAULT_CHANNEL_ID"); val != "" {
		c.Slack.DefaultChannelID = val
	}

	// Github
	if val := os.Getenv("GITHUB_ORG"); val != "" {
		c.Github.Org = val
	}
	if val := os.Getenv("GITHUB_TOKEN"); val != "" {
		c.Github.Token = val
	}

	// Sendgrid
	if val := os.Getenv("SENDGRID_API_KEY"); val != "" {
		c.Sendgrid.APIKey = val
	}
	if val := os.Getenv("SENDGRID_FROM_EMAIL"); val != "" {
		c.Sendgrid.FromEmail = val
	}

	// Server
	if val := os.Getenv("SERVER_HOST"); val != "" {
		c.Server.Host = val
	}
	if val := os.Getenv("SERVER_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Server.Port)
	}

	// Log
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}

	// Set defaults for log if not configured
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	// Server validation
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	// Database validation
	if c.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}
	if c.Database.User == "" {
		return fmt.Errorf("database user is required")
	}
	if c.Database.Database == "" {
		return fmt.Errorf("database name is required")
	}

	// JWT validation
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if len(c.JWT.Secret) < 32 {
		return fmt.Errorf("JWT secret must be at least 32 characters")
	}

	// Sendgrid validation
	if c.Sendgrid.FromEmail == "" {
		return fmt.Errorf("sendgrid from email is required")
	}
	if c.Sendgrid.FromName == "" {
		c.Sendgrid.FromName = "Club Board"
	}

	// Github defaults
	if c.Github.DefaultBranch == "" {
		c.Github.DefaultBranch = "main"
	}

	// CORS defaults
	if len(c.CORS.AllowedOrigins) == 0 {
		c.CORS.AllowedOrigins = []string{"*"}
	}

	// Scheduler defaults
	if c.Scheduler.RetryOutboxTasks == "" {
		c.Scheduler.RetryOutboxTasks = "0 */10 * * * *" // Every 10 minutes
	}
	if c.Scheduler.BootstrapProjectRepos == "" {
		c.Scheduler.BootstrapProjectRepos = "0 0 6 * * *" // 6 AM UTC
	}

	return nil
}

// GetDatabaseConnectionString returns a PostgreSQL connection string
func (c *Config) GetDatabaseConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Database,
		c.Database.SSLMode,
	)
}

// GetServerAddress returns the HTTP server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
