package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Configuration holds the static settings the server needs at startup.
// Every value has a local-development fallback so a fresh checkout runs
// against a local MongoDB with no env file at all.
type Configuration struct {
	InitMode bool   `env:"INITMODE" envDefault:"true"` // seed demo data on boot when collections are empty
	Address  string `env:"ADDRESS" envDefault:":8080"`

	MongoDB_ConnectionURI string `env:"MONGODB_CONNECTION_URI" envDefault:"mongodb://localhost:27017"`
	MongoDB_DBName        string `env:"MONGODB_DBNAME" envDefault:"ngo_portal"`

	// OrgCode prefixes donation receipt numbers: <ORG>-RCP-<YYYY>-<NNNNNN>.
	OrgCode string `env:"ORG_CODE" envDefault:"SSF"`

	JwtSecret        string `env:"JWT_SECRET" envDefault:"dev-jwt-secret-change-me"`
	JwtRefreshSecret string `env:"JWT_REFRESH_SECRET" envDefault:"dev-refresh-secret-change-me"`
	TokenTTLMinutes  int    `env:"TOKEN_TTL_MINUTES" envDefault:"60"`
	RefreshTTLHours  int    `env:"REFRESH_TTL_HOURS" envDefault:"168"`

	CORS_Origins          string `env:"CORS_ORIGINS" envDefault:"*"`
	CORS_AllowCredentials bool   `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"`

	RateLimit_Enabled bool `env:"RATE_LIMIT_ENABLED" envDefault:"true"`
	RateLimit_Max     int  `env:"RATE_LIMIT_MAX" envDefault:"100"` // requests per window, 0 disables
	RateLimit_Window  int  `env:"RATE_LIMIT_WINDOW" envDefault:"60"` // seconds

	// SMTP settings for best-effort notification mail. Empty host
	// disables the mailer entirely.
	SMTP_Host     string `env:"SMTP_HOST"`
	SMTP_Port     int    `env:"SMTP_PORT" envDefault:"587"`
	SMTP_User     string `env:"SMTP_USER"`
	SMTP_Password string `env:"SMTP_PASSWORD"`
	SMTP_From     string `env:"SMTP_FROM"`

	LogDir   string `env:"LOG_DIR" envDefault:"logs"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// getEnvPath locates config/env/<GO_ENV>.env by walking up from the
// working directory, so the binary runs from any subdirectory of the
// project.
func getEnvPath() string {
	goEnv := os.Getenv("GO_ENV")
	if goEnv == "" {
		goEnv = "development"
	}

	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			return filepath.Join(envDir, fmt.Sprintf("%s.env", goEnv))
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

// NewConfig loads the env file for the current GO_ENV (when present) and
// parses the configuration from the environment. A missing env file is
// not an error; the defaults carry local development.
func NewConfig() *Configuration {
	if envPath := getEnvPath(); envPath != "" {
		if err := godotenv.Load(envPath); err != nil {
			// Logger is not initialized yet at this point.
			fmt.Printf("config: no env file at %s, using environment and defaults\n", envPath)
		}
	}

	cfg := Configuration{}
	if err := env.Parse(&cfg); err != nil {
		fmt.Printf("config: parse failed: %+v\n", err)
		return nil
	}

	return &cfg
}
