package config

import (
	"os"
	"strconv"
	"time"

	"github.com/poofware/blog-api/internal/utils"
)

// Config holds all application configuration. Everything is externally
// supplied through environment variables; nothing security-relevant is
// hard-coded.
type Config struct {
	AppName     string
	AppPort     string
	AppUrl      string
	DBUrl       string
	JWTKey      []byte
	JWTIssuer   string
	JWTAudience string
	TokenExpiry time.Duration
}

const (
	AppName = "blog-api"

	// Signing keys shorter than this are rejected at startup; HS256 with a
	// short key is trivially brute-forced.
	MinSigningKeyLen = 32

	DefaultTokenExpiryMinutes = 60
)

// LoadConfig reads and validates the environment. Missing required values
// are fatal: the service must not come up half-configured.
func LoadConfig() *Config {
	utils.Logger.Info("Loading config for app: ", AppName)

	appPort := os.Getenv("APP_PORT")
	if appPort == "" {
		utils.Logger.Fatal("APP_PORT env var is missing")
	}
	appUrl := os.Getenv("APP_URL")
	if appUrl == "" {
		utils.Logger.Fatal("APP_URL env var is missing")
	}
	dbUrl := os.Getenv("DB_URL")
	if dbUrl == "" {
		utils.Logger.Fatal("DB_URL env var is missing")
	}

	jwtKey := os.Getenv("JWT_SIGNING_KEY")
	if jwtKey == "" {
		utils.Logger.Fatal("JWT_SIGNING_KEY env var is missing")
	}
	if len(jwtKey) < MinSigningKeyLen {
		utils.Logger.Fatalf("JWT_SIGNING_KEY must be at least %d bytes", MinSigningKeyLen)
	}

	jwtIssuer := os.Getenv("JWT_ISSUER")
	if jwtIssuer == "" {
		utils.Logger.Fatal("JWT_ISSUER env var is missing")
	}
	jwtAudience := os.Getenv("JWT_AUDIENCE")
	if jwtAudience == "" {
		utils.Logger.Fatal("JWT_AUDIENCE env var is missing")
	}

	tokenExpiryMinutes := DefaultTokenExpiryMinutes
	if raw := os.Getenv("JWT_DURATION_MINUTES"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			utils.Logger.Fatalf("JWT_DURATION_MINUTES is not a positive integer: %q", raw)
		}
		tokenExpiryMinutes = parsed
	}

	return &Config{
		AppName:     AppName,
		AppPort:     appPort,
		AppUrl:      appUrl,
		DBUrl:       dbUrl,
		JWTKey:      []byte(jwtKey),
		JWTIssuer:   jwtIssuer,
		JWTAudience: jwtAudience,
		TokenExpiry: time.Duration(tokenExpiryMinutes) * time.Minute,
	}
}
