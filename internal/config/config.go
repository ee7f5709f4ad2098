package config

import (
	"crypto/rsa"
	"encoding/base64"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/joho/godotenv"

	"github.com/TerrenceTakunda/ekpm/internal/utils"
)

// Config holds all application configuration, including secrets and
// form-population lists.
type Config struct {
	AppName       string
	AppPort       string
	DBUrl         string
	TokenExpiry   time.Duration
	TokenIssuer   string
	RSAPrivateKey *rsa.PrivateKey
	RSAPublicKey  *rsa.PublicKey

	// Accepted values for identification and accommodation dropdowns.
	IDTypes            []string
	AccommodationTypes []string

	CORSAllowedOrigins []string
	SeedDemoData       bool
}

// Defaults for time-based configuration.
const (
	DefaultTokenExpiry = 24 * time.Hour
	DefaultTokenIssuer = "ekpm"
)

var (
	defaultIDTypes = []string{
		"National ID",
		"Passport",
		"Driver's Licence",
		"Company Registration",
	}
	defaultAccommodationTypes = []string{
		"Apartment",
		"Office Space",
		"Retail Space",
		"Warehouse",
		"Parking Bay",
	}
)

// LoadConfig reads environment variables (with .env as a convenience in
// development) and returns a *Config. Missing required values are fatal.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		utils.Logger.Debug("No .env file found, relying on environment")
	}

	appName := os.Getenv("APP_NAME")
	if appName == "" {
		appName = "ekpm"
	}
	appPort := os.Getenv("APP_PORT")
	if appPort == "" {
		utils.Logger.Fatal("APP_PORT env var is missing")
	}
	dbUrl := os.Getenv("DB_URL")
	if dbUrl == "" {
		utils.Logger.Fatal("DB_URL env var is missing")
	}

	//----------------------------------------------------------------------
	// RSA signing keys, base64-encoded PEM.
	//----------------------------------------------------------------------
	privateKeyBase64 := os.Getenv("RSA_PRIVATE_KEY_BASE64")
	if privateKeyBase64 == "" {
		utils.Logger.Fatal("RSA_PRIVATE_KEY_BASE64 env var is missing")
	}
	privateKeyPEM, err := base64.StdEncoding.DecodeString(privateKeyBase64)
	if err != nil {
		utils.Logger.WithError(err).Fatal("Failed to decode base64 private key")
	}
	privateKey, err := jwt.ParseRSAPrivateKeyFromPEM(privateKeyPEM)
	if err != nil {
		utils.Logger.WithError(err).Fatal("Failed to parse RSA private key")
	}

	publicKeyBase64 := os.Getenv("RSA_PUBLIC_KEY_BASE64")
	if publicKeyBase64 == "" {
		utils.Logger.Fatal("RSA_PUBLIC_KEY_BASE64 env var is missing")
	}
	publicKeyPEM, err := base64.StdEncoding.DecodeString(publicKeyBase64)
	if err != nil {
		utils.Logger.WithError(err).Fatal("Failed to decode base64 public key")
	}
	publicKey, err := jwt.ParseRSAPublicKeyFromPEM(publicKeyPEM)
	if err != nil {
		utils.Logger.WithError(err).Fatal("Failed to parse RSA public key")
	}

	tokenExpiry := DefaultTokenExpiry
	if raw := os.Getenv("TOKEN_EXPIRY"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			utils.Logger.WithError(err).Fatal("Invalid TOKEN_EXPIRY duration")
		}
		tokenExpiry = d
	}

	tokenIssuer := os.Getenv("TOKEN_ISSUER")
	if tokenIssuer == "" {
		tokenIssuer = DefaultTokenIssuer
	}

	return &Config{
		AppName:            appName,
		AppPort:            appPort,
		DBUrl:              dbUrl,
		TokenExpiry:        tokenExpiry,
		TokenIssuer:        tokenIssuer,
		RSAPrivateKey:      privateKey,
		RSAPublicKey:       publicKey,
		IDTypes:            csvList("ID_TYPES", defaultIDTypes),
		AccommodationTypes: csvList("ACCOMMODATION_TYPES", defaultAccommodationTypes),
		CORSAllowedOrigins: csvList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		SeedDemoData:       os.Getenv("SEED_DEMO_DATA") == "true",
	}
}

// csvList splits a comma-separated env var, falling back to defaults
// when unset.
func csvList(key string, fallback []string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if v := strings.TrimSpace(part); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
