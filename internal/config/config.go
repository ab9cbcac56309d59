// Package config gerencia configurações da aplicação via variáveis de ambiente.
//
// # Variáveis de Ambiente
//
// ## Typesense
//   - TYPESENSE_HOST: Host do servidor Typesense (default: localhost)
//   - TYPESENSE_PORT: Porta do servidor (default: 8108)
//   - TYPESENSE_API_KEY: Chave de API do Typesense
//   - TYPESENSE_PROTOCOL: Protocolo http/https (default: http)
//
// ## Provedor de identidade
//   - IDENTITY_API_KEY: Chave da API do provedor de identidade (obrigatória)
//   - IDENTITY_BASE_URL: Endpoint REST do provedor
//     (default: https://identitytoolkit.googleapis.com/v1)
//
// ## Sessão
//   - SESSION_JWT_SECRET: Segredo HMAC dos tokens de sessão (obrigatório)
//   - SESSION_DURATION_HOURS: Validade do token de sessão (default: 12)
//
// ## Servidor
//   - SERVER_PORT: Porta HTTP (default: 8080)
//
// ## Tracing
//   - TRACING_ENABLED: Habilita exportação OTLP (default: false)
//   - TRACING_ENDPOINT: Endpoint OTLP gRPC (default: localhost:4317)
package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	TypesenseHost     string
	TypesensePort     string
	TypesenseAPIKey   string
	TypesenseProtocol string

	ServerPort string

	// Provedor de identidade (auth hospedada)
	IdentityAPIKey  string
	IdentityBaseURL string

	// Sessão
	SessionJWTSecret string
	SessionDuration  time.Duration

	// Tracing configuration
	TracingEnabled  bool
	TracingEndpoint string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		TypesenseHost:     getEnv("TYPESENSE_HOST", "localhost"),
		TypesensePort:     getEnv("TYPESENSE_PORT", "8108"),
		TypesenseAPIKey:   getEnv("TYPESENSE_API_KEY", ""),
		TypesenseProtocol: getEnv("TYPESENSE_PROTOCOL", "http"),

		ServerPort: getEnv("SERVER_PORT", "8080"),

		IdentityAPIKey:  os.Getenv("IDENTITY_API_KEY"),
		IdentityBaseURL: getEnv("IDENTITY_BASE_URL", "https://identitytoolkit.googleapis.com/v1"),

		SessionJWTSecret: os.Getenv("SESSION_JWT_SECRET"),
		SessionDuration:  time.Duration(getEnvInt("SESSION_DURATION_HOURS", 12)) * time.Hour,

		TracingEnabled:  getEnv("TRACING_ENABLED", "false") == "true",
		TracingEndpoint: getEnv("TRACING_ENDPOINT", "localhost:4317"),
	}

	if cfg.IdentityAPIKey == "" {
		log.Fatal("IDENTITY_API_KEY environment variable is required but not set")
	}
	if cfg.SessionJWTSecret == "" {
		log.Fatal("SESSION_JWT_SECRET environment variable is required but not set")
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
