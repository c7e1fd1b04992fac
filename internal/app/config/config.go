package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"medsms-core/internal/infrastructure/database/postgres"
	"medsms-core/internal/infrastructure/database/redis"

	"github.com/joho/godotenv"
)

// Somente variáveis de ambiente

// Config estrutura unificada
type Config struct {
	Environment string
	Server      ServerConfig
	Store       StoreConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	AI          AIConfig
	Logging     LoggingConfig
	CORS        CORSConfig
}

// ServerConfig configuração do servidor HTTP
type ServerConfig struct {
	Host         string        `env:"SERVER_HOST"`
	Port         int           `env:"SERVER_PORT"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT"`
}

// StoreConfig seleciona o driver do armazenamento de entidades.
// "sqlite" (embarcado, padrão) ou "postgres".
type StoreConfig struct {
	Driver     string `env:"STORE_DRIVER"`
	SQLitePath string `env:"STORE_SQLITE_PATH"`
}

// DatabaseConfig configuração PostgreSQL (usada quando STORE_DRIVER=postgres)
type DatabaseConfig struct {
	Host           string        `env:"DB_HOST"`
	Port           int           `env:"DB_PORT"`
	Database       string        `env:"DB_NAME"`
	Username       string        `env:"DB_USERNAME"`
	Password       string        `env:"DB_PASSWORD"`
	MaxConnections int           `env:"DB_MAX_CONNECTIONS"`
	ConnectionTTL  time.Duration `env:"DB_CONNECTION_TTL"`
	QueryTimeout   time.Duration `env:"DB_QUERY_TIMEOUT"`
	SSLMode        string        `env:"DB_SSL_MODE"`
}

// RedisConfig configuração Redis (preferências de sessão)
type RedisConfig struct {
	Host        string        `env:"REDIS_HOST"`
	Port        int           `env:"REDIS_PORT"`
	Password    string        `env:"REDIS_PASSWORD"`
	Database    int           `env:"REDIS_DATABASE"`
	MaxRetries  int           `env:"REDIS_MAX_RETRIES"`
	PoolSize    int           `env:"REDIS_POOL_SIZE"`
	PoolTimeout time.Duration `env:"REDIS_POOL_TIMEOUT"`
}

// AIConfig credenciais e padrões dos provedores de IA
type AIConfig struct {
	DefaultProvider string `env:"AI_DEFAULT_PROVIDER"`
	GeminiAPIKey    string `env:"GEMINI_API_KEY"`
	HFToken         string `env:"HF_TOKEN"`
	GroqAPIKey      string `env:"GROQ_API_KEY"`
	LMStudioURL     string `env:"LM_STUDIO_URL"`
	LMStudioModel   string `env:"LM_STUDIO_MODEL"`
}

// LoggingConfig configuração de logging
type LoggingConfig struct {
	Level string `env:"LOG_LEVEL"`
}

// CORSConfig configuração CORS
type CORSConfig struct {
	AllowedOrigins   []string `env:"CORS_ALLOWED_ORIGINS"`
	AllowedMethods   []string `env:"CORS_ALLOWED_METHODS"`
	AllowedHeaders   []string `env:"CORS_ALLOWED_HEADERS"`
	AllowCredentials bool     `env:"CORS_ALLOW_CREDENTIALS"`
	MaxAge           int      `env:"CORS_MAX_AGE"`
}

// NewConfig carrega a configuração a partir das variáveis de ambiente
func NewConfig() (*Config, error) {
	// Carregar o arquivo .env (opcional)
	if err := godotenv.Load(".env"); err != nil {
		fmt.Printf("[CONFIG] Warning: Arquivo .env não encontrado: %v\n", err)
	}

	config := &Config{}

	// Determinar ambiente
	config.Environment = getEnv("APP_ENV", "development")

	// Carregar configuração do servidor
	config.Server = ServerConfig{
		Host:         getEnv("SERVER_HOST", "localhost"),
		Port:         getEnvInt("SERVER_PORT", 4000),
		ReadTimeout:  getEnvDuration("SERVER_READ_TIMEOUT", 30) * time.Second,
		WriteTimeout: getEnvDuration("SERVER_WRITE_TIMEOUT", 30) * time.Second,
	}

	// Carregar configuração do store
	config.Store = StoreConfig{
		Driver:     getEnv("STORE_DRIVER", "sqlite"),
		SQLitePath: getEnv("STORE_SQLITE_PATH", "data/medsms.db"),
	}

	// Carregar configuração database
	config.Database = DatabaseConfig{
		Host:           getEnv("DB_HOST", "localhost"),
		Port:           getEnvInt("DB_PORT", 5432),
		Database:       getEnv("DB_NAME", "medsms"),
		Username:       getEnv("DB_USERNAME", "postgres"),
		Password:       getEnv("DB_PASSWORD", ""),
		MaxConnections: getEnvInt("DB_MAX_CONNECTIONS", 100),
		ConnectionTTL:  getEnvDuration("DB_CONNECTION_TTL", 300) * time.Second,
		QueryTimeout:   getEnvDuration("DB_QUERY_TIMEOUT", 30) * time.Second,
		SSLMode:        getEnv("DB_SSL_MODE", "disable"),
	}

	// Carregar configuração Redis
	config.Redis = RedisConfig{
		Host:        getEnv("REDIS_HOST", "localhost"),
		Port:        getEnvInt("REDIS_PORT", 6379),
		Password:    getEnv("REDIS_PASSWORD", ""),
		Database:    getEnvInt("REDIS_DATABASE", 0),
		MaxRetries:  getEnvInt("REDIS_MAX_RETRIES", 3),
		PoolSize:    getEnvInt("REDIS_POOL_SIZE", 10),
		PoolTimeout: getEnvDuration("REDIS_POOL_TIMEOUT", 30) * time.Second,
	}

	// Carregar configuração dos provedores de IA
	config.AI = AIConfig{
		DefaultProvider: getEnv("AI_DEFAULT_PROVIDER", "gemini"),
		GeminiAPIKey:    getEnv("GEMINI_API_KEY", ""),
		HFToken:         getEnv("HF_TOKEN", ""),
		GroqAPIKey:      getEnv("GROQ_API_KEY", ""),
		LMStudioURL:     getEnv("LM_STUDIO_URL", "http://localhost:1234"),
		LMStudioModel:   getEnv("LM_STUDIO_MODEL", "gemma-3-gaia-pt-br-4b-it-i1"),
	}

	// Carregar configuração logging
	config.Logging = LoggingConfig{
		Level: getEnv("LOG_LEVEL", "debug"),
	}

	// Carregar configuração CORS
	config.CORS = CORSConfig{
		AllowedOrigins:   getEnvStringSlice("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
		AllowedMethods:   getEnvStringSlice("CORS_ALLOWED_METHODS", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		AllowedHeaders:   getEnvStringSlice("CORS_ALLOWED_HEADERS", []string{"Content-Type", "Authorization", "X-Session-ID"}),
		AllowCredentials: getEnvBool("CORS_ALLOW_CREDENTIALS", true),
		MaxAge:           getEnvInt("CORS_MAX_AGE", 3600),
	}

	// Validação de configuração crítica
	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("validação de configuração falhou: %w", err)
	}

	fmt.Printf("[CONFIG] ✅ Configuração carregada para ambiente: %s\n", config.Environment)
	return config, nil
}

// Getters para compatibilidade
func (c *Config) GetDatabase() DatabaseConfig { return c.Database }
func (c *Config) GetRedis() RedisConfig       { return c.Redis }
func (c *Config) GetStore() StoreConfig       { return c.Store }
func (c *Config) GetAI() AIConfig             { return c.AI }
func (c *Config) GetServer() ServerConfig     { return c.Server }
func (c *Config) GetLogging() LoggingConfig   { return c.Logging }
func (c *Config) GetCORS() CORSConfig         { return c.CORS }

// Conversores para configurações de infraestrutura
func NewPostgresConfig(config *Config) *postgres.DatabaseConfig {
	return &postgres.DatabaseConfig{
		Host:     config.Database.Host,
		Port:     config.Database.Port,
		Database: config.Database.Database,
		Username: config.Database.Username,
		Password: config.Database.Password,
		SSLMode:  config.Database.SSLMode,
	}
}

func NewRedisConfig(config *Config) *redis.RedisConfig {
	return &redis.RedisConfig{
		Host:     config.Redis.Host,
		Port:     config.Redis.Port,
		Password: config.Redis.Password,
		Database: config.Redis.Database,
	}
}

func NewRedisKeyGenerator(config *Config) *redis.RedisKeyGenerator {
	return redis.NewRedisKeyGenerator(config.Environment)
}

// Helpers para parsing de variáveis de ambiente
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultSeconds int) time.Duration {
	return time.Duration(getEnvInt(key, defaultSeconds))
}

func getEnvStringSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		return strings.Split(value, ",")
	}
	return defaultValue
}

// validateConfig valida a configuração conforme o ambiente
func validateConfig(config *Config) error {
	env := config.Environment

	// Validação de ambientes suportados
	if env != "development" && env != "docker" {
		return fmt.Errorf("ambiente não suportado: %s (use 'development' ou 'docker')", env)
	}

	// Validação do driver de armazenamento
	if config.Store.Driver != "sqlite" && config.Store.Driver != "postgres" {
		return fmt.Errorf("driver de armazenamento não suportado: %s (use 'sqlite' ou 'postgres')", config.Store.Driver)
	}

	missingVars := []string{}

	// Variáveis críticas em modo docker
	if env == "docker" {
		if config.Store.Driver == "postgres" && config.Database.Password == "" {
			missingVars = append(missingVars, "DB_PASSWORD")
		}

		// Warning para variáveis recomendadas em docker
		if config.Redis.Password == "" {
			fmt.Printf("[CONFIG] ⚠️ REDIS_PASSWORD não definido para ambiente docker\n")
		}
	}

	if len(missingVars) > 0 {
		return fmt.Errorf("variáveis críticas ausentes para ambiente docker: %v", missingVars)
	}

	return nil
}
