package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App        AppConfig
	Database   DatabaseConfig
	Confluence ConfluenceConfig
	Search     SearchConfig
	SMTP       SMTPConfig
	Ai         AIConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	ClientURL          string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
	JWTSecret          string
	EmbedTopic         string
	ProfileTopic       string
}

type DatabaseConfig struct {
	Connection string
}

type ConfluenceConfig struct {
	BaseURL  string
	Username string
	APIToken string
	SpaceKey string
	PageSize int
}

type SearchConfig struct {
	Endpoint  string
	APIKey    string
	IndexName string
}

type SMTPConfig struct {
	Host       string
	Port       int
	Email      string
	Password   string
	SenderName string
}

type AIConfig struct {
	EmbeddingProvider string // "gemini" or "ollama"
	GeminiAPIKey      string
	OllamaBaseURL     string
	OllamaModel       string
	LLMProvider       string // "ollama", "openai", etc
	LLMModel          string // e.g. "llama3", "qwen2.5"
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			ClientURL:          getEnv("CLIENT_URL", "http://localhost:5173"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log.csv"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
			JWTSecret:          getEnv("JWT_SECRET", ""),
			EmbedTopic:         getEnv("EMBED_PAGE_CONTENT_TOPIC_NAME", "EMBED_PAGE_CONTENT"),
			ProfileTopic:       getEnv("PROFILE_COMPLETED_TOPIC_NAME", "PROFILE_COMPLETED"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Confluence: ConfluenceConfig{
			BaseURL:  getEnv("CONFLUENCE_BASE_URL", ""),
			Username: getEnv("CONFLUENCE_USERNAME", ""),
			APIToken: getEnv("CONFLUENCE_API_TOKEN", ""),
			SpaceKey: getEnv("CONFLUENCE_SPACE_KEY", ""),
			PageSize: getEnvAsInt("CONFLUENCE_PAGE_SIZE", 25),
		},
		Search: SearchConfig{
			Endpoint:  getEnv("SEARCH_ENDPOINT", ""),
			APIKey:    getEnv("SEARCH_API_KEY", ""),
			IndexName: getEnv("SEARCH_INDEX_NAME", "learning-content"),
		},
		SMTP: SMTPConfig{
			Host:       getEnv("SMTP_HOST", ""),
			Port:       getEnvAsInt("SMTP_PORT", 587),
			Email:      getEnv("SMTP_EMAIL", ""),
			Password:   getEnv("SMTP_PASSWORD", ""),
			SenderName: getEnv("SMTP_SENDER_NAME", "Learning Assistant"),
		},
		Ai: AIConfig{
			EmbeddingProvider: getEnv("EMBEDDING_PROVIDER", "gemini"),
			GeminiAPIKey:      getEnv("GOOGLE_GEMINI_API_KEY", ""),
			OllamaBaseURL:     getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			OllamaModel:       getEnv("OLLAMA_EMBEDDING_MODEL", "nomic-embed-text"),
			LLMProvider:       getEnv("LLM_PROVIDER", "ollama"),
			LLMModel:          getEnv("LLM_MODEL", "llama3"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
