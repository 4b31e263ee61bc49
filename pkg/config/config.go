package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	ProviderOpenRouter = "openrouter"
	ProviderLangChain  = "langchain"
)

type Config struct {
	AppName     string
	Host        string
	Port        string
	BodyLimitMB int

	LogLevel  string
	LogFormat string

	LLMProvider string

	OpenRouterAPIKey   string
	OpenRouterBase     string
	OpenRouterModel    string
	OpenRouterAppTitle string
	OpenRouterReferer  string

	LangChainBaseURL string
	LangChainToken   string
	LangChainModel   string
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Config{
		AppName:     getEnv("APP_NAME", "Web-based Chat Assistant"),
		Host:        getEnv("HOST", "0.0.0.0"),
		Port:        getEnv("PORT", "8000"),
		BodyLimitMB: getEnvInt("BODY_LIMIT_MB", 100),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),

		LLMProvider: getEnv("LLM_PROVIDER", ProviderOpenRouter),

		OpenRouterAPIKey:   os.Getenv("OPENROUTER_API_KEY"),
		OpenRouterBase:     getEnv("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1"),
		OpenRouterModel:    getEnv("OPENROUTER_MODEL", "qwen/qwen2.5-32b-instruct"),
		OpenRouterAppTitle: os.Getenv("OPENROUTER_APP_TITLE"),
		OpenRouterReferer:  os.Getenv("OPENROUTER_REFERER"),

		LangChainBaseURL: getEnv("LANGCHAIN_BASE_URL", "http://localhost:11434/v1/"),
		LangChainToken:   getEnv("LANGCHAIN_TOKEN", os.Getenv("OPENAI_API_KEY")),
		LangChainModel:   getEnv("LANGCHAIN_MODEL", "llama3.1:8b"),
	}
	return cfg
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string { return c.Host + ":" + c.Port }

// BodyLimitBytes converts the configured limit for fiber.Config.
func (c Config) BodyLimitBytes() int {
	if c.BodyLimitMB <= 0 {
		return 100 << 20
	}
	return c.BodyLimitMB << 20
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
