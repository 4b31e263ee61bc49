// @title         chat-assistant API
// @version       1.0
// @description   Web-based chat assistant: forwards a conversation to a language model and reports metadata of uploaded files.
// @BasePath      /
// @schemes       http
// @host          localhost:8000
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	swagger "github.com/gofiber/swagger"
	"go.uber.org/zap"

	_ "github.com/artem13815/assistant/docs"

	// internal imports
	"github.com/artem13815/assistant/api/http"
	"github.com/artem13815/assistant/api/http/handlers"
	"github.com/artem13815/assistant/pkg/chat"
	"github.com/artem13815/assistant/pkg/config"
	"github.com/artem13815/assistant/pkg/health"
	"github.com/artem13815/assistant/pkg/health/checkers"
	"github.com/artem13815/assistant/pkg/llm"
	"github.com/artem13815/assistant/pkg/llm/langchain"
	"github.com/artem13815/assistant/pkg/llm/openrouter"
	"github.com/artem13815/assistant/pkg/logger"
	"github.com/artem13815/assistant/pkg/upload"
)

func main() {
	// Load configuration from env/.env
	cfg := config.Load()

	zl, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer zl.Sync()

	gateway, err := newGateway(cfg)
	if err != nil {
		zl.Fatal("failed to initialize LLM gateway", zap.Error(err), zap.String("provider", cfg.LLMProvider))
	}

	chatHandler := handlers.NewChatHandler(chat.NewService(gateway, zl), zl)
	uploadHandler := handlers.NewUploadHandler(upload.NewService(), zl)
	readiness := health.NewService(checkers.NewGatewayChecker(cfg.LLMProvider, gateway))
	healthHandler := handlers.NewHealthHandler(readiness, cfg.LLMProvider)

	app := http.NewApp(cfg.AppName, cfg.BodyLimitBytes(), zl)
	http.Register(app, chatHandler, uploadHandler, healthHandler)

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	go func() {
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
		<-stop
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(ctx); err != nil {
			zl.Error("shutdown", zap.Error(err))
		}
	}()

	zl.Info("HTTP server listening", zap.String("addr", cfg.Addr()), zap.String("provider", cfg.LLMProvider))
	if err := app.Listen(cfg.Addr()); err != nil {
		zl.Fatal("server stopped", zap.Error(err))
	}
}

func newGateway(cfg config.Config) (llm.Gateway, error) {
	switch cfg.LLMProvider {
	case config.ProviderOpenRouter:
		return openrouter.New(
			cfg.OpenRouterAPIKey,
			cfg.OpenRouterBase,
			cfg.OpenRouterModel,
			cfg.OpenRouterAppTitle,
			cfg.OpenRouterReferer,
		), nil
	case config.ProviderLangChain:
		c, err := langchain.New(cfg.LangChainBaseURL, cfg.LangChainToken, cfg.LangChainModel)
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, fmt.Errorf("unknown LLM_PROVIDER %q", cfg.LLMProvider)
	}
}
