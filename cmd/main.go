package main

import (
	"errors"
	"fmt"
	"log"

	"go.uber.org/dig"

	"github.com/yevintheenura01/LLM-Utility-Toolkit/internal/config"
	"github.com/yevintheenura01/LLM-Utility-Toolkit/internal/domain"
	"github.com/yevintheenura01/LLM-Utility-Toolkit/internal/httpserver"
	"github.com/yevintheenura01/LLM-Utility-Toolkit/internal/httpserver/middleware"
	"github.com/yevintheenura01/LLM-Utility-Toolkit/internal/observability"
	"github.com/yevintheenura01/LLM-Utility-Toolkit/internal/provider/echo"
	"github.com/yevintheenura01/LLM-Utility-Toolkit/internal/provider/openai"
)

func main() {
	container := buildContainer()

	err := container.Invoke(func(server *httpserver.Server) {
		if err := server.Start(); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	})
	if err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}
}

func buildContainer() *dig.Container {
	container := dig.New()

	// Configuration
	if err := container.Provide(config.Load); err != nil {
		log.Fatalf("Failed to provide config: %v", err)
	}
	if err := container.Provide(config.ParseDependenciesConfig); err != nil {
		log.Fatalf("Failed to provide config dependencies: %v", err)
	}

	// Observability
	if err := container.Provide(observability.InitLogger); err != nil {
		log.Fatalf("Failed to provide logger: %v", err)
	}

	// Completion backend. Missing credential with the openai backend
	// is a fatal startup condition.
	if err := container.Provide(newCompleter); err != nil {
		log.Fatalf("Failed to provide completer: %v", err)
	}

	// Default generation parameters.
	if err := container.Provide(func(cfg *config.Config) domain.CompletionParams {
		return domain.CompletionParams{
			Model:       cfg.OpenAI.Model,
			Temperature: cfg.OpenAI.Temperature,
		}
	}); err != nil {
		log.Fatalf("Failed to provide completion params: %v", err)
	}

	// Domain Services
	if err := container.Provide(domain.NewToolkitService); err != nil {
		log.Fatalf("Failed to provide toolkit service: %v", err)
	}

	// HTTP Layer
	if err := container.Provide(middleware.BuildMiddlewareChain); err != nil {
		log.Fatalf("Failed to provide middleware chain: %v", err)
	}
	if err := container.Provide(httpserver.NewHandler); err != nil {
		log.Fatalf("Failed to provide HTTP handler: %v", err)
	}
	if err := container.Provide(httpserver.NewServer); err != nil {
		log.Fatalf("Failed to provide HTTP server: %v", err)
	}

	return container
}

func newCompleter(cfg *config.Config) (domain.Completer, error) {
	switch cfg.Provider {
	case config.ProviderEcho:
		return echo.NewCompleter(), nil

	case config.ProviderOpenAI:
		if cfg.OpenAI.APIKey == "" {
			return nil, errors.New("OPENAI_API_KEY environment variable is not set")
		}
		return openai.NewCompleter(cfg.OpenAI)

	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Provider)
	}
}
