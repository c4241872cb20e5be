package bootstrap

import (
	"context"
	"fmt"

	callsHandler "call-insights-server/internal/calls/handler"
	callsProcessor "call-insights-server/internal/calls/processor"
	"call-insights-server/internal/clients/five9"
	openaiClient "call-insights-server/internal/clients/openai"
	"call-insights-server/internal/config"
	"call-insights-server/internal/notifier"
	"call-insights-server/internal/observability"
	"call-insights-server/internal/store"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store  store.Store
	Logger *observability.Logger
	Hub    *notifier.Hub

	// Handlers
	CallsHandler    callsHandler.Handler
	NotifierHandler notifier.Handler
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	// Initialize database store
	var err error
	deps.Store, err = store.New(cfg.Database.ConnectionString(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := deps.Store.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure database schema: %w", err)
	}

	// Initialize external service clients
	recordingClient := five9.NewClient(
		cfg.Services.Five9BaseURL,
		cfg.Services.Five9Username,
		cfg.Services.Five9Password,
		logger,
	)

	aiClient, err := openaiClient.NewClient(cfg.Services.OpenAIAPIKey, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenAI client: %w", err)
	}

	// Initialize the live notifier hub
	deps.Hub = notifier.NewHub(logger)

	// Initialize the call pipeline processor and handlers
	processor := callsProcessor.New(
		recordingClient,
		aiClient,
		aiClient,
		aiClient,
		&deps.Store,
		deps.Hub,
		logger,
	)
	deps.CallsHandler = callsHandler.New(processor, logger)
	deps.NotifierHandler = notifier.NewHandler(deps.Hub, logger)

	return deps, nil
}

// Cleanup releases resources held by the dependencies
func (d *Dependencies) Cleanup() {
	if db := d.Store.DB(); db != nil {
		_ = db.Close()
	}
}
