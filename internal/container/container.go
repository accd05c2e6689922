package container

import (
	"fmt"
	"net/http"

	"go-qr-score/internal/config"
	"go-qr-score/internal/scoring"
	"go-qr-score/internal/service"
	"go-qr-score/internal/storage"
	"go-qr-score/internal/transport"
)

// Container holds the scoring API dependency graph.
type Container struct {
	config  *config.Config
	fetcher storage.ByteFetcher
	service service.ScoringService
	handler http.Handler
}

// NewContainer wires config to fetcher, service, and HTTP handler.
func NewContainer(cfg *config.Config) (*Container, error) {
	var fetcher storage.ByteFetcher
	switch cfg.FetchBackend {
	case config.FetchAzure:
		azure, err := storage.NewAzureFetcher(cfg.AzureAccountName, cfg.AzureAccountKey)
		if err != nil {
			return nil, fmt.Errorf("failed to build azure fetcher: %w", err)
		}
		fetcher = azure
	default:
		fetcher = storage.NewHTTPFetcher(cfg.FetchTimeout, cfg.MaxRequestBodySize)
	}

	params := scoring.DefaultParams()
	params.RenderSize = cfg.RenderSize

	svc := service.NewScoringService(fetcher, params)
	handler := transport.NewHandler(svc, cfg)

	return &Container{
		config:  cfg,
		fetcher: fetcher,
		service: svc,
		handler: handler,
	}, nil
}

// Handler returns the HTTP handler
func (c *Container) Handler() http.Handler {
	return c.handler
}

// Config returns the configuration
func (c *Container) Config() *config.Config {
	return c.config
}

// Service returns the scoring service
func (c *Container) Service() service.ScoringService {
	return c.service
}
