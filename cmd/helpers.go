package cmd

import (
	"fmt"

	"github.com/brochure-dev/brochure/internal/config"
	"github.com/brochure-dev/brochure/internal/content"
)

// loadConfig reads and validates the configuration from the --config path.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// newStore builds a content store for the configured source: the remote
// data root when content_url is set, the local data directory otherwise.
func newStore(cfg *config.Config) *content.Store {
	if cfg.ContentURL != "" {
		return content.NewStore(content.HTTPSource{BaseURL: cfg.ContentURL})
	}
	return content.NewStore(content.DirSource{Dir: cfg.DataDir})
}
