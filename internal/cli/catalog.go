package cli

import (
	"fmt"

	"jobfit/internal/catalog"
	"jobfit/internal/config"
	"jobfit/internal/errors"
)

// loadCatalog resolves the job profile catalog for a command invocation.
// Without a configured catalog file the built-in profiles are used.
func loadCatalog(cfg *config.Config, logger *errors.Logger) (*catalog.Static, error) {
	if cfg.Catalog.File == "" {
		return catalog.Builtin(), nil
	}

	cat, warnings, err := catalog.LoadFile(cfg.Catalog.File)
	if err != nil {
		return nil, fmt.Errorf("failed to load job catalog: %w", err)
	}
	for _, key := range warnings {
		logger.Warn("Job profile weights do not sum to 1.0", "job", key, "file", cfg.Catalog.File)
	}
	return cat, nil
}
