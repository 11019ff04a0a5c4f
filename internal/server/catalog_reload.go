package server

import (
	"context"

	"jobfit/internal/catalog"
	"jobfit/internal/observability"
)

// startCatalogWatcher starts hot reload of the catalog file when enabled.
// Hot reload requires the catalog to be backed by a swappable store; a
// plain static catalog is left untouched.
func (s *Server) startCatalogWatcher(om *observability.ObservabilityManager) {
	catalogCfg := s.AppConfig.Catalog
	if !catalogCfg.Watch || catalogCfg.File == "" {
		return
	}

	store, ok := s.Catalog.(*catalog.Store)
	if !ok {
		s.Logger.Warn("Catalog hot reload requested but catalog is not swappable, skipping watcher")
		return
	}

	metrics := om.GetMetrics()
	reload := func() {
		next, warnings, err := catalog.LoadFile(catalogCfg.File)
		if err != nil {
			s.Logger.LogError(err, "Failed to reload catalog file, keeping previous catalog",
				"path", catalogCfg.File)
			metrics.RecordCatalogReload(context.Background(), false, om)
			return
		}

		for _, key := range warnings {
			s.Logger.Warn("Catalog profile weights do not sum to 1.0", "job_id", key)
		}

		store.Replace(next)
		metrics.RecordCatalogReload(context.Background(), true, om)
		s.Logger.Info("Catalog reloaded",
			"path", catalogCfg.File,
			"jobs", len(next.Jobs()))
	}

	watcher := catalog.NewWatcher(catalogCfg.File, catalogCfg.DebounceDelay, reload, s.Logger)
	if err := watcher.Start(); err != nil {
		s.Logger.LogError(err, "Failed to start catalog watcher", "path", catalogCfg.File)
		return
	}

	s.CatalogWatcher = watcher
	s.Logger.Info("Catalog watcher started",
		"path", catalogCfg.File,
		"debounce_delay", catalogCfg.DebounceDelay)
}
