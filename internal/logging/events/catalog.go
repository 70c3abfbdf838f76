package events

import (
	"time"

	"github.com/atomicstack/launchpad/internal/logging"
)

type CatalogTracer struct{}

var Catalog = CatalogTracer{}

func (CatalogTracer) Loaded(entries int, dirs []string, elapsed time.Duration) {
	logging.Trace("catalog.loaded", map[string]interface{}{
		"entries": entries,
		"dirs":    dirs,
		"ms":      elapsed.Milliseconds(),
	})
}

func (CatalogTracer) Skipped(detail string) {
	logging.Trace("catalog.skipped", map[string]interface{}{"detail": detail})
}

func (CatalogTracer) IndexBuilt(entries int, elapsed time.Duration) {
	logging.Trace("catalog.index", map[string]interface{}{
		"entries": entries,
		"ms":      elapsed.Milliseconds(),
	})
}

func (CatalogTracer) RanksLoaded(distinct int, path string) {
	logging.Trace("catalog.ranks", map[string]interface{}{
		"distinct": distinct,
		"path":     path,
	})
}
