package events

import "github.com/atomicstack/launchpad/internal/logging"

type QueryTracer struct{}

var Query = QueryTracer{}

func (QueryTracer) Filter(query string, matches int, noMatches bool) {
	logging.Trace("query.filter", map[string]interface{}{
		"query":     query,
		"matches":   matches,
		"noMatches": noMatches,
	})
}
