package events

import "github.com/atomicstack/launchpad/internal/logging"

type LaunchTracer struct{}

var Launch = LaunchTracer{}

func (LaunchTracer) Selected(name, exec string) {
	logging.Trace("launch.selected", map[string]interface{}{"name": name, "exec": exec})
}

func (LaunchTracer) Spawned(name, program string) {
	logging.Trace("launch.spawned", map[string]interface{}{"name": name, "program": program})
}

func (LaunchTracer) Failed(name string, err error) {
	if err == nil {
		return
	}
	logging.Trace("launch.failed", map[string]interface{}{"name": name, "error": err.Error()})
}

func (LaunchTracer) Recorded(name string, count int) {
	logging.Trace("launch.recorded", map[string]interface{}{"name": name, "count": count})
}
