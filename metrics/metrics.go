package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace = "staledirs"
	subsystem = "run"
)

// WriteTextfile stores all metrics of the registry in the Prometheus text format, e.g. for the textfile collector
// of the node_exporter. The file is replaced atomically.
func WriteTextfile(path string, registry *prometheus.Registry) error {
	if err := prometheus.WriteToTextfile(path, registry); err != nil {
		return fmt.Errorf("unable to write metrics to %s: %w", path, err)
	}

	return nil
}
