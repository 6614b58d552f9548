package metrics

import (
	"time"

	"github.com/dreitier/staledirs/cleanup"
	"github.com/prometheus/client_golang/prometheus"
)

// RunMetrics describes the outcome of a single cleanup run
type RunMetrics struct {
	registry *prometheus.Registry

	directoriesScanned prometheus.Gauge
	unresolvable       prometheus.Gauge
	excluded           prometheus.Gauge
	candidates         prometheus.Gauge
	deleted            prometheus.Gauge
	failed             prometheus.Gauge
	reclaimedBytes     prometheus.Gauge
	dryRun             prometheus.Gauge
	lastRun            prometheus.Gauge
}

func newGauge(name string, help string) prometheus.Gauge {
	return prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      name,
		Help:      help,
	})
}

// NewRun creates the metrics of a run within their own registry
func NewRun() *RunMetrics {
	m := &RunMetrics{
		registry:           prometheus.NewRegistry(),
		directoriesScanned: newGauge("directories_scanned", "Number of immediate child directories found in the root directory."),
		unresolvable:       newGauge("unresolvable", "Number of directories skipped because neither birth time nor ctime could be determined."),
		excluded:           newGauge("excluded", "Number of directories skipped by the include/exclude rules."),
		candidates:         newGauge("candidates", "Number of directories created before the cutoff."),
		deleted:            newGauge("deleted", "Number of directories which have been removed."),
		failed:             newGauge("failed", "Number of directories which could not be removed."),
		reclaimedBytes:     newGauge("reclaimed_bytes", "Measured size of all removed directories; 0 if size measuring is disabled."),
		dryRun:             newGauge("dry_run", "1 if the run did not delete anything by request."),
		lastRun:            newGauge("last_run_timestamp_seconds", "Time the run has finished."),
	}

	m.registry.MustRegister(
		m.directoriesScanned,
		m.unresolvable,
		m.excluded,
		m.candidates,
		m.deleted,
		m.failed,
		m.reclaimedBytes,
		m.dryRun,
		m.lastRun,
	)

	return m
}

func (m *RunMetrics) Registry() *prometheus.Registry {
	return m.registry
}

// Observe takes over the numbers of the report
func (m *RunMetrics) Observe(report *cleanup.Report, finishedAt time.Time) {
	if report.Discovery != nil {
		m.directoriesScanned.Set(float64(len(report.Discovery.Directories)))
		m.unresolvable.Set(float64(len(report.Discovery.Unresolvable)))
		m.excluded.Set(float64(len(report.Discovery.Excluded)))
	}

	m.candidates.Set(float64(len(report.Candidates)))
	m.deleted.Set(float64(report.Deleted()))
	m.failed.Set(float64(report.Failed()))
	m.reclaimedBytes.Set(float64(report.ReclaimedBytes()))

	if report.DryRun {
		m.dryRun.Set(1)
	} else {
		m.dryRun.Set(0)
	}

	m.lastRun.Set(float64(finishedAt.Unix()))
}

// WriteTextfile stores the metrics of this run
func (m *RunMetrics) WriteTextfile(path string) error {
	return WriteTextfile(path, m.registry)
}
