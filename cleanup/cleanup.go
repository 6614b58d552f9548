// Package cleanup selects directories created before a cutoff date and removes them one after another.
package cleanup

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"code.cloudfoundry.org/bytefmt"
	"github.com/dreitier/staledirs/config"
	"github.com/dreitier/staledirs/storage"
	fs "github.com/dreitier/staledirs/storage/fs"
	log "github.com/sirupsen/logrus"
)

type Options struct {
	// Directory whose immediate children are examined
	Root   string
	DryRun bool
	Order  config.CandidateOrder
	// Measure the content size of every candidate before acting
	MeasureSize bool
	// Optional include/exclude rules; nil includes every directory
	Filter storage.DirectoryFilter
	// Used for formatting timestamps; defaults to time.Local
	Location *time.Location
	// Receives the user-facing lines
	Output io.Writer
}

// Execute runs discovery, filtering and the action for an already validated cutoff.
// Per-directory failures are recorded in the report; an error is only returned if the root cannot be listed.
func Execute(filesystem fs.Filesystem, cutoff Cutoff, opts Options) (*Report, error) {
	if opts.Location == nil {
		opts.Location = time.Local
	}

	if opts.Output == nil {
		opts.Output = io.Discard
	}

	report := &Report{Cutoff: cutoff, DryRun: opts.DryRun}

	fmt.Fprintf(opts.Output, "Target date: %s (UNIX timestamp: %d)\n", cutoff.Date, cutoff.Unix())

	discovery, err := storage.Discover(filesystem, opts.Root, opts.Filter)

	if err != nil {
		return report, err
	}

	report.Discovery = discovery

	if discovery.IsEmpty() {
		fmt.Fprintln(opts.Output, "No directories found.")
		return report, nil
	}

	report.Candidates = SelectCandidates(discovery.Resolved, cutoff.Unix(), opts.Order)

	log.Debugf("%d directories scanned, %d excluded, %d unresolvable, %d candidates",
		len(discovery.Directories), len(discovery.Excluded), len(discovery.Unresolvable), len(report.Candidates))

	if opts.MeasureSize {
		measureSizes(filesystem, opts.Root, report.Candidates)
	}

	if opts.DryRun {
		dryRun(report, opts)
	} else {
		remove(filesystem, report, opts)
	}

	return report, nil
}

func measureSizes(filesystem fs.Filesystem, root string, candidates []*fs.DirectoryCandidate) {
	for _, candidate := range candidates {
		size, err := filesystem.Size(filepath.Join(root, candidate.Name))

		if err != nil {
			log.Warnf("Unable to measure size of %s: %s", candidate.Name, err)
			continue
		}

		candidate.Size = &size
	}
}

func dryRun(report *Report, opts Options) {
	fmt.Fprintf(opts.Output, "Dry-run mode: %d directories would be deleted.\n", len(report.Candidates))

	for _, candidate := range report.Candidates {
		fmt.Fprintf(opts.Output, "Would delete: %s (%s)\n", candidate.Name, describe(candidate, opts.Location))
	}

	if opts.MeasureSize {
		log.Infof("Dry-run: %s could be reclaimed", bytefmt.ByteSize(report.ReclaimableBytes()))
	}
}

func remove(filesystem fs.Filesystem, report *Report, opts Options) {
	for _, candidate := range report.Candidates {
		fmt.Fprintf(opts.Output, "Deleting: %s (%s)\n", candidate.Name, describe(candidate, opts.Location))

		err := filesystem.RemoveAll(filepath.Join(opts.Root, candidate.Name))

		if err != nil {
			log.Errorf("Failed to delete %s: %s", candidate.Name, err)
			fmt.Fprintf(opts.Output, "Error deleting %s: %s\n", candidate.Name, err)
		}

		report.Outcomes = append(report.Outcomes, Outcome{Candidate: candidate, Err: err})
	}

	fmt.Fprintf(opts.Output, "Deleted %d directories.\n", report.Deleted())

	if failed := report.Failed(); failed > 0 {
		fmt.Fprintf(opts.Output, "Failed to delete %d directories.\n", failed)
	}

	if opts.MeasureSize {
		log.Infof("%s reclaimed", bytefmt.ByteSize(report.ReclaimedBytes()))
	}
}

func describe(candidate *fs.DirectoryCandidate, location *time.Location) string {
	created := "Created: " + FormatTimestamp(candidate.Timestamp, location)

	if candidate.Size == nil {
		return created
	}

	return created + ", Size: " + bytefmt.ByteSize(*candidate.Size)
}
