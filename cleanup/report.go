package cleanup

import (
	"github.com/dreitier/staledirs/storage"
	fs "github.com/dreitier/staledirs/storage/fs"
)

// Outcome is the result of deleting a single candidate. A nil Err means success.
type Outcome struct {
	Candidate *fs.DirectoryCandidate
	Err       error
}

func (o Outcome) Succeeded() bool {
	return o.Err == nil
}

// Report describes a whole run
type Report struct {
	Cutoff Cutoff
	DryRun bool
	// nil if the run stopped before the discovery finished
	Discovery  *storage.Discovery
	Candidates []*fs.DirectoryCandidate
	// one Outcome per candidate in processing order; empty in dry-run mode
	Outcomes []Outcome
}

// NoDirectories returns true if the root directory did not contain any directories
func (r *Report) NoDirectories() bool {
	return r.Discovery == nil || r.Discovery.IsEmpty()
}

// Deleted returns the number of successfully removed directories
func (r *Report) Deleted() int {
	deleted := 0

	for _, outcome := range r.Outcomes {
		if outcome.Succeeded() {
			deleted++
		}
	}

	return deleted
}

// Failed returns the number of directories which could not be removed
func (r *Report) Failed() int {
	return len(r.Outcomes) - r.Deleted()
}

// ReclaimableBytes sums up the measured size of all candidates
func (r *Report) ReclaimableBytes() uint64 {
	var total uint64

	for _, candidate := range r.Candidates {
		if candidate.Size != nil {
			total += *candidate.Size
		}
	}

	return total
}

// ReclaimedBytes sums up the measured size of all successfully removed directories
func (r *Report) ReclaimedBytes() uint64 {
	var total uint64

	for _, outcome := range r.Outcomes {
		if outcome.Succeeded() && outcome.Candidate.Size != nil {
			total += *outcome.Candidate.Size
		}
	}

	return total
}
