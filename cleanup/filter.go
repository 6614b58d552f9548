package cleanup

import (
	"sort"

	"github.com/dreitier/staledirs/config"
	fs "github.com/dreitier/staledirs/storage/fs"
)

// SelectCandidates returns every directory whose timestamp lies strictly before the cutoff.
// Directories created exactly at the cutoff are kept. The result is in discovery order unless
// config.OrderOldestFirst is requested; ties keep their discovery order.
func SelectCandidates(resolved []*fs.DirectoryCandidate, cutoff int64, order config.CandidateOrder) []*fs.DirectoryCandidate {
	var candidates []*fs.DirectoryCandidate

	for _, directory := range resolved {
		if directory.Timestamp < cutoff {
			candidates = append(candidates, directory)
		}
	}

	if order == config.OrderOldestFirst {
		sort.SliceStable(candidates, func(i, j int) bool {
			return candidates[i].Timestamp < candidates[j].Timestamp
		})
	}

	return candidates
}
