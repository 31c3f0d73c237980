package seen

import (
	"strings"

	"github.com/jimezsa/kazi/internal/models"
)

const keySeparator = "::"

// DiffStats captures stats for unseen filtering.
type DiffStats struct {
	TotalNew   int
	TotalSeen  int
	InvalidNew int
	Unseen     int
}

// MergeStats captures stats for seen history updates.
type MergeStats struct {
	TotalSeen    int
	TotalInput   int
	InvalidInput int
	Added        int
	TotalOut     int
}

// Normalize lower-cases value and collapses whitespace.
func Normalize(value string) string {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(value)))
	return strings.Join(fields, " ")
}

// Key builds the normalized title+location key for a job, so a posting that is
// re-listed under a new id is still recognised.
func Key(job models.Job) (string, bool) {
	title := Normalize(job.Title)
	location := Normalize(job.Location)
	if title == "" || location == "" {
		return "", false
	}
	return title + keySeparator + location, true
}

// Diff returns the jobs in newJobs whose key is not in seenKeys.
func Diff(newJobs []models.Job, seenKeys []string) ([]models.Job, DiffStats) {
	stats := DiffStats{
		TotalNew:  len(newJobs),
		TotalSeen: len(seenKeys),
	}

	seenSet := make(map[string]struct{}, len(seenKeys))
	for _, key := range seenKeys {
		seenSet[key] = struct{}{}
	}

	newKeys := make(map[string]struct{}, len(newJobs))
	unseen := make([]models.Job, 0, len(newJobs))
	for _, job := range newJobs {
		key, ok := Key(job)
		if !ok {
			stats.InvalidNew++
			continue
		}
		if _, exists := newKeys[key]; exists {
			continue
		}
		newKeys[key] = struct{}{}
		if _, exists := seenSet[key]; exists {
			continue
		}
		unseen = append(unseen, job)
	}

	stats.Unseen = len(unseen)
	return unseen, stats
}

// Merge appends the keys of inputJobs to existing, skipping duplicates.
func Merge(existing []string, inputJobs []models.Job) ([]string, MergeStats) {
	stats := MergeStats{
		TotalSeen:  len(existing),
		TotalInput: len(inputJobs),
	}

	keys := make(map[string]struct{}, len(existing)+len(inputJobs))
	out := make([]string, 0, len(existing)+len(inputJobs))

	for _, key := range existing {
		if _, exists := keys[key]; exists || key == "" {
			continue
		}
		keys[key] = struct{}{}
		out = append(out, key)
	}

	for _, job := range inputJobs {
		key, ok := Key(job)
		if !ok {
			stats.InvalidInput++
			continue
		}
		if _, exists := keys[key]; exists {
			continue
		}
		keys[key] = struct{}{}
		out = append(out, key)
		stats.Added++
	}

	stats.TotalOut = len(out)
	return out, stats
}
