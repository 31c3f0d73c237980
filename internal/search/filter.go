package search

import (
	"strings"

	"github.com/jimezsa/kazi/internal/models"
)

// Filter returns the jobs that satisfy every clause of spec, in input order.
// An empty query or location disables that clause; an empty category behaves like "all".
func Filter(jobs []models.Job, spec models.FilterSpec) []models.Job {
	query := strings.ToLower(strings.TrimSpace(spec.SearchQuery))
	location := strings.ToLower(strings.TrimSpace(spec.Location))
	category := spec.Category

	out := make([]models.Job, 0, len(jobs))
	for _, job := range jobs {
		if !matchesQuery(job, query) {
			continue
		}
		if category != "" && category != models.CategoryAll && job.Category != category {
			continue
		}
		if location != "" && !strings.Contains(strings.ToLower(job.Location), location) {
			continue
		}
		out = append(out, job)
	}
	return out
}

func matchesQuery(job models.Job, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(job.Title), query) ||
		strings.Contains(strings.ToLower(job.Description), query) ||
		strings.Contains(strings.ToLower(job.Location), query)
}

// Categories lists the distinct job categories in first-seen order.
func Categories(jobs []models.Job) []string {
	seen := make(map[string]struct{}, len(jobs))
	out := make([]string, 0)
	for _, job := range jobs {
		category := strings.TrimSpace(job.Category)
		if category == "" {
			continue
		}
		if _, exists := seen[category]; exists {
			continue
		}
		seen[category] = struct{}{}
		out = append(out, category)
	}
	return out
}

// ByEmployer returns the jobs posted by employerID.
func ByEmployer(jobs []models.Job, employerID string) []models.Job {
	out := make([]models.Job, 0)
	if employerID == "" {
		return out
	}
	for _, job := range jobs {
		if job.EmployerID == employerID {
			out = append(out, job)
		}
	}
	return out
}
