package search

import (
	"strings"

	"github.com/jimezsa/kazi/internal/models"
)

// SplitSkills tokenizes a comma-separated skills string into trimmed, lower-cased,
// non-empty tokens.
func SplitSkills(skills string) []string {
	parts := strings.Split(skills, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}

// MatchSkills returns the jobs where at least one user skill is a substring of at least
// one job skill tag. With no declared skills the input is returned unchanged.
// The result only feeds the "N jobs match your skills" hint; it never hides jobs.
func MatchSkills(jobs []models.Job, skills string) []models.Job {
	userSkills := SplitSkills(skills)
	if len(userSkills) == 0 {
		return jobs
	}

	out := make([]models.Job, 0, len(jobs))
	for _, job := range jobs {
		if tagsMatch(job.Skills, userSkills) {
			out = append(out, job)
		}
	}
	return out
}

// MatchEmployees returns the workers whose skills overlap the given job tags, using the
// same substring rule as MatchSkills. With no tags the input is returned unchanged.
func MatchEmployees(employees []models.Employee, tags []string) []models.Employee {
	wanted := make([]string, 0, len(tags))
	for _, tag := range tags {
		if tag = strings.ToLower(strings.TrimSpace(tag)); tag != "" {
			wanted = append(wanted, tag)
		}
	}
	if len(wanted) == 0 {
		return employees
	}

	out := make([]models.Employee, 0, len(employees))
	for _, employee := range employees {
		if tagsMatch(wanted, lowerAll(employee.Skills)) {
			out = append(out, employee)
		}
	}
	return out
}

func tagsMatch(tags []string, needles []string) bool {
	for _, tag := range tags {
		tag = strings.ToLower(tag)
		for _, needle := range needles {
			if strings.Contains(tag, needle) {
				return true
			}
		}
	}
	return false
}

func lowerAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		if value = strings.ToLower(strings.TrimSpace(value)); value != "" {
			out = append(out, value)
		}
	}
	return out
}
