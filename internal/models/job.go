package models

import (
	"fmt"
	"time"
)

// Job is a posting as normalized at the API boundary.
type Job struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Location     string    `json:"location"`
	Category     string    `json:"category"`
	Skills       []string  `json:"skills"`
	Phone        string    `json:"phone"`
	BusinessType string    `json:"businessType,omitempty"`
	Salary       *string   `json:"salary,omitempty"`
	PostedDate   time.Time `json:"postedDate,omitempty"`
	EmployerID   string    `json:"employerId,omitempty"`
}

// SalaryText returns the salary or "-" when the posting has none.
func (j Job) SalaryText() string {
	if j.Salary == nil || *j.Salary == "" {
		return "-"
	}
	return *j.Salary
}

// JobDraft is what an employer submits when posting a job.
type JobDraft struct {
	Title        string   `json:"title" validate:"required,min=3,max=120"`
	Description  string   `json:"description" validate:"required,min=10"`
	Location     string   `json:"location" validate:"required"`
	Category     string   `json:"category" validate:"required,ne=all"`
	Skills       []string `json:"skills" validate:"dive,required"`
	Phone        string   `json:"phone" validate:"required,ke_phone"`
	BusinessType string   `json:"businessType,omitempty"`
	Salary       string   `json:"salary,omitempty"`
	EmployerID   string   `json:"employerId,omitempty"`
}

// DuplicateIDError reports a job collection whose ids are not unique.
type DuplicateIDError struct {
	ID string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("duplicate job id %q", e.ID)
}

// ValidateJobs checks that every job has a non-empty id and that ids are unique.
func ValidateJobs(jobs []Job) error {
	ids := make(map[string]struct{}, len(jobs))
	for idx, job := range jobs {
		if job.ID == "" {
			return fmt.Errorf("job[%d]: id is required", idx)
		}
		if _, exists := ids[job.ID]; exists {
			return &DuplicateIDError{ID: job.ID}
		}
		ids[job.ID] = struct{}{}
	}
	return nil
}

// JobByID returns the job with the given id.
func JobByID(jobs []Job, id string) (Job, bool) {
	for _, job := range jobs {
		if job.ID == id {
			return job, true
		}
	}
	return Job{}, false
}
