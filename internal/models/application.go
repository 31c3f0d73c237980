package models

import (
	"fmt"
	"strings"
	"time"
)

// ApplicationStatus is the lifecycle state of an application, as seen by one user.
type ApplicationStatus string

const (
	StatusNotApplied ApplicationStatus = "not_applied"
	StatusPending    ApplicationStatus = "pending"
	StatusAccepted   ApplicationStatus = "accepted"
	StatusRejected   ApplicationStatus = "rejected"
)

// ParseApplicationStatus accepts any casing and surrounding whitespace.
func ParseApplicationStatus(value string) (ApplicationStatus, error) {
	status := ApplicationStatus(strings.ToLower(strings.TrimSpace(value)))
	switch status {
	case StatusNotApplied, StatusPending, StatusAccepted, StatusRejected:
		return status, nil
	default:
		return "", fmt.Errorf("unknown application status: %q", value)
	}
}

// Stored reports whether the status can be held by an Application record.
func (s ApplicationStatus) Stored() bool {
	return s == StatusPending || s == StatusAccepted || s == StatusRejected
}

type Application struct {
	ID          string            `json:"id"`
	JobID       string            `json:"jobId"`
	ApplicantID string            `json:"applicantId"`
	Status      ApplicationStatus `json:"status"`
	AppliedDate time.Time         `json:"appliedDate,omitempty"`
	CoverNote   string            `json:"coverNote,omitempty"`
}

// ApplicationPayload is the body of a create-application request.
type ApplicationPayload struct {
	ApplicantID string `json:"applicantId" validate:"required"`
	CoverNote   string `json:"coverNote,omitempty" validate:"max=500"`
}

type Favorite struct {
	JobID  string `json:"jobId"`
	UserID string `json:"userId"`
}
