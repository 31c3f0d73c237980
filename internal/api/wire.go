package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/jimezsa/kazi/internal/contact"
	"github.com/jimezsa/kazi/internal/models"
)

// flexString accepts a JSON string or number.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", data)
	}
	*f = flexString(n.String())
	return nil
}

// flexList accepts a JSON array of strings or a comma-separated string.
type flexList []string

func (f *flexList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*f = nil
		return nil
	}
	var raw []string
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		raw = strings.Split(s, ",")
	} else if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	*f = out
	return nil
}

type wireJob struct {
	ID           flexString  `json:"id"`
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	Location     string      `json:"location"`
	Category     string      `json:"category"`
	Skills       flexList    `json:"skills"`
	Phone        flexString  `json:"phone"`
	BusinessType string      `json:"businessType"`
	Salary       *flexString `json:"salary"`
	PostedDate   flexString  `json:"postedDate"`
	EmployerID   flexString  `json:"employerId"`
}

func (w wireJob) normalize() models.Job {
	job := models.Job{
		ID:           string(w.ID),
		Title:        cleanText(w.Title),
		Description:  plainText(w.Description),
		Location:     cleanText(w.Location),
		Category:     strings.TrimSpace(w.Category),
		Skills:       []string(w.Skills),
		Phone:        normalizePhone(string(w.Phone)),
		BusinessType: cleanText(w.BusinessType),
		EmployerID:   string(w.EmployerID),
	}
	if job.Skills == nil {
		job.Skills = []string{}
	}
	if w.Salary != nil && *w.Salary != "" {
		salary := string(*w.Salary)
		job.Salary = &salary
	}
	if posted, err := parsePostedDate(string(w.PostedDate)); err == nil {
		job.PostedDate = posted
	}
	return job
}

// normalizeJobs drops records without an id and keeps the first of any duplicate id.
func normalizeJobs(wire []wireJob) []models.Job {
	jobs := make([]models.Job, 0, len(wire))
	ids := make(map[string]struct{}, len(wire))
	for _, w := range wire {
		job := w.normalize()
		if job.ID == "" {
			continue
		}
		if _, exists := ids[job.ID]; exists {
			continue
		}
		ids[job.ID] = struct{}{}
		jobs = append(jobs, job)
	}
	return jobs
}

type wireApplication struct {
	ID          flexString `json:"id"`
	JobID       flexString `json:"jobId"`
	ApplicantID flexString `json:"applicantId"`
	Status      string     `json:"status"`
	AppliedDate flexString `json:"appliedDate"`
	CoverNote   string     `json:"coverNote"`
}

func (w wireApplication) normalize() models.Application {
	app := models.Application{
		ID:          string(w.ID),
		JobID:       string(w.JobID),
		ApplicantID: string(w.ApplicantID),
		CoverNote:   strings.TrimSpace(w.CoverNote),
	}
	if status, err := models.ParseApplicationStatus(w.Status); err == nil && status.Stored() {
		app.Status = status
	}
	if applied, err := parsePostedDate(string(w.AppliedDate)); err == nil {
		app.AppliedDate = applied
	}
	return app
}

type wireFavorite struct {
	JobID  flexString `json:"jobId"`
	UserID flexString `json:"userId"`
}

type wireIdentity struct {
	ID           flexString `json:"id"`
	Name         string     `json:"name"`
	Phone        flexString `json:"phone"`
	Location     string     `json:"location"`
	Role         string     `json:"role"`
	Skills       *flexList  `json:"skills"`
	BusinessName *string    `json:"businessName"`
}

func (w wireIdentity) normalize() (models.Identity, error) {
	role, err := models.ParseRole(w.Role)
	if err != nil {
		return models.Identity{}, err
	}
	identity := models.Identity{
		ID:       string(w.ID),
		Name:     cleanText(w.Name),
		Phone:    normalizePhone(string(w.Phone)),
		Location: cleanText(w.Location),
		Role:     role,
	}
	if identity.ID == "" {
		return models.Identity{}, errors.New("identity without id")
	}
	if w.Skills != nil {
		skills := strings.Join(*w.Skills, ", ")
		identity.Skills = &skills
	}
	if w.BusinessName != nil && strings.TrimSpace(*w.BusinessName) != "" {
		name := cleanText(*w.BusinessName)
		identity.BusinessName = &name
	}
	return identity, nil
}

type wireEmployee struct {
	ID         flexString `json:"id"`
	Name       string     `json:"name"`
	Phone      flexString `json:"phone"`
	Location   string     `json:"location"`
	Skills     flexList   `json:"skills"`
	Experience string     `json:"experience"`
	Available  *bool      `json:"available"`
}

func (w wireEmployee) normalize() models.Employee {
	employee := models.Employee{
		ID:         string(w.ID),
		Name:       cleanText(w.Name),
		Phone:      normalizePhone(string(w.Phone)),
		Location:   cleanText(w.Location),
		Skills:     []string(w.Skills),
		Experience: cleanText(w.Experience),
		Available:  true,
	}
	if employee.Skills == nil {
		employee.Skills = []string{}
	}
	if w.Available != nil {
		employee.Available = *w.Available
	}
	return employee
}

func normalizePhone(raw string) string {
	if phone, err := contact.NormalizePhone(raw); err == nil {
		return phone
	}
	return strings.TrimSpace(raw)
}

func cleanText(value string) string {
	value = html.UnescapeString(value)
	return strings.Join(strings.Fields(value), " ")
}

// plainText flattens rich-text descriptions written in the employer console.
func plainText(value string) string {
	if !strings.ContainsAny(value, "<&") {
		return cleanText(value)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(value))
	if err != nil {
		return cleanText(value)
	}
	doc.Find("br, p, li, div").Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml(" ")
	})
	return cleanText(doc.Text())
}

func parsePostedDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, errors.New("empty")
	}
	if millis, err := strconv.ParseInt(value, 10, 64); err == nil {
		return time.UnixMilli(millis).UTC(), nil
	}
	layouts := []string{
		time.RFC3339,
		time.RFC3339Nano,
		"2006-01-02",
		"2006-01-02T15:04:05.000Z",
		"2006-01-02 15:04:05",
	}
	for _, layout := range layouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported time format: %s", value)
}
