package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/jimezsa/kazi/internal/contact"
	"github.com/jimezsa/kazi/internal/locale"
	"github.com/jimezsa/kazi/internal/models"
	"github.com/muesli/termenv"
)

type Format string

const (
	FormatTable    Format = "table"
	FormatCSV      Format = "csv"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "md"
	FormatTSV      Format = "tsv"
)

type WriteOptions struct {
	ColorEnabled bool
	Hyperlinks   bool
	Language     string
	LinkColor    string
	// Badge colours a status label; nil leaves labels plain.
	Badge func(status string, label string) string
}

// JobRow is a job as seen by the current user.
type JobRow struct {
	models.Job
	Status   models.ApplicationStatus `json:"status,omitempty"`
	Favorite bool                     `json:"favorite"`
}

// Rows pairs jobs with the user's application status and favorites.
func Rows(jobs []models.Job, statusOf func(string) models.ApplicationStatus, isFavorite func(string) bool) []JobRow {
	rows := make([]JobRow, 0, len(jobs))
	for _, job := range jobs {
		row := JobRow{Job: job}
		if statusOf != nil {
			row.Status = statusOf(job.ID)
		}
		if isFavorite != nil {
			row.Favorite = isFavorite(job.ID)
		}
		rows = append(rows, row)
	}
	return rows
}

func WriteJobs(w io.Writer, rows []JobRow, format Format, opts WriteOptions) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, rows)
	case FormatCSV:
		return writeCSV(w, rows, ',')
	case FormatTSV:
		return writeCSV(w, rows, '\t')
	case FormatMarkdown:
		return writeMarkdown(w, rows, opts)
	default:
		return writeTable(w, rows, opts)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeCSV(w io.Writer, rows []JobRow, delim rune) error {
	writer := csv.NewWriter(w)
	writer.Comma = delim
	if err := writer.Write(csvHeader()); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writer.Write(csvRow(row)); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func writeTable(w io.Writer, rows []JobRow, opts WriteOptions) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(tableHeader(opts.Language), "\t"))
	output := termenv.NewOutput(w)
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(tableRow(row, output, opts), "\t"))
	}
	return tw.Flush()
}

func writeMarkdown(w io.Writer, rows []JobRow, opts WriteOptions) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, locale.Message(opts.Language, "jobs.none"))
		return err
	}
	for _, row := range rows {
		job := row.Job
		lines := []string{
			fmt.Sprintf("- **%s** (%s)", safe(job.Title), safe(job.ID)),
			fmt.Sprintf("  Location: %s", safe(job.Location)),
			fmt.Sprintf("  Category: %s", safe(job.Category)),
			fmt.Sprintf("  Salary: %s", job.SalaryText()),
		}
		if len(job.Skills) > 0 {
			lines = append(lines, fmt.Sprintf("  Skills: %s", strings.Join(job.Skills, ", ")))
		}
		if link, err := contact.TelLink(job.Phone); err == nil {
			lines = append(lines, fmt.Sprintf("  Phone: [%s](<%s>)", contact.FormatPhone(job.Phone), link))
		}
		if !job.PostedDate.IsZero() {
			lines = append(lines, fmt.Sprintf("  Posted: %s", job.PostedDate.Format(time.DateOnly)))
		}
		if row.Status != "" {
			lines = append(lines, fmt.Sprintf("  Status: %s", statusLabel(opts.Language, row.Status)))
		}
		if row.Favorite {
			lines = append(lines, "  Favorite: yes")
		}
		if job.Description != "" {
			lines = append(lines, fmt.Sprintf("  Summary: %s", safe(job.Description)))
		}
		for _, line := range lines {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}
	return nil
}

func csvHeader() []string {
	return []string{
		"id",
		"title",
		"location",
		"category",
		"skills",
		"phone",
		"business_type",
		"salary",
		"posted_date",
		"status",
		"favorite",
	}
}

func csvRow(row JobRow) []string {
	job := row.Job
	posted := ""
	if !job.PostedDate.IsZero() {
		posted = job.PostedDate.Format(time.RFC3339)
	}
	salary := ""
	if job.Salary != nil {
		salary = *job.Salary
	}
	return []string{
		job.ID,
		job.Title,
		job.Location,
		job.Category,
		strings.Join(job.Skills, ", "),
		job.Phone,
		job.BusinessType,
		salary,
		posted,
		string(row.Status),
		boolString(row.Favorite),
	}
}

func boolString(value bool) string {
	if value {
		return "true"
	}
	return "false"
}

func safe(value string) string {
	return strings.TrimSpace(value)
}

var tableHeaders = map[string][]string{
	locale.English: {"id", "title", "location", "salary", "phone", "status", ""},
	locale.Swahili: {"id", "kazi", "mahali", "mshahara", "simu", "hali", ""},
}

func tableHeader(lang string) []string {
	code, _ := locale.Normalize(lang)
	return tableHeaders[code]
}

func statusLabel(lang string, status models.ApplicationStatus) string {
	return locale.Message(lang, "label."+string(status))
}

func tableRow(row JobRow, output *termenv.Output, opts WriteOptions) []string {
	job := row.Job

	phone := "-"
	if link, err := contact.TelLink(job.Phone); err == nil {
		phone = contact.FormatPhone(job.Phone)
		if opts.ColorEnabled && opts.LinkColor != "" {
			phone = output.String(phone).Foreground(output.Color(opts.LinkColor)).String()
		}
		if opts.Hyperlinks {
			phone = hyperlink(link, phone)
		}
	}

	status := "-"
	if row.Status != "" {
		status = statusLabel(opts.Language, row.Status)
		if opts.Badge != nil {
			status = opts.Badge(string(row.Status), status)
		}
	}

	favorite := ""
	if row.Favorite {
		favorite = "*"
	}
	return []string{
		safe(job.ID),
		truncate(safe(job.Title), 40),
		safe(job.Location),
		job.SalaryText(),
		phone,
		status,
		favorite,
	}
}

func hyperlink(url string, text string) string {
	const esc = "\x1b"
	return esc + "]8;;" + url + esc + "\\" + text + esc + "]8;;" + esc + "\\"
}

func truncate(value string, maxLen int) string {
	runes := []rune(value)
	if len(runes) <= maxLen {
		return value
	}
	return string(runes[:maxLen-3]) + "..."
}

// WriteEmployees renders the employer console's worker list.
func WriteEmployees(w io.Writer, employees []models.Employee, format Format) error {
	if format == FormatJSON {
		return writeJSON(w, employees)
	}
	delim := '\t'
	if format == FormatCSV {
		delim = ','
	}
	if format == FormatCSV || format == FormatTSV {
		writer := csv.NewWriter(w)
		writer.Comma = delim
		if err := writer.Write([]string{"id", "name", "phone", "location", "skills", "available"}); err != nil {
			return err
		}
		for _, e := range employees {
			record := []string{e.ID, e.Name, e.Phone, e.Location, strings.Join(e.Skills, ", "), boolString(e.Available)}
			if err := writer.Write(record); err != nil {
				return err
			}
		}
		writer.Flush()
		return writer.Error()
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "id\tname\tlocation\tphone\tskills")
	for _, e := range employees {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", e.ID, e.Name, e.Location, contact.FormatPhone(e.Phone), strings.Join(e.Skills, ", "))
	}
	return tw.Flush()
}

// WriteApplications renders applications with localized status labels.
func WriteApplications(w io.Writer, apps []models.Application, format Format, opts WriteOptions) error {
	if format == FormatJSON {
		return writeJSON(w, apps)
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "id\tjob\tapplicant\tstatus\tapplied")
	for _, app := range apps {
		status := statusLabel(opts.Language, app.Status)
		if opts.Badge != nil {
			status = opts.Badge(string(app.Status), status)
		}
		applied := "-"
		if !app.AppliedDate.IsZero() {
			applied = app.AppliedDate.Format(time.DateOnly)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", app.ID, app.JobID, app.ApplicantID, status, applied)
	}
	return tw.Flush()
}
