package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/jimezsa/kazi/internal/models"
)

func sampleRows() []JobRow {
	salary := "KES 500/day"
	jobs := []models.Job{
		{ID: "1", Title: "Farm Worker", Location: "Nakuru", Category: "agriculture", Skills: []string{"farming"}, Phone: "+254712345678", Salary: &salary},
		{ID: "2", Title: "Driver", Location: "Nairobi", Category: "driving", Phone: "n/a"},
	}
	statuses := map[string]models.ApplicationStatus{"1": models.StatusPending, "2": models.StatusNotApplied}
	return Rows(jobs,
		func(id string) models.ApplicationStatus { return statuses[id] },
		func(id string) bool { return id == "2" },
	)
}

func TestWriteJobsCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJobs(&buf, sampleRows(), FormatCSV, WriteOptions{}); err != nil {
		t.Fatalf("WriteJobs() error = %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %d, want 3", len(lines))
	}
	if !strings.HasPrefix(lines[0], "id,title,location") {
		t.Fatalf("header = %q", lines[0])
	}
	if !strings.HasSuffix(lines[1], ",pending,false") {
		t.Fatalf("row = %q", lines[1])
	}
	if !strings.HasSuffix(lines[2], ",not_applied,true") {
		t.Fatalf("row = %q", lines[2])
	}
}

func TestWriteJobsJSONIncludesStatus(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJobs(&buf, sampleRows(), FormatJSON, WriteOptions{}); err != nil {
		t.Fatalf("WriteJobs() error = %v", err)
	}
	var decoded []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded[0]["status"] != "pending" || decoded[0]["title"] != "Farm Worker" {
		t.Fatalf("decoded[0] = %v", decoded[0])
	}
	if decoded[1]["favorite"] != true {
		t.Fatalf("decoded[1] favorite = %v", decoded[1]["favorite"])
	}
}

func TestWriteJobsTableLocalized(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJobs(&buf, sampleRows(), FormatTable, WriteOptions{Language: "sw"}); err != nil {
		t.Fatalf("WriteJobs() error = %v", err)
	}
	out := buf.String()
	for _, want := range []string{"mahali", "Inasubiri", "Omba", "+254 712 345 678"} {
		if !strings.Contains(out, want) {
			t.Fatalf("table missing %q:\n%s", want, out)
		}
	}
}

func TestWriteJobsMarkdownEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJobs(&buf, nil, FormatMarkdown, WriteOptions{Language: "en"}); err != nil {
		t.Fatalf("WriteJobs() error = %v", err)
	}
	if strings.TrimSpace(buf.String()) != "No jobs found." {
		t.Fatalf("markdown = %q", buf.String())
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("Mfanyakazi wa shamba", 10); got != "Mfanyak..." {
		t.Fatalf("truncate() = %q", got)
	}
	if got := truncate("short", 10); got != "short" {
		t.Fatalf("truncate() = %q", got)
	}
}

func TestWriteEmployeesTSV(t *testing.T) {
	var buf bytes.Buffer
	employees := []models.Employee{{ID: "e1", Name: "Juma", Phone: "+254712345678", Location: "Kisumu", Skills: []string{"driving"}, Available: true}}
	if err := WriteEmployees(&buf, employees, FormatTSV); err != nil {
		t.Fatalf("WriteEmployees() error = %v", err)
	}
	if !strings.Contains(buf.String(), "e1\tJuma\t+254712345678\tKisumu\tdriving\ttrue") {
		t.Fatalf("tsv = %q", buf.String())
	}
}
