package search

import (
	"reflect"
	"testing"

	"github.com/jimezsa/kazi/internal/models"
)

func sampleJobs() []models.Job {
	return []models.Job{
		{ID: "1", Title: "Farm Worker", Description: "Harvest maize", Location: "Nakuru", Category: "agriculture", Skills: []string{"farming"}},
		{ID: "2", Title: "Driver", Description: "Deliver farm produce to market", Location: "Nairobi", Category: "driving", Skills: []string{"driving"}},
		{ID: "3", Title: "House Help", Description: "Cleaning and cooking", Location: "Nakuru Town", Category: "domestic", Skills: []string{"Cleaning", "cooking"}},
		{ID: "4", Title: "Boda Rider", Description: "Motorbike deliveries", Location: "Eldoret", Category: "driving", Skills: []string{"motorbike driving"}},
	}
}

func ids(jobs []models.Job) []string {
	out := make([]string, 0, len(jobs))
	for _, job := range jobs {
		out = append(out, job.ID)
	}
	return out
}

func TestFilter(t *testing.T) {
	jobs := sampleJobs()
	cases := []struct {
		name string
		spec models.FilterSpec
		want []string
	}{
		{"identity", models.FilterSpec{Category: models.CategoryAll}, []string{"1", "2", "3", "4"}},
		{"empty category is all", models.FilterSpec{}, []string{"1", "2", "3", "4"}},
		{"query hits title", models.FilterSpec{SearchQuery: "DRIVER", Category: "all"}, []string{"2"}},
		{"query hits description", models.FilterSpec{SearchQuery: "farm", Category: "all"}, []string{"1", "2"}},
		{"query hits location", models.FilterSpec{SearchQuery: "eldoret", Category: "all"}, []string{"4"}},
		{"category exact", models.FilterSpec{Category: "driving"}, []string{"2", "4"}},
		{"category case-sensitive", models.FilterSpec{Category: "Driving"}, []string{}},
		{"category not trimmed", models.FilterSpec{Category: " driving "}, []string{}},
		{"location substring", models.FilterSpec{Category: "all", Location: "nakuru"}, []string{"1", "3"}},
		{"all clauses", models.FilterSpec{SearchQuery: "cook", Category: "domestic", Location: "town"}, []string{"3"}},
		{"query trimmed", models.FilterSpec{SearchQuery: "  rider ", Category: "all"}, []string{"4"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ids(Filter(jobs, tc.spec))
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Filter() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestFilterIdentityAndIdempotence(t *testing.T) {
	jobs := sampleJobs()
	if got := Filter(jobs, models.FilterSpec{Category: models.CategoryAll}); !reflect.DeepEqual(got, jobs) {
		t.Fatalf("Filter(all) changed the collection")
	}

	specs := []models.FilterSpec{
		{SearchQuery: "farm", Category: "all"},
		{Category: "driving", Location: "nai"},
		{SearchQuery: "x", Category: "none"},
	}
	for _, spec := range specs {
		once := Filter(jobs, spec)
		twice := Filter(once, spec)
		if !reflect.DeepEqual(once, twice) {
			t.Fatalf("Filter() not idempotent for %+v: %v vs %v", spec, ids(once), ids(twice))
		}
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	jobs := sampleJobs()
	before := ids(jobs)
	_ = Filter(jobs, models.FilterSpec{SearchQuery: "driver", Category: "all"})
	if !reflect.DeepEqual(ids(jobs), before) {
		t.Fatalf("Filter() mutated input")
	}
	if got := Filter(nil, models.FilterSpec{}); got == nil || len(got) != 0 {
		t.Fatalf("Filter(nil) = %#v, want empty slice", got)
	}
}

func TestFilterScenario(t *testing.T) {
	jobs := []models.Job{
		{ID: "1", Title: "Farm Worker", Location: "Nakuru", Category: "agriculture", Skills: []string{"farming"}},
		{ID: "2", Title: "Driver", Location: "Nairobi", Category: "driving", Skills: []string{"driving"}},
	}
	got := ids(Filter(jobs, models.FilterSpec{SearchQuery: "farm", Category: "all"}))
	if !reflect.DeepEqual(got, []string{"1"}) {
		t.Fatalf("Filter() = %v, want [1]", got)
	}

	matched := ids(MatchSkills(jobs, "driving, cleaning"))
	if !reflect.DeepEqual(matched, []string{"2"}) {
		t.Fatalf("MatchSkills() = %v, want [2]", matched)
	}
}

func TestMatchSkills(t *testing.T) {
	jobs := sampleJobs()

	t.Run("empty skills pass through", func(t *testing.T) {
		for _, skills := range []string{"", "  ", " , ,"} {
			if got := MatchSkills(jobs, skills); !reflect.DeepEqual(got, jobs) {
				t.Fatalf("MatchSkills(%q) = %v, want input", skills, ids(got))
			}
		}
	})

	t.Run("substring of tag, case-insensitive", func(t *testing.T) {
		got := ids(MatchSkills(jobs, " Driving "))
		if !reflect.DeepEqual(got, []string{"2", "4"}) {
			t.Fatalf("MatchSkills() = %v, want [2 4]", got)
		}
	})

	t.Run("tag inside skill does not match", func(t *testing.T) {
		got := ids(MatchSkills(jobs, "expert farming and cooking"))
		if len(got) != 0 {
			t.Fatalf("MatchSkills() = %v, want none", got)
		}
	})

	t.Run("never larger than input", func(t *testing.T) {
		for _, skills := range []string{"a", "cook,clean,farm,driv", "zzz"} {
			if got := MatchSkills(jobs, skills); len(got) > len(jobs) {
				t.Fatalf("MatchSkills(%q) grew the collection", skills)
			}
		}
	})
}

func TestSplitSkills(t *testing.T) {
	got := SplitSkills(" Farming, ,DRIVING ,cooking")
	want := []string{"farming", "driving", "cooking"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("SplitSkills() = %#v, want %#v", got, want)
	}
}

func TestMatchEmployees(t *testing.T) {
	employees := []models.Employee{
		{ID: "e1", Skills: []string{"Driving"}},
		{ID: "e2", Skills: []string{"cooking", "cleaning"}},
		{ID: "e3"},
	}

	got := MatchEmployees(employees, []string{"motorbike driving"})
	if len(got) != 1 || got[0].ID != "e1" {
		t.Fatalf("MatchEmployees() = %+v, want e1", got)
	}
	if all := MatchEmployees(employees, []string{" "}); len(all) != 3 {
		t.Fatalf("MatchEmployees(no tags) len = %d, want 3", len(all))
	}
}

func TestCategoriesAndByEmployer(t *testing.T) {
	jobs := sampleJobs()
	jobs[0].EmployerID = "emp-1"
	jobs[2].EmployerID = "emp-1"

	got := Categories(jobs)
	want := []string{"agriculture", "driving", "domestic"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Categories() = %v, want %v", got, want)
	}

	mine := ids(ByEmployer(jobs, "emp-1"))
	if !reflect.DeepEqual(mine, []string{"1", "3"}) {
		t.Fatalf("ByEmployer() = %v, want [1 3]", mine)
	}
	if len(ByEmployer(jobs, "")) != 0 {
		t.Fatalf("ByEmployer(\"\") should be empty")
	}
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	cases := []struct {
		name      string
		page      int
		size      int
		wantItems []int
		wantPage  int
		wantPages int
	}{
		{"first page", 1, 2, []int{1, 2}, 1, 3},
		{"last partial page", 3, 2, []int{5}, 3, 3},
		{"clamped high", 9, 2, []int{5}, 3, 3},
		{"clamped low", 0, 2, []int{1, 2}, 1, 3},
		{"no size", 2, 0, []int{1, 2, 3, 4, 5}, 1, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Paginate(items, tc.page, tc.size)
			if !reflect.DeepEqual(got.Items, tc.wantItems) || got.Page != tc.wantPage || got.Pages != tc.wantPages || got.Total != 5 {
				t.Fatalf("Paginate() = %+v", got)
			}
		})
	}

	empty := Paginate([]int{}, 3, 10)
	if len(empty.Items) != 0 || empty.Page != 1 || empty.Pages != 1 {
		t.Fatalf("Paginate(empty) = %+v", empty)
	}
}
