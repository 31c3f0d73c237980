package models

// CategoryAll disables the category filter.
const CategoryAll = "all"

// FilterSpec captures the search inputs applied to the job list. It is never persisted.
type FilterSpec struct {
	SearchQuery string
	Category    string
	Location    string
}
