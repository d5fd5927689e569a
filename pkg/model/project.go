package model

import "github.com/harrisonrobin/timectl/pkg/value"

// Project is the typed view of one record under the document's "projects" key.
type Project struct {
	Name      string
	Issues    []Issue
	CreatedAt string
}

// Issue belongs to exactly one project. Issues keep the order they were added in.
type Issue struct {
	Name string

	// TimeEntries are stored as-is; nothing in timectl interprets them yet.
	TimeEntries []value.Value
	CreatedAt   string
}

// ProjectSummary is what listing needs to know about a project.
type ProjectSummary struct {
	Name      string
	CreatedAt string
}
