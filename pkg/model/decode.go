package model

import (
	"fmt"

	"github.com/harrisonrobin/timectl/pkg/value"
)

// DecodeProjects reads the "projects" subtree into typed records, in stored
// order. A null or absent subtree (pass value.Null()) decodes to no projects.
// Anything that does not have the project/issue shape is an error; nothing is
// repaired.
func DecodeProjects(v value.Value) ([]Project, error) {
	if v.IsNull() {
		return nil, nil
	}
	m, ok := v.AsMap()
	if !ok {
		return nil, fmt.Errorf("projects is a %s, not a mapping", v.Kind())
	}

	projects := make([]Project, 0, m.Len())
	var err error
	m.Range(func(key string, record value.Value) bool {
		var p Project
		p, err = DecodeProject(key, record)
		if err != nil {
			return false
		}
		projects = append(projects, p)
		return true
	})
	if err != nil {
		return nil, err
	}
	return projects, nil
}

// DecodeProject checks one record stored under key.
func DecodeProject(key string, record value.Value) (Project, error) {
	m, ok := record.AsMap()
	if !ok {
		return Project{}, fmt.Errorf("project %q is a %s, not a mapping", key, record.Kind())
	}

	name, err := stringField(m, "name")
	if err != nil {
		return Project{}, fmt.Errorf("project %q: %w", key, err)
	}
	if name != key {
		return Project{}, fmt.Errorf("project %q: name field is %q", key, name)
	}
	createdAt, err := stringField(m, "created_at")
	if err != nil {
		return Project{}, fmt.Errorf("project %q: %w", key, err)
	}

	rawIssues, ok := m.Get("issues")
	if !ok {
		return Project{}, fmt.Errorf("project %q: issues is missing", key)
	}
	items, ok := rawIssues.AsSeq()
	if !ok {
		return Project{}, fmt.Errorf("project %q: issues is a %s, not a sequence", key, rawIssues.Kind())
	}

	issues := make([]Issue, 0, len(items))
	for i, item := range items {
		issue, err := DecodeIssue(item)
		if err != nil {
			return Project{}, fmt.Errorf("project %q: issue %d: %w", key, i, err)
		}
		issues = append(issues, issue)
	}

	return Project{Name: name, Issues: issues, CreatedAt: createdAt}, nil
}

func DecodeIssue(v value.Value) (Issue, error) {
	m, ok := v.AsMap()
	if !ok {
		return Issue{}, fmt.Errorf("is a %s, not a mapping", v.Kind())
	}
	name, err := stringField(m, "name")
	if err != nil {
		return Issue{}, err
	}
	createdAt, err := stringField(m, "created_at")
	if err != nil {
		return Issue{}, err
	}

	var entries []value.Value
	if raw, ok := m.Get("time_entries"); ok {
		entries, ok = raw.AsSeq()
		if !ok {
			return Issue{}, fmt.Errorf("time_entries is a %s, not a sequence", raw.Kind())
		}
	}
	return Issue{Name: name, TimeEntries: entries, CreatedAt: createdAt}, nil
}

func stringField(m *value.Map, field string) (string, error) {
	raw, ok := m.Get(field)
	if !ok {
		return "", fmt.Errorf("%s is missing", field)
	}
	s, ok := raw.AsString()
	if !ok {
		return "", fmt.Errorf("%s is a %s, not a string", field, raw.Kind())
	}
	return s, nil
}

// Value encodes a new project record.
func (p Project) Value() value.Value {
	issues := make([]value.Value, 0, len(p.Issues))
	for _, issue := range p.Issues {
		issues = append(issues, issue.Value())
	}
	m := value.NewMap()
	m.Set("name", value.String(p.Name))
	m.Set("issues", value.Seq(issues...))
	m.Set("created_at", value.String(p.CreatedAt))
	return value.FromMap(m)
}

// Value encodes a new issue record.
func (i Issue) Value() value.Value {
	entries := make([]value.Value, 0, len(i.TimeEntries))
	for _, e := range i.TimeEntries {
		entries = append(entries, e.Clone())
	}
	m := value.NewMap()
	m.Set("name", value.String(i.Name))
	m.Set("time_entries", value.Seq(entries...))
	m.Set("created_at", value.String(i.CreatedAt))
	return value.FromMap(m)
}
