package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrisonrobin/timectl/pkg/value"
)

func TestDecodeProjects(t *testing.T) {
	input := `{
		"b": {"name": "b", "issues": [], "created_at": "2024-01-01T00:00:00Z"},
		"a": {"name": "a", "issues": [
			{"name": "first", "time_entries": [], "created_at": "2024-01-02T00:00:00Z"},
			{"name": "second", "time_entries": [{"minutes": 5}], "created_at": "2024-01-03T00:00:00Z"}
		], "created_at": "2024-01-01T00:00:00Z", "description": "extra fields are fine"}
	}`
	v, err := value.Parse([]byte(input))
	require.NoError(t, err)

	projects, err := DecodeProjects(v)
	require.NoError(t, err)
	require.Len(t, projects, 2)

	assert.Equal(t, "b", projects[0].Name)
	assert.Equal(t, "a", projects[1].Name)
	require.Len(t, projects[1].Issues, 2)
	assert.Equal(t, "first", projects[1].Issues[0].Name)
	assert.Equal(t, "second", projects[1].Issues[1].Name)
	assert.Len(t, projects[1].Issues[1].TimeEntries, 1)
}

func TestDecodeProjectsAbsent(t *testing.T) {
	projects, err := DecodeProjects(value.Null())
	require.NoError(t, err)
	assert.Empty(t, projects)
}

func TestDecodeProjectsRejectsBadShapes(t *testing.T) {
	tests := map[string]string{
		"not a mapping":      `[]`,
		"record is scalar":   `{"a": "oops"}`,
		"name mismatch":      `{"a": {"name": "b", "issues": [], "created_at": "t"}}`,
		"missing name":       `{"a": {"issues": [], "created_at": "t"}}`,
		"missing issues":     `{"a": {"name": "a", "created_at": "t"}}`,
		"issues not a list":  `{"a": {"name": "a", "issues": {}, "created_at": "t"}}`,
		"issue not a map":    `{"a": {"name": "a", "issues": [1], "created_at": "t"}}`,
		"issue missing name": `{"a": {"name": "a", "issues": [{"created_at": "t"}], "created_at": "t"}}`,
		"created_at number":  `{"a": {"name": "a", "issues": [], "created_at": 5}}`,
	}

	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			v, err := value.Parse([]byte(input))
			require.NoError(t, err)
			_, err = DecodeProjects(v)
			assert.Error(t, err)
		})
	}
}

func TestProjectValueRoundTrip(t *testing.T) {
	p := Project{
		Name:      "Alpha",
		CreatedAt: "2024-01-01T00:00:00Z",
		Issues:    []Issue{{Name: "Bug1", CreatedAt: "2024-01-01T00:00:01Z"}},
	}

	decoded, err := DecodeProject("Alpha", p.Value())
	require.NoError(t, err)
	assert.Equal(t, "Alpha", decoded.Name)
	require.Len(t, decoded.Issues, 1)
	assert.Equal(t, "Bug1", decoded.Issues[0].Name)
	assert.Empty(t, decoded.Issues[0].TimeEntries)

	out, err := p.Value().MarshalJSON()
	require.NoError(t, err)
	assert.Contains(t, string(out), `"time_entries":[]`)
}
