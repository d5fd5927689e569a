package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/harrisonrobin/timectl/pkg/config"
	"github.com/harrisonrobin/timectl/pkg/model"
	"github.com/harrisonrobin/timectl/pkg/value"
)

func sampleDocument() *config.Document {
	doc := config.Default()
	project := model.Project{Name: "Alpha", CreatedAt: "2024-03-01T09:30:00Z", Issues: []model.Issue{}}
	projects, _ := doc.Projects().AsMap()
	projects.Set("Alpha", project.Value())
	doc.Root().Assign(value.SplitPath("settings.label"), value.String("true"))
	return doc
}

func TestConfigTable(t *testing.T) {
	var out bytes.Buffer
	NewPlainPrinter(&out).ConfigTable(sampleDocument())

	text := out.String()
	assert.NotContains(t, text, "\x1b[", "plain printer must not emit escape codes")
	for _, want := range []string{"Configuration", "Section", "projects", "Alpha.name", "Alpha.issues", "[]", "settings", "workday_hours", "date_format", "%Y-%m-%d"} {
		assert.Contains(t, text, want)
	}
	assert.Less(t, strings.Index(text, "Alpha.name"), strings.Index(text, "workday_hours"))
}

func TestDocumentJSONIsTheStoredEncoding(t *testing.T) {
	doc := sampleDocument()
	var out bytes.Buffer
	require.NoError(t, NewPlainPrinter(&out).Document(doc, FormatJSON))

	want, err := doc.Encode()
	require.NoError(t, err)
	assert.Equal(t, string(want), out.String())
}

func TestMarshalYAMLKeepsOrderAndTypes(t *testing.T) {
	data, err := MarshalYAML(sampleDocument().Value())
	require.NoError(t, err)
	text := string(data)

	assert.Less(t, strings.Index(text, "projects:"), strings.Index(text, "settings:"))
	assert.Less(t, strings.Index(text, "date_format"), strings.Index(text, "workday_hours"))

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	settings := decoded["settings"].(map[string]any)
	assert.Equal(t, 8, settings["workday_hours"])
	assert.Equal(t, true, settings["auto_pause"])
	assert.Equal(t, "true", settings["label"], "strings that look like booleans stay strings")
	assert.Nil(t, settings["default_project"])
}

func TestProjectsAndIssuesTables(t *testing.T) {
	var out bytes.Buffer
	p := NewPlainPrinter(&out)

	p.Projects([]model.ProjectSummary{{Name: "b", CreatedAt: "t1"}, {Name: "a", CreatedAt: "t2"}})
	text := out.String()
	assert.Less(t, strings.Index(text, " b "), strings.Index(text, " a "))

	out.Reset()
	p.Issues("Alpha", []model.Issue{{Name: "Bug1", CreatedAt: "t3"}})
	assert.Contains(t, out.String(), "Issues in Alpha")
	assert.Contains(t, out.String(), "Bug1")
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	_, err = ParseFormat("xml")
	assert.Error(t, err)
}

func TestChromaFormatter(t *testing.T) {
	assert.Equal(t, "terminal16m", chromaFormatter(termenv.TrueColor))
	assert.Equal(t, "terminal256", chromaFormatter(termenv.ANSI256))
	assert.Equal(t, "", chromaFormatter(termenv.Ascii))
}

func TestMessages(t *testing.T) {
	var out bytes.Buffer
	p := NewPlainPrinter(&out)
	p.Successf("Project %s created successfully", "Alpha")
	p.Warnf("Key not found: %s", "a.b")
	p.Failf("Error: %v", "disk full")
	assert.Equal(t, "Project Alpha created successfully\nKey not found: a.b\nError: disk full\n", out.String())
}
