package commands

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrisonrobin/timectl/pkg/cli"
	"github.com/harrisonrobin/timectl/pkg/config"
	"github.com/harrisonrobin/timectl/pkg/render"
	"github.com/harrisonrobin/timectl/pkg/value"
	"github.com/harrisonrobin/timectl/pkg/worklog"
)

type harness struct {
	store *config.Store
	out   *bytes.Buffer
	app   *App
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	store := config.New(filepath.Join(t.TempDir(), "config.json"))
	out := &bytes.Buffer{}
	return &harness{
		store: store,
		out:   out,
		app: &App{
			Worklog: worklog.New(store),
			Printer: render.NewPlainPrinter(out),
			Stdin:   strings.NewReader(""),
		},
	}
}

// run executes one command line and returns what it printed.
func (h *harness) run(t *testing.T, args ...string) string {
	t.Helper()
	h.out.Reset()
	require.NoError(t, h.app.Root().Execute(args, h.out))
	return h.out.String()
}

func TestCreateProject(t *testing.T) {
	h := newHarness(t)

	assert.Contains(t, h.run(t, "create", "project", "TestProject"), "Project TestProject created successfully")
	assert.Contains(t, h.run(t, "create", "project", "TestProject"), "Project TestProject already exists")
}

func TestCreateIssueNonexistentProject(t *testing.T) {
	h := newHarness(t)

	out := h.run(t, "create", "issue", "--project", "Nonexistent", "--name", "Issue1")
	assert.Contains(t, out, "Project Nonexistent does not exist yet")
}

func TestCreateIssue(t *testing.T) {
	h := newHarness(t)

	h.run(t, "create", "project", "TestProject")
	out := h.run(t, "create", "issue", "-p", "TestProject", "-n", "Issue1")
	assert.Contains(t, out, "Issue Issue1 created in project TestProject")

	out = h.run(t, "get", "issues", "--project", "TestProject")
	assert.Contains(t, out, "Issue1")
}

func TestCreateIssueRequiresFlags(t *testing.T) {
	h := newHarness(t)

	err := h.app.Root().Execute([]string{"create", "issue", "--project", "P"}, h.out)
	require.Error(t, err)
	assert.True(t, errors.Is(err, cli.ErrUsage))
}

func TestGetProjects(t *testing.T) {
	h := newHarness(t)

	assert.Contains(t, h.run(t, "get", "projects"), "No projects found")

	h.run(t, "create", "project", "b")
	h.run(t, "create", "project", "a")
	out := h.run(t, "get", "projects")
	assert.Less(t, strings.Index(out, " b "), strings.Index(out, " a "))
}

func TestInitConfig(t *testing.T) {
	h := newHarness(t)

	assert.Contains(t, h.run(t, "config", "init"), "Configuration initialized")

	doc, err := h.store.Load()
	require.NoError(t, err)
	assert.True(t, doc.Root().Has("projects"))
	hours, ok := doc.Root().Lookup(value.SplitPath("settings.workday_hours"))
	require.True(t, ok)
	assert.True(t, value.Int(8).Equal(hours))
}

func TestInitConfigExistingFile(t *testing.T) {
	h := newHarness(t)
	h.run(t, "config", "set", "settings.keep", "me")

	// Not interactive: refuse without --force.
	assert.Contains(t, h.run(t, "config", "init"), "--force")
	assert.Contains(t, h.run(t, "config", "get", "settings.keep"), "me")

	// Interactive, answer no.
	h.app.Interactive = true
	h.app.Stdin = strings.NewReader("n\n")
	out := h.run(t, "config", "init")
	assert.Contains(t, out, "Do you want to reset to defaults?")
	assert.NotContains(t, out, "Configuration initialized")

	// Interactive, answer yes.
	h.app.Stdin = strings.NewReader("y\n")
	assert.Contains(t, h.run(t, "config", "init"), "Configuration initialized")
	assert.Contains(t, h.run(t, "config", "get", "settings.keep"), "Key not found: settings.keep")

	// --force skips the question.
	h.app.Stdin = strings.NewReader("")
	assert.Contains(t, h.run(t, "config", "init", "--force"), "Configuration initialized")
}

func TestSetConfig(t *testing.T) {
	h := newHarness(t)

	assert.Contains(t, h.run(t, "config", "set", "settings.test_key", "test_value"), "Configuration updated: settings.test_key = test_value")
	h.run(t, "config", "set", "projects.myproject.name", "My Project")
	assert.Contains(t, h.run(t, "config", "set", "settings.ratio", "0.75"), "= 0.75")

	doc, err := h.store.Load()
	require.NoError(t, err)
	got, _ := doc.Root().Lookup(value.SplitPath("settings.test_key"))
	assert.True(t, value.String("test_value").Equal(got))
	got, _ = doc.Root().Lookup(value.SplitPath("projects.myproject.name"))
	assert.True(t, value.String("My Project").Equal(got))
}

func TestViewConfig(t *testing.T) {
	h := newHarness(t)
	h.run(t, "config", "init")
	h.run(t, "config", "set", "projects.testproject.name", "Test Project")

	assert.Contains(t, h.run(t, "config", "view"), "Test Project")
	assert.Contains(t, h.run(t, "config", "view", "--format", "json"), `"testproject"`)
	assert.Contains(t, h.run(t, "config", "view", "--format", "yaml"), "testproject:")

	err := h.app.Root().Execute([]string{"config", "view", "--format", "xml"}, h.out)
	assert.Error(t, err)
}

func TestUnsetConfig(t *testing.T) {
	h := newHarness(t)

	h.run(t, "config", "set", "settings.test_key", "test_value")
	assert.Contains(t, h.run(t, "config", "unset", "settings.test_key"), "Removed configuration")
	assert.Contains(t, h.run(t, "config", "unset", "settings.test_key"), "Key not found: settings.test_key")

	doc, err := h.store.Load()
	require.NoError(t, err)
	settings, ok := doc.Settings().AsMap()
	require.True(t, ok)
	assert.False(t, settings.Has("test_key"))
}

func TestMalformedConfigIsAnError(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, os.WriteFile(h.store.Path, []byte("{{"), 0600))

	err := h.app.Root().Execute([]string{"get", "projects"}, h.out)
	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrMalformedStore))
}

func TestHelpIsAnOrdinaryNameOrKey(t *testing.T) {
	h := newHarness(t)

	assert.Contains(t, h.run(t, "create", "project", "help"), "Project help created successfully")
	projects, err := h.app.Worklog.ListProjects()
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "help", projects[0].Name)

	assert.Contains(t, h.run(t, "config", "set", "help", "1"), "Configuration updated: help = 1")
	got, err := h.app.Worklog.GetPath("help")
	require.NoError(t, err)
	assert.True(t, value.Int(1).Equal(got))
	assert.Equal(t, "1\n", h.run(t, "config", "get", "help"))
	assert.Contains(t, h.run(t, "config", "unset", "help"), "Removed configuration: help")

	assert.Contains(t, h.run(t, "config", "help"), "Manage Config Files")
}
