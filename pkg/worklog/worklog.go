// Package worklog implements projects, issues and dotted-key editing on top of
// the config document.
//
// Every operation loads the document, changes an in-memory copy and saves the
// whole document back. Operations that fail with one of the sentinel errors
// below never save.
package worklog

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/harrisonrobin/timectl/pkg/config"
	"github.com/harrisonrobin/timectl/pkg/model"
	"github.com/harrisonrobin/timectl/pkg/value"
)

var (
	ErrAlreadyExists   = errors.New("project already exists")
	ErrProjectNotFound = errors.New("project not found")
	ErrNotFound        = errors.New("key not found")
	ErrNoProjects      = errors.New("no projects found")

	// ErrCorruptProjects means the projects subtree no longer has the
	// project/issue shape, usually after a generic set wrote through it.
	ErrCorruptProjects = errors.New("projects data is corrupt")
)

// DocumentStore is the part of config.Store the worklog needs.
type DocumentStore interface {
	Load() (*config.Document, error)
	Save(*config.Document) error
	InitializeDefault() (*config.Document, error)
	Exists() (bool, error)
}

type Worklog struct {
	store  DocumentStore
	now    func() time.Time
	logger *slog.Logger
}

type Option func(*Worklog)

func WithClock(now func() time.Time) Option {
	return func(w *Worklog) { w.now = now }
}

func WithLogger(logger *slog.Logger) Option {
	return func(w *Worklog) {
		if logger != nil {
			w.logger = logger
		}
	}
}

func New(store DocumentStore, opts ...Option) *Worklog {
	w := &Worklog{
		store:  store,
		now:    time.Now,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func (w *Worklog) timestamp() string {
	return w.now().Format(time.RFC3339Nano)
}

// CreateProject adds an empty project named name.
func (w *Worklog) CreateProject(name string) (model.Project, error) {
	doc, err := w.store.Load()
	if err != nil {
		return model.Project{}, err
	}
	projects, err := projectsForUpdate(doc)
	if err != nil {
		return model.Project{}, err
	}
	if projects.Has(name) {
		return model.Project{}, fmt.Errorf("%w: %s", ErrAlreadyExists, name)
	}

	project := model.Project{Name: name, Issues: []model.Issue{}, CreatedAt: w.timestamp()}
	projects.Set(name, project.Value())

	if err := w.store.Save(doc); err != nil {
		return model.Project{}, err
	}
	w.logger.Debug("created project", "project", name)
	return project, nil
}

// CreateIssue appends an issue to an existing project. Issue names need not
// be unique.
func (w *Worklog) CreateIssue(projectName, issueName string) (model.Issue, error) {
	doc, err := w.store.Load()
	if err != nil {
		return model.Issue{}, err
	}
	projects, err := projectsForUpdate(doc)
	if err != nil {
		return model.Issue{}, err
	}
	record, ok := projects.Get(projectName)
	if !ok {
		return model.Issue{}, fmt.Errorf("%w: %s", ErrProjectNotFound, projectName)
	}

	// projectsForUpdate validated the shape, so both assertions hold.
	fields, _ := record.AsMap()
	rawIssues, _ := fields.Get("issues")
	issues, _ := rawIssues.AsSeq()

	issue := model.Issue{Name: issueName, TimeEntries: []value.Value{}, CreatedAt: w.timestamp()}
	appended := make([]value.Value, len(issues), len(issues)+1)
	copy(appended, issues)
	fields.Set("issues", value.Seq(append(appended, issue.Value())...))

	if err := w.store.Save(doc); err != nil {
		return model.Issue{}, err
	}
	w.logger.Debug("created issue", "project", projectName, "issue", issueName)
	return issue, nil
}

// ListProjects returns projects in stored order, or ErrNoProjects.
func (w *Worklog) ListProjects() ([]model.ProjectSummary, error) {
	projects, err := w.loadProjects()
	if err != nil {
		return nil, err
	}
	if len(projects) == 0 {
		return nil, ErrNoProjects
	}
	summaries := make([]model.ProjectSummary, 0, len(projects))
	for _, p := range projects {
		summaries = append(summaries, model.ProjectSummary{Name: p.Name, CreatedAt: p.CreatedAt})
	}
	return summaries, nil
}

// ListIssues returns the issues of one project in the order they were added.
func (w *Worklog) ListIssues(projectName string) ([]model.Issue, error) {
	projects, err := w.loadProjects()
	if err != nil {
		return nil, err
	}
	for _, p := range projects {
		if p.Name == projectName {
			return p.Issues, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrProjectNotFound, projectName)
}

func (w *Worklog) loadProjects() ([]model.Project, error) {
	doc, err := w.store.Load()
	if err != nil {
		return nil, err
	}
	projects, err := model.DecodeProjects(doc.Projects())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptProjects, err)
	}
	return projects, nil
}

// projectsForUpdate validates the projects subtree and returns the mapping to
// change in place. An absent subtree is created.
func projectsForUpdate(doc *config.Document) (*value.Map, error) {
	raw := doc.Projects()
	if _, err := model.DecodeProjects(raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptProjects, err)
	}
	if projects, ok := raw.AsMap(); ok {
		return projects, nil
	}
	projects := value.NewMap()
	doc.Root().Set(config.KeyProjects, value.FromMap(projects))
	return projects, nil
}

// View returns the whole document.
func (w *Worklog) View() (*config.Document, error) {
	return w.store.Load()
}

// Initialized reports whether a document has been stored yet.
func (w *Worklog) Initialized() (bool, error) {
	return w.store.Exists()
}

// Init resets the document to its defaults.
func (w *Worklog) Init() (*config.Document, error) {
	return w.store.InitializeDefault()
}
