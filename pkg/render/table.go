package render

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/harrisonrobin/timectl/pkg/config"
	"github.com/harrisonrobin/timectl/pkg/model"
	"github.com/harrisonrobin/timectl/pkg/value"
)

// newTable builds a bordered table whose columns take the given colors.
func (p *Printer) newTable(title string, colors []lipgloss.Color, headers ...string) *table.Table {
	header := p.renderer.NewStyle().Bold(true).Padding(0, 1)
	cells := make([]lipgloss.Style, len(colors))
	for i, c := range colors {
		cells[i] = p.renderer.NewStyle().Foreground(c).Padding(0, 1)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			if col < len(cells) {
				return cells[col]
			}
			return p.renderer.NewStyle().Padding(0, 1)
		})
	if title != "" {
		p.Println(p.renderer.NewStyle().Bold(true).Render(title))
	}
	return t
}

var (
	cyan    = lipgloss.Color("6")
	magenta = lipgloss.Color("5")
	green   = lipgloss.Color("2")
)

// ConfigTable prints one row per project field and one per setting.
func (p *Printer) ConfigTable(doc *config.Document) {
	t := p.newTable("Configuration", []lipgloss.Color{cyan, magenta, green}, "Section", "Key", "Value")

	if projects, ok := doc.Projects().AsMap(); ok {
		projects.Range(func(name string, record value.Value) bool {
			fields, ok := record.AsMap()
			if !ok {
				t.Row(config.KeyProjects, name, record.String())
				return true
			}
			fields.Range(func(key string, v value.Value) bool {
				t.Row(config.KeyProjects, name+"."+key, v.String())
				return true
			})
			return true
		})
	}
	if settings, ok := doc.Settings().AsMap(); ok {
		settings.Range(func(key string, v value.Value) bool {
			t.Row(config.KeySettings, key, v.String())
			return true
		})
	}

	p.Println(t.Render())
}

// Projects prints the project list in stored order.
func (p *Printer) Projects(projects []model.ProjectSummary) {
	t := p.newTable("Projects", []lipgloss.Color{cyan, green}, "Name", "Created")
	for _, project := range projects {
		t.Row(project.Name, project.CreatedAt)
	}
	p.Println(t.Render())
}

// Issues prints the issues of one project in the order they were added.
func (p *Printer) Issues(project string, issues []model.Issue) {
	t := p.newTable("Issues in "+project, []lipgloss.Color{magenta, cyan, green, green}, "#", "Name", "Created", "Entries")
	for i, issue := range issues {
		t.Row(strconv.Itoa(i+1), issue.Name, issue.CreatedAt, strconv.Itoa(len(issue.TimeEntries)))
	}
	p.Println(t.Render())
}
