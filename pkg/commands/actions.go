package commands

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/harrisonrobin/timectl/pkg/render"
	"github.com/harrisonrobin/timectl/pkg/worklog"
)

func (a *App) createProject(name string) error {
	_, err := a.Worklog.CreateProject(name)
	if errors.Is(err, worklog.ErrAlreadyExists) {
		a.Printer.Warnf("Project %s already exists", name)
		return nil
	}
	if err != nil {
		return err
	}
	a.Printer.Successf("Project %s created successfully", name)
	return nil
}

func (a *App) createIssue(project, name string) error {
	_, err := a.Worklog.CreateIssue(project, name)
	if errors.Is(err, worklog.ErrProjectNotFound) {
		a.Printer.Warnf("Project %s does not exist yet", project)
		return nil
	}
	if err != nil {
		return err
	}
	a.Printer.Successf("Issue %s created in project %s", name, project)
	return nil
}

func (a *App) listProjects() error {
	projects, err := a.Worklog.ListProjects()
	if errors.Is(err, worklog.ErrNoProjects) {
		a.Printer.Warnf("No projects found")
		return nil
	}
	if err != nil {
		return err
	}
	a.Printer.Projects(projects)
	return nil
}

func (a *App) listIssues(project string) error {
	issues, err := a.Worklog.ListIssues(project)
	if errors.Is(err, worklog.ErrProjectNotFound) {
		a.Printer.Warnf("Project %s does not exist yet", project)
		return nil
	}
	if err != nil {
		return err
	}
	if len(issues) == 0 {
		a.Printer.Warnf("No issues found in project %s", project)
		return nil
	}
	a.Printer.Issues(project, issues)
	return nil
}

func (a *App) viewConfig(format string) error {
	f, err := render.ParseFormat(format)
	if err != nil {
		return err
	}
	doc, err := a.Worklog.View()
	if err != nil {
		return err
	}
	return a.Printer.Document(doc, f)
}

func (a *App) getConfig(key string) error {
	v, err := a.Worklog.GetPath(key)
	if errors.Is(err, worklog.ErrNotFound) {
		a.Printer.Warnf("Key not found: %s", key)
		return nil
	}
	if err != nil {
		return err
	}
	a.Printer.Println(v.String())
	return nil
}

func (a *App) setConfig(key, text string) error {
	v, err := a.Worklog.SetPath(key, text)
	if err != nil {
		return err
	}
	a.Printer.Successf("Configuration updated: %s = %s", key, v)
	return nil
}

func (a *App) unsetConfig(key string) error {
	err := a.Worklog.UnsetPath(key)
	if errors.Is(err, worklog.ErrNotFound) {
		a.Printer.Warnf("Key not found: %s", key)
		return nil
	}
	if err != nil {
		return err
	}
	a.Printer.Successf("Removed configuration: %s", key)
	return nil
}

func (a *App) initConfig(force bool) error {
	exists, err := a.Worklog.Initialized()
	if err != nil {
		return err
	}
	if exists && !force {
		if !a.Interactive {
			a.Printer.Warnf("Configuration file already exists. Use --force to reset it to defaults.")
			return nil
		}
		if !a.confirm("Configuration file already exists. Do you want to reset to defaults?") {
			return nil
		}
	}

	if _, err := a.Worklog.Init(); err != nil {
		return err
	}
	a.Printer.Successf("Configuration initialized with default values")
	return nil
}

// confirm asks a yes/no question. Anything but y or yes, including EOF, is no.
func (a *App) confirm(question string) bool {
	fmt.Fprintf(a.Printer.Writer(), "%s [y/N]: ", question)
	line, _ := bufio.NewReader(a.Stdin).ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}
