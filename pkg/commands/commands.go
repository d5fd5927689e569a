// Package commands defines the timectl command tree.
package commands

import (
	"io"

	"github.com/spf13/pflag"

	"github.com/harrisonrobin/timectl/pkg/cli"
	"github.com/harrisonrobin/timectl/pkg/render"
	"github.com/harrisonrobin/timectl/pkg/worklog"
)

const Version = "0.1.0"

// App carries what every command needs.
type App struct {
	Worklog *worklog.Worklog
	Printer *render.Printer

	// Stdin answers confirmation prompts. Prompts are only shown when
	// Interactive is true.
	Stdin       io.Reader
	Interactive bool
}

// Root builds the tree. Global flags (--config, --verbose) are handled by
// main before a Worklog exists, so they are not part of it.
func (a *App) Root() *cli.Command {
	return &cli.Command{
		Name:    "timectl",
		Summary: "Timectl - A worklog for devs",
		Subcommands: []*cli.Command{
			a.createCommand(),
			a.getCommand(),
			a.configCommand(),
		},
	}
}

func (a *App) createCommand() *cli.Command {
	project := &cli.Command{
		Name:    "project",
		Summary: "Create a new project",
		Usage:   "timectl create project NAME",
	}
	project.Run = func(args []string) error {
		if err := project.ExactArgs(args, 1); err != nil {
			return err
		}
		return a.createProject(args[0])
	}

	var projectName, issueName string
	issue := &cli.Command{
		Name:    "issue",
		Summary: "Create an issue in a project",
		Usage:   "timectl create issue --project PROJECT --name NAME",
		Flags: func() *pflag.FlagSet {
			fs := pflag.NewFlagSet("issue", pflag.ContinueOnError)
			fs.StringVarP(&projectName, "project", "p", "", "project the issue belongs to")
			fs.StringVarP(&issueName, "name", "n", "", "issue name")
			return fs
		},
	}
	issue.Run = func(args []string) error {
		if projectName == "" || issueName == "" {
			return issue.UsageErrorf("--project and --name are required")
		}
		return a.createIssue(projectName, issueName)
	}

	return &cli.Command{
		Name:        "create",
		Summary:     "Create resources",
		Subcommands: []*cli.Command{project, issue},
	}
}

func (a *App) getCommand() *cli.Command {
	projects := &cli.Command{
		Name:    "projects",
		Summary: "List all projects",
		Run: func(args []string) error {
			return a.listProjects()
		},
	}

	var projectName string
	issues := &cli.Command{
		Name:    "issues",
		Summary: "List the issues of a project",
		Usage:   "timectl get issues --project PROJECT",
		Flags: func() *pflag.FlagSet {
			fs := pflag.NewFlagSet("issues", pflag.ContinueOnError)
			fs.StringVarP(&projectName, "project", "p", "", "project to list")
			return fs
		},
	}
	issues.Run = func(args []string) error {
		if projectName == "" {
			return issues.UsageErrorf("--project is required")
		}
		return a.listIssues(projectName)
	}

	return &cli.Command{
		Name:        "get",
		Summary:     "Show resources",
		Subcommands: []*cli.Command{projects, issues},
	}
}

func (a *App) configCommand() *cli.Command {
	var format string
	view := &cli.Command{
		Name:    "view",
		Summary: "View current configuration",
		Flags: func() *pflag.FlagSet {
			fs := pflag.NewFlagSet("view", pflag.ContinueOnError)
			fs.StringVar(&format, "format", string(render.FormatTable), "output format: table, json or yaml")
			return fs
		},
		Run: func(args []string) error {
			return a.viewConfig(format)
		},
	}

	get := &cli.Command{Name: "get", Summary: "Print one configuration value", Usage: "timectl config get KEY"}
	get.Run = func(args []string) error {
		if err := get.ExactArgs(args, 1); err != nil {
			return err
		}
		return a.getConfig(args[0])
	}

	set := &cli.Command{Name: "set", Summary: "Set a configuration value", Usage: "timectl config set KEY VALUE"}
	set.Run = func(args []string) error {
		if err := set.ExactArgs(args, 2); err != nil {
			return err
		}
		return a.setConfig(args[0], args[1])
	}

	unset := &cli.Command{Name: "unset", Summary: "Remove a configuration value", Usage: "timectl config unset KEY"}
	unset.Run = func(args []string) error {
		if err := unset.ExactArgs(args, 1); err != nil {
			return err
		}
		return a.unsetConfig(args[0])
	}

	var force bool
	initCmd := &cli.Command{
		Name:    "init",
		Summary: "Initialize default configuration",
		Flags: func() *pflag.FlagSet {
			fs := pflag.NewFlagSet("init", pflag.ContinueOnError)
			fs.BoolVarP(&force, "force", "f", false, "overwrite an existing configuration without asking")
			return fs
		},
		Run: func(args []string) error {
			return a.initConfig(force)
		},
	}

	return &cli.Command{
		Name:        "config",
		Summary:     "Manage Config Files",
		Subcommands: []*cli.Command{view, get, set, unset, initCmd},
	}
}
