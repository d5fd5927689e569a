package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/harrisonrobin/timectl/pkg/cli"
	"github.com/harrisonrobin/timectl/pkg/commands"
	"github.com/harrisonrobin/timectl/pkg/config"
	"github.com/harrisonrobin/timectl/pkg/render"
	"github.com/harrisonrobin/timectl/pkg/worklog"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	// 1. Global flags stop at the first command word.
	global := pflag.NewFlagSet("timectl", pflag.ContinueOnError)
	global.SetInterspersed(false)
	global.SetOutput(io.Discard)
	configPath := global.String("config", "", "path to the config file (default $"+config.EnvConfigPath+" or ~/.timectl/config.json)")
	verbose := global.BoolP("verbose", "v", false, "log debug details to stderr")
	version := global.Bool("version", false, "print the version and exit")
	if err := global.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printUsage(os.Stderr, global)
			return 0
		}
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 2
	}
	if *version {
		fmt.Printf("timectl, version %s\n", commands.Version)
		return 0
	}

	logger := cli.NewLogger(*verbose)

	// 2. Locate the document (Priority: Flag > Env > Default)
	path, err := config.ResolvePath(*configPath)
	if err != nil {
		logger.Error("could not find path to configuration file", "error", err)
		return 1
	}
	logger.Debug("using config file", "path", path)

	store := config.New(path, config.WithLogger(logger))
	app := &commands.App{
		Worklog:     worklog.New(store, worklog.WithLogger(logger)),
		Printer:     render.NewPrinter(os.Stdout),
		Stdin:       os.Stdin,
		Interactive: term.IsTerminal(int(os.Stdin.Fd())),
	}

	// 3. Dispatch
	if err := app.Root().Execute(global.Args(), os.Stderr); err != nil {
		if errors.Is(err, cli.ErrUsage) {
			fmt.Fprintln(os.Stderr, err)
			return 2
		}
		render.NewPrinter(os.Stderr).Failf("Error: %v", err)
		logger.Debug("command failed", "error", err)
		return 1
	}
	return 0
}

// printUsage lists the command tree followed by the global flags. The tree is
// only described here, so it needs no Worklog.
func printUsage(w io.Writer, global *pflag.FlagSet) {
	(&commands.App{}).Root().PrintHelp(w)
	fmt.Fprintf(w, "\nGlobal flags:\n%s", global.FlagUsages())
}
