package main

import (
	"bytes"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
)

func TestPrintUsageListsCommandsAndGlobalFlags(t *testing.T) {
	global := pflag.NewFlagSet("timectl", pflag.ContinueOnError)
	global.String("config", "", "path to the config file")

	var out bytes.Buffer
	printUsage(&out, global)
	help := out.String()

	for _, want := range []string{"create", "get", "config", "Global flags:", "--config"} {
		assert.Contains(t, help, want)
	}
}
