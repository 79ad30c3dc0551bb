package main

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunCommand_MissingCVFile(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "run", "--cv", "/nonexistent/cv.pdf", "--no-gui")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "cv file not found")
}

func TestRunCommand_BadConfigPath(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "run", "--config", "/nonexistent/config.json")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "failed to load config")
}

func TestRunCommand_FlagsRegistered(t *testing.T) {
	flags := runCommand.Flags()

	for _, name := range []string{"config", "cv", "brain-model", "coder-model", "output-dir", "no-gui", "verbose"} {
		assert.NotNil(t, flags.Lookup(name), "expected flag --%s", name)
	}
}

func TestRootCommand_Subcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	assert.True(t, names["run"])
	assert.True(t, names["check"])
}
