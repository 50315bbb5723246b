package main

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func withExecuteFunc(t *testing.T, fn func([]string, io.Writer, io.Writer) error) {
	t.Helper()
	orig := executeFunc
	executeFunc = fn
	t.Cleanup(func() { executeFunc = orig })
}

func TestRunMainSilentExit(t *testing.T) {
	withExecuteFunc(t, func([]string, io.Writer, io.Writer) error {
		return &SilentExitError{Code: 3}
	})

	var stderr bytes.Buffer
	exitCode := -1
	runMain([]string{"masctl"}, io.Discard, &stderr, func(code int) { exitCode = code })

	assert.Equal(t, 3, exitCode)
	assert.Empty(t, stderr.String(), "silent exit must not print")
}

func TestRunMainErrorPrints(t *testing.T) {
	withExecuteFunc(t, func([]string, io.Writer, io.Writer) error {
		return errors.New("boom")
	})

	var stderr bytes.Buffer
	exitCode := -1
	runMain([]string{"masctl"}, io.Discard, &stderr, func(code int) { exitCode = code })

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "boom")
}

func TestRunMainSuccess(t *testing.T) {
	withExecuteFunc(t, func([]string, io.Writer, io.Writer) error {
		return nil
	})

	exitCode := -1
	runMain([]string{"masctl"}, io.Discard, io.Discard, func(code int) { exitCode = code })
	assert.Equal(t, -1, exitCode, "success must not call exit")
}

func TestVersionString(t *testing.T) {
	origVersion, origCommit, origDate := Version, Commit, BuildDate
	t.Cleanup(func() { Version, Commit, BuildDate = origVersion, origCommit, origDate })

	Version, Commit, BuildDate = "1.2.3", "unknown", "unknown"
	assert.Equal(t, "1.2.3", versionString())

	Commit, BuildDate = "abc1234", "2026-08-30"
	assert.Equal(t, "1.2.3 (commit abc1234, built 2026-08-30)", versionString())
}

func TestVersionFlag(t *testing.T) {
	var stdout bytes.Buffer
	err := execute([]string{"masctl", "--version"}, &stdout, io.Discard)
	assert.NoError(t, err)
	assert.Contains(t, stdout.String(), "dev")
}

func TestVersionCommand(t *testing.T) {
	var stdout bytes.Buffer
	err := execute([]string{"masctl", "version"}, &stdout, io.Discard)
	assert.NoError(t, err)
	assert.Contains(t, stdout.String(), "dev")
}
