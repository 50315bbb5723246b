package testutil

import (
	"bytes"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func run(t *testing.T, path string, args ...string) (int, string, string) {
	t.Helper()
	cmd := exec.Command(path, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	code := 0
	if exitErr, ok := err.(*exec.ExitError); ok {
		code = exitErr.ExitCode()
	} else if err != nil {
		t.Fatalf("run stub: %v", err)
	}
	return code, stdout.String(), stderr.String()
}

func TestWriteMasStub(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell stubs require a POSIX shell")
	}

	dir := t.TempDir()
	logFile := filepath.Join(dir, "calls.log")
	stateFile := filepath.Join(dir, "state")
	stub := WriteMasStub(t, dir, "mas", MasStub{
		ListLines:  []string{"111 AppOne (1.0)"},
		CallLog:    logFile,
		StateFile:  stateFile,
		AccountOut: "user@example.com",
	})

	code, out, _ := run(t, stub, "list")
	if code != 0 || !strings.Contains(out, "111 AppOne") {
		t.Errorf("list: code=%d out=%q", code, out)
	}

	code, _, _ = run(t, stub, "install", "222")
	if code != 0 {
		t.Errorf("install: code=%d", code)
	}

	_, out, _ = run(t, stub, "list")
	if !strings.Contains(out, "222 Stub App") {
		t.Errorf("install should be reflected in list, got %q", out)
	}

	code, out, _ = run(t, stub, "account")
	if code != 0 || strings.TrimSpace(out) != "user@example.com" {
		t.Errorf("account: code=%d out=%q", code, out)
	}

	calls := ReadCallLog(t, logFile)
	if len(calls) != 4 {
		t.Errorf("expected 4 recorded calls, got %v", calls)
	}
}

func TestWriteMasStubInstallFailure(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell stubs require a POSIX shell")
	}

	dir := t.TempDir()
	stub := WriteMasStub(t, dir, "mas", MasStub{
		InstallExit:   1,
		InstallStderr: "Error: not purchased",
	})

	code, _, stderr := run(t, stub, "install", "111")
	if code != 1 {
		t.Errorf("expected exit 1, got %d", code)
	}
	if !strings.Contains(stderr, "not purchased") {
		t.Errorf("stderr not emitted, got %q", stderr)
	}
}
