// Package testutil provides shell-stub fakes of the mas binary for
// subprocess-level tests. Engine tests should prefer fake runners; these
// stubs exercise the real exec path.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// MasStub describes the behavior of a fake mas binary.
type MasStub struct {
	// ListLines is printed on `mas list`, one entry per line.
	ListLines []string
	// OutdatedLines is printed on `mas outdated`, one entry per line.
	OutdatedLines []string
	// InstallExit is the exit code of `mas install`.
	InstallExit int
	// InstallStderr is written to stderr by `mas install`.
	InstallStderr string
	// AccountOut is printed on `mas account`; empty mimics a signed-out host.
	AccountOut string
	// CallLog, when set, receives one line per invocation: the subcommand and
	// its arguments. Lets tests assert that no mutating call was issued.
	CallLog string
	// StateFile, when set, makes the stub stateful: `install <id>` appends a
	// listing line for id to the file, and `list` prints the file contents in
	// addition to ListLines.
	StateFile string
}

// WriteStub writes an executable shell stub that exits successfully.
// t is the active test; dir is the output directory; name is the executable file name.
func WriteStub(t *testing.T, dir string, name string) {
	t.Helper()
	WriteStubWithExit(t, dir, name, 0)
}

// WriteStubWithExit writes an executable shell stub that exits with the provided code.
func WriteStubWithExit(t *testing.T, dir string, name string, exitCode int) {
	t.Helper()
	path := filepath.Join(dir, name)
	content := []byte(fmt.Sprintf("#!/bin/sh\nexit %d\n", exitCode))
	if err := os.WriteFile(path, content, 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
}

// WriteMasStub writes an executable shell stub named name that mimics the mas
// CLI per the stub description, and returns its path.
func WriteMasStub(t *testing.T, dir string, name string, stub MasStub) string {
	t.Helper()
	path := filepath.Join(dir, name)

	var b strings.Builder
	b.WriteString("#!/bin/sh\n")
	if stub.CallLog != "" {
		fmt.Fprintf(&b, "echo \"$@\" >> %q\n", stub.CallLog)
	}
	b.WriteString("case \"$1\" in\n")
	b.WriteString("list)\n")
	for _, line := range stub.ListLines {
		fmt.Fprintf(&b, "  echo %q\n", line)
	}
	if stub.StateFile != "" {
		// Tests point PATH at the stub dir alone, so external commands must be
		// invoked by absolute path.
		fmt.Fprintf(&b, "  /bin/cat %q 2>/dev/null\n", stub.StateFile)
	}
	b.WriteString("  exit 0 ;;\n")
	b.WriteString("outdated)\n")
	for _, line := range stub.OutdatedLines {
		fmt.Fprintf(&b, "  echo %q\n", line)
	}
	b.WriteString("  exit 0 ;;\n")
	b.WriteString("install)\n")
	if stub.InstallStderr != "" {
		fmt.Fprintf(&b, "  echo %q >&2\n", stub.InstallStderr)
	}
	if stub.StateFile != "" && stub.InstallExit == 0 {
		fmt.Fprintf(&b, "  echo \"$2 Stub App (1.0)\" >> %q\n", stub.StateFile)
	}
	fmt.Fprintf(&b, "  exit %d ;;\n", stub.InstallExit)
	b.WriteString("account)\n")
	if stub.AccountOut != "" {
		fmt.Fprintf(&b, "  echo %q\n", stub.AccountOut)
		b.WriteString("  exit 0 ;;\n")
	} else {
		b.WriteString("  echo \"Not signed in\" >&2\n")
		b.WriteString("  exit 1 ;;\n")
	}
	b.WriteString("esac\n")
	b.WriteString("exit 0\n")

	if err := os.WriteFile(path, []byte(b.String()), 0o755); err != nil {
		t.Fatalf("write mas stub: %v", err)
	}
	return path
}

// ReadCallLog returns the recorded stub invocations, one per line, or nil
// when the log file was never written.
func ReadCallLog(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		t.Fatalf("read call log: %v", err)
	}
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "\n")
}
