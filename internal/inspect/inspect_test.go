package inspect

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/conn-castle/masctl/internal/runner"
)

// fakeRunner serves canned results per subcommand and records calls.
type fakeRunner struct {
	listOut     string
	outdatedOut string
	calls       []string
}

func (f *fakeRunner) Run(path string, args ...string) (runner.Result, error) {
	f.calls = append(f.calls, strings.Join(args, " "))
	switch args[0] {
	case "list":
		return runner.Result{Stdout: f.listOut}, nil
	case "outdated":
		return runner.Result{Stdout: f.outdatedOut}, nil
	}
	return runner.Result{}, nil
}

func newTestInspector(f *fakeRunner) *Inspector {
	return New("/usr/local/bin/mas", f, zerolog.Nop())
}

func TestInstalled(t *testing.T) {
	f := &fakeRunner{listOut: "497799835 Xcode (15.2)\n409203825 Numbers (14.0)\n"}
	insp := newTestInspector(f)

	installed, err := insp.Installed("497799835")
	if err != nil {
		t.Fatalf("Installed error: %v", err)
	}
	if !installed {
		t.Error("expected 497799835 to be installed")
	}

	installed, err = insp.Installed("12345")
	if err != nil {
		t.Fatalf("Installed error: %v", err)
	}
	if installed {
		t.Error("expected 12345 to be absent")
	}
}

func TestInstalledInvalidIDErrors(t *testing.T) {
	f := &fakeRunner{}
	insp := newTestInspector(f)

	_, err := insp.Installed("not-numeric")
	if err == nil {
		t.Fatal("expected contract-violation error for invalid id")
	}
	if !strings.Contains(err.Error(), "Invalid package: not-numeric.") {
		t.Errorf("unexpected error: %v", err)
	}
	if len(f.calls) != 0 {
		t.Errorf("no subprocess call should be made for invalid id, got %v", f.calls)
	}
}

func TestOutdated(t *testing.T) {
	f := &fakeRunner{outdatedOut: "409203825 Numbers (13.0 -> 14.0)\n"}
	insp := newTestInspector(f)

	if !insp.Outdated("409203825") {
		t.Error("expected 409203825 to be outdated")
	}
	if insp.Outdated("497799835") {
		t.Error("expected 497799835 to be current")
	}
}

func TestOutdatedInvalidIDIsFalse(t *testing.T) {
	f := &fakeRunner{outdatedOut: "anything\n"}
	insp := newTestInspector(f)

	if insp.Outdated("bogus id") {
		t.Error("invalid id must report not outdated, not error")
	}
	if len(f.calls) != 0 {
		t.Errorf("no subprocess call should be made for invalid id, got %v", f.calls)
	}
}

// An absent (empty) id matches any listing line, even an empty listing, so
// it always reads as already present and never reaches a mutating call.
func TestAbsentIDReadsAsPresent(t *testing.T) {
	f := &fakeRunner{listOut: "", outdatedOut: ""}
	insp := newTestInspector(f)

	installed, err := insp.Installed("")
	if err != nil {
		t.Fatalf("Installed error: %v", err)
	}
	if !installed {
		t.Error("absent id must read as installed")
	}
	if !insp.Outdated("") {
		t.Error("absent id must read as outdated")
	}
}

// Pins the deliberate leniency: an id that is a substring of another id on a
// listing line matches.
func TestInstalledSubstringLeniency(t *testing.T) {
	f := &fakeRunner{listOut: "1497799835 SomeApp (1.0)\n"}
	insp := newTestInspector(f)

	installed, err := insp.Installed("497799835")
	if err != nil {
		t.Fatalf("Installed error: %v", err)
	}
	if !installed {
		t.Error("substring match across a longer id is the documented behavior")
	}
}
