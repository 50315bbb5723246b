package doctor

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/conn-castle/masctl/internal/manifest"
	"github.com/conn-castle/masctl/internal/runner"
)

type fakeSystem struct {
	path string
	err  error
}

func (s fakeSystem) LookPath(string) (string, error) { return s.path, s.err }
func (s fakeSystem) Environ() []string               { return nil }

type accountRunner struct {
	res runner.Result
	err error
}

func (r accountRunner) Run(string, ...string) (runner.Result, error) {
	return r.res, r.err
}

func TestCheckBinary(t *testing.T) {
	res, path := CheckBinary(fakeSystem{path: "/usr/local/bin/mas"}, "")
	if res.Status != StatusOK {
		t.Errorf("expected OK, got %s: %s", res.Status, res.Message)
	}
	if path != "/usr/local/bin/mas" {
		t.Errorf("expected resolved path, got %q", path)
	}

	res, path = CheckBinary(fakeSystem{err: errors.New("not found")}, "")
	if res.Status != StatusFail || path != "" {
		t.Errorf("expected FAIL with empty path, got %s %q", res.Status, path)
	}
	if res.Recommendation == "" {
		t.Error("expected a recommendation for missing binary")
	}

	res, path = CheckBinary(fakeSystem{}, "/usr/bin/mas;id")
	if res.Status != StatusFail || path != "" {
		t.Errorf("expected FAIL for invalid explicit path, got %s %q", res.Status, path)
	}
}

func TestCheckAccount(t *testing.T) {
	res := CheckAccount("/usr/local/bin/mas", accountRunner{res: runner.Result{Stdout: "user@example.com\n"}})
	if res.Status != StatusOK {
		t.Errorf("expected OK, got %s: %s", res.Status, res.Message)
	}
	if !strings.Contains(res.Message, "user@example.com") {
		t.Errorf("expected account in message, got %q", res.Message)
	}

	res = CheckAccount("/usr/local/bin/mas", accountRunner{res: runner.Result{ExitCode: 1, Stdout: "Not signed in\n"}})
	if res.Status != StatusWarn {
		t.Errorf("not signed in should warn, got %s", res.Status)
	}

	res = CheckAccount("/usr/local/bin/mas", accountRunner{err: errors.New("exec format error")})
	if res.Status != StatusWarn {
		t.Errorf("runner failure should warn, got %s", res.Status)
	}
}

func TestCheckManifest(t *testing.T) {
	dir := t.TempDir()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(dir)

	res := CheckManifest("")
	if res.Status != StatusWarn {
		t.Errorf("missing manifest should warn, got %s: %s", res.Status, res.Message)
	}

	path := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(path, []byte("[[apps]]\nid = \"abc\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	res = CheckManifest(path)
	if res.Status != StatusFail {
		t.Errorf("invalid manifest should fail, got %s: %s", res.Status, res.Message)
	}

	good := filepath.Join(dir, "good.toml")
	if err := os.WriteFile(good, []byte(manifest.Starter), 0o644); err != nil {
		t.Fatal(err)
	}
	res = CheckManifest(good)
	if res.Status != StatusOK {
		t.Errorf("expected OK, got %s: %s", res.Status, res.Message)
	}
	if !strings.Contains(res.Message, "1 application(s)") {
		t.Errorf("unexpected message: %q", res.Message)
	}
}
