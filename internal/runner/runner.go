// Package runner executes the mas binary synchronously and captures its
// output. Non-zero exits are results, not errors: callers decide what an
// exit code means.
package runner

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/conn-castle/masctl/internal/messages"
)

// localeVars are forced to "C" for every invocation so list output parses
// identically regardless of host locale.
var localeVars = []string{"LANG", "LC_ALL", "LC_MESSAGES", "LC_CTYPE"}

// Result is the captured outcome of one subprocess invocation.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Runner runs an executable with arguments and captures the result.
type Runner interface {
	Run(path string, args ...string) (Result, error)
}

// ExecRunner invokes binaries via os/exec in a locale-normalized environment.
type ExecRunner struct {
	// Env is the base environment; defaults to the process environment.
	Env []string
	// Logger receives a debug record per invocation.
	Logger zerolog.Logger
}

// New returns an ExecRunner over the given base environment. A nil env means
// the process environment.
func New(env []string, logger zerolog.Logger) *ExecRunner {
	if env == nil {
		env = os.Environ()
	}
	return &ExecRunner{Env: env, Logger: logger}
}

// Run executes path with args and returns the captured result. The returned
// error is non-nil only when the process could not be started; a non-zero
// exit code is reported through the result.
func (r *ExecRunner) Run(path string, args ...string) (Result, error) {
	cmd := exec.Command(path, args...)
	cmd.Env = normalizedEnv(r.Env)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	res := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return Result{}, fmt.Errorf(messages.RunnerStartFailedFmt, path, err)
		}
		res.ExitCode = exitErr.ExitCode()
	}

	r.Logger.Debug().
		Str("bin", path).
		Strs("args", args).
		Int("exit", res.ExitCode).
		Dur("took", time.Since(start)).
		Msg("ran mas")

	return res, nil
}

// normalizedEnv returns env with the locale variables forced to C.
func normalizedEnv(env []string) []string {
	out := make([]string, 0, len(env)+len(localeVars))
	for _, kv := range env {
		key, _, ok := strings.Cut(kv, "=")
		if ok && isLocaleVar(key) {
			continue
		}
		out = append(out, kv)
	}
	for _, key := range localeVars {
		out = append(out, key+"=C")
	}
	return out
}

func isLocaleVar(key string) bool {
	for _, v := range localeVars {
		if key == v {
			return true
		}
	}
	return false
}
