// Package reconcile drives the mas CLI to converge a set of applications to
// a desired state. One engine instance owns one resolved mas path and one
// status accumulator; applications are processed strictly sequentially and
// the first fatal outcome freezes the batch.
package reconcile

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/conn-castle/masctl/internal/inspect"
	"github.com/conn-castle/masctl/internal/messages"
	"github.com/conn-castle/masctl/internal/runner"
	"github.com/conn-castle/masctl/internal/system"
	"github.com/conn-castle/masctl/internal/validate"
)

// Status accumulates per-batch outcomes. Once Failed is set the remaining
// applications are skipped and the counts freeze.
type Status struct {
	Failed         bool
	Changed        bool
	ChangedCount   int
	UnchangedCount int
	Message        string
}

// Options configures engine construction.
type Options struct {
	// System resolves the mas binary; required.
	System system.System
	// Runner executes mas; required.
	Runner runner.Runner
	// Path is an explicit mas path. Empty means resolve "mas" from PATH.
	Path string
	// DryRun suppresses mutating calls and reports the first pending change.
	DryRun bool
	Logger zerolog.Logger
}

// Engine reconciles applications against the Mac App Store.
type Engine struct {
	path   string
	runner runner.Runner
	insp   *inspect.Inspector
	dryRun bool
	logger zerolog.Logger
	status Status
}

// New resolves and validates the mas executable and returns a ready engine.
// Resolution failure is fatal here, before any application is processed.
func New(opts Options) (*Engine, error) {
	if opts.System == nil {
		return nil, errors.New(messages.EngineSystemRequired)
	}
	if opts.Runner == nil {
		return nil, errors.New(messages.EngineRunnerRequired)
	}

	path := opts.Path
	if path == "" {
		resolved, err := opts.System.LookPath("mas")
		if err != nil {
			return nil, errors.New(messages.EngineMasNotFound)
		}
		path = resolved
	}
	checked, err := validate.CheckedExecPath(path)
	if err != nil {
		return nil, err
	}
	if checked == "" {
		return nil, errors.New(messages.EngineMasNotFound)
	}

	return &Engine{
		path:   checked,
		runner: opts.Runner,
		insp:   inspect.New(checked, opts.Runner, opts.Logger),
		dryRun: opts.DryRun,
		logger: opts.Logger,
	}, nil
}

// Path returns the resolved mas executable path.
func (e *Engine) Path() string {
	return e.path
}

// Inspector returns the engine's inspector, for read-only callers like plan.
func (e *Engine) Inspector() *inspect.Inspector {
	return e.insp
}

// stepResult signals whether the batch loop should keep going. Both fatal
// failures and the dry-run pending change stop iteration; the status flags
// distinguish them.
type stepResult struct {
	stop bool
}

var (
	continueBatch = stepResult{}
	stopBatch     = stepResult{stop: true}
)

// Apply reconciles apps in order under the desired state and returns the
// final (failed, changed, message) triple. With more than one application
// processed and no failure, the message is the aggregate count summary;
// a single application keeps its own message.
func (e *Engine) Apply(apps []string, state State) (bool, bool, string) {
	st := &e.status

	for _, app := range apps {
		var res stepResult
		switch state {
		case StateLatest:
			res = e.upgradeOne(st, app)
		default:
			res = e.installOne(st, app)
		}
		if res.stop {
			break
		}
	}

	if !st.Failed && st.ChangedCount+st.UnchangedCount > 1 {
		st.Message = fmt.Sprintf(messages.EngineSummaryFmt, st.ChangedCount, st.UnchangedCount)
	}
	return st.Failed, st.Changed, st.Message
}

// Status returns a copy of the accumulator.
func (e *Engine) Status() Status {
	return e.status
}

// installOne converges one application to present.
func (e *Engine) installOne(st *Status, appID string) stepResult {
	id, err := validate.CheckedAppID(appID)
	if err != nil {
		return e.fatal(st, err.Error())
	}

	installed, err := e.insp.Installed(id)
	if err != nil {
		return e.fatal(st, err.Error())
	}
	if installed {
		st.UnchangedCount++
		st.Message = fmt.Sprintf(messages.EngineAlreadyInstalledFmt, id)
		return continueBatch
	}

	if e.dryRun {
		st.Changed = true
		st.Message = fmt.Sprintf(messages.EngineWouldInstallFmt, id)
		return stopBatch
	}

	res, err := e.runner.Run(e.path, "install", id)
	if err != nil {
		return e.fatal(st, err.Error())
	}

	installed, err = e.insp.Installed(id)
	if err != nil {
		return e.fatal(st, err.Error())
	}
	if !installed {
		return e.fatal(st, strings.TrimSpace(res.Stderr))
	}

	st.ChangedCount++
	st.Changed = true
	st.Message = fmt.Sprintf(messages.EngineInstalledFmt, id)
	return continueBatch
}

// upgradeOne converges one application to latest. The satisfied gate is
// conjunctive: installed AND not outdated, both before and after mutation.
// The mutating verb is still install; mas upgrades an installed app to the
// latest version when install is invoked again.
func (e *Engine) upgradeOne(st *Status, appID string) stepResult {
	id, err := validate.CheckedAppID(appID)
	if err != nil {
		return e.fatal(st, err.Error())
	}

	installed, err := e.insp.Installed(id)
	if err != nil {
		return e.fatal(st, err.Error())
	}
	if installed && !e.insp.Outdated(id) {
		st.UnchangedCount++
		st.Message = fmt.Sprintf(messages.EngineAlreadyUpgradedFmt, id)
		return continueBatch
	}

	if e.dryRun {
		st.Changed = true
		st.Message = fmt.Sprintf(messages.EngineWouldUpgradeFmt, id)
		return stopBatch
	}

	res, err := e.runner.Run(e.path, "install", id)
	if err != nil {
		return e.fatal(st, err.Error())
	}

	installed, err = e.insp.Installed(id)
	if err != nil {
		return e.fatal(st, err.Error())
	}
	if !installed || e.insp.Outdated(id) {
		return e.fatal(st, strings.TrimSpace(res.Stderr))
	}

	st.ChangedCount++
	st.Changed = true
	st.Message = fmt.Sprintf(messages.EngineUpgradedFmt, id)
	return continueBatch
}

func (e *Engine) fatal(st *Status, msg string) stepResult {
	st.Failed = true
	st.Message = msg
	e.logger.Debug().Str("message", msg).Msg("reconciliation failed")
	return stopBatch
}
