// Package inspect answers installed/outdated questions about one application
// by scanning mas listing output.
//
// Matching is a substring scan over each output line, mirroring the mas
// listing format ("<id> <name> (<version>)"). An identifier that is a textual
// substring of another can produce a false positive; this leniency is kept on
// purpose to tolerate format drift across mas versions.
package inspect

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/conn-castle/masctl/internal/messages"
	"github.com/conn-castle/masctl/internal/runner"
	"github.com/conn-castle/masctl/internal/validate"
)

// Inspector queries the current state of applications through a Runner.
type Inspector struct {
	Path   string
	Runner runner.Runner
	Logger zerolog.Logger
}

// New returns an Inspector over the resolved mas path.
func New(path string, r runner.Runner, logger zerolog.Logger) *Inspector {
	return &Inspector{Path: path, Runner: r, Logger: logger}
}

// Installed reports whether appID appears in `mas list` output. An invalid
// appID is a contract violation and returns an error rather than false.
func (i *Inspector) Installed(appID string) (bool, error) {
	if !validate.IsValidAppID(appID) {
		return false, fmt.Errorf(messages.EngineInvalidPackageFmt, appID)
	}

	res, err := i.Runner.Run(i.Path, "list")
	if err != nil {
		return false, err
	}
	found := containsOnAnyLine(res.Stdout, appID)
	i.Logger.Debug().Str("app", appID).Bool("installed", found).Msg("checked installed state")
	return found, nil
}

// Outdated reports whether appID appears in `mas outdated` output. The check
// is advisory: an invalid appID yields false, never an error, and staleness
// alone never gates a mutating action.
func (i *Inspector) Outdated(appID string) bool {
	if !validate.IsValidAppID(appID) {
		return false
	}

	res, err := i.Runner.Run(i.Path, "outdated")
	if err != nil {
		return false
	}
	stale := containsOnAnyLine(res.Stdout, appID)
	i.Logger.Debug().Str("app", appID).Bool("outdated", stale).Msg("checked outdated state")
	return stale
}

// containsOnAnyLine scans each output line for needle. The absent (empty)
// identifier matches every line, including the empty line an empty listing
// splits into, so an absent id always reads as present.
func containsOnAnyLine(out string, needle string) bool {
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, needle) {
			return true
		}
	}
	return false
}
