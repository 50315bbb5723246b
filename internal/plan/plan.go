// Package plan computes a read-only preview of what apply would do across a
// whole manifest. Unlike the engine's dry-run, which stops at the first
// pending change, a plan evaluates every application and never mutates.
package plan

import (
	"fmt"
	"strings"

	"github.com/aymanbagabas/go-udiff"

	"github.com/conn-castle/masctl/internal/inspect"
	"github.com/conn-castle/masctl/internal/manifest"
	"github.com/conn-castle/masctl/internal/messages"
	"github.com/conn-castle/masctl/internal/reconcile"
	"github.com/conn-castle/masctl/internal/validate"
)

// Action is the pending operation for one application.
type Action string

const (
	ActionNone    Action = "none"
	ActionInstall Action = "install"
	ActionUpgrade Action = "upgrade"
)

// Entry is the evaluated state of one application.
type Entry struct {
	App       manifest.App
	Installed bool
	Outdated  bool
	Action    Action
}

// Plan is the evaluated batch.
type Plan struct {
	State   reconcile.State
	Entries []Entry
}

// Build evaluates every application against the current installed state.
func Build(insp *inspect.Inspector, apps []manifest.App, state reconcile.State) (*Plan, error) {
	p := &Plan{State: state}

	for _, app := range apps {
		if _, err := validate.CheckedAppID(app.ID); err != nil {
			return nil, err
		}
		installed, err := insp.Installed(app.ID)
		if err != nil {
			return nil, err
		}

		entry := Entry{App: app, Installed: installed}
		if state == reconcile.StateLatest && installed {
			entry.Outdated = insp.Outdated(app.ID)
		}

		switch {
		case !installed:
			entry.Action = ActionInstall
		case entry.Outdated:
			entry.Action = ActionUpgrade
		default:
			entry.Action = ActionNone
		}
		p.Entries = append(p.Entries, entry)
	}

	return p, nil
}

// Pending counts entries that require action.
func (p *Plan) Pending() int {
	n := 0
	for _, e := range p.Entries {
		if e.Action != ActionNone {
			n++
		}
	}
	return n
}

// Satisfied counts entries already at the desired state.
func (p *Plan) Satisfied() int {
	return len(p.Entries) - p.Pending()
}

// Diff renders a unified diff between the current and desired state
// listings, one line per application.
func (p *Plan) Diff() string {
	var current, desired strings.Builder
	for _, e := range p.Entries {
		fmt.Fprintf(&current, "%s %s\n", e.App.ID, currentLabel(e, p.State))
		fmt.Fprintf(&desired, "%s %s\n", e.App.ID, desiredLabel(p.State))
	}
	return strings.TrimSpace(udiff.Unified("current", "desired", current.String(), desired.String()))
}

func currentLabel(e Entry, state reconcile.State) string {
	switch {
	case !e.Installed:
		return "absent"
	case e.Outdated:
		return "outdated"
	default:
		return desiredLabel(state)
	}
}

func desiredLabel(state reconcile.State) string {
	if state == reconcile.StateLatest {
		return "installed (latest)"
	}
	return "installed"
}

// Line formats one human-readable plan line for an entry.
func Line(e Entry) string {
	suffix := ""
	if e.App.Name != "" {
		suffix = fmt.Sprintf(messages.PlanNameSuffixFmt, e.App.Name)
	}
	return fmt.Sprintf(messages.PlanLineFmt, e.Action, e.App.ID, suffix)
}
