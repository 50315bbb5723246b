package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/conn-castle/masctl/internal/manifest"
	"github.com/conn-castle/masctl/internal/messages"
	"github.com/conn-castle/masctl/internal/reconcile"
	"github.com/conn-castle/masctl/internal/runner"
	"github.com/conn-castle/masctl/internal/system"
)

// applyResult is the JSON frame reported to callers with --json.
type applyResult struct {
	Failed  bool   `json:"failed"`
	Changed bool   `json:"changed"`
	Msg     string `json:"msg"`
}

var (
	stdinIsTerminal = func() bool {
		return term.IsTerminal(int(os.Stdin.Fd()))
	}
	confirmApply = func(title string) (bool, error) {
		confirmed := false
		err := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().Title(title).Value(&confirmed),
		)).Run()
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return confirmed, err
	}
)

func newApplyCmd(flags *rootFlags) *cobra.Command {
	var (
		stateFlag string
		dryRun    bool
		jsonOut   bool
		yes       bool
	)

	cmd := &cobra.Command{
		Use:   messages.ApplyUse,
		Short: messages.ApplyShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(flags.verbose)

			apps, state, err := resolveBatch(args, stateFlag, flags.manifestPath)
			if err != nil {
				return err
			}

			sys := system.RealSystem{}
			eng, err := reconcile.New(reconcile.Options{
				System: sys,
				Runner: runner.New(sys.Environ(), logger),
				Path:   flags.masPath,
				DryRun: dryRun,
				Logger: logger,
			})
			if err != nil {
				if jsonOut {
					frameJSON(cmd.OutOrStdout(), applyResult{Failed: true, Msg: err.Error()})
					return &SilentExitError{Code: 1}
				}
				return err
			}

			if !dryRun && !yes && stdinIsTerminal() {
				ok, err := confirmApply(fmt.Sprintf(messages.ApplyConfirmTitleFmt, state, len(apps)))
				if err != nil {
					return err
				}
				if !ok {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), messages.ApplyConfirmAborted)
					return nil
				}
			}

			failed, changed, msg := eng.Apply(apps, state)

			if jsonOut {
				frameJSON(cmd.OutOrStdout(), applyResult{Failed: failed, Changed: changed, Msg: msg})
			} else {
				printApplyResult(cmd.OutOrStdout(), failed, changed, msg)
			}
			if failed {
				return &SilentExitError{Code: 1}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&stateFlag, "state", "", "desired state: present or latest (default from manifest, else present)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "report the first pending change without mutating")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "frame the result as JSON on stdout")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")

	return cmd
}

// resolveBatch determines the app ids and desired state for a run. Positional
// ids win over the manifest; an explicit --state wins over the manifest state.
func resolveBatch(args []string, stateFlag string, manifestPath string) ([]string, reconcile.State, error) {
	if len(args) > 0 {
		state, err := reconcile.ParseState(stateFlag)
		if err != nil {
			return nil, "", err
		}
		return args, state, nil
	}

	path, err := manifest.Discover(manifestPath)
	if err != nil {
		if errors.Is(err, manifest.ErrNotFound) {
			return nil, "", errors.New(messages.ApplyNoAppsError)
		}
		return nil, "", err
	}
	m, err := manifest.Load(path)
	if err != nil {
		return nil, "", err
	}

	if stateFlag != "" {
		state, err := reconcile.ParseState(stateFlag)
		if err != nil {
			return nil, "", err
		}
		return m.AppIDs(), state, nil
	}
	state, err := m.DesiredState()
	if err != nil {
		return nil, "", err
	}
	return m.AppIDs(), state, nil
}

func frameJSON(out io.Writer, res applyResult) {
	data, err := json.Marshal(res)
	if err != nil {
		// applyResult has no unmarshalable fields; keep the frame contract anyway.
		data = []byte(`{"failed":true,"changed":false,"msg":"internal: result encoding failed"}`)
	}
	_, _ = fmt.Fprintln(out, string(data))
}

func printApplyResult(out io.Writer, failed bool, changed bool, msg string) {
	var label string
	switch {
	case failed:
		label = color.RedString(messages.ApplyResultFailedLabel)
	case changed:
		label = color.YellowString(messages.ApplyResultChangedLabel)
	default:
		label = color.GreenString(messages.ApplyResultUnchangedLabel)
	}
	_, _ = fmt.Fprintf(out, messages.ApplyResultLineFmt, label, msg)
}
