package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/conn-castle/masctl/internal/manifest"
	"github.com/conn-castle/masctl/internal/messages"
	"github.com/conn-castle/masctl/internal/plan"
	"github.com/conn-castle/masctl/internal/reconcile"
	"github.com/conn-castle/masctl/internal/runner"
	"github.com/conn-castle/masctl/internal/system"
)

func newPlanCmd(flags *rootFlags) *cobra.Command {
	var stateFlag string

	cmd := &cobra.Command{
		Use:   messages.PlanUse,
		Short: messages.PlanShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			logger := newLogger(flags.verbose)

			path, err := manifest.Discover(flags.manifestPath)
			if err != nil {
				return err
			}
			m, err := manifest.Load(path)
			if err != nil {
				return err
			}
			state, err := m.DesiredState()
			if err != nil {
				return err
			}
			if stateFlag != "" {
				state, err = reconcile.ParseState(stateFlag)
				if err != nil {
					return err
				}
			}

			// plan is read-only; the engine is only used for path resolution
			// and its inspector, and is kept in dry-run mode.
			sys := system.RealSystem{}
			eng, err := reconcile.New(reconcile.Options{
				System: sys,
				Runner: runner.New(sys.Environ(), logger),
				Path:   flags.masPath,
				DryRun: true,
				Logger: logger,
			})
			if err != nil {
				return err
			}

			p, err := plan.Build(eng.Inspector(), m.Apps, state)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(out, messages.PlanHeaderFmt, len(p.Entries), string(state))
			for _, e := range p.Entries {
				line := plan.Line(e)
				if e.Action == plan.ActionNone {
					_, _ = fmt.Fprint(out, line)
				} else {
					_, _ = fmt.Fprint(out, color.YellowString("%s", line))
				}
			}

			if p.Pending() == 0 {
				_, _ = fmt.Fprintln(out, messages.PlanNoChanges)
				return nil
			}

			_, _ = fmt.Fprintf(out, messages.PlanSummaryFmt, p.Pending(), p.Satisfied())
			if diff := p.Diff(); diff != "" {
				_, _ = fmt.Fprintln(out, messages.PlanDiffHeader)
				_, _ = fmt.Fprintln(out, diff)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&stateFlag, "state", "", "desired state to plan against (default from manifest)")

	return cmd
}
