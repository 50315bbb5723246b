package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/conn-castle/masctl/internal/doctor"
	"github.com/conn-castle/masctl/internal/messages"
	"github.com/conn-castle/masctl/internal/runner"
	"github.com/conn-castle/masctl/internal/system"
)

func newDoctorCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   messages.DoctorUse,
		Short: messages.DoctorShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			logger := newLogger(flags.verbose)

			_, _ = fmt.Fprint(out, messages.DoctorHealthCheckHeader)

			var results []doctor.Result

			sys := system.RealSystem{}
			binaryResult, masPath := doctor.CheckBinary(sys, flags.masPath)
			results = append(results, binaryResult)

			if masPath != "" {
				results = append(results, doctor.CheckAccount(masPath, runner.New(sys.Environ(), logger)))
			}

			results = append(results, doctor.CheckManifest(flags.manifestPath))

			hasFail := false
			for _, r := range results {
				printResult(out, r)
				if r.Status == doctor.StatusFail {
					hasFail = true
				}
			}
			if hasFail {
				return errors.New(messages.DoctorFailuresFound)
			}
			return nil
		},
	}
}

func printResult(out io.Writer, r doctor.Result) {
	var status string
	switch r.Status {
	case doctor.StatusOK:
		status = color.GreenString(messages.DoctorStatusOKLabel)
	case doctor.StatusWarn:
		status = color.YellowString(messages.DoctorStatusWarnLabel)
	case doctor.StatusFail:
		status = color.RedString(messages.DoctorStatusFailLabel)
	}

	_, _ = fmt.Fprintf(out, messages.DoctorResultLineFmt, status, r.CheckName, r.Message)
	if r.Recommendation != "" {
		_, _ = fmt.Fprintf(out, messages.DoctorRecommendationFmt, r.Recommendation)
	}
}
