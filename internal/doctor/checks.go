// Package doctor verifies that a host can reconcile Mac App Store
// applications: the mas binary resolves, the account is signed in, and the
// manifest is usable.
package doctor

import (
	"errors"
	"fmt"
	"strings"

	"github.com/conn-castle/masctl/internal/manifest"
	"github.com/conn-castle/masctl/internal/messages"
	"github.com/conn-castle/masctl/internal/runner"
	"github.com/conn-castle/masctl/internal/system"
	"github.com/conn-castle/masctl/internal/validate"
)

// Status classifies a check outcome.
type Status string

const (
	StatusOK   Status = "OK"
	StatusWarn Status = "WARN"
	StatusFail Status = "FAIL"
)

// Result is one check outcome with an optional remediation hint.
type Result struct {
	Status         Status
	CheckName      string
	Message        string
	Recommendation string
}

// CheckBinary resolves the mas executable and validates its path. The
// resolved path is returned alongside the result so later checks can use it;
// it is empty when the check fails.
func CheckBinary(sys system.System, explicit string) (Result, string) {
	path := explicit
	if path == "" {
		resolved, err := sys.LookPath("mas")
		if err != nil {
			return Result{
				Status:         StatusFail,
				CheckName:      messages.DoctorCheckNameBinary,
				Message:        messages.DoctorBinaryNotFound,
				Recommendation: messages.DoctorBinaryNotFoundRecommend,
			}, ""
		}
		path = resolved
	}

	if !validate.IsValidExecPath(path) {
		return Result{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameBinary,
			Message:        fmt.Sprintf(messages.DoctorBinaryBadPathFmt, path),
			Recommendation: messages.DoctorBinaryBadPathRecommend,
		}, ""
	}

	return Result{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameBinary,
		Message:   fmt.Sprintf(messages.DoctorBinaryFoundFmt, path),
	}, path
}

// CheckAccount reports the App Store sign-in state via `mas account`. Not
// being signed in is a warning, not a failure: free apps still install.
func CheckAccount(path string, r runner.Runner) Result {
	res, err := r.Run(path, "account")
	if err != nil {
		return Result{
			Status:    StatusWarn,
			CheckName: messages.DoctorCheckNameAccount,
			Message:   fmt.Sprintf(messages.DoctorAccountCheckFailedFmt, err),
		}
	}

	account := strings.TrimSpace(res.Stdout)
	if res.ExitCode != 0 || account == "" || strings.Contains(account, "Not signed in") {
		return Result{
			Status:         StatusWarn,
			CheckName:      messages.DoctorCheckNameAccount,
			Message:        messages.DoctorAccountNotSignedIn,
			Recommendation: messages.DoctorAccountNotSignedInRecommend,
		}
	}

	return Result{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameAccount,
		Message:   fmt.Sprintf(messages.DoctorAccountSignedInFmt, account),
	}
}

// CheckManifest reports whether a manifest can be discovered and loaded.
// A missing manifest is a warning: apply accepts ids directly.
func CheckManifest(explicit string) Result {
	path, err := manifest.Discover(explicit)
	if err != nil {
		if errors.Is(err, manifest.ErrNotFound) {
			return Result{
				Status:         StatusWarn,
				CheckName:      messages.DoctorCheckNameManifest,
				Message:        messages.DoctorManifestMissing,
				Recommendation: messages.DoctorManifestMissingRecommend,
			}
		}
		return Result{
			Status:    StatusFail,
			CheckName: messages.DoctorCheckNameManifest,
			Message:   err.Error(),
		}
	}

	m, err := manifest.Load(path)
	if err != nil {
		return Result{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameManifest,
			Message:        fmt.Sprintf(messages.DoctorManifestInvalidFmt, path, err),
			Recommendation: messages.DoctorManifestInvalidRecommend,
		}
	}

	return Result{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameManifest,
		Message:   fmt.Sprintf(messages.DoctorManifestLoadedFmt, len(m.Apps), path),
	}
}
