// Package validate holds the character-whitelist predicates that gate every
// string reaching mas command construction. They are the injection-prevention
// boundary: any path or identifier that fails here must never be passed to a
// subprocess.
package validate

import (
	"fmt"
	"os"
	"regexp"

	"github.com/conn-castle/masctl/internal/messages"
)

var (
	// execPathPattern admits word characters, whitespace, the platform path
	// separator, dots, and dashes. Anything else invalidates the path.
	execPathPattern = regexp.MustCompile(`^[\w\s` + regexp.QuoteMeta(string(os.PathSeparator)) + `.-]*$`)

	// appIDPattern admits decimal digits only.
	appIDPattern = regexp.MustCompile(`^[0-9]*$`)
)

// IsValidExecPath reports whether path is absent or contains only whitelisted
// path characters. The empty string counts as absent and is valid.
func IsValidExecPath(path string) bool {
	return execPathPattern.MatchString(path)
}

// IsValidAppID reports whether id is absent or all decimal digits.
func IsValidAppID(id string) bool {
	return appIDPattern.MatchString(id)
}

// CheckedExecPath returns path unchanged when it passes validation, otherwise
// an error naming the offending value.
func CheckedExecPath(path string) (string, error) {
	if !IsValidExecPath(path) {
		return "", fmt.Errorf(messages.EngineInvalidMasPathFmt, path)
	}
	return path, nil
}

// CheckedAppID returns id unchanged when it passes validation, otherwise an
// error naming the offending value.
func CheckedAppID(id string) (string, error) {
	if !IsValidAppID(id) {
		return "", fmt.Errorf(messages.EngineInvalidPackageFmt, id)
	}
	return id, nil
}
