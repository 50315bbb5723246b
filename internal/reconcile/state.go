package reconcile

import (
	"fmt"

	"github.com/conn-castle/masctl/internal/messages"
)

// State is the desired state for a batch of applications.
type State string

const (
	// StatePresent converges each application to "installed".
	StatePresent State = "present"
	// StateLatest converges each application to "installed and not outdated".
	StateLatest State = "latest"
)

// ParseState maps the textual desired state to a State. The empty string
// defaults to present.
func ParseState(s string) (State, error) {
	switch State(s) {
	case "":
		return StatePresent, nil
	case StatePresent:
		return StatePresent, nil
	case StateLatest:
		return StateLatest, nil
	}
	return "", fmt.Errorf(messages.EngineUnknownStateFmt, s)
}
