// Package manifest loads the TOML file declaring which applications masctl
// manages and the desired state for the batch.
package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/conn-castle/masctl/internal/messages"
	"github.com/conn-castle/masctl/internal/reconcile"
	"github.com/conn-castle/masctl/internal/validate"
)

// FileName is the manifest file name looked up in the working directory.
const FileName = "masctl.toml"

// HomeFileName is the fallback manifest in the user's home directory.
const HomeFileName = ".masctl.toml"

// ErrNotFound reports that no manifest exists at any discovery location.
var ErrNotFound = errors.New(messages.ManifestNotFound)

// App is one managed application. Name is descriptive only and never
// participates in reconciliation.
type App struct {
	ID   string `toml:"id"`
	Name string `toml:"name,omitempty"`
}

// Manifest is the declared desired state.
type Manifest struct {
	State string `toml:"state,omitempty"`
	Apps  []App  `toml:"apps"`

	// Path is where the manifest was loaded from.
	Path string `toml:"-"`
}

// DesiredState parses the manifest's state field, defaulting to present.
func (m *Manifest) DesiredState() (reconcile.State, error) {
	state, err := reconcile.ParseState(m.State)
	if err != nil {
		return "", fmt.Errorf(messages.ManifestInvalidStateFmt, err)
	}
	return state, nil
}

// AppIDs returns the ordered identifiers of all declared applications.
func (m *Manifest) AppIDs() []string {
	ids := make([]string, 0, len(m.Apps))
	for _, a := range m.Apps {
		ids = append(ids, a.ID)
	}
	return ids
}

// Load reads and validates the manifest at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(messages.ManifestReadFailedFmt, path, err)
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf(messages.ManifestParseFailedFmt, path, err)
	}
	m.Path = path

	if err := m.validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

func (m *Manifest) validate() error {
	if len(m.Apps) == 0 {
		return errors.New(messages.ManifestNoApps)
	}
	for i, a := range m.Apps {
		if a.ID == "" {
			return fmt.Errorf(messages.ManifestEmptyIDFmt, i)
		}
		if !validate.IsValidAppID(a.ID) {
			return fmt.Errorf(messages.ManifestInvalidIDFmt, i, a.ID)
		}
	}
	if _, err := m.DesiredState(); err != nil {
		return err
	}
	return nil
}

// Discover returns the manifest path to use. An explicit path wins and is
// not subject to fallback; otherwise ./masctl.toml, then ~/.masctl.toml.
func Discover(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if _, err := os.Stat(FileName); err == nil {
		return FileName, nil
	}
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf(messages.ManifestHomeDirFmt, err)
	}
	candidate := filepath.Join(home, HomeFileName)
	if _, err := os.Stat(candidate); err == nil {
		return candidate, nil
	}
	return "", ErrNotFound
}

// Starter is the manifest written by `masctl init`.
const Starter = `# Applications managed by masctl.
# Find ids with: mas search <name>

state = "present" # or "latest"

[[apps]]
id = "497799835"
name = "Xcode"
`
