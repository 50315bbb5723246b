// Package system abstracts host lookups behind an interface so engine and
// doctor logic can be exercised against fakes.
package system

import (
	"os"
	"os/exec"
)

// System abstracts system-level operations to enable dependency injection.
type System interface {
	LookPath(file string) (string, error)
	Environ() []string
}

// RealSystem implements System using actual system calls.
type RealSystem struct{}

// LookPath searches for an executable named file in the directories named by the PATH environment variable.
func (RealSystem) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// Environ returns the current process environment.
func (RealSystem) Environ() []string {
	return os.Environ()
}
