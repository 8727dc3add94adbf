package domain

import (
	"regexp"

	"go.trai.ch/zerr"
)

var packageManagerNameRe = regexp.MustCompile(`^[a-zA-Z0-9_-]+`)

// Config holds the resolved stager configuration.
type Config struct {
	// PackageManager is the pip requirement spec for the package manager,
	// e.g. "poetry>=1.6.1".
	PackageManager string
	// VenvDir is the directory of the virtual environment.
	VenvDir string
	// CacheDir is where run records are persisted.
	CacheDir string
	// Manifests are the project files the provisioning stage depends on.
	Manifests []string
	// Delegate describes the project build tool stager hands off to.
	Delegate Delegate
}

// Delegate describes an optional project build tool. When Marker exists in
// the project root and the user passed arguments, Cmd plus those arguments
// is run inside the virtual environment.
type Delegate struct {
	Marker string
	Cmd    []string
}

// PackageManagerName extracts the executable name from the requirement spec,
// e.g. "poetry" from "poetry>=1.6.1".
func (c *Config) PackageManagerName() (string, error) {
	name := packageManagerNameRe.FindString(c.PackageManager)
	if name == "" {
		return "", zerr.With(ErrInvalidPackageManager, "spec", c.PackageManager)
	}
	return name, nil
}
