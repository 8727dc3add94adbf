// Package build holds build-time information.
package build

// Version is the stager version reported by the CLI.
// It defaults to "dev" and can be overwritten by linker flags.
var Version = "dev"
