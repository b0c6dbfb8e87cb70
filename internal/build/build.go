// Package build holds build-time information.
package build

// Version is the rpmci version printed by the version subcommand.
// It defaults to "dev"; release builds overwrite it with
// -ldflags "-X go.rpmci.dev/rpmci/internal/build.Version=...".
var Version = "dev"
