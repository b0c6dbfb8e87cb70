package domain

import "go.trai.ch/zerr"

// Workflow describes one isolated build-and-patch run: which root to use,
// which spec document to stamp, what to copy in, what to install, what to
// run, and which outputs to harvest afterwards.
type Workflow struct {
	Root BuildRootHandle

	// SpecPath is the spec document stamped before the build. Empty skips
	// the stamping stage.
	SpecPath string
	Stamp    RevisionStamp

	// SourceDir is the host directory whose contents are copied into the
	// exchange path inside the root.
	SourceDir string

	// Dependencies are installed into the root before the command runs.
	// An empty set is a no-op, not an error.
	Dependencies []string

	// Command is executed inside the root as an unprivileged user with the
	// exchange path as working directory.
	Command []string

	// ArtifactPatterns are glob patterns (matched against base names) that
	// select harvested files from the staging directory.
	ArtifactPatterns []string

	// StagingDir is the host directory the exchange path is copied out to.
	StagingDir string

	// DestDir is where selected artifacts are moved after harvesting.
	DestDir string
}

// Validate checks the fields every stage relies on.
func (w Workflow) Validate() error {
	if w.Root.ConfigDir == "" || w.Root.Root == "" {
		return zerr.With(zerr.New("incomplete build root handle"), "root", w.Root.String())
	}
	if w.SourceDir == "" {
		return zerr.New("source directory not set")
	}
	if len(w.Command) == 0 {
		return zerr.New("build command not set")
	}
	return nil
}
