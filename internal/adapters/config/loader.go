// Package config provides the workflow configuration loader for rpmci.
package config

import (
	"os"
	"path/filepath"

	"go.rpmci.dev/rpmci/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the workflow configuration file looked up in the
// working directory.
const DefaultFilename = "rpmci.yaml"

// DefaultStagingDir is the host-side staging location used when the
// configuration does not name one.
const DefaultStagingDir = "/tmp/rpmci-staging"

// defaultPatterns select the conventional build outputs: the source archive,
// the spec document, and any built packages.
var defaultPatterns = []string{"*.tar.gz", "*.spec", "*.src.rpm", "*.rpm"}

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Filename string
}

// NewLoader creates a Loader reading the default filename.
func NewLoader() *Loader {
	return &Loader{Filename: DefaultFilename}
}

// Load reads the configuration from the given working directory and returns
// the workflow defaults. The CLI's positional arguments override the sandbox
// selection, spec path and dependencies afterwards.
func (l *Loader) Load(cwd string) (*domain.Workflow, error) {
	path := filepath.Join(cwd, l.Filename)

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by the user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	var workfile Workfile
	if err := yaml.Unmarshal(data, &workfile); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
	}

	if len(workfile.Command) == 0 {
		return nil, zerr.With(zerr.New("config file does not define a command"), "path", path)
	}

	wf := &domain.Workflow{
		// The sandbox section may be absent; positional CLI arguments select
		// the root in that case, so the handle is not validated here.
		Root:             domain.BuildRootHandle{ConfigDir: workfile.Sandbox.ConfigDir, Root: workfile.Sandbox.Root},
		SpecPath:         workfile.Spec,
		SourceDir:        cwd,
		Dependencies:     workfile.Dependencies,
		Command:          workfile.Command,
		ArtifactPatterns: workfile.Artifacts.Patterns,
		StagingDir:       workfile.Artifacts.Staging,
		DestDir:          cwd,
	}

	if len(wf.ArtifactPatterns) == 0 {
		wf.ArtifactPatterns = append([]string(nil), defaultPatterns...)
	}
	if wf.StagingDir == "" {
		wf.StagingDir = DefaultStagingDir
	}

	return wf, nil
}
