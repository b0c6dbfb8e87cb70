package config

// Workfile represents the structure of the rpmci.yaml configuration file.
type Workfile struct {
	Version      string       `yaml:"version"`
	Sandbox      SandboxDTO   `yaml:"sandbox"`
	Spec         string       `yaml:"spec"`
	Dependencies []string     `yaml:"dependencies"`
	Command      []string     `yaml:"command"`
	Artifacts    ArtifactsDTO `yaml:"artifacts"`
}

// SandboxDTO selects the build-root configuration.
type SandboxDTO struct {
	ConfigDir string `yaml:"configdir"`
	Root      string `yaml:"root"`
}

// ArtifactsDTO configures harvesting.
type ArtifactsDTO struct {
	Patterns []string `yaml:"patterns"`
	Staging  string   `yaml:"staging"`
}
