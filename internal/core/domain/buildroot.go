package domain

import "go.trai.ch/zerr"

// ExchangePath is the fixed location inside a build root used to pass files
// in and out between host and sandbox. Every invocation against the same root
// reuses it, which is why orchestration always clears it before copying in.
const ExchangePath = "/tmp/rpmci"

// BuildUser is the unprivileged account inside the root that owns the copied
// source tree and runs the build command.
const BuildUser = "mockbuild"

// BuildRootHandle identifies an ephemeral, named build root by its sandbox
// configuration directory and root config name. It is a plain value: two
// handles with equal fields refer to the same root. Concurrent invocations
// against the same handle are not coordinated and must be serialized by the
// caller.
type BuildRootHandle struct {
	ConfigDir string
	Root      string
}

// NewBuildRootHandle creates a handle for the given sandbox configuration.
// Both the configuration directory and the root config name are required.
func NewBuildRootHandle(configDir, root string) (BuildRootHandle, error) {
	if configDir == "" {
		return BuildRootHandle{}, zerr.Wrap(ErrInvalidRoot, "sandbox configuration directory is empty")
	}
	if root == "" {
		return BuildRootHandle{}, zerr.With(zerr.Wrap(ErrInvalidRoot, "root config name is empty"), "config_dir", configDir)
	}
	return BuildRootHandle{ConfigDir: configDir, Root: root}, nil
}

// String renders the handle for logs and error metadata.
func (h BuildRootHandle) String() string {
	return h.ConfigDir + ":" + h.Root
}
