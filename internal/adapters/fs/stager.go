package fs

import (
	"io"
	"os"
	"path/filepath"
	"sort"

	"go.trai.ch/zerr"
)

// Stager manages the host-side staging directory artifacts are copied out
// to, and moves selected files into the caller's working directory.
type Stager struct {
	walker *Walker
}

// NewStager creates a new Stager.
func NewStager(walker *Walker) *Stager {
	return &Stager{walker: walker}
}

// Prepare clears and recreates the staging directory. The same clean-slate
// policy as the build root's exchange path: leftovers from a previous run
// must never be mistaken for this run's artifacts.
func (s *Stager) Prepare(dir string) error {
	if err := os.RemoveAll(dir); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to clear staging directory"), "dir", dir)
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create staging directory"), "dir", dir)
	}
	return nil
}

// Collect returns the staged files whose base name matches any of the glob
// patterns, in deterministic order.
func (s *Stager) Collect(dir string, patterns []string) ([]string, error) {
	var matches []string
	for path := range s.walker.WalkFiles(dir) {
		for _, pattern := range patterns {
			ok, err := filepath.Match(pattern, filepath.Base(path))
			if err != nil {
				return nil, zerr.With(zerr.Wrap(err, "invalid artifact pattern"), "pattern", pattern)
			}
			if ok {
				matches = append(matches, path)
				break
			}
		}
	}
	sort.Strings(matches)
	return matches, nil
}

// Move relocates a staged file into destDir and returns its new path.
// Staging usually lives on a different filesystem than the destination, so
// a failed rename falls back to copy-and-remove.
func (s *Stager) Move(path, destDir string) (string, error) {
	dest := filepath.Join(destDir, filepath.Base(path))

	if err := os.Rename(path, dest); err == nil {
		return dest, nil
	}

	if err := copyFile(path, dest); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to move artifact"), "path", path)
	}
	if err := os.Remove(path); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to remove staged artifact"), "path", path)
	}
	return dest, nil
}

func copyFile(src, dest string) error {
	in, err := os.Open(src) //nolint:gosec // path comes from our own staging walk
	if err != nil {
		return err
	}
	defer in.Close() //nolint:errcheck // best effort close in defer

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm()) //nolint:gosec // destination is caller-owned
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
