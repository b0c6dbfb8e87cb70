package fs

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.rpmci.dev/rpmci/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Digester computes content digests of harvested artifacts so build records
// can tie an output file to the run that produced it.
type Digester struct{}

// NewDigester creates a new Digester.
func NewDigester() *Digester {
	return &Digester{}
}

// Digest computes the XXHash of the file's content.
func (d *Digester) Digest(path string) (string, error) {
	f, err := os.Open(path) //nolint:gosec // path is controlled by the caller
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to open artifact"), "path", path)
	}
	defer f.Close() //nolint:errcheck // best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to hash artifact"), "path", path)
	}

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}

// DigestAll digests the files concurrently and returns them as artifacts in
// input order.
func (d *Digester) DigestAll(ctx context.Context, paths []string) ([]domain.Artifact, error) {
	artifacts := make([]domain.Artifact, len(paths))

	g, _ := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			digest, err := d.Digest(path)
			if err != nil {
				return err
			}
			artifacts[i] = domain.Artifact{Path: path, Digest: digest}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return artifacts, nil
}
