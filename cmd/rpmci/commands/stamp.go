package commands

import (
	"strconv"

	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
)

func (c *CLI) newStampCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stamp SPEC REVISION BUILDNUM",
		Short: "Rewrite the revision placeholder and release field of a spec document",
		Long: `Replace every occurrence of the gitrev placeholder value in the spec
document with REVISION, and rewrite the Release field to a snapshot
release derived from BUILDNUM. A BUILDNUM of 0 leaves the Release field
untouched.`,
		Args: cobra.ExactArgs(3),
		RunE: func(_ *cobra.Command, args []string) error {
			buildNumber, err := strconv.Atoi(args[2])
			if err != nil {
				return zerr.With(zerr.Wrap(err, "invalid build number"), "arg", args[2])
			}
			return c.components.App.Stamp(args[0], args[1], buildNumber)
		},
	}
}
