package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.rpmci.dev/rpmci/internal/core/domain"
)

func (c *CLI) newHarvestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "harvest CONFIGDIR ROOT [DEST]",
		Short: "Copy build artifacts out of a build root",
		Long: `Copy the exchange directory out of the ROOT chroot into the staging
area, select the files matching the configured artifact patterns, and
move them into DEST (default: the working directory).`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			wf, err := c.components.App.Workflow(".")
			if err != nil {
				return err
			}

			root, err := domain.NewBuildRootHandle(args[0], args[1])
			if err != nil {
				return err
			}
			wf.Root = root
			if len(args) > 2 {
				wf.DestDir = args[2]
			}

			artifacts, err := c.components.App.Harvest(cmd.Context(), wf)
			if err != nil {
				return err
			}
			for _, a := range artifacts {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", a.Digest, a.Path)
			}
			return nil
		},
	}
}
