package commands

import (
	"github.com/spf13/cobra"
	"go.rpmci.dev/rpmci/internal/core/domain"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build CONFIGDIR ROOT [DEPS...]",
		Short: "Run the configured build command inside an isolated build root",
		Long: `Provision the ROOT chroot selected from CONFIGDIR, copy the sources in,
install DEPS (or the configured dependencies), and run the configured
build command. No spec stamping and no artifact harvesting.`,
		Args: cobra.MinimumNArgs(2),
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
			wf.SpecPath = ""
			if len(args) > 2 {
				wf.Dependencies = args[2:]
			}

			return c.components.App.Build(cmd.Context(), wf)
		},
	}
}
