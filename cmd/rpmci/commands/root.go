// Package commands implements the CLI commands for the rpmci workflow tool.
package commands

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.rpmci.dev/rpmci/internal/adapters/config"
	"go.rpmci.dev/rpmci/internal/app"
)

// CLI represents the command line interface for rpmci.
type CLI struct {
	components *app.Components
	rootCmd    *cobra.Command
	teaOptions []tea.ProgramOption
}

// New creates a new CLI instance with the given application components.
func New(components *app.Components) *CLI {
	rootCmd := &cobra.Command{
		Use:           "rpmci",
		Short:         "Snapshot-stamped package builds in isolated build roots",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringP("config", "c", config.DefaultFilename, "Path to configuration file")

	c := &CLI{
		components: components,
		rootCmd:    rootCmd,
	}

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		filename, err := cmd.Flags().GetString("config")
		if err != nil {
			return err
		}
		if c.components.Config != nil {
			c.components.Config.Filename = filename
		}
		return nil
	}

	rootCmd.AddCommand(c.newRunCmd())
	rootCmd.AddCommand(c.newStampCmd())
	rootCmd.AddCommand(c.newBuildCmd())
	rootCmd.AddCommand(c.newHarvestCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// WithTeaOptions sets Bubble Tea program options for the progress view.
// Used for testing.
func (c *CLI) WithTeaOptions(opts ...tea.ProgramOption) *CLI {
	c.teaOptions = opts
	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOut sets the writer commands print to. Used for testing.
func (c *CLI) SetOut(w io.Writer) {
	c.rootCmd.SetOut(w)
}
