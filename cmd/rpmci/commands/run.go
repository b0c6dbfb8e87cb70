package commands

import (
	"context"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	progrockadapter "go.rpmci.dev/rpmci/internal/adapters/telemetry/progrock"
	"go.rpmci.dev/rpmci/internal/core/domain"
	"go.rpmci.dev/rpmci/internal/tui"
	"go.trai.ch/zerr"
)

// autoRevision asks the tool to resolve the revision itself instead of
// taking it from the command line.
const autoRevision = "auto"

func (c *CLI) newRunCmd() *cobra.Command {
	var progress bool

	cmd := &cobra.Command{
		Use:   "run SPEC REVISION BUILDNUM CONFIGDIR ROOT [DEPS...]",
		Short: "Stamp, build, and harvest in one isolated workflow",
		Long: `Run the full workflow: stamp the spec document with REVISION and a
snapshot release derived from BUILDNUM, build it inside the ROOT chroot
selected from CONFIGDIR, and harvest the artifacts into the working
directory. Pass "auto" as REVISION to resolve it from the source tree.`,
		Args: cobra.MinimumNArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			wf, err := c.workflowFromArgs(args)
			if err != nil {
				return err
			}
			if progress {
				return c.runWithProgress(cmd.Context(), wf)
			}
			return c.components.App.Run(cmd.Context(), wf)
		},
	}

	cmd.Flags().BoolVar(&progress, "progress", false, "Show an interactive progress view")
	return cmd
}

// workflowFromArgs loads the configured workflow defaults and applies the
// positional arguments on top.
func (c *CLI) workflowFromArgs(args []string) (*domain.Workflow, error) {
	wf, err := c.components.App.Workflow(".")
	if err != nil {
		return nil, err
	}

	buildNumber, err := strconv.Atoi(args[2])
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "invalid build number"), "arg", args[2])
	}

	root, err := domain.NewBuildRootHandle(args[3], args[4])
	if err != nil {
		return nil, err
	}

	wf.SpecPath = args[0]
	wf.Root = root
	if len(args) > 5 {
		wf.Dependencies = args[5:]
	}

	if args[1] == autoRevision {
		// Leave the revision empty; App.Run resolves it.
		wf.Stamp = domain.RevisionStamp{BuildNumber: buildNumber}
		return wf, nil
	}

	stamp, err := domain.NewRevisionStamp(args[1], buildNumber)
	if err != nil {
		return nil, err
	}
	wf.Stamp = stamp
	return wf, nil
}

// runWithProgress runs the workflow with a live progress view attached. The
// recorder feeds the view through a buffered tape; closing the recorder ends
// the view.
func (c *CLI) runWithProgress(ctx context.Context, wf *domain.Workflow) error {
	feed := progrockadapter.NewFeed()
	c.components.Telemetry.Set(progrockadapter.NewRecorder(feed))

	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, c.teaOptions...)
	program := tea.NewProgram(tui.NewModel(feed), opts...)

	done := make(chan error, 1)
	go func() {
		err := c.components.App.Run(ctx, wf)
		_ = c.components.Telemetry.Close()
		done <- err
	}()

	if _, err := program.Run(); err != nil {
		return err
	}
	return <-done
}
