// Package tui renders live progress for a build-root workflow: one line per
// recorded stage (provision, install, build, harvest) with its streamed tool
// output underneath.
package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/vito/progrock"
)

// TapeSource yields the stream of status updates the model renders.
// *progrock.Tape has no Read method, so the recorder side hands the model a
// feed implementing this instead; io.EOF marks the end of the workflow.
type TapeSource interface {
	Read() (*progrock.StatusUpdate, error)
}

// WaitForTape returns a Bubble Tea command that blocks on the next update
// from the feed: MsgTapeUpdate on success, MsgTapeEnded once the stream ends.
func WaitForTape(tape TapeSource) tea.Cmd {
	return func() tea.Msg {
		update, err := tape.Read()
		if err != nil {
			if err == io.EOF {
				return MsgTapeEnded{}
			}
			// Any other read failure also ends the view; the workflow
			// result is reported on the CLI side regardless.
			return MsgTapeEnded{}
		}
		return MsgTapeUpdate{Update: update}
	}
}
