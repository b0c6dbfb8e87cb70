package progrock

import (
	"io"
	"sync"

	"github.com/vito/progrock"
)

// Feed buffers status updates between the recorder and a progress view.
// It implements progrock.Writer on the producing side and the view's
// TapeSource on the consuming side.
type Feed struct {
	mu      sync.Mutex
	closed  bool
	updates chan *progrock.StatusUpdate
}

// NewFeed creates a Feed with room for a whole workflow's worth of updates,
// so recording never blocks on a slow view.
func NewFeed() *Feed {
	return &Feed{
		updates: make(chan *progrock.StatusUpdate, 256),
	}
}

// WriteStatus passes the update to the view. Updates written after Close are
// dropped, as are updates that do not fit the buffer: when the view stops
// reading (the user quit early) recording must not block, or Close would
// deadlock behind a stuck writer.
func (f *Feed) WriteStatus(update *progrock.StatusUpdate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return nil
	}
	select {
	case f.updates <- update:
	default:
	}
	return nil
}

// Close ends the stream; pending updates are still delivered.
func (f *Feed) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.closed {
		f.closed = true
		close(f.updates)
	}
	return nil
}

// Read returns the next update, or io.EOF once the feed is closed and
// drained.
func (f *Feed) Read() (*progrock.StatusUpdate, error) {
	update, ok := <-f.updates
	if !ok {
		return nil, io.EOF
	}
	return update, nil
}
