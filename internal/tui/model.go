package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vito/progrock"
	"go.rpmci.dev/rpmci/internal/core/domain"
)

const (
	statusRunning   = "running"
	statusCompleted = "completed"
	statusFailed    = "failed"
	statusPending   = "pending"
	statusCached    = "cached"
)

// logTailLimit is the number of log lines shown under an expanded vertex.
const logTailLimit = 5

// VertexState represents the current state of a workflow stage in the TUI.
type VertexState struct {
	ID     string
	Name   string
	Status string // statusRunning, statusCompleted, statusFailed, statusPending, statusCached

	// Expanded shows the vertex's log tail. Running and failed stages are
	// expanded, finished ones collapse.
	Expanded bool
}

type styles struct {
	running   lipgloss.Style
	completed lipgloss.Style
	failed    lipgloss.Style
	pending   lipgloss.Style
	log       lipgloss.Style
}

// Model is the Bubble Tea model for the TUI, managing vertices and tape updates.
type Model struct {
	tape     TapeSource
	vertices []VertexState
	logs     map[string][]string
	width    int
	height   int
	spinner  spinner.Model
	styles   styles

	// SelectedIdx is the vertex the view keeps in sight while scrolling.
	SelectedIdx int
	// MinLogLevel filters the log lines shown under expanded vertices.
	MinLogLevel domain.LogLevel
}

// NewModel creates a new TUI model with the given tape source.
func NewModel(tape TapeSource) *Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("yellow"))

	return &Model{
		tape:        tape,
		logs:        make(map[string][]string),
		spinner:     s,
		MinLogLevel: domain.LogLevelInfo,
		styles: styles{
			running:   lipgloss.NewStyle().Foreground(lipgloss.Color("yellow")),
			completed: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),  // Green
			failed:    lipgloss.NewStyle().Foreground(lipgloss.Color("160")), // Red
			pending:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")), // Gray
			log:       lipgloss.NewStyle().Foreground(lipgloss.Color("246")),
		},
	}
}

// Init initializes the model and starts reading from the tape.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		WaitForTape(m.tape),
		m.spinner.Tick,
	)
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		return m.handleWindowSizeMsg(msg)
	case spinner.TickMsg:
		return m.handleSpinnerTick(msg)
	case MsgTapeUpdate:
		return m.handleTapeUpdate(msg)
	case MsgTapeEnded:
		return m, tea.Quit
	}
	return m, nil
}

// handleKeyMsg handles keyboard input messages.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyDown:
		m.moveSelection(1)
		return m, nil
	case tea.KeyUp:
		m.moveSelection(-1)
		return m, nil
	case tea.KeyEnter:
		m.toggleSelected()
		return m, nil
	case tea.KeyRunes:
		return m.handleRuneKey(msg.Runes)
	}
	return m, nil
}

func (m *Model) handleRuneKey(runes []rune) (tea.Model, tea.Cmd) {
	if len(runes) != 1 {
		return m, nil
	}
	switch runes[0] {
	case 'q':
		return m, tea.Quit
	case 'j':
		m.moveSelection(1)
	case 'k':
		m.moveSelection(-1)
	case ' ':
		m.toggleSelected()
	case '+':
		// More verbose.
		if m.MinLogLevel > domain.LogLevelDebug {
			m.MinLogLevel -= 4
		}
	case '-':
		// Less verbose.
		if m.MinLogLevel < domain.LogLevelError {
			m.MinLogLevel += 4
		}
	}
	return m, nil
}

// moveSelection moves the selection by delta, wrapping around both ends.
func (m *Model) moveSelection(delta int) {
	if len(m.vertices) == 0 {
		return
	}
	m.SelectedIdx = (m.SelectedIdx + delta + len(m.vertices)) % len(m.vertices)
}

func (m *Model) toggleSelected() {
	if m.SelectedIdx < len(m.vertices) {
		m.vertices[m.SelectedIdx].Expanded = !m.vertices[m.SelectedIdx].Expanded
	}
}

// handleWindowSizeMsg handles window resize messages.
func (m *Model) handleWindowSizeMsg(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	return m, nil
}

// handleSpinnerTick handles spinner animation tick messages.
func (m *Model) handleSpinnerTick(msg spinner.TickMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

// handleTapeUpdate handles tape update messages.
func (m *Model) handleTapeUpdate(msg MsgTapeUpdate) (tea.Model, tea.Cmd) {
	m.processVertexUpdates(msg.Update)
	m.processLogUpdates(msg.Update)
	return m, WaitForTape(m.tape)
}

// processVertexUpdates processes vertex updates from the tape.
func (m *Model) processVertexUpdates(update *progrock.StatusUpdate) {
	for _, v := range update.Vertexes {
		if v.Internal {
			continue
		}
		m.updateOrAddVertex(v)
	}
}

// processLogUpdates appends log lines to their vertex.
func (m *Model) processLogUpdates(update *progrock.StatusUpdate) {
	for _, l := range update.Logs {
		text := strings.TrimRight(string(l.Data), "\n")
		if text == "" {
			continue
		}
		m.logs[l.Vertex] = append(m.logs[l.Vertex], strings.Split(text, "\n")...)
	}
}

// updateOrAddVertex updates an existing vertex or adds a new one.
func (m *Model) updateOrAddVertex(v *progrock.Vertex) {
	for i, existing := range m.vertices {
		if existing.ID == v.Id {
			m.updateVertexStatus(i, v)
			return
		}
	}
	// Vertex not found, add it
	m.vertices = append(m.vertices, VertexState{
		ID:       v.Id,
		Name:     v.Name,
		Status:   statusRunning,
		Expanded: true,
	})
}

// updateVertexStatus updates the status of an existing vertex.
func (m *Model) updateVertexStatus(index int, v *progrock.Vertex) {
	if v.Cached {
		m.vertices[index].Status = statusCached
		m.vertices[index].Expanded = false
		return
	}
	if v.Completed == nil {
		return
	}
	if v.Error != nil {
		// Failed stages stay expanded: the log tail is the diagnosis.
		m.vertices[index].Status = statusFailed
		m.vertices[index].Expanded = true
	} else {
		m.vertices[index].Status = statusCompleted
		m.vertices[index].Expanded = false
	}
}

// View renders the current state of the model as a string.
func (m *Model) View() string {
	var s strings.Builder

	start := 0
	if m.height > 0 && m.SelectedIdx > 0 {
		start = m.SelectedIdx - m.height/2
		if start < 0 {
			start = 0
		}
	}

	lines := 0
	for i := start; i < len(m.vertices); i++ {
		if m.height > 0 && lines >= m.height {
			break
		}
		v := m.vertices[i]
		s.WriteString(m.renderVertex(v))
		lines++

		if !v.Expanded {
			continue
		}
		for _, logLine := range m.visibleLogs(v.ID) {
			if m.height > 0 && lines >= m.height {
				break
			}
			s.WriteString("    " + m.styles.log.Render(logLine) + "\n")
			lines++
		}
	}

	return s.String()
}

func (m *Model) renderVertex(v VertexState) string {
	var icon string
	var style lipgloss.Style
	switch v.Status {
	case statusRunning:
		icon = m.spinner.View()
		style = m.styles.running
	case statusCompleted:
		icon = "✓"
		style = m.styles.completed
	case statusFailed:
		icon = "✗"
		style = m.styles.failed
	case statusCached:
		icon = "≡"
		style = m.styles.pending
	default:
		icon = "•"
		style = m.styles.pending
	}

	return fmt.Sprintf("%s %s\n", style.Render(icon), v.Name)
}

// visibleLogs returns the tail of the vertex's log, filtered by verbosity.
func (m *Model) visibleLogs(vertexID string) []string {
	all := m.logs[vertexID]

	var filtered []string
	for _, line := range all {
		if logLineLevel(line) >= m.MinLogLevel {
			filtered = append(filtered, line)
		}
	}
	if len(filtered) > logTailLimit {
		filtered = filtered[len(filtered)-logTailLimit:]
	}
	return filtered
}

// logLineLevel parses the "[LEVEL]" prefix the recorder puts on structured
// log lines. Unprefixed lines (raw tool output) rank as info.
func logLineLevel(line string) domain.LogLevel {
	switch {
	case strings.HasPrefix(line, "[DEBUG]"):
		return domain.LogLevelDebug
	case strings.HasPrefix(line, "[WARN]"):
		return domain.LogLevelWarn
	case strings.HasPrefix(line, "[ERROR]"):
		return domain.LogLevelError
	default:
		return domain.LogLevelInfo
	}
}
