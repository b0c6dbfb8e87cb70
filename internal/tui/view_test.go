//nolint:testpackage // Test needs access to unexported fields
package tui

import (
	"strings"
	"testing"

	"go.rpmci.dev/rpmci/internal/core/domain"
)

func TestModel_View(t *testing.T) {
	m := NewModel(nil)
	m.width = 80
	m.height = 20

	m.vertices = []VertexState{
		{ID: "1", Name: "Reset build root", Status: statusCompleted},
		{ID: "2", Name: "Run build command", Status: statusRunning},
		{ID: "3", Name: "Harvest artifacts", Status: statusFailed},
	}

	output := m.View()

	t.Logf("View Output:\n%s", output)

	if !strings.Contains(output, "Reset build root") {
		t.Errorf("Expected output to contain 'Reset build root'")
	}
	if !strings.Contains(output, "Run build command") {
		t.Errorf("Expected output to contain 'Run build command'")
	}
	if !strings.Contains(output, "Harvest artifacts") {
		t.Errorf("Expected output to contain 'Harvest artifacts'")
	}

	// Completed has "✓"
	if !strings.Contains(output, "✓") {
		t.Errorf("Expected output to contain checkmark for completed stage")
	}
	// Failed has "✗"
	if !strings.Contains(output, "✗") {
		t.Errorf("Expected output to contain cross for failed stage")
	}
}

func TestModel_View_ExpandedLogs(t *testing.T) {
	m := NewModel(nil)
	m.width = 80
	m.height = 20

	vID := "stage-1"
	m.vertices = []VertexState{
		{ID: vID, Name: "Stage with logs", Status: statusRunning, Expanded: true},
	}

	m.logs[vID] = []string{
		"line-first",
		"line-middle",
		"line-last",
	}

	output := m.View()
	t.Logf("View Output with Logs:\n%s", output)

	if !strings.Contains(output, "line-first") {
		t.Errorf("Expected output to contain 'line-first'")
	}
	if !strings.Contains(output, "line-last") {
		t.Errorf("Expected output to contain 'line-last'")
	}

	// Only the tail is shown once the log grows past the limit.
	m.logs[vID] = []string{
		"older-line",
		"line-a", "line-b", "line-c", "line-d", "line-e",
	}
	output = m.View()
	if strings.Contains(output, "older-line") {
		t.Error("Expected older log line to be truncated")
	}
	if !strings.Contains(output, "line-e") {
		t.Error("Expected newest log line to be present")
	}
}

func TestModel_View_CollapsedHidesLogs(t *testing.T) {
	m := NewModel(nil)
	m.height = 20

	vID := "stage-1"
	m.vertices = []VertexState{
		{ID: vID, Name: "Quiet stage", Status: statusCompleted, Expanded: false},
	}
	m.logs[vID] = []string{"hidden-line"}

	output := m.View()
	if strings.Contains(output, "hidden-line") {
		t.Error("Expected collapsed stage to hide its logs")
	}
}

func TestModel_View_LogFiltering(t *testing.T) {
	m := NewModel(nil)
	m.height = 20
	m.vertices = []VertexState{
		{ID: "1", Name: "Stage 1", Expanded: true},
	}
	m.logs["1"] = []string{
		"[DEBUG] debug-message",
		"info-message",
		"[WARN] warn-message",
		"[ERROR] error-message",
	}

	// Filter at INFO (default)
	m.MinLogLevel = domain.LogLevelInfo
	output := m.View()
	if strings.Contains(output, "debug-message") {
		t.Error("Expected debug line to be filtered at info verbosity")
	}
	if !strings.Contains(output, "info-message") {
		t.Error("Expected info line at info verbosity")
	}
	if !strings.Contains(output, "warn-message") {
		t.Error("Expected warn line at info verbosity")
	}

	// Filter at ERROR
	m.MinLogLevel = domain.LogLevelError
	output = m.View()
	if strings.Contains(output, "info-message") {
		t.Error("Expected info line to be filtered at error verbosity")
	}
	if !strings.Contains(output, "error-message") {
		t.Error("Expected error line at error verbosity")
	}

	// Filter at DEBUG
	m.MinLogLevel = domain.LogLevelDebug
	output = m.View()
	if !strings.Contains(output, "debug-message") {
		t.Error("Expected debug line at debug verbosity")
	}
}

func TestModel_View_Scrolling(t *testing.T) {
	m := NewModel(nil)
	m.height = 3
	m.vertices = []VertexState{
		{ID: "1", Name: "Stage one"},
		{ID: "2", Name: "Stage two"},
		{ID: "3", Name: "Stage three"},
		{ID: "4", Name: "Stage four"},
		{ID: "5", Name: "Stage five"},
	}

	// Selection at the top: the first screenful is shown.
	m.SelectedIdx = 0
	output := m.View()
	if !strings.Contains(output, "Stage one") || !strings.Contains(output, "Stage three") {
		t.Error("Expected first screenful of stages")
	}
	if strings.Contains(output, "Stage four") {
		t.Error("Expected stages past the screen to be hidden")
	}

	// Selection at the bottom: the view follows it.
	m.SelectedIdx = 4
	output = m.View()
	if strings.Contains(output, "Stage one") {
		t.Error("Expected scrolled-off stages to be hidden")
	}
	if !strings.Contains(output, "Stage five") {
		t.Error("Expected selected stage to be visible")
	}
}
