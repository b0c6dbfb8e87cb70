package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun(t *testing.T) {
	// Save original args
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
	}()

	tests := []struct {
		name         string
		setup        func(t *testing.T, tmpDir string) []string
		expectedExit int
	}{
		{
			name: "version exits zero",
			setup: func(_ *testing.T, _ string) []string {
				return []string{"rpmci", "version"}
			},
			expectedExit: 0,
		},
		{
			name: "stamp with valid spec document",
			setup: func(t *testing.T, tmpDir string) []string {
				specPath := tmpDir + "/pkg.spec"
				doc := "%global gitrev deadbee\n\nName: pkg\nRelease: 1%{?dist}\n"
				if err := os.WriteFile(specPath, []byte(doc), 0o600); err != nil {
					t.Fatalf("failed to write spec document: %v", err)
				}
				return []string{"rpmci", "stamp", specPath, "abc1234", "7"}
			},
			expectedExit: 0,
		},
		{
			name: "stamp with missing spec document",
			setup: func(_ *testing.T, tmpDir string) []string {
				return []string{"rpmci", "stamp", tmpDir + "/absent.spec", "abc1234", "7"}
			},
			expectedExit: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()

			// Change to tmpDir so the history ledger lands there
			originalWd, _ := os.Getwd()
			err := os.Chdir(tmpDir)
			if err != nil {
				t.Fatalf("failed to chdir: %v", err)
			}
			defer func() {
				_ = os.Chdir(originalWd)
			}()

			os.Args = tt.setup(t, tmpDir)

			exitCode := run()
			assert.Equal(t, tt.expectedExit, exitCode)
		})
	}
}
