package domain

import "time"

// Artifact is a harvested output file together with a content digest for
// traceability across CI runs.
type Artifact struct {
	Path   string `json:"path,omitzero"`
	Digest string `json:"digest,omitzero"`
}

// BuildRecord is the durable ledger entry for one workflow run.
type BuildRecord struct {
	Root        string     `json:"root,omitzero"`
	Revision    string     `json:"revision,omitzero"`
	BuildNumber int        `json:"build_number,omitzero"`
	ExitCode    int        `json:"exit_code"`
	Artifacts   []Artifact `json:"artifacts,omitzero"`
	StartedAt   time.Time  `json:"started_at,omitzero"`
	FinishedAt  time.Time  `json:"finished_at,omitzero"`
}

// Key identifies the record in the store. One record is kept per root and
// revision; a re-run of the same revision overwrites the previous entry.
func (r BuildRecord) Key() string {
	return r.Root + "@" + r.Revision
}
