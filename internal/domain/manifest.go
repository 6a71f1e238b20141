package domain

import "time"

// ArtifactFiles names the files written for one language, relative to
// the resources root.
type ArtifactFiles struct {
	SQLite   string `json:"sqlite"`
	Snapshot string `json:"snapshot"`
}

// ManifestEntry records the artifacts produced for one language.
type ManifestEntry struct {
	Language  Language      `json:"language"`
	Entries   int           `json:"entries"`
	Files     ArtifactFiles `json:"files"`
	Checksums ArtifactFiles `json:"checksums"`
	Source    string        `json:"source"`
}

// Manifest summarizes one build run for downstream consumers.
type Manifest struct {
	RunID        string          `json:"runId"`
	GeneratedAt  time.Time       `json:"generatedAt"`
	Mode         BuildMode       `json:"mode"`
	Dictionaries []ManifestEntry `json:"dictionaries"`
}
