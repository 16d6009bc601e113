package loader

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
)

// Dataset kinds.
const (
	KindHazards  = "hazards"
	KindShelters = "shelters"
)

// Report records the provenance and outcome of one import run so a loaded
// database can be traced back to the exact source file.
type Report struct {
	Kind       string     `json:"kind"`
	Source     SourceInfo `json:"source"`
	Result     Result     `json:"result"`
	StartedAt  time.Time  `json:"started_at"`
	FinishedAt time.Time  `json:"finished_at"`
}

// SourceInfo identifies the imported file.
type SourceInfo struct {
	Filename  string `json:"filename"`
	SizeBytes int64  `json:"size_bytes"`
	SHA256    string `json:"sha256"`
}

// Duration is the wall time of the run.
func (r *Report) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}

// DescribeSource stats and hashes the file at path.
func DescribeSource(path string) (SourceInfo, error) {
	file, err := os.Open(path)
	if err != nil {
		return SourceInfo{}, errors.Wrap(err, "failed to open source file")
	}
	defer file.Close()

	hash := sha256.New()
	size, err := io.Copy(hash, file)
	if err != nil {
		return SourceInfo{}, errors.Wrap(err, "failed to hash source file")
	}

	return SourceInfo{
		Filename:  filepath.Base(path),
		SizeBytes: size,
		SHA256:    hex.EncodeToString(hash.Sum(nil)),
	}, nil
}

// SaveReport writes the report as indented JSON.
func SaveReport(path string, report *Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal import report")
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(err, "failed to write import report")
	}

	return nil
}

// LoadReport reads a report written by SaveReport.
func LoadReport(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read import report")
	}

	var report Report
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, errors.Wrap(err, "failed to parse import report")
	}

	return &report, nil
}
