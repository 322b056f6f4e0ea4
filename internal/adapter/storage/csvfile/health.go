package csvfile

import (
	"context"
	"fmt"
	"os"
)

// HealthCheck implements ports.HealthChecker for the CSV data directory.
type HealthCheck struct {
	dataDir string
}

// NewHealthCheck creates a data-directory health checker.
func NewHealthCheck(dataDir string) *HealthCheck {
	return &HealthCheck{dataDir: dataDir}
}

// Ping verifies the data directory exists and is writable (mutations need
// to create temp files next to the tables).
func (h *HealthCheck) Ping(ctx context.Context) error {
	info, err := os.Stat(h.dataDir)
	if err != nil {
		return fmt.Errorf("data dir: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("data dir %s is not a directory", h.dataDir)
	}
	probe, err := os.CreateTemp(h.dataDir, ".healthcheck-*")
	if err != nil {
		return fmt.Errorf("data dir not writable: %w", err)
	}
	probe.Close()
	os.Remove(probe.Name())
	return nil
}

// Name returns the dependency name.
func (h *HealthCheck) Name() string {
	return "csv-data-dir"
}
