package inventory

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// WriteFile serializes the report into dir, creating it if needed. The file
// name follows resources_<accountID>_<timestamp>.json. Returns the written
// path. This is the single write of a run; nothing is streamed beforehand.
func (r *Report) WriteFile(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return "", fmt.Errorf("failed to create results directory: %w", err)
	}

	r.mu.Lock()
	data, err := json.MarshalIndent(r, "", "  ")
	r.mu.Unlock()
	if err != nil {
		return "", fmt.Errorf("failed to serialize report: %w", err)
	}

	name := fmt.Sprintf("resources_%s_%s.json", r.Metadata.AccountID, r.Metadata.RunTimestamp)
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil { // #nosec G306 -- report is not sensitive by default
		return "", fmt.Errorf("failed to write report: %w", err)
	}

	return path, nil
}
