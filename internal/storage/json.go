package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"kts/internal/config"
	"kts/internal/domain"
)

// JSONStorage stores run summaries in a JSON file under the output dir.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's summary path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}

// Save writes the run summary to the configured JSON path.
func (s *JSONStorage) Save(summary *domain.RunSummary) error {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal run summary: %w", err)
	}

	path := s.cfg.GetSummaryPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write run summary: %w", err)
	}
	return nil
}

// Load reads the last run summary from the configured JSON path.
func (s *JSONStorage) Load() (*domain.RunSummary, error) {
	path := s.cfg.GetSummaryPath()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read run summary: %w", err)
	}
	var summary domain.RunSummary
	if err := json.Unmarshal(data, &summary); err != nil {
		return nil, fmt.Errorf("parse run summary: %w", err)
	}
	return &summary, nil
}
