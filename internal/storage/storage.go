package storage

import (
	"kts/internal/domain"
)

// Storage persists and loads run summaries (e.g. for the report and
// failures commands, and for rerunning failed tests).
type Storage interface {
	Save(summary *domain.RunSummary) error
	Load() (*domain.RunSummary, error)
}
