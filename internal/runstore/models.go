package runstore

import (
	"time"

	"asreval/internal/scoring"
)

// Run is one persisted evaluation run.
type Run struct {
	ID        string                `json:"id"`
	CreatedAt time.Time             `json:"created_at"`
	RefPath   string                `json:"ref_path"`
	HypPath   string                `json:"hyp_path"`
	Options   scoring.Options       `json:"options"`
	Metrics   scoring.MetricsResult `json:"metrics"`
}
