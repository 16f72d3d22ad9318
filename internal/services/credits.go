package services

import (
	"sync"
	"time"
)

// Credit costs for the simulated generation API. Section-only
// regeneration is deliberately cheaper than a full-track pass.
const (
	CreditsInitialGeneration = 1.5
	CreditsFullRegeneration  = 2.0
	CreditsSectionGeneration = 0.5
)

// UsageLog records one simulated generation call.
type UsageLog struct {
	ProjectID      string    `json:"project_id"`
	VersionID      string    `json:"version_id"`
	RequestID      string    `json:"request_id"`
	Scope          string    `json:"scope"`
	CreditsCharged float64   `json:"credits_charged"`
	DurationMs     int64     `json:"duration_ms"`
	CreatedAt      time.Time `json:"created_at"`
}

// UsageStats aggregates a project's simulated API usage.
type UsageStats struct {
	TotalRequests    int64   `json:"total_requests"`
	TotalCreditsUsed float64 `json:"total_credits_used"`
	AvgDurationMs    float64 `json:"avg_duration_ms"`
}

// CreditsService tracks simulated credit consumption in memory for the
// life of the process. There is no balance to deduct from: generation
// is mocked, so the ledger exists for usage reporting only.
type CreditsService struct {
	mu   sync.Mutex
	logs []UsageLog
}

func NewCreditsService() *CreditsService {
	return &CreditsService{}
}

// CalculateCredits returns the credit cost for a generation scope.
func CalculateCredits(scope string) float64 {
	switch scope {
	case "section":
		return CreditsSectionGeneration
	case "full":
		return CreditsFullRegeneration
	default:
		return CreditsInitialGeneration
	}
}

// CalculateCredits returns the credit cost for a generation scope.
func (s *CreditsService) CalculateCredits(scope string) float64 {
	return CalculateCredits(scope)
}

// LogUsage appends one usage record to the ledger.
func (s *CreditsService) LogUsage(log UsageLog) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if log.CreatedAt.IsZero() {
		log.CreatedAt = time.Now()
	}
	s.logs = append(s.logs, log)
}

// GetUsageStats aggregates usage for one project. A zero time bound is
// ignored.
func (s *CreditsService) GetUsageStats(projectID string, from, to time.Time) UsageStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	var stats UsageStats
	var totalDuration int64
	for _, log := range s.logs {
		if log.ProjectID != projectID {
			continue
		}
		if !from.IsZero() && log.CreatedAt.Before(from) {
			continue
		}
		if !to.IsZero() && log.CreatedAt.After(to) {
			continue
		}
		stats.TotalRequests++
		stats.TotalCreditsUsed += log.CreditsCharged
		totalDuration += log.DurationMs
	}
	if stats.TotalRequests > 0 {
		stats.AvgDurationMs = float64(totalDuration) / float64(stats.TotalRequests)
	}
	return stats
}

// GetUsageHistory returns a copy of the project's usage records,
// newest first.
func (s *CreditsService) GetUsageHistory(projectID string) []UsageLog {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []UsageLog
	for i := len(s.logs) - 1; i >= 0; i-- {
		if s.logs[i].ProjectID == projectID {
			out = append(out, s.logs[i])
		}
	}
	return out
}
