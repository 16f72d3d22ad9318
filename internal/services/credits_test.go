package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateCredits(t *testing.T) {
	tests := []struct {
		name     string
		scope    string
		expected float64
	}{
		{name: "initial generation", scope: "", expected: 1.5},
		{name: "full regeneration", scope: "full", expected: 2.0},
		{name: "section regeneration", scope: "section", expected: 0.5},
		{name: "unknown scope falls back to initial", scope: "whatever", expected: 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CalculateCredits(tt.scope))
		})
	}
}

func TestUsageStats(t *testing.T) {
	svc := NewCreditsService()

	svc.LogUsage(UsageLog{ProjectID: "p1", Scope: "full", CreditsCharged: 2.0, DurationMs: 2000})
	svc.LogUsage(UsageLog{ProjectID: "p1", Scope: "section", CreditsCharged: 0.5, DurationMs: 1000})
	svc.LogUsage(UsageLog{ProjectID: "p2", Scope: "full", CreditsCharged: 2.0, DurationMs: 2000})

	stats := svc.GetUsageStats("p1", time.Time{}, time.Time{})
	assert.Equal(t, int64(2), stats.TotalRequests)
	assert.Equal(t, 2.5, stats.TotalCreditsUsed)
	assert.Equal(t, 1500.0, stats.AvgDurationMs)
}

func TestUsageStatsTimeBounds(t *testing.T) {
	svc := NewCreditsService()

	old := time.Now().Add(-time.Hour)
	svc.LogUsage(UsageLog{ProjectID: "p1", CreditsCharged: 1.5, CreatedAt: old})
	svc.LogUsage(UsageLog{ProjectID: "p1", CreditsCharged: 2.0})

	stats := svc.GetUsageStats("p1", time.Now().Add(-time.Minute), time.Time{})
	assert.Equal(t, int64(1), stats.TotalRequests)
	assert.Equal(t, 2.0, stats.TotalCreditsUsed)
}

func TestUsageHistoryNewestFirst(t *testing.T) {
	svc := NewCreditsService()

	svc.LogUsage(UsageLog{ProjectID: "p1", Scope: "initial"})
	svc.LogUsage(UsageLog{ProjectID: "p2", Scope: "full"})
	svc.LogUsage(UsageLog{ProjectID: "p1", Scope: "section"})

	history := svc.GetUsageHistory("p1")
	require.Len(t, history, 2)
	assert.Equal(t, "section", history[0].Scope)
	assert.Equal(t, "initial", history[1].Scope)
}
