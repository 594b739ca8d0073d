package onboarding

import (
	"strings"

	"rewardstracker/internal/metrics"
	"rewardstracker/internal/models"
)

// HealthySavingsThreshold is the savings rate, in percent, above which the
// dashboard flags savings as healthy.
const HealthySavingsThreshold = 20.0

// Dashboard is the final screen's view of a profile.
type Dashboard struct {
	FirstName      string                  `json:"firstName"`
	Profile        models.Profile          `json:"profile"`
	Metrics        metrics.DerivedMetrics  `json:"metrics"`
	Breakdown      []metrics.CategoryShare `json:"breakdown"`
	HealthySavings bool                    `json:"healthySavings"`
}

// BuildDashboard derives the dashboard of p. Nothing is cached.
func BuildDashboard(p models.Profile) Dashboard {
	m := metrics.Compute(p)
	return Dashboard{
		FirstName:      firstName(p.FullName),
		Profile:        p,
		Metrics:        m,
		Breakdown:      metrics.Breakdown(p),
		HealthySavings: m.SavingsRate > HealthySavingsThreshold,
	}
}

func firstName(fullName string) string {
	parts := strings.Fields(fullName)
	if len(parts) == 0 {
		return ""
	}
	return parts[0]
}
