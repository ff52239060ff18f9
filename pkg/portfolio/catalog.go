package portfolio

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownRiskLevel is returned for a risk level outside the catalog.
var ErrUnknownRiskLevel = errors.New("unknown risk level")

// Risk levels in ascending order of equity exposure.
const (
	RiskNone   = "none"
	RiskLow    = "low"
	RiskMedium = "medium"
	RiskHigh   = "high"
)

var riskLevels = []string{RiskNone, RiskLow, RiskMedium, RiskHigh}

var allocations = map[string]string{
	RiskNone:   "100% bonds (AGG), 0% equities (SPY)",
	RiskLow:    "60% bonds (AGG), 40% equities (SPY)",
	RiskMedium: "40% bonds (AGG), 60% equities (SPY)",
	RiskHigh:   "20% bonds (AGG), 80% equities (SPY)",
}

// Allocation returns the portfolio allocation for a risk level.
// The lookup is case-insensitive; there is no default.
func Allocation(level string) (string, error) {
	alloc, ok := allocations[strings.ToLower(level)]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownRiskLevel, level)
	}
	return alloc, nil
}

// Levels lists the catalog keys from lowest to highest risk.
func Levels() []string {
	out := make([]string, len(riskLevels))
	copy(out, riskLevels)
	return out
}
