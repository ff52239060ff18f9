package portfolio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocation(t *testing.T) {
	tests := map[string]string{
		"none":   "100% bonds (AGG), 0% equities (SPY)",
		"low":    "60% bonds (AGG), 40% equities (SPY)",
		"Medium": "40% bonds (AGG), 60% equities (SPY)",
		"HIGH":   "20% bonds (AGG), 80% equities (SPY)",
	}
	for level, want := range tests {
		t.Run(level, func(t *testing.T) {
			got, err := Allocation(level)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}

	_, err := Allocation("extreme")
	assert.ErrorIs(t, err, ErrUnknownRiskLevel)
}

func TestLevels(t *testing.T) {
	levels := Levels()
	assert.Equal(t, []string{"none", "low", "medium", "high"}, levels)

	levels[0] = "mutated"
	assert.Equal(t, "none", Levels()[0])
}
