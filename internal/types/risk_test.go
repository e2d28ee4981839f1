package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRiskTier(t *testing.T) {
	tests := []struct {
		input    string
		expected RiskTier
		wantErr  bool
	}{
		{"low", RiskLow, false},
		{"moderate", RiskModerate, false},
		{"high", RiskHigh, false},
		{"critical", RiskCritical, false},
		{"severe", 0, true},
		{"", 0, true},
		{"HIGH", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tier, err := ParseRiskTier(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, tier)
		})
	}
}

func TestRiskTierOrdering(t *testing.T) {
	assert.True(t, RiskLow < RiskModerate)
	assert.True(t, RiskModerate < RiskHigh)
	assert.True(t, RiskHigh < RiskCritical)
}

func TestMaxRiskTier(t *testing.T) {
	assert.Equal(t, RiskHigh, MaxRiskTier(RiskLow, RiskHigh))
	assert.Equal(t, RiskCritical, MaxRiskTier(RiskCritical, RiskModerate))
	assert.Equal(t, RiskLow, MaxRiskTier(RiskLow, RiskLow))
}

func TestRiskTierJSONRoundTrip(t *testing.T) {
	data, err := json.Marshal(RiskHigh)
	require.NoError(t, err)
	assert.Equal(t, `"high"`, string(data))

	var tier RiskTier
	require.NoError(t, json.Unmarshal(data, &tier))
	assert.Equal(t, RiskHigh, tier)
}

func TestRiskTierUnmarshalRejectsUnknownLiteral(t *testing.T) {
	var tier RiskTier
	err := json.Unmarshal([]byte(`"catastrophic"`), &tier)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "catastrophic")
}
