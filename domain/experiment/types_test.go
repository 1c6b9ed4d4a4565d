package experiment

import (
	"testing"

	"goab/domain/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProportionSample_Validate(t *testing.T) {
	tests := []struct {
		name    string
		sample  ProportionSample
		wantErr error
	}{
		{
			name:   "valid sample",
			sample: ProportionSample{Conversions: 120, Visitors: 2400},
		},
		{
			name:   "zero conversions is valid",
			sample: ProportionSample{Conversions: 0, Visitors: 100},
		},
		{
			name:   "all visitors converted is valid",
			sample: ProportionSample{Conversions: 100, Visitors: 100},
		},
		{
			name:    "zero visitors",
			sample:  ProportionSample{Conversions: 0, Visitors: 0},
			wantErr: core.ErrZeroVisitors,
		},
		{
			name:    "negative visitors",
			sample:  ProportionSample{Conversions: 0, Visitors: -5},
			wantErr: core.ErrZeroVisitors,
		},
		{
			name:    "negative conversions",
			sample:  ProportionSample{Conversions: -1, Visitors: 100},
			wantErr: core.ErrNegativeCount,
		},
		{
			name:    "conversions exceed visitors",
			sample:  ProportionSample{Conversions: 101, Visitors: 100},
			wantErr: core.ErrConversionsExceed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.sample.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, core.IsInvalidInput(err))
		})
	}
}

func TestProportionSample_Rate(t *testing.T) {
	s := ProportionSample{Conversions: 150, Visitors: 2300}
	assert.InDelta(t, 0.0652, s.Rate(), 1e-4)
}

func TestContinuousSample_Validate(t *testing.T) {
	assert.ErrorIs(t, ContinuousSample(nil).Validate(), core.ErrSampleTooSmall)
	assert.ErrorIs(t, ContinuousSample{1.0}.Validate(), core.ErrSampleTooSmall)
	assert.NoError(t, ContinuousSample{1.0, 2.0}.Validate())
}

func TestTrial_Validate_NamesFailingArm(t *testing.T) {
	trial := ProportionTrial{
		Control: ProportionSample{Conversions: 10, Visitors: 100},
		Test:    ProportionSample{Conversions: 5, Visitors: 0},
	}
	err := trial.Validate()
	require.Error(t, err)
	assert.True(t, core.IsInvalidInput(err))
	assert.Contains(t, err.Error(), "test")

	ct := ContinuousTrial{Control: ContinuousSample{1}, Test: ContinuousSample{1, 2}}
	err = ct.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "control")
}
