package config

import (
	"testing"

	"goab/domain/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("AB_ALPHA", "")
	t.Setenv("AB_POWER", "")
	t.Setenv("AB_DATA_FILE", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.InDelta(t, 0.05, cfg.Alpha, 1e-12)
	assert.InDelta(t, 0.80, cfg.Power, 1e-12)
	assert.Empty(t, cfg.DataFile)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("AB_ALPHA", "0.01")
	t.Setenv("AB_POWER", "0.9")
	t.Setenv("AB_DATA_FILE", "revenue.csv")

	cfg, err := Load()
	require.NoError(t, err)
	assert.InDelta(t, 0.01, cfg.Alpha, 1e-12)
	assert.InDelta(t, 0.9, cfg.Power, 1e-12)
	assert.Equal(t, "revenue.csv", cfg.DataFile)
}

func TestLoad_RejectsOutOfRange(t *testing.T) {
	t.Setenv("AB_ALPHA", "1.5")
	_, err := Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrAlphaOutOfRange)

	t.Setenv("AB_ALPHA", "0.05")
	t.Setenv("AB_POWER", "not-a-number")
	_, err = Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrPowerOutOfRange)
}
