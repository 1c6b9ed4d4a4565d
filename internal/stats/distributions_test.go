package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistributions_NormalRoundTrip(t *testing.T) {
	d := NewDistributions()

	assert.InDelta(t, 0.5, d.NormalCDF(0), 1e-12)
	assert.InDelta(t, 0.975, d.NormalCDF(1.959964), 1e-5)
	assert.InDelta(t, 1.959964, d.ZCritical(0.05), 1e-5)
	assert.InDelta(t, 0.841621, d.NormalQuantile(0.8), 1e-5)

	for _, p := range []float64{0.01, 0.25, 0.5, 0.9, 0.999} {
		assert.InDelta(t, p, d.NormalCDF(d.NormalQuantile(p)), 1e-10)
	}
}

func TestDistributions_ZTestPValue(t *testing.T) {
	d := NewDistributions()

	assert.InDelta(t, 1.0, d.ZTestPValue(0), 1e-12)
	assert.InDelta(t, 0.05, d.ZTestPValue(1.959964), 1e-5)
	// Two-sided: sign must not matter.
	assert.InDelta(t, d.ZTestPValue(2.3), d.ZTestPValue(-2.3), 1e-12)
}

func TestDistributions_StudentsT(t *testing.T) {
	d := NewDistributions()

	// Classic table values.
	assert.InDelta(t, 2.306004, d.TCritical(0.05, 8), 1e-4)
	assert.InDelta(t, 2.776445, d.TCritical(0.05, 4), 1e-4)

	// Converges to the normal for large df.
	assert.InDelta(t, d.ZCritical(0.05), d.TCritical(0.05, 1e6), 1e-3)

	assert.InDelta(t, 1.0, d.TTestPValue(0, 10), 1e-12)
	assert.Equal(t, 1.0, d.TTestPValue(2.5, 0))

	p := d.TTestPValue(4.0, 8)
	assert.Greater(t, p, 0.003)
	assert.Less(t, p, 0.005)
}
