package report

import (
	"strings"
	"testing"

	"goab/domain/analysis"
	"goab/domain/experiment"
	"goab/internal/stats"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func proportionResult(t *testing.T) *analysis.Result {
	t.Helper()
	res, err := stats.AnalyzeProportions(
		experiment.ProportionSample{Conversions: 120, Visitors: 2400},
		experiment.ProportionSample{Conversions: 150, Visitors: 2300},
		0.05,
	)
	require.NoError(t, err)
	return res
}

func continuousResult(t *testing.T) *analysis.Result {
	t.Helper()
	res, err := stats.AnalyzeContinuous(
		experiment.ContinuousSample{10, 12, 11, 13, 9},
		experiment.ContinuousSample{15, 14, 16, 13, 17},
		0.05,
	)
	require.NoError(t, err)
	return res
}

func TestRender_Proportion(t *testing.T) {
	out := Render(proportionResult(t))

	assert.Contains(t, out, "A/B Test Analysis Summary")
	assert.Contains(t, out, "- Control: 0.0500 (5.00%)")
	assert.Contains(t, out, "- Test: 0.0652 (6.52%)")
	assert.Contains(t, out, "+30.43%")
	assert.Contains(t, out, "Z-statistic: 2.2412")
	assert.Contains(t, out, "Confidence Interval (95%)")
	assert.Contains(t, out, "- Control: 2,400 visitors")
	assert.Contains(t, out, "significantly better")
}

func TestRender_Continuous(t *testing.T) {
	out := Render(continuousResult(t))

	assert.Contains(t, out, "Group Means:")
	assert.Contains(t, out, "T-statistic: 4.0000")
	assert.Contains(t, out, "Degrees of Freedom: 8.00")
	assert.Contains(t, out, "Cohen's d: 2.530 (large effect)")
	assert.Contains(t, out, "significantly higher")
}

// Rendering must be idempotent and must not mutate the result.
func TestRender_PureAndIdempotent(t *testing.T) {
	res := proportionResult(t)
	before := *res

	first := Render(res)
	second := Render(res)

	assert.Equal(t, first, second)
	assert.Equal(t, before, *res)
}

func TestRender_UndefinedLift(t *testing.T) {
	res, err := stats.AnalyzeProportions(
		experiment.ProportionSample{Conversions: 0, Visitors: 500},
		experiment.ProportionSample{Conversions: 25, Visitors: 500},
		0.05,
	)
	require.NoError(t, err)

	out := Render(res)
	assert.Contains(t, out, "relative lift undefined")
	assert.NotContains(t, out, "NaN")
}

func TestRenderSampleSize(t *testing.T) {
	res, err := stats.SampleSize(0.05, 0.01, 0.05, 0.80)
	require.NoError(t, err)

	out := RenderSampleSize(res)
	assert.Contains(t, out, "Baseline conversion rate: 5.00%")
	assert.Contains(t, out, "Expected test conversion rate: 6.00%")
	assert.Contains(t, out, "Required sample size per group: 8,155")
	assert.Contains(t, out, "Total required sample size: 16,310")
}

func TestMarkdownAndHTML(t *testing.T) {
	res := continuousResult(t)

	md := Markdown(res)
	assert.True(t, strings.HasPrefix(md, "# A/B Test Analysis"))
	assert.Contains(t, md, "**Verdict:** significant")
	assert.Contains(t, md, "| Mean | 11.0000 | 15.0000 |")

	page := string(HTML(res))
	assert.Contains(t, page, "<h1")
	assert.Contains(t, page, "<table>")
	assert.Contains(t, page, "15.0000")

	// Same purity contract as the text renderer.
	assert.Equal(t, md, Markdown(res))
}
