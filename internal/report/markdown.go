package report

import (
	"fmt"
	"strings"

	"goab/domain/analysis"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// Markdown produces the same summary as Render, formatted as a markdown
// document suitable for pasting into an experiment log.
func Markdown(r *analysis.Result) string {
	var b strings.Builder

	b.WriteString("# A/B Test Analysis\n\n")

	verdict := "not significant"
	if r.Significant {
		verdict = "significant"
	}
	fmt.Fprintf(&b, "**Verdict:** %s at alpha %.3f (p=%.4f)\n\n", verdict, r.Alpha, r.PValue)

	b.WriteString("| Metric | Control | Test |\n")
	b.WriteString("| --- | --- | --- |\n")
	switch r.Kind {
	case analysis.KindWelchT:
		fmt.Fprintf(&b, "| Mean | %.4f | %.4f |\n", r.ControlEstimate, r.TestEstimate)
		fmt.Fprintf(&b, "| Std dev | %.4f | %.4f |\n", r.ControlStdDev, r.TestStdDev)
		fmt.Fprintf(&b, "| N | %d | %d |\n\n", r.ControlSize, r.TestSize)
		fmt.Fprintf(&b, "- t-statistic: %.4f (df %.2f)\n", r.Statistic, r.DegreesOfFreedom)
		fmt.Fprintf(&b, "- Cohen's d: %.3f (%s effect)\n", r.CohensD, effectLabel(r.CohensD))
	default:
		fmt.Fprintf(&b, "| Rate | %.4f | %.4f |\n", r.ControlEstimate, r.TestEstimate)
		fmt.Fprintf(&b, "| N | %d | %d |\n\n", r.ControlSize, r.TestSize)
		fmt.Fprintf(&b, "- z-statistic: %.4f\n", r.Statistic)
		fmt.Fprintf(&b, "- Observed power: %.3f\n", r.Power)
	}
	fmt.Fprintf(&b, "- Difference: %.4f (%s)\n", r.Difference, liftLabel(r))
	fmt.Fprintf(&b, "- %.0f%% CI: [%.4f, %.4f]\n\n", r.ConfidenceLevel(),
		r.ConfidenceInterval.Lower, r.ConfidenceInterval.Upper)

	fmt.Fprintf(&b, "%s\n", r.Interpretation)
	return b.String()
}

// HTML renders the markdown summary to HTML.
func HTML(r *analysis.Result) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	doc := p.Parse([]byte(Markdown(r)))
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return markdown.Render(doc, renderer)
}
