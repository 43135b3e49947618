// Package report renders an experiment summary as Markdown and, through
// gomarkdown, as standalone HTML.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"gocausal/domain/core"
	"gocausal/domain/stats"
)

// Summary is the renderable outcome of one experiment run
type Summary struct {
	RunID       core.RunID
	Scenario    string
	Seed        int64
	Population  int
	TrueATE     float64
	DiffMeans   *stats.ATEEstimate
	Naive       *stats.RegressionFit
	Adjusted    *stats.RegressionFit
	Notes       []string
	GeneratedAt core.Timestamp
}

// Markdown renders the summary as a Markdown document
func Markdown(s Summary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Experiment %s\n\n", s.Scenario)
	fmt.Fprintf(&b, "- Run: `%s`\n", s.RunID)
	fmt.Fprintf(&b, "- Seed: `%d`\n", s.Seed)
	fmt.Fprintf(&b, "- Population: %d\n", s.Population)
	fmt.Fprintf(&b, "- True ATE: %.4f\n\n", s.TrueATE)

	if s.DiffMeans != nil {
		est := s.DiffMeans
		b.WriteString("## Difference of means\n\n")
		fmt.Fprintf(&b, "| estimate | std err | t | p | 95%% CI |\n")
		fmt.Fprintf(&b, "|---|---|---|---|---|\n")
		fmt.Fprintf(&b, "| %.4f | %.4f | %.3f | %.4g | [%.4f, %.4f] |\n\n",
			est.Estimate, est.StdErr, est.TStatistic, est.PValue, est.CI.Lower, est.CI.Upper)
		fmt.Fprintf(&b, "Treated n=%d (mean %.3f), control n=%d (mean %.3f), df=%.0f.\n\n",
			est.TreatedN, est.TreatedMean, est.ControlN, est.ControlMean, est.DF)
	}

	writeFit := func(title string, fit *stats.RegressionFit) {
		if fit == nil {
			return
		}
		fmt.Fprintf(&b, "## %s\n\n", title)
		fmt.Fprintf(&b, "| term | coefficient | std err | t | p |\n")
		fmt.Fprintf(&b, "|---|---|---|---|---|\n")
		for _, c := range fit.Coefficients {
			fmt.Fprintf(&b, "| %s | %.4f | %.4f | %.3f | %.4g |\n",
				c.Name, c.Value, c.StdErr, c.TStatistic, c.PValue)
		}
		fmt.Fprintf(&b, "\nResidual std err %.4f on %d degrees of freedom (n=%d).\n\n",
			fit.Residual, fit.DF, fit.N)
	}
	writeFit("Naive regression (treatment only)", s.Naive)
	writeFit("Adjusted regression (treatment + covariate)", s.Adjusted)

	if len(s.Notes) > 0 {
		b.WriteString("## Notes\n\n")
		for _, n := range s.Notes {
			fmt.Fprintf(&b, "- %s\n", n)
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "Generated at %s.\n", s.GeneratedAt.Time().Format("2006-01-02 15:04:05 MST"))
	return b.String()
}

// HTML converts the Markdown rendering into a standalone HTML document
func HTML(s Summary) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.Tables)
	doc := p.Parse([]byte(Markdown(s)))
	renderer := html.NewRenderer(html.RendererOptions{
		Title: fmt.Sprintf("Experiment %s", s.Scenario),
		Flags: html.CompletePage,
	})
	return markdown.Render(doc, renderer)
}

// WriteFiles writes both renderings next to each other under outDir
func WriteFiles(s Summary, outDir string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating report directory: %w", err)
	}
	base := filepath.Join(outDir, s.Scenario)
	if err := os.WriteFile(base+".md", []byte(Markdown(s)), 0o644); err != nil {
		return fmt.Errorf("writing markdown report: %w", err)
	}
	if err := os.WriteFile(base+".html", HTML(s), 0o644); err != nil {
		return fmt.Errorf("writing html report: %w", err)
	}
	return nil
}
