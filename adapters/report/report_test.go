package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gocausal/domain/core"
	"gocausal/domain/stats"
)

func sampleSummary() Summary {
	return Summary{
		RunID:      core.RunID("run-1"),
		Scenario:   "confounded",
		Seed:       42,
		Population: 20000,
		TrueATE:    5,
		DiffMeans: &stats.ATEEstimate{
			Estimate: 16.2, StdErr: 0.2, TStatistic: 81, PValue: 0,
			DF: 19998, CI: stats.Interval{Lower: 15.8, Upper: 16.6, Level: 0.95},
			TreatedN: 10000, ControlN: 10000, TreatedMean: 108, ControlMean: 92,
		},
		Naive: &stats.RegressionFit{
			Coefficients: []stats.Coefficient{
				{Name: stats.ColIntercept, Value: 92},
				{Name: stats.ColTreatment, Value: 16.2, StdErr: 0.2, TStatistic: 81},
			},
			Residual: 10.1, DF: 19998, N: 20000,
		},
		Adjusted: &stats.RegressionFit{
			Coefficients: []stats.Coefficient{
				{Name: stats.ColIntercept, Value: 100},
				{Name: stats.ColTreatment, Value: 5.1, StdErr: 0.1, TStatistic: 51},
				{Name: stats.ColCovariate, Value: 9.9, StdErr: 0.05, TStatistic: 198},
			},
			Residual: 5.0, DF: 19997, N: 20000,
		},
		Notes:       []string{"naive estimate absorbs the covariate"},
		GeneratedAt: core.Now(),
	}
}

func TestMarkdown_Sections(t *testing.T) {
	md := Markdown(sampleSummary())

	for _, want := range []string{
		"# Experiment confounded",
		"## Difference of means",
		"## Naive regression",
		"## Adjusted regression",
		"## Notes",
		"covariate",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("Markdown missing %q:\n%s", want, md)
		}
	}
}

func TestHTML_CompletePage(t *testing.T) {
	out := string(HTML(sampleSummary()))
	if !strings.Contains(out, "<html") {
		t.Error("Expected a complete HTML page")
	}
	if !strings.Contains(out, "<table>") {
		t.Error("Expected rendered tables in HTML output")
	}
}

func TestWriteFiles(t *testing.T) {
	dir := t.TempDir()
	if err := WriteFiles(sampleSummary(), dir); err != nil {
		t.Fatalf("WriteFiles failed: %v", err)
	}

	for _, name := range []string{"confounded.md", "confounded.html"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("Expected %s to exist: %v", name, err)
		}
	}
}
