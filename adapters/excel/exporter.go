// Package excel exports a simulated population table to an xlsx workbook for
// inspection. Like the rendered figures, the workbook is a regenerated-per-run
// presentation artifact, not a data contract.
package excel

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"gocausal/domain/population"
	"gocausal/ports"
)

// Exporter writes population tables as xlsx workbooks
type Exporter struct {
	// SheetName defaults to "population"
	SheetName string
}

// NewExporter creates an xlsx exporter
func NewExporter() *Exporter {
	return &Exporter{SheetName: "population"}
}

var _ ports.TableExporterPort = (*Exporter)(nil)

// ExportPopulation writes one row per individual with the statically known
// columns (index, y0, y1, observed, group, treatment, covariate, confounder)
func (e *Exporter) ExportPopulation(ctx context.Context, pop population.Population, outPath string) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("creating export directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := e.SheetName
	if sheet == "" {
		sheet = "population"
	}
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	header := []interface{}{"index", "y0", "y1", "observed", "unit_effect", "treated", "group", "covariate", "confounder"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for i, ind := range pop.Individuals() {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{
			ind.Index,
			ind.Y0,
			ind.Y1,
			ind.Observed(),
			ind.UnitEffect(),
			ind.Treated,
			string(ind.Group),
			ind.Covariate,
			ind.Confounder,
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	if err := f.SaveAs(outPath); err != nil {
		return fmt.Errorf("saving workbook %s: %w", outPath, err)
	}
	return nil
}
