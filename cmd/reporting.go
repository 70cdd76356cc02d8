package cmd

import (
	"fmt"

	"github.com/BarthPaleologue/cloc-graph/internal/apperr"
	"github.com/BarthPaleologue/cloc-graph/internal/output"
)

func writeReport(report *output.LOCReport, format output.OutputFormat, path string) error {
	writer := output.NewReportWriter(format)
	if err := writer.Write(report, output.OutputOptions{Format: format, OutputPath: path}); err != nil {
		return apperr.New(apperr.FileSystem, fmt.Errorf("failed to write report: %w", err))
	}
	return nil
}

func writeChart(report *output.LOCReport, path string) error {
	writer := &output.ChartWriter{}
	if err := writer.Write(report, path); err != nil {
		return apperr.New(apperr.Chart, fmt.Errorf("failed to write chart: %w", err))
	}
	return nil
}
