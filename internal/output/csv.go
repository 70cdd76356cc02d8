package output

import (
	"encoding/csv"
	"io"
)

// CSVWriter writes the time series as CSV: a date column followed by one
// column per reported language.
type CSVWriter struct{}

// Write outputs the report as CSV.
func (w *CSVWriter) Write(report *LOCReport, options OutputOptions) error {
	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}
	return writeCSV(out, report)
}

func writeCSV(out io.Writer, report *LOCReport) error {
	writer := csv.NewWriter(out)

	headers := append([]string{"date"}, report.Languages...)
	if err := writer.Write(headers); err != nil {
		return err
	}

	for _, rec := range report.Records {
		row := make([]string, 0, len(report.Languages)+1)
		row = append(row, rec.Period)
		for _, n := range report.Row(rec) {
			row = append(row, itoa(n))
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
