package compare

import (
	"encoding/csv"
	"io"
)

// WriteCSV writes the report as CSV: one row per difference, then one row per
// applicant present on only one side.
func WriteCSV(w io.Writer, report Report) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"applicant", "path", "kind", "value_a", "value_b"}); err != nil {
		return err
	}
	for _, d := range report.Differences {
		if err := cw.Write([]string{d.Applicant, d.Path, d.Kind, d.ValueA, d.ValueB}); err != nil {
			return err
		}
	}
	for _, key := range report.OnlyInA {
		if err := cw.Write([]string{key, "", "only_in_a", "", ""}); err != nil {
			return err
		}
	}
	for _, key := range report.OnlyInB {
		if err := cw.Write([]string{key, "", "only_in_b", "", ""}); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
