package lpcr

import (
	"encoding/json"
	"os"

	"lpcr-submit/internal/common/errors"
)

// WriteResults writes the result set as an indented JSON array, one entry per
// input applicant in input order.
func WriteResults(path string, results ResultSet) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return errors.NewOutputUnwritableError(path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.NewOutputUnwritableError(path, err)
	}
	return nil
}
