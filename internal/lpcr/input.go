package lpcr

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"lpcr-submit/internal/common/errors"
	"lpcr-submit/internal/common/logger"
)

// applicantSchema enforces the identity fields a report request cannot work
// without. Everything else is passed through untouched.
var applicantSchema = map[string]interface{}{
	"type":     "object",
	"required": []interface{}{"firstName", "lastName", "ssn"},
	"properties": map[string]interface{}{
		"firstName": map[string]interface{}{"type": "string", "minLength": 1},
		"lastName":  map[string]interface{}{"type": "string", "minLength": 1},
		"ssn":       map[string]interface{}{"type": "string", "minLength": 4},
		"birthDate": map[string]interface{}{"type": "string"},
		"street1":   map[string]interface{}{"type": "string"},
		"city":      map[string]interface{}{"type": "string"},
		"state":     map[string]interface{}{"type": "string"},
		"zip":       map[string]interface{}{"type": "string"},
		"phone":     map[string]interface{}{"type": "string"},
	},
}

// LoadApplicants reads the input file, requires a top-level JSON array and
// validates each record against the applicant schema. In strict mode an
// invalid record fails the run; otherwise it is flagged and submitted anyway.
func LoadApplicants(path string, strict bool, log logger.Logger) ([]Applicant, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewInputUnreadableError(path, err)
	}

	var top interface{}
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, errors.NewInputUnreadableError(path, err)
	}
	records, ok := top.([]interface{})
	if !ok {
		return nil, errors.NewInputNotArrayError(path)
	}

	schemaLoader := gojsonschema.NewGoLoader(applicantSchema)

	var applicants []Applicant
	if err := json.Unmarshal(data, &applicants); err != nil {
		return nil, errors.NewInputUnreadableError(path, err)
	}

	for idx, record := range records {
		result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewGoLoader(record))
		if err != nil {
			return nil, errors.NewApplicantInvalidError(idx, fmt.Sprintf("validation error: %v", err))
		}
		if result.Valid() {
			continue
		}

		descs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			descs[i] = desc.String()
		}
		details := strings.Join(descs, "; ")

		if strict {
			return nil, errors.NewApplicantInvalidError(idx, details)
		}
		log.Warn("applicant record failed validation, submitting anyway", map[string]interface{}{
			"index":  idx,
			"issues": details,
		})
	}

	return applicants, nil
}
