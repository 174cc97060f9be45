package lpcr

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	stderrors "lpcr-submit/internal/common/errors"
	"lpcr-submit/internal/common/logger"
)

func writeTempJSON(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "applicants.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadApplicants_Valid(t *testing.T) {
	path := writeTempJSON(t, `[
		{"firstName": "Jane", "middleName": "Q", "lastName": "Doe", "ssn": "123456789",
		 "street1": "1 Main St", "city": "Austin", "state": "TX", "zip": "78701",
		 "birthDate": "1990-01-02", "phone": "5125550100"},
		{"firstName": "John", "lastName": "Smith", "ssn": "987654321"}
	]`)

	applicants, err := LoadApplicants(path, true, logger.NewTestLogger(t))
	require.NoError(t, err)
	require.Len(t, applicants, 2)
	assert.Equal(t, "Jane", applicants[0].FirstName)
	assert.Equal(t, "Austin", applicants[0].City)
	assert.Equal(t, "987654321", applicants[1].SSN)
}

func TestLoadApplicants_UnknownFieldsPreserved(t *testing.T) {
	path := writeTempJSON(t, `[
		{"firstName": "Jane", "lastName": "Doe", "ssn": "123456789", "suffix": "Jr", "priorAddress": {"city": "Dallas"}}
	]`)

	applicants, err := LoadApplicants(path, true, logger.NewTestLogger(t))
	require.NoError(t, err)
	require.Len(t, applicants, 1)
	assert.Equal(t, "Jr", applicants[0].Extra["suffix"])

	// Round-trip keeps the extra fields on the wire.
	data, err := json.Marshal(applicants[0])
	require.NoError(t, err)
	assert.Contains(t, string(data), `"suffix":"Jr"`)
	assert.Contains(t, string(data), `"priorAddress"`)
}

func TestLoadApplicants_MissingFile(t *testing.T) {
	_, err := LoadApplicants(filepath.Join(t.TempDir(), "missing.json"), false, logger.NewTestLogger(t))
	require.Error(t, err)

	var stdErr *stderrors.StandardError
	require.True(t, errors.As(err, &stdErr))
	assert.Equal(t, stderrors.ErrCodeInputUnreadable, stdErr.Code)
}

func TestLoadApplicants_NotAnArray(t *testing.T) {
	path := writeTempJSON(t, `{"firstName": "Jane"}`)

	_, err := LoadApplicants(path, false, logger.NewTestLogger(t))
	require.Error(t, err)

	var stdErr *stderrors.StandardError
	require.True(t, errors.As(err, &stdErr))
	assert.Equal(t, stderrors.ErrCodeInputNotArray, stdErr.Code)
}

func TestLoadApplicants_StrictRejectsMissingSSN(t *testing.T) {
	path := writeTempJSON(t, `[{"firstName": "Jane", "lastName": "Doe"}]`)

	_, err := LoadApplicants(path, true, logger.NewTestLogger(t))
	require.Error(t, err)

	var stdErr *stderrors.StandardError
	require.True(t, errors.As(err, &stdErr))
	assert.Equal(t, stderrors.ErrCodeApplicantInvalid, stdErr.Code)
	assert.Contains(t, stdErr.Details, "ssn")
}

func TestLoadApplicants_FlagModeSubmitsAnyway(t *testing.T) {
	path := writeTempJSON(t, `[{"firstName": "Jane", "lastName": "Doe"}]`)

	applicants, err := LoadApplicants(path, false, logger.NewTestLogger(t))
	require.NoError(t, err)
	require.Len(t, applicants, 1)
	assert.Equal(t, "Jane", applicants[0].FirstName)
}
