package compare

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(t *testing.T, first, last string, report map[string]interface{}) map[string]interface{} {
	t.Helper()
	raw, err := json.Marshal(map[string]interface{}{
		"applicant": map[string]interface{}{"firstName": first, "lastName": last},
		"response": map[string]interface{}{
			"status_code": 200,
			"body":        []interface{}{map[string]interface{}{"report": report}},
		},
	})
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func baseReport() map[string]interface{} {
	return map[string]interface{}{
		"score": 712,
		"tradeLines": []interface{}{
			map[string]interface{}{"accountNumber": "A1", "balance": 1200},
			map[string]interface{}{"accountNumber": "A2", "balance": 0},
		},
		"factors": []interface{}{
			map[string]interface{}{"code": "32", "description": "high utilization"},
		},
	}
}

func TestCompare_IdenticalModuloOrdering(t *testing.T) {
	reportA := baseReport()

	reportB := baseReport()
	// Same tradelines, reversed order.
	lines := reportB["tradeLines"].([]interface{})
	reportB["tradeLines"] = []interface{}{lines[1], lines[0]}

	result := Compare(
		[]map[string]interface{}{entry(t, "Jane", "Doe", reportA)},
		[]map[string]interface{}{entry(t, "Jane", "Doe", reportB)},
		ScopeReport,
	)

	assert.Empty(t, result.Differences)
	assert.Empty(t, result.OnlyInA)
	assert.Empty(t, result.OnlyInB)
	assert.Equal(t, 1, result.Matched)
}

func TestCompare_TradelineBalanceDiffers(t *testing.T) {
	reportB := baseReport()
	reportB["tradeLines"].([]interface{})[0].(map[string]interface{})["balance"] = 1500

	result := Compare(
		[]map[string]interface{}{entry(t, "Jane", "Doe", baseReport())},
		[]map[string]interface{}{entry(t, "Jane", "Doe", reportB)},
		ScopeReport,
	)

	require.Len(t, result.Differences, 1)
	d := result.Differences[0]
	assert.Equal(t, "Jane_Doe", d.Applicant)
	assert.Equal(t, "tradeLines[accountNumber=A1].balance", d.Path)
	assert.Equal(t, "value", d.Kind)
	assert.Equal(t, "1200", d.ValueA)
	assert.Equal(t, "1500", d.ValueB)
}

func TestCompare_FactorMatchedByCode(t *testing.T) {
	reportB := baseReport()
	reportB["factors"] = []interface{}{
		map[string]interface{}{"code": "32", "description": "utilization too high"},
	}

	result := Compare(
		[]map[string]interface{}{entry(t, "Jane", "Doe", baseReport())},
		[]map[string]interface{}{entry(t, "Jane", "Doe", reportB)},
		ScopeReport,
	)

	require.Len(t, result.Differences, 1)
	assert.Equal(t, "factors[code=32].description", result.Differences[0].Path)
}

func TestCompare_MissingApplicants(t *testing.T) {
	result := Compare(
		[]map[string]interface{}{
			entry(t, "Jane", "Doe", baseReport()),
			entry(t, "John", "Smith", baseReport()),
		},
		[]map[string]interface{}{
			entry(t, "Jane", "Doe", baseReport()),
			entry(t, "Maria", "Garcia", baseReport()),
		},
		ScopeReport,
	)

	assert.Empty(t, result.Differences)
	assert.Equal(t, []string{"John_Smith"}, result.OnlyInA)
	assert.Equal(t, []string{"Maria_Garcia"}, result.OnlyInB)
}

func TestCompare_MissingKeyInReport(t *testing.T) {
	reportB := baseReport()
	delete(reportB, "score")

	result := Compare(
		[]map[string]interface{}{entry(t, "Jane", "Doe", baseReport())},
		[]map[string]interface{}{entry(t, "Jane", "Doe", reportB)},
		ScopeReport,
	)

	require.Len(t, result.Differences, 1)
	assert.Equal(t, "score", result.Differences[0].Path)
	assert.Equal(t, "missing_in_b", result.Differences[0].Kind)
}

func TestCompare_FullScopeSeesEntryFields(t *testing.T) {
	entryA := entry(t, "Jane", "Doe", baseReport())
	entryB := entry(t, "Jane", "Doe", baseReport())
	entryB["error"] = "connection refused"

	result := Compare(
		[]map[string]interface{}{entryA},
		[]map[string]interface{}{entryB},
		ScopeFull,
	)

	require.NotEmpty(t, result.Differences)
	assert.Equal(t, "error", result.Differences[0].Path)
	assert.Equal(t, "missing_in_a", result.Differences[0].Kind)
}

func TestWriteCSV(t *testing.T) {
	report := Report{
		Differences: []Difference{
			{Applicant: "Jane_Doe", Path: "score", Kind: "value", ValueA: "712", ValueB: "698"},
		},
		OnlyInA: []string{"John_Smith"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, report))

	out := buf.String()
	assert.Contains(t, out, "applicant,path,kind,value_a,value_b")
	assert.Contains(t, out, "Jane_Doe,score,value,712,698")
	assert.Contains(t, out, "John_Smith,,only_in_a,,")
}
