// Package compare diffs the result files produced by two submission runs
// against different environments. Entries are matched by applicant name,
// keyed lists (tradelines, factors) by their natural key, and ordering
// differences are ignored throughout.
package compare

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

// Scope selects how much of each result entry is compared.
type Scope string

const (
	// ScopeReport compares only the report object inside the response body.
	ScopeReport Scope = "report"
	// ScopeFull compares the entire result entry.
	ScopeFull Scope = "full"
)

// Difference is one divergence between the two files for one applicant.
type Difference struct {
	Applicant string
	Path      string
	Kind      string
	ValueA    string
	ValueB    string
}

// Report is the outcome of comparing two result files.
type Report struct {
	Differences []Difference
	OnlyInA     []string
	OnlyInB     []string
	Matched     int
}

// LoadResultFile reads a submission output file as generic JSON entries.
func LoadResultFile(path string) ([]map[string]interface{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	var entries []map[string]interface{}
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return entries, nil
}

// Compare matches entries across the two files by applicant first+last name
// and deep-compares the scoped document of each matched pair.
func Compare(entriesA, entriesB []map[string]interface{}, scope Scope) Report {
	docsA := indexByApplicant(entriesA, scope)
	docsB := indexByApplicant(entriesB, scope)

	var report Report
	for key, docA := range docsA {
		docB, ok := docsB[key]
		if !ok {
			report.OnlyInA = append(report.OnlyInA, key)
			continue
		}
		report.Matched++
		diffValue(key, "", docA, docB, &report.Differences)
	}
	for key := range docsB {
		if _, ok := docsA[key]; !ok {
			report.OnlyInB = append(report.OnlyInB, key)
		}
	}

	sort.Strings(report.OnlyInA)
	sort.Strings(report.OnlyInB)
	sort.Slice(report.Differences, func(i, j int) bool {
		if report.Differences[i].Applicant != report.Differences[j].Applicant {
			return report.Differences[i].Applicant < report.Differences[j].Applicant
		}
		return report.Differences[i].Path < report.Differences[j].Path
	})
	return report
}

func indexByApplicant(entries []map[string]interface{}, scope Scope) map[string]interface{} {
	out := make(map[string]interface{}, len(entries))
	for _, entry := range entries {
		out[applicantKey(entry)] = extractDoc(entry, scope)
	}
	return out
}

// applicantKey matches entries by the top-level applicant echo, falling back
// to the applicant object inside the report body.
func applicantKey(entry map[string]interface{}) string {
	if applicant, ok := entry["applicant"].(map[string]interface{}); ok {
		first, _ := applicant["firstName"].(string)
		last, _ := applicant["lastName"].(string)
		if first != "" || last != "" {
			return first + "_" + last
		}
	}
	if report, ok := reportBody(entry).(map[string]interface{}); ok {
		if applicant, ok := report["applicant"].(map[string]interface{}); ok {
			first, _ := applicant["firstName"].(string)
			last, _ := applicant["lastName"].(string)
			if first != "" || last != "" {
				return first + "_" + last
			}
		}
	}
	return "UNKNOWN_UNKNOWN"
}

func extractDoc(entry map[string]interface{}, scope Scope) interface{} {
	if scope == ScopeFull {
		return entry
	}
	if report := reportBody(entry); report != nil {
		return report
	}
	return map[string]interface{}{}
}

// reportBody digs out response.body[0].report, the shape the LPCR service
// answers with.
func reportBody(entry map[string]interface{}) interface{} {
	response, ok := entry["response"].(map[string]interface{})
	if !ok {
		return nil
	}
	body, ok := response["body"].([]interface{})
	if !ok || len(body) == 0 {
		return nil
	}
	first, ok := body[0].(map[string]interface{})
	if !ok {
		return nil
	}
	return first["report"]
}

func diffValue(applicant, path string, a, b interface{}, out *[]Difference) {
	mapA, okA := a.(map[string]interface{})
	mapB, okB := b.(map[string]interface{})
	if okA && okB {
		diffMaps(applicant, path, mapA, mapB, out)
		return
	}

	listA, okA := a.([]interface{})
	listB, okB := b.([]interface{})
	if okA && okB {
		diffLists(applicant, path, listA, listB, out)
		return
	}

	if !jsonEqual(a, b) {
		*out = append(*out, Difference{
			Applicant: applicant,
			Path:      path,
			Kind:      "value",
			ValueA:    canonical(a),
			ValueB:    canonical(b),
		})
	}
}

func diffMaps(applicant, path string, a, b map[string]interface{}, out *[]Difference) {
	for key, valA := range a {
		childPath := joinPath(path, key)
		valB, ok := b[key]
		if !ok {
			*out = append(*out, Difference{
				Applicant: applicant, Path: childPath, Kind: "missing_in_b", ValueA: canonical(valA),
			})
			continue
		}
		diffValue(applicant, childPath, valA, valB, out)
	}
	for key, valB := range b {
		if _, ok := a[key]; !ok {
			*out = append(*out, Difference{
				Applicant: applicant, Path: joinPath(path, key), Kind: "missing_in_a", ValueB: canonical(valB),
			})
		}
	}
}

// diffLists compares keyed lists item by item and everything else as a
// multiset, so reordering alone never counts as a difference.
func diffLists(applicant, path string, a, b []interface{}, out *[]Difference) {
	keyField := detectKeyField(path, a, b)
	if keyField == "" {
		if !multisetEqual(a, b) {
			*out = append(*out, Difference{
				Applicant: applicant, Path: path, Kind: "list_mismatch",
				ValueA: canonical(a), ValueB: canonical(b),
			})
		}
		return
	}

	itemsA := mapByKey(a, keyField)
	itemsB := mapByKey(b, keyField)
	for key, itemA := range itemsA {
		childPath := fmt.Sprintf("%s[%s=%s]", path, keyField, key)
		itemB, ok := itemsB[key]
		if !ok {
			*out = append(*out, Difference{
				Applicant: applicant, Path: childPath, Kind: "missing_in_b", ValueA: canonical(itemA),
			})
			continue
		}
		diffValue(applicant, childPath, itemA, itemB, out)
	}
	for key, itemB := range itemsB {
		if _, ok := itemsA[key]; !ok {
			*out = append(*out, Difference{
				Applicant: applicant, Path: fmt.Sprintf("%s[%s=%s]", path, keyField, key),
				Kind: "missing_in_a", ValueB: canonical(itemB),
			})
		}
	}
}

// detectKeyField picks the natural key for a list of objects: accountNumber
// for tradelines and collections, code for model factors. When the path gives
// no hint, whichever key the majority of items actually carry wins.
func detectKeyField(path string, a, b []interface{}) string {
	if strings.Contains(path, "tradeLines") || strings.Contains(path, "collections") {
		return "accountNumber"
	}
	if strings.Contains(path, "factors") {
		return "code"
	}

	accountCount, codeCount := 0, 0
	for _, item := range append(append([]interface{}{}, a...), b...) {
		obj, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		if _, ok := obj["accountNumber"]; ok {
			accountCount++
		}
		if _, ok := obj["code"]; ok {
			codeCount++
		}
	}
	if accountCount >= codeCount && accountCount > 0 {
		return "accountNumber"
	}
	if codeCount > 0 {
		return "code"
	}
	return ""
}

func mapByKey(items []interface{}, keyField string) map[string]interface{} {
	out := make(map[string]interface{}, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		key, ok := obj[keyField]
		if !ok {
			continue
		}
		out[fmt.Sprintf("%v", key)] = obj
	}
	return out
}

func multisetEqual(a, b []interface{}) bool {
	if len(a) != len(b) {
		return false
	}
	countsA := make(map[string]int, len(a))
	for _, item := range a {
		countsA[canonical(item)]++
	}
	for _, item := range b {
		key := canonical(item)
		countsA[key]--
		if countsA[key] < 0 {
			return false
		}
	}
	return true
}

func jsonEqual(a, b interface{}) bool {
	return canonical(a) == canonical(b)
}

// canonical renders a value as deterministic JSON; json.Marshal sorts map
// keys, which is all the canonicalization comparison needs.
func canonical(v interface{}) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}

func joinPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}
