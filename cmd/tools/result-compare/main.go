// result-compare diffs the output files of two submission runs, typically the
// same applicants submitted to two environments, and writes the differences
// as CSV.
package main

import (
	"flag"
	"fmt"
	"os"

	"lpcr-submit/internal/compare"
)

func main() {
	envA := flag.String("env-a", "", "Path to the first result file")
	envB := flag.String("env-b", "", "Path to the second result file")
	out := flag.String("out", "", "Path to write the differences CSV")
	scope := flag.String("scope", "report", "Compare scope: report (response body report only) or full (entire entry)")

	flag.Parse()

	if *envA == "" || *envB == "" || *out == "" {
		fmt.Fprintln(os.Stderr, "Error: -env-a, -env-b and -out are required")
		flag.Usage()
		os.Exit(1)
	}

	var cmpScope compare.Scope
	switch *scope {
	case "report":
		cmpScope = compare.ScopeReport
	case "full":
		cmpScope = compare.ScopeFull
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown scope %q (use report or full)\n", *scope)
		os.Exit(1)
	}

	entriesA, err := compare.LoadResultFile(*envA)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	entriesB, err := compare.LoadResultFile(*envB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	report := compare.Compare(entriesA, entriesB, cmpScope)

	f, err := os.Create(*out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", *out, err)
		os.Exit(2)
	}
	defer f.Close()

	if err := compare.WriteCSV(f, report); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing CSV: %v\n", err)
		os.Exit(2)
	}

	fmt.Printf("Compared %d matched applicants: %d differences, %d only in A, %d only in B\n",
		report.Matched, len(report.Differences), len(report.OnlyInA), len(report.OnlyInB))
	fmt.Printf("Wrote %s\n", *out)
}
