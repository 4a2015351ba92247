package framework

import (
	"fmt"
	"io"
	"strings"
)

// PrintResults writes a summary of a test run: the counts of each outcome, followed by every
// failed example with its errors, and every pending example with its reason.
func PrintResults(w io.Writer, results Results) {
	passed, failed, pending := results.Counts()
	fmt.Fprintf(w, "%d examples: %d passed, %d failed, %d pending\n", len(results.Tests), passed, failed, pending)

	if len(results.Pending) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Pending:")
		for _, r := range results.Pending {
			fmt.Fprintf(w, "  %s (%s)\n", r.TestID, r.Reason)
		}
	}

	if len(results.Failures) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Failed:")
		for _, r := range results.Failures {
			fmt.Fprintf(w, "  %s\n", r.TestID)
			for _, err := range r.Errors {
				for _, line := range strings.Split(err.Error(), "\n") {
					fmt.Fprintf(w, "    %s\n", line)
				}
			}
		}
	}
}
