// If you are AI: This file aggregates probe results and renders a plain-text summary.

package probe

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// Report collects the results of a probe run.
type Report struct {
	Results []Result
}

// Failed reports whether any required probe did not succeed.
func (r *Report) Failed() bool {
	for _, res := range r.Results {
		if res.Required && !res.OK() {
			return true
		}
	}
	return false
}

// Counts returns the number of passed, failed-required, and failed-optional probes.
func (r *Report) Counts() (passed, failed, warned int) {
	for _, res := range r.Results {
		switch {
		case res.OK():
			passed++
		case res.Required:
			failed++
		default:
			warned++
		}
	}
	return passed, failed, warned
}

// Write renders one line per result followed by a summary line.
func (r *Report) Write(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, res := range r.Results {
		verdict := "PASS"
		switch {
		case res.OK():
		case res.Required:
			verdict = "FAIL"
		default:
			verdict = "WARN"
		}

		detail := fmt.Sprintf("%d", res.Status)
		if res.Err != nil {
			detail = res.Err.Error()
		} else if !res.OK() {
			detail = fmt.Sprintf("%d (expected %d)", res.Status, res.ExpectedStatus)
		}

		if _, err := fmt.Fprintf(tw, "%s\tGET %s\t%s\t%s\n", verdict, res.URL(), detail, res.Description); err != nil {
			return err
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	passed, failed, warned := r.Counts()
	_, err := fmt.Fprintf(w, "%d probes: %d passed, %d failed, %d warnings\n", len(r.Results), passed, failed, warned)
	return err
}
