package doctor

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/watercooler-labs/toggl-cli/internal/ui/styles"
)

// ErrIssuesFound is returned by Run when an error-level issue remains.
var ErrIssuesFound = errors.New("doctor found problems")

// Run performs all checks, prints the report to w and optionally fixes
// what can be fixed.
func Run(ctx context.Context, env Env, w io.Writer, fix bool) error {
	report := Check(ctx, env)
	printReport(w, report)

	fixable := report.Fixable()
	if len(fixable) > 0 {
		if !fix {
			fmt.Fprintln(w, "\nRun 'toggl doctor --fix' to repair.")
		} else {
			fmt.Fprintln(w, "\nFixing:")
			fixed, err := Fix(w, fixable)
			fmt.Fprintf(w, "%s %d issue(s) fixed\n", styles.OK(), fixed)
			if err != nil {
				return err
			}
		}
	}

	if report.HasErrors() {
		return ErrIssuesFound
	}
	return nil
}

// printReport prints passed checks and issues grouped by category.
func printReport(w io.Writer, r Report) {
	passed := make(map[IssueCategory][]Passed)
	for _, p := range r.Passed {
		passed[p.Category] = append(passed[p.Category], p)
	}
	issues := make(map[IssueCategory][]Issue)
	for _, i := range r.Issues {
		issues[i.Category] = append(issues[i.Category], i)
	}

	for _, cat := range categoryOrder {
		if len(passed[cat]) == 0 && len(issues[cat]) == 0 {
			continue
		}
		fmt.Fprintf(w, "%s\n", styles.Bold.Render(categoryNames[cat]))
		for _, p := range passed[cat] {
			fmt.Fprintf(w, "  %s %s\n", styles.OK(), p.Message)
		}
		for _, i := range issues[cat] {
			symbol := styles.Warn()
			if i.Severity == SeverityError {
				symbol = styles.Fail()
			}
			fmt.Fprintf(w, "  %s %s: %s\n", symbol, i.Key, i.Description)
			if i.Hint != "" {
				fmt.Fprintf(w, "    %s\n", styles.InfoStyle.Render(i.Hint))
			}
		}
	}

	if len(r.Issues) == 0 {
		fmt.Fprintf(w, "\n%s No issues found\n", styles.OK())
	} else {
		fmt.Fprintf(w, "\nFound %d issue(s)\n", len(r.Issues))
	}
}
