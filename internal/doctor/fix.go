package doctor

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Fix applies the fix action of every fixable issue and returns how many
// were fixed. Failures are collected and returned together.
func Fix(w io.Writer, issues []Issue) (int, error) {
	var errs []error
	fixed := 0
	for _, issue := range issues {
		switch issue.FixAction {
		case "remove":
			if err := os.Remove(issue.Key); err != nil && !errors.Is(err, os.ErrNotExist) {
				errs = append(errs, fmt.Errorf("remove %s: %w", issue.Key, err))
				continue
			}
			fmt.Fprintf(w, "  removed %s\n", issue.Key)
			fixed++
		case "":
		default:
			errs = append(errs, fmt.Errorf("unknown fix action %q for %s", issue.FixAction, issue.Key))
		}
	}
	return fixed, errors.Join(errs...)
}
