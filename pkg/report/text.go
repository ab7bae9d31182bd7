package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// WriteText writes the per-category report lines: inclusion and
// skip counts, followed by the ordinals whose answer key could not
// be parsed, when there are any.
func WriteText(w io.Writer, s *Summary) error {
	for _, c := range s.Categories {
		_, err := fmt.Fprintf(
			w,
			"%s -> key '%s': %d included, %d skipped (missing/invalid Correct Answer)\n",
			c.Name, c.Key, c.Included, c.Skipped,
		)
		if err != nil {
			return err
		}
		if len(c.MissingAnswer) == 0 {
			continue
		}
		_, err = fmt.Fprintf(
			w,
			"  Questions in '%s' with no recognizable Correct Answer line:\n    %s\n",
			c.Name, joinOrdinals(c.MissingAnswer),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteTotals writes the final artifact summary: the output path
// and one count line per category key, in table order.
func WriteTotals(w io.Writer, s *Summary, path string) error {
	if _, err := fmt.Fprintf(w, "\nWrote %s with:\n", path); err != nil {
		return err
	}
	for _, c := range s.Categories {
		_, err := fmt.Fprintf(w, "  %s: %d questions\n", c.Key, c.Included)
		if err != nil {
			return err
		}
	}
	return nil
}

func joinOrdinals(ordinals []int) string {
	parts := make([]string, len(ordinals))
	for i, n := range ordinals {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ", ")
}
