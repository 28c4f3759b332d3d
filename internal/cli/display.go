package cli

import (
	"td/internal/todo"

	"github.com/mattn/go-runewidth"
)

// printListing renders the records at the given indices, one row per record:
// the record's original index, its serialized line, and a due column for
// records carrying a due tag. Lines are padded by display width so the due
// column stays aligned with wide runes in the body.
func printListing(o *IO, list *todo.List, indices []int) {
	if len(indices) == 0 {
		return
	}

	records := list.Records()
	lines := make([]string, len(indices))
	width := 0

	for i, idx := range indices {
		lines[i] = records[idx].String()

		if w := runewidth.StringWidth(lines[i]); w > width {
			width = w
		}
	}

	for i, idx := range indices {
		due, hasDue := records[idx].Due()
		if !hasDue {
			o.Printf("%d: %s\n", idx, lines[i])

			continue
		}

		o.Printf("%d: %s  [due %s]\n", idx, runewidth.FillRight(lines[i], width), due.Format(todo.DateLayout))
	}
}

func allIndices(n int) []int {
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}

	return indices
}
