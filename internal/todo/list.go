package todo

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// List is an ordered collection of records loaded from one todo file.
// Indices are 0-based and match what the CLI displays.
type List struct {
	records []Record
}

// Load parses file content into a list, one record per non-empty line.
// A malformed line is fatal: the caller aborts before any write-back, so the
// file on disk is left unchanged.
func Load(content string) (*List, error) {
	list := &List{}

	for lineIdx, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		rec, err := ParseRecord(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineIdx+1, err)
		}

		list.records = append(list.records, rec)
	}

	return list, nil
}

// Add appends a record. No de-duplication.
func (l *List) Add(rec Record) {
	l.records = append(l.records, rec)
}

// Complete marks the record at index as done.
func (l *List) Complete(index int, today time.Time) error {
	if index < 0 || index >= len(l.records) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}

	done, err := l.records[index].MarkDone(today)
	if err != nil {
		return err
	}

	l.records[index] = done

	return nil
}

// Remove deletes and returns the record at index. All later indices shift
// down by one.
func (l *List) Remove(index int) (Record, error) {
	if index < 0 || index >= len(l.records) {
		return Record{}, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}

	rec := l.records[index]
	l.records = append(l.records[:index], l.records[index+1:]...)

	return rec, nil
}

// SortByDue returns the indices of incomplete records carrying a valid due
// tag, soonest due first. Equal due dates keep their original relative order.
// Completed records and records without a due tag are omitted from the view;
// the list itself is never reordered.
func (l *List) SortByDue() []int {
	type dueEntry struct {
		index int
		due   time.Time
	}

	var entries []dueEntry

	for idx, rec := range l.records {
		if rec.Completed {
			continue
		}

		due, ok := rec.Due()
		if !ok {
			continue
		}

		entries = append(entries, dueEntry{index: idx, due: due})
	}

	sort.SliceStable(entries, func(a, b int) bool {
		return entries[a].due.Before(entries[b].due)
	})

	view := make([]int, len(entries))
	for i, entry := range entries {
		view[i] = entry.index
	}

	return view
}

// SortByPriority returns the indices of incomplete records carrying a
// priority, highest ('A') first. Ties keep their original relative order.
// Exclusion policy matches SortByDue.
func (l *List) SortByPriority() []int {
	type priEntry struct {
		index    int
		priority byte
	}

	var entries []priEntry

	for idx, rec := range l.records {
		if rec.Completed || rec.Priority == 0 {
			continue
		}

		entries = append(entries, priEntry{index: idx, priority: rec.Priority})
	}

	sort.SliceStable(entries, func(a, b int) bool {
		return entries[a].priority < entries[b].priority
	})

	view := make([]int, len(entries))
	for i, entry := range entries {
		view[i] = entry.index
	}

	return view
}

// Records returns the records in current order.
func (l *List) Records() []Record {
	return l.records
}

// Len returns the number of records.
func (l *List) Len() int {
	return len(l.records)
}

// Content serializes the list back to file content, one newline-terminated
// line per record in current order. An empty list yields empty content.
func (l *List) Content() string {
	var builder strings.Builder

	for _, rec := range l.records {
		builder.WriteString(rec.String())
		builder.WriteByte('\n')
	}

	return builder.String()
}
