// Package todo implements the todo.txt record model: parsing a line into
// structured fields, serializing it back, and the ordered list the CLI
// commands operate on.
package todo

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Record is one todo.txt line.
type Record struct {
	Completed      bool
	CompletionDate time.Time // zero when absent; only meaningful when Completed
	Priority       byte      // 'A'..'Z', 0 when absent
	CreationDate   time.Time // zero when absent
	Tags           map[string]string
	Body           []string // free-text tokens in original order, incl. @context and +project
}

// ParseRecord parses a single todo.txt line.
//
// Leading fields are consumed in canonical order: completion mark,
// completion date, priority, creation date. A priority token directly after
// the completion mark is also accepted since some writers emit that order.
// Remaining tokens are split into key:value tags and body tokens.
//
// The only parse failure is a structurally malformed date in a recognized
// date position (a due: value that is not a valid date). Unknown tags and
// missing optional fields are never errors.
func ParseRecord(line string) (Record, error) {
	tokens := strings.Fields(line)

	var rec Record

	idx := 0

	if idx < len(tokens) && tokens[idx] == completionMark {
		rec.Completed = true
		idx++
	}

	// Priority is only conventional on incomplete lines, but a completed
	// line carrying one must still parse.
	if idx < len(tokens) && isPriorityToken(tokens[idx]) {
		rec.Priority = tokens[idx][1]
		idx++
	}

	if rec.Completed {
		if date, ok := parseDateToken(tokens, idx); ok {
			rec.CompletionDate = date
			idx++
		}

		if rec.Priority == 0 && idx < len(tokens) && isPriorityToken(tokens[idx]) {
			rec.Priority = tokens[idx][1]
			idx++
		}
	}

	if date, ok := parseDateToken(tokens, idx); ok {
		rec.CreationDate = date
		idx++
	}

	for _, tok := range tokens[idx:] {
		key, value, ok := splitTag(tok)
		if !ok {
			rec.Body = append(rec.Body, tok)

			continue
		}

		if key == TagDue {
			_, parseErr := time.Parse(DateLayout, value)
			if parseErr != nil {
				return Record{}, fmt.Errorf("%w: due date %q", ErrInvalidDate, value)
			}
		}

		if rec.Tags == nil {
			rec.Tags = make(map[string]string)
		}

		rec.Tags[key] = value
	}

	return rec, nil
}

// String serializes the record in canonical todo.txt order: completion mark,
// completion date, priority, creation date, body tokens in original order,
// then tags as key:value in sorted key order.
func (r Record) String() string {
	parts := make([]string, 0, 4+len(r.Body)+len(r.Tags))

	if r.Completed {
		parts = append(parts, completionMark)

		if !r.CompletionDate.IsZero() {
			parts = append(parts, r.CompletionDate.Format(DateLayout))
		}
	}

	if r.Priority != 0 {
		parts = append(parts, fmt.Sprintf("(%c)", r.Priority))
	}

	if !r.CreationDate.IsZero() {
		parts = append(parts, r.CreationDate.Format(DateLayout))
	}

	parts = append(parts, r.Body...)

	for _, key := range sortedTagKeys(r.Tags) {
		parts = append(parts, key+":"+r.Tags[key])
	}

	return strings.Join(parts, " ")
}

// NewActive builds a record for the add command from a user-supplied
// fragment. Leading fields present in the fragment are honored. The creation
// date is stamped with today when not explicitly supplied.
func NewActive(input string, today time.Time) (Record, error) {
	rec, err := ParseRecord(input)
	if err != nil {
		return Record{}, err
	}

	if len(rec.Body) == 0 {
		return Record{}, ErrEmptyBody
	}

	if rec.CreationDate.IsZero() {
		rec.CreationDate = today
	}

	return rec, nil
}

// MarkDone returns a completed copy of the record with the completion date
// set to today. The priority is cleared per the todo.txt convention that
// priorities exist only on incomplete tasks.
func (r Record) MarkDone(today time.Time) (Record, error) {
	if r.Completed {
		return Record{}, ErrAlreadyDone
	}

	r.Completed = true
	r.CompletionDate = today
	r.Priority = 0

	return r, nil
}

// Due returns the parsed due tag, if present and valid.
func (r Record) Due() (time.Time, bool) {
	value, ok := r.Tags[TagDue]
	if !ok {
		return time.Time{}, false
	}

	date, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, false
	}

	return date, true
}

// isPriorityToken reports whether tok is a "(A)".."(Z)" priority marker.
func isPriorityToken(tok string) bool {
	return len(tok) == 3 && tok[0] == '(' && tok[2] == ')' && tok[1] >= 'A' && tok[1] <= 'Z'
}

func parseDateToken(tokens []string, idx int) (time.Time, bool) {
	if idx >= len(tokens) {
		return time.Time{}, false
	}

	date, err := time.Parse(DateLayout, tokens[idx])
	if err != nil {
		return time.Time{}, false
	}

	return date, true
}

// splitTag splits a key:value token. Context and project markers are body
// tokens even when they contain a colon.
func splitTag(tok string) (string, string, bool) {
	if strings.HasPrefix(tok, "@") || strings.HasPrefix(tok, "+") {
		return "", "", false
	}

	key, value, found := strings.Cut(tok, ":")
	if !found || key == "" || value == "" {
		return "", "", false
	}

	return key, value, true
}

func sortedTagKeys(tags map[string]string) []string {
	if len(tags) == 0 {
		return nil
	}

	keys := make([]string, 0, len(tags))
	for key := range tags {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}
