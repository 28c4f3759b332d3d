package todo

import "errors"

// DateLayout is the todo.txt date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// completionMark prefixes completed lines.
const completionMark = "x"

// TagDue is the recognized deadline tag key.
const TagDue = "due"

// Error variables for todo operations.
var (
	ErrInvalidDate     = errors.New("invalid date")
	ErrEmptyBody       = errors.New("todo must have a non-empty description")
	ErrAlreadyDone     = errors.New("todo is already done")
	ErrIndexOutOfRange = errors.New("index out of range")
)
