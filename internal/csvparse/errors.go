package csvparse

import (
	"fmt"
	"strconv"
	"strings"
)

// file level error: the CSV header lacks one or more required columns.
// Terminal, no rows are processed after it.
type MissingHeaderKeyError struct {
	Missing []string
}

func (e *MissingHeaderKeyError) Error() string {
	return fmt.Sprintf("csv header is missing required columns: %s", humanJoin(e.Missing))
}

// a timestamp token matched none of the accepted shapes
type TimestampFormattingError struct {
	Value string
	Line  int
}

func (e *TimestampFormattingError) Error() string {
	return fmt.Sprintf("line %d: unrecognized timestamp format %q", e.Line, e.Value)
}

// the timestamp field was non-empty but did not contain a start and an end
type MissingTimestampError struct {
	Value string
	Line  int
}

func (e *MissingTimestampError) Error() string {
	return fmt.Sprintf("line %d: timestamp %q does not contain a start and an end time", e.Line, e.Value)
}

// a cue ends at or before its own start
type InvalidTimestampRangeError struct {
	Line  int
	Start string
	End   string
}

func (e *InvalidTimestampRangeError) Error() string {
	return fmt.Sprintf("line %d: end time %s must be after start time %s", e.Line, e.End, e.Start)
}

// a cue starts before the cue that precedes it
type InvalidTimestampSequenceError struct {
	Line          int
	PreviousLine  int
	Start         string
	PreviousStart string
}

func (e *InvalidTimestampSequenceError) Error() string {
	return fmt.Sprintf(
		"line %d: start time %s is before start time %s on line %d",
		e.Line, e.Start, e.PreviousStart, e.PreviousLine,
	)
}

// a continuation row appeared before any cue existed to attach it to
type OrphanRowError struct {
	Line int
}

func (e *OrphanRowError) Error() string {
	return fmt.Sprintf("line %d: caption row has no timestamp and no preceding cue", e.Line)
}

// humanJoin renders a quoted, grammatically joined list:
// `"A"`, `"A" and "B"`, `"A", "B", and "C"`.
func humanJoin(items []string) string {
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = strconv.Quote(item)
	}

	switch len(quoted) {
	case 0:
		return ""
	case 1:
		return quoted[0]
	case 2:
		return quoted[0] + " and " + quoted[1]
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + ", and " + quoted[len(quoted)-1]
}
