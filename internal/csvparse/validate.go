package csvparse

import "csv2vtt/internal/webvtt"

// validateCue enforces the temporal invariants on a freshly extracted cue.
// All comparisons use seconds, never canonical strings.
//
// Rule 1: a cue must end strictly after it starts.
// Rule 2: cue start times must not decrease across the file. The rule is
// skipped when there is no previous cue or when previous is the same cue
// (a continuation row). Previous end vs. current start is deliberately not
// checked: overlapping cues are legal WebVTT.
func validateCue(
	current *webvtt.Cue,
	line int,
	previous *webvtt.Cue,
	previousLine int,
) error {
	if current.EndSeconds() <= current.StartSeconds() {
		return &InvalidTimestampRangeError{
			Line:  line,
			Start: current.StartTime,
			End:   current.EndTime,
		}
	}

	if previous == nil || previous == current {
		return nil
	}

	if previous.StartSeconds() > current.StartSeconds() {
		return &InvalidTimestampSequenceError{
			Line:          line,
			PreviousLine:  previousLine,
			Start:         current.StartTime,
			PreviousStart: previous.StartTime,
		}
	}

	return nil
}
