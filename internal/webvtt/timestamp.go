package webvtt

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// accepted timestamp shapes, checked in priority order
var (
	fullTimestampRegex   = regexp.MustCompile(`^\d{2}:\d{2}:\d{2}\.\d{3}$`)
	hourTimestampRegex   = regexp.MustCompile(`^\d{1,2}:\d{2}:\d{2}$`)
	minuteMillisRegex    = regexp.MustCompile(`^\d{2}:\d{2}\.\d{3}$`)
	minuteTimestampRegex = regexp.MustCompile(`^\d{2}:\d{2}$`)
	secondMillisRegex    = regexp.MustCompile(`^\d{2}\.\d{3}$`)
	secondTimestampRegex = regexp.MustCompile(`^\d{2}$`)
)

// NormalizeTimestamp converts a loosely formatted timestamp token to the
// canonical HH:MM:SS.mmm form. Minutes and seconds need exactly two digits
// and milliseconds exactly three; the hour may be one or two digits. Values
// are not range checked, so 99:99:99 is accepted.
func NormalizeTimestamp(raw string) (string, error) {
	switch {
	case fullTimestampRegex.MatchString(raw):
		return raw, nil
	case hourTimestampRegex.MatchString(raw):
		if strings.IndexByte(raw, ':') == 1 {
			raw = "0" + raw
		}
		return raw + ".000", nil
	case minuteMillisRegex.MatchString(raw):
		return "00:" + raw, nil
	case minuteTimestampRegex.MatchString(raw):
		return "00:" + raw + ".000", nil
	case secondMillisRegex.MatchString(raw):
		return "00:00:" + raw, nil
	case secondTimestampRegex.MatchString(raw):
		return "00:00:" + raw + ".000", nil
	}
	return "", fmt.Errorf("unrecognized timestamp format: %q", raw)
}

// TimestampSeconds converts a canonical HH:MM:SS.mmm timestamp to seconds.
// All time comparisons go through this; canonical strings must never be
// compared directly. Returns 0 for non-canonical input.
func TimestampSeconds(timestamp string) float64 {
	parts := strings.Split(timestamp, ":")
	if len(parts) != 3 {
		return 0
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0
	}
	seconds, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return 0
	}

	return float64(hours)*3600 + float64(minutes)*60 + seconds
}
