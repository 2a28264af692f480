package csvparse

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strings"

	"csv2vtt/internal/webvtt"
)

// runs of hyphen-like characters separating the two timestamp tokens
var rangeSeparator = regexp.MustCompile(`[-\x{2013}\x{2014}]+`)

// Parser converts a caption CSV into a WebVTT document. It holds only
// configuration: every Parse call keeps its own accumulator state, so one
// parser can run independent parses sequentially. It is not safe for
// concurrent use of the same instance without external synchronization.
type Parser struct {
	keys  KeyMap
	style []string

	// OnCue, when set, receives each cue after the row that completed it,
	// enabling streaming consumption. The final cue is delivered once the
	// input is exhausted.
	OnCue func(*webvtt.Cue)
}

func NewParser(keys KeyMap) *Parser {
	return &Parser{keys: keys.withDefaults()}
}

// SetStyle supplies raw style blocks emitted between the WEBVTT header and
// the first cue. Style is never derived from the CSV itself.
func (p *Parser) SetStyle(blocks []string) {
	p.style = blocks
}

// Parse reads the entire input and returns either a document or the
// complete list of problems found, never both. A file level problem (an
// unreadable CSV or a header missing required columns) aborts before any
// row is processed; row level problems skip that row and are accumulated
// so the caller gets a full report in one pass.
func (p *Parser) Parse(r io.Reader) (*webvtt.Document, []error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, []error{fmt.Errorf("failed to read csv: %w", err)}
	}
	if len(records) == 0 {
		return nil, []error{&MissingHeaderKeyError{Missing: p.keys.required()}}
	}

	header := records[0]
	header[0] = strings.TrimPrefix(header[0], "\uFEFF")

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}

	var missing []string
	for _, name := range p.keys.required() {
		if _, ok := columns[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, []error{&MissingHeaderKeyError{Missing: missing}}
	}

	var (
		cues        []*webvtt.Cue
		errs        []error
		current     *webvtt.Cue
		currentLine int
	)

	for i, record := range records[1:] {
		line := i + 2 // line 1 is the header

		timestamp := strings.TrimSpace(field(record, columns, p.keys.Timestamp))
		if timestamp == "" {
			// continuation row: another caption for the current cue
			if current == nil {
				errs = append(errs, &OrphanRowError{Line: line})
				continue
			}
			current.AddCaption(p.caption(record, columns))
			continue
		}

		cue, err := p.newCue(timestamp, record, columns, line)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		if err := validateCue(cue, line, current, currentLine); err != nil {
			errs = append(errs, err)
			continue
		}

		if p.OnCue != nil && current != nil {
			p.OnCue(current)
		}
		cues = append(cues, cue)
		current, currentLine = cue, line
	}

	// flush the last completed cue
	if p.OnCue != nil && current != nil {
		p.OnCue(current)
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return &webvtt.Document{Cues: cues, Style: p.style}, nil
}

// newCue builds a cue from a row that carries a timestamp range.
func (p *Parser) newCue(
	timestamp string,
	record []string,
	columns map[string]int,
	line int,
) (*webvtt.Cue, error) {
	parts := rangeSeparator.Split(timestamp, -1)
	if len(parts) < 2 {
		return nil, &MissingTimestampError{Value: timestamp, Line: line}
	}

	start, err := webvtt.NormalizeTimestamp(strings.TrimSpace(parts[0]))
	if err != nil {
		return nil, &TimestampFormattingError{Value: strings.TrimSpace(parts[0]), Line: line}
	}
	end, err := webvtt.NormalizeTimestamp(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, &TimestampFormattingError{Value: strings.TrimSpace(parts[1]), Line: line}
	}

	return &webvtt.Cue{
		StartTime: start,
		EndTime:   end,
		Captions:  []webvtt.Caption{p.caption(record, columns)},
		Settings:  webvtt.ParseCueSettings(field(record, columns, p.keys.Style)),
	}, nil
}

func (p *Parser) caption(record []string, columns map[string]int) webvtt.Caption {
	return webvtt.NewCaption(
		field(record, columns, p.keys.Speaker),
		field(record, columns, p.keys.Content),
	)
}

// field returns the named column's value, or "" when the record is too
// short to carry it.
func field(record []string, columns map[string]int, name string) string {
	index, ok := columns[name]
	if !ok || index >= len(record) {
		return ""
	}
	return record[index]
}
