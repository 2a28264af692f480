package webvtt

import (
	"fmt"
	"strings"
)

// represents one spoken line within a cue
type Caption struct {
	Speaker string
	Text    string
}

// NewCaption trims surrounding whitespace and escapes '&' and '<' so the
// text is safe inside a WebVTT cue payload.
func NewCaption(speaker, text string) Caption {
	return Caption{
		Speaker: strings.TrimSpace(speaker),
		Text:    escapeText(strings.TrimSpace(text)),
	}
}

func escapeText(text string) string {
	text = strings.ReplaceAll(text, "&", "&amp;")
	text = strings.ReplaceAll(text, "<", "&lt;")
	return text
}

func (c Caption) Render() string {
	if c.Speaker != "" {
		return fmt.Sprintf("<v %s>%s</v>", c.Speaker, c.Text)
	}
	return c.Text
}

// cue setting keys the WebVTT spec defines
var recognizedSettings = map[string]bool{
	"vertical": true,
	"line":     true,
	"position": true,
	"size":     true,
	"align":    true,
	"region":   true,
}

type Setting struct {
	Key   string
	Value string
}

// ordered cue display settings, filtered to recognized keys
type CueSettings []Setting

// NewCueSettings keeps the recognized settings in their original order.
// Unrecognized keys are dropped; the input slice is not modified.
func NewCueSettings(pairs []Setting) CueSettings {
	var settings CueSettings
	for _, pair := range pairs {
		if recognizedSettings[pair.Key] {
			settings = append(settings, pair)
		}
	}
	return settings
}

// ParseCueSettings parses whitespace separated key:value tokens, such as
// the contents of a style column cell. Tokens without a colon are ignored.
func ParseCueSettings(raw string) CueSettings {
	var pairs []Setting
	for _, token := range strings.Fields(raw) {
		key, value, ok := strings.Cut(token, ":")
		if !ok {
			continue
		}
		pairs = append(pairs, Setting{Key: key, Value: value})
	}
	return NewCueSettings(pairs)
}

func (s CueSettings) Render() string {
	parts := make([]string, 0, len(s))
	for _, pair := range s {
		parts = append(parts, pair.Key+":"+pair.Value)
	}
	return strings.Join(parts, " ")
}

// represents a timed block of one or more captions
type Cue struct {
	StartTime  string // canonical HH:MM:SS.mmm
	EndTime    string // canonical HH:MM:SS.mmm
	Identifier string
	Captions   []Caption
	Settings   CueSettings
}

func (c *Cue) AddCaption(caption Caption) {
	c.Captions = append(c.Captions, caption)
}

func (c *Cue) StartSeconds() float64 {
	return TimestampSeconds(c.StartTime)
}

func (c *Cue) EndSeconds() float64 {
	return TimestampSeconds(c.EndTime)
}

func (c *Cue) Render() string {
	var lines []string

	if c.Identifier != "" {
		lines = append(lines, c.Identifier)
	}

	timing := c.StartTime + " --> " + c.EndTime
	if settings := c.Settings.Render(); settings != "" {
		timing += " " + settings
	}
	lines = append(lines, timing)

	if len(c.Captions) == 1 {
		lines = append(lines, c.Captions[0].Render())
	} else {
		for _, caption := range c.Captions {
			lines = append(lines, "- "+caption.Render())
		}
	}

	return strings.Join(lines, "\n")
}

// represents a complete WebVTT document
type Document struct {
	Cues  []*Cue
	Style []string
}

// Render produces the document text: the WEBVTT header, then each style
// block, then each cue, with a blank line between adjacent blocks. The
// trailing newline is the writer's job.
func (d *Document) Render() string {
	blocks := []string{"WEBVTT"}
	blocks = append(blocks, d.Style...)
	for _, cue := range d.Cues {
		blocks = append(blocks, cue.Render())
	}
	return strings.Join(blocks, "\n\n")
}
