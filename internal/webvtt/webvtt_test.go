package webvtt

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCaptionRender(t *testing.T) {
	tests := []struct {
		name    string
		speaker string
		text    string
		want    string
	}{
		{"with speaker", "Cool Dog", "Woof!", "<v Cool Dog>Woof!</v>"},
		{"without speaker", "", "Just text", "Just text"},
		{"trimmed", " Narrator ", "  padded  ", "<v Narrator>padded</v>"},
		{"escaped", "Dog", "Cats & <dogs>", "<v Dog>Cats &amp; &lt;dogs></v>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewCaption(tt.speaker, tt.text).Render()
			if got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseCueSettings(t *testing.T) {
	got := ParseCueSettings("align:left line:0 banana:yes position:10%").Render()
	want := "align:left line:0 position:10%"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestCueSettingsFilterPreservesInput(t *testing.T) {
	pairs := []Setting{
		{Key: "align", Value: "left"},
		{Key: "banana", Value: "yes"},
		{Key: "size", Value: "50%"},
	}

	settings := NewCueSettings(pairs)

	if got, want := settings.Render(), "align:left size:50%"; got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
	if len(pairs) != 3 || pairs[1].Key != "banana" {
		t.Error("NewCueSettings modified the caller's slice")
	}
}

func TestCueSettingsRenderEmpty(t *testing.T) {
	if got := ParseCueSettings("").Render(); got != "" {
		t.Errorf("empty settings rendered %q, want empty string", got)
	}
	if got := ParseCueSettings("nocolon").Render(); got != "" {
		t.Errorf("settings without colons rendered %q, want empty string", got)
	}
}

func TestCueRenderSingleCaption(t *testing.T) {
	cue := &Cue{
		StartTime: "00:00:00.000",
		EndTime:   "00:00:02.000",
		Captions:  []Caption{NewCaption("Cool Dog", "Woof!")},
	}

	want := "00:00:00.000 --> 00:00:02.000\n<v Cool Dog>Woof!</v>"
	if got := cue.Render(); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestCueRenderMultipleCaptions(t *testing.T) {
	cue := &Cue{
		StartTime: "00:00:00.000",
		EndTime:   "00:00:02.000",
		Captions: []Caption{
			NewCaption("Dog", "Woof!"),
			NewCaption("Cat", "Meow!"),
		},
	}

	want := "00:00:00.000 --> 00:00:02.000\n- <v Dog>Woof!</v>\n- <v Cat>Meow!</v>"
	if got := cue.Render(); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestCueRenderIdentifierAndSettings(t *testing.T) {
	cue := &Cue{
		StartTime:  "00:00:00.000",
		EndTime:    "00:00:02.000",
		Identifier: "intro",
		Captions:   []Caption{NewCaption("", "Hello")},
		Settings:   ParseCueSettings("align:start position:10%"),
	}

	want := "intro\n00:00:00.000 --> 00:00:02.000 align:start position:10%\nHello"
	if got := cue.Render(); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestDocumentRender(t *testing.T) {
	doc := &Document{
		Cues: []*Cue{
			{
				StartTime: "00:00:00.000",
				EndTime:   "00:00:01.000",
				Captions:  []Caption{NewCaption("Dog", "Woof!")},
			},
			{
				StartTime: "00:00:05.000",
				EndTime:   "00:00:06.000",
				Captions:  []Caption{NewCaption("Cat", "Meow!")},
			},
		},
	}

	want := "WEBVTT\n\n" +
		"00:00:00.000 --> 00:00:01.000\n<v Dog>Woof!</v>\n\n" +
		"00:00:05.000 --> 00:00:06.000\n<v Cat>Meow!</v>"
	if got := doc.Render(); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestDocumentRenderWithStyle(t *testing.T) {
	doc := &Document{
		Style: []string{"STYLE\n::cue {\n  color: yellow;\n}"},
		Cues: []*Cue{
			{
				StartTime: "00:00:00.000",
				EndTime:   "00:00:01.000",
				Captions:  []Caption{NewCaption("", "Hi")},
			},
		},
	}

	want := "WEBVTT\n\n" +
		"STYLE\n::cue {\n  color: yellow;\n}\n\n" +
		"00:00:00.000 --> 00:00:01.000\nHi"
	if got := doc.Render(); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestDocumentRenderEmpty(t *testing.T) {
	doc := &Document{}
	if got := doc.Render(); got != "WEBVTT" {
		t.Errorf("Render() = %q, want %q", got, "WEBVTT")
	}
}

func TestWriteFile(t *testing.T) {
	doc := &Document{
		Cues: []*Cue{
			{
				StartTime: "00:00:00.000",
				EndTime:   "00:00:01.000",
				Captions:  []Caption{NewCaption("Dog", "Woof!")},
			},
		},
	}

	// nested path exercises directory creation
	path := filepath.Join(t.TempDir(), "out", "captions.vtt")
	if err := WriteFile(doc, path); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}

	text := string(content)
	if !strings.HasPrefix(text, "WEBVTT\n") {
		t.Errorf("output does not start with WEBVTT header: %q", text)
	}
	if !strings.HasSuffix(text, "</v>\n") {
		t.Errorf("output does not end with a single trailing newline: %q", text)
	}
	if text != doc.Render()+"\n" {
		t.Errorf("file content differs from Render() plus newline")
	}
}
