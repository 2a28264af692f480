package csvparse

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// maps logical field names to the CSV header names that carry them
type KeyMap struct {
	Timestamp string `yaml:"timestamp"`
	Speaker   string `yaml:"speaker"`
	Content   string `yaml:"content"`
	Style     string `yaml:"style"`
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Timestamp: "Time Stamp",
		Speaker:   "Speaker",
		Content:   "Text",
		Style:     "Style",
	}
}

// LoadKeyMap reads a YAML column mapping from path. Fields the file leaves
// out or empty keep their default header names.
func LoadKeyMap(path string) (KeyMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return KeyMap{}, fmt.Errorf("failed to read column map: %w", err)
	}

	var keys KeyMap
	if err := yaml.Unmarshal(data, &keys); err != nil {
		return KeyMap{}, fmt.Errorf("failed to parse column map: %w", err)
	}

	return keys.withDefaults(), nil
}

func (k KeyMap) withDefaults() KeyMap {
	defaults := DefaultKeyMap()
	if k.Timestamp == "" {
		k.Timestamp = defaults.Timestamp
	}
	if k.Speaker == "" {
		k.Speaker = defaults.Speaker
	}
	if k.Content == "" {
		k.Content = defaults.Content
	}
	if k.Style == "" {
		k.Style = defaults.Style
	}
	return k
}

// required lists the header names a parseable file must supply.
func (k KeyMap) required() []string {
	return []string{k.Timestamp, k.Speaker, k.Content, k.Style}
}
