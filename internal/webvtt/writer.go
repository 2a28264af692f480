package webvtt

import (
	"os"
	"path/filepath"
)

// WriteFile renders the document and writes it to path, creating parent
// directories as needed. The file ends with a newline.
func WriteFile(doc *Document, path string) error {
	if err := ensureDir(path); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(doc.Render()+"\n"), 0644)
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0755)
}
