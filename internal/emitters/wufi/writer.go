package wufi

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"

	"github.com/stwalsh4118/phx/internal/models/project"
)

// Write encodes the project as an indented XML document.
func Write(w io.Writer, p *project.Project) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("failed to write xml header: %w", err)
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(NewDocument(p)); err != nil {
		return fmt.Errorf("failed to encode project %q: %w", p.Name, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to flush xml encoder: %w", err)
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// WriteFile writes the project to path, replacing any existing file.
func WriteFile(path string, p *project.Project) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()
	return Write(f, p)
}
