// Package source loads table-of-contents datasets from files.
package source

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/itsmostafa/tocview/internal/toc"
)

// LoadFile reads a JSON dataset from path.
func LoadFile(path string) (*toc.TOCData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open toc data: %w", err)
	}
	defer f.Close()

	data, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return data, nil
}

// Decode parses a JSON dataset. Missing maps are replaced by empty ones.
func Decode(r io.Reader) (*toc.TOCData, error) {
	var data toc.TOCData
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to parse toc data: %w", err)
	}
	if data.Entities.Pages == nil {
		data.Entities.Pages = map[string]toc.Page{}
	}
	if data.Entities.Anchors == nil {
		data.Entities.Anchors = map[string]toc.Anchor{}
	}
	if data.TopLevelIDs == nil {
		data.TopLevelIDs = []string{}
	}
	return &data, nil
}

// Encode writes data as indented JSON.
func Encode(w io.Writer, data *toc.TOCData) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("failed to encode toc data: %w", err)
	}
	return nil
}
