package fuse

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Radical is one radical record in the output dataset. Characters holds the
// member character keys in pedagogical order.
type Radical struct {
	Char       string   `json:"char"`
	Pinyin     string   `json:"pinyin"`
	Meaning    string   `json:"meaning"`
	Characters []string `json:"characters"`
}

// Character is one fused character record.
type Character struct {
	Radical       string   `json:"radical"`
	Strokes       int      `json:"strokes"`
	Pinyin        string   `json:"pinyin"`
	Definition    string   `json:"definition"`
	GradeLevel    int      `json:"gradeLevel"`    // 0 = unranked
	CharFrequency int      `json:"charFrequency"` // 0 = unranked
	IDS           string   `json:"ids"`
	Components    []string `json:"components"`
	Words         []string `json:"words"`
	AppearsIn     []string `json:"appearsIn"`
	Traditional   string   `json:"traditional,omitempty"`
	Simplified    string   `json:"simplified,omitempty"`
}

// Word is one dictionary record retained in the output. Only words referenced
// by some character's example list survive fusion.
type Word struct {
	Traditional string `json:"traditional"`
	Pinyin      string `json:"pinyin"`
	Definition  string `json:"definition"`
	Frequency   int    `json:"frequency"` // 0 = unranked
}

// Dataset is the final fused output: the sole interface consumed by the
// downstream course and lesson services.
type Dataset struct {
	Radicals   map[string]*Radical  `json:"radicals"`
	Characters map[string]Character `json:"characters"`
	Words      map[string]Word      `json:"words"`
}

// WriteJSON writes the dataset to path with two-space indentation and
// unescaped CJK. Map keys marshal in sorted order, so identical inputs
// produce byte-identical files. The dataset lands via a temp file and
// rename so a failed run never leaves a partial artifact behind.
func (d *Dataset) WriteJSON(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".radicals-*.json")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	enc := json.NewEncoder(tmp)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(d); err != nil {
		tmp.Close()
		return fmt.Errorf("encode dataset: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpPath, path)
}

// ReadJSON loads a previously written dataset.
func ReadJSON(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset %s: %w", path, err)
	}
	defer f.Close()

	var d Dataset
	if err := json.NewDecoder(f).Decode(&d); err != nil {
		return nil, fmt.Errorf("decode dataset %s: %w", path, err)
	}
	return &d, nil
}
