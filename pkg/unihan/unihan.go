// Package unihan extracts per-character property records from a Unihan
// archive (a zip bundle of tab-delimited property files). Each extractor
// reads one designated member file and watches only its designated field
// names; unknown fields are skipped so future Unihan releases never break
// the pipeline.
package unihan

import (
	"archive/zip"
	"bufio"
	"fmt"
	"strconv"
	"strings"
)

// Member file names inside the Unihan zip bundle.
const (
	readingsFile     = "Unihan_Readings.txt"
	irgSourcesFile   = "Unihan_IRGSources.txt"
	dictLikeDataFile = "Unihan_DictionaryLikeData.txt"
	variantsFile     = "Unihan_Variants.txt"
)

// Archive is a handle on a Unihan zip bundle. Each extractor call opens the
// archive, reads its member file to completion, and releases it; no two
// member files are held open at once.
type Archive struct {
	path string
}

// OpenArchive verifies the bundle exists and is a readable zip.
func OpenArchive(path string) (*Archive, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open unihan archive %s: %w", path, err)
	}
	zr.Close()
	return &Archive{path: path}, nil
}

// scan walks the tab-delimited triples of one member file, skipping blank
// lines, comments, and rows with fewer than three fields.
func (a *Archive) scan(member string, fn func(codepoint, field, value string)) error {
	zr, err := zip.OpenReader(a.path)
	if err != nil {
		return fmt.Errorf("open unihan archive %s: %w", a.path, err)
	}
	defer zr.Close()

	var file *zip.File
	for _, f := range zr.File {
		if f.Name == member {
			file = f
			break
		}
	}
	if file == nil {
		return fmt.Errorf("unihan archive %s: member %s not found", a.path, member)
	}

	rc, err := file.Open()
	if err != nil {
		return fmt.Errorf("open %s: %w", member, err)
	}
	defer rc.Close()

	sc := bufio.NewScanner(rc)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.Split(line, "\t")
		if len(parts) < 3 {
			continue
		}
		fn(parts[0], parts[1], parts[2])
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read %s: %w", member, err)
	}
	return nil
}

// Reading holds the pronunciation and gloss attested for one character.
type Reading struct {
	Pinyin     string
	Definition string
}

// Readings extracts kMandarin and kDefinition records keyed by codepoint
// identifier. kMandarin values may list several space-separated readings;
// the first one wins, lowercased.
func (a *Archive) Readings() (map[string]Reading, error) {
	readings := make(map[string]Reading)
	err := a.scan(readingsFile, func(cp, field, value string) {
		switch field {
		case "kMandarin":
			fields := strings.Fields(value)
			if len(fields) == 0 {
				return
			}
			r := readings[cp]
			r.Pinyin = strings.ToLower(fields[0])
			readings[cp] = r
		case "kDefinition":
			r := readings[cp]
			r.Definition = value
			readings[cp] = r
		}
	})
	if err != nil {
		return nil, err
	}
	return readings, nil
}

// RadicalStroke is the kRSUnicode radical ordinal and residual stroke count.
type RadicalStroke struct {
	Radical int
	Strokes int
}

// RadicalStrokes extracts kRSUnicode records keyed by codepoint identifier.
// The value format is "radical.strokes" (e.g. "9.2"); an apostrophe after
// the radical number marks the simplified-form radical and is stripped.
// Rows that do not parse as two integers are dropped.
func (a *Archive) RadicalStrokes() (map[string]RadicalStroke, error) {
	out := make(map[string]RadicalStroke)
	err := a.scan(irgSourcesFile, func(cp, field, value string) {
		if field != "kRSUnicode" {
			return
		}
		fields := strings.Fields(value)
		if len(fields) == 0 {
			return
		}
		rs := strings.ReplaceAll(fields[0], "'", "")
		radicalStr, strokesStr, ok := strings.Cut(rs, ".")
		if !ok {
			return
		}
		radical, err := strconv.Atoi(radicalStr)
		if err != nil {
			return
		}
		strokes, err := strconv.Atoi(strokesStr)
		if err != nil {
			return
		}
		out[cp] = RadicalStroke{Radical: radical, Strokes: strokes}
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GradeLevels extracts kGradeLevel records keyed by codepoint identifier.
// Non-integer values are dropped.
func (a *Archive) GradeLevels() (map[string]int, error) {
	out := make(map[string]int)
	err := a.scan(dictLikeDataFile, func(cp, field, value string) {
		if field != "kGradeLevel" {
			return
		}
		grade, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return
		}
		out[cp] = grade
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Variants maps characters to their script counterparts. Both directions are
// partial functions: a character without a counterpart simply has no entry.
type Variants struct {
	SimpToTrad map[string]string
	TradToSimp map[string]string
}

// VariantLinks extracts kTraditionalVariant and kSimplifiedVariant records.
// A value may list several candidate codepoints for ambiguous historical
// variants; the first candidate that is not the character itself wins.
// Self-references are excluded so the variant graph holds no one-element
// cycles.
func (a *Archive) VariantLinks() (*Variants, error) {
	v := &Variants{
		SimpToTrad: make(map[string]string),
		TradToSimp: make(map[string]string),
	}
	err := a.scan(variantsFile, func(cp, field, value string) {
		if field != "kTraditionalVariant" && field != "kSimplifiedVariant" {
			return
		}
		self, err := ParseCodepoint(cp)
		if err != nil {
			return
		}
		char := string(self)
		for _, cand := range strings.Fields(value) {
			if !strings.HasPrefix(cand, "U+") {
				continue
			}
			r, err := ParseCodepoint(cand)
			if err != nil || r == self {
				continue
			}
			if field == "kTraditionalVariant" {
				v.SimpToTrad[char] = string(r)
			} else {
				v.TradToSimp[char] = string(r)
			}
			break
		}
	})
	if err != nil {
		return nil, err
	}
	return v, nil
}
