// Package ids parses CHISE ideographic description sequences (IDS) into
// per-character structural decompositions. Descriptors mix IDC structural
// operators, literal component characters, and CHISE entity references for
// components that have no Unicode codepoint; references are resolved where a
// known mapping exists and stripped otherwise.
package ids

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// The twelve ideographic description characters (U+2FF0..U+2FFB).
const operators = "⿰⿱⿲⿳⿴⿵⿶⿷⿸⿹⿺⿻"

// IsOperator reports whether r is an IDS structural operator.
func IsOperator(r rune) bool {
	return strings.ContainsRune(operators, r)
}

// Entity references look like &CDP-8B7D; or &M-12345;.
var entityRe = regexp.MustCompile(`&[A-Za-z0-9-]+;`)

// CDP entity references whose components do have Unicode codepoints.
var entityTable = map[string]rune{
	"&CDP-8BCE;": '龰', // bottom of 是, 定, 走, 足
	"&CDP-8B7D;": '⺀',
	"&CDP-89AE;": '龶', // top of 青, 靑
	"&CDP-8BF1;": '龷', // top of 共
	"&CDP-8CC6;": '⺁',
	"&CDP-85D5;": '冂',
	"&CDP-89CE;": '⺤',
	"&CDP-8B68;": '止',
	"&CDP-87B5;": '㔾',
	"&CDP-8B42;": '癶',
	"&CDP-89A6;": '⺊',
	"&CDP-8DE2;": '龹',
	"&CDP-89AB;": '耂',
	"&CDP-8CB5;": '⺩',
	"&CDP-8B5E;": '昜',
}

// Resolve maps a CHISE entity reference to its literal component character.
// The second return value is false when the reference has no known mapping
// and the caller must fall back to stripping it.
func Resolve(ref string) (rune, bool) {
	r, ok := entityTable[ref]
	return r, ok
}

// Decomposition is the cleaned descriptor and the component characters
// extracted from it.
type Decomposition struct {
	IDS        string
	Components []string
}

// Source files in priority order; when both define the same character, the
// later file's parse overwrites the earlier one.
var sourceFiles = []string{
	"IDS-UCS-Basic.txt",
	"IDS-UCS-Ext-A.txt",
}

// ParseDir reads the decomposition corpus from dir. The directory itself is
// a required source; an individual missing file inside it is skipped.
func ParseDir(dir string) (map[string]Decomposition, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("open ids corpus %s: %w", dir, err)
	}

	out := make(map[string]Decomposition)
	for _, name := range sourceFiles {
		path := filepath.Join(dir, name)
		f, err := os.Open(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("open %s: %w", path, err)
		}
		err = parseFile(f, out)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}
	return out, nil
}

func parseFile(f *os.File, out map[string]Decomposition) error {
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}
		parts := strings.Split(line, "\t")
		if len(parts) < 3 {
			continue
		}
		char, descriptor := parts[1], parts[2]
		if d, ok := parseDescriptor(char, descriptor); ok {
			out[char] = d
		}
	}
	return sc.Err()
}

// parseDescriptor resolves entity references in the raw descriptor and
// extracts the component list. It returns false when the record carries no
// structural information worth keeping.
func parseDescriptor(char, raw string) (Decomposition, bool) {
	resolved := entityRe.ReplaceAllStringFunc(raw, func(ref string) string {
		if r, ok := Resolve(ref); ok {
			return string(r)
		}
		return ref
	})

	cleaned := resolved
	if entityRe.MatchString(resolved) {
		// Unresolved references are stripped; if too little structure
		// remains the decomposition is rejected outright.
		cleaned = entityRe.ReplaceAllString(resolved, "")
		nonOperator := 0
		for _, r := range cleaned {
			if !IsOperator(r) {
				nonOperator++
			}
		}
		if nonOperator < 2 {
			return Decomposition{}, false
		}
	}

	self, _ := firstRune(char)
	var components []string
	for _, r := range cleaned {
		if IsOperator(r) || r == self {
			continue
		}
		if !isIdeograph(r) {
			continue
		}
		components = append(components, string(r))
	}

	if cleaned == char || len(components) == 0 {
		return Decomposition{}, false
	}
	return Decomposition{IDS: cleaned, Components: components}, true
}

// isIdeograph reports whether r falls in one of the recognized ideograph
// blocks: basic ideographs, extension A, the radicals supplement, or the
// Kangxi radicals block. Residual Latin markup and punctuation fail this.
func isIdeograph(r rune) bool {
	switch {
	case r >= 0x4E00 && r <= 0x9FFF:
		return true
	case r >= 0x3400 && r <= 0x4DBF:
		return true
	case r >= 0x2E80 && r <= 0x2EFF:
		return true
	case r >= 0x2F00 && r <= 0x2FDF:
		return true
	}
	return false
}

func firstRune(s string) (rune, bool) {
	for _, r := range s {
		return r, true
	}
	return 0, false
}
