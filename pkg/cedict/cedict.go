// Package cedict parses the CC-CEDICT bilingual dictionary into an
// in-memory word table plus a reverse index from character to the words
// containing it.
package cedict

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

// Entry is one dictionary record.
type Entry struct {
	Traditional string
	Simplified  string
	Pinyin      string
	Definitions []string
}

// PrimaryGloss returns the first definition segment, or "" if none.
func (e Entry) PrimaryGloss() string {
	if len(e.Definitions) == 0 {
		return ""
	}
	return e.Definitions[0]
}

// Dict holds the parsed dictionary.
type Dict struct {
	// Words is keyed by simplified form. On duplicate keys the last
	// occurrence wins.
	Words map[string]Entry
	// ByChar maps each character to the simplified words containing it,
	// in insertion order, without duplicates.
	ByChar map[string][]string
}

// Record shape: 傳統 传统 [chuan2 tong3] /tradition/convention/.../
var lineRe = regexp.MustCompile(`^(\S+)\s+(\S+)\s+\[([^\]]+)\]\s+/(.+)/$`)

// Parse reads CC-CEDICT records from r. Blank lines, comments, and lines
// that do not match the record shape are skipped; a malformed trailing entry
// never fails the whole dictionary.
func Parse(r io.Reader) (*Dict, error) {
	d := &Dict{
		Words:  make(map[string]Entry),
		ByChar: make(map[string][]string),
	}
	indexed := make(map[string]struct{})

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		m := lineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		traditional, simplified, pinyin, defs := m[1], m[2], m[3], m[4]

		d.Words[simplified] = Entry{
			Traditional: traditional,
			Simplified:  simplified,
			Pinyin:      pinyin,
			Definitions: strings.Split(defs, "/"),
		}

		for _, c := range simplified {
			char := string(c)
			key := char + "\x00" + simplified
			if _, dup := indexed[key]; dup {
				continue
			}
			indexed[key] = struct{}{}
			d.ByChar[char] = append(d.ByChar[char], simplified)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read cedict: %w", err)
	}
	return d, nil
}

// Load parses the dictionary file at path. A missing file is fatal for the
// pipeline; CC-CEDICT is a required source.
func Load(path string) (*Dict, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open cedict %s: %w", path, err)
	}
	defer f.Close()
	return Parse(f)
}
