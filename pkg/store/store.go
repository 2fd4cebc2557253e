// Package store persists a fused dataset into SQLite so downstream lesson
// and course services can run keyed lookups without loading the whole JSON
// artifact into memory.
package store

import (
	"database/sql"
	"fmt"
	"sort"
	"strconv"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/linqiu/hanforge/pkg/fuse"
)

// DBExecutor lets query helpers accept either *sql.DB or *sql.Tx.
type DBExecutor interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}

// Init runs the embedded migrations on the given connection.
func Init(db *sql.DB) error {
	for _, s := range strings.Split(migrationsSQL, ";") {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, err := db.Exec(s); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// Load replaces the database contents with the given dataset. Everything
// happens inside one transaction: either the full dataset lands or nothing
// changes.
func Load(db *sql.DB, ds *fuse.Dataset) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range []string{
		"radicals", "radical_members", "characters",
		"character_components", "character_words", "words",
	} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	if err := loadRadicals(tx, ds); err != nil {
		return err
	}
	if err := loadCharacters(tx, ds); err != nil {
		return err
	}
	if err := loadWords(tx, ds); err != nil {
		return err
	}
	return tx.Commit()
}

func loadRadicals(tx *sql.Tx, ds *fuse.Dataset) error {
	for key, r := range ds.Radicals {
		ordinal, err := strconv.Atoi(key)
		if err != nil {
			return fmt.Errorf("radical key %q: %w", key, err)
		}
		if _, err := tx.Exec(
			`INSERT INTO radicals (ordinal, glyph, pinyin, meaning) VALUES (?, ?, ?, ?)`,
			ordinal, r.Char, r.Pinyin, r.Meaning,
		); err != nil {
			return fmt.Errorf("insert radical %d: %w", ordinal, err)
		}
		for pos, glyph := range r.Characters {
			if _, err := tx.Exec(
				`INSERT INTO radical_members (ordinal, position, glyph) VALUES (?, ?, ?)`,
				ordinal, pos, glyph,
			); err != nil {
				return fmt.Errorf("insert member %s of radical %d: %w", glyph, ordinal, err)
			}
		}
	}
	return nil
}

func loadCharacters(tx *sql.Tx, ds *fuse.Dataset) error {
	glyphs := make([]string, 0, len(ds.Characters))
	for glyph := range ds.Characters {
		glyphs = append(glyphs, glyph)
	}
	sort.Strings(glyphs)

	for _, glyph := range glyphs {
		c := ds.Characters[glyph]
		radical, err := strconv.Atoi(c.Radical)
		if err != nil {
			return fmt.Errorf("character %s: radical %q: %w", glyph, c.Radical, err)
		}
		if _, err := tx.Exec(
			`INSERT INTO characters
			 (glyph, radical, strokes, pinyin, definition, grade_level, char_frequency, ids, traditional, simplified)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			glyph, radical, c.Strokes, c.Pinyin, c.Definition,
			c.GradeLevel, c.CharFrequency, c.IDS,
			nullable(c.Traditional), nullable(c.Simplified),
		); err != nil {
			return fmt.Errorf("insert character %s: %w", glyph, err)
		}
		for pos, comp := range c.Components {
			if _, err := tx.Exec(
				`INSERT INTO character_components (glyph, position, component) VALUES (?, ?, ?)`,
				glyph, pos, comp,
			); err != nil {
				return fmt.Errorf("insert component %s of %s: %w", comp, glyph, err)
			}
		}
		for pos, word := range c.Words {
			if _, err := tx.Exec(
				`INSERT INTO character_words (glyph, position, word) VALUES (?, ?, ?)`,
				glyph, pos, word,
			); err != nil {
				return fmt.Errorf("insert word %s of %s: %w", word, glyph, err)
			}
		}
	}
	return nil
}

func loadWords(tx *sql.Tx, ds *fuse.Dataset) error {
	for word, w := range ds.Words {
		if _, err := tx.Exec(
			`INSERT INTO words (word, traditional, pinyin, definition, frequency) VALUES (?, ?, ?, ?, ?)`,
			word, w.Traditional, w.Pinyin, w.Definition, w.Frequency,
		); err != nil {
			return fmt.Errorf("insert word %s: %w", word, err)
		}
	}
	return nil
}

func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// GetCharacter reassembles the full character record, including component,
// example-word, and appears-in lists. The second return value is false when
// the character is unknown.
func GetCharacter(db DBExecutor, glyph string) (fuse.Character, bool, error) {
	var c fuse.Character
	var radical int
	var traditional, simplified sql.NullString

	err := db.QueryRow(
		`SELECT radical, strokes, pinyin, definition, grade_level, char_frequency, ids, traditional, simplified
		 FROM characters WHERE glyph = ?`, glyph,
	).Scan(&radical, &c.Strokes, &c.Pinyin, &c.Definition,
		&c.GradeLevel, &c.CharFrequency, &c.IDS, &traditional, &simplified)
	if err == sql.ErrNoRows {
		return fuse.Character{}, false, nil
	}
	if err != nil {
		return fuse.Character{}, false, err
	}
	c.Radical = strconv.Itoa(radical)
	c.Traditional = traditional.String
	c.Simplified = simplified.String

	if c.Components, err = stringColumn(db,
		`SELECT component FROM character_components WHERE glyph = ? ORDER BY position`, glyph); err != nil {
		return fuse.Character{}, false, err
	}
	if c.Words, err = stringColumn(db,
		`SELECT word FROM character_words WHERE glyph = ? ORDER BY position`, glyph); err != nil {
		return fuse.Character{}, false, err
	}
	// Appears-in is the reverse of the component table, ordered by glyph to
	// match the order the fusion pass emits.
	if c.AppearsIn, err = stringColumn(db,
		`SELECT glyph FROM character_components WHERE component = ? ORDER BY glyph`, glyph); err != nil {
		return fuse.Character{}, false, err
	}
	return c, true, nil
}

// GetWord looks up one retained dictionary word.
func GetWord(db DBExecutor, word string) (fuse.Word, bool, error) {
	var w fuse.Word
	err := db.QueryRow(
		`SELECT traditional, pinyin, definition, frequency FROM words WHERE word = ?`, word,
	).Scan(&w.Traditional, &w.Pinyin, &w.Definition, &w.Frequency)
	if err == sql.ErrNoRows {
		return fuse.Word{}, false, nil
	}
	if err != nil {
		return fuse.Word{}, false, err
	}
	return w, true, nil
}

// RadicalMembers returns the member characters of a radical in their stored
// pedagogical order.
func RadicalMembers(db DBExecutor, ordinal int) ([]string, error) {
	return stringColumn(db,
		`SELECT glyph FROM radical_members WHERE ordinal = ? ORDER BY position`, ordinal)
}

func stringColumn(db DBExecutor, query string, args ...interface{}) ([]string, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
