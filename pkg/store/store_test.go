package store

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linqiu/hanforge/pkg/fuse"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	// Every pooled connection would otherwise see its own empty in-memory db.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, Init(db))
	return db
}

func sampleDataset() *fuse.Dataset {
	return &fuse.Dataset{
		Radicals: map[string]*fuse.Radical{
			"38": {Char: "女", Pinyin: "nǚ", Meaning: "woman", Characters: []string{"女"}},
			"40": {Char: "宀", Pinyin: "mián", Meaning: "roof", Characters: []string{"宀", "安"}},
		},
		Characters: map[string]fuse.Character{
			"安": {
				Radical: "40", Strokes: 3, Pinyin: "an1", Definition: "peace",
				GradeLevel: 1, CharFrequency: 7, IDS: "⿱宀女",
				Components: []string{"宀", "女"}, Words: []string{"安全"}, AppearsIn: []string{},
			},
			"女": {
				Radical: "38", Strokes: 0, Pinyin: "nv3", Definition: "woman",
				Components: []string{}, Words: []string{}, AppearsIn: []string{"安"},
			},
			"宀": {
				Radical: "40", Strokes: 0, Pinyin: "mian2", Definition: "component",
				Components: []string{}, Words: []string{}, AppearsIn: []string{"安"},
			},
		},
		Words: map[string]fuse.Word{
			"安全": {Traditional: "安全", Pinyin: "an1 quan2", Definition: "safety", Frequency: 12},
		},
	}
}

func TestLoadAndGetCharacter(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Load(db, sampleDataset()))

	c, ok, err := GetCharacter(db, "安")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "40", c.Radical)
	assert.Equal(t, 3, c.Strokes)
	assert.Equal(t, "peace", c.Definition)
	assert.Equal(t, 1, c.GradeLevel)
	assert.Equal(t, 7, c.CharFrequency)
	assert.Equal(t, "⿱宀女", c.IDS)
	assert.Equal(t, []string{"宀", "女"}, c.Components)
	assert.Equal(t, []string{"安全"}, c.Words)
	assert.Empty(t, c.AppearsIn)
	assert.Empty(t, c.Traditional, "NULL round-trips to the empty string")

	nv, ok, err := GetCharacter(db, "女")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"安"}, nv.AppearsIn)

	_, ok, err = GetCharacter(db, "龙")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGetWord(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Load(db, sampleDataset()))

	w, ok, err := GetWord(db, "安全")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, fuse.Word{Traditional: "安全", Pinyin: "an1 quan2", Definition: "safety", Frequency: 12}, w)

	_, ok, err = GetWord(db, "幽灵")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRadicalMembersOrder(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Load(db, sampleDataset()))

	members, err := RadicalMembers(db, 40)
	require.NoError(t, err)
	assert.Equal(t, []string{"宀", "安"}, members, "stored order must survive the round trip")

	members, err = RadicalMembers(db, 214)
	require.NoError(t, err)
	assert.Empty(t, members)
}

func TestLoadReplacesPreviousContents(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Load(db, sampleDataset()))

	smaller := &fuse.Dataset{
		Radicals: map[string]*fuse.Radical{
			"1": {Char: "一", Pinyin: "yī", Meaning: "one", Characters: []string{"一"}},
		},
		Characters: map[string]fuse.Character{
			"一": {
				Radical: "1", Strokes: 0, Pinyin: "yi1", Definition: "one",
				Components: []string{}, Words: []string{}, AppearsIn: []string{},
			},
		},
		Words: map[string]fuse.Word{},
	}
	require.NoError(t, Load(db, smaller))

	_, ok, err := GetCharacter(db, "安")
	require.NoError(t, err)
	assert.False(t, ok, "a reload fully replaces the previous dataset")

	_, ok, err = GetWord(db, "安全")
	require.NoError(t, err)
	assert.False(t, ok)

	members, err := RadicalMembers(db, 40)
	require.NoError(t, err)
	assert.Empty(t, members)
}

func TestLoadRejectsBadRadicalKey(t *testing.T) {
	db := openTestDB(t)
	ds := sampleDataset()
	ds.Radicals["not-a-number"] = &fuse.Radical{Char: "?"}

	require.Error(t, Load(db, ds))

	// The failed transaction must not leave partial rows behind.
	_, ok, err := GetCharacter(db, "安")
	require.NoError(t, err)
	assert.False(t, ok)
}
