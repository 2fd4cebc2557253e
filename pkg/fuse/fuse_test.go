package fuse

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linqiu/hanforge/pkg/cedict"
	"github.com/linqiu/hanforge/pkg/ids"
	"github.com/linqiu/hanforge/pkg/kangxi"
	"github.com/linqiu/hanforge/pkg/unihan"
)

func newTestEngine() *Engine {
	return NewEngine(kangxi.Table(), nil)
}

func emptyInputs() Inputs {
	return Inputs{
		Readings:      map[string]unihan.Reading{},
		RadicalStroke: map[string]unihan.RadicalStroke{},
		GradeLevels:   map[string]int{},
		Variants:      &unihan.Variants{SimpToTrad: map[string]string{}, TradToSimp: map[string]string{}},
		Dict:          &cedict.Dict{Words: map[string]cedict.Entry{}, ByChar: map[string][]string{}},
		Decomps:       map[string]ids.Decomposition{},
		WordRanks:     map[string]int{},
		CharRanks:     map[string]int{},
	}
}

func TestBuildMinimalCharacter(t *testing.T) {
	in := emptyInputs()
	in.Readings["U+4E00"] = unihan.Reading{Pinyin: "yi1", Definition: "one"}
	in.RadicalStroke["U+4E00"] = unihan.RadicalStroke{Radical: 9, Strokes: 2}

	ds := newTestEngine().Build(in)

	c, ok := ds.Characters["一"]
	require.True(t, ok)
	assert.Equal(t, "9", c.Radical)
	assert.Equal(t, 2, c.Strokes)
	assert.Equal(t, "yi1", c.Pinyin)
	assert.Equal(t, "one", c.Definition)
	assert.Zero(t, c.GradeLevel)
	assert.Zero(t, c.CharFrequency)
	assert.Empty(t, c.Components)
	assert.Empty(t, c.Words)
	assert.Empty(t, c.AppearsIn)

	assert.Equal(t, []string{"一"}, ds.Radicals["9"].Characters)
	assert.Empty(t, ds.Radicals["1"].Characters)
	assert.Len(t, ds.Radicals, kangxi.Count)
}

func TestBuildRequiresDefinition(t *testing.T) {
	in := emptyInputs()
	in.Readings["U+4E00"] = unihan.Reading{Pinyin: "yi1"}
	in.RadicalStroke["U+4E00"] = unihan.RadicalStroke{Radical: 1, Strokes: 0}

	ds := newTestEngine().Build(in)

	assert.Empty(t, ds.Characters)
	assert.Empty(t, ds.Radicals["1"].Characters)
}

func TestBuildRequiresKnownRadical(t *testing.T) {
	in := emptyInputs()
	in.Readings["U+4E00"] = unihan.Reading{Pinyin: "yi1", Definition: "one"}
	in.RadicalStroke["U+4E00"] = unihan.RadicalStroke{Radical: 215, Strokes: 0}

	ds := newTestEngine().Build(in)
	assert.Empty(t, ds.Characters)
}

func TestBuildDecompositionAndPromotion(t *testing.T) {
	in := emptyInputs()
	in.Readings["U+5B89"] = unihan.Reading{Pinyin: "an1", Definition: "peace"}
	in.Readings["U+5973"] = unihan.Reading{Pinyin: "nv3", Definition: "woman"}
	// 宀 has a reading but no definition: filtered from the main set, then
	// promoted because 安 references it as a component.
	in.Readings["U+5B80"] = unihan.Reading{Pinyin: "mian2"}
	in.RadicalStroke["U+5B89"] = unihan.RadicalStroke{Radical: 40, Strokes: 3}
	in.RadicalStroke["U+5973"] = unihan.RadicalStroke{Radical: 38, Strokes: 0}
	in.RadicalStroke["U+5B80"] = unihan.RadicalStroke{Radical: 40, Strokes: 0}
	in.Decomps["安"] = ids.Decomposition{IDS: "⿱宀女", Components: []string{"宀", "女"}}

	ds := newTestEngine().Build(in)

	an, ok := ds.Characters["安"]
	require.True(t, ok)
	assert.Equal(t, []string{"宀", "女"}, an.Components)
	assert.NotContains(t, an.Components, "安")

	mian, ok := ds.Characters["宀"]
	require.True(t, ok, "referenced component with attested reading must be promoted")
	assert.Equal(t, "component", mian.Definition)
	assert.Equal(t, "mian2", mian.Pinyin)
	assert.Empty(t, mian.Words)
	assert.Equal(t, []string{"安"}, mian.AppearsIn)
	assert.Equal(t, []string{"安"}, ds.Characters["女"].AppearsIn)

	// The promoted component joins its radical's member list, ordered by
	// stroke count among the ungraded.
	assert.Equal(t, []string{"宀", "安"}, ds.Radicals["40"].Characters)
}

func TestBuildPromotionRequiresReading(t *testing.T) {
	in := emptyInputs()
	in.Readings["U+5B89"] = unihan.Reading{Pinyin: "an1", Definition: "peace"}
	in.RadicalStroke["U+5B89"] = unihan.RadicalStroke{Radical: 40, Strokes: 3}
	in.Decomps["安"] = ids.Decomposition{IDS: "⿱宀女", Components: []string{"宀", "女"}}

	ds := newTestEngine().Build(in)

	_, ok := ds.Characters["宀"]
	assert.False(t, ok, "components without an attested reading stay out")
	_, ok = ds.Characters["女"]
	assert.False(t, ok)
}

func TestBuildExampleWordOrder(t *testing.T) {
	in := emptyInputs()
	in.Readings["U+597D"] = unihan.Reading{Pinyin: "hao3", Definition: "good"}
	in.RadicalStroke["U+597D"] = unihan.RadicalStroke{Radical: 38, Strokes: 3}
	in.Dict.Words["好人"] = cedict.Entry{Traditional: "好人", Simplified: "好人", Pinyin: "hao3 ren2", Definitions: []string{"good person"}}
	in.Dict.Words["你好"] = cedict.Entry{Traditional: "你好", Simplified: "你好", Pinyin: "ni3 hao3", Definitions: []string{"hello", "hi"}}
	in.Dict.Words["好事"] = cedict.Entry{Traditional: "好事", Simplified: "好事", Pinyin: "hao3 shi4", Definitions: []string{"good deed"}}
	in.Dict.ByChar["好"] = []string{"好人", "你好", "好事"}
	in.WordRanks = map[string]int{"你好": 5, "好事": 2}

	ds := newTestEngine().Build(in)

	// Ranked words first by rank; unranked words last, lexicographically.
	assert.Equal(t, []string{"好事", "你好", "好人"}, ds.Characters["好"].Words)

	require.Len(t, ds.Words, 3)
	assert.Equal(t, Word{Traditional: "你好", Pinyin: "ni3 hao3", Definition: "hello", Frequency: 5}, ds.Words["你好"])
	assert.Zero(t, ds.Words["好人"].Frequency)
}

func TestBuildWordSubsetDropsMissingEntries(t *testing.T) {
	in := emptyInputs()
	in.Readings["U+5B89"] = unihan.Reading{Pinyin: "an1", Definition: "peace"}
	in.RadicalStroke["U+5B89"] = unihan.RadicalStroke{Radical: 40, Strokes: 3}
	in.Dict.Words["安全"] = cedict.Entry{Traditional: "安全", Simplified: "安全", Pinyin: "an1 quan2", Definitions: []string{"safety"}}
	// 幽灵 is indexed but has no word-table entry.
	in.Dict.ByChar["安"] = []string{"安全", "幽灵"}

	ds := newTestEngine().Build(in)

	assert.Contains(t, ds.Characters["安"].Words, "幽灵")
	_, ok := ds.Words["幽灵"]
	assert.False(t, ok, "words without a dictionary entry are discarded")
	_, ok = ds.Words["安全"]
	assert.True(t, ok)
}

func TestBuildDictionaryExample(t *testing.T) {
	in := emptyInputs()
	in.Readings["U+4F20"] = unihan.Reading{Pinyin: "chuan2", Definition: "to pass on"}
	in.RadicalStroke["U+4F20"] = unihan.RadicalStroke{Radical: 9, Strokes: 4}
	in.Dict.Words["传统"] = cedict.Entry{Traditional: "傳統", Simplified: "传统", Pinyin: "chuan2 tong3", Definitions: []string{"tradition", "convention"}}
	in.Dict.ByChar["传"] = []string{"传统"}

	ds := newTestEngine().Build(in)

	w, ok := ds.Words["传统"]
	require.True(t, ok)
	assert.Equal(t, "tradition", w.Definition, "only the first definition segment is kept")
	assert.Equal(t, "傳統", w.Traditional)
}

func TestBuildVariantEnrichment(t *testing.T) {
	in := emptyInputs()
	in.Readings["U+4F20"] = unihan.Reading{Pinyin: "chuan2", Definition: "to pass on"}
	in.Readings["U+50B3"] = unihan.Reading{Pinyin: "chuan2", Definition: "to pass on"}
	in.RadicalStroke["U+4F20"] = unihan.RadicalStroke{Radical: 9, Strokes: 4}
	in.RadicalStroke["U+50B3"] = unihan.RadicalStroke{Radical: 9, Strokes: 11}
	// The grade curriculum annotates the traditional record; the frequency
	// corpus ranks the simplified form.
	in.GradeLevels["U+50B3"] = 3
	in.CharRanks["传"] = 42
	in.Variants.SimpToTrad["传"] = "傳"
	in.Variants.TradToSimp["傳"] = "传"

	ds := newTestEngine().Build(in)

	assert.Equal(t, 3, ds.Characters["传"].GradeLevel, "simplified inherits grade from traditional")
	assert.Equal(t, 42, ds.Characters["傳"].CharFrequency, "traditional inherits frequency from simplified")
	assert.Equal(t, 3, ds.Characters["傳"].GradeLevel)
	assert.Equal(t, 42, ds.Characters["传"].CharFrequency)
}

func TestBuildMemberOrder(t *testing.T) {
	in := emptyInputs()
	in.Readings["U+4E00"] = unihan.Reading{Pinyin: "yi1", Definition: "one"}
	in.Readings["U+4E01"] = unihan.Reading{Pinyin: "ding1", Definition: "fourth"}
	in.Readings["U+4E03"] = unihan.Reading{Pinyin: "qi1", Definition: "seven"}
	in.Readings["U+4E09"] = unihan.Reading{Pinyin: "san1", Definition: "three"}
	in.RadicalStroke["U+4E00"] = unihan.RadicalStroke{Radical: 1, Strokes: 0}
	in.RadicalStroke["U+4E01"] = unihan.RadicalStroke{Radical: 1, Strokes: 1}
	in.RadicalStroke["U+4E03"] = unihan.RadicalStroke{Radical: 1, Strokes: 1}
	in.RadicalStroke["U+4E09"] = unihan.RadicalStroke{Radical: 1, Strokes: 2}
	in.GradeLevels["U+4E00"] = 1
	in.GradeLevels["U+4E03"] = 1
	in.GradeLevels["U+4E09"] = 2

	ds := newTestEngine().Build(in)

	// Graded characters first (grade, then strokes); ungraded last.
	assert.Equal(t, []string{"一", "七", "三", "丁"}, ds.Radicals["1"].Characters)
}

func TestBuildMissingFrequencySources(t *testing.T) {
	in := emptyInputs()
	in.Readings["U+5B89"] = unihan.Reading{Pinyin: "an1", Definition: "peace"}
	in.RadicalStroke["U+5B89"] = unihan.RadicalStroke{Radical: 40, Strokes: 3}
	in.Dict.Words["安全"] = cedict.Entry{Traditional: "安全", Simplified: "安全", Pinyin: "an1 quan2", Definitions: []string{"safety"}}
	in.Dict.ByChar["安"] = []string{"安全"}

	ds := newTestEngine().Build(in)

	assert.Zero(t, ds.Characters["安"].CharFrequency)
	assert.Zero(t, ds.Words["安全"].Frequency)
}

func TestBuildIdempotent(t *testing.T) {
	in := emptyInputs()
	in.Readings["U+5B89"] = unihan.Reading{Pinyin: "an1", Definition: "peace"}
	in.Readings["U+5973"] = unihan.Reading{Pinyin: "nv3", Definition: "woman"}
	in.Readings["U+5B80"] = unihan.Reading{Pinyin: "mian2"}
	in.RadicalStroke["U+5B89"] = unihan.RadicalStroke{Radical: 40, Strokes: 3}
	in.RadicalStroke["U+5973"] = unihan.RadicalStroke{Radical: 38, Strokes: 0}
	in.Decomps["安"] = ids.Decomposition{IDS: "⿱宀女", Components: []string{"宀", "女"}}
	in.Dict.Words["安全"] = cedict.Entry{Traditional: "安全", Simplified: "安全", Pinyin: "an1 quan2", Definitions: []string{"safety"}}
	in.Dict.ByChar["安"] = []string{"安全"}

	dir := t.TempDir()
	pathA := filepath.Join(dir, "a.json")
	pathB := filepath.Join(dir, "b.json")

	require.NoError(t, newTestEngine().Build(in).WriteJSON(pathA))
	require.NoError(t, newTestEngine().Build(in).WriteJSON(pathB))

	a, err := os.ReadFile(pathA)
	require.NoError(t, err)
	b, err := os.ReadFile(pathB)
	require.NoError(t, err)
	assert.Equal(t, a, b, "identical sources must produce byte-identical output")
}

// Round-trip property: every member of a radical list resolves to a
// character record, and every character with a known radical appears in
// that radical's list.
func TestBuildRoundTrip(t *testing.T) {
	in := emptyInputs()
	in.Readings["U+4E00"] = unihan.Reading{Pinyin: "yi1", Definition: "one"}
	in.Readings["U+5B89"] = unihan.Reading{Pinyin: "an1", Definition: "peace"}
	in.Readings["U+5B80"] = unihan.Reading{Pinyin: "mian2"}
	in.RadicalStroke["U+4E00"] = unihan.RadicalStroke{Radical: 1, Strokes: 0}
	in.RadicalStroke["U+5B89"] = unihan.RadicalStroke{Radical: 40, Strokes: 3}
	in.RadicalStroke["U+5B80"] = unihan.RadicalStroke{Radical: 40, Strokes: 0}
	in.Decomps["安"] = ids.Decomposition{IDS: "⿱宀女", Components: []string{"宀", "女"}}

	ds := newTestEngine().Build(in)

	listed := make(map[string]bool)
	for _, r := range ds.Radicals {
		for _, glyph := range r.Characters {
			listed[glyph] = true
			_, ok := ds.Characters[glyph]
			assert.True(t, ok, "member %s must have a character record", glyph)
		}
	}
	for glyph, c := range ds.Characters {
		ordinal, err := strconv.Atoi(c.Radical)
		require.NoError(t, err)
		if _, known := kangxi.Lookup(ordinal); known {
			assert.True(t, listed[glyph], "character %s with known radical must be listed", glyph)
		}
	}
}
