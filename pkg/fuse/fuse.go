// Package fuse joins the extractor outputs into one cross-referenced
// dataset: radicals with pedagogically ordered member lists, character
// records with decompositions and example vocabulary, and the subset of
// dictionary words those records reference.
package fuse

import (
	"sort"
	"strconv"

	"go.uber.org/zap"

	"github.com/linqiu/hanforge/pkg/cedict"
	"github.com/linqiu/hanforge/pkg/ids"
	"github.com/linqiu/hanforge/pkg/kangxi"
	"github.com/linqiu/hanforge/pkg/unihan"
)

const (
	// maxExampleWords caps the example vocabulary per character.
	maxExampleWords = 30
	// unrankedSort places words without a frequency rank behind every
	// ranked word when ordering example lists.
	unrankedSort = 999999
	// unrankedGradeSort places ungraded characters behind every graded one
	// inside a radical's member list.
	unrankedGradeSort = 99
	// componentGloss is the fallback definition for promoted components
	// that carry a reading but no attested definition.
	componentGloss = "component"
)

// Inputs bundles every extractor output consumed by the fusion pass. The
// readings, radical/stroke, and grade maps are keyed by codepoint
// identifier; everything else is keyed by literal character or word.
type Inputs struct {
	Readings      map[string]unihan.Reading
	RadicalStroke map[string]unihan.RadicalStroke
	GradeLevels   map[string]int
	Variants      *unihan.Variants
	Dict          *cedict.Dict
	Decomps       map[string]ids.Decomposition
	WordRanks     map[string]int
	CharRanks     map[string]int
}

// Engine fuses extractor outputs into the final dataset. The radical table
// is passed in explicitly; the engine never reaches for ambient state.
type Engine struct {
	radicals map[int]kangxi.Radical
	log      *zap.Logger
}

// NewEngine creates a fusion engine over the given radical enumeration.
// A nil logger disables progress logging.
func NewEngine(radicals map[int]kangxi.Radical, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{radicals: radicals, log: log}
}

// Build runs the full fusion: seed radicals, merge character records, order
// member lists, promote referenced components, run the cross-variant
// enrichment pass, and collect the referenced word subset.
func (e *Engine) Build(in Inputs) *Dataset {
	if in.Variants == nil {
		in.Variants = &unihan.Variants{}
	}
	if in.Dict == nil {
		in.Dict = &cedict.Dict{}
	}
	appearsIn := ids.BuildAppearsIn(in.Decomps)

	ds := &Dataset{
		Radicals:   e.seedRadicals(),
		Characters: make(map[string]Character),
	}

	e.buildCharacters(ds, in, appearsIn)
	e.promoteComponents(ds, in, appearsIn)
	e.sortMembers(ds)
	ds.Characters = e.enrichVariants(ds.Characters)
	ds.Words = e.collectWords(ds.Characters, in)

	e.log.Info("fusion complete",
		zap.Int("characters", len(ds.Characters)),
		zap.Int("words", len(ds.Words)))
	return ds
}

func (e *Engine) seedRadicals() map[string]*Radical {
	out := make(map[string]*Radical, len(e.radicals))
	for ordinal, r := range e.radicals {
		out[strconv.Itoa(ordinal)] = &Radical{
			Char:       r.Glyph,
			Pinyin:     r.Pinyin,
			Meaning:    r.Meaning,
			Characters: []string{},
		}
	}
	return out
}

// buildCharacters merges one Character per radical/stroke record whose
// radical ordinal is known and whose character has an attested definition.
func (e *Engine) buildCharacters(ds *Dataset, in Inputs, appearsIn map[string][]string) {
	for cp, rs := range in.RadicalStroke {
		if _, known := e.radicals[rs.Radical]; !known {
			continue
		}
		reading := in.Readings[cp]
		if reading.Definition == "" {
			continue
		}
		r, err := unihan.ParseCodepoint(cp)
		if err != nil {
			continue
		}
		char := string(r)

		ds.Characters[char] = Character{
			Radical:       strconv.Itoa(rs.Radical),
			Strokes:       rs.Strokes,
			Pinyin:        reading.Pinyin,
			Definition:    reading.Definition,
			GradeLevel:    in.GradeLevels[cp],
			CharFrequency: in.CharRanks[char],
			IDS:           in.Decomps[char].IDS,
			Components:    componentsOf(in.Decomps, char),
			Words:         e.exampleWords(char, in),
			AppearsIn:     appearsList(appearsIn, char),
			Traditional:   in.Variants.SimpToTrad[char],
			Simplified:    in.Variants.TradToSimp[char],
		}
		ordinal := strconv.Itoa(rs.Radical)
		ds.Radicals[ordinal].Characters = append(ds.Radicals[ordinal].Characters, char)
	}
	e.log.Info("characters merged", zap.Int("count", len(ds.Characters)))
}

// exampleWords returns up to maxExampleWords words containing char, most
// frequent first, ties broken lexicographically.
func (e *Engine) exampleWords(char string, in Inputs) []string {
	candidates := in.Dict.ByChar[char]
	words := make([]string, len(candidates))
	copy(words, candidates)

	sort.Slice(words, func(i, j int) bool {
		ri, rj := wordSortRank(in.WordRanks, words[i]), wordSortRank(in.WordRanks, words[j])
		if ri != rj {
			return ri < rj
		}
		return words[i] < words[j]
	})
	if len(words) > maxExampleWords {
		words = words[:maxExampleWords]
	}
	return words
}

func wordSortRank(ranks map[string]int, word string) int {
	if rank, ok := ranks[word]; ok && rank > 0 {
		return rank
	}
	return unrankedSort
}

// promoteComponents adds a minimal record for every decomposition component
// that was filtered out of the main set but has an independently attested
// reading, so each referenced component stays look-up-able. A promoted
// component whose radical ordinal is known also joins that radical's member
// list.
func (e *Engine) promoteComponents(ds *Dataset, in Inputs, appearsIn map[string][]string) {
	missing := make(map[string]struct{})
	for _, c := range ds.Characters {
		for _, comp := range c.Components {
			if _, ok := ds.Characters[comp]; !ok {
				missing[comp] = struct{}{}
			}
		}
	}

	comps := make([]string, 0, len(missing))
	for comp := range missing {
		comps = append(comps, comp)
	}
	sort.Strings(comps)

	promoted := 0
	for _, comp := range comps {
		r, ok := firstRune(comp)
		if !ok {
			continue
		}
		cp := unihan.FormatCodepoint(r)
		reading := in.Readings[cp]
		if reading.Pinyin == "" {
			continue
		}

		definition := reading.Definition
		if definition == "" {
			definition = componentGloss
		}
		rs := in.RadicalStroke[cp]
		ds.Characters[comp] = Character{
			Radical:       strconv.Itoa(rs.Radical),
			Strokes:       rs.Strokes,
			Pinyin:        reading.Pinyin,
			Definition:    definition,
			CharFrequency: in.CharRanks[comp],
			IDS:           in.Decomps[comp].IDS,
			Components:    componentsOf(in.Decomps, comp),
			Words:         []string{},
			AppearsIn:     appearsList(appearsIn, comp),
			Traditional:   in.Variants.SimpToTrad[comp],
			Simplified:    in.Variants.TradToSimp[comp],
		}
		if _, known := e.radicals[rs.Radical]; known {
			ordinal := strconv.Itoa(rs.Radical)
			ds.Radicals[ordinal].Characters = append(ds.Radicals[ordinal].Characters, comp)
		}
		promoted++
	}
	e.log.Info("components promoted", zap.Int("count", promoted))
}

// sortMembers orders each radical's member list into a learning sequence:
// graded characters first, by grade then stroke count, with the character
// itself as the final tie-break so the order is total.
func (e *Engine) sortMembers(ds *Dataset) {
	for _, radical := range ds.Radicals {
		members := radical.Characters
		sort.Slice(members, func(i, j int) bool {
			a, b := ds.Characters[members[i]], ds.Characters[members[j]]
			ga, gb := gradeSortKey(a.GradeLevel), gradeSortKey(b.GradeLevel)
			if ga != gb {
				return ga < gb
			}
			if a.Strokes != b.Strokes {
				return a.Strokes < b.Strokes
			}
			return members[i] < members[j]
		})
	}
}

func gradeSortKey(grade int) int {
	if grade > 0 {
		return grade
	}
	return unrankedGradeSort
}

// enrichVariants is the cross-variant backfill pass: a record missing a
// grade level inherits it from its traditional counterpart (grade curricula
// are curated against the traditional record's pairing), and a record
// missing a frequency rank inherits it from its simplified counterpart
// (frequency corpora are simplified-script). Counterpart values are read
// from the pre-enrichment snapshot, so the result does not depend on
// iteration order.
func (e *Engine) enrichVariants(snapshot map[string]Character) map[string]Character {
	enriched := make(map[string]Character, len(snapshot))
	grades, freqs := 0, 0

	for char, c := range snapshot {
		if c.GradeLevel == 0 && c.Traditional != "" {
			if trad, ok := snapshot[c.Traditional]; ok && trad.GradeLevel > 0 {
				c.GradeLevel = trad.GradeLevel
				grades++
			}
		}
		if c.CharFrequency == 0 && c.Simplified != "" {
			if simp, ok := snapshot[c.Simplified]; ok && simp.CharFrequency > 0 {
				c.CharFrequency = simp.CharFrequency
				freqs++
			}
		}
		enriched[char] = c
	}

	e.log.Info("variant enrichment",
		zap.Int("inheritedGrades", grades),
		zap.Int("inheritedFrequencies", freqs))
	return enriched
}

// collectWords gathers every example word referenced by a retained character
// and keeps the ones with a dictionary entry, attaching the primary gloss
// and frequency rank.
func (e *Engine) collectWords(chars map[string]Character, in Inputs) map[string]Word {
	referenced := make(map[string]struct{})
	for _, c := range chars {
		for _, w := range c.Words {
			referenced[w] = struct{}{}
		}
	}

	words := make(map[string]Word)
	for w := range referenced {
		entry, ok := in.Dict.Words[w]
		if !ok {
			continue
		}
		words[w] = Word{
			Traditional: entry.Traditional,
			Pinyin:      entry.Pinyin,
			Definition:  entry.PrimaryGloss(),
			Frequency:   in.WordRanks[w],
		}
	}
	return words
}

func componentsOf(decomps map[string]ids.Decomposition, char string) []string {
	comps := decomps[char].Components
	if comps == nil {
		return []string{}
	}
	out := make([]string, len(comps))
	copy(out, comps)
	return out
}

func appearsList(appearsIn map[string][]string, char string) []string {
	list := appearsIn[char]
	if list == nil {
		return []string{}
	}
	out := make([]string, len(list))
	copy(out, list)
	return out
}

func firstRune(s string) (rune, bool) {
	for _, r := range s {
		return r, true
	}
	return 0, false
}
