package ids

import "sort"

// BuildAppearsIn derives the reverse component index from the forward
// decomposition index in a single pass: for each component, the characters
// it appears in. Characters are visited in sorted key order so the output
// lists are deterministic across runs.
func BuildAppearsIn(decomps map[string]Decomposition) map[string][]string {
	chars := make([]string, 0, len(decomps))
	for char := range decomps {
		chars = append(chars, char)
	}
	sort.Strings(chars)

	appearsIn := make(map[string][]string)
	for _, char := range chars {
		for _, component := range decomps[char].Components {
			appearsIn[component] = append(appearsIn[component], char)
		}
	}
	return appearsIn
}
