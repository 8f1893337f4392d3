package cardparser

import "unicode/utf8"

// DefaultMinBlockLength is the longest trimmed fragment still treated as
// noise; only fragments strictly longer than this become blocks.
const DefaultMinBlockLength = 30

// markerPattern finds the header that opens every cardholder block.
var markerPattern = mustCompilePattern(`(?i)Cardholder\s+Name\s*:`)

// SplitBlocks cuts text immediately before every cardholder marker so the
// marker stays at the start of its block. N markers give N+1 fragments (the
// first is whatever precedes the first marker). Fragments are trimmed and
// those of minLength runes or fewer are dropped. Order is preserved.
func SplitBlocks(text string, minLength int) []string {
	cuts := []int{0}
	for _, loc := range markerPattern.FindAllStringIndex(text, -1) {
		cuts = append(cuts, loc[0])
	}
	cuts = append(cuts, len(text))

	var blocks []string
	for i := 0; i < len(cuts)-1; i++ {
		fragment := trimSpace(text[cuts[i]:cuts[i+1]])
		if utf8.RuneCountInString(fragment) > minLength {
			blocks = append(blocks, fragment)
		}
	}
	return blocks
}
