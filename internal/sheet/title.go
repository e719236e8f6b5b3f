package sheet

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var minorWords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "as": {}, "at": {}, "but": {}, "by": {}, "for": {},
	"in": {}, "nor": {}, "of": {}, "on": {}, "or": {}, "the": {}, "to": {}, "with": {},
}

var titleWord = regexp.MustCompile(`\S+`)

// TitleWord is one word of a title. Space holds the whitespace that preceded
// it in the source text, and a trailing entry with empty Text carries any
// whitespace after the last word.
type TitleWord struct {
	Space string
	Text  string
	Minor bool
}

// FormatMinorWords capitalises every word of a title fragment and flags the
// minor words (other than the first) so they render small.
func FormatMinorWords(text string) []TitleWord {
	caser := cases.Title(language.English, cases.NoLower)
	spans := titleWord.FindAllStringIndex(text, -1)
	out := make([]TitleWord, 0, len(spans)+1)
	prev := 0
	for i, span := range spans {
		space, word := text[prev:span[0]], text[span[0]:span[1]]
		prev = span[1]
		lower := strings.ToLower(word)
		if _, minor := minorWords[lower]; minor && i > 0 {
			out = append(out, TitleWord{Space: space, Text: lower, Minor: true})
			continue
		}
		out = append(out, TitleWord{Space: space, Text: caser.String(word)})
	}
	if prev < len(text) {
		out = append(out, TitleWord{Space: text[prev:]})
	}
	return out
}

// SplitTitle splits a title on "&" so the ampersands can be styled apart.
func SplitTitle(title string) []string {
	return strings.Split(title, "&")
}
