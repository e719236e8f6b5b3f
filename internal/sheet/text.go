package sheet

import (
	"regexp"
	"strings"
)

const ReminderToken = ":reminder:"

var trailingBrackets = regexp.MustCompile(`(?s)^(.*?)(\[.*\])$`)

// SplitAbility separates a trailing bracketed setup clause ("[+1 Outsider]")
// from the rest of an ability. When the ability ends in "]" the setup runs
// from the first "[". Abilities without one come back unchanged with an
// empty setup.
func SplitAbility(ability string) (string, string) {
	match := trailingBrackets.FindStringSubmatch(ability)
	if match == nil {
		return ability, ""
	}
	return match[1], match[2]
}

type SegmentKind int

const (
	SegmentText SegmentKind = iota
	SegmentBold
	SegmentReminderIcon
)

type Segment struct {
	Kind SegmentKind
	Text string
}

// ReminderSegments splits night reminder text on "*" into alternating
// normal and bold runs; reminder tokens inside normal runs become icons.
func ReminderSegments(text string) []Segment {
	var out []Segment
	for i, part := range strings.Split(text, "*") {
		if i%2 == 1 {
			out = append(out, Segment{Kind: SegmentBold, Text: part})
			continue
		}
		for j, piece := range strings.Split(part, ReminderToken) {
			if j > 0 {
				out = append(out, Segment{Kind: SegmentReminderIcon})
			}
			if piece != "" {
				out = append(out, Segment{Kind: SegmentText, Text: piece})
			}
		}
	}
	return out
}
