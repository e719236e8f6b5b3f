package sheet

import (
	"testing"

	"script-sheets/internal/script"
)

func jinxes(n int) []script.Jinx {
	out := make([]script.Jinx, n)
	for i := range out {
		out[i] = script.Jinx{Characters: [2]string{"a", "b"}, Text: "jinx"}
	}
	return out
}

func TestSplitColumnsBalanced(t *testing.T) {
	for n := 0; n <= 13; n++ {
		items := make([]int, n)
		left, right := SplitColumns(items)
		if len(left)+len(right) != n {
			t.Fatalf("n=%d: lost items, got %d+%d", n, len(left), len(right))
		}
		diff := len(left) - len(right)
		if diff < 0 || diff > 1 {
			t.Fatalf("n=%d: expected left to be equal or one longer, got %d/%d", n, len(left), len(right))
		}
	}
	left, right := SplitColumns([]string{"a", "b", "c", "d", "e"})
	if len(left) != 3 || left[2] != "c" || right[0] != "d" {
		t.Fatalf("unexpected split %v / %v", left, right)
	}
}

func TestColumnJustify(t *testing.T) {
	if ColumnJustify(8) != "flex-start" || ColumnJustify(9) != "space-between" {
		t.Fatal("unexpected justify threshold")
	}
}

func TestLayoutJinxes(t *testing.T) {
	single := LayoutJinxes(jinxes(3), nil)
	if single.TwoColumns() || len(single.LeftJinxes) != 3 {
		t.Fatalf("expected single column of 3, got %#v", single)
	}

	four := LayoutJinxes(jinxes(4), nil)
	if four.TwoColumns() {
		t.Fatal("expected four jinxes to stay in one column")
	}

	split := LayoutJinxes(jinxes(5), nil)
	if !split.TwoColumns() || len(split.LeftJinxes) != 3 || len(split.RightJinxes) != 2 {
		t.Fatalf("expected 3/2 split, got %d/%d", len(split.LeftJinxes), len(split.RightJinxes))
	}

	fabled := LayoutJinxes(jinxes(2), []script.FabledOrLoric{{Name: "Djinn"}})
	if !fabled.TwoColumns() || len(fabled.LeftJinxes) != 2 || len(fabled.RightJinxes) != 0 || len(fabled.Fabled) != 1 {
		t.Fatalf("expected jinxes left and fabled right, got %#v", fabled)
	}

	fabledOnly := LayoutJinxes(nil, []script.FabledOrLoric{{Name: "Djinn"}})
	if fabledOnly.Empty() {
		t.Fatal("expected fabled-only layout to be non-empty")
	}
	if !LayoutJinxes(nil, nil).Empty() {
		t.Fatal("expected empty layout")
	}
}

func TestSections(t *testing.T) {
	grouped := script.GroupedCharacters{
		Townsfolk: []script.Character{{ID: "a"}},
		Demon:     []script.Character{{ID: "b"}},
	}
	sections := Sections(grouped, func(team string) string { return "#" + team })
	if len(sections) != 2 || sections[0].Title != "Townsfolk" || sections[1].Title != "Demons" {
		t.Fatalf("unexpected sections %#v", sections)
	}
	if sections[1].Color != "#demon" {
		t.Fatalf("unexpected colour %s", sections[1].Color)
	}
}

func TestSplitAbility(t *testing.T) {
	before, setup := SplitAbility("You do not know you are the Drunk. [+1 Outsider]")
	if before != "You do not know you are the Drunk. " || setup != "[+1 Outsider]" {
		t.Fatalf("unexpected split %q / %q", before, setup)
	}

	text := "Each night*, choose a player: they die."
	before, setup = SplitAbility(text)
	if before != text || setup != "" {
		t.Fatalf("expected unchanged ability, got %q / %q", before, setup)
	}

	before, setup = SplitAbility("[a] middle [b] tail")
	if setup != "" || before != "[a] middle [b] tail" {
		t.Fatalf("expected non-trailing brackets to be ignored, got %q / %q", before, setup)
	}

	before, setup = SplitAbility("Odd [one] text [-1 Townsfolk]")
	if before != "Odd " || setup != "[one] text [-1 Townsfolk]" {
		t.Fatalf("expected setup from the first bracket, got %q / %q", before, setup)
	}

	before, setup = SplitAbility("a [x] b [y]")
	if before != "a " || setup != "[x] b [y]" {
		t.Fatalf("unexpected split %q / %q", before, setup)
	}
}

func TestReminderSegments(t *testing.T) {
	segments := ReminderSegments("Show the *THIS IS THE DEMON* token. Place :reminder: here.")
	want := []Segment{
		{Kind: SegmentText, Text: "Show the "},
		{Kind: SegmentBold, Text: "THIS IS THE DEMON"},
		{Kind: SegmentText, Text: " token. Place "},
		{Kind: SegmentReminderIcon},
		{Kind: SegmentText, Text: " here."},
	}
	if len(segments) != len(want) {
		t.Fatalf("expected %d segments, got %#v", len(want), segments)
	}
	for i := range want {
		if segments[i] != want[i] {
			t.Fatalf("segment %d: expected %#v, got %#v", i, want[i], segments[i])
		}
	}

	plain := ReminderSegments("Nothing special.")
	if len(plain) != 1 || plain[0].Kind != SegmentText {
		t.Fatalf("unexpected plain segments %#v", plain)
	}
}

func TestFormatMinorWords(t *testing.T) {
	words := FormatMinorWords("the tale of a LOST town")
	want := []TitleWord{
		{Text: "The"},
		{Space: " ", Text: "Tale"},
		{Space: " ", Text: "of", Minor: true},
		{Space: " ", Text: "a", Minor: true},
		{Space: " ", Text: "LOST"},
		{Space: " ", Text: "Town"},
	}
	if len(words) != len(want) {
		t.Fatalf("expected %d words, got %#v", len(want), words)
	}
	for i := range want {
		if words[i] != want[i] {
			t.Fatalf("word %d: expected %#v, got %#v", i, want[i], words[i])
		}
	}
	spaced := FormatMinorWords(" trouble  in   town ")
	if len(spaced) != 4 || spaced[0].Space != " " || spaced[1].Space != "  " || !spaced[1].Minor || spaced[2].Space != "   " || spaced[3] != (TitleWord{Space: " "}) {
		t.Fatalf("expected whitespace to be kept, got %#v", spaced)
	}
	if parts := SplitTitle("Trouble & Brewing"); len(parts) != 2 || parts[1] != " Brewing" {
		t.Fatalf("unexpected title parts %#v", parts)
	}
}

func TestPlayerCounts(t *testing.T) {
	counts := PlayerCounts()
	if len(counts) != 11 || counts[0].Players != 5 || counts[10].Players != 15 {
		t.Fatalf("unexpected table %#v", counts)
	}
	for _, row := range counts {
		if row.Townsfolk+row.Outsiders+row.Minions+row.Demons != row.Players {
			t.Fatalf("row for %d players does not add up: %#v", row.Players, row)
		}
	}
}
