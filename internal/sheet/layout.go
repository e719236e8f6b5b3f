// Package sheet holds the layout and text decisions behind the rendered
// sheets, kept free of markup so they can be tested directly.
package sheet

import "script-sheets/internal/script"

// SplitColumns splits items at the ceiling midpoint, so the left column
// takes the extra item of an odd-length list.
func SplitColumns[T any](items []T) ([]T, []T) {
	mid := (len(items) + 1) / 2
	return items[:mid], items[mid:]
}

// ColumnJustify spreads long sections over the full column height.
func ColumnJustify(count int) string {
	if count > 8 {
		return "space-between"
	}
	return "flex-start"
}

// JinxColumnThreshold is the number of jinxes above which they are split
// into two columns when no fabled or loric items need the right column.
const JinxColumnThreshold = 4

type JinxLayout struct {
	LeftJinxes  []script.Jinx
	RightJinxes []script.Jinx
	Fabled      []script.FabledOrLoric
}

func (l JinxLayout) TwoColumns() bool {
	return len(l.RightJinxes) > 0 || len(l.Fabled) > 0
}

func (l JinxLayout) Empty() bool {
	return len(l.LeftJinxes) == 0 && !l.TwoColumns()
}

// LayoutJinxes decides the jinx block: fabled/loric items take the right
// column when present; otherwise jinxes split over two columns only when
// there are more than JinxColumnThreshold of them.
func LayoutJinxes(jinxes []script.Jinx, fabled []script.FabledOrLoric) JinxLayout {
	if len(fabled) > 0 {
		return JinxLayout{LeftJinxes: jinxes, Fabled: fabled}
	}
	if len(jinxes) > JinxColumnThreshold {
		left, right := SplitColumns(jinxes)
		return JinxLayout{LeftJinxes: left, RightJinxes: right}
	}
	return JinxLayout{LeftJinxes: jinxes}
}

type Section struct {
	Key        string
	Title      string
	Color      string
	Characters []script.Character
}

// Sections returns the non-empty player teams in sheet order.
func Sections(grouped script.GroupedCharacters, teamColour func(string) string) []Section {
	all := []Section{
		{Key: "townsfolk", Title: "Townsfolk", Characters: grouped.Townsfolk},
		{Key: "outsider", Title: "Outsiders", Characters: grouped.Outsider},
		{Key: "minion", Title: "Minions", Characters: grouped.Minion},
		{Key: "demon", Title: "Demons", Characters: grouped.Demon},
	}
	out := make([]Section, 0, len(all))
	for _, section := range all {
		if len(section.Characters) == 0 {
			continue
		}
		section.Color = teamColour(section.Key)
		out = append(out, section)
	}
	return out
}
