package script

// FindJinxes collects the jinxes whose two characters are both on the script,
// from the catalog first and then from jinxes carried on the characters
// themselves. Each pair appears once regardless of order.
func FindJinxes(chars []Character, catalog *Catalog, useOld bool) []Jinx {
	present := make(map[string]struct{}, len(chars))
	for _, ch := range chars {
		present[NormalizeID(ch.ID)] = struct{}{}
	}
	seen := make(map[[2]string]struct{})
	var out []Jinx
	add := func(jinx Jinx) {
		a, b := NormalizeID(jinx.Characters[0]), NormalizeID(jinx.Characters[1])
		if _, ok := present[a]; !ok {
			return
		}
		if _, ok := present[b]; !ok {
			return
		}
		key := [2]string{a, b}
		if b < a {
			key = [2]string{b, a}
		}
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		jinx.Characters = [2]string{a, b}
		if useOld && jinx.OldText != "" {
			jinx.Text = jinx.OldText
		}
		out = append(out, jinx)
	}
	for _, jinx := range catalog.Jinxes() {
		add(jinx)
	}
	for _, ch := range chars {
		for _, cj := range ch.Jinxes {
			add(Jinx{
				Characters: [2]string{ch.ID, cj.ID},
				Text:       cj.Reason,
				OldText:    cj.OldReason,
			})
		}
	}
	return out
}
