package web

import (
	"context"
	"io"

	"script-sheets/internal/script"
	"script-sheets/internal/sheet"

	"github.com/a-h/templ"
)

// JinxesAndSpecial renders the jinx block below the character sections.
// Jinxes naming characters missing from allCharacters show only the icons
// that resolve.
func JinxesAndSpecial(jinxes []script.Jinx, fabled []script.FabledOrLoric, allCharacters []script.Character) templ.Component {
	return jinxBlock(sheet.LayoutJinxes(jinxes, fabled), allCharacters)
}

func jinxBlock(layout sheet.JinxLayout, allCharacters []script.Character) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		charMap := make(map[string]script.Character, len(allCharacters))
		for _, ch := range allCharacters {
			charMap[script.NormalizeID(ch.ID)] = ch
		}

		hw := newHTMLWriter(ctx, w)
		hw.raw(`<div class="jinxes-section"><h2 class="section-title"></h2>`)
		if !layout.TwoColumns() {
			hw.raw(`<div class="jinxes-list">`)
			for _, jinx := range layout.LeftJinxes {
				hw.component(jinxItem(jinx, charMap))
			}
			hw.raw(`</div></div>`)
			return hw.err
		}
		hw.raw(`<div class="jinxes-list jinxes-two-columns"><div class="jinx-column">`)
		for _, jinx := range layout.LeftJinxes {
			hw.component(jinxItem(jinx, charMap))
		}
		hw.raw(`</div><div class="jinx-column">`)
		for _, jinx := range layout.RightJinxes {
			hw.component(jinxItem(jinx, charMap))
		}
		for _, item := range layout.Fabled {
			hw.component(fabledLoricItem(item))
		}
		hw.raw(`</div></div></div>`)
		return hw.err
	})
}

func jinxItem(jinx script.Jinx, charMap map[string]script.Character) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newHTMLWriter(ctx, w)
		hw.raw(`<div class="jinx-item"><div class="jinx-icons">`)
		if ch, ok := charMap[script.NormalizeID(jinx.Characters[0])]; ok {
			hw.component(jinxIcon(ch))
		}
		hw.raw(`<span class="jinx-divider"></span>`)
		if ch, ok := charMap[script.NormalizeID(jinx.Characters[1])]; ok {
			hw.component(jinxIcon(ch))
		}
		hw.raw(`</div><p class="jinx-text">`)
		hw.text(jinx.Text)
		hw.raw(`</p></div>`)
		return hw.err
	})
}

func jinxIcon(ch script.Character) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newHTMLWriter(ctx, w)
		hw.raw(`<div class="jinx-icon-wrapper">`)
		if src := script.ImageURL(ch); src != "" {
			hw.raw(`<img class="jinx-icon"`, attr("src", src), attr("alt", ch.Name), `/>`)
		} else {
			hw.raw(`<div class="jinx-icon-placeholder">`)
			hw.text(script.Initial(ch.Name))
			hw.raw(`</div>`)
		}
		hw.raw(`</div>`)
		return hw.err
	})
}

func fabledLoricItem(item script.FabledOrLoric) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newHTMLWriter(ctx, w)
		hw.raw(`<div class="jinx-item loric"><div class="loric-spacer"></div>`)
		if item.Image != "" {
			hw.raw(`<img class="jinx-icon loric"`, attr("src", item.Image), attr("alt", item.Name), `/>`)
		} else {
			hw.raw(`<div class="jinx-icon-placeholder">`)
			hw.text(script.Initial(item.Name))
			hw.raw(`</div>`)
		}
		hw.raw(`<div class="loric-text-container"><p class="jinx-text loric-name">`)
		hw.text(item.Name)
		hw.raw(`</p><p class="jinx-text loric-text">`)
		hw.text(item.Note)
		hw.raw(`</p></div></div>`)
		return hw.err
	})
}
