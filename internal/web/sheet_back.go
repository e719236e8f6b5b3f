package web

import (
	"context"
	"io"

	"script-sheets/internal/colour"
	"script-sheets/internal/script"
	"script-sheets/internal/sheet"

	"github.com/a-h/templ"
)

func SheetBack(props SheetBackProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		color := props.Color
		if color == "" {
			color = colour.DefaultColor
		}
		if _, _, _, err := colour.ParseRGB(color); err != nil {
			return err
		}
		hw := newHTMLWriter(ctx, w)
		hw.raw(`<div class="sheet-backing"`, style(marginTransform(props.IncludeMargins)), `>`)
		hw.raw(`<div class="sheet-background"><div class="title-container"><h1>`)
		hw.component(backTitle(props.Title, props.FormatMinorWords))
		hw.raw(`</h1></div>`)
		if props.DisplayNightOrder {
			hw.raw(`<div class="night-order-container">`)
			hw.component(nightIconStrip("First Night:", props.FirstNightOrder, props.AssetBase))
			hw.component(nightIconStrip("Other Nights:", props.OtherNightOrder, props.AssetBase))
			hw.raw(`</div>`)
		}
		if props.DisplayPlayerCounts {
			hw.component(playerCountTable(sheet.PlayerCounts()))
		}
		hw.raw(`</div>`)
		hw.raw(`<div class="sheet-back-overlay"`, style("background-color: "+color), `></div>`)
		hw.raw(`</div>`)
		return hw.err
	})
}

func backTitle(title string, formatMinor bool) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newHTMLWriter(ctx, w)
		parts := sheet.SplitTitle(title)
		for i, part := range parts {
			if formatMinor {
				writeMinorWords(hw, part)
			} else {
				hw.text(part)
			}
			if i < len(parts)-1 {
				hw.raw(`<span class="ampersand">&amp;</span>`)
			}
		}
		return hw.err
	})
}

func writeMinorWords(hw *htmlWriter, part string) {
	for _, word := range sheet.FormatMinorWords(part) {
		hw.text(word.Space)
		if word.Minor {
			hw.raw(`<span class="minor-word">`)
			hw.text(word.Text)
			hw.raw(`</span>`)
			continue
		}
		hw.text(word.Text)
	}
}

func nightIconStrip(label string, entries []script.NightOrderEntry, assetBase string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newHTMLWriter(ctx, w)
		hw.raw(`<div class="night-order"><span>`)
		hw.text(label)
		hw.raw(`</span><div class="night-icons">`)
		for _, entry := range entries {
			src := entry.Image()
			if src == "" {
				continue
			}
			hw.raw(`<img class="night-order-icon"`, attr("src", assetURL(assetBase, src)), attr("alt", entry.Name()), `/>`)
		}
		hw.raw(`</div></div>`)
		return hw.err
	})
}

func playerCountTable(rows []sheet.PlayerCount) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newHTMLWriter(ctx, w)
		hw.raw(`<table class="player-counts"><tr><th>Players</th>`)
		for _, row := range rows {
			hw.raw(`<td>`, itoa(row.Players), `</td>`)
		}
		hw.raw(`</tr>`)
		line := func(label string, value func(sheet.PlayerCount) int) {
			hw.raw(`<tr><th>`, label, `</th>`)
			for _, row := range rows {
				hw.raw(`<td>`, itoa(value(row)), `</td>`)
			}
			hw.raw(`</tr>`)
		}
		line("Townsfolk", func(row sheet.PlayerCount) int { return row.Townsfolk })
		line("Outsiders", func(row sheet.PlayerCount) int { return row.Outsiders })
		line("Minions", func(row sheet.PlayerCount) int { return row.Minions })
		line("Demons", func(row sheet.PlayerCount) int { return row.Demons })
		hw.raw(`</table>`)
		return hw.err
	})
}
