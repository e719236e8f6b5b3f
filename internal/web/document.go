package web

import (
	"context"
	"io"

	"script-sheets/internal/script"

	"github.com/a-h/templ"
)

// BuildDocument turns a parsed script, its options and night orders into the
// props of each printed sheet.
func BuildDocument(s script.Script, opts script.Options, orders script.NightOrders, catalog *script.Catalog, assetBase string) DocumentData {
	opts = opts.Normalize()
	title := s.Title()
	author := ""
	if opts.ShowAuthor {
		author = s.Metadata.Author
	}
	var jinxes []script.Jinx
	if opts.ShowJinxes {
		jinxes = script.FindJinxes(s.Characters, catalog, opts.UseOldJinxes)
	}
	doc := DocumentData{
		Title: title,
		Front: CharacterSheetProps{
			Title:          title,
			Author:         author,
			Characters:     script.GroupCharactersByTeam(s.Characters),
			Color:          opts.PrimaryColor(),
			Jinxes:         jinxes,
			FabledOrLoric:  script.FabledAndLoric(s.Characters),
			ShowSwirls:     opts.ShowSwirls,
			IncludeMargins: opts.IncludeMargins,
			SolidTitle:     opts.SolidTitle,
			IconScale:      opts.IconScale,
			Appearance:     opts.Appearance,
			AssetBase:      assetBase,
		},
	}
	if opts.ShowBackingSheet {
		doc.Back = &SheetBackProps{
			Title:               title,
			Color:               opts.PrimaryColor(),
			IncludeMargins:      opts.IncludeMargins,
			FormatMinorWords:    opts.FormatMinorWords,
			DisplayNightOrder:   opts.DisplayNightOrder,
			DisplayPlayerCounts: opts.DisplayPlayerCounts,
			FirstNightOrder:     orders.First,
			OtherNightOrder:     orders.Other,
			AssetBase:           assetBase,
		}
	}
	if opts.ShowNightSheet {
		doc.NightSheet = &NightSheetProps{
			Title:           title,
			Colors:          opts.Colors(),
			IncludeMargins:  opts.IncludeMargins,
			FirstNightOrder: orders.First,
			OtherNightOrder: orders.Other,
			AssetBase:       assetBase,
		}
	}
	return doc
}

// Document renders the front sheet followed by the optional back and night
// sheets, each ending in a page break.
func Document(doc DocumentData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newHTMLWriter(ctx, w)
		hw.raw(`<div class="sheet-wrapper">`)
		hw.component(CharacterSheet(doc.Front))
		hw.raw(`<div class="page-break"></div>`)
		if doc.Back != nil {
			hw.component(SheetBack(*doc.Back))
			hw.raw(`<div class="page-break"></div>`)
		}
		if doc.NightSheet != nil {
			hw.component(NightSheet(*doc.NightSheet))
			hw.raw(`<div class="page-break"></div>`)
		}
		hw.raw(`</div>`)
		return hw.err
	})
}

// Page wraps a component in a standalone printable HTML page with the sheet
// stylesheet inlined.
func Page(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newHTMLWriter(ctx, w)
		hw.raw(`<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8"/>
    <meta name="viewport" content="width=device-width, initial-scale=1"/>
    <title>`)
		hw.text(title)
		hw.raw(`</title>
    <style>`, sheetCSS, `</style>
  </head>
  <body>
`)
		hw.component(body)
		hw.raw(`
  </body>
</html>
`)
		return hw.err
	})
}
