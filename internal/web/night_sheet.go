package web

import (
	"context"
	"io"
	"log"

	"script-sheets/internal/colour"
	"script-sheets/internal/script"
	"script-sheets/internal/sheet"

	"github.com/a-h/templ"
)

// NightSheet renders two pages: the first night order and the order for
// every other night.
func NightSheet(props NightSheetProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newHTMLWriter(ctx, w)
		hw.component(infoSheet(props, "First Night", props.FirstNightOrder, script.FirstNight))
		hw.raw(`<div class="page-break"></div>`)
		hw.component(infoSheet(props, "Other Nights", props.OtherNightOrder, script.OtherNight))
		return hw.err
	})
}

func infoSheet(props NightSheetProps, heading string, entries []script.NightOrderEntry, night script.Night) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		gradient, err := colour.Gradient(props.Colors, 20)
		if err != nil {
			return err
		}
		overlay, err := colour.OverlayBackground(props.Colors, 180)
		if err != nil {
			return err
		}
		hw := newHTMLWriter(ctx, w)
		hw.raw(`<div class="night-sheet"`, style(marginTransform(props.IncludeMargins), "--header-gradient: "+gradient), `>`)
		hw.raw(`<img class="character-sheet-background"`, attr("src", assetURL(props.AssetBase, "/images/parchment_texture_a4_lightened.jpg")), `/>`)
		hw.raw(`<div class="sheet-content"><div class="night-sheet-heading"><h3 class="night-title">`)
		hw.text(heading)
		hw.raw(`</h3><h3 class="script-title">`)
		hw.text(props.Title)
		hw.raw(`</h3></div><div class="night-sheet-order">`)
		for _, entry := range entries {
			hw.component(NightSheetEntry(entry, night, props.AssetBase))
		}
		hw.raw(`</div></div><div class="spacer"></div>`)
		hw.raw(`<div class="info-footer-container">`)
		hw.component(credits("info-author-credit"))
		hw.raw(`<div class="info-footer-background"></div>`)
		hw.raw(`<div class="info-footer-overlay"`, style("background: "+overlay), `></div>`)
		hw.raw(`</div></div>`)
		return hw.err
	})
}

// NightSheetEntry renders one step of a night. Entries without reminder text
// for that night render nothing.
func NightSheetEntry(entry script.NightOrderEntry, night script.Night, assetBase string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		reminder := entry.Reminder(night)
		if reminder == "" {
			log.Printf("night sheet entry skipped name=%s night=%s reason=no_reminder", entry.Name(), night)
			return nil
		}
		hw := newHTMLWriter(ctx, w)
		hw.raw(`<div class="night-sheet-entry">`)
		if src := entry.Image(); src != "" {
			hw.raw(`<img`, attr("src", assetURL(assetBase, src)), attr("alt", entry.Name()), `/>`)
		} else {
			hw.raw(`<div class="character-icon-placeholder"`, style("color: "+entry.Color()), `>`)
			hw.text(script.Initial(entry.Name()))
			hw.raw(`</div>`)
		}
		hw.raw(`<div class="night-sheet-entry-text"><p class="reminder-name"`, style("color: "+entry.Color()), `>`)
		hw.text(entry.Name())
		hw.raw(`</p><p class="reminder-text">`)
		reminderIcon := `<img class="reminder-icon"` + attr("src", assetURL(assetBase, "/images/reminder.png")) + `/>`
		for _, segment := range sheet.ReminderSegments(reminder) {
			switch segment.Kind {
			case sheet.SegmentBold:
				hw.raw(`<strong>`)
				hw.text(segment.Text)
				hw.raw(`</strong>`)
			case sheet.SegmentReminderIcon:
				hw.raw(reminderIcon)
			default:
				hw.text(segment.Text)
			}
		}
		hw.raw(`</p></div></div>`)
		return hw.err
	})
}
