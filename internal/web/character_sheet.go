package web

import (
	"context"
	"io"
	"strings"

	"script-sheets/internal/colour"
	"script-sheets/internal/script"
	"script-sheets/internal/sheet"

	"github.com/a-h/templ"
)

func CharacterSheet(props CharacterSheetProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		color := props.Color
		if color == "" {
			color = colour.DefaultColor
		}
		colorDark, err := colour.Darken(color, 0.4)
		if err != nil {
			return err
		}
		iconScale := props.IconScale
		if iconScale <= 0 {
			iconScale = script.DefaultIconScale
		}
		appearanceClass := ""
		if props.Appearance != "" && props.Appearance != script.AppearanceNormal {
			appearanceClass = "appearance-" + string(props.Appearance)
		}
		sections := sheet.Sections(props.Characters, colour.TeamColour)

		hw := newHTMLWriter(ctx, w)
		hw.raw(`<div`, classes("character-sheet", appearanceClass), ` id="character-sheet"`, style(
			"--header-color-light: "+color,
			"--header-color-dark: "+colorDark,
			marginTransform(props.IncludeMargins),
		), `>`)
		hw.raw(`<img class="character-sheet-background"`, attr("src", assetURL(props.AssetBase, "/images/parchment_texture_a4_lightened.jpg")), `/>`)
		hw.component(sidebar(color))
		hw.raw(`<div class="sheet-content">`)
		hw.component(header(props.ShowSwirls, props.Title, props.Author, props.SolidTitle, props.AssetBase))
		hw.raw(`<div class="characters-grid">`)
		divider := `<img class="section-divider"` + attr("src", assetURL(props.AssetBase, "/images/divider.png")) + `/>`
		for i, section := range sections {
			hw.component(characterSection(section, iconScale))
			if i < len(sections)-1 {
				hw.raw(divider)
			}
		}
		if layout := sheet.LayoutJinxes(props.Jinxes, props.FabledOrLoric); !layout.Empty() {
			hw.raw(divider)
			hw.component(jinxBlock(layout, props.Characters.Players()))
		}
		hw.raw(`</div>`)
		hw.raw(`<div class="sheet-footer"><span class="asterisk">*</span>Not the first night</div>`)
		hw.raw(`</div>`)
		hw.component(credits("author-credit"))
		hw.raw(`</div>`)
		return hw.err
	})
}

func header(showSwirls bool, title, author string, solid bool, assetBase string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		blend := "mix-blend-mode: multiply"
		if solid {
			blend = "mix-blend-mode: normal"
		}
		swirl := assetURL(assetBase, "/images/black-swirl-divider.png")
		hw := newHTMLWriter(ctx, w)
		hw.raw(`<h1 class="sheet-header">`)
		if showSwirls {
			hw.raw(`<img class="swirl-divider"`, attr("src", swirl), `/>`)
		}
		hw.raw(`<span`, style(blend), `>`)
		hw.text(title)
		hw.raw(`</span>`)
		if showSwirls {
			hw.raw(`<img class="swirl-divider flip"`, attr("src", swirl), `/>`)
		}
		hw.raw(`</h1>`)
		if author != "" {
			hw.raw(`<h2 class="sheet-author">by `)
			hw.text(author)
			hw.raw(`</h2>`)
		}
		return hw.err
	})
}

func sidebar(color string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newHTMLWriter(ctx, w)
		hw.raw(`<div class="sidebar-container"><div class="sidebar-background"></div>`)
		hw.raw(`<div class="sidebar-overlay"`, style("background-color: "+color), `></div></div>`)
		return hw.err
	})
}

func credits(class string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newHTMLWriter(ctx, w)
		hw.raw(`<div`, classes(class), `>`)
		hw.raw(`<p>© Steven Medway bloodontheclocktower.com</p>`)
		hw.raw(`<p>Script template by John Forster ravenswoodstudio.xyz</p>`)
		hw.raw(`</div>`)
		return hw.err
	})
}

func characterSection(section sheet.Section, iconScale float64) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		left, right := sheet.SplitColumns(section.Characters)
		hw := newHTMLWriter(ctx, w)
		hw.raw(`<div class="character-section"><h2 class="section-title">`)
		hw.text(strings.ToUpper(section.Title))
		hw.raw(`</h2><div class="character-list">`)
		hw.raw(`<div class="character-column">`)
		for _, ch := range left {
			hw.component(CharacterCard(ch, section.Color, iconScale))
		}
		hw.raw(`</div>`)
		hw.raw(`<div class="character-column"`, style("justify-content: "+sheet.ColumnJustify(len(section.Characters))), `>`)
		for _, ch := range right {
			hw.component(CharacterCard(ch, section.Color, iconScale))
		}
		hw.raw(`</div></div></div>`)
		return hw.err
	})
}

// CharacterCard shows the icon (or an initial placeholder), the name in the
// team colour and the ability with any setup clause in bold.
func CharacterCard(ch script.Character, color string, iconScale float64) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		scale := "scale: " + formatFloat(iconScale)
		hw := newHTMLWriter(ctx, w)
		hw.raw(`<div class="character-card"><div class="character-icon-wrapper">`)
		if src := script.ImageURL(ch); src != "" {
			hw.raw(`<img class="character-icon"`, attr("src", src), attr("alt", ch.Name), style(scale), `/>`)
		} else {
			hw.raw(`<div class="character-icon-placeholder"`, style("color: "+color, scale), `>`)
			hw.text(script.Initial(ch.Name))
			hw.raw(`</div>`)
		}
		hw.raw(`</div><div class="character-info">`)
		hw.raw(`<h3 class="character-name"`, style("color: "+color), `>`)
		hw.text(ch.Name)
		hw.raw(`</h3><p class="character-ability">`)
		before, setup := sheet.SplitAbility(ch.Ability)
		hw.text(before)
		if setup != "" {
			hw.raw(`<strong class="setup-ability">`)
			hw.text(setup)
			hw.raw(`</strong>`)
		}
		hw.raw(`</p></div></div>`)
		return hw.err
	})
}
