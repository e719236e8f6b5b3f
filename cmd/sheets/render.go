package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"script-sheets/internal/script"
	"script-sheets/internal/web"

	"github.com/spf13/cobra"
)

var (
	outputPath  string
	optionsPath string
	assetBase   string
	renderFlags = script.DefaultOptions()
	colors      []string
	appearance  string
)

var renderCmd = &cobra.Command{
	Use:   "render <script.json>",
	Short: "Render a script to a printable HTML page",
	Long: `Render the character sheet for a script, followed by the back sheet and the
night sheet when they are enabled. Options can come from a JSON file and be
overridden by flags.`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	flags := renderCmd.Flags()
	flags.StringVarP(&outputPath, "output", "o", "", "write HTML here instead of stdout")
	flags.StringVar(&optionsPath, "options", "", "options json file")
	flags.StringVar(&assetBase, "asset-base", "", "prefix for bundled /images/ paths")
	flags.StringSliceVar(&colors, "color", nil, "sheet colour; repeat for a gradient")
	flags.StringVar(&appearance, "appearance", "", "normal, compact, super-compact or mega-compact")
	flags.Float64Var(&renderFlags.IconScale, "icon-scale", script.DefaultIconScale, "character icon scale")
	flags.BoolVar(&renderFlags.ShowAuthor, "author", true, "show the script author")
	flags.BoolVar(&renderFlags.ShowJinxes, "jinxes", true, "show jinxes")
	flags.BoolVar(&renderFlags.UseOldJinxes, "old-jinxes", false, "use the previous jinx wording")
	flags.BoolVar(&renderFlags.ShowSwirls, "swirls", true, "draw title swirls")
	flags.BoolVar(&renderFlags.IncludeMargins, "margins", false, "shrink sheets to leave print margins")
	flags.BoolVar(&renderFlags.SolidTitle, "solid-title", false, "draw the title without the blend effect")
	flags.BoolVar(&renderFlags.ShowBackingSheet, "back", false, "add the back sheet")
	flags.BoolVar(&renderFlags.ShowNightSheet, "night-sheet", false, "add the night order sheet")
	flags.BoolVar(&renderFlags.FormatMinorWords, "minor-words", false, "shrink minor words in the back title")
	flags.BoolVar(&renderFlags.DisplayNightOrder, "night-order", false, "show night order icons on the back sheet")
	flags.BoolVar(&renderFlags.DisplayPlayerCounts, "player-counts", false, "show the player count table on the back sheet")
}

func runRender(cmd *cobra.Command, args []string) error {
	parsed, catalog, err := loadScript(cmd, args[0])
	if err != nil {
		return err
	}
	opts, err := resolveOptions(cmd)
	if err != nil {
		return err
	}

	orders := script.BuildNightOrders(parsed.Characters)
	doc := web.BuildDocument(parsed, opts, orders, catalog, assetBase)
	var buf bytes.Buffer
	if err := web.Page(doc.Title, web.Document(doc)).Render(cmd.Context(), &buf); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	if outputPath == "" {
		_, err := cmd.OutOrStdout().Write(buf.Bytes())
		return err
	}
	if err := os.WriteFile(outputPath, buf.Bytes(), 0o644); err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s (%d characters)\n", outputPath, len(parsed.Characters))
	return nil
}

// resolveOptions starts from the options file, if any, and applies only the
// flags that were set on the command line.
func resolveOptions(cmd *cobra.Command) (script.Options, error) {
	opts := script.DefaultOptions()
	if optionsPath != "" {
		data, err := os.ReadFile(optionsPath)
		if err != nil {
			return opts, err
		}
		if err := json.Unmarshal(data, &opts); err != nil {
			return opts, fmt.Errorf("parse options: %w", err)
		}
	}

	flags := cmd.Flags()
	set := func(name string, dst *bool, value bool) {
		if flags.Changed(name) {
			*dst = value
		}
	}
	set("author", &opts.ShowAuthor, renderFlags.ShowAuthor)
	set("jinxes", &opts.ShowJinxes, renderFlags.ShowJinxes)
	set("old-jinxes", &opts.UseOldJinxes, renderFlags.UseOldJinxes)
	set("swirls", &opts.ShowSwirls, renderFlags.ShowSwirls)
	set("margins", &opts.IncludeMargins, renderFlags.IncludeMargins)
	set("solid-title", &opts.SolidTitle, renderFlags.SolidTitle)
	set("back", &opts.ShowBackingSheet, renderFlags.ShowBackingSheet)
	set("night-sheet", &opts.ShowNightSheet, renderFlags.ShowNightSheet)
	set("minor-words", &opts.FormatMinorWords, renderFlags.FormatMinorWords)
	set("night-order", &opts.DisplayNightOrder, renderFlags.DisplayNightOrder)
	set("player-counts", &opts.DisplayPlayerCounts, renderFlags.DisplayPlayerCounts)
	if flags.Changed("icon-scale") {
		opts.IconScale = renderFlags.IconScale
	}
	if flags.Changed("color") {
		opts.Color = script.StringList(colors)
	}
	if flags.Changed("appearance") {
		opts.Appearance = script.Appearance(appearance)
	}

	opts = opts.Normalize()
	if err := opts.Validate(); err != nil {
		return opts, err
	}
	return opts, nil
}
