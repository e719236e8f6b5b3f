package server

import (
	"encoding/json"
	"time"

	"script-sheets/internal/script"
	"script-sheets/internal/web"
)

// StoredScript is an uploaded script together with the options it was saved
// with. Source keeps the JSON exactly as uploaded so it can be re-parsed
// against a newer catalog.
type StoredScript struct {
	ID        string
	DBID      uint
	Source    json.RawMessage
	Script    script.Script
	Options   script.Options
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (s StoredScript) Summary() web.ScriptSummary {
	return web.ScriptSummary{
		ID:         s.ID,
		Title:      s.Script.Title(),
		Author:     s.Script.Metadata.Author,
		Characters: len(s.Script.Characters),
		UpdatedAt:  s.UpdatedAt,
	}
}

type createScriptRequest struct {
	Script  json.RawMessage `json:"script" binding:"required"`
	Options json.RawMessage `json:"options"`
}

type renderRequest struct {
	Script      json.RawMessage     `json:"script" binding:"required"`
	Options     json.RawMessage     `json:"options"`
	NightOrders *script.NightOrders `json:"night_orders"`
}

type scriptURI struct {
	ScriptID string `uri:"scriptID" binding:"required"`
}

// sheetQuery overrides stored options for a single render. Unset fields keep
// the stored value.
type sheetQuery struct {
	Color               string   `form:"color" binding:"omitempty,colorlist"`
	Appearance          string   `form:"appearance" binding:"omitempty,appearance"`
	IconScale           *float64 `form:"icon_scale" binding:"omitempty,gt=0,lte=4"`
	ShowAuthor          *bool    `form:"author"`
	ShowJinxes          *bool    `form:"jinxes"`
	UseOldJinxes        *bool    `form:"old_jinxes"`
	ShowSwirls          *bool    `form:"swirls"`
	IncludeMargins      *bool    `form:"margins"`
	SolidTitle          *bool    `form:"solid_title"`
	ShowBackingSheet    *bool    `form:"back"`
	ShowNightSheet      *bool    `form:"night_sheet"`
	FormatMinorWords    *bool    `form:"minor_words"`
	DisplayNightOrder   *bool    `form:"night_order"`
	DisplayPlayerCounts *bool    `form:"player_counts"`
}

func (q sheetQuery) apply(opts script.Options) script.Options {
	if q.Color != "" {
		opts.Color = script.StringList(splitColors(q.Color))
	}
	if q.Appearance != "" {
		opts.Appearance = script.Appearance(q.Appearance)
	}
	if q.IconScale != nil {
		opts.IconScale = *q.IconScale
	}
	overrideBool(&opts.ShowAuthor, q.ShowAuthor)
	overrideBool(&opts.ShowJinxes, q.ShowJinxes)
	overrideBool(&opts.UseOldJinxes, q.UseOldJinxes)
	overrideBool(&opts.ShowSwirls, q.ShowSwirls)
	overrideBool(&opts.IncludeMargins, q.IncludeMargins)
	overrideBool(&opts.SolidTitle, q.SolidTitle)
	overrideBool(&opts.ShowBackingSheet, q.ShowBackingSheet)
	overrideBool(&opts.ShowNightSheet, q.ShowNightSheet)
	overrideBool(&opts.FormatMinorWords, q.FormatMinorWords)
	overrideBool(&opts.DisplayNightOrder, q.DisplayNightOrder)
	overrideBool(&opts.DisplayPlayerCounts, q.DisplayPlayerCounts)
	return opts.Normalize()
}

func overrideBool(dst *bool, value *bool) {
	if value != nil {
		*dst = *value
	}
}
