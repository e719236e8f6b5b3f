package script

import (
	"errors"
	"fmt"

	"script-sheets/internal/colour"
)

type Appearance string

const (
	AppearanceNormal       Appearance = "normal"
	AppearanceCompact      Appearance = "compact"
	AppearanceSuperCompact Appearance = "super-compact"
	AppearanceMegaCompact  Appearance = "mega-compact"
)

func (a Appearance) Valid() bool {
	switch a {
	case AppearanceNormal, AppearanceCompact, AppearanceSuperCompact, AppearanceMegaCompact:
		return true
	}
	return false
}

const DefaultIconScale = 1.6

type Options struct {
	Color               StringList `json:"color,omitempty"`
	ShowAuthor          bool       `json:"showAuthor"`
	ShowJinxes          bool       `json:"showJinxes"`
	UseOldJinxes        bool       `json:"useOldJinxes"`
	ShowSwirls          bool       `json:"showSwirls"`
	IncludeMargins      bool       `json:"includeMargins"`
	SolidTitle          bool       `json:"solidTitle"`
	IconScale           float64    `json:"iconScale,omitempty"`
	Appearance          Appearance `json:"appearance,omitempty"`
	ShowBackingSheet    bool       `json:"showBackingSheet"`
	ShowNightSheet      bool       `json:"showNightSheet"`
	FormatMinorWords    bool       `json:"formatMinorWords"`
	DisplayNightOrder   bool       `json:"displayNightOrder"`
	DisplayPlayerCounts bool       `json:"displayPlayerCounts"`
}

func DefaultOptions() Options {
	return Options{
		Color:      StringList{colour.DefaultColor},
		ShowAuthor: true,
		ShowJinxes: true,
		ShowSwirls: true,
		IconScale:  DefaultIconScale,
		Appearance: AppearanceNormal,
	}
}

// PrimaryColor is the first configured colour; single-colour surfaces use it.
func (o Options) PrimaryColor() string {
	return colour.NormalizeColors(o.Color)[0]
}

func (o Options) Colors() []string {
	return colour.NormalizeColors(o.Color)
}

// Normalize fills zero values left by partial JSON documents.
func (o Options) Normalize() Options {
	if o.IconScale == 0 {
		o.IconScale = DefaultIconScale
	}
	if o.Appearance == "" {
		o.Appearance = AppearanceNormal
	}
	o.Color = StringList(colour.NormalizeColors(o.Color))
	return o
}

func (o Options) Validate() error {
	if !o.Appearance.Valid() {
		return fmt.Errorf("unknown appearance %q", o.Appearance)
	}
	if o.IconScale <= 0 {
		return errors.New("icon scale must be positive")
	}
	for _, value := range o.Colors() {
		if _, _, _, err := colour.ParseRGB(value); err != nil {
			return err
		}
	}
	return nil
}
