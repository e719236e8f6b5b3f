package web

import (
	"time"

	"script-sheets/internal/script"
)

type ScriptSummary struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Author     string    `json:"author,omitempty"`
	Characters int       `json:"characters"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type PaginationData struct {
	BasePath   string `json:"-"`
	Page       int    `json:"page"`
	PerPage    int    `json:"per_page"`
	Total      int    `json:"total"`
	TotalPages int    `json:"total_pages"`
	HasPrev    bool   `json:"has_prev"`
	HasNext    bool   `json:"has_next"`
	PrevPage   int    `json:"prev_page,omitempty"`
	NextPage   int    `json:"next_page,omitempty"`
}

type CharacterSheetProps struct {
	Title          string
	Author         string
	Characters     script.GroupedCharacters
	Color          string
	Jinxes         []script.Jinx
	FabledOrLoric  []script.FabledOrLoric
	ShowSwirls     bool
	IncludeMargins bool
	SolidTitle     bool
	IconScale      float64
	Appearance     script.Appearance
	AssetBase      string
}

type SheetBackProps struct {
	Title               string
	Color               string
	IncludeMargins      bool
	FormatMinorWords    bool
	DisplayNightOrder   bool
	DisplayPlayerCounts bool
	FirstNightOrder     []script.NightOrderEntry
	OtherNightOrder     []script.NightOrderEntry
	AssetBase           string
}

type NightSheetProps struct {
	Title           string
	Colors          []string
	IncludeMargins  bool
	FirstNightOrder []script.NightOrderEntry
	OtherNightOrder []script.NightOrderEntry
	AssetBase       string
}

// DocumentData is everything needed to render the combined printable
// document. Nil sheet props mean the sheet is not printed.
type DocumentData struct {
	Title      string
	Front      CharacterSheetProps
	Back       *SheetBackProps
	NightSheet *NightSheetProps
}
