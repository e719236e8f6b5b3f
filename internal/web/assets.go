package web

import _ "embed"

//go:embed assets/sheet.css
var sheetCSS string

// Stylesheet returns the print stylesheet inlined into every rendered document.
func Stylesheet() string {
	return sheetCSS
}
