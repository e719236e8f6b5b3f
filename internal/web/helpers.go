package web

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/a-h/templ"
)

// htmlWriter accumulates the first write error so components can emit markup
// without checking every call.
type htmlWriter struct {
	ctx context.Context
	w   io.Writer
	err error
}

func newHTMLWriter(ctx context.Context, w io.Writer) *htmlWriter {
	return &htmlWriter{ctx: ctx, w: w}
}

func (hw *htmlWriter) raw(parts ...string) {
	for _, part := range parts {
		if hw.err != nil {
			return
		}
		_, hw.err = io.WriteString(hw.w, part)
	}
}

func (hw *htmlWriter) text(value string) {
	hw.raw(templ.EscapeString(value))
}

func (hw *htmlWriter) component(c templ.Component) {
	if hw.err != nil {
		return
	}
	hw.err = c.Render(hw.ctx, hw.w)
}

// attr renders ` name="value"`, skipping empty values.
func attr(name, value string) string {
	if value == "" {
		return ""
	}
	return " " + name + `="` + templ.EscapeString(value) + `"`
}

func style(declarations ...string) string {
	kept := make([]string, 0, len(declarations))
	for _, decl := range declarations {
		if decl != "" {
			kept = append(kept, decl)
		}
	}
	return attr("style", strings.Join(kept, "; "))
}

func classes(names ...string) string {
	kept := make([]string, 0, len(names))
	for _, name := range names {
		if name != "" {
			kept = append(kept, name)
		}
	}
	return attr("class", strings.Join(kept, " "))
}

func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

func itoa(value int) string {
	return strconv.Itoa(value)
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return "-"
	}
	return value.Format("2006-01-02 15:04:05")
}

func pageURL(base string, page, perPage int) string {
	if strings.Contains(base, "?") {
		return base + "&page=" + itoa(page) + "&per_page=" + itoa(perPage)
	}
	return base + "?page=" + itoa(page) + "&per_page=" + itoa(perPage)
}

func marginTransform(includeMargins bool) string {
	if includeMargins {
		return "transform: scale(0.952)"
	}
	return ""
}

// assetURL joins an image path onto the configured asset base.
func assetURL(base, path string) string {
	if path == "" || base == "" || strings.Contains(path, "://") || strings.HasPrefix(path, "data:") {
		return path
	}
	if !strings.HasPrefix(path, "/images/") {
		return path
	}
	return strings.TrimSuffix(base, "/") + path
}

var stylesheetVersion = func() string {
	sum := sha256.Sum256([]byte(sheetCSS))
	return hex.EncodeToString(sum[:8])
}()

// StylesheetPath is the versioned URL the server publishes the sheet CSS under.
func StylesheetPath() string {
	return appendAssetVersion("/assets/sheet.css", stylesheetVersion)
}

func appendAssetVersion(path string, hash string) string {
	if hash == "" {
		return path
	}
	if strings.Contains(path, "?") {
		return path + "&v=" + hash
	}
	return path + "?v=" + hash
}
