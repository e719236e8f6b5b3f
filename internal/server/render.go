package server

import (
	"bytes"
	"context"
	"errors"
	"log"
	"net/http"

	"script-sheets/internal/cache"
	"script-sheets/internal/colour"
	"script-sheets/internal/script"
	"script-sheets/internal/web"

	"github.com/gin-gonic/gin"
)

// renderSheets renders the printable page for a script. When orders is nil
// the night orders are built from the script's characters.
func (s *Server) renderSheets(ctx context.Context, parsed script.Script, opts script.Options, orders *script.NightOrders) ([]byte, error) {
	opts = opts.Normalize()
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	built := script.BuildNightOrders(parsed.Characters)
	if orders != nil {
		built = *orders
	}

	key := ""
	if s.cache != nil {
		k, err := cache.Key(parsed, opts, built, s.cfg.AssetBase, s.catalog.Len())
		if err != nil {
			log.Printf("render cache key failed title=%q err=%v", parsed.Title(), err)
		} else {
			key = k
		}
	}
	if key != "" {
		html, ok, err := s.cache.Get(ctx, key)
		if err != nil {
			log.Printf("render cache get failed key=%s err=%v", key, err)
		} else if ok {
			return html, nil
		}
	}

	doc := web.BuildDocument(parsed, opts, built, s.catalog, s.cfg.AssetBase)
	var buf bytes.Buffer
	if err := web.Page(doc.Title, web.Document(doc)).Render(ctx, &buf); err != nil {
		return nil, err
	}
	if key != "" {
		if err := s.cache.Set(ctx, key, buf.Bytes()); err != nil {
			log.Printf("render cache set failed key=%s err=%v", key, err)
		}
	}
	return buf.Bytes(), nil
}

func writeRenderError(c *gin.Context, err error) {
	if errors.Is(err, colour.ErrInvalidHex) {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}
	log.Printf("render failed path=%s err=%v", c.Request.URL.Path, err)
	writeError(c, http.StatusInternalServerError, "failed to render sheets")
}

func writeHTML(c *gin.Context, html []byte) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", html)
}
