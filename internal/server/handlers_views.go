package server

import (
	"log"
	"net/http"

	"script-sheets/internal/web"

	"github.com/a-h/templ"
	"github.com/gin-gonic/gin"
)

func (s *Server) handleHome(c *gin.Context) {
	scripts, pagination := s.scriptPage(c, "/")
	templ.Handler(web.Home(scripts, pagination)).ServeHTTP(c.Writer, c.Request)
}

func (s *Server) handleStylesheet(c *gin.Context) {
	c.Header("Cache-Control", "public, max-age=31536000, immutable")
	c.Data(http.StatusOK, "text/css; charset=utf-8", []byte(web.Stylesheet()))
}

func (s *Server) handleSheetView(c *gin.Context) {
	var uri scriptURI
	if !bindURI(c, &uri) {
		return
	}
	entry, ok := s.store.GetScript(uri.ScriptID)
	if !ok {
		log.Printf("sheet view missing script_id=%s", uri.ScriptID)
		c.Redirect(http.StatusFound, "/")
		return
	}
	var query sheetQuery
	if !bindQuery(c, &query, sheetQueryMessages) {
		return
	}
	html, err := s.renderSheets(c.Request.Context(), entry.Script, query.apply(entry.Options), nil)
	if err != nil {
		writeRenderError(c, err)
		return
	}
	writeHTML(c, html)
}
