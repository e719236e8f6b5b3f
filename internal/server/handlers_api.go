package server

import (
	"errors"
	"log"
	"net/http"

	"script-sheets/internal/script"

	"github.com/gin-gonic/gin"
)

func (s *Server) handleListScripts(c *gin.Context) {
	scripts, pagination := s.scriptPage(c, "/api/scripts")
	c.JSON(http.StatusOK, gin.H{
		"scripts":    scripts,
		"pagination": pagination,
	})
}

func (s *Server) handleCreateScript(c *gin.Context) {
	var req createScriptRequest
	if !bindJSON(c, &req, scriptRequestMessages, "invalid script payload") {
		return
	}
	parsed, err := s.parseScript(req.Script)
	if err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}
	opts, err := decodeOptions(req.Options)
	if err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}

	entry := s.store.CreateScript(req.Script, parsed, opts)
	if persisted, err := s.persistScript(entry); err != nil {
		log.Printf("persist script failed script_id=%s err=%v", entry.ID, err)
	} else {
		entry = persisted
	}
	log.Printf("script created script_id=%s title=%q characters=%d", entry.ID, parsed.Title(), len(parsed.Characters))
	c.JSON(http.StatusCreated, gin.H{
		"script_id": entry.ID,
		"title":     parsed.Title(),
	})
}

func (s *Server) handleGetScript(c *gin.Context) {
	var uri scriptURI
	if !bindURI(c, &uri) {
		return
	}
	entry, ok := s.store.GetScript(uri.ScriptID)
	if !ok {
		writeError(c, http.StatusNotFound, errScriptNotFound.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"script_id":    entry.ID,
		"title":        entry.Script.Title(),
		"author":       entry.Script.Metadata.Author,
		"options":      entry.Options,
		"characters":   entry.Script.Characters,
		"jinxes":       script.FindJinxes(entry.Script.Characters, s.catalog, entry.Options.UseOldJinxes),
		"night_orders": script.BuildNightOrders(entry.Script.Characters),
		"created_at":   entry.CreatedAt,
		"updated_at":   entry.UpdatedAt,
	})
}

func (s *Server) handleUpdateOptions(c *gin.Context) {
	var uri scriptURI
	if !bindURI(c, &uri) {
		return
	}
	raw, err := c.GetRawData()
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(c, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		writeError(c, http.StatusBadRequest, "invalid options")
		return
	}
	opts, err := decodeOptions(raw)
	if err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}
	entry, err := s.store.UpdateScript(uri.ScriptID, func(entry *StoredScript) error {
		entry.Options = opts
		return nil
	})
	if err != nil {
		writeError(c, http.StatusNotFound, err.Error())
		return
	}
	if err := s.persistOptions(entry); err != nil {
		log.Printf("persist options failed script_id=%s err=%v", entry.ID, err)
	}
	c.JSON(http.StatusOK, gin.H{
		"script_id": entry.ID,
		"options":   entry.Options,
	})
}

func (s *Server) handleRender(c *gin.Context) {
	var req renderRequest
	if !bindJSON(c, &req, scriptRequestMessages, "invalid render payload") {
		return
	}
	parsed, err := s.parseScript(req.Script)
	if err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}
	opts, err := decodeOptions(req.Options)
	if err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}
	html, err := s.renderSheets(c.Request.Context(), parsed, opts, req.NightOrders)
	if err != nil {
		writeRenderError(c, err)
		return
	}
	writeHTML(c, html)
}

func (s *Server) parseScript(raw []byte) (script.Script, error) {
	parsed, err := script.ParseScript(raw, s.catalog)
	if err != nil {
		return script.Script{}, err
	}
	if len(parsed.Characters) == 0 {
		return script.Script{}, script.ErrEmptyScript
	}
	return parsed, nil
}
