package server

import (
	"net/http"

	"script-sheets/internal/cache"
	"script-sheets/internal/config"
	"script-sheets/internal/script"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Server struct {
	store   *Store
	db      *gorm.DB
	cache   cache.RenderCache
	catalog *script.Catalog
	cfg     config.Config
}

// New builds a server. conn and renderCache may be nil; scripts are then kept
// in memory only and every sheet is rendered on request.
func New(conn *gorm.DB, renderCache cache.RenderCache, catalog *script.Catalog, cfg config.Config) *Server {
	if catalog == nil {
		catalog = script.NewCatalog(nil, nil)
	}
	return &Server{
		store:   NewStore(),
		db:      conn,
		cache:   renderCache,
		catalog: catalog,
		cfg:     cfg,
	}
}

func (s *Server) Handler() http.Handler {
	registerValidators()
	router := gin.New()
	router.Use(gin.Recovery())
	router.GET("/", s.handleHome)
	router.GET("/assets/sheet.css", s.handleStylesheet)
	router.GET("/sheets/:scriptID", s.handleSheetView)

	api := router.Group("/api", s.limitBody)
	api.GET("/scripts", s.handleListScripts)
	api.POST("/scripts", s.handleCreateScript)
	api.GET("/scripts/:scriptID", s.handleGetScript)
	api.PUT("/scripts/:scriptID/options", s.handleUpdateOptions)
	api.POST("/render", s.handleRender)

	if s.cfg.StaticDir != "" {
		router.Static("/static", s.cfg.StaticDir)
	}
	return router
}

func (s *Server) limitBody(c *gin.Context) {
	if s.cfg.MaxScriptBytes > 0 && c.Request.Body != nil {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.cfg.MaxScriptBytes)
	}
	c.Next()
}
