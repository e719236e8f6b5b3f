package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"script-sheets/internal/cache"
	"script-sheets/internal/config"
	"script-sheets/internal/db"
	"script-sheets/internal/script"
	"script-sheets/internal/server"

	"gorm.io/gorm"
)

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		log.Printf("failed to load .env: %v", err)
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	var conn *gorm.DB
	if cfg.DatabaseURL != "" {
		conn, err = db.Open(cfg)
		if err != nil {
			log.Fatalf("database connection failed: %v", err)
		}
		if cfg.AutoMigrate {
			if err := db.Migrate(conn); err != nil {
				log.Fatalf("database migration failed: %v", err)
			}
		}
	} else {
		log.Println("DATABASE_URL is not set; scripts are kept in memory")
	}

	var renderCache cache.RenderCache
	if cfg.RedisURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		redisCache, err := cache.Open(ctx, cfg.RedisURL, cfg.RenderCacheTTL())
		cancel()
		if err != nil {
			log.Printf("render cache disabled err=%v", err)
		} else {
			renderCache = redisCache
			defer redisCache.Close()
		}
	}

	srv := server.New(conn, renderCache, loadCatalog(cfg, conn), cfg)
	restored, err := srv.RestoreScripts()
	if err != nil {
		log.Printf("restore scripts failed err=%v", err)
	} else if restored > 0 {
		log.Printf("restored scripts count=%d", restored)
	}

	log.Printf("script-sheets server listening on %s", cfg.Addr())
	if err := http.ListenAndServe(cfg.Addr(), srv.Handler()); err != nil {
		log.Fatal(err)
	}
}

// loadCatalog prefers the catalog stored in Postgres and falls back to the
// JSON file.
func loadCatalog(cfg config.Config, conn *gorm.DB) *script.Catalog {
	if conn != nil {
		catalog, err := db.LoadCatalog(conn)
		if err != nil {
			log.Printf("load catalog from database failed err=%v", err)
		} else if catalog.Len() > 0 {
			log.Printf("catalog loaded source=database characters=%d", catalog.Len())
			return catalog
		}
	}
	catalog, err := script.LoadCatalogFile(cfg.CatalogPath)
	if err != nil {
		log.Printf("catalog unavailable path=%s err=%v", cfg.CatalogPath, err)
		return script.NewCatalog(nil, nil)
	}
	log.Printf("catalog loaded source=%s characters=%d", cfg.CatalogPath, catalog.Len())
	return catalog
}
