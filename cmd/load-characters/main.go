package main

import (
	"flag"
	"log"

	"script-sheets/internal/config"
	"script-sheets/internal/db"
	"script-sheets/internal/script"
)

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		log.Printf("failed to load .env: %v", err)
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	filePath := flag.String("file", cfg.CatalogPath, "path to the character catalog json")
	migrateFirst := flag.Bool("migrate", false, "auto-migrate catalog tables before loading")
	flag.Parse()

	catalog, err := script.LoadCatalogFile(*filePath)
	if err != nil {
		log.Fatalf("failed to read catalog: %v", err)
	}

	conn, err := db.Open(cfg)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	if *migrateFirst {
		if err := db.Migrate(conn); err != nil {
			log.Fatalf("database migration failed: %v", err)
		}
	}

	written, err := db.StoreCatalog(conn, catalog)
	if err != nil {
		log.Fatalf("failed to store catalog after %d characters: %v", written, err)
	}
	log.Printf("loaded %d characters and %d jinxes from %s", written, len(catalog.Jinxes()), *filePath)
}
