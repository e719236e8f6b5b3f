package db

import (
	"testing"

	"script-sheets/internal/config"
	"script-sheets/internal/script"
)

func TestOpenRequiresDatabaseURL(t *testing.T) {
	if _, err := Open(config.Default()); err == nil {
		t.Fatal("expected missing DATABASE_URL to fail")
	}
}

func TestCatalogRequiresConnection(t *testing.T) {
	if _, err := StoreCatalog(nil, script.NewCatalog(nil, nil)); err == nil {
		t.Fatal("expected store without connection to fail")
	}
	if _, err := LoadCatalog(nil); err == nil {
		t.Fatal("expected load without connection to fail")
	}
	if err := Migrate(nil); err == nil {
		t.Fatal("expected migrate without connection to fail")
	}
}
