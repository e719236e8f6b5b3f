package server

import (
	"encoding/json"
	"fmt"
	"log"

	"script-sheets/internal/db"
	"script-sheets/internal/script"
)

// RestoreScripts loads every saved script into memory. Rows that no longer
// parse are logged and skipped.
func (s *Server) RestoreScripts() (int, error) {
	if s.db == nil {
		return 0, nil
	}
	var records []db.Script
	if err := s.db.Order("id asc").Find(&records).Error; err != nil {
		return 0, err
	}
	restored := 0
	for _, record := range records {
		entry, err := s.scriptFromRecord(record)
		if err != nil {
			log.Printf("restore script skipped db_id=%d err=%v", record.ID, err)
			continue
		}
		if err := s.store.RestoreScript(entry); err != nil {
			log.Printf("restore script skipped script_id=%s err=%v", entry.ID, err)
			continue
		}
		restored++
	}
	return restored, nil
}

func (s *Server) scriptFromRecord(record db.Script) (StoredScript, error) {
	parsed, err := script.ParseScript(record.Source, s.catalog)
	if err != nil {
		return StoredScript{}, err
	}
	opts := script.DefaultOptions()
	if len(record.Options) > 0 {
		if err := json.Unmarshal(record.Options, &opts); err != nil {
			return StoredScript{}, fmt.Errorf("decode options: %w", err)
		}
	}
	return StoredScript{
		ID:        fmt.Sprintf("script-%d", record.ID),
		DBID:      record.ID,
		Source:    json.RawMessage(record.Source),
		Script:    parsed,
		Options:   opts.Normalize(),
		CreatedAt: record.CreatedAt,
		UpdatedAt: record.UpdatedAt,
	}, nil
}
