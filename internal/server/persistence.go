package server

import (
	"encoding/json"
	"fmt"

	"script-sheets/internal/db"

	"gorm.io/datatypes"
)

func (s *Server) persistScript(entry StoredScript) (StoredScript, error) {
	if s.db == nil {
		return entry, nil
	}
	options, err := json.Marshal(entry.Options)
	if err != nil {
		return entry, err
	}
	record := db.Script{
		Title:      entry.Script.Title(),
		Author:     entry.Script.Metadata.Author,
		Characters: len(entry.Script.Characters),
		Source:     datatypes.JSON(entry.Source),
		Options:    datatypes.JSON(options),
		CreatedAt:  entry.CreatedAt,
		UpdatedAt:  entry.UpdatedAt,
	}
	if err := s.db.Create(&record).Error; err != nil {
		return entry, err
	}
	return s.store.UpdateScriptID(entry.ID, fmt.Sprintf("script-%d", record.ID), record.ID)
}

func (s *Server) persistOptions(entry StoredScript) error {
	if s.db == nil || entry.DBID == 0 {
		return nil
	}
	options, err := json.Marshal(entry.Options)
	if err != nil {
		return err
	}
	return s.db.Model(&db.Script{}).
		Where("id = ?", entry.DBID).
		Updates(map[string]any{
			"options":    datatypes.JSON(options),
			"updated_at": entry.UpdatedAt,
		}).Error
}
