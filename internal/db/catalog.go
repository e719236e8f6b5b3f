package db

import (
	"encoding/json"
	"errors"

	"script-sheets/internal/script"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StoreCatalog upserts every catalog character and jinx. It returns the
// number of characters written.
func StoreCatalog(conn *gorm.DB, catalog *script.Catalog) (int, error) {
	if conn == nil {
		return 0, errors.New("db connection is nil")
	}
	written := 0
	for _, ch := range catalog.Characters() {
		payload, err := json.Marshal(ch)
		if err != nil {
			return written, err
		}
		record := CatalogCharacter{
			Key:     ch.ID,
			Name:    ch.Name,
			Team:    string(ch.Team),
			Edition: ch.Edition,
			Payload: datatypes.JSON(payload),
		}
		if err := conn.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "team", "edition", "payload", "updated_at"}),
		}).Create(&record).Error; err != nil {
			return written, err
		}
		written++
	}
	for _, jinx := range catalog.Jinxes() {
		record := CatalogJinx{
			FirstKey:  jinx.Characters[0],
			SecondKey: jinx.Characters[1],
			Text:      jinx.Text,
			OldText:   jinx.OldText,
		}
		if err := conn.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "first_key"}, {Name: "second_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"text", "old_text", "updated_at"}),
		}).Create(&record).Error; err != nil {
			return written, err
		}
	}
	return written, nil
}

// LoadCatalog reads the stored catalog back into memory.
func LoadCatalog(conn *gorm.DB) (*script.Catalog, error) {
	if conn == nil {
		return nil, errors.New("db connection is nil")
	}
	var characters []CatalogCharacter
	if err := conn.Order("id asc").Find(&characters).Error; err != nil {
		return nil, err
	}
	var jinxes []CatalogJinx
	if err := conn.Order("id asc").Find(&jinxes).Error; err != nil {
		return nil, err
	}
	out := make([]script.Character, 0, len(characters))
	for _, record := range characters {
		var ch script.Character
		if err := json.Unmarshal(record.Payload, &ch); err != nil {
			return nil, err
		}
		out = append(out, ch)
	}
	pairs := make([]script.Jinx, 0, len(jinxes))
	for _, record := range jinxes {
		pairs = append(pairs, script.Jinx{
			Characters: [2]string{record.FirstKey, record.SecondKey},
			Text:       record.Text,
			OldText:    record.OldText,
		})
	}
	return script.NewCatalog(out, pairs), nil
}
