package script

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log"
)

const metaID = "_meta"

var ErrEmptyScript = errors.New("script is empty")

type scriptItem struct {
	Character
	Author string `json:"author"`
}

// ParseScript decodes a script document. The community format is a JSON array
// of a "_meta" object, bare character ids, {"id": ...} references and full
// custom character objects. The object form written by Script's own JSON
// encoding is accepted too.
func ParseScript(data []byte, catalog *Catalog) (Script, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return Script{}, ErrEmptyScript
	}
	if trimmed[0] == '{' {
		var parsed Script
		if err := json.Unmarshal(trimmed, &parsed); err != nil {
			return Script{}, fmt.Errorf("parse script: %w", err)
		}
		return parsed, nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return Script{}, fmt.Errorf("parse script: %w", err)
	}
	var parsed Script
	seen := make(map[string]struct{}, len(items))
	for i, raw := range items {
		ch, meta, err := parseItem(raw, catalog)
		if err != nil {
			return Script{}, fmt.Errorf("parse script item %d: %w", i, err)
		}
		if meta != nil {
			parsed.Metadata = *meta
			continue
		}
		if ch == nil {
			continue
		}
		if _, dup := seen[ch.ID]; dup {
			continue
		}
		seen[ch.ID] = struct{}{}
		parsed.Characters = append(parsed.Characters, *ch)
	}
	return parsed, nil
}

func parseItem(raw json.RawMessage, catalog *Catalog) (*Character, *Metadata, error) {
	var id string
	if err := json.Unmarshal(raw, &id); err == nil {
		return resolveID(id, catalog), nil, nil
	}
	var item scriptItem
	if err := json.Unmarshal(raw, &item); err != nil {
		return nil, nil, err
	}
	if item.ID == metaID {
		return nil, &Metadata{Name: item.Name, Author: item.Author}, nil
	}
	if item.Team == "" && item.Ability == "" {
		return resolveID(item.ID, catalog), nil, nil
	}
	if !item.Team.Valid() {
		log.Printf("script character skipped id=%s team=%s", item.ID, item.Team)
		return nil, nil, nil
	}
	ch := item.Character
	if _, official := catalog.Lookup(ch.ID); !official {
		ch.IsCustom = true
	}
	ch.ID = NormalizeID(ch.ID)
	if ch.Name == "" {
		ch.Name = item.ID
	}
	return &ch, nil, nil
}

func resolveID(id string, catalog *Catalog) *Character {
	ch, ok := catalog.Lookup(id)
	if !ok {
		log.Printf("script character unresolved id=%s", id)
		return nil
	}
	return &ch
}
