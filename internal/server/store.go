package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"script-sheets/internal/script"
	"script-sheets/internal/web"
)

var errScriptNotFound = errors.New("script not found")

type Store struct {
	mu      sync.Mutex
	nextID  int
	scripts map[string]*StoredScript
}

func NewStore() *Store {
	return &Store{
		nextID:  1,
		scripts: make(map[string]*StoredScript),
	}
}

func (s *Store) CreateScript(source json.RawMessage, parsed script.Script, opts script.Options) StoredScript {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := fmt.Sprintf("script-%d", s.nextID)
	s.nextID++
	now := timeNowUTC()
	entry := &StoredScript{
		ID:        id,
		Source:    append(json.RawMessage(nil), source...),
		Script:    parsed,
		Options:   opts,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.scripts[id] = entry
	return *entry
}

func (s *Store) GetScript(id string) (StoredScript, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.scripts[id]
	if !ok {
		return StoredScript{}, false
	}
	return *entry, true
}

func (s *Store) UpdateScript(id string, update func(entry *StoredScript) error) (StoredScript, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.scripts[id]
	if !ok {
		return StoredScript{}, errScriptNotFound
	}
	if err := update(entry); err != nil {
		return StoredScript{}, err
	}
	entry.UpdatedAt = timeNowUTC()
	return *entry, nil
}

// UpdateScriptID re-keys a script once it has a database row.
func (s *Store) UpdateScriptID(oldID, newID string, dbID uint) (StoredScript, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.scripts[oldID]
	if !ok {
		return StoredScript{}, errScriptNotFound
	}
	if oldID == newID {
		entry.DBID = dbID
		return *entry, nil
	}
	if _, taken := s.scripts[newID]; taken {
		return StoredScript{}, fmt.Errorf("script id %s already in use", newID)
	}
	entry.DBID = dbID
	delete(s.scripts, oldID)
	entry.ID = newID
	s.scripts[newID] = entry
	if id := scriptSortKey(newID); id >= s.nextID {
		s.nextID = id + 1
	}
	return *entry, nil
}

func (s *Store) RestoreScript(entry StoredScript) error {
	if entry.ID == "" {
		return errors.New("script id is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.scripts[entry.ID]; ok {
		return errors.New("script already loaded")
	}
	s.scripts[entry.ID] = &entry
	if id := scriptSortKey(entry.ID); id >= s.nextID {
		s.nextID = id + 1
	}
	return nil
}

// ListScriptSummaries returns every script, newest first.
func (s *Store) ListScriptSummaries() []web.ScriptSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := make([]web.ScriptSummary, 0, len(s.scripts))
	for _, entry := range s.scripts {
		list = append(list, entry.Summary())
	}
	sort.Slice(list, func(i, j int) bool {
		return scriptSortKey(list[i].ID) > scriptSortKey(list[j].ID)
	})
	return list
}

func scriptSortKey(id string) int {
	parts := strings.Split(id, "-")
	if len(parts) < 2 {
		return 0
	}
	value, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return 0
	}
	return value
}

func timeNowUTC() time.Time {
	return time.Now().UTC()
}
