package script

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Catalog holds the official characters and jinxes that bare ids in a script
// resolve against.
type Catalog struct {
	characters map[string]Character
	order      []string
	jinxes     []Jinx
}

type catalogFile struct {
	Characters []Character `json:"characters"`
	Jinxes     []Jinx      `json:"jinxes"`
}

func NewCatalog(characters []Character, jinxes []Jinx) *Catalog {
	c := &Catalog{
		characters: make(map[string]Character, len(characters)),
	}
	for _, ch := range characters {
		c.Add(ch)
	}
	for _, jinx := range jinxes {
		c.AddJinx(jinx)
	}
	return c
}

// LoadCatalogFile reads a catalog JSON document ({"characters": [...], "jinxes": [...]}).
func LoadCatalogFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseCatalog(data)
}

func ParseCatalog(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return NewCatalog(file.Characters, file.Jinxes), nil
}

func (c *Catalog) Add(ch Character) {
	id := NormalizeID(ch.ID)
	if id == "" {
		return
	}
	ch.ID = id
	if _, exists := c.characters[id]; !exists {
		c.order = append(c.order, id)
	}
	c.characters[id] = ch
}

func (c *Catalog) AddJinx(jinx Jinx) {
	jinx.Characters = [2]string{NormalizeID(jinx.Characters[0]), NormalizeID(jinx.Characters[1])}
	c.jinxes = append(c.jinxes, jinx)
}

func (c *Catalog) Lookup(id string) (Character, bool) {
	if c == nil {
		return Character{}, false
	}
	ch, ok := c.characters[NormalizeID(id)]
	return ch, ok
}

func (c *Catalog) Characters() []Character {
	if c == nil {
		return nil
	}
	out := make([]Character, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.characters[id])
	}
	return out
}

func (c *Catalog) Jinxes() []Jinx {
	if c == nil {
		return nil
	}
	return c.jinxes
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.characters)
}

// NormalizeID lower-cases an id and strips the separators that community
// scripts use inconsistently ("Fortune_Teller", "fortune-teller", "fortuneteller").
func NormalizeID(id string) string {
	id = strings.ToLower(strings.TrimSpace(id))
	return strings.Map(func(r rune) rune {
		switch r {
		case '_', '-', ' ', '\'':
			return -1
		}
		return r
	}, id)
}
