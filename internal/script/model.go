package script

import (
	"encoding/json"
	"errors"
)

type Team string

const (
	TeamTownsfolk Team = "townsfolk"
	TeamOutsider  Team = "outsider"
	TeamMinion    Team = "minion"
	TeamDemon     Team = "demon"
	TeamTraveller Team = "traveller"
	TeamFabled    Team = "fabled"
	TeamLoric     Team = "loric"
)

func (t Team) Valid() bool {
	switch t {
	case TeamTownsfolk, TeamOutsider, TeamMinion, TeamDemon, TeamTraveller, TeamFabled, TeamLoric:
		return true
	}
	return false
}

type CharacterJinx struct {
	ID        string `json:"id"`
	Reason    string `json:"reason"`
	OldReason string `json:"oldReason,omitempty"`
}

type Character struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	Ability            string          `json:"ability"`
	Team               Team            `json:"team"`
	Image              StringList      `json:"image,omitempty"`
	WikiImage          string          `json:"wiki_image,omitempty"`
	Edition            string          `json:"edition,omitempty"`
	IsCustom           bool            `json:"isCustom,omitempty"`
	FirstNight         float64         `json:"firstNight,omitempty"`
	OtherNight         float64         `json:"otherNight,omitempty"`
	FirstNightReminder string          `json:"firstNightReminder,omitempty"`
	OtherNightReminder string          `json:"otherNightReminder,omitempty"`
	Jinxes             []CharacterJinx `json:"jinxes,omitempty"`
}

// StringList decodes either a single string or a list of them, as scripts
// do for images and colours.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		if single == "" {
			*l = nil
			return nil
		}
		*l = StringList{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return errors.New("expected a string or a list of strings")
	}
	*l = many
	return nil
}

type Jinx struct {
	Characters [2]string `json:"characters"`
	Text       string    `json:"jinx"`
	OldText    string    `json:"oldJinx,omitempty"`
}

type Metadata struct {
	Name   string `json:"name"`
	Author string `json:"author,omitempty"`
}

type Script struct {
	Metadata   Metadata    `json:"metadata"`
	Characters []Character `json:"characters"`
}

const DefaultTitle = "Custom Script"

func (s Script) Title() string {
	if s.Metadata.Name == "" {
		return DefaultTitle
	}
	return s.Metadata.Name
}

type GroupedCharacters struct {
	Townsfolk []Character
	Outsider  []Character
	Minion    []Character
	Demon     []Character
	Traveller []Character
	Fabled    []Character
	Loric     []Character
}

// Players returns the four player teams in sheet order.
func (g GroupedCharacters) Players() []Character {
	out := make([]Character, 0, len(g.Townsfolk)+len(g.Outsider)+len(g.Minion)+len(g.Demon))
	out = append(out, g.Townsfolk...)
	out = append(out, g.Outsider...)
	out = append(out, g.Minion...)
	out = append(out, g.Demon...)
	return out
}

type FabledOrLoric struct {
	Name  string
	Note  string
	Image string
}
